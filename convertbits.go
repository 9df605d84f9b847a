// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import "fmt"

// ConvertBits regroups a sequence of fromBits-wide values into a sequence of
// toBits-wide values.  The input is treated as a single bit stream made up of
// the low fromBits bits of each value, most significant bit first, which is
// then sliced into groups of toBits bits.
//
// When pad is true, a final partial group is right-padded with zero bits and
// emitted.  When pad is false, a final partial group is dropped when all of its
// bits are zero and ErrInvalidPadding is returned otherwise.
//
// Both bit widths must be in the range [1, 8] and every input value must fit
// in fromBits bits.  Violating either is a programming error and panics.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		panic(fmt.Sprintf("invalid bit group widths %d -> %d", fromBits,
			toBits))
	}

	// The size of the result is at most one group larger than the exact
	// number of groups the input bits fill.
	maxSize := len(data)*int(fromBits)/int(toBits) + 1
	regrouped := make([]byte, 0, maxSize)

	// acc holds the bits that have not yet been emitted.  It never needs to
	// hold more than fromBits+toBits-1 bits, which always fits.
	var acc uint32
	var accBits uint8
	maxValue := uint32(1)<<toBits - 1
	for i, b := range data {
		if uint32(b)>>fromBits != 0 {
			panic(fmt.Sprintf("value %d at index %d does not fit in %d bits",
				b, i, fromBits))
		}
		acc = acc<<fromBits | uint32(b)
		accBits += fromBits
		for accBits >= toBits {
			accBits -= toBits
			regrouped = append(regrouped, byte(acc>>accBits&maxValue))
		}
		acc &= uint32(1)<<accBits - 1
	}

	if accBits == 0 {
		return regrouped, nil
	}
	if pad {
		regrouped = append(regrouped, byte(acc<<(toBits-accBits)&maxValue))
		return regrouped, nil
	}
	if acc != 0 {
		str := fmt.Sprintf("%d non-zero bits left over after regrouping "+
			"%d-bit values into %d-bit groups", accBits, fromBits, toBits)
		return nil, makeError(ErrInvalidPadding, str)
	}
	return regrouped, nil
}
