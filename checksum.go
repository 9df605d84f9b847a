// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

// checksumLen is the number of 5-bit groups in a CashAddr checksum.
const checksumLen = 8

// gen holds the generator constants of the BCH code used by CashAddr.  Each
// constant is applied when the corresponding bit of the top 5 bits of the
// accumulator is set.
var gen = [5]uint64{
	0x98f2bc8e61,
	0x79b76d99e2,
	0xf33e5fb3c4,
	0xae2eabe2a8,
	0x1e4f43e470,
}

// polyMod folds the provided 5-bit values into a 40-bit accumulator that
// starts at 1.
func polyMod(values []byte) uint64 {
	chk := uint64(1)
	for _, v := range values {
		top := chk >> 35
		chk = (chk&0x07ffffffff)<<5 ^ uint64(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// expandPrefix returns the low 5 bits of each prefix character followed by a
// zero separator.  The result has extra capacity for the data and checksum
// that callers append.
func expandPrefix(prefix string, dataLen int) []byte {
	expanded := make([]byte, 0, len(prefix)+1+dataLen+checksumLen)
	for i := 0; i < len(prefix); i++ {
		expanded = append(expanded, prefix[i]&0x1f)
	}
	return append(expanded, 0)
}

// CalculateChecksum returns the 8 group checksum for the given prefix and
// 5-bit payload groups.  The prefix must already be lowercase.
func CalculateChecksum(prefix string, payload []byte) []byte {
	values := expandPrefix(prefix, len(payload))
	values = append(values, payload...)
	values = append(values, make([]byte, checksumLen)...)
	mod := polyMod(values) ^ 1

	checksum := make([]byte, checksumLen)
	for i := 0; i < checksumLen; i++ {
		checksum[i] = byte(mod>>uint(5*(checksumLen-1-i))) & 0x1f
	}
	return checksum
}

// VerifyChecksum returns whether the trailing 8 groups of data are a valid
// checksum over the prefix and the remaining groups.  The prefix must already
// be lowercase.
func VerifyChecksum(prefix string, data []byte) bool {
	values := expandPrefix(prefix, len(data))
	values = append(values, data...)
	return polyMod(values) == 1
}
