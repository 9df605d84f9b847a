// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"
	"strings"
)

// charset is the set of characters used in the data section of CashAddr
// strings.  The index of a character is the 5-bit value it encodes.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// charsetRev maps ASCII characters to their 5-bit value.  Entries for
// characters that are not part of the charset are -1.
var charsetRev = func() [128]int8 {
	var rev [128]int8
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(charset); i++ {
		rev[charset[i]] = int8(i)
	}
	return rev
}()

// EncodeBase32 maps each 5-bit value to its character in the CashAddr
// alphabet.  Values that do not fit in 5 bits are a programming error and
// panic.
func EncodeBase32(values []byte) string {
	var sb strings.Builder
	sb.Grow(len(values))
	for i, v := range values {
		if int(v) >= len(charset) {
			panic(fmt.Sprintf("value %d at index %d is not a 5-bit group",
				v, i))
		}
		sb.WriteByte(charset[v])
	}
	return sb.String()
}

// DecodeBase32 converts a string of CashAddr alphabet characters to the
// 5-bit values they represent.  Only the lowercase alphabet is accepted, so
// callers are expected to normalize case beforehand.
func DecodeBase32(s string) ([]byte, error) {
	decoded := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 128 || charsetRev[c] == -1 {
			str := fmt.Sprintf("invalid character %q at position %d", c, i)
			return nil, makeError(ErrInvalidCharacter, str)
		}
		decoded = append(decoded, byte(charsetRev[c]))
	}
	return decoded, nil
}
