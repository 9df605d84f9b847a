// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

// ToCashAddress converts an address in either format to its CashAddr
// encoding.
func ToCashAddress(addr string) (string, error) {
	a, err := DecodeAddress(addr)
	if err != nil {
		return "", err
	}
	return a.CashAddress()
}

// ToLegacyAddress converts an address in either format to its legacy
// Base58Check encoding.
func ToLegacyAddress(addr string) (string, error) {
	a, err := DecodeAddress(addr)
	if err != nil {
		return "", err
	}
	return a.LegacyAddress()
}

// IsValid returns whether the string is a valid address in either format.
func IsValid(addr string) bool {
	_, err := DecodeAddress(addr)
	if err != nil {
		log.Tracef("Rejected address %q: %v", addr, err)
		return false
	}
	return true
}
