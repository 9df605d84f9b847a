// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import "fmt"

// AddressType identifies the kind of spending condition an address encodes
// independently of its textual format.
type AddressType uint8

// These constants define the supported address types.
const (
	// P2PKH is a pay-to-pubkey-hash address.
	P2PKH AddressType = iota

	// P2SH is a pay-to-script-hash address.
	P2SH

	// P2PKHWithTokens is a pay-to-pubkey-hash address that signals the
	// receiver accepts CashTokens.  It has no legacy encoding.
	P2PKHWithTokens

	// P2SHWithTokens is a pay-to-script-hash address that signals the
	// receiver accepts CashTokens.  It has no legacy encoding.
	P2SHWithTokens
)

// String returns the AddressType in human-readable form.
func (t AddressType) String() string {
	switch t {
	case P2PKH:
		return "P2PKH"
	case P2SH:
		return "P2SH"
	case P2PKHWithTokens:
		return "P2PKHWithTokens"
	case P2SHWithTokens:
		return "P2SHWithTokens"
	}
	return fmt.Sprintf("Unknown AddressType (%d)", uint8(t))
}

const (
	// versionReservedBit must be unset in every CashAddr version byte.
	versionReservedBit = 0x80

	// versionTypeMask selects the type bits of a CashAddr version byte.
	versionTypeMask = 0x78

	// versionSizeMask selects the size class bits of a CashAddr version
	// byte.
	versionSizeMask = 0x07
)

// cashTypeBits returns the type bits of the CashAddr version byte for the
// address type.  Combined with a size class of zero, they are the full version
// byte of an address with a 20-byte payload.
func cashTypeBits(t AddressType) (byte, bool) {
	switch t {
	case P2PKH:
		return 0x00, true
	case P2SH:
		return 0x08, true
	case P2PKHWithTokens:
		return 0x10, true
	case P2SHWithTokens:
		return 0x18, true
	}
	return 0, false
}

// cashAddressType is the inverse of cashTypeBits.
func cashAddressType(typeBits byte) (AddressType, bool) {
	switch typeBits {
	case 0x00:
		return P2PKH, true
	case 0x08:
		return P2SH, true
	case 0x10:
		return P2PKHWithTokens, true
	case 0x18:
		return P2SHWithTokens, true
	}
	return 0, false
}

// payloadSizes holds the payload length in bytes for each size class that can
// be encoded in the low bits of a CashAddr version byte.
var payloadSizes = [8]int{20, 24, 28, 32, 40, 48, 56, 64}

// sizeClass returns the size class for a payload of the given length.
func sizeClass(payloadLen int) (byte, bool) {
	for class, size := range payloadSizes {
		if size == payloadLen {
			return byte(class), true
		}
	}
	return 0, false
}

// cashVersionByte returns the full CashAddr version byte for an address of the
// given type and payload length.
func cashVersionByte(t AddressType, payloadLen int) (byte, error) {
	typeBits, ok := cashTypeBits(t)
	if !ok {
		str := fmt.Sprintf("address type %v has no cashaddr version", t)
		return 0, makeError(ErrUnknownVersion, str)
	}
	class, ok := sizeClass(payloadLen)
	if !ok {
		str := fmt.Sprintf("payload of %d bytes has no cashaddr size class",
			payloadLen)
		return 0, makeError(ErrInvalidLength, str)
	}
	return typeBits | class, nil
}

// parseCashVersionByte returns the address type for a CashAddr version byte
// and ensures its size class agrees with the length of the payload that
// followed it.
func parseCashVersionByte(version byte, payloadLen int) (AddressType, error) {
	if version&versionReservedBit != 0 {
		str := fmt.Sprintf("version byte 0x%02x has the reserved bit set",
			version)
		return 0, makeError(ErrUnknownVersion, str)
	}
	t, ok := cashAddressType(version & versionTypeMask)
	if !ok {
		str := fmt.Sprintf("version byte 0x%02x is not a known address type",
			version)
		return 0, makeError(ErrUnknownVersion, str)
	}
	wantLen := payloadSizes[version&versionSizeMask]
	if payloadLen != wantLen {
		str := fmt.Sprintf("version byte 0x%02x requires a %d byte payload, "+
			"got %d bytes", version, wantLen, payloadLen)
		return 0, makeError(ErrInvalidLength, str)
	}
	return t, nil
}

// legacyVersion returns the legacy version byte for the address type on the
// network described by params.
func legacyVersion(t AddressType, params *Params) (byte, error) {
	switch t {
	case P2PKH:
		return params.LegacyPubKeyHashAddrID, nil
	case P2SH:
		return params.LegacyScriptHashAddrID, nil
	}
	str := fmt.Sprintf("address type %v has no legacy version", t)
	return 0, makeError(ErrUnknownVersion, str)
}

// legacyAddressType returns the address type and network parameters for a
// legacy version byte.  Networks that share version bytes resolve to the
// first matching entry of legacyNets.
func legacyAddressType(version byte) (AddressType, *Params, error) {
	for _, params := range legacyNets {
		switch version {
		case params.LegacyPubKeyHashAddrID:
			return P2PKH, params, nil
		case params.LegacyScriptHashAddrID:
			return P2SH, params, nil
		}
	}
	str := fmt.Sprintf("legacy version byte 0x%02x is not a known address "+
		"type", version)
	return 0, nil, makeError(ErrUnknownVersion, str)
}
