// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/decred/dcrd/crypto/ripemd160"
)

// Address is the canonical representation of a payment address that is
// independent of its textual format.  It consists of the address type, the
// raw payload (typically a hash160) and the CashAddr network prefix.
//
// An Address is immutable once created and is safe for concurrent use.
type Address struct {
	version AddressType
	payload []byte
	prefix  string
}

// NewAddress returns an address of the given type for the provided payload.
// An empty prefix selects DefaultPrefix.  The payload is copied, so the caller
// is free to modify it afterwards.
//
// The address type and payload length are checked when the address is
// rendered since whether they are valid depends on the requested format.
func NewAddress(version AddressType, payload []byte, prefix string) (*Address, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if err := checkPrefix(prefix); err != nil {
		return nil, err
	}
	return &Address{
		version: version,
		payload: append([]byte(nil), payload...),
		prefix:  prefix,
	}, nil
}

// Version returns the type of the address.
func (a *Address) Version() AddressType {
	return a.version
}

// Payload returns a copy of the raw payload of the address.
func (a *Address) Payload() []byte {
	return append([]byte(nil), a.payload...)
}

// Prefix returns the CashAddr network prefix of the address.
func (a *Address) Prefix() string {
	return a.prefix
}

// Hash160 returns the payload as a RIPEMD-160 sized array when the payload is
// exactly that size and nil otherwise.
func (a *Address) Hash160() *[ripemd160.Size]byte {
	if len(a.payload) != ripemd160.Size {
		return nil
	}
	var hash [ripemd160.Size]byte
	copy(hash[:], a.payload)
	return &hash
}

// LegacyAddress returns the Base58Check encoding of the address.  The legacy
// version byte is chosen according to the network of the address prefix, with
// unrecognized prefixes using the main network.
func (a *Address) LegacyAddress() (string, error) {
	params := ParamsForPrefix(a.prefix)
	version, err := legacyVersion(a.version, params)
	if err != nil {
		return "", err
	}
	if len(a.payload) != ripemd160.Size {
		str := fmt.Sprintf("legacy addresses require a %d byte payload, got "+
			"%d bytes", ripemd160.Size, len(a.payload))
		return "", makeError(ErrInvalidLength, str)
	}
	return base58.CheckEncode(a.payload, version), nil
}

// CashAddress returns the CashAddr encoding of the address including its
// prefix.
func (a *Address) CashAddress() (string, error) {
	version, err := cashVersionByte(a.version, len(a.payload))
	if err != nil {
		return "", err
	}

	data := make([]byte, 0, len(a.payload)+1)
	data = append(data, version)
	data = append(data, a.payload...)
	groups, err := ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	groups = append(groups, CalculateChecksum(a.prefix, groups)...)
	return a.prefix + ":" + EncodeBase32(groups), nil
}

// String returns the CashAddr encoding of the address, falling back to the
// legacy encoding when the address has no CashAddr form.  An empty string is
// returned when neither encoding is possible.
func (a *Address) String() string {
	if s, err := a.CashAddress(); err == nil {
		return s
	}
	if s, err := a.LegacyAddress(); err == nil {
		return s
	}
	return ""
}

// DecodeAddress parses an address in either format.  Strings containing the
// ':' separator are decoded as CashAddr and all others as legacy Base58Check.
//
// Unprefixed CashAddr strings are therefore decoded as legacy addresses.  Use
// DecodeCashAddress to decode those with the default prefix.
func DecodeAddress(addr string) (*Address, error) {
	if !strings.Contains(addr, ":") {
		return DecodeLegacyAddress(addr)
	}
	return DecodeCashAddress(addr)
}

// DecodeLegacyAddress parses a Base58Check encoded legacy address.  The prefix
// of the returned address is that of the network the version byte belongs to.
func DecodeLegacyAddress(addr string) (*Address, error) {
	decoded, version, err := base58.CheckDecode(addr)
	if err != nil {
		reason := "malformed base58"
		if errors.Is(err, base58.ErrChecksum) {
			reason = "bad checksum"
		}
		str := fmt.Sprintf("failed to decode legacy address %q: %s", addr,
			reason)
		return nil, makeError(ErrBase58DecodeFailed, str)
	}

	addrType, params, err := legacyAddressType(version)
	if err != nil {
		return nil, err
	}
	if len(decoded) != ripemd160.Size {
		str := fmt.Sprintf("legacy address %q has a %d byte payload instead "+
			"of %d bytes", addr, len(decoded), ripemd160.Size)
		return nil, makeError(ErrInvalidLength, str)
	}

	return &Address{
		version: addrType,
		payload: decoded,
		prefix:  params.Prefix,
	}, nil
}

// DecodeCashAddress parses a CashAddr string.  The prefix is optional and
// DefaultPrefix is assumed when it is missing.  The string may be entirely
// uppercase or entirely lowercase, but not a mix of both.
func DecodeCashAddress(addr string) (*Address, error) {
	if hasMixedCase(addr) {
		str := fmt.Sprintf("address %q mixes uppercase and lowercase "+
			"characters", addr)
		return nil, makeError(ErrMixedCase, str)
	}
	lower := strings.ToLower(addr)

	prefix, body := DefaultPrefix, lower
	if i := strings.IndexByte(lower, ':'); i != -1 {
		prefix, body = lower[:i], lower[i+1:]
	}
	if err := checkPrefix(prefix); err != nil {
		return nil, err
	}

	decoded, err := DecodeBase32(body)
	if err != nil {
		return nil, err
	}

	// At least the version byte must precede the checksum.
	if len(decoded) <= checksumLen {
		str := fmt.Sprintf("address %q is too short to hold a payload and "+
			"checksum", addr)
		return nil, makeError(ErrInvalidLength, str)
	}
	if !VerifyChecksum(prefix, decoded) {
		str := fmt.Sprintf("address %q has an invalid checksum", addr)
		return nil, makeError(ErrInvalidChecksum, str)
	}

	data, err := ConvertBits(decoded[:len(decoded)-checksumLen], 5, 8, false)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		str := fmt.Sprintf("address %q has no version byte", addr)
		return nil, makeError(ErrInvalidLength, str)
	}

	addrType, err := parseCashVersionByte(data[0], len(data)-1)
	if err != nil {
		return nil, err
	}

	return &Address{
		version: addrType,
		payload: data[1:],
		prefix:  prefix,
	}, nil
}

// hasMixedCase returns whether s contains both uppercase and lowercase ASCII
// letters.
func hasMixedCase(s string) bool {
	var upper, lower bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		}
		if upper && lower {
			return true
		}
	}
	return false
}

// checkPrefix ensures the prefix is non-empty and only consists of lowercase
// letters, digits and printable punctuation other than the ':' separator.
func checkPrefix(prefix string) error {
	if prefix == "" {
		return makeError(ErrInvalidPrefix, "address prefix is empty")
	}
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if c < 33 || c > 126 || c == ':' || (c >= 'A' && c <= 'Z') {
			str := fmt.Sprintf("address prefix %q contains invalid "+
				"character %q", prefix, c)
			return makeError(ErrInvalidPrefix, str)
		}
	}
	return nil
}
