// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package cashaddr converts Bitcoin Cash payment addresses between the legacy
Base58Check format and the CashAddr format.

Both formats are parsed into an Address, which holds the address type, the raw
payload (typically a hash160) and the CashAddr network prefix.  An Address can
be rendered back into either format.

# Formats

Legacy addresses are a version byte followed by the payload, encoded with
Base58Check (a 4 byte double-SHA256 checksum and the Bitcoin base58 alphabet).

CashAddr addresses are a lowercase network prefix, a ':' separator and a
base32 body.  The body encodes a version byte and the payload as 5-bit groups
followed by an 8 group BCH checksum that commits to the prefix as well.  The
version byte holds the address type in bits 3-6 and the payload size class in
bits 0-2.  For example:

	bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a
	1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu

are the CashAddr and legacy encodings of the same pay-to-pubkey-hash address.

# Conversion

ToCashAddress and ToLegacyAddress convert between the formats and IsValid
checks whether a string is a valid address in either of them.  The format is
detected by the presence of the ':' separator, so CashAddr input must include
its prefix.  DecodeCashAddress accepts unprefixed CashAddr strings.

# Errors

Errors returned by this package are of type Error and wrap an ErrorKind that
identifies the reason.  Every Error also matches ErrInvalidAddress:

	if errors.Is(err, cashaddr.ErrInvalidChecksum) {
		// Likely a typo.
	}

The bit regrouping, base32 and checksum primitives used by the CashAddr
format are exported as ConvertBits, EncodeBase32, DecodeBase32,
CalculateChecksum and VerifyChecksum.
*/
package cashaddr
