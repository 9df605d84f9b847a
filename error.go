// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidAddress is the umbrella kind every address error matches.
	// Errors returned by this package satisfy errors.Is(err,
	// ErrInvalidAddress) in addition to their specific kind.
	ErrInvalidAddress = ErrorKind("ErrInvalidAddress")

	// ErrBase58DecodeFailed indicates a legacy address either contains
	// characters outside of the base58 alphabet, is too short, or has a bad
	// double-SHA256 checksum.
	ErrBase58DecodeFailed = ErrorKind("ErrBase58DecodeFailed")

	// ErrMixedCase indicates a CashAddr string contains both uppercase and
	// lowercase characters.
	ErrMixedCase = ErrorKind("ErrMixedCase")

	// ErrInvalidCharacter indicates a CashAddr body contains a character
	// that is not part of the base32 alphabet.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrInvalidChecksum indicates the polynomial checksum of a CashAddr
	// string does not match.
	ErrInvalidChecksum = ErrorKind("ErrInvalidChecksum")

	// ErrInvalidPadding indicates non-zero bits were left over when
	// regrouping without padding.
	ErrInvalidPadding = ErrorKind("ErrInvalidPadding")

	// ErrUnknownVersion indicates an address type or version byte has no
	// mapping for the requested format.
	ErrUnknownVersion = ErrorKind("ErrUnknownVersion")

	// ErrInvalidPrefix indicates a CashAddr prefix is empty or contains
	// characters that are not allowed.
	ErrInvalidPrefix = ErrorKind("ErrInvalidPrefix")

	// ErrInvalidLength indicates the payload length is not allowed for the
	// format or does not match the size class of the version byte.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address-related error.
//
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the umbrella ErrInvalidAddress kind.  Matching
// against the specific kind is handled through Unwrap.
func (e Error) Is(target error) bool {
	return target == ErrInvalidAddress
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
