// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"errors"
	"io"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrInvalidAddress, "ErrInvalidAddress"},
		{ErrBase58DecodeFailed, "ErrBase58DecodeFailed"},
		{ErrMixedCase, "ErrMixedCase"},
		{ErrInvalidCharacter, "ErrInvalidCharacter"},
		{ErrInvalidChecksum, "ErrInvalidChecksum"},
		{ErrInvalidPadding, "ErrInvalidPadding"},
		{ErrUnknownVersion, "ErrUnknownVersion"},
		{ErrInvalidPrefix, "ErrInvalidPrefix"},
		{ErrInvalidLength, "ErrInvalidLength"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As, and that
// every Error also matches the umbrella invalid address kind.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrMixedCase == ErrMixedCase",
		err:       ErrMixedCase,
		target:    ErrMixedCase,
		wantMatch: true,
		wantAs:    ErrMixedCase,
	}, {
		name:      "Error.ErrMixedCase == ErrMixedCase",
		err:       makeError(ErrMixedCase, ""),
		target:    ErrMixedCase,
		wantMatch: true,
		wantAs:    ErrMixedCase,
	}, {
		name:      "Error.ErrInvalidChecksum == ErrInvalidAddress",
		err:       makeError(ErrInvalidChecksum, ""),
		target:    ErrInvalidAddress,
		wantMatch: true,
		wantAs:    ErrInvalidChecksum,
	}, {
		name:      "ErrInvalidChecksum != ErrInvalidAddress",
		err:       ErrInvalidChecksum,
		target:    ErrInvalidAddress,
		wantMatch: false,
		wantAs:    ErrInvalidChecksum,
	}, {
		name:      "ErrMixedCase != ErrInvalidPadding",
		err:       ErrMixedCase,
		target:    ErrInvalidPadding,
		wantMatch: false,
		wantAs:    ErrMixedCase,
	}, {
		name:      "Error.ErrMixedCase != ErrInvalidPadding",
		err:       makeError(ErrMixedCase, ""),
		target:    ErrInvalidPadding,
		wantMatch: false,
		wantAs:    ErrMixedCase,
	}, {
		name:      "ErrMixedCase != Error.ErrInvalidPadding",
		err:       ErrMixedCase,
		target:    makeError(ErrInvalidPadding, ""),
		wantMatch: false,
		wantAs:    ErrMixedCase,
	}, {
		name:      "Error.ErrMixedCase != Error.ErrInvalidPadding",
		err:       makeError(ErrMixedCase, ""),
		target:    makeError(ErrInvalidPadding, ""),
		wantMatch: false,
		wantAs:    ErrMixedCase,
	}, {
		name:      "Error.ErrUnknownVersion != io.EOF",
		err:       makeError(ErrUnknownVersion, ""),
		target:    io.EOF,
		wantMatch: false,
		wantAs:    ErrUnknownVersion,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped is and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
