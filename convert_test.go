// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/decred/slog"
)

// TestConvert ensures the conversion helpers translate between the formats in
// both directions and pass through addresses already in the requested format.
func TestConvert(t *testing.T) {
	tests := []struct {
		name      string // test description
		in        string // address to convert
		cash      string // expected cashaddr result
		cashErr   error  // expected cashaddr error
		legacy    string // expected legacy result
		legacyErr error  // expected legacy error
	}{{
		name:   "legacy mainnet p2pkh",
		in:     "1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu",
		cash:   "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
		legacy: "1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu",
	}, {
		name:   "legacy mainnet p2sh",
		in:     "3CWFddi6m4ndiGyKqzYvsFYagqDLPVMTzC",
		cash:   "bitcoincash:ppm2qsznhks23z7629mms6s4cwef74vcwvn0h829pq",
		legacy: "3CWFddi6m4ndiGyKqzYvsFYagqDLPVMTzC",
	}, {
		name:   "legacy testnet p2pkh",
		in:     "mrLC19Je2BuWQDkWSTriGYPyQJXKkkBmCx",
		cash:   "bchtest:qpm2qsznhks23z7629mms6s4cwef74vcwvqcw003ap",
		legacy: "mrLC19Je2BuWQDkWSTriGYPyQJXKkkBmCx",
	}, {
		name:   "legacy testnet p2sh",
		in:     "2N44ThNe8NXHyv4bsX8AoVCXquBRW94Ls7W",
		cash:   "bchtest:ppm2qsznhks23z7629mms6s4cwef74vcwvhanqgjxu",
		legacy: "2N44ThNe8NXHyv4bsX8AoVCXquBRW94Ls7W",
	}, {
		name:   "legacy testnet p2pkh starting with n",
		in:     "n3vLzhPPFcMDCVwahwKrSiDrdnogPBjJCm",
		cash:   "bchtest:qr6m7j9njldwwzlg9v7v53unlr4jkmx6eymt9qmp0k",
		legacy: "n3vLzhPPFcMDCVwahwKrSiDrdnogPBjJCm",
	}, {
		name:   "legacy mainnet p2pkh with leading zero byte",
		in:     "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM",
		cash:   "bitcoincash:qqqsjenhvqrf2024vapeuh3elp4q6femac89k2dn50",
		legacy: "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM",
	}, {
		name:   "cashaddr mainnet p2pkh",
		in:     "bitcoincash:qr6m7j9njldwwzlg9v7v53unlr4jkmx6eylep8ekg2",
		cash:   "bitcoincash:qr6m7j9njldwwzlg9v7v53unlr4jkmx6eylep8ekg2",
		legacy: "1PQPheJQSauxRPTxzNMUco1XmoCyPoEJCp",
	}, {
		name:   "uppercase cashaddr is normalized",
		in:     "BITCOINCASH:QR6M7J9NJLDWWZLG9V7V53UNLR4JKMX6EYLEP8EKG2",
		cash:   "bitcoincash:qr6m7j9njldwwzlg9v7v53unlr4jkmx6eylep8ekg2",
		legacy: "1PQPheJQSauxRPTxzNMUco1XmoCyPoEJCp",
	}, {
		name:   "cashaddr testnet p2sh",
		in:     "bchtest:pr6m7j9njldwwzlg9v7v53unlr4jkmx6eyvwc0uz5t",
		cash:   "bchtest:pr6m7j9njldwwzlg9v7v53unlr4jkmx6eyvwc0uz5t",
		legacy: "2NFecgvisbwjgiLnwnbdwfNMj8fhrm9Fbqe",
	}, {
		name:   "cashaddr custom prefix uses mainnet legacy bytes",
		in:     "pref:pr6m7j9njldwwzlg9v7v53unlr4jkmx6ey65nvtks5",
		cash:   "pref:pr6m7j9njldwwzlg9v7v53unlr4jkmx6ey65nvtks5",
		legacy: "3Q6QdBnqzVELWZAQ7U253RNTvKVgz7Cfqm",
	}, {
		name:      "token aware cashaddr has no legacy form",
		in:        "bitcoincash:zr6m7j9njldwwzlg9v7v53unlr4jkmx6eycnjehshe",
		cash:      "bitcoincash:zr6m7j9njldwwzlg9v7v53unlr4jkmx6eycnjehshe",
		legacyErr: ErrUnknownVersion,
	}, {
		name:      "32 byte cashaddr has no legacy form",
		in:        "bitcoincash:qvch8mmxy0rtfrlarg7ucrxxfzds5pamg73h7370aa87d80gyhqxq5nlegake",
		cash:      "bitcoincash:qvch8mmxy0rtfrlarg7ucrxxfzds5pamg73h7370aa87d80gyhqxq5nlegake",
		legacyErr: ErrInvalidLength,
	}, {
		name:      "bad checksum",
		in:        "bitcoincash:qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqfnhks604",
		cashErr:   ErrInvalidChecksum,
		legacyErr: ErrInvalidChecksum,
	}, {
		name:      "bad legacy checksum",
		in:        "1PQPheJQSauxRPTxzNMUco1XmoCyPoEJCq",
		cashErr:   ErrBase58DecodeFailed,
		legacyErr: ErrBase58DecodeFailed,
	}}

	for _, test := range tests {
		cash, err := ToCashAddress(test.in)
		if !errors.Is(err, test.cashErr) {
			t.Errorf("%s: mismatched cashaddr err -- got %v, want %v",
				test.name, err, test.cashErr)
			continue
		}
		if cash != test.cash {
			t.Errorf("%s: mismatched cashaddr -- got %q, want %q", test.name,
				cash, test.cash)
			continue
		}

		legacy, err := ToLegacyAddress(test.in)
		if !errors.Is(err, test.legacyErr) {
			t.Errorf("%s: mismatched legacy err -- got %v, want %v",
				test.name, err, test.legacyErr)
			continue
		}
		if legacy != test.legacy {
			t.Errorf("%s: mismatched legacy -- got %q, want %q", test.name,
				legacy, test.legacy)
			continue
		}

		// Converting the results back must land on the same pair.
		if test.cashErr == nil && test.legacyErr == nil {
			back, err := ToCashAddress(legacy)
			if err != nil || back != cash {
				t.Errorf("%s: legacy->cashaddr -- got %q (err %v), want %q",
					test.name, back, err, cash)
				continue
			}
			back, err = ToLegacyAddress(cash)
			if err != nil || back != legacy {
				t.Errorf("%s: cashaddr->legacy -- got %q (err %v), want %q",
					test.name, back, err, legacy)
				continue
			}
		}
	}
}

// TestIsValid ensures validity checks agree with decoding and that rejected
// addresses are logged at the trace level.
func TestIsValid(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.NewBackend(&buf).Logger("CADR")
	logger.SetLevel(slog.LevelTrace)
	UseLogger(logger)
	defer UseLogger(slog.Disabled)

	tests := []struct {
		addr  string
		valid bool
	}{
		{"bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a", true},
		{"BITCOINCASH:QPM2QSZNHKS23Z7629MMS6S4CWEF74VCWVY22GDX6A", true},
		{"bchreg:qpm2qsznhks23z7629mms6s4cwef74vcwv6ycwvz78", true},
		{"bitcoincash:rr6m7j9njldwwzlg9v7v53unlr4jkmx6ey0k0ksnvy", true},
		{"1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu", true},
		{"2NFecgvisbwjgiLnwnbdwfNMj8fhrm9Fbqe", true},
		{"bitcoincash:qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqfnhks603", true},
		{"bitcoincash:qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqfnhks604", false},
		{"bitcoincash:qpm2qsznhKs23z7629mms6s4cwef74vcwvy22gdx6a", false},
		{"qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a", false},
		{"LhdLxrcEXFA1gCA8AWLmtp5Hz1aFc6raN2", false},
		{"", false},
	}

	var rejected int
	for _, test := range tests {
		if got := IsValid(test.addr); got != test.valid {
			t.Errorf("%q: mismatched validity -- got %v, want %v", test.addr,
				got, test.valid)
		}
		if !test.valid {
			rejected++
		}
	}

	logged := strings.Count(buf.String(), "Rejected address")
	if logged != rejected {
		t.Errorf("mismatched rejection log count -- got %d, want %d\n%s",
			logged, rejected, buf.String())
	}
	if !strings.Contains(buf.String(), "[TRC] CADR:") {
		t.Errorf("rejection not logged at trace level:\n%s", buf.String())
	}
}
