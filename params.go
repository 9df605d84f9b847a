// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

// DefaultPrefix is the CashAddr prefix assumed when an address omits it and
// used when an address is constructed without one.
const DefaultPrefix = "bitcoincash"

// Params defines the per-network values needed to render and parse addresses.
type Params struct {
	// Name is a human-readable identifier for the network.
	Name string

	// Prefix is the CashAddr prefix of the network.
	Prefix string

	// LegacyPubKeyHashAddrID is the legacy version byte of pay-to-pubkey-hash
	// addresses.
	LegacyPubKeyHashAddrID byte

	// LegacyScriptHashAddrID is the legacy version byte of
	// pay-to-script-hash addresses.
	LegacyScriptHashAddrID byte
}

// MainNetParams defines the address parameters of the main network.
var MainNetParams = Params{
	Name:                   "mainnet",
	Prefix:                 DefaultPrefix,
	LegacyPubKeyHashAddrID: 0x00, // starts with 1
	LegacyScriptHashAddrID: 0x05, // starts with 3
}

// TestNetParams defines the address parameters of the test network.
var TestNetParams = Params{
	Name:                   "testnet3",
	Prefix:                 "bchtest",
	LegacyPubKeyHashAddrID: 0x6f, // starts with m or n
	LegacyScriptHashAddrID: 0xc4, // starts with 2
}

// RegNetParams defines the address parameters of the regression test network.
// The legacy version bytes are shared with the test network.
var RegNetParams = Params{
	Name:                   "regtest",
	Prefix:                 "bchreg",
	LegacyPubKeyHashAddrID: 0x6f,
	LegacyScriptHashAddrID: 0xc4,
}

// legacyNets is the search order used to resolve legacy version bytes.
// Regression test addresses are indistinguishable from test network addresses
// in legacy form, so they decode with the test network prefix.
var legacyNets = []*Params{&MainNetParams, &TestNetParams}

// ParamsForPrefix returns the network parameters whose prefix matches the
// provided one.  Unrecognized prefixes use the main network parameters since
// the prefix plays no part in the legacy format.
func ParamsForPrefix(prefix string) *Params {
	switch prefix {
	case TestNetParams.Prefix:
		return &TestNetParams
	case RegNetParams.Prefix:
		return &RegNetParams
	}
	return &MainNetParams
}
