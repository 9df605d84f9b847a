// Copyright (c) 2017-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sampleconfig provides the commented example configuration file of
// cashaddrconv.
package sampleconfig

import (
	_ "embed"
)

// sampleCashaddrconvConf is a string containing the commented example config
// for cashaddrconv.
//
//go:embed sample-cashaddrconv.conf
var sampleCashaddrconvConf string

// Cashaddrconv returns a string containing the commented example config for
// cashaddrconv.
func Cashaddrconv() string {
	return sampleCashaddrconvConf
}
