// Copyright (c) 2020-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package progresslog provides periodic logging for address conversion batches.

Tests are included to ensure proper functionality.

## Feature Overview

- Maintains cumulative totals about addresses between each logging interval
  - Total number of addresses processed
  - Total number of addresses that failed to convert
- Logs all cumulative data every 10 seconds
- Logs any outstanding data on demand when the batch finishes
*/
package progresslog
