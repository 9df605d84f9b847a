// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/decred/cashaddr"
	"github.com/decred/cashaddr/internal/progresslog"
	"github.com/decred/dcrd/container/lru"
)

// conversion is the outcome of processing a single input address.
type conversion struct {
	Input    string `json:"input"`
	Valid    bool   `json:"valid"`
	Type     string `json:"type,omitempty"`
	CashAddr string `json:"cashaddr,omitempty"`
	Legacy   string `json:"legacy,omitempty"`
	Error    string `json:"error,omitempty"`

	err error
}

// fail records err as the reason the conversion did not succeed.
func (c *conversion) fail(err error) {
	c.err = err
	c.Error = err.Error()
}

// runStats summarizes a run of the converter.
type runStats struct {
	processed int
	failed    int
}

// converter turns input addresses into output lines according to the
// configured format.  It is not safe for concurrent use.
type converter struct {
	format string
	prefix string
	check  bool
	out    io.Writer
	errOut io.Writer

	// enc is only set for JSON output.
	enc *json.Encoder

	// cache remembers recent conversions keyed by their input.  It is nil
	// when caching is disabled.
	cache *lru.Map[string, *conversion]

	progress *progresslog.Logger
}

// newConverter returns a converter configured by cfg that writes results to
// out and per-address failures to errOut.
func newConverter(cfg *config, out, errOut io.Writer) *converter {
	c := &converter{
		format: cfg.Format,
		prefix: cfg.Prefix,
		check:  cfg.Check,
		out:    out,
		errOut: errOut,

		progress: progresslog.New("Converted", convLog),
	}
	if cfg.JSON {
		c.enc = json.NewEncoder(out)
	}
	if cfg.CacheSize > 0 {
		c.cache = lru.NewMap[string, *conversion](cfg.CacheSize)
	}
	return c
}

// decodeInput parses an address in either format.  Unlike
// cashaddr.DecodeAddress, CashAddr input without a prefix is accepted and
// assumes the default prefix.
func decodeInput(input string) (*cashaddr.Address, error) {
	addr, err := cashaddr.DecodeAddress(input)
	if err == nil || strings.Contains(input, ":") {
		return addr, err
	}
	if addr, cashErr := cashaddr.DecodeCashAddress(input); cashErr == nil {
		return addr, nil
	}
	return nil, err
}

// convert returns the conversion of the input address, reusing a cached
// result when the same input was seen recently.
func (c *converter) convert(input string) *conversion {
	if c.cache != nil {
		if conv, ok := c.cache.Get(input); ok {
			convLog.Tracef("Using cached conversion of %q", input)
			return conv
		}
	}

	conv := c.convertUncached(input)
	if c.cache != nil {
		c.cache.Put(input, conv)
	}
	return conv
}

func (c *converter) convertUncached(input string) *conversion {
	conv := &conversion{Input: input}
	addr, err := decodeInput(input)
	if err != nil {
		conv.fail(err)
		return conv
	}
	conv.Valid = true
	conv.Type = addr.Version().String()
	if c.check {
		return conv
	}

	if c.prefix != "" {
		addr, err = cashaddr.NewAddress(addr.Version(), addr.Payload(), c.prefix)
		if err != nil {
			conv.fail(err)
			return conv
		}
	}

	switch c.format {
	case formatCash:
		conv.CashAddr, err = addr.CashAddress()

	case formatLegacy:
		conv.Legacy, err = addr.LegacyAddress()

	default:
		// Only fail when neither format can be rendered.  Token-aware and
		// wide payload addresses have no legacy form.
		var legacyErr error
		conv.CashAddr, err = addr.CashAddress()
		conv.Legacy, legacyErr = addr.LegacyAddress()
		if err == nil && legacyErr != nil {
			convLog.Debugf("Address %q has no legacy form: %v", input,
				legacyErr)
		}
	}
	if err != nil {
		conv.fail(err)
	}
	return conv
}

// write outputs the conversion.  Plain text output is one line per address
// on success.  In check mode, every address produces a line of valid or
// invalid.
func (c *converter) write(conv *conversion) error {
	if c.enc != nil {
		return c.enc.Encode(conv)
	}

	if c.check {
		result := "valid"
		if !conv.Valid {
			result = "invalid"
			convLog.Debugf("Address %q is invalid: %v", conv.Input, conv.err)
		}
		_, err := fmt.Fprintln(c.out, result)
		return err
	}

	if conv.err != nil {
		_, err := fmt.Fprintf(c.errOut, "%s: %v\n", conv.Input, conv.err)
		return err
	}

	var err error
	switch c.format {
	case formatCash:
		_, err = fmt.Fprintln(c.out, conv.CashAddr)
	case formatLegacy:
		_, err = fmt.Fprintln(c.out, conv.Legacy)
	default:
		legacy := conv.Legacy
		if legacy == "" {
			legacy = "-"
		}
		_, err = fmt.Fprintln(c.out, conv.CashAddr, legacy)
	}
	return err
}

// run converts every address received from inputs until the channel is
// closed or the context is canceled.
func (c *converter) run(ctx context.Context, inputs <-chan string) (runStats, error) {
	var stats runStats
	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()

		case input, ok := <-inputs:
			if !ok {
				c.progress.Flush()
				return stats, nil
			}
			if shutdownRequested(ctx) {
				return stats, ctx.Err()
			}

			conv := c.convert(input)
			stats.processed++
			if conv.err != nil {
				stats.failed++
			}
			c.progress.LogProgress(conv.err != nil)
			if err := c.write(conv); err != nil {
				return stats, fmt.Errorf("unable to write result: %w", err)
			}
		}
	}
}

// argInputs returns a closed channel holding the provided addresses along with
// a channel that reports no read error.
func argInputs(args []string) (<-chan string, <-chan error) {
	inputs := make(chan string, len(args))
	for _, arg := range args {
		inputs <- arg
	}
	close(inputs)

	errc := make(chan error, 1)
	errc <- nil
	return inputs, errc
}

// readLines delivers the addresses read from r, one per line, until EOF or
// the context is canceled.  Blank lines and lines starting with # are skipped.
// When prompt is not nil, a prompt is written to it before each line is read.
//
// The error channel receives the read error, if any, once the input channel is
// closed.
func readLines(ctx context.Context, r io.Reader, prompt io.Writer) (<-chan string, <-chan error) {
	inputs := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(inputs)

		scanner := bufio.NewScanner(r)
		for {
			if prompt != nil {
				fmt.Fprint(prompt, "Address: ")
			}
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			select {
			case inputs <- line:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()
	return inputs, errc
}
