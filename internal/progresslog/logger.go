// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"sync"
	"time"

	"github.com/decred/slog"
)

// logInterval is the minimum duration between progress messages.
const logInterval = time.Second * 10

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Logger provides periodic logging of progress towards converting a batch of
// addresses.
type Logger struct {
	sync.Mutex
	subsystemLogger slog.Logger
	progressAction  string

	// lastLogTime tracks the last time a log statement was shown.
	lastLogTime time.Time

	// These fields accumulate information about addresses between log
	// statements.
	receivedAddrs  uint64
	receivedFailed uint64
}

// New returns a new address progress logger.
func New(progressAction string, logger slog.Logger) *Logger {
	return &Logger{
		lastLogTime:     time.Now(),
		progressAction:  progressAction,
		subsystemLogger: logger,
	}
}

// LogProgress accumulates the result of a single address and periodically
// (every 10 seconds) logs an information message to show progress to the user
// along with duration and totals included.
//
// The progress message is templated as follows:
//  {progressAction} {numProcessed} {addresses|address} in the last
//  {timePeriod} ({numFailed} failed)
func (l *Logger) LogProgress(failed bool) {
	l.Lock()
	defer l.Unlock()

	l.receivedAddrs++
	if failed {
		l.receivedFailed++
	}
	now := time.Now()
	if now.Sub(l.lastLogTime) < logInterval {
		return
	}
	l.logLocked(now)
}

// Flush logs any addresses accumulated since the last progress message
// regardless of the time it was shown.
func (l *Logger) Flush() {
	l.Lock()
	defer l.Unlock()

	if l.receivedAddrs == 0 {
		return
	}
	l.logLocked(time.Now())
}

// logLocked logs and resets the accumulated totals.
//
// This function MUST be called with the logger lock held.
func (l *Logger) logLocked(now time.Time) {
	duration := now.Sub(l.lastLogTime).Truncate(10 * time.Millisecond)
	l.subsystemLogger.Infof("%s %d %s in the last %s (%d failed)",
		l.progressAction, l.receivedAddrs,
		pickNoun(l.receivedAddrs, "address", "addresses"), duration,
		l.receivedFailed)

	l.receivedAddrs = 0
	l.receivedFailed = 0
	l.lastLogTime = now
}

// SetLastLogTime updates the last time data was logged to the provided time.
func (l *Logger) SetLastLogTime(time time.Time) {
	l.Lock()
	l.lastLogTime = time
	l.Unlock()
}
