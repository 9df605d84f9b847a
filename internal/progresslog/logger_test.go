// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/decred/slog"
)

var (
	backendLog = slog.NewBackend(io.Discard)
	testLog    = backendLog.Logger("TEST")
)

// TestLogProgress ensures the logging functionality works as expected via a
// test logger.
func TestLogProgress(t *testing.T) {
	tests := []struct {
		name               string
		reset              bool
		failed             bool
		flush              bool
		inputLastLogTime   time.Time
		wantReceivedAddrs  uint64
		wantReceivedFailed uint64
	}{{
		name:              "round 1, addr 0, last log time < 10 secs ago",
		inputLastLogTime:  time.Now(),
		wantReceivedAddrs: 1,
	}, {
		name:               "round 1, addr 1, failed, last log time < 10 secs ago",
		failed:             true,
		inputLastLogTime:   time.Now(),
		wantReceivedAddrs:  2,
		wantReceivedFailed: 1,
	}, {
		name:               "round 1, addr 2, last log time < 10 secs ago, flushed",
		flush:              true,
		inputLastLogTime:   time.Now(),
		wantReceivedAddrs:  0,
		wantReceivedFailed: 0,
	}, {
		name:               "round 2, addr 0, failed, last log time < 10 secs ago",
		reset:              true,
		failed:             true,
		inputLastLogTime:   time.Now(),
		wantReceivedAddrs:  1,
		wantReceivedFailed: 1,
	}, {
		name:               "round 2, addr 1, last log time > 10 secs ago",
		inputLastLogTime:   time.Now().Add(-11 * time.Second),
		wantReceivedAddrs:  0,
		wantReceivedFailed: 0,
	}}

	progressLogger := New("Converted", testLog)
	for _, test := range tests {
		if test.reset {
			progressLogger = New("Converted", testLog)
		}
		progressLogger.SetLastLogTime(test.inputLastLogTime)
		progressLogger.LogProgress(test.failed)
		if test.flush {
			progressLogger.Flush()
		}
		want := &Logger{
			receivedAddrs:   test.wantReceivedAddrs,
			receivedFailed:  test.wantReceivedFailed,
			lastLogTime:     progressLogger.lastLogTime,
			progressAction:  progressLogger.progressAction,
			subsystemLogger: progressLogger.subsystemLogger,
		}
		if !reflect.DeepEqual(progressLogger, want) {
			t.Errorf("%s:\nwant: %+v\ngot: %+v\n", test.name, want,
				progressLogger)
		}
	}
}

// TestLogMessage ensures the progress message reports the totals and that an
// empty flush logs nothing.
func TestLogMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.NewBackend(&buf).Logger("TEST")
	logger.SetLevel(slog.LevelInfo)

	progressLogger := New("Converted", logger)
	progressLogger.Flush()
	if buf.Len() != 0 {
		t.Fatalf("unexpected output for empty flush: %q", buf.String())
	}

	progressLogger.LogProgress(false)
	progressLogger.Flush()
	if !strings.Contains(buf.String(), "Converted 1 address in the last") ||
		!strings.Contains(buf.String(), "(0 failed)") {

		t.Fatalf("unexpected message: %q", buf.String())
	}

	buf.Reset()
	progressLogger.LogProgress(true)
	progressLogger.SetLastLogTime(time.Now().Add(-time.Minute))
	progressLogger.LogProgress(false)
	if !strings.Contains(buf.String(), "Converted 2 addresses in the last") ||
		!strings.Contains(buf.String(), "(1 failed)") {

		t.Fatalf("unexpected message: %q", buf.String())
	}
}
