//----------------------------------------------------------------------
// This file is part of mpqs.
// Copyright (C) 2024-present, Bernd Fix  >Y<
//
// mpqs is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// mpqs is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package logger

import (
	"fmt"
	"os"
	"time"
)

// Logging levels
const (
	// CRITICAL errors
	CRITICAL = iota
	// SEVERE errors
	SEVERE
	// ERROR message
	ERROR
	// WARN for warning messages
	WARN
	// INFO is for informational messages
	INFO
	// DBG for debug messages
	DBG
)

type logMsg struct {
	level int
	ts    time.Time
	text  string
}

type logger struct {
	msgChan chan *logMsg // messages to be logged
	flushed chan struct{}
	out     *os.File // log sink
	level   int      // current log level
}

// singleton logger instance
var logInst *logger

// Instantiate new logger (to stdout) and run its handler loop.
func init() {
	logInst = &logger{
		msgChan: make(chan *logMsg),
		flushed: make(chan struct{}),
		out:     os.Stdout,
		level:   INFO,
	}
	go func() {
		for msg := range logInst.msgChan {
			if msg == nil {
				logInst.flushed <- struct{}{}
				continue
			}
			logInst.out.WriteString(format(msg))
		}
	}()
}

// format a log message for output.
func format(msg *logMsg) string {
	ts := msg.ts.Format(time.Stamp)
	return fmt.Sprintf("%s %s%s\n", ts, getTag(msg.level), msg.text)
}

// Println punches logging data for given level.
func Println(level int, line string) {
	if level <= logInst.level {
		logInst.msgChan <- &logMsg{level: level, ts: time.Now(), text: line}
	}
}

// Printf punches formatted logging data for given level.
func Printf(level int, format string, v ...any) {
	Println(level, fmt.Sprintf(format, v...))
}

// Flush waits until all pending messages are written.
func Flush() {
	logInst.msgChan <- nil
	<-logInst.flushed
}

// Since returns the elapsed time for a started operation, rounded
// to milliseconds.
func Since(start time.Time) time.Duration {
	return time.Since(start).Round(time.Millisecond)
}

// GetLogLevel returns the numeric log level.
func GetLogLevel() int {
	return logInst.level
}

// SetLogLevel sets the logging level from numeric value.
func SetLogLevel(lvl int) {
	if lvl < CRITICAL || lvl > DBG {
		Printf(WARN, "[logger] unknown loglevel '%d' requested -- ignored.", lvl)
		return
	}
	logInst.level = lvl
}

// getTag returns the human-readable prefix for a log level.
func getTag(level int) string {
	switch level {
	case CRITICAL:
		return "{C}"
	case SEVERE:
		return "{S}"
	case ERROR:
		return "{E}"
	case WARN:
		return "{W}"
	case INFO:
		return "{I}"
	case DBG:
		return "{D}"
	}
	return "{?}"
}
