// Copyright 2020 The Hugo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package loggers

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	jww "github.com/spf13/jwalterweatherman"
)

// Logger is the logger used across the cheatsheet packages.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)

	// Process traces a construction step at debug level.
	Process(step, msg string)

	// ErrorCount is the number of errors logged so far.
	ErrorCount() int

	Out() io.Writer
}

type logger struct {
	*jww.Notepad
	out          io.Writer
	errorCounter *jww.Counter
}

func (l *logger) Debugf(format string, v ...any) { l.DEBUG.Printf(format, v...) }
func (l *logger) Infof(format string, v ...any)  { l.INFO.Printf(format, v...) }
func (l *logger) Warnf(format string, v ...any)  { l.WARN.Printf(format, v...) }
func (l *logger) Errorf(format string, v ...any) { l.ERROR.Printf(format, v...) }

func (l *logger) Process(step, msg string) {
	l.DEBUG.Printf("%s: %s", step, msg)
}

func (l *logger) ErrorCount() int {
	return int(l.errorCounter.Count())
}

func (l *logger) Out() io.Writer {
	return l.out
}

// NewDefault creates a new logger that writes warnings and errors to stderr.
func NewDefault() Logger {
	return NewBasicLoggerForWriter(jww.LevelWarn, os.Stderr)
}

// NewBasicLoggerForWriter creates a new basic logger writing to w.
func NewBasicLoggerForWriter(t jww.Threshold, w io.Writer) Logger {
	return newLogger(t, jww.LevelError, w, io.Discard)
}

// NewBufferLogger creates a logger that writes everything, including debug
// output, to the returned buffer. Used in tests.
func NewBufferLogger() (Logger, *bytes.Buffer) {
	var b bytes.Buffer
	return newLogger(jww.LevelDebug, jww.LevelError, &b, io.Discard), &b
}

func newLogger(stdoutThreshold, logThreshold jww.Threshold, outHandle, logHandle io.Writer) *logger {
	errorCounter := &jww.Counter{}
	notepad := jww.NewNotepad(stdoutThreshold, logThreshold, outHandle, logHandle, "", logFlags(outHandle), jww.LogCounter(errorCounter, jww.LevelError))

	return &logger{
		Notepad:      notepad,
		out:          outHandle,
		errorCounter: errorCounter,
	}
}

// logFlags drops the timestamps when writing to an interactive terminal.
func logFlags(w io.Writer) int {
	if isTerminal(w) {
		return 0
	}
	return log.Ldate | log.Ltime
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

