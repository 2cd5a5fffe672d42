/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package log implements a levelled logger that writes plain text lines
// in the form:
//
//	<time> [LEVEL] <name>: <message>
package log

import (
	"io"
	"strings"
	"sync"
)

type Level int

const (
	// NotSet is used when the level cannot be inferred.
	NotSet Level = iota

	// Off disables every trace.
	Off

	Error

	Warn

	Info

	Debug

	Trace
)

func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Trace:
		return "trace"
	default:
		return "unknown"
	}
}

// LevelFromString returns a Level type for the named log level, or
// "NotSet" if the level passed as argument is invalid.
func LevelFromString(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "off", "silent":
		return Off
	case "error":
		return Error
	case "warn":
		return Warn
	case "info":
		return Info
	case "debug":
		return Debug
	case "trace":
		return Trace
	default:
		return NotSet
	}
}

type Logger interface {
	Trace(msg string)
	Tracef(format string, args ...interface{})
	Debug(msg string)
	Debugf(format string, args ...interface{})
	Info(msg string)
	Infof(format string, args ...interface{})
	Warn(msg string)
	Warnf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})

	// Named returns a logger that prepends the given name to every
	// message. A previously set name is kept as a prefix.
	Named(name string) Logger

	// Level returns the threshold of the logger.
	Level() Level
}

// LoggerOptions can be used to configure a new logger.
type LoggerOptions struct {
	// Name of the subsystem to prefix logs with.
	Name string

	// Level is the threshold for the logger. Any trace less
	// severe is suppressed.
	Level Level

	// Output is where logs are written to. Defaults to DefaultOutput.
	Output io.Writer

	// TimeFormat defaults to DefaultTimeFormat.
	TimeFormat string

	// Mutex is an optional mutex pointer in case Output is shared.
	Mutex *sync.Mutex
}

func New(opts *LoggerOptions) Logger {
	if opts == nil {
		opts = &LoggerOptions{}
	}

	output := opts.Output
	if output == nil {
		output = DefaultOutput
	}

	level := opts.Level
	if level == NotSet {
		level = DefaultLevel
	}

	mutex := opts.Mutex
	if mutex == nil {
		mutex = new(sync.Mutex)
	}

	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	return &internalLogger{
		name:       opts.Name,
		level:      level,
		timeFormat: timeFormat,
		mutex:      mutex,
		out:        output,
	}
}
