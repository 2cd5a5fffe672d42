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

package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

var brackets = map[Level]string{
	Trace: "[TRACE]",
	Debug: "[DEBUG]",
	Info:  "[INFO] ",
	Warn:  "[WARN] ",
	Error: "[ERROR]",
}

type internalLogger struct {
	name       string
	level      Level
	timeFormat string

	// Shared by every derived logger, as is the output.
	mutex *sync.Mutex
	out   io.Writer
}

func (l *internalLogger) Named(name string) Logger {
	sub := *l
	if sub.name != "" {
		sub.name = sub.name + "." + name
	} else {
		sub.name = name
	}
	return &sub
}

func (l *internalLogger) Level() Level {
	return l.level
}

func (l *internalLogger) enabled(level Level) bool {
	return l.level != Off && level <= l.level
}

func (l *internalLogger) log(level Level, msg string) {
	if !l.enabled(level) {
		return
	}
	l.write(time.Now(), level, msg)
}

func (l *internalLogger) logf(level Level, format string, args ...interface{}) {
	if !l.enabled(level) {
		return
	}
	l.write(time.Now(), level, fmt.Sprintf(format, args...))
}

func (l *internalLogger) write(tm time.Time, level Level, msg string) {
	var buf bytes.Buffer

	buf.WriteString(tm.Format(l.timeFormat))
	buf.WriteByte(' ')
	buf.WriteString(levelToBracket(level))
	buf.WriteByte(' ')
	if l.name != "" {
		buf.WriteString(l.name)
		buf.WriteString(": ")
	}
	buf.WriteString(msg)
	buf.WriteByte('\n')

	l.mutex.Lock()
	defer l.mutex.Unlock()
	_, _ = l.out.Write(buf.Bytes())
}

func levelToBracket(level Level) string {
	s, ok := brackets[level]
	if !ok {
		s = "[?????]"
	}
	return s
}

func (l *internalLogger) Trace(msg string) {
	l.log(Trace, msg)
}

func (l *internalLogger) Tracef(format string, args ...interface{}) {
	l.logf(Trace, format, args...)
}

func (l *internalLogger) Debug(msg string) {
	l.log(Debug, msg)
}

func (l *internalLogger) Debugf(format string, args ...interface{}) {
	l.logf(Debug, format, args...)
}

func (l *internalLogger) Info(msg string) {
	l.log(Info, msg)
}

func (l *internalLogger) Infof(format string, args ...interface{}) {
	l.logf(Info, format, args...)
}

func (l *internalLogger) Warn(msg string) {
	l.log(Warn, msg)
}

func (l *internalLogger) Warnf(format string, args ...interface{}) {
	l.logf(Warn, format, args...)
}

func (l *internalLogger) Error(msg string) {
	l.log(Error, msg)
}

func (l *internalLogger) Errorf(format string, args ...interface{}) {
	l.logf(Error, format, args...)
}
