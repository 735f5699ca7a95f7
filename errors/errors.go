// Copyright 2026 The Dhall-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines the error types produced at the parser boundary
// of the Dhall kernel. Nothing inside the normalizer itself raises an
// error: see the package doc of normalize for why.
package errors

import (
	"fmt"
	"strings"

	"github.com/dhall-lang/dhall-go/token"
)

// A ParseError reports a syntactic problem found while scanning or parsing
// Dhall source. It carries the position of the offending token so callers
// can render a caret diagnostic.
type ParseError struct {
	Position token.Position
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

// List collects the ParseErrors found during a single parse. A List is
// itself an error so it can be returned wherever a single error is
// expected; List.Error prints every entry, one per line.
type List []*ParseError

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Add appends a new ParseError at pos with the given message.
func (l *List) Add(pos token.Position, msg string) {
	*l = append(*l, &ParseError{Position: pos, Message: msg})
}

// Addf is like Add but accepts a printf-style format string.
func (l *List) Addf(pos token.Position, format string, args ...interface{}) {
	l.Add(pos, fmt.Sprintf(format, args...))
}

// Err returns l as an error, or nil if l is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
