// alnformats: codecs for SAM, PAF and GAF alignment records.
// Copyright (c) 2017-2021 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/exascience/alnformats/blob/master/LICENSE.txt>.

package tabular

import "fmt"

// ErrorKind classifies record parse errors.
type ErrorKind int

// The kinds of record parse errors.
const (
	TooFewTokens ErrorKind = iota + 1
	InvalidMandatoryField
	MalformedOptionalField
)

func (k ErrorKind) String() string {
	switch k {
	case TooFewTokens:
		return "too few tokens"
	case InvalidMandatoryField:
		return "invalid mandatory field"
	case MalformedOptionalField:
		return "malformed optional field"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// RecordError reports a record line that does not have the shape
// required by its format.
type RecordError struct {
	Kind  ErrorKind
	Field string // name of the mandatory field, if any
	Value string // the offending token, or the token count
	Err   error
}

func (e *RecordError) Error() string {
	msg := e.Kind.String()
	if e.Field != "" {
		msg += " " + e.Field
	}
	msg += fmt.Sprintf(" %q", e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// LineError attaches a 1-based input line number to a parse error.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// AtLine wraps err with the given line number. It returns nil if err
// is nil, and err itself if it already carries a line number.
func AtLine(line int, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*LineError); ok {
		return err
	}
	return &LineError{Line: line, Err: err}
}
