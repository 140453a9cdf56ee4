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

package sam

import (
	"errors"
	"fmt"
	"strconv"
)

// HeaderLineErrorKind classifies header line errors.
type HeaderLineErrorKind int

// The kinds of header line errors.
const (
	MissingRequiredField HeaderLineErrorKind = iota + 1
	UnknownLineType
	DuplicateKey
	MalformedAnnotation
	MisplacedFileHeader
	MisplacedHeaderLine
)

func (k HeaderLineErrorKind) String() string {
	switch k {
	case MissingRequiredField:
		return "missing required field"
	case UnknownLineType:
		return "unknown header line type"
	case DuplicateKey:
		return "duplicate key"
	case MalformedAnnotation:
		return "malformed annotation"
	case MisplacedFileHeader:
		return "@HD line is not the first header line"
	case MisplacedHeaderLine:
		return "header line after the first alignment"
	default:
		return "header line error " + strconv.Itoa(int(k))
	}
}

// A HeaderLineError reports a problem with a single header line.
type HeaderLineError struct {
	Kind  HeaderLineErrorKind
	Code  string // line type code, such as "@SQ"
	Key   string // offending annotation key, if any
	Value string // offending text, if any
	Err   error
}

func (e *HeaderLineError) Error() string {
	msg := e.Kind.String()
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Key != "" {
		msg += " " + e.Key
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" in %q", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *HeaderLineError) Unwrap() error {
	return e.Err
}

// ErrMissingHeaderLine is reported when a header has @SQ, @RG, @PG,
// or @CO lines but no @HD line.
var ErrMissingHeaderLine = errors.New("missing @HD line")

// A HeaderBuildError is returned by HeaderBuilder.Build.
type HeaderBuildError struct {
	SQ, RG, PG, CO int // number of secondary lines of each type
}

func (e *HeaderBuildError) Error() string {
	return fmt.Sprintf("%v: header has %v @SQ, %v @RG, %v @PG, and %v @CO lines", ErrMissingHeaderLine, e.SQ, e.RG, e.PG, e.CO)
}

func (e *HeaderBuildError) Unwrap() error {
	return ErrMissingHeaderLine
}

// A ValidationError reports a record that violates one of the
// optional consistency checks.
type ValidationError struct {
	Check Checks
	QNAME string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.QNAME == "" {
		return "invalid record: " + e.Msg
	}
	return "invalid record " + e.QNAME + ": " + e.Msg
}
