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

package fields

import "fmt"

// ErrorKind classifies field decoding errors.
type ErrorKind int

// The kinds of field decoding errors.
const (
	InvalidCharacter ErrorKind = iota + 1
	InvalidNumber
	InvalidHex
	ArityMismatch
	TypeMismatch
	InvalidTag
	InvalidType
	InvalidArrayType
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "invalid character"
	case InvalidNumber:
		return "invalid number"
	case InvalidHex:
		return "invalid hex byte array"
	case ArityMismatch:
		return "arity mismatch"
	case TypeMismatch:
		return "type mismatch"
	case InvalidTag:
		return "invalid tag"
	case InvalidType:
		return "invalid type"
	case InvalidArrayType:
		return "invalid numeric array type"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error reports a malformed or mistyped optional field value.
type Error struct {
	Tag   Tag
	Kind  ErrorKind
	Value string // the offending text, or a description for arity and type errors
	Err   error  // underlying cause, if any
}

func (e *Error) Error() string {
	var tag string
	if e.Tag != (Tag{}) {
		tag = " in optional field " + e.Tag.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%v %q%v: %v", e.Kind, e.Value, tag, e.Err)
	}
	return fmt.Sprintf("%v %q%v", e.Kind, e.Value, tag)
}

func (e *Error) Unwrap() error {
	return e.Err
}
