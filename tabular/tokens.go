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

import (
	"strconv"
	"strings"

	"github.com/exascience/alnformats/fields"
)

// Sentinel is the wire representation of an absent mandatory string
// field.
const Sentinel = "*"

// Split splits a line into tokens separated by single tabs.
func Split(text string) []string {
	return strings.Split(text, "\t")
}

// CheckTokens fails with a TooFewTokens error if there are fewer than
// min tokens.
func CheckTokens(tokens []string, min int) error {
	if len(tokens) < min {
		return &RecordError{
			Kind:  TooFewTokens,
			Value: strconv.Itoa(len(tokens)),
			Err:   errNeed(min),
		}
	}
	return nil
}

type errNeed int

func (n errNeed) Error() string {
	return "need at least " + strconv.Itoa(int(n)) + " tab-separated fields"
}

// String decodes a mandatory string field. The sentinel * decodes to
// the empty string, which stands for an absent value.
func String(token string) string {
	if token == Sentinel {
		return ""
	}
	return token
}

// AppendString appends a mandatory string field to out, writing an
// absent value as the sentinel *.
func AppendString(out []byte, s string) []byte {
	if s == "" {
		return append(out, Sentinel...)
	}
	return append(out, s...)
}

func mandatoryError(name, token string, err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	return &RecordError{Kind: InvalidMandatoryField, Field: name, Value: token, Err: err}
}

// Int parses a signed mandatory integer field of the given bit size.
func Int(token, name string, bitSize int) (int64, error) {
	value, err := strconv.ParseInt(token, 10, bitSize)
	if err != nil {
		return 0, mandatoryError(name, token, err)
	}
	return value, nil
}

// Uint parses an unsigned mandatory integer field of the given bit
// size.
func Uint(token, name string, bitSize int) (uint64, error) {
	value, err := strconv.ParseUint(token, 10, bitSize)
	if err != nil {
		return 0, mandatoryError(name, token, err)
	}
	return value, nil
}

// Char parses a mandatory single-character field that must be one
// of the allowed characters.
func Char(token, name, allowed string) (byte, error) {
	if len(token) != 1 || strings.IndexByte(allowed, token[0]) < 0 {
		return 0, &RecordError{Kind: InvalidMandatoryField, Field: name, Value: token}
	}
	return token[0], nil
}

// ParseOptionalField parses one TAG:TYPE:VALUE token and puts the
// decoded value into fs. For B fields, the first comma-separated part
// of VALUE is the element type letter.
func ParseOptionalField(token string, fs *fields.Fields) error {
	parts := strings.SplitN(token, ":", 3)
	if len(parts) < 3 {
		return &RecordError{Kind: MalformedOptionalField, Value: token}
	}
	tag, err := fields.ParseTag(parts[0])
	if err != nil {
		return &RecordError{Kind: MalformedOptionalField, Value: token, Err: err}
	}
	if len(parts[1]) != 1 {
		return &fields.Error{Tag: tag, Kind: fields.InvalidType, Value: parts[1]}
	}
	value, err := fields.Decode(tag, parts[1][0], parts[2])
	if err != nil {
		return err
	}
	return fs.PutValue(tag, value)
}

// ParseOptionalFields parses all tokens as optional fields into fs.
func ParseOptionalFields(tokens []string, fs *fields.Fields) error {
	for _, token := range tokens {
		if err := ParseOptionalField(token, fs); err != nil {
			return err
		}
	}
	return nil
}
