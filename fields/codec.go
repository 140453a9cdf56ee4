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

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Integer values must fit the SAM range for the i type, which covers
// every integer array element type.
const (
	minInteger = -1 << 31
	maxInteger = 1<<32 - 1
)

func numberError(tag Tag, raw string, err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	return &Error{Tag: tag, Kind: InvalidNumber, Value: raw, Err: err}
}

func decodeCharacter(tag Tag, raw string) (Value, error) {
	if len(raw) != 1 || raw[0] < '!' || raw[0] > '~' {
		return Value{}, &Error{Tag: tag, Kind: InvalidCharacter, Value: raw}
	}
	return CharacterValue(raw[0]), nil
}

func decodeInteger(tag Tag, raw string) (Value, error) {
	i, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Value{}, numberError(tag, raw, err)
	}
	if i < minInteger || i > maxInteger {
		return Value{}, numberError(tag, raw, strconv.ErrRange)
	}
	return IntegerValue(i), nil
}

func decodeFloat(tag Tag, raw string) (Value, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Value{}, numberError(tag, raw, err)
	}
	return Value{Type: Float, float: f, text: raw}, nil
}

func decodeHex(tag Tag, raw string) (Value, error) {
	if len(raw)%2 != 0 {
		return Value{}, &Error{Tag: tag, Kind: InvalidHex, Value: raw, Err: hex.ErrLength}
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return Value{}, &Error{Tag: tag, Kind: InvalidHex, Value: raw, Err: err}
	}
	return Value{Type: HexByteArray, bytes: b}, nil
}

// decodeElements parses the elements of a numeric array of the given
// element type.
func decodeElements(tag Tag, at ArrayType, elems []string) (Value, error) {
	if len(elems) == 0 {
		return Value{}, &Error{Tag: tag, Kind: ArityMismatch, Value: "empty numeric array"}
	}
	if at.IsFloat() {
		floats := make([]float64, 0, len(elems))
		for _, e := range elems {
			f, err := strconv.ParseFloat(e, 64)
			if err != nil {
				return Value{}, numberError(tag, e, err)
			}
			// elements are stored with 64 bits, but must fit the B:f width
			if overflowsFloat32(f) {
				return Value{}, numberError(tag, e, strconv.ErrRange)
			}
			floats = append(floats, f)
		}
		texts := append([]string(nil), elems...)
		return Value{Type: NumericArray, ArrayType: at, floats: floats, texts: texts}, nil
	}
	min, max := at.bounds()
	ints := make([]int64, 0, len(elems))
	for _, e := range elems {
		n, err := strconv.ParseInt(e, 10, 64)
		if err != nil {
			return Value{}, numberError(tag, e, err)
		}
		if n < min || n > max {
			return Value{}, numberError(tag, e, strconv.ErrRange)
		}
		ints = append(ints, n)
	}
	return Value{Type: NumericArray, ArrayType: at, ints: ints}, nil
}

func parseArrayType(tag Tag, letter string) (ArrayType, error) {
	if len(letter) == 1 {
		if at, ok := ParseArrayType(letter[0]); ok {
			return at, nil
		}
	}
	return NoArrayType, &Error{Tag: tag, Kind: InvalidArrayType, Value: letter}
}

// DecodeArray decodes the VALUE part of a B field, such as
// "i,1,2,3". If n is not negative, the array must have exactly n
// elements.
func DecodeArray(tag Tag, raw string, n int) (Value, error) {
	parts := strings.Split(raw, ",")
	at, err := parseArrayType(tag, parts[0])
	if err != nil {
		return Value{}, err
	}
	if n >= 0 && len(parts)-1 != n {
		return Value{}, &Error{
			Tag:   tag,
			Kind:  ArityMismatch,
			Value: "expected " + strconv.Itoa(n) + " elements, got " + strconv.Itoa(len(parts)-1),
		}
	}
	return decodeElements(tag, at, parts[1:])
}

var decodeTable = map[Type]func(Tag, string) (Value, error){
	Character:    decodeCharacter,
	Integer:      decodeInteger,
	Float:        decodeFloat,
	String:       func(_ Tag, raw string) (Value, error) { return StringValue(raw), nil },
	HexByteArray: decodeHex,
	NumericArray: func(tag Tag, raw string) (Value, error) { return DecodeArray(tag, raw, -1) },
}

// Decode decodes the VALUE part of an optional field, given its type
// letter.
func Decode(tag Tag, typeLetter byte, raw string) (Value, error) {
	t, ok := ParseType(typeLetter)
	if !ok {
		return Value{}, &Error{Tag: tag, Kind: InvalidType, Value: string(rune(typeLetter))}
	}
	return decodeTable[t](tag, raw)
}

// AppendField appends the complete TAG:TYPE:VALUE representation of
// an optional field to out.
func AppendField(out []byte, tag Tag, v Value) []byte {
	out = append(out, tag[0], tag[1], ':', byte(v.Type), ':')
	return v.Append(out)
}

// Encode returns the complete TAG:TYPE:VALUE representation of an
// optional field.
func Encode(tag Tag, v Value) string {
	return string(AppendField(nil, tag, v))
}
