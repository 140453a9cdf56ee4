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

// A Tag identifies an optional field. Tags are exactly two
// characters long.
type Tag [2]byte

// ParseTag converts the given string into a Tag. The first character
// must be a letter, the second a letter or a digit.
func ParseTag(s string) (Tag, error) {
	if len(s) != 2 || !isAlpha(s[0]) || !(isAlpha(s[1]) || isDigit(s[1])) {
		return Tag{}, &Error{Kind: InvalidTag, Value: s}
	}
	return Tag{s[0], s[1]}, nil
}

// MustTag is like ParseTag but panics if the string is not a valid
// tag. It is intended for package-level tag constants.
func MustTag(s string) Tag {
	tag, err := ParseTag(s)
	if err != nil {
		panic(err)
	}
	return tag
}

func (t Tag) String() string {
	return string(t[:])
}

func isAlpha(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Type is the declared type of an optional field. Its values are the
// type letters used on the wire.
type Type byte

// The optional field types.
const (
	Character    Type = 'A'
	Integer      Type = 'i'
	Float        Type = 'f'
	String       Type = 'Z'
	HexByteArray Type = 'H'
	NumericArray Type = 'B'
)

// ParseType converts a wire type letter into a Type.
func ParseType(letter byte) (Type, bool) {
	switch t := Type(letter); t {
	case Character, Integer, Float, String, HexByteArray, NumericArray:
		return t, true
	default:
		return 0, false
	}
}

func (t Type) String() string {
	switch t {
	case Character:
		return "Character"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case String:
		return "String"
	case HexByteArray:
		return "HexByteArray"
	case NumericArray:
		return "NumericArray"
	default:
		return fmt.Sprintf("Type(%q)", byte(t))
	}
}

// ArrayType is the element type of a NumericArray field. Its values
// are the sub-type letters used on the wire. The zero ArrayType is
// used for all other field types.
type ArrayType byte

// The numeric array element types.
const (
	NoArrayType ArrayType = 0
	Int8        ArrayType = 'c'
	Uint8       ArrayType = 'C'
	Int16       ArrayType = 's'
	Uint16      ArrayType = 'S'
	Int32       ArrayType = 'i'
	Uint32      ArrayType = 'I'
	Float32     ArrayType = 'f'
)

// ParseArrayType converts a wire sub-type letter into an ArrayType.
func ParseArrayType(letter byte) (ArrayType, bool) {
	switch a := ArrayType(letter); a {
	case Int8, Uint8, Int16, Uint16, Int32, Uint32, Float32:
		return a, true
	default:
		return NoArrayType, false
	}
}

// IsFloat reports whether elements of this type are floating point
// numbers.
func (a ArrayType) IsFloat() bool {
	return a == Float32
}

// bounds returns the inclusive range of integer element types.
func (a ArrayType) bounds() (min, max int64) {
	switch a {
	case Int8:
		return -1 << 7, 1<<7 - 1
	case Uint8:
		return 0, 1<<8 - 1
	case Int16:
		return -1 << 15, 1<<15 - 1
	case Uint16:
		return 0, 1<<16 - 1
	case Int32:
		return -1 << 31, 1<<31 - 1
	case Uint32:
		return 0, 1<<32 - 1
	default:
		return 0, 0
	}
}

func (a ArrayType) String() string {
	switch a {
	case NoArrayType:
		return "none"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Float32:
		return "float32"
	default:
		return fmt.Sprintf("ArrayType(%q)", byte(a))
	}
}
