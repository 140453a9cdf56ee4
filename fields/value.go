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
	"math"
	"strconv"

	"github.com/exascience/alnformats/internal"
)

// A Value is the decoded payload of one optional field. Type selects
// which of the payloads is meaningful. NumericArray values always
// hold at least one element, all of type ArrayType.
type Value struct {
	Type      Type
	ArrayType ArrayType

	char    byte
	integer int64
	float   float64
	str     string
	bytes   []byte
	ints    []int64
	floats  []float64

	// wire text of decoded floats, written back unchanged
	text  string
	texts []string
}

// CharacterValue returns a Character value.
func CharacterValue(c byte) Value { return Value{Type: Character, char: c} }

// IntegerValue returns an Integer value.
func IntegerValue(i int64) Value { return Value{Type: Integer, integer: i} }

// FloatValue returns a Float value.
func FloatValue(f float64) Value { return Value{Type: Float, float: f} }

// StringValue returns a String value.
func StringValue(s string) Value { return Value{Type: String, str: s} }

// HexValue returns a HexByteArray value holding a copy of b.
func HexValue(b []byte) Value {
	return Value{Type: HexByteArray, bytes: append([]byte{}, b...)}
}

// IntegerArrayValue returns a NumericArray value with the given
// integer element type. It fails if the array is empty or an element
// is out of range for the element type.
func IntegerArrayValue(at ArrayType, elems []int64) (Value, error) {
	if _, ok := ParseArrayType(byte(at)); !ok || at.IsFloat() {
		return Value{}, &Error{Kind: InvalidArrayType, Value: string(rune(at))}
	}
	if len(elems) == 0 {
		return Value{}, &Error{Kind: ArityMismatch, Value: "empty numeric array"}
	}
	min, max := at.bounds()
	for _, e := range elems {
		if e < min || e > max {
			return Value{}, &Error{Kind: InvalidNumber, Value: strconv.FormatInt(e, 10)}
		}
	}
	return Value{Type: NumericArray, ArrayType: at, ints: append([]int64(nil), elems...)}, nil
}

// FloatArrayValue returns a NumericArray value of Float32 elements.
// It fails if the array is empty or an element overflows float32.
func FloatArrayValue(elems []float64) (Value, error) {
	if len(elems) == 0 {
		return Value{}, &Error{Kind: ArityMismatch, Value: "empty numeric array"}
	}
	for _, e := range elems {
		if overflowsFloat32(e) {
			return Value{}, &Error{Kind: InvalidNumber, Value: strconv.FormatFloat(e, 'g', -1, 64), Err: strconv.ErrRange}
		}
	}
	return Value{Type: NumericArray, ArrayType: Float32, floats: append([]float64(nil), elems...)}, nil
}

// Character returns the payload of a Character value.
func (v Value) Character() byte { return v.char }

// Integer returns the payload of an Integer value.
func (v Value) Integer() int64 { return v.integer }

// Float returns the payload of a Float value.
func (v Value) Float() float64 { return v.float }

// Text returns the payload of a String value.
func (v Value) Text() string { return v.str }

// Hex returns the payload of a HexByteArray value. The result must
// not be modified.
func (v Value) Hex() []byte { return v.bytes }

// Integers returns the elements of a NumericArray value with an
// integer element type. The result must not be modified.
func (v Value) Integers() []int64 { return v.ints }

// Floats returns the elements of a NumericArray value with a float
// element type. The result must not be modified.
func (v Value) Floats() []float64 { return v.floats }

// Len returns the number of elements of a NumericArray value, and 1
// for all other values.
func (v Value) Len() int {
	if v.Type != NumericArray {
		return 1
	}
	if v.ArrayType.IsFloat() {
		return len(v.floats)
	}
	return len(v.ints)
}

// Equal reports whether both values have the same type and payload.
// Floats are compared by their bit patterns, so a NaN equals itself.
func (v Value) Equal(other Value) bool {
	if v.Type != other.Type || v.ArrayType != other.ArrayType {
		return false
	}
	switch v.Type {
	case Character:
		return v.char == other.char
	case Integer:
		return v.integer == other.integer
	case Float:
		return math.Float64bits(v.float) == math.Float64bits(other.float)
	case String:
		return v.str == other.str
	case HexByteArray:
		return string(v.bytes) == string(other.bytes)
	case NumericArray:
		if v.ArrayType.IsFloat() {
			if len(v.floats) != len(other.floats) {
				return false
			}
			for i, f := range v.floats {
				if math.Float64bits(f) != math.Float64bits(other.floats[i]) {
					return false
				}
			}
			return true
		}
		if len(v.ints) != len(other.ints) {
			return false
		}
		for i, n := range v.ints {
			if n != other.ints[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Hash returns a hash value consistent with Equal.
func (v Value) Hash() uint64 {
	buf := internal.ReserveByteBuffer()
	defer internal.ReleaseByteBuffer(buf)
	v.text, v.texts = "", nil
	*buf = v.Append(append(*buf, byte(v.Type)))
	return internal.BytesHash(*buf)
}

/*
Append appends the wire representation of the value, without tag and
type letter, to out. NumericArray values are rendered as the element
type letter followed by comma-separated elements.

Floats that were decoded from text are written as they were read, so
"1.0" stays "1.0". Other floats use plain decimal notation with the
fewest digits that parse back to the same number.
*/
func (v Value) Append(out []byte) []byte {
	switch v.Type {
	case Character:
		return append(out, v.char)
	case Integer:
		return strconv.AppendInt(out, v.integer, 10)
	case Float:
		if v.text != "" {
			return append(out, v.text...)
		}
		return appendFloat(out, v.float)
	case String:
		return append(out, v.str...)
	case HexByteArray:
		return hex.AppendEncode(out, v.bytes)
	case NumericArray:
		out = append(out, byte(v.ArrayType))
		if v.ArrayType.IsFloat() {
			for i, f := range v.floats {
				out = append(out, ',')
				if i < len(v.texts) && v.texts[i] != "" {
					out = append(out, v.texts[i]...)
				} else {
					out = appendFloat(out, f)
				}
			}
			return out
		}
		for _, n := range v.ints {
			out = strconv.AppendInt(append(out, ','), n, 10)
		}
		return out
	default:
		return out
	}
}

// String returns the wire representation of the value, as Append
// does.
func (v Value) String() string {
	return string(v.Append(nil))
}

func appendFloat(out []byte, f float64) []byte {
	return strconv.AppendFloat(out, f, 'f', -1, 64)
}

func overflowsFloat32(f float64) bool {
	return !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32
}

// elementTexts returns the element texts of a float array, padded
// with empty strings to the number of elements.
func (v Value) elementTexts() []string {
	texts := make([]string, len(v.floats))
	copy(texts, v.texts)
	return texts
}
