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
	"strconv"

	"github.com/exascience/alnformats/internal"
)

// A Field is one tag of a Fields container together with its declared
// type and its values in insertion order. A NumericArray field always
// holds exactly one array value.
type Field struct {
	Tag       Tag
	Type      Type
	ArrayType ArrayType
	values    []Value
}

// Values returns the values of the field. The result must not be
// modified.
func (f Field) Values() []Value {
	return f.values
}

// Append appends the wire representation of the field to out. Each
// value of a scalar field is rendered as a separate TAG:TYPE:VALUE
// field, each preceded by a tab.
func (f Field) Append(out []byte) []byte {
	for _, v := range f.values {
		out = AppendField(append(out, '\t'), f.Tag, v)
	}
	return out
}

func (f Field) equal(other Field) bool {
	if f.Tag != other.Tag || f.Type != other.Type || f.ArrayType != other.ArrayType ||
		len(f.values) != len(other.values) {
		return false
	}
	for i, v := range f.values {
		if !v.Equal(other.values[i]) {
			return false
		}
	}
	return true
}

/*
Fields is an ordered, tag-keyed container of optional fields.

Tags are kept in the order in which they were first put, and the
values of a tag are kept together. Append therefore writes a repeated
tag next to its first occurrence: NM:i:0, MD:Z:1, NM:i:1 is written
back as NM:i:0, NM:i:1, MD:Z:1. The zero Fields is valid and empty. A Fields value that has been handed out as
part of a record must not be modified; use Clone to obtain an
independent copy.
*/
type Fields struct {
	entries []Field
}

func (fs *Fields) index(tag Tag) int {
	for i := range fs.entries {
		if fs.entries[i].Tag == tag {
			return i
		}
	}
	return -1
}

// Len returns the number of distinct tags.
func (fs *Fields) Len() int {
	return len(fs.entries)
}

// Contains reports whether a value has been put for the given tag.
func (fs *Fields) Contains(tag Tag) bool {
	return fs.index(tag) >= 0
}

// Tags returns the tags in insertion order.
func (fs *Fields) Tags() []Tag {
	tags := make([]Tag, len(fs.entries))
	for i, f := range fs.entries {
		tags[i] = f.Tag
	}
	return tags
}

// Entries returns all fields in insertion order. The result must not
// be modified.
func (fs *Fields) Entries() []Field {
	return fs.entries
}

// Field returns the field for the given tag.
func (fs *Fields) Field(tag Tag) (Field, bool) {
	if i := fs.index(tag); i >= 0 {
		return fs.entries[i], true
	}
	return Field{}, false
}

// PutValue adds an already decoded value for the given tag.
//
// The first put on a tag declares its type. Putting a value of a
// different type, or a numeric array of a different element type, on
// the same tag fails with a TypeMismatch error. Scalar values
// accumulate, and numeric arrays are extended with the elements of v.
func (fs *Fields) PutValue(tag Tag, v Value) error {
	i := fs.index(tag)
	if i < 0 {
		if v.Type == NumericArray {
			// the container owns its arrays, since later puts extend them in place
			v.ints = append([]int64(nil), v.ints...)
			v.floats = append([]float64(nil), v.floats...)
			v.texts = append([]string(nil), v.texts...)
		}
		fs.entries = append(fs.entries, Field{Tag: tag, Type: v.Type, ArrayType: v.ArrayType, values: []Value{v}})
		return nil
	}
	f := &fs.entries[i]
	if f.Type != v.Type || f.ArrayType != v.ArrayType {
		return &Error{
			Tag:   tag,
			Kind:  TypeMismatch,
			Value: "declared " + f.Type.String() + ", got " + v.Type.String(),
		}
	}
	if v.Type == NumericArray {
		array := &f.values[0]
		if array.texts != nil || v.texts != nil {
			array.texts = append(array.elementTexts(), v.elementTexts()...)
		}
		array.ints = append(array.ints, v.ints...)
		array.floats = append(array.floats, v.floats...)
		return nil
	}
	f.values = append(f.values, v)
	return nil
}

// decodeAll decodes raw values according to the given type. For
// NumericArray, the raw values are the array elements and the
// result is a single array value.
func decodeAll(tag Tag, t Type, at ArrayType, raw []string) ([]Value, error) {
	if len(raw) == 0 {
		return nil, &Error{Tag: tag, Kind: ArityMismatch, Value: "no values"}
	}
	if t == NumericArray {
		if _, ok := ParseArrayType(byte(at)); !ok {
			return nil, &Error{Tag: tag, Kind: InvalidArrayType, Value: string(rune(at))}
		}
		v, err := decodeElements(tag, at, raw)
		if err != nil {
			return nil, err
		}
		return []Value{v}, nil
	}
	if at != NoArrayType {
		return nil, &Error{Tag: tag, Kind: InvalidArrayType, Value: string(rune(at))}
	}
	values := make([]Value, 0, len(raw))
	for _, r := range raw {
		v, err := Decode(tag, byte(t), r)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Put decodes the given raw values according to the given type and
// adds them for the given tag, with the semantics of PutValue. For
// NumericArray, the raw values are the array elements, and at must
// be the element type; for other types at must be NoArrayType.
//
// Either all values are added, or none.
func (fs *Fields) Put(tag Tag, t Type, at ArrayType, raw ...string) error {
	values, err := decodeAll(tag, t, at, raw)
	if err != nil {
		return err
	}
	if f, ok := fs.Field(tag); ok && (f.Type != t || f.ArrayType != at) {
		return &Error{Tag: tag, Kind: TypeMismatch, Value: "declared " + f.Type.String() + ", got " + t.String()}
	}
	for _, v := range values {
		_ = fs.PutValue(tag, v)
	}
	return nil
}

// Replace is like Put, but first discards the type and all values
// previously held by the tag. The tag keeps its position. This is
// more expensive than Put; use sparingly.
func (fs *Fields) Replace(tag Tag, t Type, at ArrayType, raw ...string) error {
	values, err := decodeAll(tag, t, at, raw)
	if err != nil {
		return err
	}
	fs.replace(tag, Field{Tag: tag, Type: t, ArrayType: at, values: values})
	return nil
}

// ReplaceValue is like PutValue, but first discards the type and all
// values previously held by the tag.
func (fs *Fields) ReplaceValue(tag Tag, v Value) {
	if v.Type == NumericArray {
		v.ints = append([]int64(nil), v.ints...)
		v.floats = append([]float64(nil), v.floats...)
		v.texts = append([]string(nil), v.texts...)
	}
	fs.replace(tag, Field{Tag: tag, Type: v.Type, ArrayType: v.ArrayType, values: []Value{v}})
}

func (fs *Fields) replace(tag Tag, f Field) {
	if i := fs.index(tag); i >= 0 {
		fs.entries[i] = f
		return
	}
	fs.entries = append(fs.entries, f)
}

// Delete removes the given tag, and reports whether it was present.
func (fs *Fields) Delete(tag Tag) bool {
	i := fs.index(tag)
	if i < 0 {
		return false
	}
	fs.entries = append(fs.entries[:i:i], fs.entries[i+1:]...)
	return true
}

// Reset removes all fields.
func (fs *Fields) Reset() {
	fs.entries = nil
}

// Clone returns a deep copy that shares no storage with fs.
func (fs *Fields) Clone() Fields {
	if fs.entries == nil {
		return Fields{}
	}
	entries := make([]Field, len(fs.entries))
	for i, f := range fs.entries {
		values := make([]Value, len(f.values))
		copy(values, f.values)
		for j := range values {
			values[j].bytes = append([]byte(nil), values[j].bytes...)
			values[j].ints = append([]int64(nil), values[j].ints...)
			values[j].floats = append([]float64(nil), values[j].floats...)
			values[j].texts = append([]string(nil), values[j].texts...)
		}
		f.values = values
		entries[i] = f
	}
	return Fields{entries: entries}
}

// GetValues returns all values held by the given tag in insertion
// order, or nil if the tag is absent.
func (fs *Fields) GetValues(tag Tag) []Value {
	f, _ := fs.Field(tag)
	return f.values
}

// Get returns the single value held by the given tag. The boolean
// result is false if the tag is absent. If the tag holds more than one
// value, Get fails with an ArityMismatch error.
func (fs *Fields) Get(tag Tag) (Value, bool, error) {
	f, ok := fs.Field(tag)
	if !ok {
		return Value{}, false, nil
	}
	if len(f.values) != 1 {
		return Value{}, true, &Error{
			Tag:   tag,
			Kind:  ArityMismatch,
			Value: "expected 1 value, got " + strconv.Itoa(len(f.values)),
		}
	}
	return f.values[0], true, nil
}

func (fs *Fields) getTyped(tag Tag, t Type) (Value, bool, error) {
	v, ok, err := fs.Get(tag)
	if !ok {
		return Value{}, false, nil
	}
	if f, _ := fs.Field(tag); f.Type != t {
		return Value{}, true, &Error{Tag: tag, Kind: TypeMismatch, Value: "declared " + f.Type.String() + ", requested " + t.String()}
	}
	return v, true, err
}

// GetCharacter returns the single Character value of the given tag.
func (fs *Fields) GetCharacter(tag Tag) (byte, bool, error) {
	v, ok, err := fs.getTyped(tag, Character)
	return v.char, ok, err
}

// GetInteger returns the single Integer value of the given tag.
func (fs *Fields) GetInteger(tag Tag) (int64, bool, error) {
	v, ok, err := fs.getTyped(tag, Integer)
	return v.integer, ok, err
}

// GetFloat returns the single Float value of the given tag.
func (fs *Fields) GetFloat(tag Tag) (float64, bool, error) {
	v, ok, err := fs.getTyped(tag, Float)
	return v.float, ok, err
}

// GetString returns the single String value of the given tag.
func (fs *Fields) GetString(tag Tag) (string, bool, error) {
	v, ok, err := fs.getTyped(tag, String)
	return v.str, ok, err
}

// GetHex returns the single HexByteArray value of the given tag. The
// result must not be modified.
func (fs *Fields) GetHex(tag Tag) ([]byte, bool, error) {
	v, ok, err := fs.getTyped(tag, HexByteArray)
	return v.bytes, ok, err
}

// GetIntegers returns all integers held by the given tag: either all
// values of an Integer tag, or all elements of a NumericArray tag with
// an integer element type, in insertion order.
func (fs *Fields) GetIntegers(tag Tag) ([]int64, bool, error) {
	f, ok := fs.Field(tag)
	if !ok {
		return nil, false, nil
	}
	switch {
	case f.Type == Integer:
		ints := make([]int64, len(f.values))
		for i, v := range f.values {
			ints[i] = v.integer
		}
		return ints, true, nil
	case f.Type == NumericArray && !f.ArrayType.IsFloat():
		return append([]int64(nil), f.values[0].ints...), true, nil
	default:
		return nil, true, &Error{Tag: tag, Kind: TypeMismatch, Value: "declared " + f.Type.String() + ", requested integers"}
	}
}

// GetFloats returns all floats held by the given tag: either all
// values of a Float tag, or all elements of a NumericArray tag with a
// float element type, in insertion order.
func (fs *Fields) GetFloats(tag Tag) ([]float64, bool, error) {
	f, ok := fs.Field(tag)
	if !ok {
		return nil, false, nil
	}
	switch {
	case f.Type == Float:
		floats := make([]float64, len(f.values))
		for i, v := range f.values {
			floats[i] = v.float
		}
		return floats, true, nil
	case f.Type == NumericArray && f.ArrayType.IsFloat():
		return append([]float64(nil), f.values[0].floats...), true, nil
	default:
		return nil, true, &Error{Tag: tag, Kind: TypeMismatch, Value: "declared " + f.Type.String() + ", requested floats"}
	}
}

func checkArity(tag Tag, n, got int) error {
	if n != got {
		return &Error{
			Tag:   tag,
			Kind:  ArityMismatch,
			Value: "expected " + strconv.Itoa(n) + " elements, got " + strconv.Itoa(got),
		}
	}
	return nil
}

// GetIntegersN is like GetIntegers, but fails with an ArityMismatch
// error unless there are exactly n integers.
func (fs *Fields) GetIntegersN(tag Tag, n int) ([]int64, bool, error) {
	ints, ok, err := fs.GetIntegers(tag)
	if err == nil && ok {
		err = checkArity(tag, n, len(ints))
	}
	return ints, ok, err
}

// GetFloatsN is like GetFloats, but fails with an ArityMismatch
// error unless there are exactly n floats.
func (fs *Fields) GetFloatsN(tag Tag, n int) ([]float64, bool, error) {
	floats, ok, err := fs.GetFloats(tag)
	if err == nil && ok {
		err = checkArity(tag, n, len(floats))
	}
	return floats, ok, err
}

// Equal reports whether both containers hold the same tags with the
// same types and values. The relative order of different tags does
// not matter, but the order of values within a tag does.
func (fs *Fields) Equal(other *Fields) bool {
	if len(fs.entries) != len(other.entries) {
		return false
	}
	for _, f := range fs.entries {
		g, ok := other.Field(f.Tag)
		if !ok || !f.equal(g) {
			return false
		}
	}
	return true
}

// Hash returns a hash value consistent with Equal.
func (fs *Fields) Hash() (hash uint64) {
	for _, f := range fs.entries {
		h := internal.CombineHash(uint64(f.Tag[0])<<8|uint64(f.Tag[1]), uint64(f.ArrayType))
		for _, v := range f.values {
			h = internal.CombineHash(h, v.Hash())
		}
		// order-insensitive across tags
		hash += h
	}
	return hash
}

// Append appends the wire representation of all fields to out, each
// preceded by a tab.
func (fs *Fields) Append(out []byte) []byte {
	for _, f := range fs.entries {
		out = f.Append(out)
	}
	return out
}
