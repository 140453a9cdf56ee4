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
	"testing"
)

var (
	nm = MustTag("NM")
	md = MustTag("MD")
	xf = MustTag("XF")
)

func TestPutAccumulates(t *testing.T) {
	var fs Fields
	if err := fs.Put(nm, Integer, NoArrayType, "1"); err != nil {
		t.Fatal(err)
	}
	if err := fs.Put(nm, Integer, NoArrayType, "2"); err != nil {
		t.Fatal(err)
	}
	ints, ok, err := fs.GetIntegers(nm)
	if err != nil || !ok {
		t.Fatalf("GetIntegers()=%v, %v, %v", ints, ok, err)
	}
	if len(ints) != 2 || ints[0] != 1 || ints[1] != 2 {
		t.Errorf("GetIntegers()=%v, want [1 2]", ints)
	}
	if _, _, err := fs.GetInteger(nm); errorKind(err) != ArityMismatch {
		t.Errorf("GetInteger() on two values error=%v, want ArityMismatch", err)
	}
}

func TestPutTypeMismatch(t *testing.T) {
	var fs Fields
	if err := fs.Put(nm, Integer, NoArrayType, "1"); err != nil {
		t.Fatal(err)
	}
	if err := fs.Put(nm, String, NoArrayType, "x"); errorKind(err) != TypeMismatch {
		t.Errorf("Put with other type error=%v, want TypeMismatch", err)
	}
	if len(fs.GetValues(nm)) != 1 {
		t.Errorf("failed Put modified the container")
	}
}

func TestPutAllOrNothing(t *testing.T) {
	var fs Fields
	if err := fs.Put(nm, Integer, NoArrayType, "1", "x"); errorKind(err) != InvalidNumber {
		t.Fatalf("Put error=%v, want InvalidNumber", err)
	}
	if fs.Contains(nm) {
		t.Error("failed Put added a value")
	}
}

func TestArrayFields(t *testing.T) {
	var fs Fields
	if err := fs.Put(xi, NumericArray, Int32, "1", "2", "3"); err != nil {
		t.Fatal(err)
	}
	if err := fs.Put(xf, NumericArray, Float32, "3.4", "4.5"); err != nil {
		t.Fatal(err)
	}
	ints, _, err := fs.GetIntegersN(xi, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(ints) != 3 || ints[2] != 3 {
		t.Errorf("GetIntegersN()=%v", ints)
	}
	if _, _, err := fs.GetIntegersN(xi, 4); errorKind(err) != ArityMismatch {
		t.Errorf("GetIntegersN(4) error=%v, want ArityMismatch", err)
	}
	if _, _, err := fs.GetFloats(xi); errorKind(err) != TypeMismatch {
		t.Errorf("GetFloats on integer array error=%v, want TypeMismatch", err)
	}
	if err := fs.Put(xi, NumericArray, Int32, "4"); err != nil {
		t.Fatal(err)
	}
	if ints, _, _ := fs.GetIntegers(xi); len(ints) != 4 || ints[3] != 4 {
		t.Errorf("extended array=%v", ints)
	}
	if err := fs.Put(xi, NumericArray, Int8, "4"); errorKind(err) != TypeMismatch {
		t.Errorf("Put with other element type error=%v, want TypeMismatch", err)
	}
	if err := fs.Put(xi, NumericArray, Int32); errorKind(err) != ArityMismatch {
		t.Errorf("empty array Put error=%v, want ArityMismatch", err)
	}
}

func TestWrongAccessor(t *testing.T) {
	var fs Fields
	if err := fs.Put(md, String, NoArrayType, "10"); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := fs.GetInteger(md); !ok || errorKind(err) != TypeMismatch {
		t.Errorf("GetInteger on Z field=%v, %v, want TypeMismatch", ok, err)
	}
	if s, ok, err := fs.GetString(md); s != "10" || !ok || err != nil {
		t.Errorf("GetString()=%q, %v, %v", s, ok, err)
	}
	if _, ok, err := fs.GetString(nm); ok || err != nil {
		t.Errorf("GetString on absent tag=%v, %v", ok, err)
	}
}

func TestReplace(t *testing.T) {
	var fs Fields
	_ = fs.Put(nm, Integer, NoArrayType, "1")
	_ = fs.Put(md, String, NoArrayType, "10")
	_ = fs.Put(nm, Integer, NoArrayType, "2")
	if err := fs.Replace(nm, String, NoArrayType, "two"); err != nil {
		t.Fatal(err)
	}
	if s, _, err := fs.GetString(nm); s != "two" || err != nil {
		t.Errorf("GetString after Replace=%q, %v", s, err)
	}
	if tags := fs.Tags(); len(tags) != 2 || tags[0] != nm || tags[1] != md {
		t.Errorf("Replace changed tag order: %v", tags)
	}
	if !fs.Delete(nm) || fs.Contains(nm) || fs.Delete(nm) {
		t.Error("Delete failed")
	}
}

func TestAppendAndEqual(t *testing.T) {
	var fs, gs Fields
	_ = fs.Put(nm, Integer, NoArrayType, "0", "1")
	_ = fs.Put(xi, NumericArray, Uint8, "1", "2")
	if got := string(fs.Append(nil)); got != "\tNM:i:0\tNM:i:1\tXI:B:C,1,2" {
		t.Errorf("Append()=%q", got)
	}
	_ = gs.Put(xi, NumericArray, Uint8, "1", "2")
	_ = gs.Put(nm, Integer, NoArrayType, "0", "1")
	if !fs.Equal(&gs) || fs.Hash() != gs.Hash() {
		t.Error("containers with the same contents in different tag order are not equal")
	}
	_ = gs.Put(nm, Integer, NoArrayType, "2")
	if fs.Equal(&gs) {
		t.Error("containers with different contents are equal")
	}
}

func TestClone(t *testing.T) {
	var fs Fields
	_ = fs.Put(xi, NumericArray, Int32, "1")
	clone := fs.Clone()
	_ = clone.Put(xi, NumericArray, Int32, "2")
	if ints, _, _ := fs.GetIntegers(xi); len(ints) != 1 {
		t.Errorf("modifying a clone changed the original: %v", ints)
	}
}

func TestFloatArrayText(t *testing.T) {
	var fs Fields
	if err := fs.Put(xf, NumericArray, Float32, "1.0", "2.50"); err != nil {
		t.Fatal(err)
	}
	arr, err := FloatArrayValue([]float64{1e6})
	if err != nil {
		t.Fatal(err)
	}
	if err := fs.PutValue(xf, arr); err != nil {
		t.Fatal(err)
	}
	if got := string(fs.Append(nil)); got != "\tXF:B:f,1.0,2.50,1000000" {
		t.Errorf("Append()=%q", got)
	}
	floats, ok, err := fs.GetFloatsN(xf, 3)
	if !ok || err != nil || floats[0] != 1 || floats[1] != 2.5 || floats[2] != 1e6 {
		t.Errorf("GetFloatsN(3)=%v, %v, %v", floats, ok, err)
	}
	if _, _, err := fs.GetFloatsN(xf, 2); errorKind(err) != ArityMismatch {
		t.Errorf("GetFloatsN(2) error=%v, want ArityMismatch", err)
	}
	if _, ok, err := fs.GetFloatsN(md, 1); ok || err != nil {
		t.Errorf("GetFloatsN on absent tag=%v, %v", ok, err)
	}

	var gs Fields
	_ = gs.Put(MustTag("de"), Float, NoArrayType, "0.5", "0.25")
	if floats, _, err := gs.GetFloatsN(MustTag("de"), 2); err != nil || floats[0] != 0.5 || floats[1] != 0.25 {
		t.Errorf("GetFloatsN on Float tag=%v, %v", floats, err)
	}
}

func TestDuplicateTagsGrouped(t *testing.T) {
	var fs Fields
	_ = fs.Put(nm, Integer, NoArrayType, "0")
	_ = fs.Put(md, String, NoArrayType, "1")
	_ = fs.Put(nm, Integer, NoArrayType, "1")
	if got := string(fs.Append(nil)); got != "\tNM:i:0\tNM:i:1\tMD:Z:1" {
		t.Errorf("Append()=%q", got)
	}
}
