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
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/exascience/alnformats/fields"
)

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader("a\tb\r\n\nc\nlast"))
	var got []string
	var lines []int
	for r.Next() {
		got = append(got, r.Text())
		lines = append(lines, r.Line())
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Reader.Err()=%v", err)
	}
	want := []string{"a\tb", "", "c", "last"}
	if len(got) != len(want) {
		t.Fatalf("Reader lines=%q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] || lines[i] != i+1 {
			t.Errorf("line %v=%q (number %v), want %q", i, got[i], lines[i], want[i])
		}
	}
}

func TestPeekByte(t *testing.T) {
	r := NewReader(strings.NewReader("@HD\nx"))
	if c, ok, err := r.PeekByte(); c != '@' || !ok || err != nil {
		t.Errorf("PeekByte()=%q, %v, %v", c, ok, err)
	}
	r.Next()
	r.Next()
	if _, ok, err := r.PeekByte(); ok || err != nil {
		t.Errorf("PeekByte() at end=%v, %v", ok, err)
	}
}

func TestUnread(t *testing.T) {
	r := NewReader(strings.NewReader("a\nb\nc"))
	r.Next()
	r.Next()
	r.Unread()
	r.Unread()
	if r.Line() != 1 {
		t.Errorf("Line() after Unread=%v, want 1", r.Line())
	}
	if c, ok, _ := r.PeekByte(); c != 'b' || !ok {
		t.Errorf("PeekByte() after Unread=%q, %v", c, ok)
	}
	var got []string
	for r.Next() {
		got = append(got, r.Text()+":"+strconv.Itoa(r.Line()))
	}
	if strings.Join(got, " ") != "b:2 c:3" {
		t.Errorf("lines after Unread=%q", got)
	}
}

func TestEach(t *testing.T) {
	r := NewReader(strings.NewReader("1\n\n2\n3\n4\n"))
	var seen []int
	err := Each(r, func(text string, line int) (bool, error) {
		seen = append(seen, line)
		return text != "3", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 3 || seen[2] != 4 {
		t.Errorf("Each visited lines %v, want [1 3 4]", seen)
	}

	r = NewReader(strings.NewReader("ok\nbad\n"))
	err = Each(r, func(text string, _ int) (bool, error) {
		if text == "bad" {
			return false, errors.New("bad line")
		}
		return true, nil
	})
	var lerr *LineError
	if !errors.As(err, &lerr) || lerr.Line != 2 {
		t.Errorf("Each error=%v, want a LineError at line 2", err)
	}
}

func TestMandatoryFields(t *testing.T) {
	if String("*") != "" || String("chr1") != "chr1" {
		t.Error("String sentinel decoding failed")
	}
	if got := string(AppendString(nil, "")); got != "*" {
		t.Errorf("AppendString(\"\")=%q, want \"*\"", got)
	}
	if _, err := Int("12a", "POS", 32); err == nil {
		t.Error("Int accepted 12a")
	}
	var rerr *RecordError
	if _, err := Uint("-1", "FLAG", 16); !errors.As(err, &rerr) || rerr.Kind != InvalidMandatoryField || rerr.Field != "FLAG" {
		t.Errorf("Uint(-1) error=%v", err)
	}
	if _, err := Char("x", "strand", "+-"); err == nil {
		t.Error("Char accepted x")
	}
	if err := CheckTokens([]string{"a", "b"}, 3); !errors.As(err, &rerr) || rerr.Kind != TooFewTokens {
		t.Errorf("CheckTokens error=%v, want TooFewTokens", err)
	}
}

func TestParseOptionalField(t *testing.T) {
	var fs fields.Fields
	if err := ParseOptionalFields([]string{"NM:i:0", "MD:Z:10", "XB:B:c,1,-1", "CO:Z:a:b"}, &fs); err != nil {
		t.Fatal(err)
	}
	if s, _, _ := fs.GetString(fields.MustTag("CO")); s != "a:b" {
		t.Errorf("Z value with colons=%q", s)
	}
	if ints, _, _ := fs.GetIntegers(fields.MustTag("XB")); len(ints) != 2 || ints[1] != -1 {
		t.Errorf("B value=%v", ints)
	}
	var rerr *RecordError
	if err := ParseOptionalField("NM:i", &fs); !errors.As(err, &rerr) || rerr.Kind != MalformedOptionalField {
		t.Errorf("ParseOptionalField(NM:i) error=%v, want MalformedOptionalField", err)
	}
	var ferr *fields.Error
	if err := ParseOptionalField("NM:ii:0", &fs); !errors.As(err, &ferr) || ferr.Kind != fields.InvalidType {
		t.Errorf("ParseOptionalField(NM:ii:0) error=%v, want InvalidType", err)
	}
	if err := ParseOptionalField("XH:H:0", &fs); !errors.As(err, &ferr) || ferr.Kind != fields.InvalidHex {
		t.Errorf("ParseOptionalField(XH:H:0) error=%v, want InvalidHex", err)
	}
}

func TestParallelCollect(t *testing.T) {
	var sb strings.Builder
	const n = 20000
	for i := 1; i <= n; i++ {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte('\n')
		if i%1000 == 0 {
			sb.WriteByte('\n')
		}
	}
	r := NewReader(strings.NewReader(sb.String()))
	results, err := ParallelCollect(r, func(text string, line int) (int, error) {
		return strconv.Atoi(text)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != n {
		t.Fatalf("ParallelCollect returned %v results, want %v", len(results), n)
	}
	for i, v := range results {
		if v != i+1 {
			t.Fatalf("result %v=%v, want %v", i, v, i+1)
		}
	}
}

func TestParallelCollectError(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 5000; i++ {
		if i == 1234 || i == 4321 {
			sb.WriteString("x\n")
			continue
		}
		sb.WriteString("1\n")
	}
	r := NewReader(strings.NewReader(sb.String()))
	_, err := ParallelCollect(r, func(text string, _ int) (int, error) {
		return strconv.Atoi(text)
	})
	var lerr *LineError
	if !errors.As(err, &lerr) || lerr.Line != 1234 {
		t.Errorf("ParallelCollect error=%v, want a LineError at line 1234", err)
	}
}
