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
	"testing"

	"github.com/exascience/alnformats/utils"
)

func headerLineErrorKind(t *testing.T, err error) HeaderLineErrorKind {
	t.Helper()
	var herr *HeaderLineError
	if !errors.As(err, &herr) {
		t.Fatalf("error %v is not a *HeaderLineError", err)
	}
	return herr.Kind
}

func TestParseSequenceHeaderLine(t *testing.T) {
	line, err := ParseSequenceHeaderLine("@SQ\tSN:chr1\tLN:1000")
	if err != nil {
		t.Fatal(err)
	}
	if line.SN() != "chr1" || line.LN() != "1000" || line.Length() != 1000 {
		t.Errorf("SN()=%q LN()=%q Length()=%v", line.SN(), line.LN(), line.Length())
	}

	_, err = ParseSequenceHeaderLine("@SQ\tSN:chr1")
	if kind := headerLineErrorKind(t, err); kind != MissingRequiredField {
		t.Errorf("missing LN gives %v", kind)
	}
	var herr *HeaderLineError
	if errors.As(err, &herr) && herr.Key != "LN" {
		t.Errorf("missing key reported as %q, want LN", herr.Key)
	}

	_, err = ParseSequenceHeaderLine("@SQ\tSN:chr1\tLN:-5")
	if kind := headerLineErrorKind(t, err); kind != MalformedAnnotation {
		t.Errorf("negative LN gives %v", kind)
	}
}

func TestHeaderLineErrors(t *testing.T) {
	for _, test := range []struct {
		text string
		kind HeaderLineErrorKind
	}{
		{"@XX\tfoo:bar", UnknownLineType},
		{"@HDX\tVN:1.6", UnknownLineType},
		{"SQ\tSN:chr1", UnknownLineType},
		{"@RG\tID:a\tID:b", DuplicateKey},
		{"@RG\tID", MalformedAnnotation},
		{"@PG\tPN:bwa", MissingRequiredField},
		{"@HD\tSO:coordinate", MissingRequiredField},
	} {
		_, err := ParseHeaderLine(test.text)
		if err == nil {
			t.Errorf("ParseHeaderLine(%q) succeeded", test.text)
			continue
		}
		if kind := headerLineErrorKind(t, err); kind != test.kind {
			t.Errorf("ParseHeaderLine(%q) error kind=%v, want %v", test.text, kind, test.kind)
		}
	}
}

func TestHeaderLineFormat(t *testing.T) {
	for _, test := range []struct{ in, out string }{
		{"@SQ\tLN:1000\tXY:z\tSN:chr1\tAS:hg38", "@SQ\tSN:chr1\tLN:1000\tAS:hg38\tXY:z"},
		{"@HD\tSO:coordinate\tVN:1.6", "@HD\tVN:1.6\tSO:coordinate"},
		{"@RG\tSM:s1\tID:rg1\tPL:ILLUMINA", "@RG\tID:rg1\tPL:ILLUMINA\tSM:s1"},
		{"@PG\tVN:0.7\tID:bwa\tPN:bwa", "@PG\tID:bwa\tPN:bwa\tVN:0.7"},
		{"@CO\thello\tworld", "@CO\thello\tworld"},
		{"@CO", "@CO"},
	} {
		line, err := ParseHeaderLine(test.in)
		if err != nil {
			t.Errorf("ParseHeaderLine(%q): %v", test.in, err)
			continue
		}
		if got := string(line.Format(nil)); got != test.out {
			t.Errorf("Format()=%q, want %q", got, test.out)
		}
	}
}

func TestCommentHeaderLine(t *testing.T) {
	line, err := ParseCommentHeaderLine("@CO\tsome:text\twith tabs")
	if err != nil {
		t.Fatal(err)
	}
	if line.Text() != "some:text\twith tabs" {
		t.Errorf("Text()=%q", line.Text())
	}
	if _, err := ParseCommentHeaderLine("@SQ\tSN:chr1\tLN:1"); err == nil {
		t.Error("ParseCommentHeaderLine accepted an @SQ line")
	}
}

func TestHeaderBuilder(t *testing.T) {
	sq, err := NewSequenceHeaderLine(utils.StringMap{{Key: "SN", Value: "chr1"}, {Key: "LN", Value: "100"}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewHeaderBuilder().WithSequenceHeaderLines(sq).Build()
	if !errors.Is(err, ErrMissingHeaderLine) {
		t.Errorf("Build() without @HD=%v, want ErrMissingHeaderLine", err)
	}

	hdr, err := NewHeaderBuilder().Build()
	if err != nil || !hdr.IsEmpty() {
		t.Errorf("empty Build()=%v, %v", hdr, err)
	}

	hd, err := NewFileHeaderLine(utils.StringMap{{Key: "VN", Value: "1.6"}})
	if err != nil {
		t.Fatal(err)
	}
	b := NewHeaderBuilder().WithSequenceHeaderLines(sq).WithHeaderLine(hd).
		WithCommentHeaderLines(NewCommentHeaderLine("c"))
	hdr, err = b.Build()
	if err != nil {
		t.Fatal(err)
	}
	const want = "@HD\tVN:1.6\n@SQ\tSN:chr1\tLN:100\n@CO\tc\n"
	if got := hdr.String(); got != want {
		t.Errorf("String()=%q, want %q", got, want)
	}
	if index, found := hdr.ReferenceIndex("chr1"); !found || index != 0 {
		t.Errorf("ReferenceIndex(chr1)=%v, %v", index, found)
	}
	if _, found := hdr.ReferenceIndex("chr2"); found {
		t.Error("ReferenceIndex(chr2) found")
	}

	other, err := hdr.ToBuilder().ReplaceCommentHeaderLines().Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(hdr.CO) != 1 || len(other.CO) != 0 || hdr.Equal(other) {
		t.Error("ToBuilder shares state with the original header")
	}
	if again, _ := b.Build(); !again.Equal(hdr) {
		t.Error("rebuilding gives a different header")
	}
}

func TestWithSortOrder(t *testing.T) {
	hd, err := ParseFileHeaderLine("@HD\tVN:1.6\tGO:query")
	if err != nil {
		t.Fatal(err)
	}
	hdr, err := NewHeaderBuilder().WithHeaderLine(hd).Build()
	if err != nil {
		t.Fatal(err)
	}
	sorted, err := hdr.WithSortOrder("coordinate")
	if err != nil {
		t.Fatal(err)
	}
	if got := string(sorted.HD.Format(nil)); got != "@HD\tVN:1.6\tSO:coordinate" {
		t.Errorf("sorted @HD=%q", got)
	}
	if hdr.HD.SO() != "unknown" || hdr.HD.GO() != "query" {
		t.Error("WithSortOrder modified the original header")
	}

	empty, _ := NewHeaderBuilder().Build()
	sorted, err = empty.WithSortOrder("queryname")
	if err != nil {
		t.Fatal(err)
	}
	if sorted.HD == nil || sorted.HD.VN() != FileFormatVersion || sorted.HD.SO() != "queryname" {
		t.Errorf("WithSortOrder on an empty header gives %q", sorted.String())
	}
}
