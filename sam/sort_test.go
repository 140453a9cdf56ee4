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
	"strconv"
	"strings"
	"testing"
)

func TestSortByCoordinate(t *testing.T) {
	const input = "@HD\tVN:1.6\n@SQ\tSN:chr1\tLN:1000\n@SQ\tSN:chr2\tLN:1000\n" +
		"a\t0\tchr2\t5\t60\t1M\t*\t0\t0\tA\tI\n" +
		"b\t4\t*\t0\t0\t*\t*\t0\t0\tA\tI\n" +
		"c\t0\tchr1\t10\t60\t1M\t*\t0\t0\tA\tI\n" +
		"d\t0\tchrUn\t1\t60\t1M\t*\t0\t0\tA\tI\n" +
		"e\t0\tchr1\t3\t60\t1M\t*\t0\t0\tA\tI\n" +
		"f\t0\tchr1\t10\t60\t1M\t*\t0\t0\tA\tI\n"
	hdr, recs, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	sorted, err := SortByCoordinate(hdr, recs)
	if err != nil {
		t.Fatal(err)
	}
	var order []string
	for _, rec := range recs {
		order = append(order, rec.QNAME)
	}
	if got := strings.Join(order, ""); got != "ecfabd" {
		t.Errorf("coordinate order %v, want ecfabd", got)
	}
	if sorted.HD.SO() != "coordinate" || len(sorted.SQ) != 2 {
		t.Errorf("sorted header %q", sorted.String())
	}

	sorted, err = SortByQueryName(hdr, recs)
	if err != nil {
		t.Fatal(err)
	}
	order = order[:0]
	for _, rec := range recs {
		order = append(order, rec.QNAME)
	}
	if got := strings.Join(order, ""); got != "abcdef" {
		t.Errorf("queryname order %v, want abcdef", got)
	}
	if sorted.HD.SO() != "queryname" {
		t.Errorf("sorted header %q", sorted.String())
	}
}

func TestSortByQueryNameStable(t *testing.T) {
	if !QNAMELess(&Record{QNAME: "r10"}, &Record{QNAME: "r2"}) || QNAMELess(&Record{QNAME: "r2"}, &Record{QNAME: "r2"}) {
		t.Error("QNAMELess does not compare names lexicographically")
	}
	hdr, err := NewHeaderBuilder().Build()
	if err != nil {
		t.Fatal(err)
	}
	recs := make([]*Record, 50000)
	for i := range recs {
		recs[i] = &Record{QNAME: "r" + strconv.Itoa((len(recs)-i)%97), Line: i + 1}
	}
	sorted, err := SortByQueryName(hdr, recs)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(recs); i++ {
		prev, rec := recs[i-1], recs[i]
		if QNAMELess(rec, prev) {
			t.Fatalf("record %v (%v) sorts after %v", i, rec.QNAME, prev.QNAME)
		}
		if rec.QNAME == prev.QNAME && rec.Line < prev.Line {
			t.Fatalf("records named %v lost their input order", rec.QNAME)
		}
	}
	if sorted.HD == nil || sorted.HD.SO() != "queryname" {
		t.Errorf("sorted header %q", sorted.String())
	}
}
