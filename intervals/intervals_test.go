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

package intervals

import (
	"math"
	"math/rand"
	"testing"
)

func intervalsEqual(intervals1, intervals2 []Interval) bool {
	if len(intervals1) != len(intervals2) {
		return false
	}
	for i, interval1 := range intervals1 {
		if interval1 != intervals2[i] {
			return false
		}
	}
	return true
}

func makeLargeIntervalsSlice() (result []Interval) {
	result = make([]Interval, 0x30000)
	result[0].Start = 0
	result[0].End = 3
	for i := 1; i < len(result); i++ {
		if rand.Intn(100) < 20 {
			result[i].Start = result[i-1].End - 1
		} else {
			result[i].Start = result[i-1].End + 1
		}
		result[i].End = result[i].Start + 3
	}
	return result
}

func testFlatten(t *testing.T, name string, flatten func([]Interval) []Interval) {
	if len(flatten(nil)) != 0 {
		t.Errorf("empty %v failed", name)
	}
	for i, test := range []struct{ in, out []Interval }{
		{[]Interval{{2, 3}, {3, 4}}, []Interval{{2, 4}}},
		{[]Interval{{2, 3}, {4, 5}}, []Interval{{2, 3}, {4, 5}}},
		{[]Interval{{2, 4}, {3, 5}, {4, 6}}, []Interval{{2, 6}}},
		{[]Interval{{2, 4}, {3, 5}, {4, 6}, {7, 9}}, []Interval{{2, 6}, {7, 9}}},
		{[]Interval{{2, 3}, {3, 4}, {5, 6}, {6, 7}}, []Interval{{2, 4}, {5, 7}}},
		{[]Interval{{2, 3}, {2, 5}, {2, 4}, {2, 3}, {2, 6}, {2, 7}}, []Interval{{2, 7}}},
	} {
		if got := flatten(test.in); !intervalsEqual(got, test.out) {
			t.Errorf("%v %v=%v, want %v", name, i+1, got, test.out)
		}
	}
	intervals := flatten(makeLargeIntervalsSlice())
	if intervals[0].Start > intervals[0].End {
		t.Errorf("%v on a large input gives an invalid first interval", name)
	}
	for i := 1; i < len(intervals); i++ {
		interval := intervals[i]
		if interval.Start > interval.End || interval.Start <= intervals[i-1].End {
			t.Fatalf("%v on a large input leaves overlaps at %v", name, i)
		}
	}
}

func TestFlatten(t *testing.T) {
	testFlatten(t, "Flatten", Flatten)
}

func TestParallelFlatten(t *testing.T) {
	testFlatten(t, "ParallelFlatten", ParallelFlatten)
}

func BenchmarkParallelFlatten(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		intervals := makeLargeIntervalsSlice()
		b.StartTimer()
		_ = ParallelFlatten(intervals)
	}
}

func TestOverlap(t *testing.T) {
	intervals := []Interval{{2, 4}, {6, 8}}
	for _, test := range []struct {
		start, end int64
		want       bool
	}{
		{0, 2, false},
		{1, 3, true},
		{3, 6, true},
		{4, 6, false},
		{7, 20, true},
		{8, 9, false},
		{0, 10, true},
	} {
		if got := Overlap(intervals, test.start, test.end); got != test.want {
			t.Errorf("Overlap(%v, %v)=%v, want %v", test.start, test.end, got, test.want)
		}
	}
	if Overlap(nil, 2, 3) {
		t.Error("empty Overlap failed")
	}
}

func TestIntersect(t *testing.T) {
	intervals := []Interval{{2, 4}, {6, 8}}
	for _, test := range []struct {
		start, end int64
		want       []Interval
	}{
		{4, 6, nil},
		{1, 3, []Interval{{2, 4}}},
		{3, 7, []Interval{{2, 4}, {6, 8}}},
		{5, 9, []Interval{{6, 8}}},
	} {
		if got := Intersect(intervals, test.start, test.end); !intervalsEqual(got, test.want) {
			t.Errorf("Intersect(%v, %v)=%v, want %v", test.start, test.end, got, test.want)
		}
	}
}

func TestParseRegions(t *testing.T) {
	for _, test := range []struct {
		region   string
		name     string
		interval Interval
	}{
		{"chr1", "chr1", Interval{0, math.MaxInt64}},
		{"chr1:100", "chr1", Interval{99, math.MaxInt64}},
		{"chr1:1,000-2,000", "chr1", Interval{999, 2000}},
		{"HLA-A*01:01:10-20", "HLA-A*01:01", Interval{9, 20}},
	} {
		name, interval, err := ParseRegion(test.region)
		if err != nil || name != test.name || interval != test.interval {
			t.Errorf("ParseRegion(%q)=%q, %v, %v", test.region, name, interval, err)
		}
	}
	for _, region := range []string{"", ":5-10", "chr1:0", "chr1:20-10", "chr1:x"} {
		if _, _, err := ParseRegion(region); err == nil {
			t.Errorf("ParseRegion(%q) succeeded", region)
		}
	}

	set, err := ParseRegions([]string{"chr1:200-300", "chr2", "chr1:1-100", "chr1:90-150"})
	if err != nil {
		t.Fatal(err)
	}
	if !intervalsEqual(set["chr1"], []Interval{{0, 150}, {199, 300}}) {
		t.Errorf("chr1 regions %v", set["chr1"])
	}
	if !set.Overlap("chr2", 1000, 1001) || set.Overlap("chr1", 150, 199) || set.Overlap("chr3", 0, 10) {
		t.Error("Set.Overlap failed")
	}
}
