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
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/exascience/pargo/parallel"
	psort "github.com/exascience/pargo/sort"
)

// An Interval is a half-open range [Start, End) of 0-based positions.
type Interval struct {
	Start, End int64
}

// SortByStart sorts a slice of Interval by Start position.
func SortByStart(intervals []Interval) {
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})
}

type stableIntervalSorter []Interval

func (s stableIntervalSorter) SequentialSort(i, j int) {
	SortByStart(s[i:j])
}

func (s stableIntervalSorter) NewTemp() psort.StableSorter {
	return stableIntervalSorter(make([]Interval, len(s)))
}

func (s stableIntervalSorter) Len() int {
	return len(s)
}

func (s stableIntervalSorter) Less(i, j int) bool {
	return s[i].Start < s[j].Start
}

func (s stableIntervalSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	dst, src := s, source.(stableIntervalSorter)
	return func(i, j, len int) {
		copy(dst[i:i+len], src[j:j+len])
	}
}

// ParallelSortByStart sorts a slice of Interval by Start position
// using a parallel stable sort.
func ParallelSortByStart(intervals []Interval) {
	psort.StableSort(stableIntervalSorter(intervals))
}

// merge extends interval1 to also cover interval2 if they overlap or
// touch, and reports whether they did. interval2.Start >=
// interval1.Start must hold.
func (interval1 *Interval) merge(interval2 Interval) bool {
	if interval2.Start > interval1.End {
		return false
	}
	if interval2.End > interval1.End {
		interval1.End = interval2.End
	}
	return true
}

// Flatten merges overlapping or adjacent intervals. intervals must be
// sorted by Start. The result is sorted by Start, no two intervals in
// it overlap, and it shares memory with the argument.
func Flatten(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return intervals
	}
	n := 0
	for _, interval := range intervals[1:] {
		if !intervals[n].merge(interval) {
			n++
			intervals[n] = interval
		}
	}
	return intervals[:n+1]
}

const parallelFlattenGrainSize = 0x1000

// ParallelFlatten is like Flatten, but flattens both halves of large
// inputs in parallel.
func ParallelFlatten(intervals []Interval) []Interval {
	if len(intervals) < parallelFlattenGrainSize {
		return Flatten(intervals)
	}
	half := len(intervals) >> 1
	left, right := intervals[:half], intervals[half:]
	parallel.Do(
		func() { left = ParallelFlatten(left) },
		func() { right = ParallelFlatten(right) },
	)
	for len(right) > 0 && left[len(left)-1].merge(right[0]) {
		right = right[1:]
	}
	return append(left, right...)
}

// Overlap reports whether [start, end) overlaps with any of the
// intervals, which must be flattened.
func Overlap(intervals []Interval, start, end int64) bool {
	i := sort.Search(len(intervals), func(i int) bool {
		return intervals[i].End > start
	})
	return i < len(intervals) && intervals[i].Start < end
}

// Intersect returns all intervals that overlap with [start, end).
// intervals must be flattened. The result shares memory with the
// argument.
func Intersect(intervals []Interval, start, end int64) []Interval {
	n := len(intervals)
	from := sort.Search(n, func(i int) bool {
		return intervals[i].End > start
	})
	to := sort.Search(n, func(i int) bool {
		return intervals[i].Start >= end
	})
	if from >= to {
		return nil
	}
	return intervals[from:to]
}

// A Set maps sequence names to flattened intervals.
type Set map[string][]Interval

func parsePosition(s string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
}

/*
ParseRegion parses a region of the form NAME, NAME:START, or
NAME:START-END, where START and END are 1-based and inclusive, and
may contain thousands separators. The result is 0-based and
half-open.
*/
func ParseRegion(region string) (name string, interval Interval, err error) {
	colon := strings.LastIndexByte(region, ':')
	if colon < 0 {
		if region == "" {
			return "", interval, fmt.Errorf("empty region")
		}
		return region, Interval{0, math.MaxInt64}, nil
	}
	name, positions := region[:colon], region[colon+1:]
	if name == "" {
		return "", interval, fmt.Errorf("missing sequence name in region %v", region)
	}
	startText, endText, hasEnd := strings.Cut(positions, "-")
	start, err := parsePosition(startText)
	if err != nil || start < 1 {
		return "", interval, fmt.Errorf("invalid start position in region %v", region)
	}
	interval = Interval{start - 1, math.MaxInt64}
	if hasEnd {
		end, err := parsePosition(endText)
		if err != nil || end < start {
			return "", interval, fmt.Errorf("invalid end position in region %v", region)
		}
		interval.End = end
	}
	return name, interval, nil
}

// ParseRegions parses all regions and returns them as a flattened
// Set.
func ParseRegions(regions []string) (Set, error) {
	set := make(Set)
	for _, region := range regions {
		name, interval, err := ParseRegion(region)
		if err != nil {
			return nil, err
		}
		set[name] = append(set[name], interval)
	}
	for name, intervals := range set {
		ParallelSortByStart(intervals)
		set[name] = ParallelFlatten(intervals)
	}
	return set, nil
}

// Overlap reports whether [start, end) on the named sequence overlaps
// with the set.
func (set Set) Overlap(name string, start, end int64) bool {
	return Overlap(set[name], start, end)
}
