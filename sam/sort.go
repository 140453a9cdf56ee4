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
	"sort"

	psort "github.com/exascience/pargo/sort"
)

type (
	// A By function reports whether rec1 sorts before rec2.
	By func(rec1, rec2 *Record) bool

	recordSorter struct {
		recs []*Record
		by   By
	}
)

func (s recordSorter) SequentialSort(i, j int) {
	recs, by := s.recs[i:j], s.by
	sort.SliceStable(recs, func(i, j int) bool {
		return by(recs[i], recs[j])
	})
}

func (s recordSorter) NewTemp() psort.StableSorter {
	return recordSorter{make([]*Record, len(s.recs)), s.by}
}

func (s recordSorter) Len() int {
	return len(s.recs)
}

func (s recordSorter) Less(i, j int) bool {
	return s.by(s.recs[i], s.recs[j])
}

func (s recordSorter) Assign(p psort.StableSorter) func(i, j, len int) {
	dst, src := s.recs, p.(recordSorter).recs
	return func(i, j, len int) {
		for k := 0; k < len; k++ {
			dst[i+k] = src[j+k]
		}
	}
}

// ParallelStableSort sorts recs in parallel, keeping the input order
// of equal records.
func (by By) ParallelStableSort(recs []*Record) {
	psort.StableSort(recordSorter{recs, by})
}

/*
CoordinateLess orders records by the position of their reference
sequence in the @SQ lines of hdr, then by POS. Records whose RNAME is
absent or not declared in hdr sort last.
*/
func CoordinateLess(hdr *Header) By {
	refid := func(rec *Record) int {
		if rec.RNAME == "" {
			return -1
		}
		if index, found := hdr.ReferenceIndex(rec.RNAME); found {
			return index
		}
		return -1
	}
	return func(rec1, rec2 *Record) bool {
		refid1, refid2 := refid(rec1), refid(rec2)
		switch {
		case refid1 < refid2:
			return refid1 >= 0
		case refid2 < refid1:
			return refid2 < 0
		default:
			return rec1.POS < rec2.POS
		}
	}
}

// QNAMELess orders records by QNAME.
func QNAMELess(rec1, rec2 *Record) bool {
	return rec1.QNAME < rec2.QNAME
}

// SortByCoordinate sorts recs in place by coordinate and returns a
// copy of hdr marked as coordinate sorted.
func SortByCoordinate(hdr *Header, recs []*Record) (*Header, error) {
	CoordinateLess(hdr).ParallelStableSort(recs)
	return hdr.WithSortOrder("coordinate")
}

// SortByQueryName sorts recs in place by QNAME and returns a copy of
// hdr marked as queryname sorted.
func SortByQueryName(hdr *Header, recs []*Record) (*Header, error) {
	By(QNAMELess).ParallelStableSort(recs)
	return hdr.WithSortOrder("queryname")
}
