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

package gaf

import (
	"strconv"

	"github.com/exascience/alnformats/fields"
	"github.com/exascience/alnformats/internal"
	"github.com/exascience/alnformats/tabular"
)

// A Record is a single GAF line. PathName is the path as written; see
// Steps. Absent names are represented by the empty string and written
// as *. A MappingQuality of 255 means the quality is not available.
// Line is the 1-based input line number, or 0 if the record was not
// parsed from input.
type Record struct {
	QueryName      string
	QueryLength    int64
	QueryStart     int64
	QueryEnd       int64
	Strand         tabular.Strand
	PathName       string
	PathLength     int64
	PathStart      int64
	PathEnd        int64
	Matches        int64
	BlockLength    int64
	MappingQuality byte
	Tags           fields.Fields
	Line           int
}

// IsReverse reports whether the query aligns to the reverse strand of
// the path.
func (rec *Record) IsReverse() bool {
	return rec.Strand == tabular.Reverse
}

// Identity returns the fraction of matching bases in the alignment
// block, or 0 for an empty block.
func (rec *Record) Identity() float64 {
	if rec.BlockLength == 0 {
		return 0
	}
	return float64(rec.Matches) / float64(rec.BlockLength)
}

// Equal reports whether both records have the same mandatory and
// optional fields, regardless of optional field order. Line numbers
// are ignored.
func (rec *Record) Equal(other *Record) bool {
	return rec.QueryName == other.QueryName &&
		rec.QueryLength == other.QueryLength &&
		rec.QueryStart == other.QueryStart &&
		rec.QueryEnd == other.QueryEnd &&
		rec.Strand == other.Strand &&
		rec.PathName == other.PathName &&
		rec.PathLength == other.PathLength &&
		rec.PathStart == other.PathStart &&
		rec.PathEnd == other.PathEnd &&
		rec.Matches == other.Matches &&
		rec.BlockLength == other.BlockLength &&
		rec.MappingQuality == other.MappingQuality &&
		rec.Tags.Equal(&other.Tags)
}

// Hash is consistent with Equal.
func (rec *Record) Hash() uint64 {
	hash := internal.StringHash(rec.QueryName)
	for _, n := range [...]int64{rec.QueryLength, rec.QueryStart, rec.QueryEnd, int64(rec.Strand)} {
		hash = internal.CombineHash(hash, uint64(n))
	}
	hash = internal.CombineHash(hash, internal.StringHash(rec.PathName))
	for _, n := range [...]int64{rec.PathLength, rec.PathStart, rec.PathEnd, rec.Matches, rec.BlockLength, int64(rec.MappingQuality)} {
		hash = internal.CombineHash(hash, uint64(n))
	}
	return internal.CombineHash(hash, rec.Tags.Hash())
}

// Format appends the record as one GAF line, without line terminator,
// to out.
func (rec *Record) Format(out []byte) []byte {
	out = tabular.AppendString(out, rec.QueryName)
	out = append(out, '\t')
	out = strconv.AppendInt(out, rec.QueryLength, 10)
	out = append(out, '\t')
	out = strconv.AppendInt(out, rec.QueryStart, 10)
	out = append(out, '\t')
	out = strconv.AppendInt(out, rec.QueryEnd, 10)
	out = append(out, '\t', byte(rec.Strand), '\t')
	out = tabular.AppendString(out, rec.PathName)
	out = append(out, '\t')
	out = strconv.AppendInt(out, rec.PathLength, 10)
	out = append(out, '\t')
	out = strconv.AppendInt(out, rec.PathStart, 10)
	out = append(out, '\t')
	out = strconv.AppendInt(out, rec.PathEnd, 10)
	out = append(out, '\t')
	out = strconv.AppendInt(out, rec.Matches, 10)
	out = append(out, '\t')
	out = strconv.AppendInt(out, rec.BlockLength, 10)
	out = append(out, '\t')
	out = strconv.AppendUint(out, uint64(rec.MappingQuality), 10)
	return rec.Tags.Append(out)
}

func (rec *Record) String() string {
	buf := internal.ReserveByteBuffer()
	defer internal.ReleaseByteBuffer(buf)
	*buf = rec.Format(*buf)
	return string(*buf)
}

// Checks selects optional record consistency checks.
type Checks uint8

// The available record checks.
const (
	// CheckCoordinates requires 0 <= start <= end <= length for both
	// query and path.
	CheckCoordinates Checks = 1 << iota
	// CheckMatches requires Matches <= BlockLength.
	CheckMatches

	NoChecks  Checks = 0
	AllChecks        = CheckCoordinates | CheckMatches
)

// A ValidationError reports a record that violates one of the
// optional consistency checks.
type ValidationError struct {
	Check     Checks
	QueryName string
	Msg       string
}

func (e *ValidationError) Error() string {
	return "invalid record " + e.QueryName + ": " + e.Msg
}

func checkInterval(name string, start, end, length int64) string {
	if start < 0 || start > end || end > length {
		return name + " interval [" + strconv.FormatInt(start, 10) + "," + strconv.FormatInt(end, 10) +
			") does not fit length " + strconv.FormatInt(length, 10)
	}
	return ""
}

// Validate applies the selected checks to the record.
func (rec *Record) Validate(checks Checks) error {
	if checks&CheckCoordinates != 0 {
		if msg := checkInterval("query", rec.QueryStart, rec.QueryEnd, rec.QueryLength); msg != "" {
			return &ValidationError{CheckCoordinates, rec.QueryName, msg}
		}
		if msg := checkInterval("path", rec.PathStart, rec.PathEnd, rec.PathLength); msg != "" {
			return &ValidationError{CheckCoordinates, rec.QueryName, msg}
		}
	}
	if checks&CheckMatches != 0 && rec.Matches > rec.BlockLength {
		return &ValidationError{CheckMatches, rec.QueryName, "more matches than block length"}
	}
	return nil
}
