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

package paf

import (
	"io"
	"iter"

	"github.com/exascience/alnformats/tabular"
)

const mandatoryFields = 12

// A Parser parses PAF text. The zero Parser applies no record checks.
type Parser struct {
	Checks Checks
}

// ParseRecord parses a single PAF line, without line terminator.
func (p Parser) ParseRecord(text string) (*Record, error) {
	return p.parseRecord(text, 0)
}

// ParseRecord parses a single PAF line with the zero Parser.
func ParseRecord(text string) (*Record, error) {
	return Parser{}.ParseRecord(text)
}

func (p Parser) parseRecord(text string, line int) (rec *Record, err error) {
	tokens := tabular.Split(text)
	if err := tabular.CheckTokens(tokens, mandatoryFields); err != nil {
		return nil, err
	}
	rec = &Record{
		QueryName:  tabular.String(tokens[0]),
		TargetName: tabular.String(tokens[5]),
		Line:       line,
	}
	for _, field := range [...]struct {
		index int
		name  string
		dst   *int64
	}{
		{1, "query length", &rec.QueryLength},
		{2, "query start", &rec.QueryStart},
		{3, "query end", &rec.QueryEnd},
		{6, "target length", &rec.TargetLength},
		{7, "target start", &rec.TargetStart},
		{8, "target end", &rec.TargetEnd},
		{9, "matches", &rec.Matches},
		{10, "block length", &rec.BlockLength},
	} {
		if *field.dst, err = tabular.Int(tokens[field.index], field.name, 64); err != nil {
			return nil, err
		}
	}
	if rec.Strand, err = tabular.ParseStrand(tokens[4]); err != nil {
		return nil, err
	}
	mapq, err := tabular.Uint(tokens[11], "mapping quality", 8)
	if err != nil {
		return nil, err
	}
	rec.MappingQuality = byte(mapq)
	if err := tabular.ParseOptionalFields(tokens[mandatoryFields:], &rec.Tags); err != nil {
		return nil, err
	}
	if p.Checks != NoChecks {
		if err := rec.Validate(p.Checks); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// A Listener receives the records of a PAF input. Returning false
// stops the stream without error.
type Listener interface {
	OnRecord(rec *Record) bool
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(rec *Record) bool

// OnRecord implements the method of the Listener interface.
func (f ListenerFunc) OnRecord(rec *Record) bool {
	return f(rec)
}

// A Collector is a Listener that keeps all records.
type Collector struct {
	Records []*Record
}

// OnRecord implements the method of the Listener interface.
func (c *Collector) OnRecord(rec *Record) bool {
	c.Records = append(c.Records, rec)
	return true
}

// Stream reads PAF text from r and passes each record to l, in input
// order. Blank lines are skipped. Errors are reported as
// *tabular.LineError values.
func (p Parser) Stream(r io.Reader, l Listener) error {
	return tabular.StreamRecords(r, p.parseRecord, l.OnRecord)
}

// Records returns all records of r.
func (p Parser) Records(r io.Reader) ([]*Record, error) {
	return tabular.CollectRecords(r, p.parseRecord)
}

// All returns an iterator over the records of r. A parse error is
// yielded once, with a nil record, and ends the iteration.
func (p Parser) All(r io.Reader) iter.Seq2[*Record, error] {
	return tabular.AllRecords(r, p.parseRecord)
}

// ParallelRecords is like Records, but parses lines in parallel.
func (p Parser) ParallelRecords(r io.Reader) ([]*Record, error) {
	return tabular.ParallelCollect(tabular.NewReader(r), p.parseRecord)
}

// ReadFile opens a possibly compressed PAF file and returns its
// records.
func (p Parser) ReadFile(name string) ([]*Record, error) {
	return tabular.ReadRecordsFile(name, p.parseRecord)
}

// Stream uses the zero Parser.
func Stream(r io.Reader, l Listener) error {
	return Parser{}.Stream(r, l)
}

// Records uses the zero Parser.
func Records(r io.Reader) ([]*Record, error) {
	return Parser{}.Records(r)
}

// All uses the zero Parser.
func All(r io.Reader) iter.Seq2[*Record, error] {
	return Parser{}.All(r)
}

// ParallelRecords uses the zero Parser.
func ParallelRecords(r io.Reader) ([]*Record, error) {
	return Parser{}.ParallelRecords(r)
}

// RecordsFromFile uses the zero Parser.
func RecordsFromFile(name string) ([]*Record, error) {
	return Parser{}.ReadFile(name)
}
