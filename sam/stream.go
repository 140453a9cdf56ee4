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
	"io"
	"iter"

	"github.com/exascience/alnformats/internal"
	"github.com/exascience/alnformats/tabular"
)

/*
A Listener receives the results of streaming a SAM input.

OnHeader is called exactly once, before any call to OnRecord, even if
the input has no header lines or no alignment lines. Returning false
from either method stops the stream without error.
*/
type Listener interface {
	OnHeader(hdr *Header) bool
	OnRecord(rec *Record) bool
}

// ListenerFuncs adapts a pair of functions to the Listener interface.
// A nil function continues the stream.
type ListenerFuncs struct {
	Header func(hdr *Header) bool
	Record func(rec *Record) bool
}

// OnHeader implements the method of the Listener interface.
func (l ListenerFuncs) OnHeader(hdr *Header) bool {
	if l.Header == nil {
		return true
	}
	return l.Header(hdr)
}

// OnRecord implements the method of the Listener interface.
func (l ListenerFuncs) OnRecord(rec *Record) bool {
	if l.Record == nil {
		return true
	}
	return l.Record(rec)
}

// A Collector is a Listener that keeps the header and all records.
type Collector struct {
	Header  *Header
	Records []*Record
}

// OnHeader implements the method of the Listener interface.
func (c *Collector) OnHeader(hdr *Header) bool {
	c.Header = hdr
	return true
}

// OnRecord implements the method of the Listener interface.
func (c *Collector) OnRecord(rec *Record) bool {
	c.Records = append(c.Records, rec)
	return true
}

/*
Stream reads SAM text from r and passes the header and each record to
l, in input order.

Lines starting with @ before the first alignment line are header
lines. Blank lines are skipped. Errors are reported as
*tabular.LineError values carrying the 1-based number of the
offending line. A header that cannot be built is reported at the
first alignment line, or at the last line if there is none.
*/
func (p Parser) Stream(r io.Reader, l Listener) error {
	reader := tabular.NewReader(r)
	header := headerState{builder: NewHeaderBuilder()}
	headerDone := false
	finishHeader := func() (bool, error) {
		headerDone = true
		hdr, err := header.builder.Build()
		if err != nil {
			return false, err
		}
		return l.OnHeader(hdr), nil
	}
	err := tabular.Each(reader, func(text string, line int) (bool, error) {
		if !headerDone {
			if isHeaderLine(text) {
				return true, header.add(text)
			}
			if cont, err := finishHeader(); err != nil || !cont {
				return false, err
			}
		} else if isHeaderLine(text) {
			return false, &HeaderLineError{Kind: MisplacedHeaderLine, Value: text}
		}
		rec, err := p.parseRecord(text, line)
		if err != nil {
			return false, err
		}
		return l.OnRecord(rec), nil
	})
	if err != nil {
		return err
	}
	if !headerDone {
		if _, err := finishHeader(); err != nil {
			return tabular.AtLine(reader.Line(), err)
		}
	}
	return nil
}

// Read returns the header and all records of r.
func (p Parser) Read(r io.Reader) (*Header, []*Record, error) {
	var c Collector
	if err := p.Stream(r, &c); err != nil {
		return nil, nil, err
	}
	return c.Header, c.Records, nil
}

// Records returns all records of r.
func (p Parser) Records(r io.Reader) ([]*Record, error) {
	_, recs, err := p.Read(r)
	return recs, err
}

// ReadHeader returns the header of r. Alignment lines are not
// parsed.
func (p Parser) ReadHeader(r io.Reader) (hdr *Header, err error) {
	err = p.Stream(r, ListenerFuncs{Header: func(h *Header) bool {
		hdr = h
		return false
	}})
	return hdr, err
}

// All returns an iterator over the records of r. A parse error is
// yielded once, with a nil record, and ends the iteration.
func (p Parser) All(r io.Reader) iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		if err := p.Stream(r, ListenerFuncs{Record: func(rec *Record) bool {
			return yield(rec, nil)
		}}); err != nil {
			yield(nil, err)
		}
	}
}

/*
ParallelRecords is like Read, but parses alignment lines in parallel.
The records are returned in input order. When several lines are
malformed, the error for the first one is reported.
*/
func (p Parser) ParallelRecords(r io.Reader) (*Header, []*Record, error) {
	reader := tabular.NewReader(r)
	header := headerState{builder: NewHeaderBuilder()}
	// a header that cannot be built is reported at the first alignment line
	errLine := 0
	for reader.Next() {
		text := reader.Text()
		if tabular.IsBlank(text) {
			continue
		}
		if !isHeaderLine(text) {
			errLine = reader.Line()
			reader.Unread()
			break
		}
		if err := header.add(text); err != nil {
			return nil, nil, tabular.AtLine(reader.Line(), err)
		}
	}
	if err := reader.Err(); err != nil {
		return nil, nil, err
	}
	if errLine == 0 {
		errLine = reader.Line()
	}
	hdr, err := header.builder.Build()
	if err != nil {
		return nil, nil, tabular.AtLine(errLine, err)
	}
	recs, err := tabular.ParallelCollect(reader, func(text string, line int) (*Record, error) {
		if isHeaderLine(text) {
			return nil, &HeaderLineError{Kind: MisplacedHeaderLine, Value: text}
		}
		return p.parseRecord(text, line)
	})
	if err != nil {
		return nil, nil, err
	}
	return hdr, recs, nil
}

// Stream uses the zero Parser.
func Stream(r io.Reader, l Listener) error {
	return Parser{}.Stream(r, l)
}

// Read uses the zero Parser.
func Read(r io.Reader) (*Header, []*Record, error) {
	return Parser{}.Read(r)
}

// Records uses the zero Parser.
func Records(r io.Reader) ([]*Record, error) {
	return Parser{}.Records(r)
}

// ReadHeader uses the zero Parser.
func ReadHeader(r io.Reader) (*Header, error) {
	return Parser{}.ReadHeader(r)
}

// All uses the zero Parser.
func All(r io.Reader) iter.Seq2[*Record, error] {
	return Parser{}.All(r)
}

// ParallelRecords uses the zero Parser.
func ParallelRecords(r io.Reader) (*Header, []*Record, error) {
	return Parser{}.ParallelRecords(r)
}

// ReadFile opens a possibly compressed SAM file and returns its
// header and records.
func (p Parser) ReadFile(name string) (hdr *Header, recs []*Record, err error) {
	input, err := internal.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if nerr := input.Close(); err == nil {
			err = nerr
		}
	}()
	return p.Read(input)
}

// RecordsFromFile opens a possibly compressed SAM file and returns
// its records.
func RecordsFromFile(name string) ([]*Record, error) {
	_, recs, err := Parser{}.ReadFile(name)
	return recs, err
}

// HeaderFromFile opens a possibly compressed SAM file and returns its
// header.
func HeaderFromFile(name string) (hdr *Header, err error) {
	input, err := internal.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := input.Close(); err == nil {
			err = nerr
		}
	}()
	return ReadHeader(input)
}
