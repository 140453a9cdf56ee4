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
	"github.com/exascience/alnformats/tabular"
)

// The number of mandatory fields of a SAM alignment line.
const mandatoryFields = 11

// A Parser parses SAM text. The zero Parser applies no record checks.
type Parser struct {
	Checks Checks
}

// ParseRecord parses a single alignment line, without line
// terminator.
func (p Parser) ParseRecord(text string) (*Record, error) {
	return p.parseRecord(text, 0)
}

// ParseRecord parses a single alignment line with the zero Parser.
func ParseRecord(text string) (*Record, error) {
	return Parser{}.ParseRecord(text)
}

func (p Parser) parseRecord(text string, line int) (*Record, error) {
	tokens := tabular.Split(text)
	if err := tabular.CheckTokens(tokens, mandatoryFields); err != nil {
		return nil, err
	}
	rec := &Record{
		QNAME: tabular.String(tokens[0]),
		RNAME: tabular.String(tokens[2]),
		CIGAR: tabular.String(tokens[5]),
		RNEXT: tabular.String(tokens[6]),
		SEQ:   tabular.String(tokens[9]),
		QUAL:  tabular.String(tokens[10]),
		Line:  line,
	}
	flag, err := tabular.Uint(tokens[1], "FLAG", 16)
	if err != nil {
		return nil, err
	}
	rec.FLAG = uint16(flag)
	pos, err := tabular.Int(tokens[3], "POS", 32)
	if err != nil {
		return nil, err
	}
	rec.POS = int32(pos)
	mapq, err := tabular.Uint(tokens[4], "MAPQ", 8)
	if err != nil {
		return nil, err
	}
	rec.MAPQ = byte(mapq)
	pnext, err := tabular.Int(tokens[7], "PNEXT", 32)
	if err != nil {
		return nil, err
	}
	rec.PNEXT = int32(pnext)
	tlen, err := tabular.Int(tokens[8], "TLEN", 32)
	if err != nil {
		return nil, err
	}
	rec.TLEN = int32(tlen)
	if err := tabular.ParseOptionalFields(tokens[mandatoryFields:], &rec.TAGS); err != nil {
		return nil, err
	}
	if p.Checks != NoChecks {
		if err := rec.Validate(p.Checks); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// headerState tracks the header lines seen so far.
type headerState struct {
	builder *HeaderBuilder
	lines   int
}

func (state *headerState) add(text string) error {
	line, err := ParseHeaderLine(text)
	if err != nil {
		return err
	}
	if _, ok := line.(*FileHeaderLine); ok && state.lines > 0 {
		return &HeaderLineError{Kind: MisplacedFileHeader, Code: FileHeaderCode, Value: text}
	}
	state.lines++
	state.builder.WithLine(line)
	return nil
}

func isHeaderLine(text string) bool {
	return text != "" && text[0] == '@'
}
