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

// A HeaderBuilder accumulates header lines for a Header.
type HeaderBuilder struct {
	hd *FileHeaderLine
	sq []*SequenceHeaderLine
	rg []*ReadGroupHeaderLine
	pg []*ProgramHeaderLine
	co []*CommentHeaderLine
}

// NewHeaderBuilder returns an empty HeaderBuilder.
func NewHeaderBuilder() *HeaderBuilder {
	return &HeaderBuilder{}
}

// ToBuilder returns a HeaderBuilder initialized with the lines of the
// header.
func (hdr *Header) ToBuilder() *HeaderBuilder {
	return &HeaderBuilder{
		hd: hdr.HD,
		sq: append([]*SequenceHeaderLine(nil), hdr.SQ...),
		rg: append([]*ReadGroupHeaderLine(nil), hdr.RG...),
		pg: append([]*ProgramHeaderLine(nil), hdr.PG...),
		co: append([]*CommentHeaderLine(nil), hdr.CO...),
	}
}

// WithHeaderLine sets the @HD line, replacing any previous one.
func (b *HeaderBuilder) WithHeaderLine(hd *FileHeaderLine) *HeaderBuilder {
	b.hd = hd
	return b
}

// WithSequenceHeaderLines appends @SQ lines.
func (b *HeaderBuilder) WithSequenceHeaderLines(lines ...*SequenceHeaderLine) *HeaderBuilder {
	b.sq = append(b.sq, lines...)
	return b
}

// WithReadGroupHeaderLines appends @RG lines.
func (b *HeaderBuilder) WithReadGroupHeaderLines(lines ...*ReadGroupHeaderLine) *HeaderBuilder {
	b.rg = append(b.rg, lines...)
	return b
}

// WithProgramHeaderLines appends @PG lines.
func (b *HeaderBuilder) WithProgramHeaderLines(lines ...*ProgramHeaderLine) *HeaderBuilder {
	b.pg = append(b.pg, lines...)
	return b
}

// WithCommentHeaderLines appends @CO lines.
func (b *HeaderBuilder) WithCommentHeaderLines(lines ...*CommentHeaderLine) *HeaderBuilder {
	b.co = append(b.co, lines...)
	return b
}

// WithLine adds a header line of any type.
func (b *HeaderBuilder) WithLine(line HeaderLine) *HeaderBuilder {
	switch line := line.(type) {
	case *FileHeaderLine:
		return b.WithHeaderLine(line)
	case *SequenceHeaderLine:
		return b.WithSequenceHeaderLines(line)
	case *ReadGroupHeaderLine:
		return b.WithReadGroupHeaderLines(line)
	case *ProgramHeaderLine:
		return b.WithProgramHeaderLines(line)
	case *CommentHeaderLine:
		return b.WithCommentHeaderLines(line)
	default:
		panic("unknown header line type")
	}
}

// ReplaceSequenceHeaderLines replaces all @SQ lines.
func (b *HeaderBuilder) ReplaceSequenceHeaderLines(lines ...*SequenceHeaderLine) *HeaderBuilder {
	b.sq = append([]*SequenceHeaderLine(nil), lines...)
	return b
}

// ReplaceReadGroupHeaderLines replaces all @RG lines.
func (b *HeaderBuilder) ReplaceReadGroupHeaderLines(lines ...*ReadGroupHeaderLine) *HeaderBuilder {
	b.rg = append([]*ReadGroupHeaderLine(nil), lines...)
	return b
}

// ReplaceProgramHeaderLines replaces all @PG lines.
func (b *HeaderBuilder) ReplaceProgramHeaderLines(lines ...*ProgramHeaderLine) *HeaderBuilder {
	b.pg = append([]*ProgramHeaderLine(nil), lines...)
	return b
}

// ReplaceCommentHeaderLines replaces all @CO lines.
func (b *HeaderBuilder) ReplaceCommentHeaderLines(lines ...*CommentHeaderLine) *HeaderBuilder {
	b.co = append([]*CommentHeaderLine(nil), lines...)
	return b
}

// Reset removes all lines from the builder.
func (b *HeaderBuilder) Reset() *HeaderBuilder {
	*b = HeaderBuilder{}
	return b
}

// Build returns a new Header. It fails with a *HeaderBuildError if
// there are secondary lines but no @HD line. The builder can be
// reused afterwards.
func (b *HeaderBuilder) Build() (*Header, error) {
	if b.hd == nil && (len(b.sq) > 0 || len(b.rg) > 0 || len(b.pg) > 0 || len(b.co) > 0) {
		return nil, &HeaderBuildError{SQ: len(b.sq), RG: len(b.rg), PG: len(b.pg), CO: len(b.co)}
	}
	hdr := &Header{
		HD: b.hd,
		SQ: append([]*SequenceHeaderLine(nil), b.sq...),
		RG: append([]*ReadGroupHeaderLine(nil), b.rg...),
		PG: append([]*ProgramHeaderLine(nil), b.pg...),
		CO: append([]*CommentHeaderLine(nil), b.co...),
	}
	if len(hdr.SQ) > 0 {
		hdr.references = make(map[string]int, len(hdr.SQ))
		for index, line := range hdr.SQ {
			if _, found := hdr.references[line.SN()]; !found {
				hdr.references[line.SN()] = index
			}
		}
	}
	return hdr, nil
}
