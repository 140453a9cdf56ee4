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
	"github.com/exascience/alnformats/fields"
	"github.com/exascience/alnformats/tabular"
)

/*
A Builder assembles a Record with chainable setters.

Optional field errors do not interrupt the chain. The first one is
reported by Build. A Builder can be reused after Reset.
*/
type Builder struct {
	rec    Record
	tags   tabular.FieldsBuilder
	checks Checks
}

// NewBuilder returns a Builder for a record with all mandatory fields
// absent and MAPQ 255.
func NewBuilder() *Builder {
	b := &Builder{}
	return b.Reset()
}

// ToBuilder returns a Builder initialized with a copy of the record.
func (rec *Record) ToBuilder() *Builder {
	b := &Builder{rec: *rec}
	b.rec.TAGS = fields.Fields{}
	b.tags.Set(&rec.TAGS)
	return b
}

// WithChecks selects the checks Build applies to the record.
func (b *Builder) WithChecks(checks Checks) *Builder {
	b.checks = checks
	return b
}

func (b *Builder) WithQNAME(qname string) *Builder {
	b.rec.QNAME = qname
	return b
}

func (b *Builder) WithFLAG(flag uint16) *Builder {
	b.rec.FLAG = flag
	return b
}

func (b *Builder) WithRNAME(rname string) *Builder {
	b.rec.RNAME = rname
	return b
}

func (b *Builder) WithPOS(pos int32) *Builder {
	b.rec.POS = pos
	return b
}

func (b *Builder) WithMAPQ(mapq byte) *Builder {
	b.rec.MAPQ = mapq
	return b
}

func (b *Builder) WithCIGAR(cigar string) *Builder {
	b.rec.CIGAR = cigar
	return b
}

func (b *Builder) WithRNEXT(rnext string) *Builder {
	b.rec.RNEXT = rnext
	return b
}

func (b *Builder) WithPNEXT(pnext int32) *Builder {
	b.rec.PNEXT = pnext
	return b
}

func (b *Builder) WithTLEN(tlen int32) *Builder {
	b.rec.TLEN = tlen
	return b
}

func (b *Builder) WithSEQ(seq string) *Builder {
	b.rec.SEQ = seq
	return b
}

func (b *Builder) WithQUAL(qual string) *Builder {
	b.rec.QUAL = qual
	return b
}

// WithLine sets the input line number.
func (b *Builder) WithLine(line int) *Builder {
	b.rec.Line = line
	return b
}

// WithField adds raw values for an optional field of a scalar type.
// Values accumulate on repeated calls for the same tag.
func (b *Builder) WithField(tag fields.Tag, t fields.Type, values ...string) *Builder {
	b.tags.Put(tag, t, fields.NoArrayType, values...)
	return b
}

// WithArrayField adds elements to a numeric array field.
func (b *Builder) WithArrayField(tag fields.Tag, at fields.ArrayType, values ...string) *Builder {
	b.tags.Put(tag, fields.NumericArray, at, values...)
	return b
}

// WithValue adds a decoded optional field value.
func (b *Builder) WithValue(tag fields.Tag, v fields.Value) *Builder {
	b.tags.PutValue(tag, v)
	return b
}

// ReplaceField is like WithField, but discards previous values of the
// tag.
func (b *Builder) ReplaceField(tag fields.Tag, t fields.Type, values ...string) *Builder {
	b.tags.Replace(tag, t, fields.NoArrayType, values...)
	return b
}

// ReplaceArrayField is like WithArrayField, but discards previous
// values of the tag.
func (b *Builder) ReplaceArrayField(tag fields.Tag, at fields.ArrayType, values ...string) *Builder {
	b.tags.Replace(tag, fields.NumericArray, at, values...)
	return b
}

// ReplaceValue is like WithValue, but discards previous values of the
// tag.
func (b *Builder) ReplaceValue(tag fields.Tag, v fields.Value) *Builder {
	b.tags.ReplaceValue(tag, v)
	return b
}

// DeleteField removes an optional field.
func (b *Builder) DeleteField(tag fields.Tag) *Builder {
	b.tags.Delete(tag)
	return b
}

// Reset restores the state of NewBuilder. The selected checks are
// kept.
func (b *Builder) Reset() *Builder {
	b.rec = Record{MAPQ: 255}
	b.tags.Reset()
	return b
}

// Build returns a new Record, or the first error encountered while
// adding optional fields or while validating the record.
func (b *Builder) Build() (*Record, error) {
	if err := b.tags.Err(); err != nil {
		return nil, err
	}
	rec := b.rec
	rec.TAGS = b.tags.Fields()
	if b.checks != NoChecks {
		if err := rec.Validate(b.checks); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}
