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
	"github.com/exascience/alnformats/fields"
	"github.com/exascience/alnformats/tabular"
)

// A Builder assembles a Record with chainable setters. Optional field
// errors are reported by Build. A Builder can be reused after Reset.
type Builder struct {
	rec    Record
	tags   tabular.FieldsBuilder
	checks Checks
}

// NewBuilder returns a Builder for a record on the forward strand,
// with absent names, zero coordinates, and MappingQuality 255.
func NewBuilder() *Builder {
	b := &Builder{}
	return b.Reset()
}

// ToBuilder returns a Builder initialized with a copy of the record.
func (rec *Record) ToBuilder() *Builder {
	b := &Builder{rec: *rec}
	b.rec.Tags = fields.Fields{}
	b.tags.Set(&rec.Tags)
	return b
}

// WithChecks selects the checks Build applies to the record.
func (b *Builder) WithChecks(checks Checks) *Builder {
	b.checks = checks
	return b
}

func (b *Builder) WithQueryName(name string) *Builder {
	b.rec.QueryName = name
	return b
}

func (b *Builder) WithQueryLength(length int64) *Builder {
	b.rec.QueryLength = length
	return b
}

// WithQuery sets the query interval.
func (b *Builder) WithQuery(start, end int64) *Builder {
	b.rec.QueryStart, b.rec.QueryEnd = start, end
	return b
}

func (b *Builder) WithStrand(strand tabular.Strand) *Builder {
	b.rec.Strand = strand
	return b
}

func (b *Builder) WithTargetName(name string) *Builder {
	b.rec.TargetName = name
	return b
}

func (b *Builder) WithTargetLength(length int64) *Builder {
	b.rec.TargetLength = length
	return b
}

// WithTarget sets the target interval.
func (b *Builder) WithTarget(start, end int64) *Builder {
	b.rec.TargetStart, b.rec.TargetEnd = start, end
	return b
}

func (b *Builder) WithMatches(matches int64) *Builder {
	b.rec.Matches = matches
	return b
}

func (b *Builder) WithBlockLength(length int64) *Builder {
	b.rec.BlockLength = length
	return b
}

func (b *Builder) WithMappingQuality(quality byte) *Builder {
	b.rec.MappingQuality = quality
	return b
}

func (b *Builder) WithLine(line int) *Builder {
	b.rec.Line = line
	return b
}

// WithField adds raw values for an optional field of a scalar type.
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

// ReplaceField discards previous values of the tag before adding
// the new ones.
func (b *Builder) ReplaceField(tag fields.Tag, t fields.Type, values ...string) *Builder {
	b.tags.Replace(tag, t, fields.NoArrayType, values...)
	return b
}

// ReplaceArrayField discards previous values of the tag before adding
// the new elements.
func (b *Builder) ReplaceArrayField(tag fields.Tag, at fields.ArrayType, values ...string) *Builder {
	b.tags.Replace(tag, fields.NumericArray, at, values...)
	return b
}

func (b *Builder) DeleteField(tag fields.Tag) *Builder {
	b.tags.Delete(tag)
	return b
}

// Reset restores the state of NewBuilder. The selected checks are
// kept.
func (b *Builder) Reset() *Builder {
	b.rec = Record{Strand: tabular.Forward, MappingQuality: 255}
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
	rec.Tags = b.tags.Fields()
	if b.checks != NoChecks {
		if err := rec.Validate(b.checks); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}
