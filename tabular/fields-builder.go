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

package tabular

import "github.com/exascience/alnformats/fields"

/*
A FieldsBuilder accumulates the optional fields of a record that is
being built.

The first error is sticky: later additions are ignored, and Err
reports the error until Reset is called. This lets record builders
offer chainable setters and report problems once, from Build.
*/
type FieldsBuilder struct {
	fields fields.Fields
	err    error
}

// Put adds raw values with the semantics of fields.Fields.Put.
func (b *FieldsBuilder) Put(tag fields.Tag, t fields.Type, at fields.ArrayType, raw ...string) {
	if b.err == nil {
		b.err = b.fields.Put(tag, t, at, raw...)
	}
}

// PutValue adds a decoded value with the semantics of
// fields.Fields.PutValue.
func (b *FieldsBuilder) PutValue(tag fields.Tag, v fields.Value) {
	if b.err == nil {
		b.err = b.fields.PutValue(tag, v)
	}
}

// Replace replaces a field with the semantics of
// fields.Fields.Replace.
func (b *FieldsBuilder) Replace(tag fields.Tag, t fields.Type, at fields.ArrayType, raw ...string) {
	if b.err == nil {
		b.err = b.fields.Replace(tag, t, at, raw...)
	}
}

// ReplaceValue replaces a field with a decoded value.
func (b *FieldsBuilder) ReplaceValue(tag fields.Tag, v fields.Value) {
	if b.err == nil {
		b.fields.ReplaceValue(tag, v)
	}
}

// Delete removes a field.
func (b *FieldsBuilder) Delete(tag fields.Tag) {
	if b.err == nil {
		b.fields.Delete(tag)
	}
}

// Set initializes the builder with a copy of fs.
func (b *FieldsBuilder) Set(fs *fields.Fields) {
	b.fields = fs.Clone()
	b.err = nil
}

// Reset removes all fields and clears the error.
func (b *FieldsBuilder) Reset() {
	b.fields.Reset()
	b.err = nil
}

// Err returns the first error encountered since the last Reset.
func (b *FieldsBuilder) Err() error {
	return b.err
}

// Fields returns a copy of the accumulated fields, so the builder can
// be reused without affecting the result.
func (b *FieldsBuilder) Fields() fields.Fields {
	return b.fields.Clone()
}
