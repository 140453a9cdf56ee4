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

	"github.com/exascience/alnformats/tabular"
)

// A Writer writes PAF text. Call Flush when done.
type Writer = tabular.RecordWriter[*Record]

// NewWriter returns a Writer for w.
func NewWriter(w io.Writer) *Writer {
	return tabular.NewRecordWriter[*Record](w)
}

// Write writes all records to out.
func Write(out io.Writer, recs []*Record) error {
	return tabular.WriteRecords(out, recs)
}

// WriteFile creates a PAF file, compressed according to its
// extension, and writes all records to it.
func WriteFile(name string, recs []*Record) error {
	return tabular.WriteRecordsFile(name, recs)
}
