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
	"bufio"
	"io"

	"github.com/exascience/alnformats/internal"
)

// A Writer writes SAM text. Call Flush when done.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

// NewWriter returns a Writer for w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 1<<16)}
}

// WriteHeader writes all header lines.
func (w *Writer) WriteHeader(hdr *Header) error {
	w.buf = hdr.Format(w.buf[:0])
	_, err := w.w.Write(w.buf)
	return err
}

// Write writes a single record line.
func (w *Writer) Write(rec *Record) error {
	w.buf = append(rec.Format(w.buf[:0]), '\n')
	_, err := w.w.Write(w.buf)
	return err
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Write writes a header, which may be nil, and all records to out.
func Write(out io.Writer, hdr *Header, recs []*Record) error {
	w := NewWriter(out)
	if hdr != nil {
		if err := w.WriteHeader(hdr); err != nil {
			return err
		}
	}
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteFile creates a SAM file, compressed according to its
// extension, and writes a header, which may be nil, and all records
// to it.
func WriteFile(name string, hdr *Header, recs []*Record) (err error) {
	output, err := internal.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := output.Close(); err == nil {
			err = nerr
		}
	}()
	return Write(output, hdr, recs)
}
