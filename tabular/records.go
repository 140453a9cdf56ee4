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

import (
	"bufio"
	"io"
	"iter"

	"github.com/exascience/alnformats/internal"
)

// StreamRecords parses the non-blank lines of r, given their 1-based
// numbers, and passes each record to onRecord, in input order, until
// onRecord returns false. Errors are reported as *LineError values.
func StreamRecords[T any](r io.Reader, parse func(text string, line int) (T, error), onRecord func(T) bool) error {
	return Each(NewReader(r), func(text string, line int) (bool, error) {
		rec, err := parse(text, line)
		if err != nil {
			return false, err
		}
		return onRecord(rec), nil
	})
}

// CollectRecords returns all records of r.
func CollectRecords[T any](r io.Reader, parse func(text string, line int) (T, error)) (recs []T, err error) {
	err = StreamRecords(r, parse, func(rec T) bool {
		recs = append(recs, rec)
		return true
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// AllRecords returns an iterator over the records of r. A parse error
// is yielded once, with the zero record, and ends the iteration.
func AllRecords[T any](r io.Reader, parse func(text string, line int) (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if err := StreamRecords(r, parse, func(rec T) bool {
			return yield(rec, nil)
		}); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

// ReadRecordsFile opens a possibly compressed file and returns its
// records.
func ReadRecordsFile[T any](name string, parse func(text string, line int) (T, error)) (recs []T, err error) {
	input, err := internal.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := input.Close(); err == nil {
			err = nerr
		}
	}()
	return CollectRecords(input, parse)
}

// A Formatter appends itself as one line, without line terminator.
type Formatter interface {
	Format(out []byte) []byte
}

// A RecordWriter writes one record per line. Call Flush when done.
type RecordWriter[T Formatter] struct {
	w   *bufio.Writer
	buf []byte
}

// NewRecordWriter returns a RecordWriter for w.
func NewRecordWriter[T Formatter](w io.Writer) *RecordWriter[T] {
	return &RecordWriter[T]{w: bufio.NewWriterSize(w, 1<<16)}
}

// Write writes a single record line.
func (w *RecordWriter[T]) Write(rec T) error {
	w.buf = append(rec.Format(w.buf[:0]), '\n')
	_, err := w.w.Write(w.buf)
	return err
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *RecordWriter[T]) Flush() error {
	return w.w.Flush()
}

// WriteRecords writes all records to out.
func WriteRecords[T Formatter](out io.Writer, recs []T) error {
	w := NewRecordWriter[T](out)
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteRecordsFile creates a file, compressed according to its
// extension, and writes all records to it.
func WriteRecordsFile[T Formatter](name string, recs []T) (err error) {
	output, err := internal.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := output.Close(); err == nil {
			err = nerr
		}
	}()
	return WriteRecords(output, recs)
}
