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
	"strings"
)

/*
A Reader reads an input source one line at a time.

Line terminators (\n or \r\n) are removed. Line numbers start at 1.
*/
type Reader struct {
	buf    *bufio.Reader
	text   string
	line   int
	err    error
	unread bool
}

// NewReader returns a Reader for r. If r is already a *bufio.Reader,
// it is used directly.
func NewReader(r io.Reader) *Reader {
	if buf, ok := r.(*bufio.Reader); ok {
		return &Reader{buf: buf}
	}
	return &Reader{buf: bufio.NewReaderSize(r, 1<<16)}
}

// Next advances to the next line, which is then available through
// Text. It returns false at the end of the input or on an error.
func (r *Reader) Next() bool {
	if r.unread {
		r.unread = false
		r.line++
		return true
	}
	if r.err != nil {
		return false
	}
	line, err := r.buf.ReadString('\n')
	switch {
	case err == io.EOF:
		if line == "" {
			r.err = err
			return false
		}
	case err != nil:
		r.err = err
		return false
	}
	line = strings.TrimSuffix(line, "\n")
	r.text = strings.TrimSuffix(line, "\r")
	r.line++
	return true
}

// Unread pushes the current line back, so that the next call to Next
// returns it again. Only one line can be pushed back.
func (r *Reader) Unread() {
	if !r.unread && r.line > 0 {
		r.unread = true
		r.line--
	}
}

// Text returns the current line without its terminator.
func (r *Reader) Text() string {
	return r.text
}

// Line returns the number of the current line, or the number of
// lines read so far.
func (r *Reader) Line() int {
	return r.line
}

// Err returns the first non-EOF error encountered.
func (r *Reader) Err() error {
	if r.err == io.EOF {
		return nil
	}
	return r.err
}

// PeekByte returns the first byte of the next line without consuming
// it. The boolean result is false at the end of the input.
func (r *Reader) PeekByte() (byte, bool, error) {
	if r.unread {
		if r.text == "" {
			return '\n', true, nil
		}
		return r.text[0], true, nil
	}
	if r.err != nil {
		return 0, false, r.Err()
	}
	data, err := r.buf.Peek(1)
	switch {
	case err == io.EOF:
		return 0, false, nil
	case err != nil:
		r.err = err
		return 0, false, err
	}
	return data[0], true, nil
}

// IsBlank reports whether a line contains only white space. Blank
// lines are skipped by all drivers.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Each calls handle for every non-blank line of r until the input is
// exhausted or handle returns false. Errors returned by handle are
// reported with the number of the line that caused them.
func Each(r *Reader, handle func(text string, line int) (bool, error)) error {
	for r.Next() {
		text := r.Text()
		if IsBlank(text) {
			continue
		}
		cont, err := handle(text, r.Line())
		if err != nil {
			return AtLine(r.Line(), err)
		}
		if !cont {
			return nil
		}
	}
	return r.Err()
}
