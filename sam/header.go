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
	"strconv"

	"github.com/bits-and-blooms/bitset"

	"github.com/exascience/alnformats/utils"
)

// The supported SAM file format version, used when a @HD line needs
// to be created.
const FileFormatVersion = "1.6"

// Header line codes.
const (
	FileHeaderCode = "@HD"
	SequenceCode   = "@SQ"
	ReadGroupCode  = "@RG"
	ProgramCode    = "@PG"
	CommentCode    = "@CO"
)

// A lineSchema lists the keys of a header line type in their
// canonical output order: required keys first, then well-known
// optional keys. All other keys follow in the order in which they
// were encountered.
type lineSchema struct {
	code      string
	required  []string
	wellKnown []string
}

var (
	fileHeaderSchema = &lineSchema{FileHeaderCode, []string{"VN"}, []string{"SO", "GO", "SS"}}
	sequenceSchema   = &lineSchema{SequenceCode, []string{"SN", "LN"}, []string{"AH", "AN", "AS", "DS", "M5", "SP", "TP", "UR"}}
	readGroupSchema  = &lineSchema{ReadGroupCode, []string{"ID"}, []string{"BC", "CN", "DS", "DT", "FO", "KS", "LB", "PG", "PI", "PL", "PM", "PU", "SM"}}
	programSchema    = &lineSchema{ProgramCode, []string{"ID"}, []string{"PN", "CL", "PP", "DS", "VN"}}
)

func (schema *lineSchema) known(key string) bool {
	for _, k := range schema.required {
		if k == key {
			return true
		}
	}
	for _, k := range schema.wellKnown {
		if k == key {
			return true
		}
	}
	return false
}

func alnumIndex(c byte) (uint, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint(c - '0'), true
	case 'A' <= c && c <= 'Z':
		return uint(c-'A') + 10, true
	case 'a' <= c && c <= 'z':
		return uint(c-'a') + 36, true
	default:
		return 0, false
	}
}

// keyIndex maps a valid two-character annotation key to a unique
// index below 62*62.
func keyIndex(key string) (uint, bool) {
	if len(key) != 2 || !(('A' <= key[0] && key[0] <= 'Z') || ('a' <= key[0] && key[0] <= 'z')) {
		return 0, false
	}
	i, _ := alnumIndex(key[0])
	j, ok := alnumIndex(key[1])
	if !ok {
		return 0, false
	}
	return i*62 + j, true
}

// checkAnnotations verifies that all keys are well-formed and unique,
// and that all required keys of the schema are present.
func checkAnnotations(schema *lineSchema, entries utils.StringMap) error {
	seen := bitset.New(62 * 62)
	for _, entry := range entries {
		index, ok := keyIndex(entry.Key)
		if !ok {
			return &HeaderLineError{Kind: MalformedAnnotation, Code: schema.code, Key: entry.Key, Value: entry.Key + ":" + entry.Value}
		}
		if seen.Test(index) {
			return &HeaderLineError{Kind: DuplicateKey, Code: schema.code, Key: entry.Key}
		}
		seen.Set(index)
	}
	for _, key := range schema.required {
		index, _ := keyIndex(key)
		if !seen.Test(index) {
			return &HeaderLineError{Kind: MissingRequiredField, Code: schema.code, Key: key}
		}
	}
	return nil
}

// Annotations are the KEY:VALUE pairs of a header line, in the order
// in which they were encountered.
type Annotations struct {
	entries utils.StringMap
}

// Get returns the value for the given key.
func (a *Annotations) Get(key string) (string, bool) {
	return a.entries.Get(key)
}

func (a *Annotations) get(key string) string {
	value, _ := a.entries.Get(key)
	return value
}

// Len returns the number of annotations.
func (a *Annotations) Len() int {
	return len(a.entries)
}

// Entries returns a copy of all annotations in encounter order.
func (a *Annotations) Entries() utils.StringMap {
	return a.entries.Clone()
}

func (a *Annotations) equal(other *Annotations) bool {
	if len(a.entries) != len(other.entries) {
		return false
	}
	for _, entry := range a.entries {
		if value, found := other.entries.Get(entry.Key); !found || value != entry.Value {
			return false
		}
	}
	return true
}

func appendAnnotation(out []byte, key, value string) []byte {
	out = append(out, '\t')
	out = append(out, key...)
	out = append(out, ':')
	return append(out, value...)
}

// format appends a header line in canonical key order.
func (a *Annotations) format(out []byte, schema *lineSchema) []byte {
	out = append(out, schema.code...)
	for _, key := range schema.required {
		if value, found := a.entries.Get(key); found {
			out = appendAnnotation(out, key, value)
		}
	}
	for _, key := range schema.wellKnown {
		if value, found := a.entries.Get(key); found {
			out = appendAnnotation(out, key, value)
		}
	}
	for _, entry := range a.entries {
		if !schema.known(entry.Key) {
			out = appendAnnotation(out, entry.Key, entry.Value)
		}
	}
	return out
}

// A HeaderLine is one of *FileHeaderLine, *SequenceHeaderLine,
// *ReadGroupHeaderLine, *ProgramHeaderLine, or *CommentHeaderLine.
type HeaderLine interface {
	// Code returns the line type code, such as "@SQ".
	Code() string
	// Format appends the line, without line terminator, to out.
	Format(out []byte) []byte
	isHeaderLine()
}

// FileHeaderLine is the @HD line.
type FileHeaderLine struct{ Annotations }

// SequenceHeaderLine is an @SQ line.
type SequenceHeaderLine struct {
	Annotations
	length int32
}

// ReadGroupHeaderLine is an @RG line.
type ReadGroupHeaderLine struct{ Annotations }

// ProgramHeaderLine is a @PG line.
type ProgramHeaderLine struct{ Annotations }

// CommentHeaderLine is a @CO line.
type CommentHeaderLine struct {
	text string
}

func (*FileHeaderLine) isHeaderLine()      {}
func (*SequenceHeaderLine) isHeaderLine()  {}
func (*ReadGroupHeaderLine) isHeaderLine() {}
func (*ProgramHeaderLine) isHeaderLine()   {}
func (*CommentHeaderLine) isHeaderLine()   {}

// Code implements the method of the HeaderLine interface.
func (*FileHeaderLine) Code() string { return FileHeaderCode }

// Code implements the method of the HeaderLine interface.
func (*SequenceHeaderLine) Code() string { return SequenceCode }

// Code implements the method of the HeaderLine interface.
func (*ReadGroupHeaderLine) Code() string { return ReadGroupCode }

// Code implements the method of the HeaderLine interface.
func (*ProgramHeaderLine) Code() string { return ProgramCode }

// Code implements the method of the HeaderLine interface.
func (*CommentHeaderLine) Code() string { return CommentCode }

// Format implements the method of the HeaderLine interface.
func (line *FileHeaderLine) Format(out []byte) []byte {
	return line.format(out, fileHeaderSchema)
}

// Format implements the method of the HeaderLine interface.
func (line *SequenceHeaderLine) Format(out []byte) []byte {
	return line.format(out, sequenceSchema)
}

// Format implements the method of the HeaderLine interface.
func (line *ReadGroupHeaderLine) Format(out []byte) []byte {
	return line.format(out, readGroupSchema)
}

// Format implements the method of the HeaderLine interface.
func (line *ProgramHeaderLine) Format(out []byte) []byte {
	return line.format(out, programSchema)
}

// Format implements the method of the HeaderLine interface.
func (line *CommentHeaderLine) Format(out []byte) []byte {
	out = append(out, CommentCode...)
	if line.text == "" {
		return out
	}
	return append(append(out, '\t'), line.text...)
}

// NewFileHeaderLine returns an @HD line with the given annotations,
// which must include VN.
func NewFileHeaderLine(entries utils.StringMap) (*FileHeaderLine, error) {
	if err := checkAnnotations(fileHeaderSchema, entries); err != nil {
		return nil, err
	}
	return &FileHeaderLine{Annotations{entries.Clone()}}, nil
}

// NewSequenceHeaderLine returns an @SQ line with the given
// annotations, which must include SN and LN. LN must be a positive
// 32-bit integer.
func NewSequenceHeaderLine(entries utils.StringMap) (*SequenceHeaderLine, error) {
	if err := checkAnnotations(sequenceSchema, entries); err != nil {
		return nil, err
	}
	ln, _ := entries.Get("LN")
	length, err := strconv.ParseInt(ln, 10, 32)
	if err == nil && length < 1 {
		err = strconv.ErrRange
	}
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return nil, &HeaderLineError{Kind: MalformedAnnotation, Code: SequenceCode, Key: "LN", Value: ln, Err: err}
	}
	return &SequenceHeaderLine{Annotations: Annotations{entries.Clone()}, length: int32(length)}, nil
}

// NewReadGroupHeaderLine returns an @RG line with the given
// annotations, which must include ID.
func NewReadGroupHeaderLine(entries utils.StringMap) (*ReadGroupHeaderLine, error) {
	if err := checkAnnotations(readGroupSchema, entries); err != nil {
		return nil, err
	}
	return &ReadGroupHeaderLine{Annotations{entries.Clone()}}, nil
}

// NewProgramHeaderLine returns a @PG line with the given annotations,
// which must include ID.
func NewProgramHeaderLine(entries utils.StringMap) (*ProgramHeaderLine, error) {
	if err := checkAnnotations(programSchema, entries); err != nil {
		return nil, err
	}
	return &ProgramHeaderLine{Annotations{entries.Clone()}}, nil
}

// NewCommentHeaderLine returns a @CO line with the given free text.
func NewCommentHeaderLine(text string) *CommentHeaderLine {
	return &CommentHeaderLine{text: text}
}

// VN returns the format version.
func (line *FileHeaderLine) VN() string { return line.get("VN") }

// SO returns the sorting order, or "unknown" if absent.
func (line *FileHeaderLine) SO() string {
	if so, found := line.Get("SO"); found {
		return so
	}
	return "unknown"
}

// GO returns the grouping order, or "none" if absent.
func (line *FileHeaderLine) GO() string {
	if groupingOrder, found := line.Get("GO"); found {
		return groupingOrder
	}
	return "none"
}

// With returns a copy of the @HD line in which key is set to value.
// Setting SO removes GO and vice versa, since a file is either sorted
// or grouped.
func (line *FileHeaderLine) With(key, value string) (*FileHeaderLine, error) {
	entries := line.entries.Clone()
	switch key {
	case "SO":
		entries.Delete("GO")
	case "GO":
		entries.Delete("SO")
	}
	entries.Set(key, value)
	return NewFileHeaderLine(entries)
}

// SN returns the reference sequence name.
func (line *SequenceHeaderLine) SN() string { return line.get("SN") }

// LN returns the reference sequence length as written.
func (line *SequenceHeaderLine) LN() string { return line.get("LN") }

// Length returns the reference sequence length.
func (line *SequenceHeaderLine) Length() int32 { return line.length }

// ID returns the read group identifier.
func (line *ReadGroupHeaderLine) ID() string { return line.get("ID") }

// SM returns the sample, or "" if absent.
func (line *ReadGroupHeaderLine) SM() string { return line.get("SM") }

// LB returns the library, or "" if absent.
func (line *ReadGroupHeaderLine) LB() string { return line.get("LB") }

// PL returns the platform, or "" if absent.
func (line *ReadGroupHeaderLine) PL() string { return line.get("PL") }

// ID returns the program record identifier.
func (line *ProgramHeaderLine) ID() string { return line.get("ID") }

// PN returns the program name, or "" if absent.
func (line *ProgramHeaderLine) PN() string { return line.get("PN") }

// VN returns the program version, or "" if absent.
func (line *ProgramHeaderLine) VN() string { return line.get("VN") }

// CL returns the command line, or "" if absent.
func (line *ProgramHeaderLine) CL() string { return line.get("CL") }

// PP returns the previous @PG ID in the program chain, or "" if
// absent.
func (line *ProgramHeaderLine) PP() string { return line.get("PP") }

// Text returns the comment.
func (line *CommentHeaderLine) Text() string { return line.text }

// Header is a SAM file header. HD is nil if there is no @HD line, in
// which case all other line lists are empty. A Header must not be
// modified once built; use ToBuilder to derive a new one.
type Header struct {
	HD *FileHeaderLine
	SQ []*SequenceHeaderLine
	RG []*ReadGroupHeaderLine
	PG []*ProgramHeaderLine
	CO []*CommentHeaderLine

	references map[string]int
}

// Lines returns all header lines in output order.
func (hdr *Header) Lines() []HeaderLine {
	lines := make([]HeaderLine, 0, 1+len(hdr.SQ)+len(hdr.RG)+len(hdr.PG)+len(hdr.CO))
	if hdr.HD != nil {
		lines = append(lines, hdr.HD)
	}
	for _, line := range hdr.SQ {
		lines = append(lines, line)
	}
	for _, line := range hdr.RG {
		lines = append(lines, line)
	}
	for _, line := range hdr.PG {
		lines = append(lines, line)
	}
	for _, line := range hdr.CO {
		lines = append(lines, line)
	}
	return lines
}

// IsEmpty reports whether the header has no lines at all.
func (hdr *Header) IsEmpty() bool {
	return hdr.HD == nil && len(hdr.SQ) == 0 && len(hdr.RG) == 0 && len(hdr.PG) == 0 && len(hdr.CO) == 0
}

// ReferenceIndex returns the position of the @SQ line with the given
// reference name.
func (hdr *Header) ReferenceIndex(name string) (int, bool) {
	if hdr.references != nil {
		index, found := hdr.references[name]
		return index, found
	}
	for index, line := range hdr.SQ {
		if line.SN() == name {
			return index, true
		}
	}
	return -1, false
}

// Format appends all header lines, each terminated by a newline, to
// out.
func (hdr *Header) Format(out []byte) []byte {
	for _, line := range hdr.Lines() {
		out = append(line.Format(out), '\n')
	}
	return out
}

func (hdr *Header) String() string {
	return string(hdr.Format(nil))
}

// Equal reports whether both headers have the same lines. Within a
// line, the order of annotations does not matter.
func (hdr *Header) Equal(other *Header) bool {
	if (hdr.HD == nil) != (other.HD == nil) ||
		(hdr.HD != nil && !hdr.HD.equal(&other.HD.Annotations)) ||
		len(hdr.SQ) != len(other.SQ) || len(hdr.RG) != len(other.RG) ||
		len(hdr.PG) != len(other.PG) || len(hdr.CO) != len(other.CO) {
		return false
	}
	for i, line := range hdr.SQ {
		if !line.equal(&other.SQ[i].Annotations) {
			return false
		}
	}
	for i, line := range hdr.RG {
		if !line.equal(&other.RG[i].Annotations) {
			return false
		}
	}
	for i, line := range hdr.PG {
		if !line.equal(&other.PG[i].Annotations) {
			return false
		}
	}
	for i, line := range hdr.CO {
		if line.text != other.CO[i].text {
			return false
		}
	}
	return true
}

// WithSortOrder returns a copy of the header with the @HD SO entry
// set to the given order. An @HD line is created if necessary.
func (hdr *Header) WithSortOrder(order string) (*Header, error) {
	hd := hdr.HD
	var err error
	if hd == nil {
		hd, err = NewFileHeaderLine(utils.StringMap{{Key: "VN", Value: FileFormatVersion}, {Key: "SO", Value: order}})
	} else {
		hd, err = hd.With("SO", order)
	}
	if err != nil {
		return nil, err
	}
	return hdr.ToBuilder().WithHeaderLine(hd).Build()
}
