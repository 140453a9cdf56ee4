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
	"strings"

	"github.com/exascience/alnformats/utils"
)

func splitAnnotation(code, token string) (key, value string, err error) {
	if len(token) < 3 || token[2] != ':' {
		return "", "", &HeaderLineError{Kind: MalformedAnnotation, Code: code, Value: token}
	}
	return token[:2], token[3:], nil
}

func parseAnnotations(code, text string) (entries utils.StringMap, err error) {
	for _, token := range strings.Split(text, "\t") {
		key, value, err := splitAnnotation(code, token)
		if err != nil {
			return nil, err
		}
		entries = append(entries, utils.StringMapEntry{Key: key, Value: value})
	}
	return entries, nil
}

// ParseHeaderLine parses a single header line, without line
// terminator. The result is one of *FileHeaderLine,
// *SequenceHeaderLine, *ReadGroupHeaderLine, *ProgramHeaderLine, or
// *CommentHeaderLine.
func ParseHeaderLine(text string) (HeaderLine, error) {
	if len(text) < 3 || text[0] != '@' {
		return nil, &HeaderLineError{Kind: UnknownLineType, Value: text}
	}
	code, rest := text[:3], text[3:]
	if rest != "" {
		if rest[0] != '\t' {
			return nil, &HeaderLineError{Kind: UnknownLineType, Value: text}
		}
		rest = rest[1:]
	}
	if code == CommentCode {
		return NewCommentHeaderLine(rest), nil
	}
	var entries utils.StringMap
	switch code {
	case FileHeaderCode, SequenceCode, ReadGroupCode, ProgramCode:
		if rest != "" {
			var err error
			if entries, err = parseAnnotations(code, rest); err != nil {
				return nil, err
			}
		}
	default:
		return nil, &HeaderLineError{Kind: UnknownLineType, Code: code, Value: text}
	}
	switch code {
	case FileHeaderCode:
		return NewFileHeaderLine(entries)
	case SequenceCode:
		return NewSequenceHeaderLine(entries)
	case ReadGroupCode:
		return NewReadGroupHeaderLine(entries)
	default:
		return NewProgramHeaderLine(entries)
	}
}

func parseHeaderLineOf(code, text string) (HeaderLine, error) {
	line, err := ParseHeaderLine(text)
	if err != nil {
		return nil, err
	}
	if line.Code() != code {
		return nil, &HeaderLineError{Kind: UnknownLineType, Code: code, Value: text}
	}
	return line, nil
}

// ParseFileHeaderLine parses an @HD line.
func ParseFileHeaderLine(text string) (*FileHeaderLine, error) {
	line, err := parseHeaderLineOf(FileHeaderCode, text)
	if err != nil {
		return nil, err
	}
	return line.(*FileHeaderLine), nil
}

// ParseSequenceHeaderLine parses an @SQ line.
func ParseSequenceHeaderLine(text string) (*SequenceHeaderLine, error) {
	line, err := parseHeaderLineOf(SequenceCode, text)
	if err != nil {
		return nil, err
	}
	return line.(*SequenceHeaderLine), nil
}

// ParseReadGroupHeaderLine parses an @RG line.
func ParseReadGroupHeaderLine(text string) (*ReadGroupHeaderLine, error) {
	line, err := parseHeaderLineOf(ReadGroupCode, text)
	if err != nil {
		return nil, err
	}
	return line.(*ReadGroupHeaderLine), nil
}

// ParseProgramHeaderLine parses a @PG line.
func ParseProgramHeaderLine(text string) (*ProgramHeaderLine, error) {
	line, err := parseHeaderLineOf(ProgramCode, text)
	if err != nil {
		return nil, err
	}
	return line.(*ProgramHeaderLine), nil
}

// ParseCommentHeaderLine parses a @CO line.
func ParseCommentHeaderLine(text string) (*CommentHeaderLine, error) {
	line, err := parseHeaderLineOf(CommentCode, text)
	if err != nil {
		return nil, err
	}
	return line.(*CommentHeaderLine), nil
}
