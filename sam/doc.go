// Package sam is a library for parsing, representing, and writing
// SAM text files.
//
// A SAM file consists of header lines, each starting with @, followed
// by alignment lines with eleven mandatory tab-separated fields and
// any number of optional TAG:TYPE:VALUE fields. Header lines are
// represented by the typed line structs FileHeaderLine,
// SequenceHeaderLine, ReadGroupHeaderLine, ProgramHeaderLine, and
// CommentHeaderLine, and collected in a Header. Alignment lines are
// represented by Record values, whose optional fields are kept in a
// fields.Fields container.
//
// Inputs can be processed in a streaming fashion with Stream and a
// Listener, iterated over with All, or collected in memory with Read
// and ParallelRecords. The latter parses alignment lines in parallel
// using the pargo library.
package sam
