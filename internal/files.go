package internal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/klauspost/compress/zstd"
)

// Compression file extensions recognized by Open and Create.
const (
	GzipExt = ".gz"
	ZstdExt = ".zst"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func closeAll(closers []io.Closer) (err error) {
	for _, c := range closers {
		if nerr := c.Close(); nerr != nil && err == nil {
			err = nerr
		}
	}
	return err
}

// An InputFile is a file opened for reading. If the file was
// compressed, reads return the decompressed contents.
type InputFile struct {
	io.Reader
	closers []io.Closer
}

// Close releases the decompressor, if any, and then the underlying
// file. The standard input is never closed.
func (f *InputFile) Close() error {
	return closeAll(f.closers)
}

// An OutputFile is a file opened for writing. If the file name has a
// compression extension, writes are compressed accordingly.
type OutputFile struct {
	io.Writer
	closers []io.Closer
}

// Close flushes and releases the compressor, if any, and then the
// underlying file. The standard output is never closed.
func (f *OutputFile) Close() error {
	return closeAll(f.closers)
}

// TrimCompressionExt removes a trailing .gz or .zst extension from
// the given file name.
func TrimCompressionExt(name string) string {
	switch filepath.Ext(name) {
	case GzipExt, ZstdExt:
		return strings.TrimSuffix(name, filepath.Ext(name))
	default:
		return name
	}
}

// IsGzip checks whether the given reader starts with the gzip magic
// number, without consuming any input.
func IsGzip(buf *bufio.Reader) (bool, error) {
	magic, err := buf.Peek(2)
	switch {
	case err == io.EOF:
		return false, nil
	case err != nil:
		return false, err
	}
	return magic[0] == 0x1f && magic[1] == 0x8b, nil
}

// Open a file for input.
//
// Files ending in .zst are zstd compressed. Every other file is
// checked for the gzip magic number, and if present must be BGZF
// compressed (as produced by bgzip). If the name is "/dev/stdin",
// the input is read from os.Stdin, which is never closed.
func Open(name string) (*InputFile, error) {
	var (
		rc      io.Reader
		closers []io.Closer
	)
	if name == "/dev/stdin" {
		rc = os.Stdin
	} else {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		rc = file
		closers = []io.Closer{file}
	}
	if filepath.Ext(name) == ZstdExt {
		dec, err := zstd.NewReader(rc)
		if err != nil {
			_ = closeAll(closers)
			return nil, err
		}
		release := closerFunc(func() error { dec.Close(); return nil })
		return &InputFile{Reader: dec, closers: append([]io.Closer{release}, closers...)}, nil
	}
	buf := bufio.NewReader(rc)
	ok, err := IsGzip(buf)
	if err != nil {
		_ = closeAll(closers)
		return nil, err
	}
	if !ok {
		return &InputFile{Reader: buf, closers: closers}, nil
	}
	bgz, err := bgzf.NewReader(buf, 1)
	if err != nil {
		_ = closeAll(closers)
		return nil, fmt.Errorf("%v is not a BGZF file: %w", name, err)
	}
	return &InputFile{Reader: bgz, closers: append([]io.Closer{bgz}, closers...)}, nil
}

// Create a file for output, compressing according to the extension
// of the name in the same way as Open decompresses.
//
// If the name is "/dev/stdout", then the output is written
// uncompressed to os.Stdout.
func Create(name string) (*OutputFile, error) {
	if name == "/dev/stdout" {
		return &OutputFile{Writer: os.Stdout}, nil
	}
	file, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(name) {
	case GzipExt:
		bgz := bgzf.NewWriter(file, 1)
		return &OutputFile{Writer: bgz, closers: []io.Closer{bgz, file}}, nil
	case ZstdExt:
		enc, err := zstd.NewWriter(file)
		if err != nil {
			_ = file.Close()
			return nil, err
		}
		return &OutputFile{Writer: enc, closers: []io.Closer{enc, file}}, nil
	default:
		return &OutputFile{Writer: file, closers: []io.Closer{file}}, nil
	}
}
