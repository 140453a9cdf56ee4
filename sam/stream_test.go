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
	"bytes"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/exascience/alnformats/tabular"
)

const testHeader = "@HD\tVN:1.6\tSO:unsorted\n@SQ\tSN:chr1\tLN:1000\n"

func lineError(t *testing.T, err error) *tabular.LineError {
	t.Helper()
	var lerr *tabular.LineError
	if !errors.As(err, &lerr) {
		t.Fatalf("error %v is not a *tabular.LineError", err)
	}
	return lerr
}

func TestRead(t *testing.T) {
	hdr, recs, err := Read(strings.NewReader(testHeader + testLine + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if hdr.HD == nil || hdr.HD.VN() != "1.6" || len(hdr.SQ) != 1 || hdr.SQ[0].SN() != "chr1" {
		t.Errorf("unexpected header %q", hdr.String())
	}
	if len(recs) != 1 {
		t.Fatalf("%v records, want 1", len(recs))
	}
	if recs[0].Line != 3 {
		t.Errorf("Line=%v, want 3", recs[0].Line)
	}
	var out bytes.Buffer
	if err := Write(&out, hdr, recs); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), testHeader+testLine+"\n"; got != want {
		t.Errorf("Write()=%q, want %q", got, want)
	}
}

func TestStreamEarlyTermination(t *testing.T) {
	var input strings.Builder
	input.WriteString(testHeader)
	for i := 0; i < 5; i++ {
		input.WriteString(testLine + "\n")
	}
	input.WriteString("malformed\n")
	count := 0
	err := Stream(strings.NewReader(input.String()), ListenerFuncs{Record: func(*Record) bool {
		count++
		return count < 2
	}})
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("OnRecord called %v times, want 2", count)
	}
}

func TestStreamHeaderOnce(t *testing.T) {
	for _, input := range []string{"", "\n\n", testHeader, testLine + "\n" + testLine} {
		headers := 0
		records := 0
		err := Stream(strings.NewReader(input), ListenerFuncs{
			Header: func(*Header) bool {
				if records > 0 {
					t.Errorf("OnHeader after OnRecord for %q", input)
				}
				headers++
				return true
			},
			Record: func(*Record) bool {
				records++
				return true
			},
		})
		if err != nil {
			t.Errorf("Stream(%q): %v", input, err)
		}
		if headers != 1 {
			t.Errorf("OnHeader called %v times for %q", headers, input)
		}
	}
}

func TestStreamErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		line  int
		check func(error) bool
	}{
		{"@HD\tVN:1.6\n@XX\tfoo\n", 2, func(err error) bool {
			var herr *HeaderLineError
			return errors.As(err, &herr) && herr.Kind == UnknownLineType
		}},
		{"@SQ\tSN:chr1\tLN:10\n@HD\tVN:1.6\n", 2, func(err error) bool {
			var herr *HeaderLineError
			return errors.As(err, &herr) && herr.Kind == MisplacedFileHeader
		}},
		{"@SQ\tSN:chr1\tLN:10\n\n" + testLine + "\n", 3, func(err error) bool {
			return errors.Is(err, ErrMissingHeaderLine)
		}},
		{"@SQ\tSN:chr1\tLN:10\n", 1, func(err error) bool {
			return errors.Is(err, ErrMissingHeaderLine)
		}},
		{testHeader + "r1\t0\tchr1\n", 3, func(err error) bool {
			var rerr *tabular.RecordError
			return errors.As(err, &rerr) && rerr.Kind == tabular.TooFewTokens
		}},
		{testHeader + testLine + "\n@CO\tlate\n", 4, func(err error) bool {
			var herr *HeaderLineError
			return errors.As(err, &herr) && herr.Kind == MisplacedHeaderLine
		}},
	} {
		err := Stream(strings.NewReader(test.input), ListenerFuncs{})
		if err == nil {
			t.Errorf("Stream(%q) succeeded", test.input)
			continue
		}
		if lerr := lineError(t, err); lerr.Line != test.line {
			t.Errorf("Stream(%q) failed at line %v, want %v", test.input, lerr.Line, test.line)
		}
		if !test.check(err) {
			t.Errorf("Stream(%q) gives unexpected error %v", test.input, err)
		}
	}
}

func TestReadHeader(t *testing.T) {
	hdr, err := ReadHeader(strings.NewReader(testHeader + "not a record\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(hdr.SQ) != 1 {
		t.Errorf("ReadHeader()=%q", hdr.String())
	}
}

func TestAll(t *testing.T) {
	input := testHeader + testLine + "\n" + testLine + "\n"
	n := 0
	for rec, err := range All(strings.NewReader(input)) {
		if err != nil {
			t.Fatal(err)
		}
		if rec.QNAME != "read1" {
			t.Errorf("QNAME=%q", rec.QNAME)
		}
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated over %v records", n)
	}
	var lastErr error
	for _, err := range All(strings.NewReader(testHeader + "bad\n")) {
		lastErr = err
	}
	if lastErr == nil {
		t.Error("All did not yield the parse error")
	}
}

func TestParserChecks(t *testing.T) {
	const input = "r1\t0\tchr1\t1\t60\t4M\t*\t0\t0\tACGT\tII\n"
	if _, err := Records(strings.NewReader(input)); err != nil {
		t.Errorf("unchecked Records()=%v", err)
	}
	_, err := Parser{Checks: AllChecks}.Records(strings.NewReader(input))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("checked Records()=%v, want a *ValidationError", err)
	}
}

func generateSam(n int) string {
	var input strings.Builder
	input.WriteString(testHeader)
	for i := 0; i < n; i++ {
		if i%100 == 0 {
			input.WriteString("\n")
		}
		input.WriteString("read" + strconv.Itoa(i) + "\t0\tchr1\t" + strconv.Itoa(i%1000+1) +
			"\t60\t4M\t*\t0\t0\tACGT\tIIII\tNM:i:" + strconv.Itoa(i%7) + "\n")
	}
	return input.String()
}

func TestParallelRecords(t *testing.T) {
	input := generateSam(20000)
	hdr1, recs1, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	hdr2, recs2, err := ParallelRecords(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if !hdr1.Equal(hdr2) {
		t.Error("headers differ")
	}
	if len(recs1) != len(recs2) {
		t.Fatalf("%v serial records, %v parallel records", len(recs1), len(recs2))
	}
	for i := range recs1 {
		if !recs1[i].Equal(recs2[i]) || recs1[i].Line != recs2[i].Line {
			t.Fatalf("record %v differs: %v (line %v) vs %v (line %v)", i, recs1[i], recs1[i].Line, recs2[i], recs2[i].Line)
		}
	}

	for _, input := range []string{
		"@HD\tVN:1.6\n \n@SQ\tSN:chr1\tLN:1000\n\t\n" + testLine + "\n",
		"\n\r\n@HD\tVN:1.6\n" + testLine,
		"@HD\tVN:1.6\n  \n",
	} {
		hdr1, recs1, err1 := Read(strings.NewReader(input))
		hdr2, recs2, err2 := ParallelRecords(strings.NewReader(input))
		if err1 != nil || err2 != nil {
			t.Errorf("%q: serial error %v, parallel error %v", input, err1, err2)
			continue
		}
		if !hdr1.Equal(hdr2) || len(recs1) != len(recs2) {
			t.Errorf("%q: serial %v records, parallel %v records", input, len(recs1), len(recs2))
			continue
		}
		for i := range recs1 {
			if !recs1[i].Equal(recs2[i]) || recs1[i].Line != recs2[i].Line {
				t.Errorf("%q: record %v differs", input, i)
			}
		}
	}

	for _, input := range []string{
		"@SQ\tSN:chr1\tLN:10\n\n" + testLine + "\n",
		"@SQ\tSN:chr1\tLN:10\n \n",
	} {
		_, _, err1 := Read(strings.NewReader(input))
		_, _, err2 := ParallelRecords(strings.NewReader(input))
		if lineError(t, err1).Line != lineError(t, err2).Line || !errors.Is(err2, ErrMissingHeaderLine) {
			t.Errorf("%q: serial error %v, parallel error %v", input, err1, err2)
		}
	}

	lines := strings.Split(input, "\n")
	lines[12345] = "broken"
	lines[17000] = "broken"
	_, _, err = ParallelRecords(strings.NewReader(strings.Join(lines, "\n")))
	if lerr := lineError(t, err); lerr.Line != 12346 {
		t.Errorf("first error reported at line %v, want 12346", lerr.Line)
	}
}

func TestFiles(t *testing.T) {
	hdr, recs, err := Read(strings.NewReader(testHeader + testLine + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"test.sam", "test.sam.gz", "test.sam.zst"} {
		path := filepath.Join(t.TempDir(), name)
		if err := WriteFile(path, hdr, recs); err != nil {
			t.Fatalf("WriteFile(%v): %v", name, err)
		}
		got, err := RecordsFromFile(path)
		if err != nil {
			t.Fatalf("RecordsFromFile(%v): %v", name, err)
		}
		if len(got) != 1 || !got[0].Equal(recs[0]) {
			t.Errorf("%v: read back %v", name, got)
		}
		gotHdr, err := HeaderFromFile(path)
		if err != nil || !gotHdr.Equal(hdr) {
			t.Errorf("%v: HeaderFromFile()=%v, %v", name, gotHdr, err)
		}
	}
}

func TestStreamCigarCacheBounded(t *testing.T) {
	var input strings.Builder
	input.WriteString(testHeader)
	for i := 0; i < 2*maxCigarCacheEntries; i++ {
		input.WriteString("r" + strconv.Itoa(i) + "\t0\tchr1\t1\t60\t" + strconv.Itoa(i+1) + "M1S\t*\t0\t0\t*\t*\n")
	}
	n := 0
	err := Parser{Checks: CheckCigar}.Stream(strings.NewReader(input.String()), ListenerFuncs{Record: func(rec *Record) bool {
		if end, err := rec.End(); err != nil || int(end) != n+1 {
			t.Errorf("End()=%v, %v for CIGAR %v", end, err, rec.CIGAR)
		}
		n++
		return true
	}})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2*maxCigarCacheEntries {
		t.Errorf("%v records, want %v", n, 2*maxCigarCacheEntries)
	}
	cigarSliceCacheMutex.RLock()
	size := len(cigarSliceCache)
	cigarSliceCacheMutex.RUnlock()
	if size > maxCigarCacheEntries {
		t.Errorf("CIGAR cache holds %v entries, limit is %v", size, maxCigarCacheEntries)
	}
}
