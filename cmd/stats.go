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

package cmd

import (
	"fmt"
	"io"

	"github.com/exascience/alnformats/gaf"
	"github.com/exascience/alnformats/paf"
	"github.com/exascience/alnformats/sam"
	"github.com/exascience/alnformats/tabular"
)

type statEntry struct {
	name  string
	value interface{}
}

func printStats(out io.Writer, entries []statEntry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintf(out, "%v\t%v\n", entry.name, entry.value); err != nil {
			return err
		}
	}
	return nil
}

func samStats(in io.Reader, out io.Writer, checks sam.Checks) error {
	var hdr *sam.Header
	var records, unmapped, secondary, supplementary, duplicates, qcFailed int
	if err := (sam.Parser{Checks: checks}).Stream(in, sam.ListenerFuncs{
		Header: func(h *sam.Header) bool {
			hdr = h
			return true
		},
		Record: func(rec *sam.Record) bool {
			records++
			switch {
			case rec.IsUnmapped():
				unmapped++
			case rec.IsSecondary():
				secondary++
			case rec.IsSupplementary():
				supplementary++
			}
			if rec.IsDuplicate() {
				duplicates++
			}
			if rec.IsQCFailed() {
				qcFailed++
			}
			return true
		},
	}); err != nil {
		return err
	}
	return printStats(out, []statEntry{
		{"@SQ", len(hdr.SQ)},
		{"@RG", len(hdr.RG)},
		{"@PG", len(hdr.PG)},
		{"@CO", len(hdr.CO)},
		{"records", records},
		{"mapped", records - unmapped},
		{"unmapped", unmapped},
		{"secondary", secondary},
		{"supplementary", supplementary},
		{"duplicates", duplicates},
		{"qc-failed", qcFailed},
	})
}

type pairwiseStats struct {
	records, forward, reverse, unknown int
	matches, blockLength              int64
}

func (s *pairwiseStats) add(strand tabular.Strand, matches, blockLength int64) {
	s.records++
	switch strand {
	case tabular.Forward:
		s.forward++
	case tabular.Reverse:
		s.reverse++
	default:
		s.unknown++
	}
	s.matches += matches
	s.blockLength += blockLength
}

func (s *pairwiseStats) print(out io.Writer) error {
	identity := 0.0
	if s.blockLength > 0 {
		identity = float64(s.matches) / float64(s.blockLength)
	}
	return printStats(out, []statEntry{
		{"records", s.records},
		{"forward", s.forward},
		{"reverse", s.reverse},
		{"unknown-strand", s.unknown},
		{"matches", s.matches},
		{"block-length", s.blockLength},
		{"identity", fmt.Sprintf("%.4f", identity)},
	})
}

func pafStats(in io.Reader, out io.Writer, checks paf.Checks) error {
	var s pairwiseStats
	if err := (paf.Parser{Checks: checks}).Stream(in, paf.ListenerFunc(func(rec *paf.Record) bool {
		s.add(rec.Strand, rec.Matches, rec.BlockLength)
		return true
	})); err != nil {
		return err
	}
	return s.print(out)
}

func gafStats(in io.Reader, out io.Writer, checks gaf.Checks) error {
	var s pairwiseStats
	if err := (gaf.Parser{Checks: checks}).Stream(in, gaf.ListenerFunc(func(rec *gaf.Record) bool {
		s.add(rec.Strand, rec.Matches, rec.BlockLength)
		return true
	})); err != nil {
		return err
	}
	return s.print(out)
}

// stats prints summary counts for the records of in.
func stats(in io.Reader, out io.Writer, format string, config *Config) error {
	switch format {
	case formatSam:
		checks, err := config.samChecks()
		if err != nil {
			return err
		}
		return samStats(in, out, checks)
	case formatPaf:
		checks, err := config.pafChecks()
		if err != nil {
			return err
		}
		return pafStats(in, out, checks)
	case formatGaf:
		checks, err := config.gafChecks()
		if err != nil {
			return err
		}
		return gafStats(in, out, checks)
	default:
		return fmt.Errorf("invalid format %v", format)
	}
}

// validate parses all of in with all record checks enabled, and
// returns the number of records.
func validate(in io.Reader, format string) (n int, err error) {
	switch format {
	case formatSam:
		err = sam.Parser{Checks: sam.AllChecks}.Stream(in, sam.ListenerFuncs{Record: func(*sam.Record) bool {
			n++
			return true
		}})
	case formatPaf:
		err = paf.Parser{Checks: paf.AllChecks}.Stream(in, paf.ListenerFunc(func(*paf.Record) bool {
			n++
			return true
		}))
	case formatGaf:
		err = gaf.Parser{Checks: gaf.AllChecks}.Stream(in, gaf.ListenerFunc(func(*gaf.Record) bool {
			n++
			return true
		}))
	default:
		err = fmt.Errorf("invalid format %v", format)
	}
	return n, err
}
