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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/exascience/alnformats/gaf"
	"github.com/exascience/alnformats/intervals"
	"github.com/exascience/alnformats/paf"
	"github.com/exascience/alnformats/sam"
	"github.com/exascience/alnformats/utils"
)

// Sort orders accepted by view --sort.
const (
	sortCoordinate = "coordinate"
	sortQueryName  = "queryname"
)

var errSortUnsupported = errors.New("sorting is only supported for SAM files")

type viewOptions struct {
	format     string
	sortOrder  string
	headerOnly bool
	parallel   bool
	regions    intervals.Set
	config     *Config
}

// samInRegions reports whether a SAM record overlaps with the
// regions. Unplaced records never overlap.
func samInRegions(regions intervals.Set, rec *sam.Record) bool {
	if regions == nil {
		return true
	}
	if rec.RNAME == "" || rec.POS < 1 {
		return false
	}
	end, err := rec.End()
	if err != nil || end < rec.POS {
		end = rec.POS
	}
	return regions.Overlap(rec.RNAME, int64(rec.POS)-1, int64(end))
}

// filterRecords keeps the records for which keep returns true, in
// place.
func filterRecords[T any](recs []T, keep func(T) bool) []T {
	n := 0
	for _, rec := range recs {
		if keep(rec) {
			recs[n] = rec
			n++
		}
	}
	return recs[:n]
}

// addProgramLine appends a @PG line for this program to the header,
// chained to the last existing @PG line. If the configured ID is
// already taken, a UUID is appended to keep IDs unique.
func addProgramLine(hdr *sam.Header, config *Config) (*sam.Header, error) {
	if config.Program.Disable {
		return hdr, nil
	}
	id := config.Program.ID
	for _, pg := range hdr.PG {
		if pg.ID() == id {
			id = config.Program.ID + "-" + uuid.NewString()
			break
		}
	}
	entries := utils.StringMap{
		{Key: "ID", Value: id},
		{Key: "PN", Value: config.Program.Name},
		{Key: "VN", Value: utils.ProgramVersion},
		{Key: "CL", Value: strings.Join(os.Args, " ")},
	}
	if n := len(hdr.PG); n > 0 {
		entries.Set("PP", hdr.PG[n-1].ID())
	}
	pg, err := sam.NewProgramHeaderLine(entries)
	if err != nil {
		return nil, err
	}
	b := hdr.ToBuilder().WithProgramHeaderLines(pg)
	if hdr.HD == nil {
		hd, err := sam.NewFileHeaderLine(utils.StringMap{{Key: "VN", Value: sam.FileFormatVersion}})
		if err != nil {
			return nil, err
		}
		b.WithHeaderLine(hd)
	}
	return b.Build()
}

func viewSam(in io.Reader, out io.Writer, opts viewOptions) error {
	checks, err := opts.config.samChecks()
	if err != nil {
		return err
	}
	p := sam.Parser{Checks: checks}
	if opts.headerOnly {
		hdr, err := p.ReadHeader(in)
		if err != nil {
			return err
		}
		if hdr, err = addProgramLine(hdr, opts.config); err != nil {
			return err
		}
		return sam.Write(out, hdr, nil)
	}
	if opts.sortOrder == "" && !opts.parallel {
		w := sam.NewWriter(out)
		var werr error
		err := p.Stream(in, sam.ListenerFuncs{
			Header: func(hdr *sam.Header) bool {
				if hdr, werr = addProgramLine(hdr, opts.config); werr == nil {
					werr = w.WriteHeader(hdr)
				}
				return werr == nil
			},
			Record: func(rec *sam.Record) bool {
				if !samInRegions(opts.regions, rec) {
					return true
				}
				werr = w.Write(rec)
				return werr == nil
			},
		})
		if err != nil {
			return err
		}
		if werr != nil {
			return werr
		}
		return w.Flush()
	}
	var (
		hdr  *sam.Header
		recs []*sam.Record
	)
	if opts.parallel {
		hdr, recs, err = p.ParallelRecords(in)
	} else {
		hdr, recs, err = p.Read(in)
	}
	if err != nil {
		return err
	}
	if opts.regions != nil {
		recs = filterRecords(recs, func(rec *sam.Record) bool {
			return samInRegions(opts.regions, rec)
		})
	}
	switch opts.sortOrder {
	case "":
	case sortCoordinate:
		hdr, err = sam.SortByCoordinate(hdr, recs)
	case sortQueryName:
		hdr, err = sam.SortByQueryName(hdr, recs)
	default:
		err = fmt.Errorf("invalid sort order %v", opts.sortOrder)
	}
	if err != nil {
		return err
	}
	if hdr, err = addProgramLine(hdr, opts.config); err != nil {
		return err
	}
	return sam.Write(out, hdr, recs)
}

func viewPaf(in io.Reader, out io.Writer, opts viewOptions) error {
	checks, err := opts.config.pafChecks()
	if err != nil {
		return err
	}
	p := paf.Parser{Checks: checks}
	keep := func(rec *paf.Record) bool {
		return opts.regions == nil || opts.regions.Overlap(rec.TargetName, rec.TargetStart, rec.TargetEnd)
	}
	if opts.parallel {
		recs, err := p.ParallelRecords(in)
		if err != nil {
			return err
		}
		return paf.Write(out, filterRecords(recs, keep))
	}
	w := paf.NewWriter(out)
	var werr error
	if err := p.Stream(in, paf.ListenerFunc(func(rec *paf.Record) bool {
		if !keep(rec) {
			return true
		}
		werr = w.Write(rec)
		return werr == nil
	})); err != nil {
		return err
	}
	if werr != nil {
		return werr
	}
	return w.Flush()
}

func viewGaf(in io.Reader, out io.Writer, opts viewOptions) error {
	checks, err := opts.config.gafChecks()
	if err != nil {
		return err
	}
	p := gaf.Parser{Checks: checks}
	keep := func(rec *gaf.Record) bool {
		return opts.regions == nil || opts.regions.Overlap(rec.PathName, rec.PathStart, rec.PathEnd)
	}
	if opts.parallel {
		recs, err := p.ParallelRecords(in)
		if err != nil {
			return err
		}
		return gaf.Write(out, filterRecords(recs, keep))
	}
	w := gaf.NewWriter(out)
	var werr error
	if err := p.Stream(in, gaf.ListenerFunc(func(rec *gaf.Record) bool {
		if !keep(rec) {
			return true
		}
		werr = w.Write(rec)
		return werr == nil
	})); err != nil {
		return err
	}
	if werr != nil {
		return werr
	}
	return w.Flush()
}

// view copies records from in to out in canonical form.
func view(in io.Reader, out io.Writer, opts viewOptions) error {
	if opts.format != formatSam && opts.sortOrder != "" {
		return errSortUnsupported
	}
	switch opts.format {
	case formatSam:
		return viewSam(in, out, opts)
	case formatPaf:
		if opts.headerOnly {
			return nil
		}
		return viewPaf(in, out, opts)
	case formatGaf:
		if opts.headerOnly {
			return nil
		}
		return viewGaf(in, out, opts)
	default:
		return fmt.Errorf("invalid format %v", opts.format)
	}
}
