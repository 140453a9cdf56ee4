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
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/exascience/alnformats/internal"
	"github.com/exascience/alnformats/utils"
)

// ProgramMessage is the first line printed when the alnformats binary
// is called.
var ProgramMessage = fmt.Sprint(
	utils.ProgramName, " version ", utils.ProgramVersion,
	" compiled with ", runtime.Version(), " - see ", utils.ProgramURL, " for more information.",
)

// The supported record formats.
const (
	formatSam = "sam"
	formatPaf = "paf"
	formatGaf = "gaf"
)

// detectFormat returns the record format of a file. An explicit
// format takes precedence over the file extension, which takes
// precedence over the configured default.
func detectFormat(explicit, filename, fallback string) (string, error) {
	format := strings.ToLower(explicit)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(internal.TrimCompressionExt(filename))), ".")
	}
	switch format {
	case formatSam, formatPaf, formatGaf:
		return format, nil
	}
	if explicit == "" && fallback != "" {
		return detectFormat(fallback, "", "")
	}
	if explicit != "" {
		return "", fmt.Errorf("invalid format %v", explicit)
	}
	return "", fmt.Errorf("cannot determine the format of %v, use --format", filename)
}

func checkExist(filename string) error {
	if filename == "" {
		return fmt.Errorf("missing input filename")
	}
	if filename == "/dev/stdin" {
		return nil
	}
	if _, err := os.Stat(filename); err != nil {
		switch {
		case os.IsNotExist(err):
			return fmt.Errorf("file %v does not exist", filename)
		case os.IsPermission(err):
			return fmt.Errorf("no permission to read file %v", filename)
		default:
			return fmt.Errorf("error %w when trying to access file %v", err, filename)
		}
	}
	return nil
}

func createLogFilename() string {
	t := time.Now()
	zone, _ := t.Zone()
	return fmt.Sprintf("logs/alnformats/alnformats-%d-%02d-%02d-%02d-%02d-%02d-%09d-%v.log", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), zone)
}

// setLogOutput duplicates everything written to stderr, including the
// standard logger, into a fresh log file below path.
func setLogOutput(path string) error {
	logPath := createLogFilename()
	var fullPath string
	if path == "" {
		fullPath = filepath.Join(os.Getenv("HOME"), logPath)
	} else {
		fullPath = filepath.Join(path, logPath)
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0700); err != nil {
		return err
	}
	f, err := os.Create(fullPath)
	if err != nil {
		return err
	}
	fmt.Fprintln(f, ProgramMessage)

	orgStderr, err := unix.Dup(2)
	if err != nil {
		return err
	}
	ferr := os.NewFile(uintptr(orgStderr), "/dev/stderr")
	if err := unix.Dup2(int(f.Fd()), 2); err != nil {
		return err
	}

	multi := io.MultiWriter(f, ferr)

	log.SetOutput(multi)
	log.Println("Created log file at", fullPath)
	log.Println("Command line:", os.Args)
	return nil
}

func timedRun(timed bool, profile, msg string, f func() error) error {
	if profile != "" {
		file, err := os.Create(profile)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}
	if timed {
		log.Println(msg)
		start := time.Now()
		defer func() {
			log.Println("Elapsed time: ", time.Since(start))
		}()
	}
	return f()
}
