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
	"log"
	"slices"
	"strings"

	cli "github.com/urfave/cli/v2"

	"github.com/exascience/alnformats/internal"
	"github.com/exascience/alnformats/intervals"
	"github.com/exascience/alnformats/utils"
)

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"f"},
	Usage:   "Record format of the input: sam, paf or gaf. By default the format is derived from the file extension",
	Action: func(c *cli.Context, input string) error {
		validFormats := []string{formatSam, formatPaf, formatGaf}
		if slices.Contains(validFormats, strings.ToLower(input)) {
			return nil
		}
		return cli.Exit("Invalid format '"+input+"', must be one of: "+strings.Join(validFormats, ", "), 1)
	},
}

// commandInput opens the input file named by the first argument, or
// the standard input, and determines its record format.
func commandInput(c *cli.Context, config *Config) (input *internal.InputFile, format string, err error) {
	filename := c.Args().First()
	if filename == "" || filename == "-" {
		filename = "/dev/stdin"
	}
	if err := checkExist(filename); err != nil {
		return nil, "", err
	}
	if format, err = detectFormat(c.String("format"), filename, config.Format); err != nil {
		return nil, "", err
	}
	input, err = internal.Open(filename)
	return input, format, err
}

func closeInput(input *internal.InputFile, err *error) {
	if nerr := input.Close(); *err == nil {
		*err = nerr
	}
}

func viewAction(c *cli.Context) (err error) {
	config, err := ReadConfig(c.String("config"))
	if err != nil {
		return err
	}
	input, format, err := commandInput(c, config)
	if err != nil {
		return err
	}
	defer closeInput(input, &err)
	outputName := c.String("output")
	if outputName == "" || outputName == "-" {
		outputName = "/dev/stdout"
	}
	output, err := internal.Create(outputName)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := output.Close(); err == nil {
			err = nerr
		}
	}()
	opts := viewOptions{
		format:     format,
		sortOrder:  c.String("sort"),
		headerOnly: c.Bool("header-only"),
		parallel:   c.Bool("parallel") || config.Parallel,
		config:     config,
	}
	if regions := c.StringSlice("region"); len(regions) > 0 {
		if opts.regions, err = intervals.ParseRegions(regions); err != nil {
			return err
		}
	}
	return timedRun(c.Bool("timed"), c.String("cpu-profile"), "Viewing "+c.Args().First(), func() error {
		return view(input, output, opts)
	})
}

func validateAction(c *cli.Context) (err error) {
	config, err := ReadConfig(c.String("config"))
	if err != nil {
		return err
	}
	input, format, err := commandInput(c, config)
	if err != nil {
		return err
	}
	defer closeInput(input, &err)
	n, err := validate(input, format)
	if err != nil {
		return err
	}
	log.Printf("%v: %v valid %v records", c.Args().First(), n, format)
	return nil
}

func statsAction(c *cli.Context) (err error) {
	config, err := ReadConfig(c.String("config"))
	if err != nil {
		return err
	}
	input, format, err := commandInput(c, config)
	if err != nil {
		return err
	}
	defer closeInput(input, &err)
	return stats(input, c.App.Writer, format, config)
}

// NewApp returns the alnformats command-line application.
func NewApp() *cli.App {
	return &cli.App{
		Name:            utils.ProgramName,
		Usage:           "Parse, validate and rewrite SAM, PAF and GAF files",
		HideHelpCommand: true,
		Version:         utils.ProgramVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-path",
				Usage: "Directory in which a log file of this run is created. By default no log file is written",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration file (YAML) with default format, checks and @PG settings",
			},
			&cli.BoolFlag{
				Name:  "timed",
				Usage: "Log the elapsed time of each command",
			},
		},
		Before: func(c *cli.Context) error {
			log.Println(ProgramMessage)
			if c.IsSet("log-path") {
				return setLogOutput(c.String("log-path"))
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "view",
				Usage:     "Write the records of a file in canonical form, optionally sorted",
				ArgsUsage: "[input]",
				Flags: []cli.Flag{
					formatFlag,
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "The output file, compressed according to its extension. Defaults to stdout",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort SAM records: coordinate or queryname",
						Action: func(c *cli.Context, input string) error {
							validOrders := []string{sortCoordinate, sortQueryName}
							if slices.Contains(validOrders, input) {
								return nil
							}
							return cli.Exit("Invalid sort order '"+input+"', must be one of: "+strings.Join(validOrders, ", "), 1)
						},
					},
					&cli.BoolFlag{
						Name:  "header-only",
						Usage: "Only write the SAM header",
					},
					&cli.BoolFlag{
						Name:    "parallel",
						Aliases: []string{"p"},
						Usage:   "Parse records in parallel. The whole input is kept in memory",
					},
					&cli.StringSliceFlag{
						Name:    "region",
						Aliases: []string{"r"},
						Usage:   "Only write records overlapping with this region (NAME, NAME:START or NAME:START-END, 1-based). Can be repeated",
					},
					&cli.StringFlag{
						Name:  "cpu-profile",
						Usage: "Write a CPU profile to this file",
					},
				},
				Action: viewAction,
			},
			{
				Name:      "validate",
				Usage:     "Parse a file with all record checks and report the first error",
				ArgsUsage: "[input]",
				Flags:     []cli.Flag{formatFlag},
				Action:    validateAction,
			},
			{
				Name:      "stats",
				Usage:     "Print record counts",
				ArgsUsage: "[input]",
				Flags:     []cli.Flag{formatFlag},
				Action:    statsAction,
			},
		},
	}
}
