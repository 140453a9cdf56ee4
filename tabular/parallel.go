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
	"context"

	"github.com/exascience/pargo/pipeline"
)

type lineBatch struct {
	first int // line number of lines[0]
	lines []string
}

// lineSource feeds the remaining lines of a Reader into a pargo
// pipeline, remembering where each batch starts.
type lineSource struct {
	r    *Reader
	data lineBatch
}

// Err implements the method of the pipeline.Source interface.
func (src *lineSource) Err() error {
	return src.r.Err()
}

// Prepare implements the method of the pipeline.Source interface.
func (*lineSource) Prepare(_ context.Context) (size int) {
	return -1
}

// Fetch implements the method of the pipeline.Source interface.
func (src *lineSource) Fetch(size int) (fetched int) {
	batch := lineBatch{first: src.r.Line() + 1, lines: make([]string, 0, size)}
	for ; fetched < size && src.r.Next(); fetched++ {
		batch.lines = append(batch.lines, src.r.Text())
	}
	src.data = batch
	return fetched
}

// Data implements the method of the pipeline.Source interface.
func (src *lineSource) Data() interface{} {
	return src.data
}

type parsedBatch[T any] struct {
	results []T
	err     error
}

/*
ParallelCollect parses all remaining non-blank lines of r with parse
and returns the results in input order.

Batches of lines are parsed in parallel. If parsing fails, the error
for the earliest failing line is returned, wrapped in a *LineError.
The parse function must be safe for concurrent use; it receives the
absolute line number of each line.
*/
func ParallelCollect[T any](r *Reader, parse func(text string, line int) (T, error)) ([]T, error) {
	var p pipeline.Pipeline
	p.Source(&lineSource{r: r})
	p.Add(pipeline.LimitedPar(0, pipeline.Receive(func(_ int, data interface{}) interface{} {
		batch := data.(lineBatch)
		parsed := parsedBatch[T]{results: make([]T, 0, len(batch.lines))}
		for i, text := range batch.lines {
			if IsBlank(text) {
				continue
			}
			result, err := parse(text, batch.first+i)
			if err != nil {
				parsed.err = AtLine(batch.first+i, err)
				break
			}
			parsed.results = append(parsed.results, result)
		}
		return parsed
	})))
	var results []T
	p.Add(pipeline.Ord(pipeline.Receive(func(_ int, data interface{}) interface{} {
		parsed := data.(parsedBatch[T])
		if parsed.err != nil {
			p.SetErr(parsed.err)
			return nil
		}
		results = append(results, parsed.results...)
		return nil
	})))
	p.Run()
	if err := p.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
