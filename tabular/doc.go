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

// Package tabular implements the line-oriented tokenizer shared by
// the SAM, PAF and GAF parsers: a line reader that tracks 1-based
// line numbers, splitting of lines into tab-separated tokens, parsing
// of mandatory fields with the * sentinel, parsing of the optional
// TAG:TYPE:VALUE tail, and drivers that feed lines to a parser either
// one at a time or in parallel batches.
//
// Every parse error reported by the drivers is a *LineError that
// carries the number of the offending line and wraps a *RecordError,
// a *fields.Error, or an error of the calling format package.
package tabular
