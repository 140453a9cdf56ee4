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

// Package gaf parses and writes GAF (Graph Alignment Format) files.
//
// GAF has the shape of PAF, except that reads are aligned to a path
// through a sequence graph instead of a linear target. The path is
// either a list of oriented segments, such as ">s1>s2<s3", or the
// name of a stable sequence. Every non-blank line is a record with
// twelve mandatory tab-separated fields, followed by optional
// TAG:TYPE:VALUE fields.
package gaf
