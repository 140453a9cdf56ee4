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

// Package fields implements the optional TAG:TYPE:VALUE fields shared
// by the SAM, PAF and GAF alignment formats.
//
// Values are decoded once, when they are put into a Fields container,
// and stored in typed form. The supported types are the SAM type
// letters A (Character), i (Integer), f (Float), Z (String), H
// (HexByteArray) and B (NumericArray), where B values additionally
// carry one of the element sub-types c, C, s, S, i, I or f.
//
// A tag may hold more than one value. Scalar puts on the same tag
// accumulate values, and puts on a numeric array tag extend the
// array. Replace discards what a tag held before.
package fields
