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

package utils

import "testing"

func TestStringMap(t *testing.T) {
	var m StringMap
	m.Set("ID", "1")
	m.Set("SM", "sample")
	m.Set("ID", "2")
	if !m.Equal(StringMap{{"ID", "2"}, {"SM", "sample"}}) {
		t.Errorf("Set gives %v", m)
	}
	if m.SetUniqueEntry("SM", "other") {
		t.Error("SetUniqueEntry replaced an existing entry")
	}
	if !m.SetUniqueEntry("LB", "lib") {
		t.Error("SetUniqueEntry rejected a new entry")
	}
	if value, ok := m.Get("LB"); !ok || value != "lib" {
		t.Errorf("Get(LB)=%v, %v", value, ok)
	}
	if _, ok := m.Get("PL"); ok {
		t.Error("Get found a missing key")
	}

	clone := m.Clone()
	if !clone.Delete("ID") || clone.Delete("ID") {
		t.Error("Delete failed")
	}
	if !clone.Equal(StringMap{{"SM", "sample"}, {"LB", "lib"}}) {
		t.Errorf("Delete gives %v", clone)
	}
	if !m.Equal(StringMap{{"ID", "2"}, {"SM", "sample"}, {"LB", "lib"}}) {
		t.Errorf("Delete on a clone modified the original: %v", m)
	}
	if StringMap(nil).Clone() != nil {
		t.Error("Clone of nil is not nil")
	}
}
