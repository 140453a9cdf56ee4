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

// StringMapEntry is an entry in a StringMap.
type StringMapEntry struct {
	Key, Value string
}

// A StringMap maps strings to strings. Unlike Go's built-in maps, a
// StringMap remembers the order in which keys were first added, which
// is the order of iteration. Lookups are linear, which
// is fast for the handful of entries found on header lines.
type StringMap []StringMapEntry

// Get returns the value for the given key.
//
// It returns the found value and true if the key was found, otherwise
// "" and false.
func (m StringMap) Get(key string) (string, bool) {
	for _, entry := range m {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

// Set associates the given value with the given key, keeping the
// position of the key if it already exists and appending it
// otherwise.
func (m *StringMap) Set(key, value string) {
	for index := range *m {
		if (*m)[index].Key == key {
			(*m)[index].Value = value
			return
		}
	}
	*m = append(*m, StringMapEntry{key, value})
}

// SetUniqueEntry checks if a mapping for the given key already exists
// in the StringMap. If this is the case, it returns false and the
// StringMap is not modified.  Otherwise, the given key/value pair is
// appended to the StringMap.
func (m *StringMap) SetUniqueEntry(key, value string) bool {
	if _, found := m.Get(key); found {
		return false
	}
	*m = append(*m, StringMapEntry{key, value})
	return true
}

// Delete removes the entry for the given key, if any, and reports
// whether an entry was removed.
func (m *StringMap) Delete(key string) bool {
	for index, entry := range *m {
		if entry.Key == key {
			*m = append((*m)[:index:index], (*m)[index+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a copy of the StringMap that shares no storage with
// the original.
func (m StringMap) Clone() StringMap {
	if m == nil {
		return nil
	}
	return append(StringMap(nil), m...)
}

// Equal reports whether both maps have the same entries in the same
// order.
func (m StringMap) Equal(other StringMap) bool {
	if len(m) != len(other) {
		return false
	}
	for i, entry := range m {
		if entry != other[i] {
			return false
		}
	}
	return true
}
