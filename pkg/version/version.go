// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion = errors.New("version string is empty")
	ErrNoSegments   = errors.New("version has no comparable segments")
)

// Segment is one separator-delimited component of a version string.
// A segment is either numeric (compared by value) or textual (compared
// lexically).
type Segment struct {
	Num     int    `json:"num,omitempty" yaml:"num,omitempty"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
	Numeric bool   `json:"numeric,omitempty" yaml:"numeric,omitempty"`
}

// String returns the string form of the segment.
func (s Segment) String() string {
	if s.Numeric {
		return strconv.Itoa(s.Num)
	}
	return s.Text
}

// Version represents a version string decomposed into an ordered sequence of
// comparable segments. Unlike strict semantic versioning, any number of
// segments is allowed and non-numeric segments are ordered lexically, which
// yields a total order between any two well-formed versions.
type Version struct {
	// Raw is the original string the version was parsed from.
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`

	// Segments are the ordered comparable components.
	Segments []Segment `json:"segments,omitempty" yaml:"segments,omitempty"`
}

// Parse parses a version string into a Version.
// The string is split on runs of non-alphanumeric separators (".", "-", "_", ...);
// each resulting segment compares numerically when it parses as an integer and
// lexically otherwise. A leading "v" prefix is stripped if present.
// Returns an error if the string is empty or contains no comparable segments.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	trimmed := strings.TrimPrefix(s, "v")
	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(parts) == 0 {
		return Version{}, fmt.Errorf("%w: %q", ErrNoSegments, s)
	}

	v := Version{
		Raw:      s,
		Segments: make([]Segment, 0, len(parts)),
	}
	for _, part := range parts {
		if num, err := strconv.Atoi(part); err == nil {
			v.Segments = append(v.Segments, Segment{Num: num, Numeric: true})
			continue
		}
		v.Segments = append(v.Segments, Segment{Text: part})
	}

	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// String returns the canonical string representation of the Version,
// joining segments with dots. Separator characters from the original
// string are not preserved.
func (v Version) String() string {
	parts := make([]string, 0, len(v.Segments))
	for _, s := range v.Segments {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ".")
}

// padSegment is the implicit segment appended to the shorter version during
// comparison. It ranks equal to an explicit zero and below any other segment.
var padSegment = Segment{Num: 0, Numeric: true}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
// Segments are compared left to right. When one version has fewer segments,
// it is padded with implicit trailing zero segments of lower rank, so
// "1.2" == "1.2.0" and "2.14" < "2.14.1". When a numeric segment meets a
// textual one, the numeric segment ranks lower.
func (v Version) Compare(other Version) int {
	n := len(v.Segments)
	if len(other.Segments) > n {
		n = len(other.Segments)
	}

	for i := 0; i < n; i++ {
		a := padSegment
		if i < len(v.Segments) {
			a = v.Segments[i]
		}
		b := padSegment
		if i < len(other.Segments) {
			b = other.Segments[i]
		}

		if c := compareSegments(a, b); c != 0 {
			return c
		}
	}

	return 0
}

func compareSegments(a, b Segment) int {
	switch {
	case a.Numeric && b.Numeric:
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		default:
			return 0
		}
	case a.Numeric:
		// Numeric ranks below text when kinds differ.
		return -1
	case b.Numeric:
		return 1
	default:
		return strings.Compare(a.Text, b.Text)
	}
}

// Equals returns true if v and other compare as equal.
// Trailing zero segments are not significant: "1.2.0" equals "1.2".
func (v Version) Equals(other Version) bool {
	return v.Compare(other) == 0
}

// IsNewer returns true if v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// EqualsOrNewer returns true if v is equal to or newer than other.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}
