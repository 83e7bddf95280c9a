// Package version provides loose version parsing and total-order comparison.
//
// # Overview
//
// This package decomposes version strings into an ordered sequence of
// comparable segments. It is intentionally looser than semantic versioning
// (semver.org): any number of segments is allowed, segments are delimited by
// any run of non-alphanumeric characters, numeric segments compare by value,
// and non-numeric segments fall back to lexical ordering. This matches the
// shape of version strings found in arbitrary tool output ("2.14.1",
// "1.2.3b", "5.15.0-generic").
//
// # Usage
//
// Parse a version string:
//
//	v, err := version.Parse("2.14.1")
//	if err != nil {
//	    // Handle error
//	}
//
// Compare versions:
//
//	desired := version.MustParse("1.9.0")
//	installed := version.MustParse("1.10.0")
//	desired.Compare(installed) // -1: 9 < 10 numerically, not lexically
//
// # Ordering Semantics
//
//   - Segments compare left to right.
//   - Numeric segments compare numerically, textual segments lexically.
//   - When a numeric segment meets a textual one, the numeric ranks lower.
//   - A shorter version is padded with implicit trailing zero segments, so
//     "1.2" equals "1.2.0" and "2.14" is older than "2.14.1".
//
// This yields a total, deterministic order between any two parsed versions.
//
// # Not Supported
//
//   - Semver prerelease precedence ("1.2.3-alpha" ordering before "1.2.3")
//   - Build metadata exclusion ("1.2.3+build.123")
//   - Version ranges or constraints
//
// # Error Handling
//
// Parse returns specific errors for different failure modes:
//
//   - ErrEmptyVersion: input string is empty
//   - ErrNoSegments: input contains no comparable segments (e.g. "...")
//
// For constant initialization, use MustParse which panics on error:
//
//	var MinVersion = version.MustParse("1.0.0")
package version
