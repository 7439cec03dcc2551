package mvnver

import "strings"

// Version specifies a package version number with maven's comparison
// semantics.
//
// A version is a sequence of segments separated by dashes or by the
// boundary between a digit and a letter, and each segment is a
// dot-separated run of numbers and words. Parsing is case-insensitive and
// trailing zeroes are insignificant, so "1", "1.0" and "1.0-0" all
// compare equal. A few words are recognized as release qualifiers with a
// fixed precedence, lowest first:
//
//	alpha (or "a" directly before a number)
//	beta (or "b" directly before a number)
//	milestone (or "m" directly before a number)
//	rc (or "cr")
//	snapshot
//	sp
//
// Everything up to snapshot ranks below the unqualified release and "sp"
// ranks above it. "ga", "final" and "release" mean the same as no
// qualifier at all, and unrecognized words rank last, ordered lexically.
//
// Parsing never fails: every string, including the empty one, produces a
// usable version. Callers should trim whitespace first, since whitespace
// is treated like any other text.
type Version struct {
	source   string
	segments []segment
}

// ParseVersion parses a string as a version specifier
func ParseVersion(source string) Version {
	lower := strings.ToLower(source)

	var (
		segments []segment
		current  []item
		isDigit  bool
		start    int
	)

	// Only ASCII digits count as numbers here. Scanning byte-wise means
	// multi-byte characters pass through as ordinary text, which is all
	// they can be anyway.
	for i := 0; i < len(lower); i++ {
		c := lower[i]

		if c == '.' || c == '-' {
			if i == start {
				// nothing between two delimiters counts as a zero
				current = append(current, item{kind: intItem})
			} else {
				current = append(current, parseItem(lower[start:i], isDigit, false))
			}
			start = i + 1

			if c == '-' {
				segments = append(segments, newSegment(current))
				current = nil
			}
			continue
		}

		willBeDigit := c >= '0' && c <= '9'

		if i > start && willBeDigit != isDigit {
			// a digit/letter boundary closes both the item and the segment
			current = append(current, parseItem(lower[start:i], isDigit, willBeDigit))
			start = i

			segments = append(segments, newSegment(current))
			current = nil
		}

		isDigit = willBeDigit
	}

	if len(lower) > start {
		current = append(current, parseItem(lower[start:], isDigit, false))
	}
	segments = append(segments, newSegment(current))

	for len(segments) > 0 && segments[len(segments)-1].isNull() {
		segments = segments[:len(segments)-1]
	}
	if len(segments) > 0 {
		segments[len(segments)-1].lastSegment = true
	}

	return Version{source: source, segments: segments}
}

// String returns the source string the version was parsed from
func (version Version) String() string {
	return version.source
}

// Canonical returns the normalized rendering of the version: lowercased,
// all segment separators turned into dashes, shorthand qualifiers
// expanded and trailing zeroes stripped. For example the canonical form
// of "1.0A1" is "1-alpha-1". The canonical form generally differs from
// the source string, but re-parsing it yields an equal version and the
// same canonical form.
func (version Version) Canonical() string {
	rendered := make([]string, len(version.segments))
	for i, seg := range version.segments {
		rendered[i] = seg.String()
	}
	return strings.Join(rendered, "-")
}

// Compare orders two versions, returning -1, 0 or 1 as version sorts
// before, the same as, or after other. When one version runs out of
// segments first, each leftover segment on the longer side is judged
// against nothing at all, so "1-sp" sorts after "1" while "1-snapshot"
// sorts before it.
func (version Version) Compare(other Version) int {
	for i := 0; i < len(version.segments) || i < len(other.segments); i++ {
		var order int
		switch {
		case i >= len(other.segments):
			order = version.segments[i].betterThanNothing()
		case i >= len(version.segments):
			order = -other.segments[i].betterThanNothing()
		default:
			order = version.segments[i].compare(other.segments[i])
		}
		if order != 0 {
			return order
		}
	}
	return 0
}

// Equal reports whether two versions compare the same, which is weaker
// than their sources matching: "1" and "1.0" are equal.
func (version Version) Equal(other Version) bool {
	return version.Compare(other) == 0
}

// LessThan reports whether version sorts before other
func (version Version) LessThan(other Version) bool {
	return version.Compare(other) < 0
}

// MarshalYAML stores this version as its source string
func (version Version) MarshalYAML() (interface{}, error) {
	return version.source, nil
}

// UnmarshalYAML allows a version to be parsed directly in a yaml structure
func (version *Version) UnmarshalYAML(unmarshal func(interface{}) error) error {

	var source string
	err := unmarshal(&source)
	if err != nil {
		return err
	}
	*version = ParseVersion(source)
	return nil

}
