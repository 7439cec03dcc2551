package mvnver

import "strconv"

// artifactSection tracks which field of an artifact version is being
// consumed by the decomposition scan.
type artifactSection int

const (
	sectionMajor artifactSection = iota
	sectionMinor
	sectionIncremental
	sectionBuildOrQualifier
	sectionDottedQualifier
)

// ArtifactVersion breaks a version into the conventional major, minor,
// incremental, build and qualifier fields. The first three are separated
// by dots; whatever follows a dash becomes the build number if it is a
// plain integer, or the qualifier otherwise, never both. Version strings
// that don't fit this shape are dumped wholesale into the qualifier,
// leaving the numeric fields at zero.
//
// The decomposed fields are informational only. Comparison and equality
// always go through an embedded Version built from the full source
// string, so two artifact versions order exactly like their Version
// counterparts even when their fields decompose differently.
type ArtifactVersion struct {
	major        uint32
	minor        uint32
	incremental  uint32
	build        uint32
	qualifier    string
	hasQualifier bool
	comparable   Version
}

// ParseArtifactVersion parses a string into its artifact fields. Like
// ParseVersion it accepts any input: the empty string parses with all
// numeric fields zero and an empty qualifier, and anything unparseable
// lands in the qualifier.
func ParseArtifactVersion(source string) ArtifactVersion {
	parsed := ArtifactVersion{comparable: ParseVersion(source)}

	fallback := func() ArtifactVersion {
		return ArtifactVersion{
			qualifier:    source,
			hasQualifier: true,
			comparable:   parsed.comparable,
		}
	}

	// Build numbers are capped at the signed 32 bit range: anything
	// wider falls through to the qualifier. Maven behaves this way,
	// overflow wrapping included, and consumers depend on matching its
	// field extraction bit for bit.
	parseNumber := func(text string) (uint32, bool) {
		number, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return 0, false
		}
		return uint32(int32(number)), true
	}

	var (
		section = sectionMajor
		start   int
		last    byte
	)

	for i := 0; i < len(source); i++ {
		c := source[i]

		// Boundary shapes refused outright: a leading dot, a dash right
		// after a dot, and doubled dots outside the qualifier sections.
		if (i == 0 && c == '.') ||
			(c == '-' && last == '.') ||
			(c == '.' && last == '.' &&
				section != sectionBuildOrQualifier && section != sectionDottedQualifier) {
			return fallback()
		}

		switch {
		case section == sectionMajor && c == '.':
			if source[start] == '0' {
				return fallback()
			}
			number, ok := parseNumber(source[start:i])
			if !ok {
				return fallback()
			}
			parsed.major = number
			section = sectionMinor
			start = i + 1

		case section == sectionMinor && c == '.':
			number, ok := parseNumber(source[start:i])
			if !ok {
				return fallback()
			}
			parsed.minor = number
			section = sectionIncremental
			start = i + 1

		case section == sectionIncremental && c == '.':
			number, ok := parseNumber(source[start:i])
			if !ok {
				return fallback()
			}
			parsed.incremental = number
			section = sectionDottedQualifier
			start = i + 1

		case section == sectionMajor && c == '-',
			section == sectionMinor && c == '-',
			section == sectionIncremental && c == '-':
			if section == sectionMajor && source[start] == '0' {
				return fallback()
			}
			number, ok := parseNumber(source[start:i])
			if !ok {
				return fallback()
			}
			switch section {
			case sectionMajor:
				parsed.major = number
			case sectionMinor:
				parsed.minor = number
			case sectionIncremental:
				parsed.incremental = number
			}
			section = sectionBuildOrQualifier
			start = i + 1

		case section == sectionDottedQualifier && c == '-':
			return fallback()
		}

		last = c
	}

	trailing := source[start:]

	switch section {
	case sectionMajor:
		if start < len(source) && source[start] == '0' {
			return fallback()
		}
		number, ok := parseNumber(trailing)
		if !ok {
			return fallback()
		}
		parsed.major = number

	case sectionMinor:
		number, ok := parseNumber(trailing)
		if !ok {
			return fallback()
		}
		parsed.minor = number

	case sectionIncremental:
		number, ok := parseNumber(trailing)
		if !ok {
			return fallback()
		}
		parsed.incremental = number

	case sectionBuildOrQualifier:
		if len(trailing) > 0 && trailing[0] == '0' {
			parsed.qualifier = trailing
			parsed.hasQualifier = true
		} else if number, ok := parseNumber(trailing); ok {
			parsed.build = number
		} else {
			parsed.qualifier = trailing
			parsed.hasQualifier = true
		}

	case sectionDottedQualifier:
		// a purely numeric fourth dotted component is not a qualifier,
		// so the whole string stops making sense as major.minor.incremental
		if allDigits(trailing) {
			return fallback()
		}
		parsed.qualifier = trailing
		parsed.hasQualifier = true
	}

	return parsed
}

func allDigits(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// Major returns the major version, or 0 if not specified
func (version ArtifactVersion) Major() uint32 {
	return version.major
}

// Minor returns the minor version, or 0 if not specified
func (version ArtifactVersion) Minor() uint32 {
	return version.minor
}

// Incremental returns the incremental version, or 0 if not specified
func (version ArtifactVersion) Incremental() uint32 {
	return version.incremental
}

// Build returns the build number, or 0 if not specified. A version with
// a nonzero build number never has a qualifier.
func (version ArtifactVersion) Build() uint32 {
	return version.build
}

// Qualifier returns the qualifier and whether one was specified. A
// version with a qualifier always has a zero build number.
func (version ArtifactVersion) Qualifier() (string, bool) {
	return version.qualifier, version.hasQualifier
}

// Comparable returns the comparison engine's view of this version
func (version ArtifactVersion) Comparable() Version {
	return version.comparable
}

// String returns the source string the version was parsed from
func (version ArtifactVersion) String() string {
	return version.comparable.source
}

// Compare orders two artifact versions by delegating to their embedded
// comparable versions. The decomposed fields play no part in ordering.
func (version ArtifactVersion) Compare(other ArtifactVersion) int {
	return version.comparable.Compare(other.comparable)
}

// Equal reports whether two artifact versions compare the same
func (version ArtifactVersion) Equal(other ArtifactVersion) bool {
	return version.comparable.Equal(other.comparable)
}

// LessThan reports whether version sorts before other
func (version ArtifactVersion) LessThan(other ArtifactVersion) bool {
	return version.comparable.LessThan(other.comparable)
}

// MarshalYAML stores this version as its source string
func (version ArtifactVersion) MarshalYAML() (interface{}, error) {
	return version.comparable.source, nil
}

// UnmarshalYAML allows an artifact version to be parsed directly in a
// yaml structure
func (version *ArtifactVersion) UnmarshalYAML(unmarshal func(interface{}) error) error {

	var source string
	err := unmarshal(&source)
	if err != nil {
		return err
	}
	*version = ParseArtifactVersion(source)
	return nil

}
