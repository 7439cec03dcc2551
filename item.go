package mvnver

import (
	"math/big"
	"strconv"
	"strings"
)

const (
	// the widest digit run that safely fits the bounded integer kind
	maxIntDigits = 9

	// rank given to qualifiers not in the well-known table
	unknownRank = 7
)

type itemKind int

const (
	intItem itemKind = iota
	bigIntItem
	stringItem
)

// item is a single token of a version string, for example "1" or "foo".
// Exactly one of the value fields is meaningful, selected by kind. Digit
// runs longer than maxIntDigits become bigIntItem rather than overflowing.
type item struct {
	kind itemKind
	num  uint32
	big  *big.Int
	str  string
}

// parseItem builds an item from an already-lowercased token. isDigit is
// whether the token is a digit run, followedByDigit is whether the next
// item in the version string starts with a digit, which decides how the
// single-letter qualifiers are expanded.
func parseItem(token string, isDigit, followedByDigit bool) item {
	// strip leading zeroes so a padded run doesn't become a small big int
	token = strings.TrimLeft(token, "0")

	if isDigit && len(token) <= maxIntDigits {
		// parsing fails only when the whole token was zeroes
		num, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			num = 0
		}
		return item{kind: intItem, num: uint32(num)}
	}
	if isDigit {
		value := new(big.Int)
		value.SetString(token, 10)
		return item{kind: bigIntItem, big: value}
	}
	return item{kind: stringItem, str: expandAlias(token, followedByDigit)}
}

// expandAlias substitutes the shorthand qualifier spellings: "a", "b" and
// "m" directly before a number mean alpha, beta and milestone, "cr" means
// "rc", and "ga", "final" and "release" mean no qualifier at all.
func expandAlias(token string, followedByDigit bool) string {
	if followedByDigit {
		switch token {
		case "a":
			return "alpha"
		case "b":
			return "beta"
		case "m":
			return "milestone"
		}
	}
	switch token {
	case "ga", "final", "release":
		return ""
	case "cr":
		return "rc"
	}
	return token
}

// isNull reports whether this item means the same as no item at all
func (it item) isNull() bool {
	switch it.kind {
	case intItem:
		return it.num == 0
	case stringItem:
		return it.str == ""
	}
	return false
}

// qualifierRank positions a qualifier relative to the unqualified release,
// which sits at rank 5 as the empty string.
func qualifierRank(qualifier string) int {
	switch qualifier {
	case "alpha":
		return 0
	case "beta":
		return 1
	case "milestone":
		return 2
	case "rc":
		return 3
	case "snapshot":
		return 4
	case "":
		return 5
	case "sp":
		return 6
	}
	return unknownRank
}

// compare orders two items. Same kinds compare by value, with unknown
// qualifiers falling back to lexical order. A string always sorts below
// any integer, and a bounded integer below a big one, since big integers
// only exist for digit runs too wide to bound.
func (it item) compare(other item) int {
	switch {
	case it.kind == intItem && other.kind == intItem:
		return compareOrder(it.num, other.num)
	case it.kind == bigIntItem && other.kind == bigIntItem:
		return it.big.Cmp(other.big)
	case it.kind == stringItem && other.kind == stringItem:
		left, right := qualifierRank(it.str), qualifierRank(other.str)
		if left == unknownRank && right == unknownRank {
			return strings.Compare(it.str, other.str)
		}
		return compareOrder(uint32(left), uint32(right))
	case it.kind == stringItem:
		return -1
	case other.kind == stringItem:
		return 1
	case it.kind == intItem:
		return -1
	default:
		return 1
	}
}

// betterThanNothing is where this item stands against no item at all,
// used when the other version has run out of tokens. moreSegments is
// whether the other version still has segments beyond the point being
// compared, which flips how every non-integer item is judged.
func (it item) betterThanNothing(moreSegments bool) int {
	switch it.kind {
	case intItem:
		if it.num == 0 && !moreSegments {
			return 0
		}
		return 1
	case bigIntItem:
		return 1
	}
	if moreSegments {
		return -1
	}
	switch it.str {
	case "alpha", "beta", "milestone", "rc", "snapshot":
		return -1
	case "":
		return 0
	}
	return 1
}

func (it item) String() string {
	switch it.kind {
	case intItem:
		return strconv.FormatUint(uint64(it.num), 10)
	case bigIntItem:
		return it.big.String()
	}
	return it.str
}

func compareOrder(left, right uint32) int {
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	}
	return 0
}
