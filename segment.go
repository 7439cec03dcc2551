package mvnver

import "strings"

// segment is one dash-delimited (or digit/letter boundary delimited) run
// of items, for example the "1.0.0" and "alpha.2" halves of
// "1.0.0-alpha.2". Trailing null items are stripped at construction and
// segments are never mutated afterwards, other than flagging the final
// segment of a version.
type segment struct {
	items       []item
	lastSegment bool
}

func newSegment(items []item) segment {
	for len(items) > 0 && items[len(items)-1].isNull() {
		items = items[:len(items)-1]
	}
	return segment{items: items}
}

// isNull reports whether this segment means the same as no segment at all
func (seg segment) isNull() bool {
	for _, it := range seg.items {
		if !it.isNull() {
			return false
		}
	}
	return true
}

// betterThanNothing is where this segment stands against no segment at
// all, used when the other version has run out of segments.
func (seg segment) betterThanNothing() int {
	for _, it := range seg.items {
		if order := it.betterThanNothing(false); order != 0 {
			return order
		}
	}
	return 0
}

// compare orders two segments item by item. When one side runs out first,
// each leftover item on the other side is judged against nothing, where
// "nothing" counts as more or less depending on whether the exhausted
// side still has segments coming after this one.
func (seg segment) compare(other segment) int {
	for i := 0; i < len(seg.items) || i < len(other.items); i++ {
		var order int
		switch {
		case i >= len(other.items):
			order = seg.items[i].betterThanNothing(!other.lastSegment)
		case i >= len(seg.items):
			order = -other.items[i].betterThanNothing(!seg.lastSegment)
		default:
			order = seg.items[i].compare(other.items[i])
		}
		if order != 0 {
			return order
		}
	}
	return 0
}

func (seg segment) String() string {
	rendered := make([]string, len(seg.items))
	for i, it := range seg.items {
		rendered[i] = it.String()
	}
	return strings.Join(rendered, ".")
}
