package mvnver

import "testing"

func TestBetterThanNothing(t *testing.T) {

	cases := []struct {
		token        string
		isDigit      bool
		moreSegments bool
		expected     int
	}{
		{"0", true, false, 0},
		{"0", true, true, 1},
		{"1", true, false, 1},
		{"1", true, true, 1},
		{"10000000001", true, false, 1},
		{"10000000001", true, true, 1},

		{"alpha", false, false, -1},
		{"beta", false, false, -1},
		{"milestone", false, false, -1},
		{"rc", false, false, -1},
		{"snapshot", false, false, -1},
		{"ga", false, false, 0},
		{"sp", false, false, 1},
		{"xyz", false, false, 1},

		// any non-integer counts as less when segments follow elsewhere
		{"sp", false, true, -1},
		{"xyz", false, true, -1},
		{"ga", false, true, -1},
	}
	for _, c := range cases {
		it := parseItem(c.token, c.isDigit, false)
		if order := it.betterThanNothing(c.moreSegments); order != c.expected {
			t.Errorf("wrong order against nothing for %q (more segments: %v): (%d != %d)",
				c.token, c.moreSegments, order, c.expected)
		}
	}

}

func TestItemKinds(t *testing.T) {

	if it := parseItem("999999999", true, false); it.kind != intItem {
		t.Error("expected a nine digit run to stay bounded")
	}
	if it := parseItem("1000000000", true, false); it.kind != bigIntItem {
		t.Error("expected a ten digit run to become a big integer")
	}
	if it := parseItem("0000000001", true, false); it.kind != intItem {
		t.Error("expected leading zeroes to be stripped before sizing")
	}
	if it := parseItem("0000000000", true, false); !it.isNull() {
		t.Error("expected an all-zero run to be null")
	}

}

func TestCrossKindOrder(t *testing.T) {

	str := parseItem("xyz", false, false)
	num := parseItem("1", true, false)
	big := parseItem("10000000001", true, false)

	if str.compare(num) != -1 || num.compare(str) != 1 {
		t.Error("expected any string to sort below any integer")
	}
	if str.compare(big) != -1 || big.compare(str) != 1 {
		t.Error("expected any string to sort below any big integer")
	}
	if num.compare(big) != -1 || big.compare(num) != 1 {
		t.Error("expected a bounded integer to sort below a big integer")
	}

}

func TestUnknownQualifierOrder(t *testing.T) {

	abc := parseItem("abc", false, false)
	def := parseItem("def", false, false)
	if abc.compare(def) != -1 || def.compare(abc) != 1 {
		t.Error("expected unknown qualifiers to sort lexically")
	}

	sp := parseItem("sp", false, false)
	if sp.compare(abc) != -1 {
		t.Error("expected sp to sort below unknown qualifiers")
	}

}

func TestAliasExpansion(t *testing.T) {

	cases := []struct {
		token           string
		followedByDigit bool
		expected        string
	}{
		{"a", true, "alpha"},
		{"b", true, "beta"},
		{"m", true, "milestone"},
		{"a", false, "a"},
		{"b", false, "b"},
		{"m", false, "m"},
		{"ga", false, ""},
		{"ga", true, ""},
		{"final", false, ""},
		{"release", false, ""},
		{"cr", false, "rc"},
		{"xyz", false, "xyz"},
	}
	for _, c := range cases {
		if expanded := expandAlias(c.token, c.followedByDigit); expanded != c.expected {
			t.Errorf("wrong expansion of %q: (%s != %s)", c.token, expanded, c.expected)
		}
	}

}
