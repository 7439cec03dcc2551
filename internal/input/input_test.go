package input

import (
	"strings"
	"testing"
)

func TestReadVersions(t *testing.T) {

	versions, err := ReadVersions(strings.NewReader("1.0 2.0-SNAPSHOT\n\n'3.0 beta'\n"))
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"1.0", "2.0-SNAPSHOT", "3.0 beta"}
	if len(versions) != len(expected) {
		t.Fatalf("wrong number of versions: (%d != %d)", len(versions), len(expected))
	}
	for i, version := range versions {
		if version != expected[i] {
			t.Errorf("wrong version at position %d: (%s != %s)", i, version, expected[i])
		}
	}

}

func TestReadVersionsUnbalancedQuote(t *testing.T) {

	_, err := ReadVersions(strings.NewReader("1.0 '2.0\n"))
	if err == nil {
		t.Fatal("expected error reading an unbalanced quote")
	}

}
