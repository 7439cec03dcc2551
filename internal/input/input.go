package input

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/shlex"
)

// ReadVersions reads version strings from r, one or more per line. Lines
// are split shell-style, so a quoted version may contain spaces, and
// blank lines are skipped. Any token at all is a usable version since the
// parser accepts arbitrary text.
func ReadVersions(r io.Reader) ([]string, error) {

	var versions []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields, err := shlex.Split(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("failed to split version list: %w", err)
		}
		versions = append(versions, fields...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read version list: %w", err)
	}
	return versions, nil

}
