package collect

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"
	"unicode/utf8"
)

// ReadPayload parses a login form payload file: one field per line in
// name,value form. Lines split on the first comma only, so values may contain
// commas. Blank lines are skipped; a line without a comma becomes a field
// with an empty value (submit buttons are typically declared that way).
func ReadPayload(path string) (url.Values, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("payload %s: not a text file", path)
	}

	vals := url.Values{}
	sc := bufio.NewScanner(strings.NewReader(string(raw)))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		name, value, _ := strings.Cut(line, ",")
		vals.Set(name, value)
	}
	return vals, sc.Err()
}
