package envout

import (
	"fmt"
	"slices"
	"strings"
)

// reservedNames are environment variables never included in the output.
// Matching is exact; case variants are distinct names.
var reservedNames = []string{"DESCRIPTION", "SUMMARY"}

// Entry is one NAME=VALUE environment assignment.
type Entry struct {
	Name  string
	Value string
}

// ParseEntry splits a NAME=VALUE string on the first "=" only, so values
// containing further "=" characters survive intact. An entry with no "="
// at all is a FormatError.
func ParseEntry(s string) (Entry, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return Entry{}, &FormatError{Entry: s}
	}
	return Entry{Name: name, Value: value}, nil
}

// FormatEnv renders env as space-separated NAME="VALUE" pairs, skipping the
// reserved names and preserving input order. Values are quoted verbatim;
// embedded quote characters are not escaped.
func FormatEnv(env []string) (string, error) {
	formatted := make([]string, 0, len(env))
	for _, e := range env {
		entry, err := ParseEntry(e)
		if err != nil {
			return "", err
		}
		if slices.Contains(reservedNames, entry.Name) {
			continue
		}
		formatted = append(formatted, fmt.Sprintf(`%s="%s"`, entry.Name, entry.Value))
	}
	return strings.Join(formatted, " "), nil
}
