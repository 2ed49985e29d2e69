package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnIndex converts a spreadsheet column reference to a 0-based index.
// Letters ("A", "b", "AA") and 1-based numbers ("1", "27") are accepted.
func ColumnIndex(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, fmt.Errorf("empty column reference")
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("column number %d must be 1 or greater", n)
		}
		return n - 1, nil
	}

	if len(ref) > 3 {
		return 0, fmt.Errorf("column reference %q is too long", ref)
	}

	idx := 0
	for _, r := range strings.ToUpper(ref) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column reference %q", ref)
		}
		idx = idx*26 + int(r-'A'+1)
	}
	return idx - 1, nil
}

// ColumnLetter converts a 0-based index back to its letter form.
func ColumnLetter(idx int) string {
	var b []byte
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}
