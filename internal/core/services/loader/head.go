package loader

import "strings"

// Head returns the first line of text plus the next n lines, the way a
// dataframe preview shows a header and the leading rows. Lines are split on
// '\n' only; quoted newlines inside CSV fields are not special. n <= 0
// returns text unchanged.
func Head(text string, n int) string {
	if n <= 0 {
		return text
	}

	end := 0
	for i := 0; i <= n; i++ {
		idx := strings.IndexByte(text[end:], '\n')
		if idx < 0 {
			return text
		}
		end += idx + 1
	}

	return text[:end]
}
