// Package parse implements tokenization of command lines.
package parse

// Tokenize splits a command line into tokens. Outside quotes, runs of spaces
// and tabs separate tokens. Double or single quotes group text, including
// whitespace, into a single token; the quote characters themselves are
// dropped. A backslash makes the next character literal, both inside and
// outside quotes.
//
// Malformed input never fails: an unterminated quote extends to the end of
// the line, and a trailing backslash is dropped.
func Tokenize(line string) []string {
	var tokens []string
	var current []rune
	inQuotes := false
	var quote rune
	escaped := false

	for _, r := range line {
		switch {
		case escaped:
			current = append(current, r)
			escaped = false
		case r == '\\':
			escaped = true
		case !inQuotes && (r == '"' || r == '\''):
			inQuotes = true
			quote = r
		case inQuotes && r == quote:
			inQuotes = false
		case !inQuotes && (r == ' ' || r == '\t'):
			if len(current) > 0 {
				tokens = append(tokens, string(current))
				current = current[:0]
			}
		default:
			current = append(current, r)
		}
	}
	if len(current) > 0 {
		tokens = append(tokens, string(current))
	}
	return tokens
}
