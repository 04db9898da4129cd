package meta

import (
	"strconv"
	"strings"
)

// isSpace reports whether r is one of the whitespace characters this
// engine recognizes: space, tab, carriage return or newline.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// scanWhitespace returns the number of consecutive whitespace runes
// starting at offset, treating a nested /* */ block comment as
// whitespace too. A zero result means the input doesn't start with
// whitespace (or a comment) at that position.
func scanWhitespace(input []rune, offset int) int {
	n := 0
	for offset+n < len(input) {
		if isSpace(input[offset+n]) {
			n++
			continue
		}
		if c := scanBlockComment(input, offset+n); c > 0 {
			n += c
			continue
		}
		break
	}
	return n
}

// scanBlockComment scans a nested /* ... */ comment starting at
// offset, returning the number of runes consumed including both
// delimiters, or 0 if offset isn't a comment start or it never closes.
func scanBlockComment(input []rune, offset int) int {
	if offset+1 >= len(input) || input[offset] != '/' || input[offset+1] != '*' {
		return 0
	}
	depth := 1
	i := offset + 2
	for i < len(input) {
		if input[i] == '/' && i+1 < len(input) && input[i+1] == '*' {
			depth++
			i += 2
			continue
		}
		if input[i] == '*' && i+1 < len(input) && input[i+1] == '/' {
			depth--
			i += 2
			if depth == 0 {
				return i - offset
			}
			continue
		}
		i++
	}
	return 0
}

// scanQuotedString scans a double-quoted string literal starting at
// offset, decoding \\, \", \n, \t and \r escapes (any other escaped
// rune passes through literally). Returns the total length consumed,
// including both quotes, and the decoded text.
func scanQuotedString(input []rune, offset int) (length int, decoded string, ok bool) {
	if offset >= len(input) || input[offset] != '"' {
		return 0, "", false
	}
	var sb strings.Builder
	i := offset + 1
	for i < len(input) {
		ch := input[i]
		if ch == '"' {
			return i + 1 - offset, sb.String(), true
		}
		if ch == '\\' && i+1 < len(input) {
			switch esc := input[i+1]; esc {
			case '\\':
				sb.WriteRune('\\')
			case '"':
				sb.WriteRune('"')
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			default:
				sb.WriteRune(esc)
			}
			i += 2
			continue
		}
		sb.WriteRune(ch)
		i++
	}
	return 0, "", false
}

// scanTag reports whether input at offset starts with literally tag,
// returning the length consumed on success.
func scanTag(input []rune, offset int, tag string) (int, bool) {
	runes := []rune(tag)
	if offset+len(runes) > len(input) {
		return 0, false
	}
	for i, r := range runes {
		if input[offset+i] != r {
			return 0, false
		}
	}
	return len(runes), true
}

// scanUntilAny consumes runes up to (not including) the first
// occurrence of any rune in stop, or to the end of input if stop
// never occurs. Returns the number of runes consumed.
func scanUntilAny(input []rune, offset int, stop []rune) int {
	n := 0
	for offset+n < len(input) {
		r := input[offset+n]
		if containsRune(stop, r) {
			break
		}
		n++
	}
	return n
}

// scanUntilAnyOrWhitespace is scanUntilAny extended to also stop on
// the first whitespace rune.
func scanUntilAnyOrWhitespace(input []rune, offset int, stop []rune) int {
	n := 0
	for offset+n < len(input) {
		r := input[offset+n]
		if isSpace(r) || containsRune(stop, r) {
			break
		}
		n++
	}
	return n
}

func containsRune(set []rune, r rune) bool {
	for _, s := range set {
		if s == r {
			return true
		}
	}
	return false
}

// scanNumber matches an optionally-signed decimal number (integer or
// floating point) starting at offset, returning the consumed length
// and the parsed value.
func scanNumber(input []rune, offset int) (length int, value float64, ok bool) {
	start := offset
	n := offset

	if n < len(input) && (input[n] == '-' || input[n] == '+') {
		n++
	}

	digitsStart := n
	for n < len(input) && isDigit(input[n]) {
		n++
	}
	if n == digitsStart {
		return 0, 0, false
	}

	if n < len(input) && input[n] == '.' {
		n++
		fracStart := n
		for n < len(input) && isDigit(input[n]) {
			n++
		}
		if n == fracStart {
			return 0, 0, false
		}
	}

	text := string(input[start:n])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, 0, false
	}
	return n - start, v, true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

