package m3u

import (
	"errors"
	"fmt"
	"strings"

	"iptv-toolkit/playlist"
)

var (
	// ErrNotExtinf reports a row that does not start with #EXTINF:.
	ErrNotExtinf = errors.New("not an #EXTINF row")

	// ErrMalformedDuration reports an #EXTINF row whose duration token is
	// not a valid signed integer or float.
	ErrMalformedDuration = errors.New("malformed duration")
)

// Extinf is the tokenized content of one #EXTINF row.
type Extinf struct {
	Duration string
	Attrs    *playlist.Attributes
	Name     string
}

// ParseExtinf tokenizes an #EXTINF row into duration, attributes and title.
//
// The scan proceeds left to right: an optional numeric duration, then
// key="value" attributes whose values may contain unescaped quotes and
// commas, then a top-level comma followed by the title (taken verbatim, it
// may itself contain commas). A quote character only terminates a value
// when it is followed by end-of-row, by a comma, or by whitespace and the
// next key= pattern. An absent duration defaults to "-1"; an absent
// top-level comma yields an empty title.
//
// Duplicate attribute keys keep the position of the first occurrence and
// the value of the last. Unquoted attribute values are accepted as
// barewords running to the next whitespace or comma.
func ParseExtinf(row string) (*Extinf, error) {
	if !strings.HasPrefix(row, extinfPrefix) {
		return nil, fmt.Errorf("%w: %q", ErrNotExtinf, row)
	}
	s := row[len(extinfPrefix):]

	i := skipSpaces(s, 0)
	duration, i, err := scanDuration(s, i)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, row)
	}

	attrs := playlist.NewAttributes()
	i = scanAttributes(s, i, attrs)

	name := ""
	if i < len(s) && s[i] == ',' {
		name = s[i+1:]
	}
	return &Extinf{
		Duration: duration,
		Attrs:    attrs,
		Name:     name,
	}, nil
}

// ParseHeaderAttributes tokenizes the attribute list of an #EXTM3U header
// row. The header carries no duration and no title, only attributes.
func ParseHeaderAttributes(row string) *playlist.Attributes {
	attrs := playlist.NewAttributes()
	if !IsHeaderRow(row) {
		return attrs
	}
	scanAttributes(row[len(HeaderTag):], 0, attrs)
	return attrs
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func isKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == '.'
}

// scanKey reads a bareword key followed by '='. It returns the key, the
// index of the first value character and whether the position holds an
// attribute at all.
func scanKey(s string, i int) (key string, valueStart int, ok bool) {
	j := i
	for j < len(s) && isKeyChar(s[j]) {
		j++
	}
	if j == i || j >= len(s) || s[j] != '=' {
		return "", 0, false
	}
	return s[i:j], j + 1, true
}

// scanDuration reads the optional numeric duration token. The token ends
// at the first whitespace or comma; an empty token defaults to "-1", a
// non-numeric one is an error.
func scanDuration(s string, i int) (string, int, error) {
	j := i
	for j < len(s) && s[j] != ' ' && s[j] != '\t' && s[j] != ',' {
		j++
	}
	token := s[i:j]
	if token == "" {
		return playlist.DefaultDuration, j, nil
	}
	if !isNumeric(token) {
		// A key= run at this position means the duration was omitted
		// and attributes start immediately.
		if _, _, ok := scanKey(s, i); ok {
			return playlist.DefaultDuration, i, nil
		}
		return "", 0, ErrMalformedDuration
	}
	return token, j, nil
}

func isNumeric(token string) bool {
	i := 0
	if token[0] == '+' || token[0] == '-' {
		i = 1
	}
	digits := 0
	dots := 0
	for ; i < len(token); i++ {
		switch {
		case token[i] >= '0' && token[i] <= '9':
			digits++
		case token[i] == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// scanAttributes consumes key=value pairs into attrs and returns the index
// where attribute parsing stopped: either the top-level comma separating
// the title, or the end of the string.
func scanAttributes(s string, i int, attrs *playlist.Attributes) int {
	for {
		i = skipSpaces(s, i)
		if i >= len(s) || s[i] == ',' {
			return i
		}
		key, valueStart, ok := scanKey(s, i)
		if !ok {
			// Not an attribute: whatever sits here is unclaimed text,
			// skipped up to the title separator.
			if idx := strings.IndexByte(s[i:], ','); idx >= 0 {
				return i + idx
			}
			return len(s)
		}
		if valueStart < len(s) && s[valueStart] == '"' {
			value, next := scanQuotedValue(s, valueStart)
			attrs.Set(key, value)
			i = next
			continue
		}
		// Bareword value, up to the next whitespace or comma.
		j := valueStart
		for j < len(s) && s[j] != ' ' && s[j] != '\t' && s[j] != ',' {
			j++
		}
		attrs.Set(key, s[valueStart:j])
		i = j
	}
}

// scanQuotedValue reads a double-quoted value starting at the opening
// quote. A closing quote is only accepted when followed by end-of-row, a
// comma (optionally after whitespace), or whitespace and the next key=
// pattern; any other quote is part of the value. An unterminated value
// extends to the end of the row.
func scanQuotedValue(s string, open int) (value string, next int) {
	k := open + 1
	for k < len(s) {
		q := strings.IndexByte(s[k:], '"')
		if q < 0 {
			break
		}
		q += k
		rest := q + 1
		if rest >= len(s) {
			return s[open+1 : q], rest
		}
		if s[rest] == ',' {
			return s[open+1 : q], rest
		}
		if s[rest] == ' ' || s[rest] == '\t' {
			w := skipSpaces(s, rest)
			if w >= len(s) || s[w] == ',' {
				return s[open+1 : q], w
			}
			if _, _, ok := scanKey(s, w); ok {
				return s[open+1 : q], w
			}
		}
		k = q + 1
	}
	return s[open+1:], len(s)
}
