// Package m3u implements the line-level grammar of M3U Plus playlists: row
// classification and the tokenizer for #EXTM3U and #EXTINF rows.
//
// The attribute syntax of M3U Plus is not RFC-compliant: attribute values
// are double-quoted but may legitimately contain unescaped double quotes
// and commas. Splitting on delimiters therefore corrupts values; the
// tokenizer in this package scans statefully and decides value boundaries
// by looking ahead for the next attribute or the title separator.
package m3u

import "strings"

const (
	// HeaderTag starts the single playlist-wide header row.
	HeaderTag = "#EXTM3U"

	// ExtinfTag starts every channel metadata row.
	ExtinfTag = "#EXTINF"

	extinfPrefix = ExtinfTag + ":"
)

func IsHeaderRow(row string) bool {
	return strings.HasPrefix(row, HeaderTag)
}

func IsExtinfRow(row string) bool {
	return strings.HasPrefix(row, ExtinfTag)
}

func IsCommentOrTagRow(row string) bool {
	return strings.HasPrefix(row, "#")
}

func IsEmptyRow(row string) bool {
	return len(strings.TrimSpace(row)) == 0
}

// IsURLRow reports whether the row is a channel payload: anything that is
// not a header, not a comment or tag, and not blank.
func IsURLRow(row string) bool {
	return !IsHeaderRow(row) && !IsCommentOrTagRow(row) && !IsEmptyRow(row)
}
