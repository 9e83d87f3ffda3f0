// Package doctor repairs the defects most commonly found in real-world
// M3U Plus files, both at the raw-line level (before parsing) and at the
// channel level (after parsing).
package doctor

import (
	"fmt"
	"regexp"
	"strings"

	"iptv-toolkit/logger"
	"iptv-toolkit/m3u"
)

var (
	leadingQuoteRegex    = regexp.MustCompile(`^\s*"`)
	unquotedNumericRegex = regexp.MustCompile(`(\s+([\w-]+)=\s*(-?\d+(?:\.\d+)?))`)
)

// SanitizeLines repairs raw playlist rows before they reach the parser:
// rows broken in the middle of a quoted value are rejoined, and unquoted
// numeric attribute values are quoted.
func SanitizeLines(rows []string) []string {
	fixed := fixSplitQuotedRows(rows)
	return fixUnquotedNumericAttributes(fixed)
}

// fixSplitQuotedRows handles rows that start with a double quote belonging
// to the previous #EXTINF row, e.g.
//
//	#EXTINF:-1 tvg-id="Cinema1
//	" tvg-name="Cinema1" group-title="Cinema",Cinema One
func fixSplitQuotedRows(rows []string) []string {
	fixed := make([]string, 0, len(rows))
	for _, current := range rows {
		if leadingQuoteRegex.MatchString(current) &&
			len(fixed) > 0 &&
			m3u.IsExtinfRow(fixed[len(fixed)-1]) {
			previous := fixed[len(fixed)-1]
			fixed[len(fixed)-1] = strings.TrimRight(previous, " \t") + strings.TrimLeft(current, " \t")
			logger.Default.Debugf("rejoined split #EXTINF row: %s", fixed[len(fixed)-1])
			continue
		}
		fixed = append(fixed, current)
	}
	return fixed
}

// fixUnquotedNumericAttributes quotes bare numeric attribute values on
// header and #EXTINF rows, e.g. tvg-shift=-10.5 becomes tvg-shift="-10.5".
func fixUnquotedNumericAttributes(rows []string) []string {
	fixed := make([]string, 0, len(rows))
	for _, current := range rows {
		newRow := current
		if m3u.IsHeaderRow(current) || m3u.IsExtinfRow(current) {
			for _, match := range unquotedNumericRegex.FindAllStringSubmatch(current, -1) {
				attribute, name, value := match[1], match[2], match[3]
				newRow = strings.Replace(newRow, attribute, fmt.Sprintf(" %s=%q", name, value), 1)
			}
		}
		fixed = append(fixed, newRow)
	}
	return fixed
}
