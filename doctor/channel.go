package doctor

import (
	"fmt"
	"strings"

	"iptv-toolkit/playlist"
)

var canonicalAttributeNames = func() map[string]string {
	names := make(map[string]string, len(playlist.KnownAttributes))
	for _, name := range playlist.KnownAttributes {
		names[name] = name
	}
	return names
}()

// SanitizeChannel returns a repaired copy of the channel: the tvg-logo URL
// is percent-encoded, misspelled well-known attribute names are
// normalized, and commas inside attribute values are replaced so that
// naive downstream parsers cannot be confused by them.
func SanitizeChannel(channel *playlist.Channel) *playlist.Channel {
	fixed := channel.Clone()
	urlencodeAttribute(fixed, playlist.AttrTvgLogo)
	for _, name := range fixed.Attrs.Keys() {
		convertCommas(fixed, name)
		normalizeAttributeName(fixed, name)
	}
	return fixed
}

// SanitizePlaylist applies SanitizeChannel to every channel, keeping the
// playlist attributes and the channel order.
func SanitizePlaylist(pl *playlist.Playlist) *playlist.Playlist {
	fixed := playlist.New()
	pl.Attributes().Each(func(name, value string) bool {
		fixed.Attributes().Set(name, value)
		return true
	})
	for _, channel := range pl.Channels() {
		fixed.AppendChannel(SanitizeChannel(channel))
	}
	return fixed
}

// urlencodeAttribute covers logo URLs that are not correctly encoded,
// e.g. commas inside an image path.
func urlencodeAttribute(channel *playlist.Channel, name string) {
	if value, ok := channel.Attrs.Get(name); ok {
		channel.Attrs.Set(name, quoteURL(value))
	}
}

// normalizeAttributeName renames a wrongly-cased well-known attribute
// (e.g. tvg-ID) to its canonical spelling. Unknown attributes are left
// untouched.
func normalizeAttributeName(channel *playlist.Channel, name string) {
	if _, ok := canonicalAttributeNames[name]; ok {
		return
	}
	canonical, ok := canonicalAttributeNames[strings.ToLower(name)]
	if !ok {
		return
	}
	value, _ := channel.Attrs.Get(name)
	_, _ = channel.Attrs.Remove(name)
	channel.Attrs.Set(canonical, value)
}

// convertCommas replaces commas inside attribute values. The logo URL is
// exempt: it is repaired by percent-encoding instead.
func convertCommas(channel *playlist.Channel, name string) {
	if name == playlist.AttrTvgLogo {
		return
	}
	if value, ok := channel.Attrs.Get(name); ok && strings.Contains(value, ",") {
		channel.Attrs.Set(name, strings.ReplaceAll(value, ",", "_"))
	}
}

// quoteURL percent-encodes every byte that is neither unreserved nor one
// of :/%?&=, leaving already-encoded sequences alone.
func quoteURL(value string) string {
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isUnreservedByte(c) || strings.IndexByte(":/%?&=", c) >= 0 {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func isUnreservedByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == '.' || c == '~'
}
