package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iptv-toolkit/playlist"
)

func TestSanitizeLines_RejoinsSplitQuotedRow(t *testing.T) {
	rows := []string{
		"#EXTM3U",
		`#EXTINF:-1 tvg-id="Cinema1`,
		`" tvg-name="Cinema1" group-title="Cinema",Cinema One`,
		"http://example/cinema",
	}

	fixed := SanitizeLines(rows)
	require.Len(t, fixed, 3)
	assert.Equal(t, `#EXTINF:-1 tvg-id="Cinema1" tvg-name="Cinema1" group-title="Cinema",Cinema One`, fixed[1])
	assert.Equal(t, "http://example/cinema", fixed[2])
}

func TestSanitizeLines_LeavesUnrelatedQuotedRowsAlone(t *testing.T) {
	rows := []string{
		"#EXTM3U",
		`"not preceded by an #EXTINF row"`,
	}

	fixed := SanitizeLines(rows)
	assert.Equal(t, rows, fixed)
}

func TestSanitizeLines_QuotesBareNumericValues(t *testing.T) {
	rows := []string{
		`#EXTM3U x-tvg-url="http://x"`,
		`#EXTINF:-1 tvg-shift=-10.5 tvg-id="a" tvg-chno=22,Channel`,
		"http://example/a",
	}

	fixed := SanitizeLines(rows)
	assert.Equal(t, `#EXTINF:-1 tvg-shift="-10.5" tvg-id="a" tvg-chno="22",Channel`, fixed[1])
	// URL rows are never touched.
	assert.Equal(t, "http://example/a", fixed[2])
}

func TestSanitizeChannel_EncodesLogoURL(t *testing.T) {
	ch := playlist.NewChannel()
	ch.Name = "Rai 1"
	ch.Attrs.Set(playlist.AttrTvgLogo, "http://img.example/logo dir/rai,1.png")

	fixed := SanitizeChannel(ch)
	logo, _ := fixed.Attrs.Get(playlist.AttrTvgLogo)
	assert.Equal(t, "http://img.example/logo%20dir/rai%2C1.png", logo)

	// The input channel is untouched.
	logo, _ = ch.Attrs.Get(playlist.AttrTvgLogo)
	assert.Equal(t, "http://img.example/logo dir/rai,1.png", logo)
}

func TestSanitizeChannel_ConvertsCommas(t *testing.T) {
	ch := playlist.NewChannel()
	ch.Attrs.Set(playlist.AttrGroupTitle, "RAI, Italy")

	fixed := SanitizeChannel(ch)
	group, _ := fixed.Attrs.Get(playlist.AttrGroupTitle)
	assert.Equal(t, "RAI_ Italy", group)
}

func TestSanitizeChannel_NormalizesAttributeNames(t *testing.T) {
	ch := playlist.NewChannel()
	ch.Attrs.Set("TVG-ID", "Rai 1")
	ch.Attrs.Set("x-custom", "kept as-is")

	fixed := SanitizeChannel(ch)
	value, ok := fixed.Attrs.Get(playlist.AttrTvgID)
	require.True(t, ok)
	assert.Equal(t, "Rai 1", value)
	_, ok = fixed.Attrs.Get("TVG-ID")
	assert.False(t, ok)
	value, ok = fixed.Attrs.Get("x-custom")
	require.True(t, ok)
	assert.Equal(t, "kept as-is", value)
}

func TestSanitizePlaylist(t *testing.T) {
	pl := playlist.New()
	pl.Attributes().Set("x-tvg-url", "http://x/epg.xml")
	ch := playlist.NewChannel()
	ch.Name = "Rai 1"
	ch.URL = "http://example/a"
	ch.Attrs.Set(playlist.AttrGroupTitle, "RAI, Italy")
	pl.AppendChannel(ch)

	fixed := SanitizePlaylist(pl)

	value, err := fixed.GetAttribute("x-tvg-url")
	require.NoError(t, err)
	assert.Equal(t, "http://x/epg.xml", value)

	require.Equal(t, 1, fixed.Len())
	fixedCh, err := fixed.Channel(0)
	require.NoError(t, err)
	group, _ := fixedCh.Attrs.Get(playlist.AttrGroupTitle)
	assert.Equal(t, "RAI_ Italy", group)

	// Original playlist is untouched.
	group, _ = ch.Attrs.Get(playlist.AttrGroupTitle)
	assert.Equal(t, "RAI, Italy", group)
}
