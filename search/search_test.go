package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iptv-toolkit/playlist"
)

func channelFixture(name, url, group string, extras ...string) *playlist.Channel {
	ch := playlist.NewChannel()
	ch.Name = name
	ch.URL = url
	if group != "" {
		ch.Attrs.Set(playlist.AttrGroupTitle, group)
	}
	ch.Extras = extras
	return ch
}

func playlistFixture() *playlist.Playlist {
	pl := playlist.New()
	pl.Attributes().Set("x-tvg-url", "http://x/epg.xml")
	pl.AppendChannel(channelFixture("Rai 1", "http://example/rai1", "RAI"))
	pl.AppendChannel(channelFixture("Rai 2", "http://example/rai2", "RAI"))
	pl.AppendChannel(channelFixture("Cielo", "http://example/cielo", "Italia", "#EXTGRP:sky"))
	return pl
}

func TestSearch_AllFields(t *testing.T) {
	pl := playlistFixture()

	matches, err := Search(pl, "Rai .*")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Rai 1", matches[0].Name)
	assert.Equal(t, "Rai 2", matches[1].Name)

	// The pattern must match a whole field, not a substring.
	matches, err = Search(pl, "Rai")
	require.NoError(t, err)
	assert.Empty(t, matches)

	// Extras are searched too.
	matches, err = Search(pl, "#EXTGRP:sky")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Cielo", matches[0].Name)
}

func TestSearch_Where(t *testing.T) {
	pl := playlistFixture()

	matches, err := Search(pl, "RAI", Where("attributes.group-title"))
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	// "RAI" appears in no name, only in the group attribute.
	matches, err = Search(pl, "RAI", Where("name"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = Search(pl, "http://example/cielo", Where("url"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Cielo", matches[0].Name)

	matches, err = Search(pl, "#EXTGRP:.*", Where("extras.0"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	pl := playlistFixture()

	matches, err := Search(pl, "rai 1", Where("name"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = Search(pl, "rai 1", Where("name"), CaseInsensitive())
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestSearch_Errors(t *testing.T) {
	pl := playlistFixture()

	_, err := Search(pl, "(")
	assert.Error(t, err)

	_, err = Search(pl, "x", Where("bogus"))
	assert.Error(t, err)

	_, err = Search(pl, "x", Where("extras.notanumber"))
	assert.Error(t, err)
}

func TestIsSeriesEpisode(t *testing.T) {
	episodes := []string{
		"Breaking Bad S05E10",
		"Breaking Bad s:01 e:13",
		"Doctor Who E05",
		"The Show 01x05",
		"The Show 05.13",
		"Something.2",
	}
	for _, name := range episodes {
		assert.True(t, IsSeriesEpisode(name), name)
	}

	notEpisodes := []string{
		"Rai 1",
		"Display 1920x1024",
		"News 25.10.2024",
	}
	for _, name := range notEpisodes {
		assert.False(t, IsSeriesEpisode(name), name)
	}
}

func TestExtractShowName(t *testing.T) {
	tests := []struct {
		name string
		show string
	}{
		{"Breaking Bad S05E10", "Breaking Bad"},
		{"Breaking Bad s:01 e:13", "Breaking Bad"},
		{"The Show 01x05", "The Show"},
		{"Something.2", "Something"},
		{"Rai 1", "Rai 1"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.show, ExtractShowName(tc.name), tc.name)
	}
}

func TestExtractSeries(t *testing.T) {
	pl := playlist.New()
	pl.Attributes().Set("x-tvg-url", "http://x/epg.xml")
	pl.AppendChannel(channelFixture("Breaking Bad S01E01", "http://example/bb1", ""))
	pl.AppendChannel(channelFixture("Breaking Bad S01E02", "http://example/bb2", ""))
	pl.AppendChannel(channelFixture("Lone Pilot S01E01", "http://example/lp1", ""))
	pl.AppendChannel(channelFixture("Rai 1", "http://example/rai1", ""))

	series, remainder := ExtractSeries(pl, false)
	require.Len(t, series, 2)
	show, ok := series["breaking-bad"]
	require.True(t, ok)
	assert.Equal(t, 2, show.Len())
	value, err := show.GetAttribute("x-tvg-url")
	require.NoError(t, err)
	assert.Equal(t, "http://x/epg.xml", value)

	require.Equal(t, 1, remainder.Len())
	ch, _ := remainder.Channel(0)
	assert.Equal(t, "Rai 1", ch.Name)

	series, _ = ExtractSeries(pl, true)
	require.Len(t, series, 1)
	_, ok = series["lone-pilot"]
	assert.False(t, ok)
}
