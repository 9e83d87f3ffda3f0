package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iptv-toolkit/playlist"
)

func channelFixture(name, url, tvgID, group string) *playlist.Channel {
	ch := playlist.NewChannel()
	ch.Name = name
	ch.URL = url
	if tvgID != "" {
		ch.Attrs.Set(playlist.AttrTvgID, tvgID)
	}
	if group != "" {
		ch.Attrs.Set(playlist.AttrGroupTitle, group)
	}
	return ch
}

func storeFixture(t *testing.T) (*Store, *playlist.Playlist) {
	t.Helper()
	pl := playlist.New()
	pl.AppendChannel(channelFixture("Rai 1", "http://example/rai1", "rai1.it", "RAI"))
	pl.AppendChannel(channelFixture("Rai 2", "http://example/rai2", "rai2.it", "RAI"))
	pl.AppendChannel(channelFixture("Cielo", "http://example/cielo", "cielo.it", "Italia"))
	pl.AppendChannel(channelFixture("Bare", "http://example/bare", "", ""))

	s, err := New(pl)
	require.NoError(t, err)
	return s, pl
}

func TestStore_ByName(t *testing.T) {
	s, _ := storeFixture(t)

	channels, err := s.ByName("Rai 1")
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "http://example/rai1", channels[0].URL)

	channels, err = s.ByName("No Such Channel")
	require.NoError(t, err)
	assert.Empty(t, channels)
}

func TestStore_ByTvgID(t *testing.T) {
	s, _ := storeFixture(t)

	channels, err := s.ByTvgID("cielo.it")
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "Cielo", channels[0].Name)
}

func TestStore_ByGroup(t *testing.T) {
	s, _ := storeFixture(t)

	channels, err := s.ByGroup("RAI")
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, "Rai 1", channels[0].Name)
	assert.Equal(t, "Rai 2", channels[1].Name)
}

func TestStore_All(t *testing.T) {
	s, pl := storeFixture(t)

	channels, err := s.All()
	require.NoError(t, err)
	require.Len(t, channels, pl.Len())
	for i, channel := range channels {
		want, err := pl.Channel(i)
		require.NoError(t, err)
		assert.Same(t, want, channel)
	}
}

func TestStore_MissingAttributesAllowed(t *testing.T) {
	s, _ := storeFixture(t)

	// The channel with no tvg-id and no group is indexed anyway and still
	// reachable by name.
	channels, err := s.ByName("Bare")
	require.NoError(t, err)
	assert.Len(t, channels, 1)
}
