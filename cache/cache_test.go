package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iptv-toolkit/config"
	"iptv-toolkit/playlist"
)

func useTempDataPath(t *testing.T) {
	t.Helper()
	previous := config.GetConfig()
	config.SetConfig(&config.Config{
		DataPath:     t.TempDir(),
		TempPath:     t.TempDir(),
		MinChunkSize: previous.MinChunkSize,
	})
	t.Cleanup(func() { config.SetConfig(previous) })
}

func playlistFixture() *playlist.Playlist {
	pl := playlist.New()
	pl.Attributes().Set("x-tvg-url", "http://x/epg.xml")
	ch := playlist.NewChannel()
	ch.Name = "Rai 1"
	ch.URL = "http://example/rai1"
	ch.Attrs.Set(playlist.AttrGroupTitle, "RAI")
	pl.AppendChannel(ch)
	return pl
}

func TestCache_SaveAndGet(t *testing.T) {
	useTempDataPath(t)
	c := New()
	pl := playlistFixture()

	require.NoError(t, c.Save("http://provider/playlist.m3u", pl))

	got, err := c.Get("http://provider/playlist.m3u")
	require.NoError(t, err)
	assert.True(t, pl.Equal(got))
}

func TestCache_GetReadsDiskSnapshot(t *testing.T) {
	useTempDataPath(t)
	pl := playlistFixture()

	require.NoError(t, New().Save("source-a", pl))

	// A fresh cache has no in-memory entry and must fall back to the
	// on-disk snapshot.
	got, err := New().Get("source-a")
	require.NoError(t, err)
	assert.True(t, pl.Equal(got))
}

func TestCache_GetMissing(t *testing.T) {
	useTempDataPath(t)

	_, err := New().Get("never-saved")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCache_Invalidate(t *testing.T) {
	useTempDataPath(t)
	c := New()

	require.NoError(t, c.Save("source-a", playlistFixture()))
	require.NoError(t, c.Invalidate("source-a"))

	_, err := c.Get("source-a")
	assert.ErrorIs(t, err, ErrNotFound)

	// Invalidating an unknown source is not an error.
	assert.NoError(t, c.Invalidate("never-saved"))
}

func TestCache_Clear(t *testing.T) {
	useTempDataPath(t)
	c := New()

	require.NoError(t, c.Save("source-a", playlistFixture()))
	require.NoError(t, c.Save("source-b", playlistFixture()))
	require.NoError(t, c.Clear())

	_, err := c.Get("source-a")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Get("source-b")
	assert.ErrorIs(t, err, ErrNotFound)
}
