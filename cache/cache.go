// Package cache persists parsed playlists so that a source does not have
// to be re-fetched and re-parsed on every access. Snapshots are written to
// disk as zstd-compressed JSON, keyed by a checksum of the source
// identifier, with a TTL'd in-memory layer in front.
package cache

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
	gocache "github.com/patrickmn/go-cache"

	"iptv-toolkit/config"
	"iptv-toolkit/logger"
	"iptv-toolkit/playlist"
	"iptv-toolkit/utils"
)

const (
	DefaultTTL      = 5 * time.Minute
	cleanupInterval = 10 * time.Minute

	snapshotExtension = ".json.zst"
)

// ErrNotFound reports a source with no snapshot, in memory or on disk.
var ErrNotFound = errors.New("no cached playlist for source")

// Cache is a two-level playlist cache: go-cache in memory, zstd-compressed
// JSON snapshots on disk under the configured snapshots directory.
type Cache struct {
	mem *gocache.Cache
}

func New() *Cache {
	return &Cache{
		mem: gocache.New(DefaultTTL, cleanupInterval),
	}
}

// Save snapshots the playlist for the given source, both in memory and on
// disk. The on-disk write goes through a temp file and a rename so a
// concurrent reader never sees a partial snapshot.
func (c *Cache) Save(source string, pl *playlist.Playlist) error {
	path := snapshotPath(source)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("error creating snapshots directory: %w", err)
	}

	data, err := pl.MarshalJSON()
	if err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}

	tmpPath := path + ".new"
	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("error creating snapshot file: %w", err)
	}
	writer, err := zstd.NewWriter(file)
	if err != nil {
		file.Close()
		return fmt.Errorf("error creating snapshot writer: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("error writing snapshot: %w", err)
	}
	if err := writer.Close(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("error finishing snapshot: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error closing snapshot file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error moving snapshot into place: %w", err)
	}

	c.mem.Set(source, pl, gocache.DefaultExpiration)
	logger.Default.Debugf("cached playlist for %s (%d channels)", source, pl.Len())
	return nil
}

// Get returns the cached playlist for the source, reading the disk
// snapshot when the in-memory entry has expired.
func (c *Cache) Get(source string) (*playlist.Playlist, error) {
	if cached, ok := c.mem.Get(source); ok {
		return cached.(*playlist.Playlist), nil
	}

	file, err := os.Open(snapshotPath(source))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, source)
		}
		return nil, fmt.Errorf("error opening snapshot: %w", err)
	}
	defer file.Close()

	reader, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("error opening snapshot reader: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot: %w", err)
	}
	pl := playlist.New()
	if err := json.Unmarshal(data, pl); err != nil {
		return nil, fmt.Errorf("error decoding snapshot: %w", err)
	}

	c.mem.Set(source, pl, gocache.DefaultExpiration)
	return pl, nil
}

// Invalidate drops the snapshot for one source, in memory and on disk.
func (c *Cache) Invalidate(source string) error {
	c.mem.Delete(source)
	if err := os.Remove(snapshotPath(source)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing snapshot: %w", err)
	}
	return nil
}

// Clear drops every snapshot.
func (c *Cache) Clear() error {
	c.mem.Flush()
	if err := os.RemoveAll(config.GetSnapshotsDirPath()); err != nil {
		return fmt.Errorf("error clearing snapshots: %w", err)
	}
	return nil
}

func snapshotPath(source string) string {
	return filepath.Join(config.GetSnapshotsDirPath(), utils.CalculateChecksum(source)+snapshotExtension)
}
