// Package store offers fast exact-match lookups over a parsed playlist by
// loading its channels into an in-memory indexed database. The store is a
// read-only view: it never mutates the playlist it was built from.
package store

import (
	"fmt"

	"github.com/hashicorp/go-memdb"

	"iptv-toolkit/playlist"
)

const channelsTable = "channels"

// indexedChannel is the row shape stored in memdb. Seq preserves playlist
// order so All can return channels exactly as they were parsed.
type indexedChannel struct {
	Seq     int
	Name    string
	TvgID   string
	Group   string
	Channel *playlist.Channel
}

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		channelsTable: {
			Name: channelsTable,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.IntFieldIndex{Field: "Seq"},
				},
				"name": {
					Name:         "name",
					AllowMissing: true,
					Indexer:      &memdb.StringFieldIndex{Field: "Name"},
				},
				"tvg-id": {
					Name:         "tvg-id",
					AllowMissing: true,
					Indexer:      &memdb.StringFieldIndex{Field: "TvgID"},
				},
				"group": {
					Name:         "group",
					AllowMissing: true,
					Indexer:      &memdb.StringFieldIndex{Field: "Group"},
				},
			},
		},
	},
}

// Store indexes the channels of one playlist.
type Store struct {
	db *memdb.MemDB
}

// New builds a store over the given playlist.
func New(pl *playlist.Playlist) (*Store, error) {
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("error creating channel store: %w", err)
	}

	txn := db.Txn(true)
	for i, channel := range pl.Channels() {
		tvgID, _ := channel.Attrs.Get(playlist.AttrTvgID)
		group, _ := channel.Attrs.Get(playlist.AttrGroupTitle)
		err := txn.Insert(channelsTable, &indexedChannel{
			Seq:     i,
			Name:    channel.Name,
			TvgID:   tvgID,
			Group:   group,
			Channel: channel,
		})
		if err != nil {
			txn.Abort()
			return nil, fmt.Errorf("error indexing channel %d: %w", i, err)
		}
	}
	txn.Commit()
	return &Store{db: db}, nil
}

// ByName returns all channels with the exact given name, in playlist
// order.
func (s *Store) ByName(name string) ([]*playlist.Channel, error) {
	return s.lookup("name", name)
}

// ByTvgID returns all channels with the exact given tvg-id attribute.
func (s *Store) ByTvgID(id string) ([]*playlist.Channel, error) {
	return s.lookup("tvg-id", id)
}

// ByGroup returns all channels with the exact given group-title attribute.
func (s *Store) ByGroup(group string) ([]*playlist.Channel, error) {
	return s.lookup("group", group)
}

// All returns every indexed channel in playlist order.
func (s *Store) All() ([]*playlist.Channel, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(channelsTable, "id")
	if err != nil {
		return nil, err
	}
	var channels []*playlist.Channel
	for raw := it.Next(); raw != nil; raw = it.Next() {
		channels = append(channels, raw.(*indexedChannel).Channel)
	}
	return channels, nil
}

func (s *Store) lookup(index string, value string) ([]*playlist.Channel, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(channelsTable, index, value)
	if err != nil {
		return nil, err
	}
	var channels []*playlist.Channel
	for raw := it.Next(); raw != nil; raw = it.Next() {
		channels = append(channels, raw.(*indexedChannel).Channel)
	}
	return channels, nil
}
