// Package loader turns raw M3U Plus text into a playlist.Playlist using a
// scatter/gather pipeline: the input rows are split into record-aligned
// chunks, each chunk is parsed by its own worker, and the partial results
// are reassembled in input order. Parsing the same input with any worker
// count yields the same playlist.
package loader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"iptv-toolkit/logger"
	"iptv-toolkit/m3u"
	"iptv-toolkit/playlist"
)

// ErrMalformedPlaylist reports input that cannot be parsed at all: too few
// rows or a missing #EXTM3U header.
var ErrMalformedPlaylist = errors.New("malformed playlist")

// Load parses M3U Plus content from r.
//
// The returned Report lists every record that had to be skipped;
// record-level problems never fail the load. A non-nil error means no
// playlist was produced at all.
func Load(ctx context.Context, r io.Reader, opts ...Option) (*playlist.Playlist, *Report, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("error reading content: %w", err)
	}
	return LoadLines(ctx, lines, opts...)
}

// LoadString parses M3U Plus content held in a string.
func LoadString(ctx context.Context, content string, opts ...Option) (*playlist.Playlist, *Report, error) {
	return LoadLines(ctx, strings.Split(content, "\n"), opts...)
}

// LoadFile parses the M3U Plus file at path.
func LoadFile(ctx context.Context, path string, opts ...Option) (*playlist.Playlist, *Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening playlist file: %w", err)
	}
	defer file.Close()
	return Load(ctx, file, opts...)
}

// LoadLines parses M3U Plus content given as individual rows. This is the
// entry point all other Load functions funnel into.
func LoadLines(ctx context.Context, lines []string, opts ...Option) (*playlist.Playlist, *Report, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	rows := make([]row, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		rows = append(rows, row{text: line, num: i + 1})
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("%w: a playlist should have at least 2 rows (found %d)", ErrMalformedPlaylist, len(rows))
	}
	header := rows[0]
	if !m3u.IsHeaderRow(header.text) {
		return nil, nil, fmt.Errorf("%w: missing or misplaced %s row", ErrMalformedPlaylist, m3u.HeaderTag)
	}

	pl := playlist.New()
	m3u.ParseHeaderAttributes(header.text).Each(func(name, value string) bool {
		pl.Attributes().Set(name, value)
		return true
	})

	body := rows[1:]
	chunks := splitChunks(body, options.workers, options.minChunkSize)
	logger.Default.Debugf("parsing %d rows in %d chunks with %d workers", len(body), len(chunks), options.workers)

	results, err := runChunks(ctx, chunks, options)
	if err != nil {
		return nil, nil, err
	}

	report := &Report{
		LoadID:  uuid.New(),
		Workers: options.workers,
		Chunks:  len(chunks),
	}
	for _, result := range results {
		pl.AppendChannels(result.channels)
		report.Diagnostics = append(report.Diagnostics, result.diags...)
	}
	logger.Default.Debugf("load %s: %d channels, %d diagnostics", report.LoadID, pl.Len(), len(report.Diagnostics))
	return pl, report, nil
}
