package loader

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iptv-toolkit/m3u"
)

func bodyRows(channels int) []row {
	var rows []row
	num := 1
	push := func(text string) {
		rows = append(rows, row{text: text, num: num})
		num++
	}
	for i := 0; i < channels; i++ {
		push(fmt.Sprintf("#EXTINF:-1 tvg-id=\"ch%d\",Channel %d", i, i))
		if i%3 == 0 {
			push(fmt.Sprintf("#EXTGRP:group-%d", i))
		}
		push(fmt.Sprintf("http://example.com/stream/%d", i))
	}
	return rows
}

func TestSplitChunks_Invariants(t *testing.T) {
	rows := bodyRows(40)

	for workers := 1; workers <= 12; workers++ {
		chunks := splitChunks(rows, workers, 2)
		require.NotEmpty(t, chunks, "workers=%d", workers)
		assert.LessOrEqual(t, len(chunks), workers, "workers=%d", workers)

		// Concatenating the chunks must reproduce the body exactly: no
		// row dropped, duplicated or reordered.
		var total int
		for seq, c := range chunks {
			assert.Equal(t, seq, c.seq)
			require.NotEmpty(t, c.rows)
			for i, r := range c.rows {
				assert.Equal(t, rows[total+i], r, "workers=%d chunk=%d", workers, seq)
			}
			total += len(c.rows)
		}
		assert.Equal(t, len(rows), total, "workers=%d", workers)

		// Every chunk but the last ends on a payload row, so the next
		// chunk starts exactly on a record boundary.
		for seq, c := range chunks[:len(chunks)-1] {
			last := c.rows[len(c.rows)-1]
			assert.True(t, m3u.IsURLRow(last.text), "workers=%d chunk=%d ends on %q", workers, seq, last.text)
		}
	}
}

func TestSplitChunks_SmallInputSingleChunk(t *testing.T) {
	rows := bodyRows(3)

	chunks := splitChunks(rows, 8, 100)
	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0].rows, len(rows))
}

func TestSplitChunks_Empty(t *testing.T) {
	assert.Nil(t, splitChunks(nil, 4, 2))
}

func TestSplitChunks_TrailingMetadataStaysInLastChunk(t *testing.T) {
	rows := bodyRows(10)
	rows = append(rows, row{text: "#EXTINF:-1,Unfinished", num: 1000})

	chunks := splitChunks(rows, 4, 2)
	last := chunks[len(chunks)-1]
	assert.Equal(t, "#EXTINF:-1,Unfinished", last.rows[len(last.rows)-1].text)
}
