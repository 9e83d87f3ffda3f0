package loader

import "iptv-toolkit/m3u"

// chunk is a record-aligned, contiguous slice of the playlist body
// assigned to one worker. seq restores input order at assembly time.
type chunk struct {
	seq  int
	rows []row
}

// splitChunks partitions the body rows into at most `workers` chunks.
// Starting from roughly equal offsets, every boundary is pushed forward to
// the row after the next payload row, so a chunk always closes on a
// complete record and the following chunk starts exactly on a record
// boundary. Inputs whose per-worker share would fall below minChunkSize
// are parsed as a single chunk.
func splitChunks(rows []row, workers int, minChunkSize int) []chunk {
	if len(rows) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	chunkSize := (len(rows) + workers - 1) / workers
	if chunkSize < minChunkSize {
		return []chunk{{seq: 0, rows: rows}}
	}
	var chunks []chunk
	start := 0
	for start < len(rows) {
		end := start + chunkSize - 1
		if end >= len(rows)-1 {
			end = len(rows) - 1
		} else {
			end = findChunkEnd(rows, end)
		}
		chunks = append(chunks, chunk{seq: len(chunks), rows: rows[start : end+1]})
		start = end + 1
	}
	return chunks
}

// findChunkEnd scans forward (never backward, so chunks cannot overlap)
// from the provisional end to the next payload row, which becomes the
// chunk's last row.
func findChunkEnd(rows []row, provisionalEnd int) int {
	for i := provisionalEnd; i < len(rows); i++ {
		if m3u.IsURLRow(rows[i].text) {
			return i
		}
	}
	return len(rows) - 1
}
