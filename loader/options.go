package loader

import "iptv-toolkit/config"

// Strictness controls how payload rows without a preceding #EXTINF row are
// handled.
type Strictness int

const (
	// Lenient builds an implicit channel with empty metadata for a payload
	// row that has no #EXTINF row.
	Lenient Strictness = iota

	// Strict skips such payload rows and reports an OrphanPayload
	// diagnostic.
	Strict
)

type loadOptions struct {
	workers      int
	minChunkSize int
	strictness   Strictness
}

func defaultOptions() *loadOptions {
	cfg := config.GetConfig()
	strictness := Lenient
	if cfg.StrictParsing {
		strictness = Strict
	}
	minChunkSize := cfg.MinChunkSize
	if minChunkSize < 2 {
		minChunkSize = 2
	}
	return &loadOptions{
		workers:      cfg.EffectiveWorkerCount(),
		minChunkSize: minChunkSize,
		strictness:   strictness,
	}
}

// Option customizes a single load.
type Option func(*loadOptions)

// WithWorkerCount sets how many chunks are parsed concurrently. Values
// below one fall back to a single worker.
func WithWorkerCount(n int) Option {
	return func(o *loadOptions) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithStrictness sets the orphan-payload policy for this load.
func WithStrictness(s Strictness) Option {
	return func(o *loadOptions) {
		o.strictness = s
	}
}

// WithMinChunkSize sets the smallest number of rows a chunk may hold.
// Values below two are clamped, since a record needs at least two rows.
func WithMinChunkSize(n int) Option {
	return func(o *loadOptions) {
		if n < 2 {
			n = 2
		}
		o.minChunkSize = n
	}
}
