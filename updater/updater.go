// Package updater keeps the configured playlist sources fresh: it fetches
// and parses every M3U_URL_n source on a cron schedule, keeps the parsed
// playlists in an in-memory registry and persists them through the
// snapshot cache.
package updater

import (
	"context"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/robfig/cron/v3"

	"iptv-toolkit/cache"
	"iptv-toolkit/loader"
	"iptv-toolkit/logger"
	"iptv-toolkit/playlist"
	"iptv-toolkit/utils"
)

type Updater struct {
	mu       sync.Mutex
	ctx      context.Context
	cron     *cron.Cron
	cache    *cache.Cache
	registry *xsync.MapOf[string, *playlist.Playlist]
	options  []loader.Option
}

// New builds an updater for the sources configured through M3U_URL_1..n.
// The refresh schedule comes from SYNC_CRON (daily at midnight by
// default). Nothing runs until Start is called.
func New(ctx context.Context, opts ...loader.Option) (*Updater, error) {
	u := &Updater{
		ctx:      ctx,
		cache:    cache.New(),
		registry: xsync.NewMapOf[string, *playlist.Playlist](),
		options:  opts,
	}

	c := cron.New()
	if _, err := c.AddFunc(utils.GetEnv("SYNC_CRON"), func() {
		go u.RefreshAll(u.ctx)
	}); err != nil {
		logger.Default.Errorf("Error initializing refresh schedule: %v", err)
		return nil, err
	}
	u.cron = c
	return u, nil
}

// Start begins the cron schedule and, unless SYNC_ON_BOOT=false, kicks off
// an initial refresh in the background.
func (u *Updater) Start() {
	u.cron.Start()
	if utils.GetEnv("SYNC_ON_BOOT") != "false" {
		logger.Default.Log("SYNC_ON_BOOT enabled. Starting initial playlist refresh.")
		go u.RefreshAll(u.ctx)
	}
}

// Stop halts the schedule and waits for any running cron-invoked job to
// return.
func (u *Updater) Stop() {
	stopCtx := u.cron.Stop()
	<-stopCtx.Done()
}

// RefreshAll fetches and re-parses every configured source. Only one
// refresh runs at a time; sources within a refresh are fetched
// concurrently.
func (u *Updater) RefreshAll(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()

	select {
	case <-ctx.Done():
		return
	default:
	}

	sources := utils.GetM3USources()
	if len(sources) == 0 {
		logger.Default.Warn("No M3U_URL_n sources configured, nothing to refresh")
		return
	}

	var wg sync.WaitGroup
	for i, source := range sources {
		wg.Add(1)
		go func(source string, index int) {
			defer wg.Done()
			u.refreshSource(ctx, source, index)
		}(source, i)
	}
	wg.Wait()
	logger.Default.Log("Playlist refresh complete")
}

// Get returns the most recent parse of the source, falling back to the
// snapshot cache when the updater has not refreshed it yet in this
// process.
func (u *Updater) Get(source string) (*playlist.Playlist, error) {
	if pl, ok := u.registry.Load(source); ok {
		return pl, nil
	}
	return u.cache.Get(source)
}

func (u *Updater) refreshSource(ctx context.Context, source string, index int) {
	logger.Default.Logf("Refreshing playlist #%d from %s", index+1, source)
	pl, report, err := loader.LoadURL(ctx, source, u.options...)
	if err != nil {
		logger.Default.Errorf("Error refreshing playlist #%d: %v", index+1, err)
		return
	}
	if len(report.Diagnostics) > 0 {
		logger.Default.Warnf("Playlist #%d parsed with %d skipped records", index+1, len(report.Diagnostics))
	}
	u.registry.Store(source, pl)
	if err := u.cache.Save(source, pl); err != nil {
		logger.Default.Errorf("Error caching playlist #%d: %v", index+1, err)
	}
	logger.Default.Logf("Refreshed playlist #%d (%d channels)", index+1, pl.Len())
}
