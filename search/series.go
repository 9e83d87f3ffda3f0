package search

import (
	"regexp"

	"github.com/gosimple/slug"

	"iptv-toolkit/playlist"
)

// NoSeriesKey identifies channels that do not look like series episodes.
const NoSeriesKey = "_NO_SERIES_"

var (
	// Matches "S05E10" or "s:01 e:13".
	seasonEpisodePattern1 = regexp.MustCompile(`(?i)\s+(S[:=]?\d+)?\s*(E[:=]?\d+).*`)
	// Matches " 01x05" or " 05.13" but not " 1920x1024".
	seasonEpisodePattern2 = regexp.MustCompile(`(?i)\s+(\d{1,2})[x.](\d+)(?:\s+|$).*`)
	// Matches a trailing ".2" not preceded by a digit, e.g. "Something.2"
	// but not "25.10.2024".
	seasonEpisodePattern3 = regexp.MustCompile(`(?i)(^|[^0-9])(\.\d+)$`)
)

// IsSeriesEpisode reports whether a channel name looks like an episode of
// a series.
func IsSeriesEpisode(channelName string) bool {
	return seasonEpisodePattern1.MatchString(channelName) ||
		seasonEpisodePattern2.MatchString(channelName) ||
		seasonEpisodePattern3.MatchString(channelName)
}

// ExtractShowName strips the season/episode markers (and anything after
// them) from a channel name.
func ExtractShowName(channelName string) string {
	if seasonEpisodePattern1.MatchString(channelName) {
		return seasonEpisodePattern1.ReplaceAllString(channelName, "")
	}
	if seasonEpisodePattern2.MatchString(channelName) {
		return seasonEpisodePattern2.ReplaceAllString(channelName, "")
	}
	if loc := seasonEpisodePattern3.FindStringSubmatchIndex(channelName); loc != nil {
		// Cut at the start of the ".<digits>" group, keeping the
		// non-digit character before it.
		return channelName[:loc[4]]
	}
	return channelName
}

// ExtractSeries splits a playlist into one playlist per detected series,
// keyed by the slugified show name, plus a remainder playlist with every
// channel that does not look like an episode. Every produced playlist
// inherits the source playlist's attributes. With excludeSingle set,
// series with a single episode are dropped from the result map.
func ExtractSeries(pl *playlist.Playlist, excludeSingle bool) (map[string]*playlist.Playlist, *playlist.Playlist) {
	series := make(map[string]*playlist.Playlist)
	remainder := newWithAttributes(pl)

	for _, channel := range pl.Channels() {
		if !IsSeriesEpisode(channel.Name) {
			remainder.AppendChannel(channel)
			continue
		}
		key := slug.Make(ExtractShowName(channel.Name))
		show, ok := series[key]
		if !ok {
			show = newWithAttributes(pl)
			series[key] = show
		}
		show.AppendChannel(channel)
	}

	if excludeSingle {
		for key, show := range series {
			if show.Len() <= 1 {
				delete(series, key)
			}
		}
	}
	return series, remainder
}

func newWithAttributes(pl *playlist.Playlist) *playlist.Playlist {
	out := playlist.New()
	pl.Attributes().Each(func(name, value string) bool {
		out.Attributes().Set(name, value)
		return true
	})
	return out
}
