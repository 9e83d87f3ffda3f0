// Package search provides read-only query facilities over a parsed
// playlist: regex matching against channel fields and grouping of series
// episodes into per-show playlists.
package search

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"iptv-toolkit/playlist"
)

type searchOptions struct {
	where           []string
	caseInsensitive bool
}

// Option customizes a Search call.
type Option func(*searchOptions)

// Where restricts the match to the given fields. Valid selectors are
// "name", "url", "duration", "attributes.<key>" and "extras.<index>".
// Without Where, every field of a channel is searched.
func Where(fields ...string) Option {
	return func(o *searchOptions) {
		o.where = append(o.where, fields...)
	}
}

// CaseInsensitive makes the regex match ignore case.
func CaseInsensitive() Option {
	return func(o *searchOptions) {
		o.caseInsensitive = true
	}
}

// Search returns, in playlist order, every channel with a field fully
// matching the pattern.
func Search(pl *playlist.Playlist, pattern string, opts ...Option) ([]*playlist.Channel, error) {
	options := &searchOptions{}
	for _, opt := range opts {
		opt(options)
	}

	expr := "(?s)^(?:" + pattern + ")$"
	if options.caseInsensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern %q: %w", pattern, err)
	}

	var matches []*playlist.Channel
	for _, channel := range pl.Channels() {
		matched := false
		if len(options.where) == 0 {
			matched = matchAny(channel, re)
		} else {
			for _, field := range options.where {
				value, ok, err := fieldValue(channel, field)
				if err != nil {
					return nil, err
				}
				if ok && re.MatchString(value) {
					matched = true
					break
				}
			}
		}
		if matched {
			matches = append(matches, channel)
		}
	}
	return matches, nil
}

func matchAny(channel *playlist.Channel, re *regexp.Regexp) bool {
	if re.MatchString(channel.Name) || re.MatchString(channel.URL) || re.MatchString(channel.Duration) {
		return true
	}
	matched := false
	channel.Attrs.Each(func(_, value string) bool {
		matched = re.MatchString(value)
		return !matched
	})
	if matched {
		return true
	}
	for _, extra := range channel.Extras {
		if re.MatchString(extra) {
			return true
		}
	}
	return false
}

// fieldValue resolves a Where selector against a channel. The second
// return value reports whether the field exists on this channel.
func fieldValue(channel *playlist.Channel, field string) (string, bool, error) {
	main, sub, _ := strings.Cut(field, ".")
	switch main {
	case "name":
		return channel.Name, true, nil
	case "url":
		return channel.URL, true, nil
	case "duration":
		return channel.Duration, true, nil
	case "attributes":
		value, ok := channel.Attrs.Get(sub)
		return value, ok, nil
	case "extras":
		index, err := strconv.Atoi(sub)
		if err != nil {
			return "", false, fmt.Errorf("invalid extras index %q", sub)
		}
		if index < 0 || index >= len(channel.Extras) {
			return "", false, nil
		}
		return channel.Extras[index], true, nil
	default:
		return "", false, fmt.Errorf("unknown search field %q", field)
	}
}
