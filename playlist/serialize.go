package playlist

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// HeaderTag opens every playlist, with the playlist-wide attributes
// appended as key="value" pairs.
const HeaderTag = "#EXTM3U"

func (p *Playlist) buildHeader() string {
	out := HeaderTag
	p.attributes.Each(func(name, value string) bool {
		out += fmt.Sprintf(" %s=\"%s\"", name, value)
		return true
	})
	return out
}

// MarshalM3UPlus renders the playlist in M3U Plus format, attributes and
// channels in insertion order.
func (p *Playlist) MarshalM3UPlus() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(p.buildHeader())
	_, _ = buf.WriteString("\n")
	for _, channel := range p.channels {
		_, _ = buf.WriteString(channel.M3UPlusEntry())
	}
	return buf.String()
}

// MarshalM3U8 renders the playlist in plain M3U format, dropping all
// attributes and extras.
func (p *Playlist) MarshalM3U8() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(HeaderTag)
	_, _ = buf.WriteString("\n")
	for _, channel := range p.channels {
		_, _ = buf.WriteString(channel.M3U8Entry())
	}
	return buf.String()
}
