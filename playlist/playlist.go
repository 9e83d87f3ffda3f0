// Package playlist holds the in-memory model of an IPTV playlist in M3U
// Plus format: an ordered set of playlist-wide attributes plus an ordered
// list of channels. Channel order always reflects the order of the source
// file.
package playlist

import (
	"fmt"

	"iptv-toolkit/logger"
)

// Group keys used by GroupByAttribute and GroupByURL for channels that
// carry no usable group value.
const (
	NoGroupKey = "_NO_GROUP_"
	NoURLKey   = "_NO_URL_"
)

type Playlist struct {
	attributes *Attributes
	channels   []*Channel
}

func New() *Playlist {
	return &Playlist{
		attributes: NewAttributes(),
	}
}

func (p *Playlist) Len() int {
	return len(p.channels)
}

// Attributes returns the playlist-wide attributes parsed from the #EXTM3U
// header row.
func (p *Playlist) Attributes() *Attributes {
	return p.attributes
}

func (p *Playlist) GetAttribute(name string) (string, error) {
	value, ok := p.attributes.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrAttributeNotFound, name)
	}
	return value, nil
}

func (p *Playlist) AddAttribute(name string, value string) error {
	if err := p.attributes.Add(name, value); err != nil {
		return err
	}
	logger.Default.Debugf("attribute added: %s: %s", name, value)
	return nil
}

func (p *Playlist) AddAttributes(attrs *Attributes) error {
	var err error
	attrs.Each(func(name, value string) bool {
		err = p.AddAttribute(name, value)
		return err == nil
	})
	return err
}

func (p *Playlist) UpdateAttribute(name string, value string) error {
	return p.attributes.Update(name, value)
}

func (p *Playlist) RemoveAttribute(name string) (string, error) {
	return p.attributes.Remove(name)
}

func (p *Playlist) checkIndex(index int) error {
	if index < 0 || index >= len(p.channels) {
		return fmt.Errorf("%w: index %d is out of the (0, %d) range", ErrIndexOutOfBounds, index, len(p.channels))
	}
	return nil
}

func (p *Playlist) Channel(index int) (*Channel, error) {
	if err := p.checkIndex(index); err != nil {
		return nil, err
	}
	return p.channels[index], nil
}

// Channels returns the backing channel slice in playlist order.
func (p *Playlist) Channels() []*Channel {
	return p.channels
}

func (p *Playlist) AppendChannel(channel *Channel) {
	p.channels = append(p.channels, channel)
}

func (p *Playlist) AppendChannels(channels []*Channel) {
	p.channels = append(p.channels, channels...)
}

func (p *Playlist) InsertChannel(index int, channel *Channel) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.channels = append(p.channels[:index], append([]*Channel{channel}, p.channels[index:]...)...)
	return nil
}

func (p *Playlist) UpdateChannel(index int, channel *Channel) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.channels[index] = channel
	return nil
}

func (p *Playlist) RemoveChannel(index int) (*Channel, error) {
	if err := p.checkIndex(index); err != nil {
		return nil, err
	}
	channel := p.channels[index]
	p.channels = append(p.channels[:index], p.channels[index+1:]...)
	return channel, nil
}

// GroupByAttribute maps every distinct value of the given channel attribute
// to the indexes of the channels carrying it. Channels without the
// attribute are collected under NoGroupKey, unless includeNoGroup is false.
func (p *Playlist) GroupByAttribute(attribute string, includeNoGroup bool) map[string][]int {
	groups := make(map[string][]int)
	for i, channel := range p.channels {
		group := NoGroupKey
		if value, ok := channel.Attrs.Get(attribute); ok && len(value) > 0 {
			group = value
		} else if !includeNoGroup {
			continue
		}
		groups[group] = append(groups[group], i)
	}
	return groups
}

// GroupByURL maps every distinct channel URL to the indexes of the channels
// using it. Channels without a URL are collected under NoURLKey, unless
// includeNoURL is false.
func (p *Playlist) GroupByURL(includeNoURL bool) map[string][]int {
	groups := make(map[string][]int)
	for i, channel := range p.channels {
		group := NoURLKey
		if len(channel.URL) > 0 {
			group = channel.URL
		} else if !includeNoURL {
			continue
		}
		groups[group] = append(groups[group], i)
	}
	return groups
}

func (p *Playlist) Copy() *Playlist {
	clone := New()
	clone.attributes = p.attributes.Clone()
	clone.channels = make([]*Channel, 0, len(p.channels))
	for _, channel := range p.channels {
		clone.channels = append(clone.channels, channel.Clone())
	}
	return clone
}

func (p *Playlist) Equal(other *Playlist) bool {
	if p == nil || other == nil {
		return p == other
	}
	if !p.attributes.Equal(other.attributes) {
		return false
	}
	if len(p.channels) != len(other.channels) {
		return false
	}
	for i, channel := range p.channels {
		if !channel.Equal(other.channels[i]) {
			return false
		}
	}
	return true
}

func (p *Playlist) String() string {
	return p.MarshalM3UPlus()
}
