package playlist

import (
	"fmt"
	"strings"
)

// DefaultDuration is the conventional duration of live channels.
const DefaultDuration = "-1"

// Channel is a single playlist entry: the payload URL, the parsed #EXTINF
// metadata and any pass-through rows found between the two.
type Channel struct {
	URL      string      `json:"url"`
	Name     string      `json:"name"`
	Duration string      `json:"duration"`
	Attrs    *Attributes `json:"attributes"`
	Extras   []string    `json:"extras"`
}

func NewChannel() *Channel {
	return &Channel{
		Duration: DefaultDuration,
		Attrs:    NewAttributes(),
	}
}

func (c *Channel) Clone() *Channel {
	clone := &Channel{
		URL:      c.URL,
		Name:     c.Name,
		Duration: c.Duration,
		Attrs:    NewAttributes(),
	}
	if c.Attrs != nil {
		clone.Attrs = c.Attrs.Clone()
	}
	if len(c.Extras) > 0 {
		clone.Extras = make([]string, len(c.Extras))
		copy(clone.Extras, c.Extras)
	}
	return clone
}

func (c *Channel) Equal(other *Channel) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.URL != other.URL || c.Name != other.Name || c.Duration != other.Duration {
		return false
	}
	if !c.Attrs.Equal(other.Attrs) {
		return false
	}
	if len(c.Extras) != len(other.Extras) {
		return false
	}
	for i, extra := range c.Extras {
		if other.Extras[i] != extra {
			return false
		}
	}
	return true
}

func (c *Channel) String() string {
	attrs := make([]string, 0, c.Attrs.Len())
	c.Attrs.Each(func(name, value string) bool {
		attrs = append(attrs, fmt.Sprintf("%s: %q", name, value))
		return true
	})
	return fmt.Sprintf("{name: %q, duration: %q, url: %q, attributes: {%s}, extras: [%s]}",
		c.Name, c.Duration, c.URL, strings.Join(attrs, ", "), strings.Join(c.Extras, ", "))
}

// M3UPlusEntry renders the channel as one or more rows of an M3U Plus
// playlist: the #EXTINF row with its attributes, the extras verbatim, then
// the URL row.
func (c *Channel) M3UPlusEntry() string {
	var entry strings.Builder
	entry.WriteString("#EXTINF:")
	entry.WriteString(c.Duration)
	c.Attrs.Each(func(name, value string) bool {
		// Values are written verbatim: the format has no escaping, and
		// embedded quotes must survive a round trip untouched.
		entry.WriteString(fmt.Sprintf(" %s=\"%s\"", name, value))
		return true
	})
	entry.WriteString(",")
	entry.WriteString(c.Name)
	entry.WriteString("\n")
	for _, extra := range c.Extras {
		entry.WriteString(extra)
		entry.WriteString("\n")
	}
	entry.WriteString(c.URL)
	entry.WriteString("\n")
	return entry.String()
}

// M3U8Entry renders the channel as a plain M3U entry, dropping attributes
// and extras.
func (c *Channel) M3U8Entry() string {
	var entry strings.Builder
	entry.WriteString("#EXTINF:")
	entry.WriteString(c.Duration)
	entry.WriteString(",")
	entry.WriteString(c.Name)
	entry.WriteString("\n")
	entry.WriteString(c.URL)
	entry.WriteString("\n")
	return entry.String()
}
