package playlist

import (
	json "github.com/goccy/go-json"
)

// jsonEnvelope is the interchange shape used by MarshalJSON/UnmarshalJSON
// and by the iptv2json/json2iptv converters.
type jsonEnvelope struct {
	Attributes *Attributes `json:"attributes"`
	Channels   []*Channel  `json:"channels"`
}

func (p *Playlist) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonEnvelope{
		Attributes: p.attributes,
		Channels:   p.channels,
	})
}

// MarshalJSONIndent is MarshalJSON with human-readable indentation.
func (p *Playlist) MarshalJSONIndent() ([]byte, error) {
	return json.MarshalIndent(jsonEnvelope{
		Attributes: p.attributes,
		Channels:   p.channels,
	}, "", "  ")
}

func (p *Playlist) UnmarshalJSON(data []byte) error {
	envelope := jsonEnvelope{
		Attributes: NewAttributes(),
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	p.attributes = envelope.Attributes
	if p.attributes == nil {
		p.attributes = NewAttributes()
	}
	p.channels = envelope.Channels
	for _, channel := range p.channels {
		if channel.Attrs == nil {
			channel.Attrs = NewAttributes()
		}
	}
	return nil
}

// FromJSON builds a playlist from the JSON produced by MarshalJSON.
func FromJSON(data []byte) (*Playlist, error) {
	pl := New()
	if err := pl.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return pl, nil
}
