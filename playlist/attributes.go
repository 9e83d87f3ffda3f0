package playlist

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// Attributes is a string-to-string map that remembers insertion order, so
// that a playlist re-serializes with its attributes in the same order they
// were found in the source file. Setting an existing key changes its value
// but keeps its original position.
type Attributes struct {
	keys   []string
	values map[string]string
}

func NewAttributes() *Attributes {
	return &Attributes{
		values: make(map[string]string),
	}
}

func (a *Attributes) Len() int {
	return len(a.keys)
}

func (a *Attributes) Get(name string) (string, bool) {
	value, ok := a.values[name]
	return value, ok
}

// Set inserts the attribute or, if the key is already present, updates its
// value in place.
func (a *Attributes) Set(name string, value string) {
	if _, ok := a.values[name]; !ok {
		a.keys = append(a.keys, name)
	}
	a.values[name] = value
}

// Add inserts a new attribute and fails if the key is already present.
func (a *Attributes) Add(name string, value string) error {
	if existing, ok := a.values[name]; ok {
		return fmt.Errorf("%w: %s is already present with value %q", ErrAttributeAlreadyPresent, name, existing)
	}
	a.Set(name, value)
	return nil
}

// Update changes the value of an existing attribute and fails if the key is
// not present.
func (a *Attributes) Update(name string, value string) error {
	if _, ok := a.values[name]; !ok {
		return fmt.Errorf("%w: %s", ErrAttributeNotFound, name)
	}
	a.values[name] = value
	return nil
}

// Remove deletes the attribute and returns its former value.
func (a *Attributes) Remove(name string) (string, error) {
	value, ok := a.values[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrAttributeNotFound, name)
	}
	delete(a.values, name)
	for i, key := range a.keys {
		if key == name {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
	return value, nil
}

// Keys returns the attribute names in insertion order.
func (a *Attributes) Keys() []string {
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// Each calls fn for every attribute in insertion order until fn returns
// false.
func (a *Attributes) Each(fn func(name string, value string) bool) {
	for _, key := range a.keys {
		if !fn(key, a.values[key]) {
			return
		}
	}
}

func (a *Attributes) Clone() *Attributes {
	clone := NewAttributes()
	for _, key := range a.keys {
		clone.Set(key, a.values[key])
	}
	return clone
}

func (a *Attributes) Equal(other *Attributes) bool {
	if a == nil || other == nil {
		return a == other
	}
	if len(a.keys) != len(other.keys) {
		return false
	}
	for i, key := range a.keys {
		if other.keys[i] != key || other.values[key] != a.values[key] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the attributes as a JSON object whose members appear
// in insertion order.
func (a *Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		encodedValue, err := json.Marshal(a.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving the order of its members.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	a.keys = nil
	a.values = make(map[string]string)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("attributes: expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("attributes: expected string key, got %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return err
		}
		a.Set(key, value)
	}
	_, err = dec.Token()
	return err
}
