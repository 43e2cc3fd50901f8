package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Uncategorized is the reserved fallback category. It is always present in a
// dictionary and never participates in keyword matching.
const Uncategorized = "Uncategorized"

var (
	ErrNotAnObject      = errors.New("category document must be a JSON object")
	ErrKeywordsNotArray = errors.New("category keywords must be a list of strings")
)

// CategoryDictionary is an ordered mapping of category name to keyword list.
// Iteration order is insertion order, which is also the matching priority.
type CategoryDictionary struct {
	names    []string
	keywords map[string][]string
}

// NewCategoryDictionary returns an empty dictionary
func NewCategoryDictionary() *CategoryDictionary {
	return &CategoryDictionary{keywords: make(map[string][]string)}
}

// DefaultCategoryDictionary returns the initial dictionary: {"Uncategorized": []}
func DefaultCategoryDictionary() *CategoryDictionary {
	d := NewCategoryDictionary()
	d.Add(Uncategorized)
	return d
}

// Names returns the category names in dictionary order
func (d *CategoryDictionary) Names() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

// Keywords returns a copy of the keyword list for a category
func (d *CategoryDictionary) Keywords(name string) ([]string, bool) {
	kws, ok := d.keywords[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(kws))
	copy(out, kws)
	return out, true
}

// Has reports whether the category exists (exact, case-sensitive match)
func (d *CategoryDictionary) Has(name string) bool {
	_, ok := d.keywords[name]
	return ok
}

func (d *CategoryDictionary) Len() int {
	return len(d.names)
}

// Add appends a new category with the given keywords. It returns false and
// leaves the dictionary untouched when the name already exists.
func (d *CategoryDictionary) Add(name string, keywords ...string) bool {
	if d.Has(name) {
		return false
	}
	kws := make([]string, len(keywords))
	copy(kws, keywords)
	d.names = append(d.names, name)
	d.keywords[name] = kws
	return true
}

// AppendKeyword adds a keyword to an existing category. Duplicate checks are
// the caller's responsibility.
func (d *CategoryDictionary) AppendKeyword(name, keyword string) bool {
	kws, ok := d.keywords[name]
	if !ok {
		return false
	}
	d.keywords[name] = append(kws, keyword)
	return true
}

// EnsureUncategorized inserts the reserved category at the front when it is
// missing and reports whether it did so.
func (d *CategoryDictionary) EnsureUncategorized() bool {
	if d.Has(Uncategorized) {
		return false
	}
	d.names = append([]string{Uncategorized}, d.names...)
	d.keywords[Uncategorized] = []string{}
	return true
}

// Clone returns a deep copy
func (d *CategoryDictionary) Clone() *CategoryDictionary {
	c := &CategoryDictionary{
		names:    make([]string, len(d.names)),
		keywords: make(map[string][]string, len(d.keywords)),
	}
	copy(c.names, d.names)
	for name, kws := range d.keywords {
		cp := make([]string, len(kws))
		copy(cp, kws)
		c.keywords[name] = cp
	}
	return c
}

// MarshalJSON writes the dictionary as a JSON object with keys in dictionary
// order. Empty keyword lists are written as [] rather than null.
func (d *CategoryDictionary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalUnescaped(name)
		if err != nil {
			return nil, err
		}
		kws := d.keywords[name]
		if kws == nil {
			kws = []string{}
		}
		val, err := marshalUnescaped(kws)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of string -> list of strings, keeping the
// key order of the document. A repeated key keeps its first position and its
// last value.
func (d *CategoryDictionary) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotAnObject
	}

	parsed := NewCategoryDictionary()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return ErrNotAnObject
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '[' {
			return fmt.Errorf("category %q: %w", name, ErrKeywordsNotArray)
		}
		var elems []*string
		if err := json.Unmarshal(raw, &elems); err != nil {
			return fmt.Errorf("category %q: %w", name, ErrKeywordsNotArray)
		}
		kws := make([]string, 0, len(elems))
		for _, kw := range elems {
			if kw == nil {
				return fmt.Errorf("category %q: null keyword: %w", name, ErrKeywordsNotArray)
			}
			kws = append(kws, *kw)
		}

		if parsed.Has(name) {
			parsed.keywords[name] = kws
			continue
		}
		parsed.names = append(parsed.names, name)
		parsed.keywords[name] = kws
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after category document")
	}

	d.names = parsed.names
	d.keywords = parsed.keywords
	return nil
}

func marshalUnescaped(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
