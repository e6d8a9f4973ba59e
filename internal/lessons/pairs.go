package lessons

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// PairsForm records which of the two accepted shapes a matching question uses.
type PairsForm int

const (
	// PairsObject serializes as {"prompt": "answer", ...} in insertion order.
	PairsObject PairsForm = iota
	// PairsList serializes as [{"term": ..., "definition": ...}, ...].
	PairsList
)

// Pair is one prompt/answer association of a matching question.
type Pair struct {
	Term       string `json:"term" yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
}

// Pairs is the ordered pair set of a matching question together with its
// canonical form. Object-form keys are unique; setting an existing key
// replaces its value in place.
type Pairs struct {
	Form  PairsForm
	Items []Pair
}

// NewObjectPairs returns an empty object-form pair set.
func NewObjectPairs() *Pairs {
	return &Pairs{Form: PairsObject, Items: []Pair{}}
}

// Set adds or replaces term in an object-form set; list-form sets append.
func (p *Pairs) Set(term, definition string) {
	if p.Form == PairsObject {
		for i := range p.Items {
			if p.Items[i].Term == term {
				p.Items[i].Definition = definition
				return
			}
		}
	}
	p.Items = append(p.Items, Pair{Term: term, Definition: definition})
}

// Get returns the definition for term.
func (p *Pairs) Get(term string) (string, bool) {
	for _, it := range p.Items {
		if it.Term == term {
			return it.Definition, true
		}
	}
	return "", false
}

func (p *Pairs) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Items)
}

// ParsePairs parses the legacy "key: value; key: value" encoding.
// Entries missing a key or a value after trimming are dropped.
func ParsePairs(s string) *Pairs {
	out := NewObjectPairs()
	for _, item := range strings.Split(s, ";") {
		parts := strings.Split(strings.TrimSpace(item), ":")
		key := strings.TrimSpace(parts[0])
		value := ""
		if len(parts) > 1 {
			value = strings.TrimSpace(parts[1])
		}
		if key == "" || value == "" {
			continue
		}
		out.Set(key, value)
	}
	return out
}

// FormatPairs renders pairs back into the "key: value; key: value" encoding.
func FormatPairs(p *Pairs) string {
	if p == nil {
		return ""
	}
	items := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, it.Term+": "+it.Definition)
	}
	return strings.Join(items, "; ")
}

func (p Pairs) MarshalJSON() ([]byte, error) {
	if p.Form == PairsList {
		items := p.Items
		if items == nil {
			items = []Pair{}
		}
		return json.Marshal(items)
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, it := range p.Items {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(it.Term)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(it.Definition)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *Pairs) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = Pairs{}
		return nil
	}
	switch trimmed[0] {
	case '[':
		var items []Pair
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("decode pair list: %w", err)
		}
		*p = Pairs{Form: PairsList, Items: items}
		return nil
	case '{':
		// Decode token by token so the source key order survives.
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		if _, err := dec.Token(); err != nil {
			return fmt.Errorf("decode pair object: %w", err)
		}
		out := NewObjectPairs()
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return fmt.Errorf("decode pair key: %w", err)
			}
			key, _ := tok.(string)
			var val any
			if err := dec.Decode(&val); err != nil {
				return fmt.Errorf("decode pair %q: %w", key, err)
			}
			out.Set(key, stringFromAny(val))
		}
		*p = *out
		return nil
	default:
		return fmt.Errorf("pairs must be an object or a list, got %q", string(trimmed[:1]))
	}
}

func (p Pairs) MarshalYAML() (interface{}, error) {
	if p.Form == PairsList {
		items := p.Items
		if items == nil {
			items = []Pair{}
		}
		return items, nil
	}
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, it := range p.Items {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: it.Term},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: it.Definition},
		)
	}
	return n, nil
}

func (p *Pairs) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []Pair
		if err := value.Decode(&items); err != nil {
			return fmt.Errorf("decode pair list: %w", err)
		}
		*p = Pairs{Form: PairsList, Items: items}
	case yaml.MappingNode:
		out := NewObjectPairs()
		for i := 0; i+1 < len(value.Content); i += 2 {
			out.Set(value.Content[i].Value, value.Content[i+1].Value)
		}
		*p = *out
	default:
		return fmt.Errorf("pairs must be a mapping or a sequence (line %d)", value.Line)
	}
	return nil
}
