package lessons

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// A fill-in-blank question always carries an answers array, even an empty
// one. Every other field stays omitted when empty.

func (q Question) MarshalJSON() ([]byte, error) {
	type plain Question
	if q.Type != TypeFillInBlank || len(q.Answers) > 0 {
		return json.Marshal(plain(q))
	}
	return json.Marshal(struct {
		plain
		Answers []string `json:"answers"`
	}{plain(q), []string{}})
}

func (q Question) MarshalYAML() (interface{}, error) {
	type plain Question
	if q.Type != TypeFillInBlank || len(q.Answers) > 0 {
		return plain(q), nil
	}
	var n yaml.Node
	if err := n.Encode(plain(q)); err != nil {
		return nil, err
	}
	n.Content = append(n.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "answers"},
		&yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle},
	)
	return &n, nil
}
