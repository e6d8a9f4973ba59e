package lessons

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePairs_RoundTrip(t *testing.T) {
	in := "k1: v1;  k2 :v2 ; k3: v3"
	p := ParsePairs(in)
	out := FormatPairs(p)
	assert.Equal(t, "k1: v1; k2: v2; k3: v3", out)
	assert.Equal(t, p.Items, ParsePairs(out).Items)
}

func TestParsePairs_DuplicateKeyReplaces(t *testing.T) {
	p := ParsePairs("a: 1; b: 2; a: 3")
	assert.Equal(t, []Pair{{Term: "a", Definition: "3"}, {Term: "b", Definition: "2"}}, p.Items)
	v, ok := p.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestPairs_JSONObjectKeepsOrder(t *testing.T) {
	var p Pairs
	require.NoError(t, json.Unmarshal([]byte(`{"zeta": "last", "alpha": "first"}`), &p))
	assert.Equal(t, PairsObject, p.Form)
	assert.Equal(t, "zeta", p.Items[0].Term)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"zeta":"last","alpha":"first"}`, string(b))
	assert.True(t, strings.Index(string(b), "zeta") < strings.Index(string(b), "alpha"))
}

func TestPairs_JSONList(t *testing.T) {
	var p Pairs
	require.NoError(t, json.Unmarshal([]byte(`[{"term":"a","definition":"b"}]`), &p))
	assert.Equal(t, PairsList, p.Form)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"term":"a","definition":"b"}]`, string(b))
}

func TestPairs_YAMLRoundTrip(t *testing.T) {
	q := Question{Type: TypeMatching, Pairs: ParsePairs("Yes: True; b: 2")}
	b, err := yaml.Marshal(q)
	require.NoError(t, err)

	var back Question
	require.NoError(t, yaml.Unmarshal(b, &back))
	require.NotNil(t, back.Pairs)
	assert.Equal(t, PairsObject, back.Pairs.Form)
	assert.Equal(t, q.Pairs.Items, back.Pairs.Items)

	list := Question{Type: TypeMatching, Pairs: &Pairs{Form: PairsList, Items: []Pair{{Term: "t", Definition: "d"}}}}
	b, err = yaml.Marshal(list)
	require.NoError(t, err)
	back = Question{}
	require.NoError(t, yaml.Unmarshal(b, &back))
	assert.Equal(t, PairsList, back.Pairs.Form)
	assert.Equal(t, list.Pairs.Items, back.Pairs.Items)
}
