package lessons

// Stage-based submissions predate the comprehensive format and support a
// smaller set of kinds per stage sub-list.

// convertStageExercise converts an entry of a stage's exercises list.
func (c *converter) convertStageExercise(ex map[string]any) (*Question, error) {
	typ, _ := ex["type"].(string)
	switch typ {
	case "matching":
		return c.keep(matching(ex), nil)
	case "true-false":
		return c.keep(trueFalse(ex), nil)
	case "fill-in":
		return c.keep(fillIn(ex), nil)
	case "multiple-choice":
		return c.keep(c.multipleChoice(typ, ex, ex, stringFromAny(ex["question"])))
	default:
		return c.drop(), nil
	}
}

// convertStageScenario converts an entry of a stage's scenarios list.
// Scenarios need no type tag; conversation and reverse-scenario entries are
// not supported in this format and are dropped.
func (c *converter) convertStageScenario(sc map[string]any) (*Question, error) {
	if sc == nil {
		return c.drop(), nil
	}
	typ, _ := sc["type"].(string)
	if typ == "conversation" || typ == "reverse-scenario" {
		return c.drop(), nil
	}
	text := narrate("", stringFromAny(sc["scene"]), stringFromAny(sc["question"]))
	return c.keep(c.multipleChoice("scenario", sc, sc, text))
}

// convertStageActivity converts an entry of a stage's activities list.
func (c *converter) convertStageActivity(act map[string]any) (*Question, error) {
	typ, _ := act["type"].(string)
	switch typ {
	case "build-sentence":
		return c.keep(buildSentence(act, ""), nil)
	case "boss-scenario":
		text := narrate("", stringFromAny(act["scene"]), stringFromAny(act["question"]))
		return c.keep(c.multipleChoice(typ, act, act, text))
	default:
		// rapid-fire and unknown kinds
		return c.drop(), nil
	}
}
