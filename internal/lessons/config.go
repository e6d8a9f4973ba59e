package lessons

// Config holds normalization settings.
type Config struct {
	// StrictAnswers fails conversion with *AmbiguousAnswerError instead of
	// falling back to option "A" when the correct answer cannot be resolved.
	StrictAnswers bool
}

// DefaultConfig returns the lenient settings the stored collection was built with.
func DefaultConfig() Config {
	return Config{StrictAnswers: false}
}
