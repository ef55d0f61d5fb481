package interview

import (
	"math/rand"
	"sync"
)

// Acknowledgment phrases the interviewer uses after an answer. No answer
// quality assessment happens here; the phrase is filler between turns.
var ackPhrases = map[string][]string{
	"english": {
		"Thank you for your answer.",
		"That's a good point.",
		"Interesting perspective.",
		"I understand your approach.",
		"Thank you for sharing that.",
	},
	"hindi": {
		"आपके उत्तर के लिए धन्यवाद।",
		"यह एक अच्छा point है।",
		"दिलचस्प perspective है।",
		"मैं आपका approach समझता हूं।",
		"यह share करने के लिए धन्यवाद।",
	},
}

// AckPicker chooses an acknowledgment phrase. The randomness source is
// injected so tests can fix the selection. Safe for concurrent use across
// connections.
type AckPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewAckPicker(src rand.Source) *AckPicker {
	return &AckPicker{rng: rand.New(src)}
}

// Pick returns a phrase in the given language, falling back to English for
// unknown languages.
func (p *AckPicker) Pick(language string) string {
	phrases, ok := ackPhrases[language]
	if !ok || len(phrases) == 0 {
		phrases = ackPhrases["english"]
	}
	p.mu.Lock()
	n := p.rng.Intn(len(phrases))
	p.mu.Unlock()
	return phrases[n]
}
