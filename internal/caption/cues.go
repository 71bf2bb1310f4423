package caption

import "strings"

// constraints are the generation constraints derived from free-text cues in
// the topic.
type constraints struct {
	Lines int    // requested non-empty lines, 1-3
	Tone  string // funny, inspirational, professional or engaging
	Emoji bool   // false when the topic opts out
}

const (
	defaultLines = 2
	defaultTone  = "engaging"
)

// lineCues maps line-count phrases to the requested count. Later matches
// win so "1 line" inside a longer "3 lines" request cannot shadow it.
var lineCues = []struct {
	phrase string
	lines  int
}{
	{"1 line", 1},
	{"one line", 1},
	{"2 line", 2},
	{"two line", 2},
	{"3 line", 3},
	{"three line", 3},
}

var toneCues = []string{"funny", "inspirational", "professional"}

var noEmojiCues = []string{"no emoji", "without emoji", "no emojis"}

// parseCues derives generation constraints from keyword matches in the
// topic. Only the documented cues are recognized; anything else falls back
// to the defaults.
func parseCues(topic string) constraints {
	lower := strings.ToLower(topic)

	c := constraints{Lines: defaultLines, Tone: defaultTone, Emoji: true}
	for _, cue := range lineCues {
		if strings.Contains(lower, cue.phrase) {
			c.Lines = cue.lines
		}
	}
	for _, tone := range toneCues {
		if strings.Contains(lower, tone) {
			c.Tone = tone
			break
		}
	}
	for _, cue := range noEmojiCues {
		if strings.Contains(lower, cue) {
			c.Emoji = false
			break
		}
	}
	return c
}
