package conversation

import "strings"

// goalKeywords mark a message as an intention ("want", "plan", "goal",
// "will", "going to").
var goalKeywords = []string{"хочу", "планирую", "цель", "буду", "собираюсь"}

// IsGoal reports whether text contains any goal keyword, case-insensitively.
// A single hit is enough.
func IsGoal(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range goalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
