package game

import "math/rand"

// shuffleOptions builds the four answer options in random order. The correct
// name appears exactly once because generation rejects payloads whose
// distractors contain it.
func shuffleOptions(correct string, distractors []string) []string {
	options := append([]string{correct}, distractors...)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
