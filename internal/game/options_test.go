package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShuffleOptionsIsPermutation(t *testing.T) {
	distractors := []string{"Allosaurus", "Brachiosaurus", "Diplodocus"}

	for i := 0; i < 50; i++ {
		options := shuffleOptions("Spinosaurus", distractors)

		assert.Len(t, options, 4)
		assert.ElementsMatch(t,
			[]string{"Spinosaurus", "Allosaurus", "Brachiosaurus", "Diplodocus"},
			options)
	}
}

func TestShuffleOptionsKeepsCorrectExactlyOnce(t *testing.T) {
	distractors := []string{"Allosaurus", "Brachiosaurus", "Diplodocus"}

	for i := 0; i < 50; i++ {
		options := shuffleOptions("Spinosaurus", distractors)

		count := 0
		for _, opt := range options {
			if opt == "Spinosaurus" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	}
}

func TestShuffleOptionsDoesNotMutateDistractors(t *testing.T) {
	distractors := []string{"Allosaurus", "Brachiosaurus", "Diplodocus"}

	shuffleOptions("Spinosaurus", distractors)

	assert.Equal(t, []string{"Allosaurus", "Brachiosaurus", "Diplodocus"}, distractors)
}
