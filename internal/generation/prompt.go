package generation

import "fmt"

const questionPrompt = `
You are the question writer for a dinosaur guessing game.

Pick one real dinosaur genus and produce a single quiz round about it.

Rules:
1. Lean toward lesser-known genera. Avoid picking Tyrannosaurus, Velociraptor,
   Stegosaurus or Triceratops unless the fun fact is genuinely surprising.
2. "correctName" is the genus name only, capitalized, no species epithet.
3. "distractors" are exactly 3 other real dinosaur genus names. They must be
   plausible confusions: similar era, body plan or name shape. None of them
   may be the correct genus.
4. "funFact" is one or two sentences a player would enjoy learning after
   answering. It must not contain the genus name of the answer.
5. "visualDescription" describes the animal's appearance and a natural scene
   around it, written for an illustrator: posture, distinctive features,
   colors, environment, lighting.

Vary the era, the diet and the body plan between calls.
`

// BuildImagePrompt combines the genus name and the question's visual
// description into the prompt for the image model. The no-text instruction
// keeps the picture from spelling out the answer.
func BuildImagePrompt(name, visualDescription string) string {
	return fmt.Sprintf(
		"A vivid, detailed illustration of the dinosaur %s in its natural habitat. %s "+
			"Natural documentary style, dramatic lighting, no text, no labels, no watermarks.",
		name, visualDescription,
	)
}
