package generation

import "errors"

// ErrGeneration wraps every failure mode of producing a round: transport
// errors, empty or malformed model output, and missing images. Callers only
// ever need to know that the round as a whole failed.
var ErrGeneration = errors.New("round generation failed")
