package generation

import "encoding/base64"

// Question is the structured payload the text model returns for one round.
// The field names are part of the model contract via the response schema.
type Question struct {
	CorrectName       string   `json:"correctName"`
	Distractors       []string `json:"distractors"`
	FunFact           string   `json:"funFact"`
	VisualDescription string   `json:"visualDescription"`
}

// Image is one generated illustration, kept in memory only.
type Image struct {
	MIMEType string
	Data     []byte
}

// DataURI encodes the image for direct use in an <img> src attribute, so no
// image ever touches disk or a bucket.
func (i *Image) DataURI() string {
	return "data:" + i.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Round is a fully assembled question plus its illustration.
type Round struct {
	Question Question
	ImageURI string
}
