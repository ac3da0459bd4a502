package types

// Sentiment holds the analysis results for a single piece of content:
// the document-level sentiment plus one entry per sentence.
type Sentiment struct {
	Overall *OverallSentiment   `json:"overall,omitempty"`
	Content []SentenceSentiment `json:"content,omitempty"`
}

// OverallSentiment is the document-level score. Categories is filled in by
// classification and always has at least one entry afterwards.
type OverallSentiment struct {
	Score      float32    `json:"score"`
	Magnitude  float32    `json:"magnitude"`
	Categories []Category `json:"categories,omitempty"`
}

// SentenceSentiment scores one sentence of the body text.
type SentenceSentiment struct {
	Text      string  `json:"text"`
	Score     float32 `json:"score"`
	Magnitude float32 `json:"magnitude"`
}

// Category is a topical label with a 0-1 confidence.
type Category struct {
	Category   string  `json:"category"`
	Confidence float32 `json:"confidence"`
}
