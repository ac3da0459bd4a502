package types

import "encoding/json"

// StringList is a []string that also accepts a single JSON string, so payload
// fields like "author" can be either "jane" or ["jane", "joe"]. A scalar is
// stored as a one-element list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}

// Source holds the metadata and body of a piece of web content.
type Source struct {
	Title  string     `json:"title"`
	Author StringList `json:"author"`
	Date   string     `json:"date"`
	URL    string     `json:"url"`
	Body   string     `json:"body"`
	Origin string     `json:"origin"`
	Tags   StringList `json:"tags"`
	Misc   StringList `json:"misc"`
}

// Document is the serialized form of an analysed Content, the shape consumers
// receive and store.
type Document struct {
	Source    Source    `json:"source"`
	Sentiment Sentiment `json:"sentiment"`
}
