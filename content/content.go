package content

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"go-hermes/nlp"
	"go-hermes/types"
)

// MaxBodyBytes is the Cloud Natural Language per-document size cap.
const MaxBodyBytes = 1_000_000

var (
	ErrInvalidBody  = errors.New("content: body is not valid UTF-8")
	ErrBodyTooLarge = errors.New("content: body exceeds the API document size limit")
	ErrNotAnalysed  = errors.New("content: no overall sentiment yet, run Analyse first")
)

// Params is the construction input for a Content. All fields are expected;
// Author, Tags and Misc arrive as lists (a scalar in a JSON payload becomes a
// one-element list via types.StringList), Body arrives as raw bytes.
type Params struct {
	Title  string
	Author types.StringList
	Date   time.Time
	URL    string
	Body   []byte
	Origin string
	Tags   types.StringList
	Misc   types.StringList
}

// Content is a piece of web content (article, tweet, post) to be analysed
// and classified. The source metadata is fixed at construction; the
// sentiment is filled in by Analyse and Classify.
type Content struct {
	source    types.Source
	sentiment types.Sentiment
}

// New builds a Content from its source metadata. The date is stored as an
// RFC 3339 UTC string and the body as decoded text; bodies that are not
// valid UTF-8 are rejected with ErrInvalidBody.
func New(p Params) (*Content, error) {
	if !utf8.Valid(p.Body) {
		return nil, ErrInvalidBody
	}

	return &Content{
		source: types.Source{
			Title:  p.Title,
			Author: p.Author,
			Date:   p.Date.UTC().Format(time.RFC3339),
			URL:    p.URL,
			Body:   string(p.Body),
			Origin: p.Origin,
			Tags:   p.Tags,
			Misc:   p.Misc,
		},
	}, nil
}

func (c *Content) Source() types.Source { return c.source }

func (c *Content) SetSource(s types.Source) { c.source = s }

func (c *Content) Sentiment() types.Sentiment { return c.sentiment }

func (c *Content) SetSentiment(s types.Sentiment) { c.sentiment = s }

// Analyse sends the body to the sentiment endpoint and stores the overall
// score/magnitude plus one entry per sentence. A failing client call
// propagates to the caller, nothing is retried.
func (c *Content) Analyse(ctx context.Context, client nlp.LanguageClient) error {
	if len(c.source.Body) > MaxBodyBytes {
		return ErrBodyTooLarge
	}

	sentiment, err := nlp.AnalyzeSentiment(ctx, client, c.source.Body)
	if err != nil {
		return err
	}

	// Replaces any previous analysis, including categories.
	c.sentiment = sentiment
	return nil
}

// Classify sends the body to the classification endpoint and stores the
// detected categories under the overall sentiment. Analyse must have run
// first (or the sentiment been set by hand); when the API detects no
// category a single empty one with confidence 1 is stored so the field is
// never empty.
func (c *Content) Classify(ctx context.Context, client nlp.LanguageClient) error {
	if c.sentiment.Overall == nil {
		return ErrNotAnalysed
	}
	if len(c.source.Body) > MaxBodyBytes {
		return ErrBodyTooLarge
	}

	categories, err := nlp.ClassifyText(ctx, client, c.source.Body)
	if err != nil {
		return err
	}

	if len(categories) == 0 {
		categories = []types.Category{{Category: "", Confidence: 1}}
	}
	c.sentiment.Overall.Categories = categories
	return nil
}

// JSONify returns the serializable {source, sentiment} document. With
// automagic set it runs Analyse and Classify against client first.
func (c *Content) JSONify(ctx context.Context, client nlp.LanguageClient, automagic bool) (types.Document, error) {
	if automagic {
		if err := c.Analyse(ctx, client); err != nil {
			return types.Document{}, err
		}
		if err := c.Classify(ctx, client); err != nil {
			return types.Document{}, err
		}
	}

	return types.Document{Source: c.source, Sentiment: c.sentiment}, nil
}
