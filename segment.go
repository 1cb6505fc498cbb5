package opine

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/data"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A Segmenter splits text into sentences.
type Segmenter interface {
	Segment(text string) []Sentence
}

// punktTrainingNames maps languages to the punkt training data shipped with
// the sentences package.
var punktTrainingNames = map[Language]string{
	Dutch:      "dutch",
	French:     "french",
	German:     "german",
	Italian:    "italian",
	Portuguese: "portuguese",
	Spanish:    "spanish",
}

// punktSentenceTokenizer is an unsupervised multilingual sentence boundary
// detector based on Kiss and Strunk's punkt algorithm.
type punktSentenceTokenizer struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

var (
	punktMu    sync.Mutex
	punktCache = map[Language]*punktSentenceTokenizer{}
)

// newPunktSentenceTokenizer returns the segmenter trained for lang. English
// uses the sentences package's own English tokenizer, which also knows
// about initials and ellipses. Languages without training data fall back to
// English.
func newPunktSentenceTokenizer(lang Language) (*punktSentenceTokenizer, error) {
	punktMu.Lock()
	defer punktMu.Unlock()

	if cached, ok := punktCache[lang]; ok {
		return cached, nil
	}

	var (
		tokenizer *sentences.DefaultSentenceTokenizer
		err       error
	)
	if name, ok := punktTrainingNames[lang]; ok {
		var b []byte
		b, err = data.Asset("data/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("error loading punkt training for %s: %w", lang, err)
		}
		var training *sentences.Storage
		training, err = sentences.LoadTraining(b)
		if err != nil {
			return nil, fmt.Errorf("error parsing punkt training for %s: %w", lang, err)
		}
		tokenizer = sentences.NewSentenceTokenizer(training)
	} else {
		tokenizer, err = english.NewSentenceTokenizer(nil)
		if err != nil {
			return nil, fmt.Errorf("error loading English punkt training: %w", err)
		}
	}

	result := &punktSentenceTokenizer{tokenizer: tokenizer}
	punktCache[lang] = result
	return result, nil
}

// Segment splits text into sentences with byte offsets into text. The
// sentence text has surrounding whitespace removed.
func (p *punktSentenceTokenizer) Segment(text string) []Sentence {
	var result []Sentence
	cursor := 0
	for _, s := range p.tokenizer.Tokenize(text) {
		sentenceText := strings.TrimSpace(s.Text)
		if sentenceText == "" {
			continue
		}
		// Locate the sentence in the original text instead of trusting the
		// offsets of the tokenizer, which refer to its own normalized input.
		start := strings.Index(text[cursor:], sentenceText)
		if start < 0 {
			start = cursor
		} else {
			start += cursor
		}
		end := min(start+len(sentenceText), len(text))
		result = append(result, Sentence{Text: sentenceText, Start: start, End: end})
		cursor = end
	}
	return result
}
