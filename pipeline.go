package opine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/de"
	"github.com/aaaton/golem/v4/dicts/en"
)

// A Pipeline turns raw text into sentences and the sentences into tokens
// carrying lemma, part of speech and stopword flag.
type Pipeline interface {
	Segment(text string) []Sentence
	Tokenize(sentence Sentence) []Token
}

// A Lemmatizer returns the dictionary form of a word.
type Lemmatizer interface {
	Lemma(word string) string
}

// A PipelineOpt changes a component of the pipeline created by NewPipeline.
type PipelineOpt func(*pipeline)

// UsingTokenizer specifies the Tokenizer to use.
func UsingTokenizer(tokenizer Tokenizer) PipelineOpt {
	return func(p *pipeline) {
		p.tokenizer = tokenizer
	}
}

// UsingSegmenter specifies the sentence Segmenter to use.
func UsingSegmenter(segmenter Segmenter) PipelineOpt {
	return func(p *pipeline) {
		p.segmenter = segmenter
	}
}

// UsingTagger specifies the part-of-speech Tagger to use.
func UsingTagger(tagger Tagger) PipelineOpt {
	return func(p *pipeline) {
		p.tagger = tagger
	}
}

// UsingLemmatizer specifies the Lemmatizer to use.
func UsingLemmatizer(lemmatizer Lemmatizer) PipelineOpt {
	return func(p *pipeline) {
		p.lemmatizer = lemmatizer
	}
}

type pipeline struct {
	language   Language
	segmenter  Segmenter
	tokenizer  Tokenizer
	tagger     Tagger
	lemmatizer Lemmatizer
}

// NewPipeline creates the built-in pipeline for lang: punkt sentence
// segmentation, rule based tokenization and tagging, dictionary
// lemmatization and stopword detection. Languages without a dictionary use
// the lower case text as lemma.
func NewPipeline(lang Language, opts ...PipelineOpt) (Pipeline, error) {
	p := &pipeline{language: lang}
	for _, applyOpt := range opts {
		applyOpt(p)
	}

	if p.segmenter == nil {
		segmenter, err := newPunktSentenceTokenizer(lang)
		if err != nil {
			return nil, err
		}
		p.segmenter = segmenter
	}
	if p.tokenizer == nil {
		p.tokenizer = NewIterTokenizer()
	}
	if p.tagger == nil {
		p.tagger = newRuleTagger(lang)
	}
	if p.lemmatizer == nil {
		lemmatizer, err := dictionaryLemmatizer(lang)
		if err != nil {
			return nil, err
		}
		p.lemmatizer = lemmatizer
	}
	return p, nil
}

func (p *pipeline) Segment(text string) []Sentence {
	return p.segmenter.Segment(text)
}

// Tokenize returns the tokens of sentence with offsets relative to the text
// the sentence was segmented from.
func (p *pipeline) Tokenize(sentence Sentence) []Token {
	tokens := p.tokenizer.Tokenize(sentence.Text)
	for i := range tokens {
		tokens[i].Start += sentence.Start
		tokens[i].End += sentence.Start
		tokens[i].Lemma = p.lemmatizer.Lemma(tokens[i].Text)
		tokens[i].Stop = IsStopword(tokens[i].Text, p.language)
	}
	return p.tagger.Tag(tokens)
}

// lowerLemmatizer uses the lower case word as lemma.
type lowerLemmatizer struct{}

func (lowerLemmatizer) Lemma(word string) string {
	return strings.ToLower(word)
}

// golemLemmatizer looks words up in a golem dictionary. Unknown words are
// their own lemma.
type golemLemmatizer struct {
	lemmatizer *golem.Lemmatizer
}

func (g golemLemmatizer) Lemma(word string) string {
	lower := strings.ToLower(word)
	if strings.HasPrefix(lower, EmojiPrefix) {
		return lower
	}
	return g.lemmatizer.Lemma(lower)
}

var (
	lemmatizerMu    sync.Mutex
	lemmatizerCache = map[Language]Lemmatizer{}
)

// dictionaryLemmatizer loads the golem dictionary for lang once; the
// dictionaries are large.
func dictionaryLemmatizer(lang Language) (Lemmatizer, error) {
	lemmatizerMu.Lock()
	defer lemmatizerMu.Unlock()

	if cached, ok := lemmatizerCache[lang]; ok {
		return cached, nil
	}

	var pack golem.LanguagePack
	switch lang {
	case English:
		pack = en.New()
	case German:
		pack = de.New()
	default:
		return lowerLemmatizer{}, nil
	}
	lemmatizer, err := golem.New(pack)
	if err != nil {
		return nil, fmt.Errorf("error loading %s lemma dictionary: %w", lang, err)
	}
	result := golemLemmatizer{lemmatizer: lemmatizer}
	lemmatizerCache[lang] = result
	return result, nil
}
