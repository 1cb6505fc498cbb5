package opine

import (
	"context"
)

// A DocOpt represents a setting that changes the document creation process.
//
// For example, it might analyze German text:
//
//	doc, err := opine.NewDocument("...", opine.WithLanguage(opine.German))
type DocOpt func(opts *DocOpts)

// DocOpts controls the Document creation process.
type DocOpts struct {
	Pipeline   Pipeline        // Pipeline to use, built from Language if nil
	Normalizer *Normalizer     // Normalizer applied to the text first, if any
	Language   Language        // Document language
	Context    context.Context // Context for cancellation
}

// UsingPipeline specifies the Pipeline to use.
func UsingPipeline(pipeline Pipeline) DocOpt {
	return func(opts *DocOpts) {
		opts.Pipeline = pipeline
	}
}

// WithNormalizer rewrites the text with normalizer before segmenting it.
func WithNormalizer(normalizer *Normalizer) DocOpt {
	return func(opts *DocOpts) {
		opts.Normalizer = normalizer
	}
}

// WithLanguage sets the document language.
func WithLanguage(lang Language) DocOpt {
	return func(opts *DocOpts) {
		opts.Language = lang
	}
}

// WithContext sets the context for document processing.
func WithContext(ctx context.Context) DocOpt {
	return func(opts *DocOpts) {
		opts.Context = ctx
	}
}

// A Document represents a parsed body of text.
type Document struct {
	Text     string
	Language Language

	sentences []Sentence
	tokens    [][]Token
}

// Sentences returns `doc`'s sentences.
func (doc *Document) Sentences() []Sentence {
	return doc.sentences
}

// Tokens returns the tokens of the i-th sentence.
func (doc *Document) Tokens(i int) []Token {
	return doc.tokens[i]
}

// AllTokens returns the tokens of all sentences in order.
func (doc *Document) AllTokens() []Token {
	var result []Token
	for _, tokens := range doc.tokens {
		result = append(result, tokens...)
	}
	return result
}

// NewDocument segments and tokenizes text according to the user-specified
// options.
//
// For example,
//
//	doc, err := opine.NewDocument("...")
func NewDocument(text string, opts ...DocOpt) (*Document, error) {
	base := DocOpts{
		Language: English,
		Context:  context.Background(),
	}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	if base.Pipeline == nil {
		pipeline, err := NewPipeline(base.Language)
		if err != nil {
			return nil, err
		}
		base.Pipeline = pipeline
	}

	if base.Normalizer != nil {
		text = base.Normalizer.Normalize(text)
	}
	doc := Document{Text: text, Language: base.Language}
	doc.sentences = base.Pipeline.Segment(text)
	doc.tokens = make([][]Token, 0, len(doc.sentences))
	for _, sentence := range doc.sentences {
		if err := base.Context.Err(); err != nil {
			return nil, err
		}
		doc.tokens = append(doc.tokens, base.Pipeline.Tokenize(sentence))
	}

	return &doc, nil
}
