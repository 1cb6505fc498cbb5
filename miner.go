package opine

import (
	"iter"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// An Annotation is what the opinion miner learned about one token of a
// sentence: either a modifier flag, or a topic and rating from the lexicon
// or the language's rated words.
type Annotation[T Named] struct {
	Topic         T
	HasTopic      bool
	Rating        Rating
	IsNegation    bool
	IsIntensifier bool
	IsDiminisher  bool
}

// IsModifier reports whether the token changes the rating of a later token.
func (a Annotation[T]) IsModifier() bool {
	return a.IsNegation || a.IsIntensifier || a.IsDiminisher
}

// IsEssential reports whether the token takes part in combining a rating.
func (a Annotation[T]) IsEssential() bool {
	return a.HasTopic || a.Rating != NoRating || a.IsModifier()
}

// An Opinion is the topic and rating found in a sentence. Both are optional.
type Opinion[T Named] struct {
	Topic    T
	HasTopic bool
	Rating   Rating
	Sentence Sentence
}

// A MinerOpt changes a setting of an OpinionMiner.
type MinerOpt func(*minerOpts)

type minerOpts struct {
	logger        *zap.Logger
	synonyms      Replacements
	abbreviations Replacements
	emoticons     *EmoticonTable
}

// WithLogger logs replacements and the opinion of each sentence at debug
// level.
func WithLogger(logger *zap.Logger) MinerOpt {
	return func(opts *minerOpts) {
		opts.logger = logger
	}
}

// WithSynonyms replaces synonyms before analysis.
func WithSynonyms(synonyms Replacements) MinerOpt {
	return func(opts *minerOpts) {
		opts.synonyms = synonyms
	}
}

// WithAbbreviations expands abbreviations before analysis.
func WithAbbreviations(abbreviations Replacements) MinerOpt {
	return func(opts *minerOpts) {
		opts.abbreviations = abbreviations
	}
}

// WithEmoticons unifies emoticons and emojis before analysis and rates them
// like the language's positive and negative words.
func WithEmoticons(emoticons *EmoticonTable) MinerOpt {
	return func(opts *minerOpts) {
		opts.emoticons = emoticons
	}
}

// An OpinionMiner finds the topic and rating of each sentence of a text.
// It holds no state between calls and is safe for concurrent use if its
// Pipeline is.
type OpinionMiner[T Named] struct {
	pipeline       Pipeline
	lexicon        *Lexicon[T]
	sentiment      *LanguageSentiment
	normalizer     *Normalizer
	emoticonRating map[string]Rating
	logger         *zap.Logger
}

// NewOpinionMiner creates a miner using pipeline to split text into
// sentences and tokens, lexicon to find topics and ratings, and sentiment
// for modifiers, lexicon independent rated words and idioms.
func NewOpinionMiner[T Named](pipeline Pipeline, lexicon *Lexicon[T], sentiment *LanguageSentiment, opts ...MinerOpt) (*OpinionMiner[T], error) {
	base := minerOpts{logger: zap.NewNop()}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.logger == nil {
		base.logger = zap.NewNop()
	}

	idioms, err := CompileIdioms(sentiment)
	if err != nil {
		return nil, err
	}
	miner := &OpinionMiner[T]{
		pipeline:  pipeline,
		lexicon:   lexicon,
		sentiment: sentiment,
		normalizer: &Normalizer{
			Abbreviations: base.abbreviations,
			Emoticons:     base.emoticons,
			Synonyms:      base.synonyms,
			Idioms:        idioms,
			Logger:        base.logger,
		},
		logger: base.logger,
	}
	if base.emoticons != nil {
		miner.emoticonRating = base.emoticons.Ratings()
	}
	return miner, nil
}

// Annotate returns one annotation per token. The first rule that applies
// wins: intensifier, diminisher, negation, lexicon entry, negative word,
// positive word, emoticon.
func (m *OpinionMiner[T]) Annotate(tokens []Token) []Annotation[T] {
	result := make([]Annotation[T], len(tokens))
	for i, token := range tokens {
		annotation := &result[i]
		switch {
		case m.sentiment.IsIntensifier(token):
			annotation.IsIntensifier = true
		case m.sentiment.IsDiminisher(token):
			annotation.IsDiminisher = true
		case m.sentiment.IsNegation(token):
			annotation.IsNegation = true
		default:
			if entry, found := m.lexicon.EntryFor(token); found {
				annotation.Topic = entry.Topic
				annotation.HasTopic = entry.HasTopic
				annotation.Rating = entry.Rating
			} else {
				annotation.Rating = m.defaultRating(token)
			}
		}
	}
	return result
}

func (m *OpinionMiner[T]) defaultRating(token Token) Rating {
	lemma := strings.ToLower(token.Lemma)
	if lemma == "" {
		lemma = strings.ToLower(token.Text)
	}
	if rating, found := m.sentiment.NegativeRating(lemma); found {
		return rating
	}
	if rating, found := m.sentiment.PositiveRating(lemma); found {
		return rating
	}
	return m.emoticonRating[lemma]
}

// Combine reduces the annotations of a sentence to one topic and rating.
//
// The first rated annotation is the anchor. Going left from it, each
// adjacent modifier is folded into the anchor's rating until a token that
// is not a modifier is reached. Tokens that are not essential are skipped.
// If no annotation has a topic, expected is used if hasExpected is set.
func Combine[T Named](annotations []Annotation[T], expected T, hasExpected bool) (topic T, hasTopic bool, rating Rating) {
	essential := make([]int, 0, len(annotations))
	anchor := -1
	for i, annotation := range annotations {
		if !annotation.IsEssential() {
			continue
		}
		if anchor < 0 && annotation.Rating != NoRating {
			anchor = len(essential)
		}
		essential = append(essential, i)
	}

	if anchor >= 0 {
		rating = annotations[essential[anchor]].Rating
		for i := anchor - 1; i >= 0; i-- {
			modifier := annotations[essential[i]]
			if modifier.IsIntensifier {
				rating = rating.Intensified()
			} else if modifier.IsDiminisher {
				rating = rating.Diminished()
			} else if modifier.IsNegation {
				rating = rating.Negated()
			} else {
				break
			}
		}
	}

	// Modifiers never carry a topic, so folding them away does not change
	// which annotation provides it.
	for _, i := range essential {
		if annotations[i].HasTopic {
			return annotations[i].Topic, true, rating
		}
	}
	if hasExpected {
		return expected, true, rating
	}
	var zero T
	return zero, false, rating
}

// An AnalyzeOpt changes how a single text is analyzed.
type AnalyzeOpt[T Named] func(*analyzeOpts[T])

type analyzeOpts[T Named] struct {
	expected    T
	hasExpected bool
}

// WithExpectedTopic assumes topic for sentences that do not mention any
// topic, for example FOOD for answers to "How was the food?".
func WithExpectedTopic[T Named](topic T) AnalyzeOpt[T] {
	return func(opts *analyzeOpts[T]) {
		opts.expected = topic
		opts.hasExpected = true
	}
}

// Opinions returns a sequence yielding one opinion per sentence of text, in
// order. Sentences are tokenized and analyzed only as they are pulled.
func (m *OpinionMiner[T]) Opinions(text string, opts ...AnalyzeOpt[T]) iter.Seq[Opinion[T]] {
	var base analyzeOpts[T]
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	return func(yield func(Opinion[T]) bool) {
		normalized := m.normalizer.Normalize(text)
		for _, sentence := range m.pipeline.Segment(normalized) {
			annotations := m.Annotate(m.pipeline.Tokenize(sentence))
			topic, hasTopic, rating := Combine(annotations, base.expected, base.hasExpected)
			opinion := Opinion[T]{
				Topic:    topic,
				HasTopic: hasTopic,
				Rating:   rating,
				Sentence: sentence,
			}
			if ce := m.logger.Check(zap.DebugLevel, "opinion"); ce != nil {
				fields := []zap.Field{
					zap.String("sentence", sentence.Text),
					zap.Stringer("rating", rating),
				}
				if hasTopic {
					fields = append(fields, zap.Stringer("topic", topic))
				}
				ce.Write(fields...)
			}
			if !yield(opinion) {
				return
			}
		}
	}
}

// Analyze returns the opinions of all sentences of text.
func (m *OpinionMiner[T]) Analyze(text string, opts ...AnalyzeOpt[T]) []Opinion[T] {
	return slices.Collect(m.Opinions(text, opts...))
}

// Sentiment returns the language profile the miner uses.
func (m *OpinionMiner[T]) Sentiment() *LanguageSentiment {
	return m.sentiment
}
