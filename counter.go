package opine

import (
	"cmp"
	"slices"
	"unicode"
	"unicode/utf8"
)

// A LemmaCount is how often a lemma occurred, optionally per part of speech.
type LemmaCount struct {
	Count int
	Lemma string
	Tag   string // Empty unless the counter distinguishes parts of speech.
}

// A CounterOpt changes what a LemmaCounter counts.
type CounterOpt func(*LemmaCounter)

// CountingStopwords also counts stopwords, which are skipped by default.
func CountingStopwords(include bool) CounterOpt {
	return func(c *LemmaCounter) {
		c.countStopwords = include
	}
}

// CountingPartOfSpeech counts a lemma separately for each part of speech,
// e.g. "pretty" as ADJ and ADV.
func CountingPartOfSpeech(include bool) CounterOpt {
	return func(c *LemmaCounter) {
		c.usePOS = include
	}
}

type lemmaKey struct {
	lemma string
	tag   string
}

// LemmaCounter accumulates how often lemmas occur in tokens. Lemmas that
// do not start with a letter, such as numbers and punctuation, are ignored.
type LemmaCounter struct {
	countStopwords bool
	usePOS         bool
	counts         map[lemmaKey]int
}

// NewLemmaCounter creates an empty counter.
func NewLemmaCounter(opts ...CounterOpt) *LemmaCounter {
	counter := &LemmaCounter{counts: make(map[lemmaKey]int)}
	for _, applyOpt := range opts {
		applyOpt(counter)
	}
	return counter
}

// Add counts the lemmas of tokens.
func (c *LemmaCounter) Add(tokens []Token) {
	for _, token := range tokens {
		first, _ := utf8.DecodeRuneInString(token.Lemma)
		if token.Lemma == "" || !unicode.IsLetter(first) {
			continue
		}
		if token.Stop && !c.countStopwords {
			continue
		}
		key := lemmaKey{lemma: token.Lemma}
		if c.usePOS {
			key.tag = token.Tag
		}
		c.counts[key]++
	}
}

// AddDocument counts the lemmas of all sentences of doc.
func (c *LemmaCounter) AddDocument(doc *Document) {
	for i := range doc.Sentences() {
		c.Add(doc.Tokens(i))
	}
}

// Counts returns all counts, most common first. Equal counts are ordered by
// lemma and tag, both descending.
func (c *LemmaCounter) Counts() []LemmaCount {
	result := make([]LemmaCount, 0, len(c.counts))
	for key, count := range c.counts {
		result = append(result, LemmaCount{Count: count, Lemma: key.lemma, Tag: key.tag})
	}
	slices.SortFunc(result, func(a, b LemmaCount) int {
		return cmp.Or(
			cmp.Compare(b.Count, a.Count),
			cmp.Compare(b.Lemma, a.Lemma),
			cmp.Compare(b.Tag, a.Tag),
		)
	})
	return result
}

// MostCommon returns the n most common counts, or all of them if n is 0.
func (c *LemmaCounter) MostCommon(n int) []LemmaCount {
	result := c.Counts()
	if n > 0 && n < len(result) {
		result = result[:n]
	}
	return result
}
