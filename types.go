package opine

import "strings"

// A Token represents an individual token of text such as a word or
// punctuation symbol.
type Token struct {
	Text  string // The token's actual content.
	Lemma string // The token's dictionary form.
	Tag   string // The token's coarse part-of-speech tag, e.g. NOUN or ADJ.
	Stop  bool   // Whether the token is a stopword.
	Start int    // Start position in the analyzed text
	End   int    // End position in the analyzed text
}

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text  string // The sentence's text.
	Start int    // Start position in the analyzed text
	End   int    // End position in the analyzed text
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// Language is a two letter ISO-639-1 language code.
type Language string

const (
	English    Language = "en"
	Spanish    Language = "es"
	French     Language = "fr"
	German     Language = "de"
	Italian    Language = "it"
	Dutch      Language = "nl"
	Portuguese Language = "pt"
)

// LanguageOf reduces a locale such as "en_US" or "de-AT" to its language.
func LanguageOf(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) > 2 {
		code = code[:2]
	}
	return Language(code)
}

// Coarse part-of-speech tags assigned by the built-in tagger.
const (
	TagAdjective    = "ADJ"
	TagAdposition   = "ADP"
	TagAdverb       = "ADV"
	TagAuxiliary    = "AUX"
	TagConjunction  = "CCONJ"
	TagDeterminer   = "DET"
	TagInterjection = "INTJ"
	TagNoun         = "NOUN"
	TagNumber       = "NUM"
	TagParticle     = "PART"
	TagPronoun      = "PRON"
	TagPunctuation  = "PUNCT"
	TagSymbol       = "SYM"
	TagVerb         = "VERB"
	TagOther        = "X"
)
