package opine

import (
	"regexp"
	"strings"
	"unicode"
)

// A Tagger assigns coarse part-of-speech tags to the tokens of a sentence.
type Tagger interface {
	Tag(tokens []Token) []Token
}

// ruleTagger tags closed word classes from a word list and open classes
// from suffixes. It is a fallback for counting lemmas by part of speech, the
// opinion miner does not depend on the tags.
type ruleTagger struct {
	closed   map[string]string
	suffixes []suffixRule
}

type suffixRule struct {
	re  *regexp.Regexp
	tag string
}

var englishSuffixRules = []suffixRule{
	{regexp.MustCompile(`ly$`), TagAdverb},
	{regexp.MustCompile(`(?:ing|ed|ize|ise)$`), TagVerb},
	{regexp.MustCompile(`(?:ous|ful|ive|able|ible|al|ic|less|est|ish|y)$`), TagAdjective},
}

var germanSuffixRules = []suffixRule{
	{regexp.MustCompile(`(?:lich|ig|isch|bar|los|sam|voll)(?:e|er|es|en|em)?$`), TagAdjective},
	{regexp.MustCompile(`(?:ieren|eln|ern)$`), TagVerb},
}

var closedWordClasses = map[Language]map[string][]string{
	English: {
		TagAdposition:   {"about", "above", "after", "at", "before", "by", "for", "from", "in", "into", "of", "on", "over", "to", "under", "with", "without"},
		TagAuxiliary:    {"am", "are", "be", "been", "being", "can", "could", "did", "do", "does", "had", "has", "have", "is", "may", "might", "must", "shall", "should", "was", "were", "will", "would"},
		TagConjunction:  {"and", "but", "nor", "or", "yet"},
		TagDeterminer:   {"a", "an", "all", "any", "each", "every", "no", "some", "that", "the", "these", "this", "those"},
		TagPronoun:      {"he", "her", "him", "i", "it", "me", "my", "our", "she", "their", "them", "they", "us", "we", "you", "your"},
		TagParticle:     {"n't", "not", "'s"},
		TagAdverb:       {"barely", "never", "pretty", "quite", "rather", "so", "somewhat", "too", "very"},
		TagInterjection: {"hey", "oh", "ouch", "wow", "yes"},
	},
	German: {
		TagAdposition:   {"an", "auf", "aus", "bei", "für", "gegen", "in", "mit", "nach", "ohne", "über", "um", "unter", "von", "vor", "zu"},
		TagAuxiliary:    {"bin", "bist", "hat", "haben", "hatte", "ist", "kann", "muss", "sein", "sind", "war", "waren", "werden", "wird", "wurde"},
		TagConjunction:  {"aber", "denn", "oder", "sondern", "und"},
		TagDeterminer:   {"das", "dem", "den", "der", "des", "die", "ein", "eine", "einem", "einen", "einer", "eines", "kein", "keine"},
		TagPronoun:      {"du", "er", "es", "ich", "ihr", "man", "mich", "mir", "sie", "uns", "wir"},
		TagParticle:     {"nicht"},
		TagAdverb:       {"eher", "etwas", "nie", "sehr", "wirklich"},
		TagInterjection: {"ach", "hallo", "ja", "oh"},
	},
}

func newRuleTagger(lang Language) *ruleTagger {
	tagger := &ruleTagger{closed: make(map[string]string)}
	for tag, words := range closedWordClasses[lang] {
		for _, word := range words {
			tagger.closed[word] = tag
		}
	}
	switch lang {
	case English:
		tagger.suffixes = englishSuffixRules
	case German:
		tagger.suffixes = germanSuffixRules
	}
	return tagger
}

// Tag returns tokens with Tag set. Tokens are copied, the input is not
// modified.
func (rt *ruleTagger) Tag(tokens []Token) []Token {
	result := make([]Token, len(tokens))
	for i, token := range tokens {
		token.Tag = rt.tagOf(token)
		result[i] = token
	}
	return result
}

func (rt *ruleTagger) tagOf(token Token) string {
	lower := strings.ToLower(token.Text)
	if strings.HasPrefix(lower, EmojiPrefix) {
		return TagSymbol
	}
	if tag, ok := rt.closed[lower]; ok {
		return tag
	}

	letters, digits, others := 0, 0, 0
	for _, r := range token.Text {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		default:
			others++
		}
	}
	switch {
	case letters == 0 && digits > 0:
		return TagNumber
	case letters == 0 && others > 0:
		if isPunctuation(token.Text) {
			return TagPunctuation
		}
		return TagSymbol
	case letters == 0:
		return TagOther
	}

	for _, rule := range rt.suffixes {
		if rule.re.MatchString(lower) {
			return rule.tag
		}
	}
	return TagNoun
}

func isPunctuation(text string) bool {
	for _, r := range text {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
