package opine

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"strings"

	"go.uber.org/zap"
)

// SentimentWords is the serializable form of a LanguageSentiment. All words
// are lemmas and matched in lower case.
type SentimentWords struct {
	Diminishers  []string          `json:"diminishers,omitempty"`
	Intensifiers []string          `json:"intensifiers,omitempty"`
	Negations    []string          `json:"negations,omitempty"`
	Positives    map[string]Rating `json:"positives,omitempty"`
	Negatives    map[string]Rating `json:"negatives,omitempty"`
	Idioms       map[string]Rating `json:"idioms,omitempty"`
	RatingTexts  map[Rating]string `json:"rating_texts,omitempty"`
}

// LanguageSentiment holds the modifier words, lexicon independent rated
// words and idioms of one language. It is immutable and safe to share.
type LanguageSentiment struct {
	language     Language
	diminishers  map[string]bool
	intensifiers map[string]bool
	negations    map[string]bool
	positives    map[string]Rating
	negatives    map[string]Rating
	idioms       map[string]Rating
	ratingTexts  map[Rating]string
}

// NewLanguageSentiment builds a profile for lang from words.
func NewLanguageSentiment(lang Language, words SentimentWords) *LanguageSentiment {
	return &LanguageSentiment{
		language:     lang,
		diminishers:  wordSet(words.Diminishers),
		intensifiers: wordSet(words.Intensifiers),
		negations:    wordSet(words.Negations),
		positives:    lowerKeys(words.Positives),
		negatives:    lowerKeys(words.Negatives),
		idioms:       maps.Clone(words.Idioms),
		ratingTexts:  maps.Clone(words.RatingTexts),
	}
}

// LoadLanguageSentiment reads a profile for lang from a JSON file in the
// format of SentimentWords.
func LoadLanguageSentiment(lang Language, path string) (*LanguageSentiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading sentiment file: %w", err)
	}
	var words SentimentWords
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("error parsing sentiment JSON %s: %w", path, err)
	}
	return NewLanguageSentiment(lang, words), nil
}

// LanguageSentimentFor returns the built-in profile for a language code such
// as "en" or "de_AT". Unsupported languages get an empty profile and a
// warning, so analysis falls back to the lexicon alone.
func LanguageSentimentFor(code string, logger *zap.Logger) *LanguageSentiment {
	lang := LanguageOf(code)
	if words, ok := builtinSentimentWords[lang]; ok {
		return NewLanguageSentiment(lang, words)
	}
	if logger != nil {
		logger.Warn("no sentiment words for language, using lexicon only",
			zap.String("language", code))
	}
	return NewLanguageSentiment(lang, SentimentWords{})
}

// Language returns the language the profile belongs to.
func (ls *LanguageSentiment) Language() Language {
	return ls.language
}

// IsDiminisher reports whether token weakens a rating, e.g. "slightly".
func (ls *LanguageSentiment) IsDiminisher(token Token) bool {
	return hasTokenWord(ls.diminishers, token)
}

// IsIntensifier reports whether token strengthens a rating, e.g. "very".
func (ls *LanguageSentiment) IsIntensifier(token Token) bool {
	return hasTokenWord(ls.intensifiers, token)
}

// IsNegation reports whether token negates a rating, e.g. "not".
func (ls *LanguageSentiment) IsNegation(token Token) bool {
	return hasTokenWord(ls.negations, token)
}

// NegativeRating returns the default rating of a negative word.
func (ls *LanguageSentiment) NegativeRating(lemma string) (Rating, bool) {
	rating, ok := ls.negatives[strings.ToLower(lemma)]
	return rating, ok
}

// PositiveRating returns the default rating of a positive word.
func (ls *LanguageSentiment) PositiveRating(lemma string) (Rating, bool) {
	rating, ok := ls.positives[strings.ToLower(lemma)]
	return rating, ok
}

// Idioms returns a copy of the idiom to rating map.
func (ls *LanguageSentiment) Idioms() map[string]Rating {
	return maps.Clone(ls.idioms)
}

// RatingText returns the plain words expressing rating in the language, or
// "" if there are none.
func (ls *LanguageSentiment) RatingText(rating Rating) string {
	return ls.ratingTexts[rating]
}

// hasTokenWord checks the lemma first and falls back to the surface text
// for tokens the lemmatizer left alone.
func hasTokenWord(words map[string]bool, token Token) bool {
	if token.Lemma != "" && words[strings.ToLower(token.Lemma)] {
		return true
	}
	return words[strings.ToLower(token.Text)]
}

func wordSet(words []string) map[string]bool {
	result := make(map[string]bool, len(words))
	for _, word := range words {
		result[strings.ToLower(word)] = true
	}
	return result
}

func lowerKeys(words map[string]Rating) map[string]Rating {
	result := make(map[string]Rating, len(words))
	for word, rating := range words {
		result[strings.ToLower(word)] = rating
	}
	return result
}

var builtinSentimentWords = map[Language]SentimentWords{
	English: {
		Diminishers: []string{
			"barely",
			"pretty",
			"slightly",
			"somewhat",
		},
		Intensifiers: []string{
			"awfully",
			"dreadfully",
			"extremely",
			"really",
			"so",
			"terribly",
			"very",
		},
		Negations: []string{
			"n't",
			"never",
			"no",
			"not",
		},
		Negatives: map[string]Rating{
			"awful":    VeryBad,
			"bad":      Bad,
			"horrible": VeryBad,
			"poor":     Bad,
			"terrible": VeryBad,
		},
		Positives: map[string]Rating{
			"amazing":   VeryGood,
			"excellent": VeryGood,
			"good":      Good,
			"nice":      Good,
			"wonderful": VeryGood,
		},
		Idioms: map[string]Rating{
			"below par":         Bad,
			"cooking with gas":  Good,
			"kiss of death":     VeryBad,
			"on the ball":       Good,
			"over the moon":     VeryGood,
			"rip off":           Bad,
			"under the weather": Bad,
			"up to par":         Good,
		},
		RatingTexts: map[Rating]string{
			VeryBad:      "very bad",
			Bad:          "bad",
			SomewhatBad:  "somewhat bad",
			SomewhatGood: "somewhat good",
			Good:         "good",
			VeryGood:     "very good",
		},
	},
	German: {
		Diminishers: []string{
			"eher",
			"einigermaßen",
			"etwas",
		},
		Intensifiers: []string{
			"extrem",
			"sehr",
			"wirklich",
			"zu",
		},
		Negations: []string{
			"kein",
			"keine",
			"keiner",
			"keines",
			"nicht",
		},
		Negatives: map[string]Rating{
			"beschissen": VeryBad,
			"furchtbar":  VeryBad,
			"schlecht":   Bad,
		},
		Positives: map[string]Rating{
			"exzellent": VeryGood,
			"gut":       Good,
			"wunderbar": VeryGood,
		},
		Idioms: map[string]Rating{
			"das Gelbe vom Ei":   VeryGood,
			"erste Sahne":        VeryGood,
			"unter aller Kanone": VeryBad,
			"unter aller Sau":    VeryBad,
		},
		RatingTexts: map[Rating]string{
			VeryBad:      "sehr schlecht",
			Bad:          "schlecht",
			SomewhatBad:  "eher schlecht",
			SomewhatGood: "eher gut",
			Good:         "gut",
			VeryGood:     "sehr gut",
		},
	},
}
