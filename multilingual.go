package opine

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
)

// AutoLanguage asks ResolveLanguage to detect the language from the text.
const AutoLanguage = "auto"

// LanguageDetector guesses the language of a text from common function
// words, trigram frequencies and language specific letters.
type LanguageDetector struct {
	patterns map[Language]*regexp.Regexp
	ngrams   map[Language]map[string]float64
}

// NewLanguageDetector creates a detector for English, German, French and
// Spanish.
func NewLanguageDetector() *LanguageDetector {
	return &LanguageDetector{
		patterns: map[Language]*regexp.Regexp{
			English: regexp.MustCompile(`\b(the|and|that|have|for|not|with|you|this|but|was|from|they)\b`),
			Spanish: regexp.MustCompile(`\b(que|de|no|la|el|es|en|un|por|con|como|para|todo|pero)\b`),
			French:  regexp.MustCompile(`\b(le|et|un|il|les|des|que|pour|dans|ce|son|une|est)\b`),
			German:  regexp.MustCompile(`\b(der|die|und|in|den|von|zu|das|mit|sich|des|auf|ist|im|dem|nicht)\b`),
		},
		ngrams: map[Language]map[string]float64{
			English: {
				"the": 0.15, "and": 0.08, "ing": 0.06, "ion": 0.05, "tio": 0.04,
				"ent": 0.03, "ati": 0.03, "for": 0.03, "her": 0.03, "ter": 0.03,
			},
			Spanish: {
				"que": 0.12, "ión": 0.08, "ado": 0.06, "con": 0.05, "ent": 0.04,
				"par": 0.04, "est": 0.04, "ara": 0.03, "del": 0.03, "los": 0.03,
			},
			French: {
				"les": 0.10, "ent": 0.08, "ion": 0.07, "des": 0.06, "que": 0.05,
				"ait": 0.04, "lle": 0.04, "eur": 0.04, "our": 0.03, "ant": 0.03,
			},
			German: {
				"der": 0.12, "und": 0.08, "die": 0.07, "ung": 0.06, "ich": 0.05,
				"ein": 0.04, "sch": 0.04, "den": 0.04, "cht": 0.03, "das": 0.03,
			},
		},
	}
}

// Detect returns the most likely language of text and a confidence between
// 0 and 1. Texts too short to tell are considered English.
func (ld *LanguageDetector) Detect(text string) (Language, float64) {
	if len(text) < 10 {
		return English, 0.5
	}

	text = strings.ToLower(text)
	scores := make(map[Language]float64)

	for lang, pattern := range ld.patterns {
		scores[lang] += float64(len(pattern.FindAllString(text, -1))) * 0.1
	}

	trigrams := extractTrigrams(text)
	for lang, ngramFreqs := range ld.ngrams {
		for trigram, freq := range trigrams {
			if expectedFreq, exists := ngramFreqs[trigram]; exists {
				scores[lang] += freq * expectedFreq
			}
		}
	}

	for lang, score := range scoreByCharacterFrequency(text) {
		scores[lang] += score
	}

	bestLang := English
	bestScore := 0.0
	totalScore := 0.0
	for _, lang := range []Language{English, German, French, Spanish} {
		score := scores[lang]
		totalScore += score
		if score > bestScore {
			bestScore = score
			bestLang = lang
		}
	}

	return bestLang, min(bestScore/(totalScore+1e-10), 1.0)
}

// extractTrigrams returns the relative frequency of each trigram made of
// letters only.
func extractTrigrams(text string) map[string]float64 {
	trigrams := make(map[string]float64)
	total := 0

	runes := []rune(text)
	for i := 0; i <= len(runes)-3; i++ {
		window := runes[i : i+3]
		if unicode.IsLetter(window[0]) && unicode.IsLetter(window[1]) && unicode.IsLetter(window[2]) {
			trigrams[string(window)]++
			total++
		}
	}
	for trigram := range trigrams {
		trigrams[trigram] /= float64(total)
	}
	return trigrams
}

// scoreByCharacterFrequency scores letters that are typical for a language.
func scoreByCharacterFrequency(text string) map[Language]float64 {
	scores := make(map[Language]float64)
	charCount := make(map[rune]int)
	totalChars := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			charCount[r]++
			totalChars++
		}
	}

	for char, count := range charCount {
		freq := float64(count) / float64(totalChars)
		switch char {
		case 'ñ':
			scores[Spanish] += freq * 10
		case 'ç':
			scores[French] += freq * 8
		case 'ü', 'ö', 'ä', 'ß':
			scores[German] += freq * 8
		case 'w':
			scores[English] += freq * 3
			scores[German] += freq * 2
		case 'k':
			scores[German] += freq * 2
			scores[English] += freq * 1
		}
	}
	return scores
}

// ResolveLanguage returns the language for a code such as "en" or "de_AT".
// The code "auto" detects the language from text.
func ResolveLanguage(code, text string) (Language, error) {
	if strings.EqualFold(strings.TrimSpace(code), AutoLanguage) {
		lang, _ := NewLanguageDetector().Detect(text)
		return lang, nil
	}
	lang := LanguageOf(code)
	if len(lang) != 2 {
		return "", fmt.Errorf("language %q must be a two letter code or %q", code, AutoLanguage)
	}
	return lang, nil
}

// IsStopword reports whether word is a stopword in lang. Only words
// containing a letter can be stopwords.
func IsStopword(word string, lang Language) bool {
	if !strings.ContainsFunc(word, unicode.IsLetter) {
		return false
	}
	lower := strings.ToLower(word)
	if strings.HasPrefix(lower, EmojiPrefix) {
		return false
	}
	// CleanString removes stopwords, so nothing remains of a single one.
	return strings.TrimSpace(stopwords.CleanString(lower, string(lang), false)) == ""
}
