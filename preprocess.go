package opine

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// A Replacement rewrites every whole-word occurrence of Source, ignoring
// case, to Target.
type Replacement struct {
	Source string
	Target string

	pattern *regexp.Regexp
	// Abbreviations end with a literal dot instead of a word boundary.
	dotted bool
}

// Replacements is a compiled substitution table. It is never modified by
// Replace and can be shared.
type Replacements struct {
	name  string
	items []Replacement
}

// CompileSynonyms compiles a table replacing each source phrase by its
// target, e.g. "laptop" by "notebook".
func CompileSynonyms(sourceToTarget map[string]string) (Replacements, error) {
	return compileReplacements("synonym", sourceToTarget, false)
}

// CompileAbbreviations compiles a table expanding abbreviations terminated
// with a dot. Keys are given without the dot, e.g. "z.B" for "z.B.".
//
// Sentence segmentation can mistake such a dot for the end of a sentence;
// expanding the abbreviation first avoids that.
func CompileAbbreviations(abbreviationToLongForm map[string]string) (Replacements, error) {
	return compileReplacements("abbreviation", abbreviationToLongForm, true)
}

// CompileIdioms compiles a table rewriting the idioms of ls to the plain
// words for their rating, e.g. "up to par" to "good". Idioms whose rating has
// no text in the language are left alone.
func CompileIdioms(ls *LanguageSentiment) (Replacements, error) {
	idiomToText := make(map[string]string)
	for idiom, rating := range ls.Idioms() {
		if text := ls.RatingText(rating); text != "" {
			idiomToText[idiom] = text
		}
	}
	return compileReplacements("idiom", idiomToText, false)
}

func compileReplacements(name string, sourceToTarget map[string]string, dotted bool) (Replacements, error) {
	result := Replacements{name: name}
	for source, target := range sourceToTarget {
		if strings.TrimSpace(source) == "" {
			return Replacements{}, fmt.Errorf("%s %q: %w", name, source, ErrMissingValue)
		}
		expr := `(?i)` + regexp.QuoteMeta(source)
		if dotted {
			expr += `\.`
		}
		pattern, err := regexp.Compile(expr)
		if err != nil {
			return Replacements{}, fmt.Errorf("cannot convert %s %q to regular expression: %w", name, source, err)
		}
		result.items = append(result.items, Replacement{
			Source:  source,
			Target:  target,
			pattern: pattern,
			dotted:  dotted,
		})
	}
	// Longer phrases first so "not up to par" wins over "up to par".
	slices.SortFunc(result.items, func(a, b Replacement) int {
		if c := cmp.Compare(len(b.Source), len(a.Source)); c != 0 {
			return c
		}
		return cmp.Compare(a.Source, b.Source)
	})
	return result, nil
}

// Len returns the number of compiled replacements.
func (rs Replacements) Len() int {
	return len(rs.items)
}

// Items returns the compiled replacements in the order they are applied.
func (rs Replacements) Items() []Replacement {
	return slices.Clone(rs.items)
}

// Replace applies all replacements to text in order. Each replacement that
// changes the text is logged at debug level if logger is not nil.
func (rs Replacements) Replace(text string, logger *zap.Logger) string {
	result := text
	for _, item := range rs.items {
		replaced := item.replaceAll(result)
		if replaced != result {
			if logger != nil {
				logger.Debug("replaced "+rs.name,
					zap.String("source", item.Source),
					zap.String("target", item.Target))
			}
			result = replaced
		}
	}
	return result
}

func (r Replacement) replaceAll(text string) string {
	matches := r.pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var (
		b    strings.Builder
		last int
	)
	for _, match := range matches {
		start, end := match[0], match[1]
		if !r.hasBoundaries(text, start, end) {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(r.Target)
		last = end
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// hasBoundaries mimics \b on both sides of a match, but for any Unicode
// letter, so that "bißchen" or "gut" next to umlauts are matched as words.
// A side of the source that is not a word character needs no boundary.
func (r Replacement) hasBoundaries(text string, start, end int) bool {
	first, _ := utf8.DecodeRuneInString(text[start:end])
	if isWordRune(first) && start > 0 {
		before, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(before) {
			return false
		}
	}
	if r.dotted {
		return true
	}
	last, _ := utf8.DecodeLastRuneInString(text[start:end])
	if isWordRune(last) && end < len(text) {
		after, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(after) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ReplacedSynonyms returns text with synonyms replaced.
func ReplacedSynonyms(text string, synonyms Replacements) string {
	return synonyms.Replace(text, nil)
}

// ReplacedAbbreviations returns text with abbreviations expanded.
func ReplacedAbbreviations(text string, abbreviations Replacements) string {
	return abbreviations.Replace(text, nil)
}

// ReplacedIdioms returns text with idioms rewritten to rating words.
func ReplacedIdioms(text string, idioms Replacements) string {
	return idioms.Replace(text, nil)
}

// A Normalizer rewrites raw text before it is segmented and tokenized.
type Normalizer struct {
	Abbreviations Replacements
	Emoticons     *EmoticonTable
	Synonyms      Replacements
	Idioms        Replacements
	Logger        *zap.Logger
}

// Normalize composes text to NFC and applies abbreviations, emoticons,
// synonyms and idioms in that order.
func (n *Normalizer) Normalize(text string) string {
	result := norm.NFC.String(text)
	result = n.Abbreviations.Replace(result, n.Logger)
	if n.Emoticons != nil {
		result = n.Emoticons.Unify(result, n.Logger)
	}
	result = n.Synonyms.Replace(result, n.Logger)
	return n.Idioms.Replace(result, n.Logger)
}
