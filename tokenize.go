package opine

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A TokenTester reports whether a whitespace delimited chunk of text must be
// kept as a single token.
type TokenTester func(string) bool

// A Tokenizer splits the text of one sentence into tokens. Start and End of
// each token are byte offsets into the text passed.
type Tokenizer interface {
	Tokenize(string) []Token
}

// iterTokenizer splits a sentence into words.
type iterTokenizer struct {
	specialRE      *regexp.Regexp
	sanitizer      *strings.Replacer
	contractions   []string
	splitCases     []string
	suffixes       []string
	prefixes       []string
	emoticons      map[string]bool
	isUnsplittable TokenTester
}

// A TokenizerOptFunc changes a setting of the tokenizer created by
// NewIterTokenizer.
type TokenizerOptFunc func(*iterTokenizer)

// UsingIsUnsplittable gives a function that tests whether a token is splittable or not.
func UsingIsUnsplittable(x TokenTester) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.isUnsplittable = x
	}
}

// UsingSpecialRE uses the provided special regex for unsplittable tokens.
func UsingSpecialRE(x *regexp.Regexp) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.specialRE = x
	}
}

// UsingSanitizer uses the provided sanitizer on the text of each token.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.sanitizer = x
	}
}

// UsingSuffixes uses the provided suffixes.
func UsingSuffixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.suffixes = x
	}
}

// UsingPrefixes uses the provided prefixes.
func UsingPrefixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.prefixes = x
	}
}

// UsingEmoticons uses the provided set of emoticons kept as single tokens.
func UsingEmoticons(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.emoticons = make(map[string]bool, len(x))
		for _, emoticon := range x {
			tokenizer.emoticons[emoticon] = true
		}
	}
}

// UsingContractions uses the provided contractions.
func UsingContractions(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.contractions = x
	}
}

// UsingSplitCases uses the provided split cases in addition to the
// contractions.
func UsingSplitCases(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.splitCases = x
	}
}

// NewIterTokenizer creates the default tokenizer.
func NewIterTokenizer(opts ...TokenizerOptFunc) *iterTokenizer {
	tok := new(iterTokenizer)

	tok.contractions = contractions
	tok.isUnsplittable = func(_ string) bool { return false }
	tok.prefixes = prefixes
	tok.sanitizer = sanitizer
	tok.specialRE = internalRE
	tok.suffixes = suffixes
	UsingEmoticons(emoticons)(tok)

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	tok.splitCases = append(tok.splitCases, tok.contractions...)

	return tok
}

func (t *iterTokenizer) addToken(s string, start int, toks []Token) []Token {
	if strings.TrimSpace(s) != "" {
		toks = append(toks, Token{
			Text:  t.sanitizer.Replace(s),
			Start: start,
			End:   start + len(s),
		})
	}
	return toks
}

func (t *iterTokenizer) isSpecial(token string) bool {
	return t.emoticons[token] ||
		strings.HasPrefix(token, EmojiPrefix) ||
		t.specialRE.MatchString(token) ||
		t.isUnsplittable(token)
}

// doSplit splits a chunk without whitespace starting at offset.
func (t *iterTokenizer) doSplit(token string, offset int) []Token {
	var tokens, suffs []Token

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		if t.isSpecial(token) {
			// A special case such as an emoticon is added without any
			// further processing.
			tokens = t.addToken(token, offset, tokens)
			break
		}
		last = utf8.RuneCountInString(token)
		lower := strings.ToLower(token)
		if prefix := hasAnyPrefix(token, t.prefixes); prefix != "" {
			// $100 -> [$, 100]
			tokens = t.addToken(prefix, offset, tokens)
			token = token[len(prefix):]
			offset += len(prefix)
		} else if idx := hasAnyIndex(lower, t.splitCases); idx > 0 {
			// they'll -> [they, 'll], don't -> [do, n't]
			tokens = t.addToken(token[:idx], offset, tokens)
			token = token[idx:]
			offset += idx
		} else if suffix := hasAnySuffix(token, t.suffixes); suffix != "" {
			// Well) -> [Well, )]
			end := len(token) - len(suffix)
			suffs = append(t.addToken(suffix, offset+end, nil), suffs...)
			token = token[:end]
		} else {
			tokens = t.addToken(token, offset, tokens)
			break
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits a sentence into a slice of words with byte offsets into
// text.
func (t *iterTokenizer) Tokenize(text string) []Token {
	var tokens []Token

	start := -1
	for index, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, t.doSplit(text[start:index], start)...)
				start = -1
			}
		} else if start < 0 {
			start = index
		}
	}
	if start >= 0 {
		tokens = append(tokens, t.doSplit(text[start:], start)...)
	}

	return tokens
}

// hasAnyPrefix returns the first of prefixes that s starts with and that
// leaves something behind, or "".
func hasAnyPrefix(s string, prefixes []string) string {
	for _, prefix := range prefixes {
		if len(s) > len(prefix) && strings.HasPrefix(s, prefix) {
			return prefix
		}
	}
	return ""
}

// hasAnySuffix returns the first of suffixes that s ends with, or "".
func hasAnySuffix(s string, suffixes []string) string {
	for _, suffix := range suffixes {
		if len(s) > len(suffix) && strings.HasSuffix(s, suffix) {
			return suffix
		}
	}
	return ""
}

// hasAnyIndex returns the position of the first split case in s that is
// either a suffix of s or followed by non-letters, or -1.
func hasAnyIndex(s string, cases []string) int {
	for _, c := range cases {
		idx := strings.Index(s, c)
		if idx < 0 {
			continue
		}
		rest := s[idx+len(c):]
		if next, _ := utf8.DecodeRuneInString(rest); rest == "" || !unicode.IsLetter(next) {
			return idx
		}
	}
	return -1
}

var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^[A-Z][a-z]{1,2}\.$`)
var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"„", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")
var contractions = []string{
	"'ll", "'s", "'re", "'m", "n't",
	"’ll", "’s", "’re", "’m", "n’t",
}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'", "”", "’", "“"}
var prefixes = []string{"$", "(", `"`, "[", "“", "„", "‘"}
var emoticons = []string{
	"(-8", "(-;", "(-_-)", "(._.)", "(:", "(=", "(o:", "(¬_¬)", "(ಠ_ಠ)",
	"-__-", "8-)", "8-D", "8D",
	":(", ":((", ":(((", ":()", ":)", ":))", ":)))", ":-(", ":-)", ":-))", ":-)))",
	":-*", ":-/", ":-D", ":-P", ":-X", ":-]", ":-o", ":-p", ":-x", ":-|", ":-}",
	":/", ":0", ":3", ":D", ":P", ":]", ":o", ":o)",
	";)", ";-)", "=(", "=)", "=D", "=|", "@_@",
	"O.o", "O_o", "V_V", "XDD", "[-:", "^^", "^_^", "^___^",
	"o_0", "o_O", "o_o", "v_v", "xD", "xDD", "¯\\(ツ)/¯",
}
