package opine

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Named is implemented by the enumerations a Lexicon can assign as topics.
// Members are identified by their String() name, compared case-insensitively.
type Named interface {
	comparable
	fmt.Stringer
}

const (
	exactTextMatch    = 1.0
	foldedTextMatch   = 0.9
	exactLemmaMatch   = 0.8
	foldedLemmaMatch  = 0.7
	patternTextMatch  = 0.6
	patternLemmaMatch = 0.5
)

// A lemma containing any of these is compiled as a regular expression.
const regexMetaCharacters = `.+*[$^\`

// A LexiconEntry maps a lemma or lemma pattern to an optional topic and an
// optional rating. Entries are immutable once created.
type LexiconEntry[T Named] struct {
	Lemma    string
	Topic    T
	HasTopic bool
	Rating   Rating

	lowerLemma string
	pattern    *regexp.Regexp
}

// NewLexiconEntry creates an entry for lemma. Lemmas containing one of the
// characters . + * [ $ ^ \ are treated as patterns anchored at the start of
// the token.
func NewLexiconEntry[T Named](lemma string, topic T, hasTopic bool, rating Rating) (*LexiconEntry[T], error) {
	if lemma == "" {
		return nil, fmt.Errorf("lemma: %w", ErrMissingValue)
	}
	entry := &LexiconEntry[T]{
		Lemma:      lemma,
		Topic:      topic,
		HasTopic:   hasTopic,
		Rating:     rating,
		lowerLemma: strings.ToLower(lemma),
	}
	if strings.ContainsAny(lemma, regexMetaCharacters) {
		pattern, err := regexp.Compile(`^(?:` + lemma + `)`)
		if err != nil {
			return nil, fmt.Errorf("cannot convert lemma %q to regular expression: %w", lemma, err)
		}
		entry.pattern = pattern
	}
	return entry, nil
}

// IsRegex reports whether the entry matches tokens by pattern.
func (e *LexiconEntry[T]) IsRegex() bool {
	return e.pattern != nil
}

// Matching returns a weight between 0.0 and 1.0 on how well token matches
// the entry. Exact surface text is the strongest signal, patterns the
// weakest.
func (e *LexiconEntry[T]) Matching(token Token) float64 {
	if e.pattern != nil {
		switch {
		case e.pattern.MatchString(token.Text):
			return patternTextMatch
		case e.pattern.MatchString(token.Lemma):
			return patternLemmaMatch
		}
		return 0.0
	}
	switch {
	case token.Text == e.Lemma:
		return exactTextMatch
	case strings.ToLower(token.Text) == e.lowerLemma:
		return foldedTextMatch
	case token.Lemma == e.Lemma:
		return exactLemmaMatch
	case strings.ToLower(token.Lemma) == e.lowerLemma:
		return foldedLemmaMatch
	}
	return 0.0
}

func (e *LexiconEntry[T]) String() string {
	var b strings.Builder
	b.WriteString("LexiconEntry(")
	b.WriteString(e.Lemma)
	if e.HasTopic {
		fmt.Fprintf(&b, ", topic=%s", e.Topic)
	}
	if e.Rating != NoRating {
		fmt.Fprintf(&b, ", rating=%s", e.Rating)
	}
	if e.IsRegex() {
		b.WriteString(", is_regex=true")
	}
	b.WriteString(")")
	return b.String()
}

// A LexiconLayout names the 0-based CSV columns holding topic and rating.
// The lemma is always in the first column.
type LexiconLayout struct {
	TopicColumn  int
	RatingColumn int
}

var (
	// DefaultLexiconLayout reads rows of lemma, reserved, topic, rating.
	DefaultLexiconLayout = LexiconLayout{TopicColumn: 2, RatingColumn: 3}

	// CompactLexiconLayout reads rows of lemma, topic, rating.
	CompactLexiconLayout = LexiconLayout{TopicColumn: 1, RatingColumn: 2}
)

// A LexiconOpt changes how a Lexicon reads its CSV rows.
type LexiconOpt func(*lexiconOpts)

type lexiconOpts struct {
	layout LexiconLayout
}

// UsingLayout selects the CSV column layout.
func UsingLayout(layout LexiconLayout) LexiconOpt {
	return func(opts *lexiconOpts) {
		opts.layout = layout
	}
}

// A Lexicon is an ordered collection of entries assigning topics of type T
// and ratings to tokens.
type Lexicon[T Named] struct {
	entries       []*LexiconEntry[T]
	layout        LexiconLayout
	topicTypeName string
	topics        []T
	topicByName   map[string]T
}

// NewLexicon creates an empty lexicon for the given topic enumeration. It
// fails if two topics share a case-insensitive name.
func NewLexicon[T Named](topics []T, opts ...LexiconOpt) (*Lexicon[T], error) {
	base := lexiconOpts{layout: DefaultLexiconLayout}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	var zero T
	typeName := fmt.Sprintf("%T", zero)
	if i := strings.LastIndex(typeName, "."); i >= 0 {
		typeName = typeName[i+1:]
	}

	topicByName, err := nameToEnumMap(typeName, topics)
	if err != nil {
		return nil, err
	}
	if _, err := nameToEnumMap("Rating", Ratings()); err != nil {
		return nil, err
	}
	return &Lexicon[T]{
		layout:        base.layout,
		topicTypeName: typeName,
		topics:        slices.Clone(topics),
		topicByName:   topicByName,
	}, nil
}

func nameToEnumMap[E fmt.Stringer](typeName string, members []E) (map[string]E, error) {
	result := make(map[string]E, len(members))
	for _, member := range members {
		name := strings.ToLower(member.String())
		if _, found := result[name]; found {
			return nil, fmt.Errorf("case insensitive name %q for enum %s must be unique: %w",
				name, typeName, ErrDuplicateName)
		}
		result[name] = member
	}
	return result, nil
}

// enumKey folds a name from a CSV cell to the form enum names are indexed by.
func enumKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

func sortedNames[E fmt.Stringer](members []E) []string {
	names := make([]string, 0, len(members))
	for _, member := range members {
		names = append(names, strings.ToLower(member.String()))
	}
	slices.Sort(names)
	return names
}

// Entries returns the entries in insertion order.
func (l *Lexicon[T]) Entries() []*LexiconEntry[T] {
	return l.entries
}

// Len returns the number of entries.
func (l *Lexicon[T]) Len() int {
	return len(l.entries)
}

func (l *Lexicon[T]) String() string {
	return fmt.Sprintf("Lexicon[%s](%d entries)", l.topicTypeName, len(l.entries))
}

// Add appends an entry.
func (l *Lexicon[T]) Add(entry *LexiconEntry[T]) {
	l.entries = append(l.entries, entry)
}

// Topic returns the topic named name, ignoring case and treating spaces as
// underscores.
func (l *Lexicon[T]) Topic(name string) (T, error) {
	topic, ok := l.topicByName[enumKey(name)]
	if !ok {
		var zero T
		return zero, fmt.Errorf("name %q for enum %s must be one of: %s: %w",
			name, l.topicTypeName, strings.Join(sortedNames(l.topics), ", "), ErrUnknownName)
	}
	return topic, nil
}

// AddRow appends an entry from the cells of a CSV row. Rows with a blank
// lemma or a lemma starting with '#' are skipped. On failure the returned
// *CSVError has the offending 1-based Column set.
func (l *Lexicon[T]) AddRow(row []string) error {
	cell := func(index int) string {
		if index < len(row) {
			return strings.TrimSpace(row[index])
		}
		return ""
	}

	lemma := cell(0)
	if lemma == "" || strings.HasPrefix(lemma, "#") {
		return nil
	}

	var (
		topic    T
		hasTopic bool
		rating   Rating
		err      error
	)
	if topicName := cell(l.layout.TopicColumn); topicName != "" {
		if topic, err = l.Topic(topicName); err != nil {
			return &CSVError{Column: l.layout.TopicColumn + 1, Err: err}
		}
		hasTopic = true
	}
	if ratingName := cell(l.layout.RatingColumn); ratingName != "" {
		if rating, err = ParseRating(ratingName); err != nil {
			return &CSVError{Column: l.layout.RatingColumn + 1, Err: err}
		}
	}

	entry, err := NewLexiconEntry(lemma, topic, hasTopic, rating)
	if err != nil {
		return &CSVError{Column: 1, Err: err}
	}
	l.Add(entry)
	return nil
}

// ReadCSV appends entries from comma separated rows read from r. The path
// is only used to locate errors.
func (l *Lexicon[T]) ReadCSV(r io.Reader, path string) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &CSVError{Path: path, Err: err}
		}
		line, _ := reader.FieldPos(0)
		if err := l.AddRow(row); err != nil {
			var csvErr *CSVError
			if errors.As(err, &csvErr) {
				csvErr.Path = path
				csvErr.Row = line
				return csvErr
			}
			return &CSVError{Path: path, Row: line, Err: err}
		}
	}
}

// ReadCSVFile appends entries from the CSV file at path decoded with the
// named encoding, for example "utf-8" or "iso-8859-1".
func (l *Lexicon[T]) ReadCSVFile(path, encoding string) error {
	file, err := OpenText(path, encoding)
	if err != nil {
		return err
	}
	defer file.Close()
	return l.ReadCSV(file, path)
}

// EntryFor returns the entry that best matches token. Among entries with
// the same weight the first one wins.
func (l *Lexicon[T]) EntryFor(token Token) (*LexiconEntry[T], bool) {
	var (
		result       *LexiconEntry[T]
		bestMatching float64
	)
	for _, entry := range l.entries {
		if matching := entry.Matching(token); matching > bestMatching {
			result = entry
			bestMatching = matching
			if isClose(bestMatching, exactTextMatch) {
				break
			}
		}
	}
	return result, result != nil
}

// UnknownTokens returns the tokens no entry matches, in order.
func (l *Lexicon[T]) UnknownTokens(tokens []Token) []Token {
	var result []Token
	for _, token := range tokens {
		if _, found := l.EntryFor(token); !found {
			result = append(result, token)
		}
	}
	return result
}

// UnknownLemmas returns the lemmas of tokens no entry matches, in token
// order and including repetitions.
func (l *Lexicon[T]) UnknownLemmas(tokens []Token) []string {
	unknown := l.UnknownTokens(tokens)
	result := make([]string, len(unknown))
	for i, token := range unknown {
		result[i] = token.Lemma
	}
	return result
}

func isClose(a, b float64) bool {
	return scalar.EqualWithinRel(a, b, 1e-9)
}
