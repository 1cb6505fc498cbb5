package opine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testTopic int

const (
	topicGeneral testTopic = iota
	topicFood
	topicHygiene
	topicService
)

func (t testTopic) String() string {
	return [...]string{"GENERAL", "FOOD", "HYGIENE", "SERVICE"}[t]
}

var testTopics = []testTopic{topicGeneral, topicFood, topicHygiene, topicService}

type caseTopic string

func (t caseTopic) String() string {
	return string(t)
}

func newTestLexicon(t *testing.T, csvText string) *Lexicon[testTopic] {
	t.Helper()
	lexicon, err := NewLexicon(testTopics)
	if err != nil {
		t.Fatalf("Failed to create lexicon: %v", err)
	}
	if err := lexicon.ReadCSV(strings.NewReader(csvText), "test.csv"); err != nil {
		t.Fatalf("Failed to read lexicon: %v", err)
	}
	return lexicon
}

func TestLexiconEntryMatching(t *testing.T) {
	tests := []struct {
		lemma    string
		token    Token
		expected float64
	}{
		{"chicken", Token{Text: "chicken", Lemma: "chicken"}, 1.0},
		{"chicken", Token{Text: "Chicken", Lemma: "chicken"}, 0.9},
		{"chicken", Token{Text: "chickens", Lemma: "chicken"}, 0.8},
		{"chicken", Token{Text: "CHICKENS", Lemma: "Chicken"}, 0.7},
		{"chicken", Token{Text: "beef", Lemma: "beef"}, 0.0},
		{"chick.*", Token{Text: "chickens", Lemma: "chicken"}, 0.6},
		{"chick.*", Token{Text: "Chickens", Lemma: "chicken"}, 0.5},
		{"chick.*", Token{Text: "a chicken", Lemma: "a chicken"}, 0.0},
		{"stain.*", Token{Text: "stained", Lemma: "stain"}, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.lemma+"/"+tt.token.Text, func(t *testing.T) {
			entry, err := NewLexiconEntry(tt.lemma, topicFood, true, NoRating)
			if err != nil {
				t.Fatal(err)
			}
			if got := entry.Matching(tt.token); !isClose(got, tt.expected) {
				t.Errorf("Matching(%+v) = %v, expected %v", tt.token, got, tt.expected)
			}
		})
	}
}

func TestLexiconEntryIsRegex(t *testing.T) {
	for _, lemma := range []string{"a.b", "a+", "a*", "[ab]", "a$", "^a", `a\d`} {
		entry, err := NewLexiconEntry(lemma, topicFood, true, NoRating)
		if err != nil {
			t.Fatal(err)
		}
		if !entry.IsRegex() {
			t.Errorf("%q must be a regex", lemma)
		}
	}

	entry, err := NewLexiconEntry("schnitzel", topicFood, true, NoRating)
	if err != nil {
		t.Fatal(err)
	}
	if entry.IsRegex() {
		t.Error("schnitzel must not be a regex")
	}

	if _, err := NewLexiconEntry("[a", topicFood, true, NoRating); err == nil {
		t.Error("broken pattern must fail")
	}
}

func TestLexiconEntryString(t *testing.T) {
	entry, err := NewLexiconEntry("tasty", topicFood, true, Good)
	if err != nil {
		t.Fatal(err)
	}
	if got := entry.String(); got != "LexiconEntry(tasty, topic=FOOD, rating=GOOD)" {
		t.Errorf("unexpected string: %s", got)
	}
}

func TestLexiconEntryFor(t *testing.T) {
	lexicon := newTestLexicon(t, `
# lemma,reserved,topic,rating
waiter,,service,
Waiter,,general,
waitress,,service,
wait.*,,general,bad
tasty,,food,good
`)

	tests := []struct {
		token         Token
		expectFound   bool
		expectedLemma string
	}{
		{Token{Text: "waiter", Lemma: "waiter"}, true, "waiter"},
		{Token{Text: "Waiter", Lemma: "waiter"}, true, "Waiter"},
		{Token{Text: "WAITRESS", Lemma: "waitress"}, true, "waitress"},
		{Token{Text: "waiting", Lemma: "wait"}, true, "wait.*"},
		{Token{Text: "cook", Lemma: "cook"}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.token.Text, func(t *testing.T) {
			entry, found := lexicon.EntryFor(tt.token)
			if found != tt.expectFound {
				t.Fatalf("expected found=%v but got %v", tt.expectFound, found)
			}
			if found && entry.Lemma != tt.expectedLemma {
				t.Errorf("expected entry %q but got %s", tt.expectedLemma, entry)
			}
		})
	}
}

func TestLexiconFirstEntryWinsTies(t *testing.T) {
	lexicon := newTestLexicon(t, "soup,,food,\nsoup,,service,\n")
	entry, found := lexicon.EntryFor(Token{Text: "Soup", Lemma: "soup"})
	if !found {
		t.Fatal("soup must be found")
	}
	if entry.Topic != topicFood {
		t.Errorf("expected first entry with FOOD but got %s", entry)
	}
}

func TestLexiconReadCSV(t *testing.T) {
	lexicon := newTestLexicon(t, strings.Join([]string{
		"# comment,,food,good",
		"",
		"  schnitzel , , Food ,",
		"polite,,,GOOD",
		"dirty,,hygiene,very bad",
	}, "\n"))

	if lexicon.Len() != 3 {
		t.Fatalf("expected 3 entries but got %d: %v", lexicon.Len(), lexicon.Entries())
	}

	schnitzel := lexicon.Entries()[0]
	if schnitzel.Lemma != "schnitzel" || !schnitzel.HasTopic || schnitzel.Topic != topicFood || schnitzel.Rating != NoRating {
		t.Errorf("unexpected entry: %s", schnitzel)
	}
	polite := lexicon.Entries()[1]
	if polite.HasTopic || polite.Rating != Good {
		t.Errorf("unexpected entry: %s", polite)
	}
	dirty := lexicon.Entries()[2]
	if dirty.Topic != topicHygiene || dirty.Rating != VeryBad {
		t.Errorf("unexpected entry: %s", dirty)
	}
}

func TestLexiconCompactLayout(t *testing.T) {
	lexicon, err := NewLexicon(testTopics, UsingLayout(CompactLexiconLayout))
	if err != nil {
		t.Fatal(err)
	}
	if err := lexicon.ReadCSV(strings.NewReader("tasty,food,good\n"), "compact.csv"); err != nil {
		t.Fatal(err)
	}
	entry := lexicon.Entries()[0]
	if entry.Topic != topicFood || entry.Rating != Good {
		t.Errorf("unexpected entry: %s", entry)
	}
}

func TestLexiconRejectsUnknownNames(t *testing.T) {
	tests := []struct {
		desc     string
		csvText  string
		expected string
	}{
		{
			"unknown topic",
			"tasty,,food,good\nspoon,,cutlery,\n",
			`broken.csv (R2C3): name "cutlery" for enum testTopic must be one of: food, general, hygiene, service: unknown name`,
		},
		{
			"unknown rating",
			"tasty,,food,good\n\n# comment\nyummy,,food,superb\n",
			`broken.csv (R4C4): name "superb" for enum Rating must be one of: bad, good, somewhat_bad, somewhat_good, very_bad, very_good: unknown name`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			lexicon, err := NewLexicon(testTopics)
			if err != nil {
				t.Fatal(err)
			}
			err = lexicon.ReadCSV(strings.NewReader(tt.csvText), "broken.csv")
			if err == nil {
				t.Fatal("expected an error")
			}
			var csvErr *CSVError
			if !errors.As(err, &csvErr) {
				t.Fatalf("expected a CSVError but got %T: %v", err, err)
			}
			if !errors.Is(err, ErrUnknownName) {
				t.Errorf("expected ErrUnknownName but got: %v", err)
			}
			if err.Error() != tt.expected {
				t.Errorf("unexpected message:\n got: %s\nwant: %s", err, tt.expected)
			}
		})
	}
}

func TestLexiconRejectsDuplicateTopicNames(t *testing.T) {
	_, err := NewLexicon([]caseTopic{"some", "SOME"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName but got: %v", err)
	}
	if !strings.Contains(err.Error(), `case insensitive name "some" for enum caseTopic must be unique`) {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestLexiconReadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.csv")
	// "süß" in ISO-8859-1
	if err := os.WriteFile(path, []byte("s\xfc\xdf,,food,good\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lexicon, err := NewLexicon(testTopics)
	if err != nil {
		t.Fatal(err)
	}
	if err := lexicon.ReadCSVFile(path, "iso-8859-1"); err != nil {
		t.Fatal(err)
	}
	if got := lexicon.Entries()[0].Lemma; got != "süß" {
		t.Errorf("expected süß but got %q", got)
	}

	if err := lexicon.ReadCSVFile(filepath.Join(t.TempDir(), "missing.csv"), DefaultEncoding); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a missing file error but got: %v", err)
	}
}

func TestUnknownLemmas(t *testing.T) {
	lexicon := newTestLexicon(t, "waiter,,service,\ntasty,,food,good\n")
	tokens := []Token{
		{Text: "The", Lemma: "the"},
		{Text: "waiter", Lemma: "waiter"},
		{Text: "brought", Lemma: "bring"},
		{Text: "tasty", Lemma: "tasty"},
		{Text: "soup", Lemma: "soup"},
	}

	got := lexicon.UnknownLemmas(tokens)
	expected := []string{"the", "bring", "soup"}
	if strings.Join(got, ",") != strings.Join(expected, ",") {
		t.Errorf("expected %v but got %v", expected, got)
	}
}
