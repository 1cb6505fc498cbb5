package opine

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplacedSynonyms(t *testing.T) {
	synonyms, err := CompileSynonyms(map[string]string{
		"laptop":     "notebook",
		"waitstaff":  "waiter",
		"schnitzel":  "escalope",
		"best bites": "food",
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		text     string
		expected string
	}{
		{"My laptop is slow.", "My notebook is slow."},
		{"My LAPTOP is slow.", "My notebook is slow."},
		{"The laptops are slow.", "The laptops are slow."},
		{"The waitstaff was nice", "The waiter was nice"},
		{"Wienerschnitzel", "Wienerschnitzel"},
		{"Best bites in town", "food in town"},
		{"Nothing to see here.", "Nothing to see here."},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ReplacedSynonyms(tt.text, synonyms); got != tt.expected {
				t.Errorf("expected %q but got %q", tt.expected, got)
			}
		})
	}
}

func TestReplacedSynonymsRespectsUnicodeWords(t *testing.T) {
	synonyms, err := CompileSynonyms(map[string]string{"gut": "prima"})
	if err != nil {
		t.Fatal(err)
	}
	if got := ReplacedSynonyms("Das Gütesiegel ist gut.", synonyms); got != "Das Gütesiegel ist prima." {
		t.Errorf("unexpected result %q", got)
	}
	if got := ReplacedSynonyms("Übergut", synonyms); got != "Übergut" {
		t.Errorf("unexpected result %q", got)
	}
}

func TestReplacedAbbreviations(t *testing.T) {
	abbreviations, err := CompileAbbreviations(map[string]string{
		"ev":  "eventuell",
		"z.B": "zum Beispiel",
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		text     string
		expected string
	}{
		{"Das wäre ev. angenehm", "Das wäre eventuell angenehm"},
		{"sehr freundlich, z.B. Josef", "sehr freundlich, zum Beispiel Josef"},
		{"Das wäre eventuell angenehm", "Das wäre eventuell angenehm"},
		{"Chev. Chase", "Chev. Chase"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ReplacedAbbreviations(tt.text, abbreviations); got != tt.expected {
				t.Errorf("expected %q but got %q", tt.expected, got)
			}
		})
	}
}

func TestReplacedIdioms(t *testing.T) {
	idioms, err := CompileIdioms(LanguageSentimentFor("en", nil))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		text     string
		expected string
	}{
		{"The soup was not up to par.", "The soup was not good."},
		{"The soup was Below Par.", "The soup was bad."},
		{"We were over the moon!", "We were very good!"},
		{"The soup was hot.", "The soup was hot."},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ReplacedIdioms(tt.text, idioms); got != tt.expected {
				t.Errorf("expected %q but got %q", tt.expected, got)
			}
		})
	}
}

func TestReplacementsOrder(t *testing.T) {
	synonyms, err := CompileSynonyms(map[string]string{
		"ice":       "dessert",
		"ice cream": "dessert",
		"cream":     "dairy",
	})
	if err != nil {
		t.Fatal(err)
	}
	items := synonyms.Items()
	if items[0].Source != "ice cream" {
		t.Errorf("longest source must come first but got %q", items[0].Source)
	}
	if got := ReplacedSynonyms("ice cream", synonyms); got != "dessert" {
		t.Errorf("unexpected result %q", got)
	}
}

func TestReplacementsRejectBlankSource(t *testing.T) {
	if _, err := CompileSynonyms(map[string]string{" ": "x"}); !errors.Is(err, ErrMissingValue) {
		t.Errorf("expected ErrMissingValue but got: %v", err)
	}
}

func TestReplaceLogsAtDebugLevel(t *testing.T) {
	synonyms, err := CompileSynonyms(map[string]string{"laptop": "notebook"})
	if err != nil {
		t.Fatal(err)
	}
	core, logs := observer.New(zapcore.DebugLevel)

	synonyms.Replace("laptop", zap.New(core))
	synonyms.Replace("desktop", zap.New(core))

	entries := logs.FilterMessage("replaced synonym").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry but got %d", len(entries))
	}
	if source := entries[0].ContextMap()["source"]; source != "laptop" {
		t.Errorf("unexpected source %v", source)
	}
}

func TestNormalizer(t *testing.T) {
	abbreviations, err := CompileAbbreviations(map[string]string{"approx": "approximately"})
	if err != nil {
		t.Fatal(err)
	}
	idioms, err := CompileIdioms(LanguageSentimentFor("en", nil))
	if err != nil {
		t.Fatal(err)
	}
	emoticons, err := DefaultEmoticons()
	if err != nil {
		t.Fatal(err)
	}
	normalizer := &Normalizer{
		Abbreviations: abbreviations,
		Emoticons:     emoticons,
		Idioms:        idioms,
	}

	got := normalizer.Normalize("Waited approx. an hour, not up to par :-(")
	expected := "Waited approximately an hour, not good emoji__sad_face "
	if got != expected {
		t.Errorf("expected %q but got %q", expected, got)
	}

	// Decomposed "é" is composed before matching.
	if got := normalizer.Normalize("cafe\u0301"); got != "caf\u00e9" {
		t.Errorf("expected composed text but got %q", got)
	}
}
