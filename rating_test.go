package opine

import (
	"errors"
	"testing"
)

func TestNegatedRating(t *testing.T) {
	tests := []struct {
		rating   Rating
		expected Rating
	}{
		{VeryBad, SomewhatGood},
		{Bad, Good},
		{SomewhatBad, Good},
		{SomewhatGood, Bad},
		{Good, Bad},
		{VeryGood, SomewhatBad},
	}

	for _, tt := range tests {
		t.Run(tt.rating.String(), func(t *testing.T) {
			if got := tt.rating.Negated(); got != tt.expected {
				t.Errorf("Negated(%s) = %s, expected %s", tt.rating, got, tt.expected)
			}
		})
	}

	for _, rating := range Ratings() {
		if rating.Negated() == NoRating {
			t.Errorf("Negated(%s) must be a rating", rating)
		}
	}
}

func TestIntensifiedRating(t *testing.T) {
	tests := []struct {
		rating   Rating
		expected Rating
	}{
		{VeryBad, VeryBad},
		{Bad, VeryBad},
		{SomewhatBad, Bad},
		{NoRating, NoRating},
		{SomewhatGood, Good},
		{Good, VeryGood},
		{VeryGood, VeryGood},
	}

	for _, tt := range tests {
		if got := tt.rating.Intensified(); got != tt.expected {
			t.Errorf("Intensified(%s) = %s, expected %s", tt.rating, got, tt.expected)
		}
	}
}

func TestDiminishedRating(t *testing.T) {
	tests := []struct {
		rating   Rating
		expected Rating
	}{
		{VeryBad, Bad},
		{Bad, SomewhatBad},
		{SomewhatBad, SomewhatBad},
		{SomewhatGood, SomewhatGood},
		{Good, SomewhatGood},
		{VeryGood, Good},
	}

	for _, tt := range tests {
		if got := tt.rating.Diminished(); got != tt.expected {
			t.Errorf("Diminished(%s) = %s, expected %s", tt.rating, got, tt.expected)
		}
	}
}

func TestRangedRating(t *testing.T) {
	tests := []struct {
		value    int
		expected Rating
	}{
		{int(VeryGood) + 1, VeryGood},
		{int(VeryGood) + 100, VeryGood},
		{int(VeryBad) - 1, VeryBad},
		{-2, Bad},
		{1, SomewhatGood},
	}

	for _, tt := range tests {
		got, err := RangedRating(tt.value)
		if err != nil {
			t.Fatalf("RangedRating(%d) failed: %v", tt.value, err)
		}
		if got != tt.expected {
			t.Errorf("RangedRating(%d) = %s, expected %s", tt.value, got, tt.expected)
		}
	}

	if _, err := RangedRating(0); !errors.Is(err, ErrNoRating) {
		t.Errorf("RangedRating(0) must fail with ErrNoRating but got: %v", err)
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		name     string
		expected Rating
	}{
		{"good", Good},
		{"VERY_GOOD", VeryGood},
		{" very bad ", VeryBad},
		{"Somewhat Good", SomewhatGood},
	}

	for _, tt := range tests {
		got, err := ParseRating(tt.name)
		if err != nil {
			t.Fatalf("ParseRating(%q) failed: %v", tt.name, err)
		}
		if got != tt.expected {
			t.Errorf("ParseRating(%q) = %s, expected %s", tt.name, got, tt.expected)
		}
	}

	if _, err := ParseRating("excellent"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("expected ErrUnknownName but got: %v", err)
	}
}

func TestRatingText(t *testing.T) {
	text, err := SomewhatBad.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "somewhat_bad" {
		t.Errorf("expected somewhat_bad but got %q", text)
	}

	var rating Rating
	if err := rating.UnmarshalText([]byte("very good")); err != nil {
		t.Fatal(err)
	}
	if rating != VeryGood {
		t.Errorf("expected VERY_GOOD but got %s", rating)
	}

	if _, err := NoRating.MarshalText(); !errors.Is(err, ErrNoRating) {
		t.Errorf("expected ErrNoRating but got: %v", err)
	}
	if NoRating.String() != "NONE" {
		t.Errorf("expected NONE but got %s", NoRating)
	}
}
