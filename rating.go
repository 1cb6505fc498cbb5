package opine

import (
	"errors"
	"fmt"
	"strings"
)

// A Rating is an ordinal polarity on a scale from VeryBad to VeryGood.
//
// The zero value NoRating means that nothing was rated; it is not a member
// of the scale and none of the transforms below ever produce it from a rated
// value.
type Rating int

const (
	VeryBad Rating = iota - 3
	Bad
	SomewhatBad
	NoRating
	SomewhatGood
	Good
	VeryGood
)

// ErrNoRating is returned when a value has no matching rating.
var ErrNoRating = errors.New("no rating for value")

var ratingNames = map[Rating]string{
	VeryBad:      "VERY_BAD",
	Bad:          "BAD",
	SomewhatBad:  "SOMEWHAT_BAD",
	SomewhatGood: "SOMEWHAT_GOOD",
	Good:         "GOOD",
	VeryGood:     "VERY_GOOD",
}

// The SOMEWHAT_* rows are guesses that have never been validated against
// real feedback; they are kept for compatibility with existing lexicons.
var negatedRatings = map[Rating]Rating{
	VeryBad:      SomewhatGood,
	Bad:          Good,
	SomewhatBad:  Good,
	SomewhatGood: Bad,
	Good:         Bad,
	VeryGood:     SomewhatBad,
}

// Ratings returns all members of the rating scale, worst first.
func Ratings() []Rating {
	return []Rating{VeryBad, Bad, SomewhatBad, SomewhatGood, Good, VeryGood}
}

// String returns the enum style name of the rating, for example "VERY_GOOD".
func (r Rating) String() string {
	if name, ok := ratingNames[r]; ok {
		return name
	}
	if r == NoRating {
		return "NONE"
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// MarshalText encodes the rating as its lowercase name.
func (r Rating) MarshalText() ([]byte, error) {
	if _, ok := ratingNames[r]; !ok {
		return nil, fmt.Errorf("rating %d: %w", int(r), ErrNoRating)
	}
	return []byte(strings.ToLower(r.String())), nil
}

// UnmarshalText accepts rating names case-insensitively with spaces or
// underscores, for example "very good" or "VERY_GOOD".
func (r *Rating) UnmarshalText(text []byte) error {
	rating, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = rating
	return nil
}

// ParseRating returns the rating named name.
func ParseRating(name string) (Rating, error) {
	key := enumKey(name)
	for _, rating := range Ratings() {
		if strings.ToLower(rating.String()) == key {
			return rating, nil
		}
	}
	return NoRating, fmt.Errorf("name %q for enum Rating must be one of: %s: %w",
		name, strings.Join(sortedNames(Ratings()), ", "), ErrUnknownName)
}

// Negated returns the rating of the negated statement. The mapping is not a
// sign flip: negating an extreme lands on the mild opposite.
func (r Rating) Negated() Rating {
	return negatedRatings[r]
}

// Intensified moves the rating one step away from zero, stopping at the
// extremes of the scale.
func (r Rating) Intensified() Rating {
	if r == NoRating {
		return NoRating
	}
	result, _ := RangedRating(int(r) + signum(int(r)))
	return result
}

// Diminished moves the rating one step towards zero. Ratings next to zero
// stay unchanged.
func (r Rating) Diminished() Rating {
	value := int(r)
	if value > 1 || value < -1 {
		return Rating(value - signum(value))
	}
	return r
}

// RangedRating clamps value into the rating scale and returns the matching
// rating. Zero has no rating.
func RangedRating(value int) (Rating, error) {
	value = min(int(VeryGood), max(int(VeryBad), value))
	rating := Rating(value)
	if _, ok := ratingNames[rating]; !ok {
		return NoRating, fmt.Errorf("value %d: %w", value, ErrNoRating)
	}
	return rating, nil
}

func signum(value int) int {
	switch {
	case value > 0:
		return 1
	case value < 0:
		return -1
	default:
		return 0
	}
}
