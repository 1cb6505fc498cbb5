package opine

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// EmojiPrefix marks the unified name of an emoticon or emoji, for example
// "emoji__happy_face".
const EmojiPrefix = "emoji__"

//go:embed data/emoticons.csv
var defaultEmoticonsCSV []byte

// An Emoticon is the unified name and default rating of an emoticon glyph.
type Emoticon struct {
	Name   string
	Rating Rating
}

// Token returns the unified token the emoticon is replaced with.
func (e Emoticon) Token() string {
	return EmojiPrefix + e.Name
}

// An EmoticonTable maps emoticons such as ":-)" and emojis such as "🙂" to
// unified names.
type EmoticonTable struct {
	emoticons map[string]Emoticon
	// Glyphs sorted longest first so ":-)))" is not eaten by ":-)".
	glyphs []string
}

// DefaultEmoticons returns the built-in table of common western and eastern
// emoticons and emojis.
func DefaultEmoticons() (*EmoticonTable, error) {
	return ReadEmoticonCSV(bytes.NewReader(defaultEmoticonsCSV), "emoticons.csv")
}

// ReadEmoticonCSV reads rows of emoticon, name, rating. All cells are
// mandatory and emoticons must be unique. Spaces in names become
// underscores.
func ReadEmoticonCSV(r io.Reader, path string) (*EmoticonTable, error) {
	table := &EmoticonTable{emoticons: make(map[string]Emoticon)}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &CSVError{Path: path, Err: err}
		}
		line, _ := reader.FieldPos(0)
		cells := make([]string, 3)
		for i := range cells {
			if i < len(row) {
				cells[i] = strings.TrimSpace(row[i])
			}
			if cells[i] == "" {
				return nil, &CSVError{Path: path, Row: line, Column: i + 1,
					Err: fmt.Errorf("%s: %w", [...]string{"emoticon", "name", "rating"}[i], ErrMissingValue)}
			}
		}
		glyph, name := cells[0], strings.ReplaceAll(cells[1], " ", "_")
		if _, found := table.emoticons[glyph]; found {
			return nil, &CSVError{Path: path, Row: line, Column: 1,
				Err: fmt.Errorf("emoticon %q: %w", glyph, ErrDuplicateEmoticon)}
		}
		rating, err := ParseRating(cells[2])
		if err != nil {
			return nil, &CSVError{Path: path, Row: line, Column: 3, Err: err}
		}
		table.emoticons[glyph] = Emoticon{Name: name, Rating: rating}
	}
	table.glyphs = slices.SortedFunc(maps.Keys(table.emoticons), func(a, b string) int {
		if d := utf8.RuneCountInString(b) - utf8.RuneCountInString(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	return table, nil
}

// Len returns the number of emoticons in the table.
func (t *EmoticonTable) Len() int {
	return len(t.emoticons)
}

// Lookup returns the emoticon for glyph.
func (t *EmoticonTable) Lookup(glyph string) (Emoticon, bool) {
	emoticon, ok := t.emoticons[glyph]
	return emoticon, ok
}

// Ratings maps each unified token, e.g. "emoji__happy_face", to its rating.
func (t *EmoticonTable) Ratings() map[string]Rating {
	result := make(map[string]Rating, len(t.emoticons))
	for _, emoticon := range t.emoticons {
		result[emoticon.Token()] = emoticon.Rating
	}
	return result
}

// Unify replaces every emoticon in text by its unified token followed by a
// space. The glyphs are literal text, not patterns.
func (t *EmoticonTable) Unify(text string, logger *zap.Logger) string {
	result := text
	for _, glyph := range t.glyphs {
		if !strings.Contains(result, glyph) {
			continue
		}
		target := t.emoticons[glyph].Token() + " "
		result = strings.ReplaceAll(result, glyph, target)
		if logger != nil {
			logger.Debug("unified emoticon", zap.String("emoticon", glyph), zap.String("target", target))
		}
	}
	return result
}
