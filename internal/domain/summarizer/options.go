package summarizer

import (
	"strings"
	"unicode"
)

// Length controls how long the summary should be.
type Length string

// Tone controls the voice of the summary.
type Tone string

// Format controls the structure of the summary.
type Format string

const (
	LengthShort    Length = "Short"
	LengthMedium   Length = "Medium"
	LengthDetailed Length = "Detailed"
)

const (
	ToneNeutral      Tone = "Neutral"
	ToneSimple       Tone = "Simple"
	ToneProfessional Tone = "Professional"
	ToneCasual       Tone = "Casual"
	ToneKidFriendly  Tone = "Kid-friendly"
)

const (
	FormatBullets          Format = "Bullets"
	FormatParagraph        Format = "Paragraph"
	FormatBulletsParagraph Format = "Bullets + Paragraph"
	FormatTLDR             Format = "TL;DR"
)

const (
	MinTemperature float32 = 0
	MaxTemperature float32 = 1
)

var (
	allLengths = []Length{LengthShort, LengthMedium, LengthDetailed}
	allTones   = []Tone{ToneNeutral, ToneSimple, ToneProfessional, ToneCasual, ToneKidFriendly}
	allFormats = []Format{FormatBullets, FormatParagraph, FormatBulletsParagraph, FormatTLDR}
)

// Lengths lists the supported lengths in display order.
func Lengths() []Length { return append([]Length(nil), allLengths...) }

// Tones lists the supported tones in display order.
func Tones() []Tone { return append([]Tone(nil), allTones...) }

// Formats lists the supported formats in display order.
func Formats() []Format { return append([]Format(nil), allFormats...) }

// Valid reports whether l is one of the supported lengths.
func (l Length) Valid() bool { return contains(allLengths, l) }

// Valid reports whether t is one of the supported tones.
func (t Tone) Valid() bool { return contains(allTones, t) }

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool { return contains(allFormats, f) }

// ParseLength maps user input onto a Length. Blank input selects Short;
// unknown input is returned as-is and later hits the instruction fallback.
func ParseLength(s string) Length { return parse(s, allLengths, LengthShort) }

// ParseTone maps user input onto a Tone, defaulting to Neutral.
func ParseTone(s string) Tone { return parse(s, allTones, ToneNeutral) }

// ParseFormat maps user input onto a Format, defaulting to Bullets.
func ParseFormat(s string) Format { return parse(s, allFormats, FormatBullets) }

func parse[T ~string](s string, known []T, def T) T {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	key := canonical(s)
	for _, k := range known {
		if canonical(string(k)) == key {
			return k
		}
	}
	return T(s)
}

// canonical folds case and drops punctuation so "kid_friendly", "TL;DR"
// and "bullets+paragraph" match their display labels.
func canonical(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}

func contains[T comparable](items []T, v T) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
