package model

import (
	"strings"
	"unicode/utf8"
)

const (
	MinTitleLen    = 3
	MinSubtitleLen = 5
)

// FieldErrors holds at most one message per form field.
// An empty message means the field is fine.
type FieldErrors struct {
	Title    string
	Subtitle string
}

// Valid reports whether the form may be submitted.
func (e FieldErrors) Valid() bool { return e.Title == "" && e.Subtitle == "" }

// Messages lists the non-empty messages, title first.
func (e FieldErrors) Messages() []string {
	var out []string
	if e.Title != "" {
		out = append(out, e.Title)
	}
	if e.Subtitle != "" {
		out = append(out, e.Subtitle)
	}
	return out
}

// Validate checks the two free-text fields of the item form.
// Lengths are counted in runes after trimming surrounding whitespace.
func Validate(title, subtitle string) FieldErrors {
	var fe FieldErrors

	title = strings.TrimSpace(title)
	switch {
	case title == "":
		fe.Title = "Title is required."
	case utf8.RuneCountInString(title) < MinTitleLen:
		fe.Title = "Title must be at least 3 characters."
	}

	subtitle = strings.TrimSpace(subtitle)
	switch {
	case subtitle == "":
		fe.Subtitle = "Subtitle is required."
	case utf8.RuneCountInString(subtitle) < MinSubtitleLen:
		fe.Subtitle = "Subtitle must be at least 5 characters."
	}
	return fe
}
