package common

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxTitleLength bounds workspace and form titles, counted in runes.
const MaxTitleLength = 200

var (
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrTitleTooLong = errors.New("title is too long")
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// NormalizeTitle trims the input and collapses inner whitespace runs to a
// single space.
func NormalizeTitle(input string) (string, error) {
	title := whitespaceRun.ReplaceAllString(strings.TrimSpace(input), " ")
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}
