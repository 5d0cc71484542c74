package model

import (
	"fmt"
	"strings"
)

// Lang selects which word list is loaded
type Lang int

const (
	LangEn Lang = iota
	LangEs
)

// Langs lists every supported language in display order
var Langs = []Lang{LangEn, LangEs}

// Code returns the short code used in word list file names
func (l Lang) Code() string {
	switch l {
	case LangEn:
		return "en"
	case LangEs:
		return "es"
	default:
		return ""
	}
}

func (l Lang) String() string {
	return l.Code()
}

// ParseLang maps a language code (case-insensitive) to a Lang
func ParseLang(code string) (Lang, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en":
		return LangEn, nil
	case "es":
		return LangEs, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLang, code)
	}
}
