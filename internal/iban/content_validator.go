package iban

import (
	"strings"

	"iban-scanner/internal/utils"
)

// ContentValidator is the contract a text recognizer calls for every
// recognized frame: Clean first, then Validate on the cleaned text.
type ContentValidator interface {
	Clean(raw string) string
	Validate(cleaned string) bool
}

type Callback struct{}

func (Callback) Clean(raw string) string {
	return utils.StripSpaces(raw)
}

func (Callback) Validate(cleaned string) bool {
	return IsValid(strings.TrimSpace(cleaned))
}
