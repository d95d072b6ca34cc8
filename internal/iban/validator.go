package iban

import (
	"strconv"
	"strings"
	"unicode"
)

const (
	CountryCode = "AZ"

	// ExcludedAccountPrefix отсекает счета, у которых после контрольных цифр идёт AZEN.
	ExcludedAccountPrefix = "AZEN"

	minLength   = 8
	headerLen   = 4
	letterShift = 55
	modulus     = 97
)

type Rejection string

const (
	RejectionNone            Rejection = "none"
	RejectionTooShort        Rejection = "too_short"
	RejectionWrongCountry    Rejection = "wrong_country"
	RejectionExcludedAccount Rejection = "excluded_account"
	RejectionChecksum        Rejection = "checksum"
)

func (r Rejection) String() string {
	return string(r)
}

// Check возвращает первую проверку, которую не прошёл candidate.
// Порядок проверок: длина, код страны, исключённый префикс, MOD97.
func Check(candidate string) Rejection {
	runes := []rune(candidate)

	switch {
	case len(runes) < minLength:
		return RejectionTooShort
	case !strings.HasPrefix(candidate, CountryCode):
		return RejectionWrongCountry
	case strings.HasPrefix(string(runes[headerLen:]), ExcludedAccountPrefix):
		return RejectionExcludedAccount
	case !CheckMod97(candidate):
		return RejectionChecksum
	}

	return RejectionNone
}

// IsValid сообщает, является ли candidate корректным азербайджанским IBAN.
// Пробелы должны быть удалены вызывающей стороной.
func IsValid(candidate string) bool {
	return Check(candidate) == RejectionNone
}

// CheckMod97 проверяет контрольную сумму ISO 7064 MOD97-10.
// Первые четыре символа переносятся в конец, буквы заменяются на code-55,
// остаток считается по цифрам, без big.Int.
func CheckMod97(candidate string) bool {
	runes := []rune(candidate)
	if len(runes) < headerLen {
		return false
	}

	rearranged := make([]rune, 0, len(runes))
	rearranged = append(rearranged, runes[headerLen:]...)
	rearranged = append(rearranged, runes[:headerLen]...)

	remainder := 0
	digits := 0
	for _, r := range rearranged {
		switch {
		case r >= '0' && r <= '9':
			remainder = (remainder*10 + int(r-'0')) % modulus
			digits++
		case unicode.IsLetter(r):
			for _, d := range strconv.Itoa(int(r) - letterShift) {
				remainder = (remainder*10 + int(d-'0')) % modulus
				digits++
			}
		default:
			return false
		}
	}

	return digits > 0 && remainder == 1
}
