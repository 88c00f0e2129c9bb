package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Pure field predicates. No I/O; callers map a false return to the
// specific named error for that field.

// Canadian postal code: letter-digit-letter digit-letter-digit.
var postalCodeRegex = regexp.MustCompile(
	`^[ABCEGHJKLMNPRSTVXY][0-9][ABCEGHJKLMNPRSTVWXYZ][0-9][ABCEGHJKLMNPRSTVWXYZ][0-9]$`)

var whitespaceRegex = regexp.MustCompile(`\s`)

var emailValidate = validator.New()

// IsValidEmail reports whether email conforms to standard email-address
// grammar.
func IsValidEmail(email string) bool {
	return emailValidate.Var(email, "email") == nil
}

// IsValidName accepts first/last names of 1 to 20 characters. Lengths
// are counted in runes so accented names are not penalised for their
// byte width.
func IsValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 1 && n <= 20
}

// IsValidHeadline accepts headlines of up to 50 characters.
func IsValidHeadline(headline string) bool {
	return utf8.RuneCountInString(headline) <= 50
}

// IsValidBio accepts bios of up to 1000 characters.
func IsValidBio(bio string) bool {
	return utf8.RuneCountInString(bio) <= 1000
}

// IsValidRate accepts hourly rates between 15 and 1000 inclusive.
func IsValidRate(rate int) bool {
	return rate >= 15 && rate <= 1000
}

// IsValidPerPage accepts page sizes strictly between 0 and 50.
func IsValidPerPage(perPage int) bool {
	return perPage > 0 && perPage < 50
}

// IsValidPostalCode accepts either "T2N4V5" or "T2N 4V5" format.
func IsValidPostalCode(postalCode string) bool {
	return postalCodeRegex.MatchString(NormalizePostalCode(postalCode))
}

// NormalizePostalCode uppercases and strips whitespace, yielding the
// canonical stored form.
func NormalizePostalCode(postalCode string) string {
	return whitespaceRegex.ReplaceAllString(strings.ToUpper(postalCode), "")
}
