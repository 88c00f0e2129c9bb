package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPostalCode(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPostalCode("T2N4V5"))
	assert.True(t, IsValidPostalCode("T2N 4V5"))
	assert.True(t, IsValidPostalCode("t2n 4v5"))

	assert.False(t, IsValidPostalCode("12345"))
	assert.False(t, IsValidPostalCode(""))
	assert.False(t, IsValidPostalCode("T2N4V"))
	assert.False(t, IsValidPostalCode("T2N4V55"))
	// D, F, I, O, Q, U never lead a Canadian postal code.
	assert.False(t, IsValidPostalCode("D2N4V5"))
}

func TestNormalizePostalCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "T2N4V5", NormalizePostalCode("t2n 4v5"))
	assert.Equal(t, "T2N4V5", NormalizePostalCode("T2N4V5"))
	assert.Equal(t, "T2N4V5", NormalizePostalCode(" T2N\t4V5 "))
}

func TestIsValidRate(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidRate(15))
	assert.True(t, IsValidRate(1000))
	assert.True(t, IsValidRate(45))

	assert.False(t, IsValidRate(14))
	assert.False(t, IsValidRate(1001))
	assert.False(t, IsValidRate(0))
	assert.False(t, IsValidRate(-20))
}

func TestIsValidPerPage(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPerPage(1))
	assert.True(t, IsValidPerPage(49))

	assert.False(t, IsValidPerPage(0))
	assert.False(t, IsValidPerPage(50))
	assert.False(t, IsValidPerPage(-1))
}

func TestIsValidName(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidName("A"))
	assert.True(t, IsValidName(strings.Repeat("a", 20)))
	// 18 characters, 21 bytes in UTF-8.
	assert.True(t, IsValidName("Anne-Ségolène Dubé"))
	assert.True(t, IsValidName(strings.Repeat("é", 20)))

	assert.False(t, IsValidName(""))
	assert.False(t, IsValidName(strings.Repeat("a", 21)))
	assert.False(t, IsValidName(strings.Repeat("é", 21)))
}

func TestIsValidHeadline(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidHeadline(""))
	assert.True(t, IsValidHeadline(strings.Repeat("a", 50)))
	assert.True(t, IsValidHeadline(strings.Repeat("é", 50)))
	assert.False(t, IsValidHeadline(strings.Repeat("a", 51)))
}

func TestIsValidBio(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidBio(strings.Repeat("a", 1000)))
	assert.False(t, IsValidBio(strings.Repeat("a", 1001)))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmail("student@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
}
