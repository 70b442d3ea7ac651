package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Malayalam, ParseLanguage("ml"))
	assert.Equal(t, English, ParseLanguage("en"))
	// Anything unrecognised falls back to English.
	assert.Equal(t, English, ParseLanguage(""))
	assert.Equal(t, English, ParseLanguage("hi"))
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Malayalam, English.Toggle())
	assert.Equal(t, English, Malayalam.Toggle())
}

func TestResolveFallsBackToEnglish(t *testing.T) {
	both := LocalizedText{EN: "Donate", ML: "സംഭാവന ചെയ്യുക"}
	assert.Equal(t, "സംഭാവന ചെയ്യുക", Resolve(both, Malayalam))
	assert.Equal(t, "Donate", Resolve(both, English))

	englishOnly := LocalizedText{EN: "Donate"}
	assert.Equal(t, "Donate", Resolve(englishOnly, Malayalam))
}

func TestPlain(t *testing.T) {
	p := Plain("₹1,000")
	assert.Equal(t, "₹1,000", Resolve(p, English))
	assert.Equal(t, "₹1,000", Resolve(p, Malayalam))
}
