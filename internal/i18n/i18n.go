package i18n

// Language is the two-valued interface language preference.
type Language string

const (
	English   Language = "en"
	Malayalam Language = "ml"
)

// ParseLanguage maps a stored preference string to a Language, defaulting to
// English for anything unrecognised.
func ParseLanguage(s string) Language {
	switch s {
	case string(Malayalam):
		return Malayalam
	default:
		return English
	}
}

// Toggle flips between the two supported languages.
func (l Language) Toggle() Language {
	if l == Malayalam {
		return English
	}
	return Malayalam
}

// LocalizedText carries a string in both supported languages.
type LocalizedText struct {
	EN string `json:"en"`
	ML string `json:"ml"`
}

// Resolve picks the text for the given language, falling back to English
// when the Malayalam rendering is missing.
func Resolve(t LocalizedText, lang Language) string {
	if lang == Malayalam && t.ML != "" {
		return t.ML
	}
	return t.EN
}

// Plain wraps a language-neutral string as LocalizedText.
func Plain(s string) LocalizedText {
	return LocalizedText{EN: s, ML: s}
}
