package profile

// LanguageProfile pairs a supported output language with the instruction
// used to translate a finished summary into it. Summaries are always
// generated in the base language first; translation happens afterward.
type LanguageProfile struct {
	Key  string `json:"key"`
	Code string `json:"code"`
	Name string `json:"name"`

	// TranslationInstruction is empty exactly for the base language,
	// which never goes through the translation step.
	TranslationInstruction string `json:"-"`
}

// IsBase reports whether this profile is the base language.
func (p LanguageProfile) IsBase() bool {
	return p.TranslationInstruction == ""
}

// BaseLanguageKey is the language summaries are generated in before any
// translation is applied.
const BaseLanguageKey = "english"

var languages = map[string]LanguageProfile{
	"english": {
		Key:  "english",
		Code: "EN",
		Name: "English",
	},
	"spanish": {
		Key:                    "spanish",
		Code:                   "ES",
		Name:                   "Spanish",
		TranslationInstruction: "Translate the following summary into Spanish (español), keeping every bullet point on its own line.",
	},
	"french": {
		Key:                    "french",
		Code:                   "FR",
		Name:                   "French",
		TranslationInstruction: "Translate the following summary into French (français), keeping every bullet point on its own line.",
	},
	"german": {
		Key:                    "german",
		Code:                   "DE",
		Name:                   "German",
		TranslationInstruction: "Translate the following summary into German (Deutsch), keeping every bullet point on its own line.",
	},
	"portuguese": {
		Key:                    "portuguese",
		Code:                   "PT",
		Name:                   "Portuguese",
		TranslationInstruction: "Translate the following summary into Portuguese (português), keeping every bullet point on its own line.",
	},
	"hindi": {
		Key:                    "hindi",
		Code:                   "HI",
		Name:                   "Hindi",
		TranslationInstruction: "Translate the following summary into Hindi (हिन्दी), keeping every bullet point on its own line.",
	},
}

// languageKeys fixes the order languages are listed in (base language first).
var languageKeys = []string{"english", "spanish", "french", "german", "portuguese", "hindi"}

// LookupLanguage resolves a language key to its profile. Unknown keys are a
// validation failure for the caller; there is no fallback to the base language.
func LookupLanguage(key string) (LanguageProfile, bool) {
	p, ok := languages[key]
	return p, ok
}

// LanguageKeys returns the supported language keys in display order.
func LanguageKeys() []string {
	keys := make([]string, len(languageKeys))
	copy(keys, languageKeys)
	return keys
}
