package profile

// LengthProfile pairs a bullet-count instruction with an approximate upper
// bound on generated output size for one summary verbosity tier.
type LengthProfile struct {
	Key               string `json:"key"`
	BulletInstruction string `json:"-"`
	MaxOutputTokens   int    `json:"max_output_tokens"`
}

// DefaultLengthKey is used when the caller does not pick a tier.
const DefaultLengthKey = "medium"

var lengths = map[string]LengthProfile{
	"short": {
		Key:               "short",
		BulletInstruction: "Summarize the article in 2-3 bullet points covering only the most important facts.",
		MaxOutputTokens:   300,
	},
	"medium": {
		Key:               "medium",
		BulletInstruction: "Summarize the article in 4-6 bullet points covering the key facts and context.",
		MaxOutputTokens:   600,
	},
	"detailed": {
		Key:               "detailed",
		BulletInstruction: "Summarize the article in 7-10 bullet points covering the facts, context, and notable details.",
		MaxOutputTokens:   1200,
	},
}

// lengthKeys fixes the tier order from shortest to most detailed.
var lengthKeys = []string{"short", "medium", "detailed"}

// LookupLength resolves a length tier key to its profile. Unknown keys are a
// validation failure for the caller.
func LookupLength(key string) (LengthProfile, bool) {
	p, ok := lengths[key]
	return p, ok
}

// LengthKeys returns the supported tier keys ordered short to detailed.
func LengthKeys() []string {
	keys := make([]string, len(lengthKeys))
	copy(keys, lengthKeys)
	return keys
}
