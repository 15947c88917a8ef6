package engine

import "github.com/ppiankov/grammatika/internal/model"

// BuiltinRules returns the built-in grammar rule table.
//
// Order matters: rules are applied sequentially to the progressively
// corrected text, so an earlier rule's output is a later rule's input.
// Patterns are compiled case-insensitive; ${n} reinjects the captured
// text verbatim, which is how the user's original capitalization
// survives the rewrite.
func BuiltinRules() []model.Rule {
	return []model.Rule{
		{
			Category:    "Subject-Verb Agreement",
			Pattern:     `\bI (goes|eats|plays|reads|writes)\b`,
			Replacement: "I go",
			Explanation: `🚫 "I" always takes base form verb! ✅ Use "I go" 🌟`,
			Examples:    []string{"❌ I goes to school", "✅ I go to school"},
		},
		// Third-person singular splits into -es and -s rows so "go"
		// inflects to "goes" rather than "gos". Same category and
		// explanation; only the suffix differs.
		{
			Category:    "Subject-Verb Agreement",
			Pattern:     `\b(He|She|It) (go)\b`,
			Replacement: "${1} ${2}es",
			Explanation: `🐰 He/She/It requires verb + "s"! 🎯`,
			Examples:    []string{"❌ He play football", "✅ He plays football"},
		},
		{
			Category:    "Subject-Verb Agreement",
			Pattern:     `\b(He|She|It) (eat|play|read|write)\b`,
			Replacement: "${1} ${2}s",
			Explanation: `🐰 He/She/It requires verb + "s"! 🎯`,
			Examples:    []string{"❌ He play football", "✅ He plays football"},
		},
		{
			Category:    "Tense Consistency",
			Pattern:     `\b(I am|You are|He is|She is|It is|We are|They are) (go|eat|play)\b`,
			Replacement: "${1} ${2}ing",
			Explanation: `📥 Present continuous requires verb + "ing"! 🌈`,
			Examples:    []string{"❌ I am go to school", "✅ I am going to school"},
		},
		{
			Category:    "Verb Forms",
			Pattern:     `\b(I|You|We|They) (was)\b`,
			Replacement: "${1} were",
			Explanation: `🦊 I/You/We/They use "were" in past tense! 🎀`,
			Examples:    []string{"❌ They was happy", "✅ They were happy"},
		},
		// Capturing the auxiliary and suffixing -es keeps its original
		// capitalization: "Do she" becomes "Does she".
		{
			Category:    "Auxiliary Verbs",
			Pattern:     `\b(do) (he|she|it)\b`,
			Replacement: "${1}es ${2}",
			Explanation: `🤪 He/She/It uses "does" as auxiliary! 🥳`,
			Examples:    []string{"❌ Do she like music?", "✅ Does she like music?"},
		},
	}
}
