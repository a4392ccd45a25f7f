package regdata

import (
	"sort"
	"strings"
)

// Glossary is a keyword-indexed lookup from a regulation term to its
// canonical definition, used to enrich parsing prompts. Pure query; holds no
// pipeline state.
type Glossary struct {
	terms map[string]string
}

// DefaultGlossary covers the regimes and data categories the analysis chain
// reasons about.
func DefaultGlossary() *Glossary {
	return &Glossary{terms: map[string]string{
		"gdpr":           "GDPR (EU): regulates personal data processing, consent, and data subject rights.",
		"ccpa":           "CCPA (California): consumer privacy rights including access, deletion, and opt-out of data sales.",
		"cpra":           "CPRA (California): amends CCPA with sensitive-data limits and a dedicated enforcement agency.",
		"pipl":           "PIPL (China): personal information protection, data localization, and cross-border transfer rules.",
		"lgpd":           "LGPD (Brazil): data protection law defining legal bases and data subject rights.",
		"biometric":      "Biometric data: measurable physical characteristics (fingerprint, face, voice) treated as sensitive under BIPA and similar laws.",
		"geolocation":    "Precise geolocation: location data accurate enough to identify a person's movements; sensitive category in most state privacy laws.",
		"consent":        "Consent: freely given, specific, informed agreement to data processing, revocable at any time.",
		"data broker":    "Data broker: a business that sells personal information it did not collect directly from the consumer.",
		"opt-out":        "Opt-out: consumer mechanism to refuse data sales or targeted advertising.",
		"data residency": "Data residency: requirement that certain data stay within a jurisdiction's borders.",
		"minor":          "Minor's data: information about children, subject to parental-consent and age-verification duties (COPPA and state analogues).",
	}}
}

// Lookup returns the canonical definition for a term, case-insensitive.
func (g *Glossary) Lookup(term string) (string, bool) {
	def, ok := g.terms[strings.ToLower(strings.TrimSpace(term))]
	return def, ok
}

// Enrich scans text for known terms and returns up to max definitions,
// sorted by term so the prompt stays deterministic.
func (g *Glossary) Enrich(text string, max int) []string {
	lower := strings.ToLower(text)
	var keys []string
	for term := range g.terms {
		if strings.Contains(lower, term) {
			keys = append(keys, term)
		}
	}
	sort.Strings(keys)
	if max > 0 && len(keys) > max {
		keys = keys[:max]
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, g.terms[k])
	}
	return out
}
