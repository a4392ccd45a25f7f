package regdata

import "sort"

// RiskTier classifies how aggressively a jurisdiction regulates.
type RiskTier string

const (
	TierLow    RiskTier = "low"
	TierMedium RiskTier = "medium"
	TierHigh   RiskTier = "high"
)

// JurisdictionRecord is one jurisdiction's regulation profile.
type JurisdictionRecord struct {
	Code             string   `json:"state_code"`
	Name             string   `json:"state_name"`
	Regulations      []string `json:"regulations"`
	RiskTier         RiskTier `json:"risk_tier"`
	EnforcementLevel string   `json:"enforcement_level"`
	KeyRequirements  []string `json:"key_requirements"`
	Penalties        []string `json:"penalties"`
	EffectiveDate    string   `json:"effective_date"`
	Notes            string   `json:"notes"`
}

// Catalog is the process-wide jurisdiction reference store. It is immutable
// after construction and safe for concurrent readers without locking.
type Catalog struct {
	byCode map[string]JurisdictionRecord
	order  []string
}

// NewCatalog builds a catalog from records. Codes are ordered
// lexicographically so ListAll is deterministic across runs.
func NewCatalog(records []JurisdictionRecord) *Catalog {
	c := &Catalog{byCode: make(map[string]JurisdictionRecord, len(records))}
	for _, r := range records {
		if _, dup := c.byCode[r.Code]; dup {
			continue
		}
		c.byCode[r.Code] = r
		c.order = append(c.order, r.Code)
	}
	sort.Strings(c.order)
	return c
}

// Default returns the catalog for the 50 US states.
func Default() *Catalog {
	return NewCatalog(usStates)
}

// Get looks up a jurisdiction by code.
func (c *Catalog) Get(code string) (JurisdictionRecord, bool) {
	r, ok := c.byCode[code]
	return r, ok
}

// ListAll returns every jurisdiction code in a fixed, deterministic order.
func (c *Catalog) ListAll() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// ListHighRisk returns the codes whose tier warrants generation-backed batch
// analysis, in catalog order.
func (c *Catalog) ListHighRisk() []string {
	var out []string
	for _, code := range c.order {
		if c.byCode[code].RiskTier == TierHigh {
			out = append(out, code)
		}
	}
	return out
}

// Len reports the number of jurisdictions.
func (c *Catalog) Len() int { return len(c.order) }
