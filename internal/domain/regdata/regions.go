package regdata

import "sort"

// RegionProfile is one deployment region's cultural reference record:
// factor categories mapped to the concrete considerations reviewers weigh.
type RegionProfile struct {
	Code    string              `json:"region"`
	Name    string              `json:"region_name"`
	Factors map[string][]string `json:"cultural_factors"`
}

// regionProfiles is the raw cultural reference table. Like the state table
// it is loaded once and never mutated.
var regionProfiles = []RegionProfile{
	{
		Code: "global", Name: "Global baseline",
		Factors: map[string][]string{
			"language":      {"Translation quality", "Local dialects", "Cultural idioms"},
			"religion":      {"Religious holidays", "Dietary restrictions", "Prayer times"},
			"social_norms":  {"Gender roles", "Age hierarchy", "Social customs"},
			"values":        {"Individualism vs collectivism", "Time orientation", "Power distance"},
			"communication": {"Direct vs indirect", "Formality levels", "Non-verbal cues"},
		},
	},
	{
		Code: "north_america", Name: "North America",
		Factors: map[string][]string{
			"diversity":     {"Multicultural populations", "Indigenous rights", "Immigration history"},
			"privacy":       {"Individual privacy rights", "Data protection", "Personal space"},
			"accessibility": {"Disability rights", "Universal design", "Inclusive language"},
			"gender":        {"Gender equality", "LGBTQ+ rights", "Non-binary inclusion"},
			"age":           {"Age discrimination", "Intergenerational respect", "Youth culture"},
		},
	},
	{
		Code: "europe", Name: "Europe",
		Factors: map[string][]string{
			"privacy":           {"GDPR compliance", "Data sovereignty", "Right to be forgotten"},
			"multilingual":      {"Official languages", "Regional dialects", "Translation requirements"},
			"social_welfare":    {"Universal healthcare", "Social safety nets", "Worker rights"},
			"environmental":     {"Sustainability", "Green initiatives", "Climate awareness"},
			"cultural_heritage": {"Historical preservation", "Traditional customs", "Regional identity"},
		},
	},
	{
		Code: "asia_pacific", Name: "Asia-Pacific",
		Factors: map[string][]string{
			"collectivism": {"Group harmony", "Family values", "Community focus"},
			"hierarchy":    {"Respect for authority", "Age-based respect", "Social status"},
			"face_culture": {"Saving face", "Indirect communication", "Conflict avoidance"},
			"technology":   {"Digital adoption", "Mobile-first", "Innovation culture"},
			"religion":     {"Buddhism", "Hinduism", "Islam", "Christianity", "Local beliefs"},
		},
	},
	{
		Code: "middle_east", Name: "Middle East",
		Factors: map[string][]string{
			"religion":    {"Islamic principles", "Religious law", "Prayer requirements"},
			"family":      {"Family honor", "Extended families", "Gender roles"},
			"hospitality": {"Guest culture", "Generosity", "Social obligations"},
			"modesty":     {"Dress codes", "Behavior standards", "Privacy concerns"},
			"authority":   {"Respect for leaders", "Traditional governance", "Social hierarchy"},
		},
	},
	{
		Code: "africa", Name: "Africa",
		Factors: map[string][]string{
			"community":      {"Ubuntu philosophy", "Collective responsibility", "Village culture"},
			"oral_tradition": {"Storytelling", "Elder wisdom", "Cultural knowledge"},
			"diversity":      {"Ethnic groups", "Languages", "Cultural practices"},
			"spirituality":   {"Traditional beliefs", "Ancestral worship", "Religious diversity"},
			"family":         {"Extended families", "Respect for elders", "Community support"},
		},
	},
	{
		Code: "latin_america", Name: "Latin America",
		Factors: map[string][]string{
			"family":        {"Family bonds", "Extended families", "Intergenerational support"},
			"social":        {"Personal relationships", "Social networks", "Community ties"},
			"religion":      {"Catholic influence", "Indigenous beliefs", "Religious diversity"},
			"time":          {"Flexible time", "Social time", "Event-oriented"},
			"communication": {"Warm communication", "Personal touch", "Emotional expression"},
		},
	},
}

// RegionCatalog is the immutable region reference store, shared without
// locking like the state catalog.
type RegionCatalog struct {
	byCode map[string]RegionProfile
	order  []string
}

// NewRegionCatalog builds a catalog with deterministic region order.
func NewRegionCatalog(profiles []RegionProfile) *RegionCatalog {
	c := &RegionCatalog{byCode: make(map[string]RegionProfile, len(profiles))}
	for _, p := range profiles {
		if _, dup := c.byCode[p.Code]; dup {
			continue
		}
		c.byCode[p.Code] = p
		c.order = append(c.order, p.Code)
	}
	sort.Strings(c.order)
	return c
}

// DefaultRegions returns the catalog of deployment regions.
func DefaultRegions() *RegionCatalog {
	return NewRegionCatalog(regionProfiles)
}

// Get looks up a region profile. Unknown codes fall back to the global
// baseline so every caller always has factors to work with.
func (c *RegionCatalog) Get(code string) RegionProfile {
	if p, ok := c.byCode[code]; ok {
		return p
	}
	return c.byCode["global"]
}

// ListAll returns every region code in a fixed, deterministic order.
func (c *RegionCatalog) ListAll() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len reports the number of regions.
func (c *RegionCatalog) Len() int { return len(c.order) }
