// Package extract turns raw PRD text into an ordered list of Feature
// records. It never fails outright: generation failure falls back to a
// rule-based split, and a zero-feature split yields one synthetic feature
// wrapping the whole PRD.
package extract

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/complyradar/complyradar/internal/application/fallback"
	"github.com/complyradar/complyradar/internal/application/genclient"
	"github.com/complyradar/complyradar/internal/domain/compliance"
	"github.com/complyradar/complyradar/internal/domain/regdata"
	"github.com/complyradar/complyradar/internal/infra/ai/prompt"
)

const (
	maxFeatures    = 20
	maxGlossary    = 5
	extractorChars = 4000
)

type Service struct {
	Gen           *genclient.Caller
	Glossary      *regdata.Glossary
	ContentBudget int
	Log           zerolog.Logger
}

// Result carries the extracted features plus provenance for auditing.
type Result struct {
	Features    []compliance.Feature
	ProducedVia compliance.Provenance
}

// Extract produces at least one feature for any input. Content beyond the
// configured budget is truncated before any generation call; truncation
// never changes the feature count.
func (s *Service) Extract(ctx context.Context, prdName, prdDescription, prdContent string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	content := prompt.Truncate(prdContent, s.budget())

	if features := s.extractWithModel(ctx, prdName, prdDescription, content); len(features) > 0 {
		return Result{Features: features, ProducedVia: compliance.ProducedByModel}, nil
	}

	features := ruleBasedSplit(content)
	if len(features) == 0 {
		features = []compliance.Feature{syntheticFeature(prdName, prdDescription, content)}
	}
	finalize(features, prdName)
	return Result{Features: features, ProducedVia: compliance.ProducedByFallback}, nil
}

func (s *Service) budget() int {
	if s.ContentBudget > 0 {
		return s.ContentBudget
	}
	return extractorChars
}

func (s *Service) extractWithModel(ctx context.Context, name, description, content string) []compliance.Feature {
	var glossary []string
	if s.Glossary != nil {
		glossary = s.Glossary.Enrich(name+" "+description+" "+content, maxGlossary)
	}
	obj, err := s.Gen.JSONObject(ctx, prompt.Extraction(name, description, content, glossary), extractorChars)
	if err != nil {
		s.Log.Warn().Err(err).Str("prd", name).Msg("model extraction failed, using rule-based split")
		return nil
	}

	var features []compliance.Feature
	for _, raw := range genclient.Objects(obj, "extracted_features") {
		f := compliance.Feature{
			Name:                  genclient.Str(raw, "name"),
			Description:           genclient.Str(raw, "description"),
			Content:               genclient.Str(raw, "content"),
			Priority:              normalizePriority(genclient.Str(raw, "priority")),
			DataTypes:             genclient.Strings(raw, "data_types"),
			TechnicalRequirements: genclient.Strings(raw, "technical_requirements"),
		}
		if f.Name == "" {
			continue
		}
		if len(f.DataTypes) == 0 {
			f.DataTypes = fallback.DetectDataTypes(f.Name + " " + f.Description + " " + f.Content)
		}
		features = append(features, f)
		if len(features) == maxFeatures {
			break
		}
	}
	finalize(features, name)
	return features
}

var headingRe = regexp.MustCompile(`(?m)^\s*(?:#{1,3}\s+|\d+[.)]\s+)(.+)$`)
var bulletRe = regexp.MustCompile(`(?m)^\s*[-*•]\s+(.+)$`)

// ruleBasedSplit derives features from headings; bullets under a heading
// become that feature's technical requirements.
func ruleBasedSplit(content string) []compliance.Feature {
	locs := headingRe.FindAllStringSubmatchIndex(content, -1)
	if len(locs) == 0 {
		return nil
	}
	var features []compliance.Feature
	for i, loc := range locs {
		title := strings.TrimSpace(content[loc[2]:loc[3]])
		end := len(content)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := strings.TrimSpace(content[loc[1]:end])
		if title == "" {
			continue
		}
		var reqs []string
		for _, m := range bulletRe.FindAllStringSubmatch(body, -1) {
			reqs = append(reqs, strings.TrimSpace(m[1]))
		}
		desc := body
		if idx := strings.IndexByte(body, '\n'); idx > 0 {
			desc = body[:idx]
		}
		features = append(features, compliance.Feature{
			Name:                  title,
			Description:           strings.TrimSpace(desc),
			Content:               body,
			Priority:              "medium",
			DataTypes:             fallback.DetectDataTypes(title + " " + body),
			TechnicalRequirements: reqs,
		})
		if len(features) == maxFeatures {
			break
		}
	}
	return features
}

func syntheticFeature(name, description, content string) compliance.Feature {
	if name == "" {
		name = "Product Requirements Document"
	}
	return compliance.Feature{
		Name:        name,
		Description: description,
		Content:     content,
		Priority:    "medium",
		DataTypes:   fallback.DetectDataTypes(name + " " + description + " " + content),
	}
}

// finalize assigns run-unique ids in input order.
func finalize(features []compliance.Feature, prdName string) {
	for i := range features {
		features[i].ID = fmt.Sprintf("feature_%d", i+1)
		if features[i].Description == "" {
			features[i].Description = prdName
		}
	}
}

func normalizePriority(p string) string {
	switch strings.ToLower(p) {
	case "high", "medium", "low":
		return strings.ToLower(p)
	}
	return "medium"
}
