package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/catalog"
	"github.com/Nuray2204/FamilyHub/internal/models"
)

// hintBoost is the weight multiplier applied to template types the analytics
// engine recommends. It biases the mix without being able to flip it: the
// constructive share is controlled by base weights, not by filters, so even a
// boosted constructive pool stays a small fraction of the total mass.
const hintBoost = 2

// Neutral placeholder fallbacks. A nudge with missing data degrades, it
// never fails.
const defaultTraitName = "amazing"

// NudgeSelector performs weighted random selection over the template catalog
// and resolves template placeholders. The random source is injected so tests
// can pin outcomes with a fixed seed.
type NudgeSelector struct {
	rng *rand.Rand
}

func NewNudgeSelector(rng *rand.Rand) *NudgeSelector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &NudgeSelector{rng: rng}
}

// templateMatches reports whether the user's trait set satisfies the
// template's requirements. "any" means at least one trait; an explicit list
// means all listed traits are present; no requirement always matches.
func templateMatches(tpl catalog.NudgeTemplate, traits []string) bool {
	if len(tpl.RequiredTraits) == 0 {
		return true
	}

	has := make(map[string]bool, len(traits))
	for _, t := range traits {
		has[t] = true
	}

	for _, required := range tpl.RequiredTraits {
		if required == catalog.RequireAny {
			if len(traits) == 0 {
				return false
			}
			continue
		}
		if !has[required] {
			return false
		}
	}
	return true
}

// EligibleTemplates filters the catalog by the user's traits.
func EligibleTemplates(traits []string) []catalog.NudgeTemplate {
	var eligible []catalog.NudgeTemplate
	for _, tpl := range catalog.NudgeTemplates {
		if templateMatches(tpl, traits) {
			eligible = append(eligible, tpl)
		}
	}
	return eligible
}

// SelectTemplate picks one template for the user. Each eligible template's
// weight is its relative selection probability; optimization hints double the
// weight of recommended types.
func (s *NudgeSelector) SelectTemplate(traits []string, hints *models.OptimizationHints) (catalog.NudgeTemplate, error) {
	eligible := EligibleTemplates(traits)
	if len(eligible) == 0 {
		return catalog.NudgeTemplate{}, fmt.Errorf("no eligible nudge templates")
	}

	boosted := make(map[string]bool)
	if hints != nil {
		for _, t := range hints.RecommendedTypes {
			boosted[t] = true
		}
	}

	total := 0
	weights := make([]int, len(eligible))
	for i, tpl := range eligible {
		w := tpl.Weight
		if w < 1 {
			w = 1
		}
		if boosted[tpl.Type] {
			w *= hintBoost
		}
		weights[i] = w
		total += w
	}

	roll := s.rng.Intn(total)
	for i, w := range weights {
		if roll < w {
			return eligible[i], nil
		}
		roll -= w
	}

	// Unreachable: the roll is always below the summed weights.
	return eligible[len(eligible)-1], nil
}

// PlaceholderData carries the personalized values for template resolution.
// Any field may be empty; resolution falls back to neutral defaults.
type PlaceholderData struct {
	TraitName string
	Ayah      string
	Character *catalog.Character
}

// PickCharacter chooses a mascot at random, or nil when the catalog has none.
func (s *NudgeSelector) PickCharacter() *catalog.Character {
	if len(catalog.Characters) == 0 {
		return nil
	}
	return &catalog.Characters[s.rng.Intn(len(catalog.Characters))]
}

// ResolvePlaceholders substitutes {{trait}}, {{ayah}} and {{character}} in
// the template text.
func (s *NudgeSelector) ResolvePlaceholders(tpl catalog.NudgeTemplate, data PlaceholderData) string {
	text := tpl.Text

	if strings.Contains(text, "{{trait}}") {
		trait := data.TraitName
		if trait == "" {
			trait = defaultTraitName
		}
		text = strings.ReplaceAll(text, "{{trait}}", trait)
	}

	if strings.Contains(text, "{{ayah}}") {
		ayah := data.Ayah
		if ayah == "" {
			ayah = catalog.DefaultAyah
		}
		text = strings.ReplaceAll(text, "{{ayah}}", ayah)
	}

	if strings.Contains(text, "{{character}}") {
		line := catalog.DefaultCharacterLine
		if data.Character != nil {
			line = s.pickCharacterLine(data.Character)
		}
		text = strings.ReplaceAll(text, "{{character}}", line)
	}

	return text
}

func (s *NudgeSelector) pickCharacterLine(c *catalog.Character) string {
	lines := make([]string, 0, len(c.Greetings)+len(c.Catchphrases))
	lines = append(lines, c.Greetings...)
	lines = append(lines, c.Catchphrases...)
	if len(lines) == 0 {
		return catalog.DefaultCharacterLine
	}
	return lines[s.rng.Intn(len(lines))]
}
