package cards

import (
	"regexp"
	"strings"
)

// Classifier determines card type, trainer subtype and Pokémon stage from a
// raw card name. The zero value is not usable; use NewClassifier.
type Classifier struct {
	exactTrainers map[string]TrainerSubtype
	trainerRules  []SubtypeRule
}

// NewClassifier creates a classifier with the default rule tables.
func NewClassifier() *Classifier {
	return &Classifier{
		exactTrainers: exactTrainers,
		trainerRules:  defaultTrainerRules,
	}
}

// NewClassifierWithRules creates a classifier with a custom ordered rule
// list, for callers that need to extend classification without touching the
// built-in tables.
func NewClassifierWithRules(exact map[string]TrainerSubtype, rules []SubtypeRule) *Classifier {
	return &Classifier{
		exactTrainers: exact,
		trainerRules:  rules,
	}
}

// Classification is the result of classifying a raw card name.
type Classification struct {
	Type        CardType
	Subtype     TrainerSubtype // trainers only
	Stage       Stage          // Pokémon only
	EnergyType  EnergyType     // basic energy only
	BasicEnergy bool
}

// stageSuffixes maps trailing name tokens to stages, most specific first.
var stageSuffixes = []struct {
	token string
	stage Stage
}{
	{"vmax", StageVMAX},
	{"vstar", StageVSTAR},
	{"v-union", StageV},
	{"v", StageV},
	{"ex", StageEX},
	{"gx", StageEX},
}

var megaPrefix = regexp.MustCompile(`(?i)^(mega|m)\s`)
var teraToken = regexp.MustCompile(`(?i)\btera\b`)

// Classify determines the card type and subtype for a raw card name.
//
// Detection order: energy first (any name containing "energy"/"energia"),
// then the trainer rule tables, then Pokémon as the catch-all. Unrecognized
// trainers default to Item.
func (c *Classifier) Classify(rawName string) Classification {
	name := strings.TrimSpace(rawName)
	lower := strings.ToLower(name)

	if strings.Contains(lower, "energy") || strings.Contains(lower, "energia") {
		return classifyEnergy(name)
	}

	if subtype, ok := c.exactTrainers[lower]; ok {
		return Classification{Type: TypeTrainer, Subtype: subtype}
	}
	for _, rule := range c.trainerRules {
		if rule.Pattern.MatchString(name) {
			return Classification{Type: TypeTrainer, Subtype: rule.Subtype}
		}
	}

	return Classification{Type: TypePokemon, Stage: extractStage(name)}
}

// BuildCard classifies rawName and fills in a Card with quantity, set code
// and collector number, including detected functions and known card data.
func (c *Classifier) BuildCard(rawName string, quantity int, setCode, setNumber string) *Card {
	cls := c.Classify(rawName)
	card := &Card{
		Name:        strings.TrimSpace(rawName),
		Type:        cls.Type,
		Subtype:     cls.Subtype,
		Stage:       cls.Stage,
		EnergyType:  cls.EnergyType,
		BasicEnergy: cls.BasicEnergy,
		SetCode:     NormalizeSetCode(setCode),
		SetNumber:   setNumber,
		Quantity:    quantity,
		Functions:   DetectFunctions(rawName),
	}
	applyKnownData(card)
	return card
}

func classifyEnergy(name string) Classification {
	for _, pattern := range basicEnergyPatterns {
		if pattern.MatchString(name) {
			return Classification{
				Type:        TypeEnergy,
				EnergyType:  energyTypeFromName(name),
				BasicEnergy: true,
			}
		}
	}
	return Classification{Type: TypeEnergy}
}

func energyTypeFromName(name string) EnergyType {
	for _, token := range strings.Fields(strings.ToLower(name)) {
		if et, ok := energyNameTypes[token]; ok {
			return et
		}
	}
	return EnergyColorless
}

func extractStage(name string) Stage {
	if megaPrefix.MatchString(name) {
		return StageMega
	}
	if teraToken.MatchString(name) {
		return StageTera
	}
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) < 2 {
		return StageBasic
	}
	last := fields[len(fields)-1]
	for _, s := range stageSuffixes {
		if last == s.token {
			return s.stage
		}
	}
	return StageBasic
}
