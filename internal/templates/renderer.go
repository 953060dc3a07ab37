// Package templates renders the {{...}} expressions D&D Beyond embeds in
// snippets and descriptions, e.g. {{(classlevel/2)@roundup}} or {{proficiency#signed}}.
//
// Arithmetic is evaluated by a sandboxed Lua state with no libraries opened.
// Only expressions built from numbers, known variables and + - * / ( ) reach it.
// Anything else is left in the text untouched.
package templates

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	lua "github.com/Shopify/go-lua"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-importer/internal/engine/features"
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/errors"
)

var (
	expressionPattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)
	arithmeticPattern = regexp.MustCompile(`^[a-z0-9+\-*/(). ]+$`)
	identifierPattern = regexp.MustCompile(`[a-z]+`)
)

// ComponentLookup finds the per-character component of a trait
type ComponentLookup interface {
	Component(doc *ddb.Document, componentID int64) *ddb.Component
}

// Config holds the dependencies for the renderer
type Config struct {
	Components ComponentLookup
	Logger     *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Components == nil {
		vb.RequiredField("Components")
	}
	return vb.Build()
}

// Renderer implements features.Renderer
type Renderer struct {
	components ComponentLookup
	logger     *zap.Logger
}

// New creates a new renderer
func New(cfg *Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Renderer{components: cfg.Components, logger: logger}, nil
}

var _ features.Renderer = (*Renderer)(nil)

// Render replaces every expression it can evaluate for the trait's character
func (r *Renderer) Render(doc *ddb.Document, text string, trait features.Trait) string {
	if !strings.Contains(text, "{{") {
		return text
	}

	vars := r.variables(doc, trait)
	state := lua.NewState()

	return expressionPattern.ReplaceAllStringFunc(text, func(match string) string {
		expr := parseExpression(strings.TrimSpace(match[2 : len(match)-2]))

		out, ok := expr.evaluate(state, vars)
		if !ok {
			r.logger.Debug("unrendered template expression",
				zap.String("trait", trait.Name),
				zap.String("expression", match))
			return match
		}
		return out
	})
}

// variables holds the values an expression may reference
type variables struct {
	numbers map[string]float64
	// scaleText is the level scale value when it is not a plain number, e.g. "2d6"
	scaleText string
}

func (r *Renderer) variables(doc *ddb.Document, trait features.Trait) variables {
	vars := variables{numbers: make(map[string]float64)}
	if doc == nil {
		return vars
	}

	characterLevel := doc.Character.TotalLevel()
	classLevel := characterLevel
	if class := doc.Character.ClassByDefinitionID(trait.ClassID); class != nil {
		classLevel = class.Level
	}

	vars.numbers["characterlevel"] = float64(characterLevel)
	vars.numbers["classlevel"] = float64(classLevel)
	vars.numbers["proficiency"] = float64(ProficiencyBonus(characterLevel))

	if component := r.components.Component(doc, trait.ComponentID); component != nil && component.LevelScale != nil {
		scale := component.LevelScale
		switch {
		case scale.FixedValue != nil:
			vars.numbers["scalevalue"] = float64(*scale.FixedValue)
		case scale.Dice.Notation() != "":
			vars.scaleText = scale.Dice.Notation()
		case scale.Description != "":
			vars.scaleText = scale.Description
		}
	}

	return vars
}

// ProficiencyBonus returns the proficiency bonus for a total character level
func ProficiencyBonus(level int) int {
	if level < 1 {
		level = 1
	}
	return 2 + (level-1)/4
}

// expression is a parsed {{body@modifier...#sign}}
type expression struct {
	body      string
	modifiers []string
	signed    bool
}

func parseExpression(raw string) expression {
	var expr expression

	if i := strings.LastIndex(raw, "#"); i >= 0 {
		expr.signed = raw[i+1:] == "signed"
		raw = raw[:i]
	}

	parts := strings.Split(raw, "@")
	expr.body = strings.TrimSpace(parts[0])
	for _, mod := range parts[1:] {
		expr.modifiers = append(expr.modifiers, strings.TrimSpace(mod))
	}

	return expr
}

func (e expression) evaluate(state *lua.State, vars variables) (string, bool) {
	if e.body == "scalevalue" && vars.scaleText != "" {
		return vars.scaleText, true
	}

	// "--" starts a Lua comment
	if !arithmeticPattern.MatchString(e.body) || strings.Contains(e.body, "--") {
		return "", false
	}
	for _, name := range identifierPattern.FindAllString(e.body, -1) {
		if _, ok := vars.numbers[name]; !ok {
			return "", false
		}
	}

	for name, value := range vars.numbers {
		state.PushNumber(value)
		state.SetGlobal(name)
	}

	top := state.Top()
	defer state.SetTop(top)

	if err := lua.DoString(state, "return "+e.body); err != nil {
		return "", false
	}
	value, ok := state.ToNumber(-1)
	if !ok {
		return "", false
	}

	value, ok = applyModifiers(value, e.modifiers)
	if !ok || math.IsInf(value, 0) || math.IsNaN(value) {
		return "", false
	}

	result := int(value)
	if e.signed && result >= 0 {
		return "+" + strconv.Itoa(result), true
	}
	return strconv.Itoa(result), true
}

// applyModifiers applies rounding and clamping. Without a rounding modifier the
// value is rounded down.
func applyModifiers(value float64, modifiers []string) (float64, bool) {
	rounded := false

	for _, mod := range modifiers {
		name, arg, _ := strings.Cut(mod, ":")
		switch name {
		case "roundup":
			value, rounded = math.Ceil(value), true
		case "rounddown":
			value, rounded = math.Floor(value), true
		case "round":
			value, rounded = math.Round(value), true
		case "min", "max":
			limit, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return 0, false
			}
			if name == "min" {
				value = math.Max(value, limit)
			} else {
				value = math.Min(value, limit)
			}
		default:
			return 0, false
		}
	}

	if !rounded {
		value = math.Floor(value)
	}
	return value, true
}
