// Package render turns finished characters into sheets. It only formats;
// every value it prints was decided by the generator.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// Renderer writes character sheets
type Renderer interface {
	Render(w io.Writer, characters []*dnd5e.Character) error
}

// New returns the renderer for a format
func New(format string) (Renderer, error) {
	switch format {
	case FormatText:
		return Text{}, nil
	case FormatJSON:
		return JSON{}, nil
	case FormatYAML:
		return YAML{}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown output format: %s", format)
	}
}

// Text renders the classic plain sheet, one block per character followed by
// a blank line
type Text struct{}

// Render implements Renderer
func (Text) Render(w io.Writer, characters []*dnd5e.Character) error {
	title := cases.Title(language.English)
	name := func(key string) string { return displayName(title, key) }

	var b strings.Builder
	for _, c := range characters {
		fmt.Fprintf(&b, "Gender: %s\n", name(c.Gender.String()))
		fmt.Fprintf(&b, "Race: %s\n", raceName(title, c.Race))
		fmt.Fprintf(&b, "Size: %s\n", name(c.Size.String()))
		fmt.Fprintf(&b, "Walk speed: %d feet\n", c.Speed)
		fmt.Fprintf(&b, "Racial Traits: %s\n", joinNames(name, c.Traits))
		fmt.Fprintf(&b, "Class: %s\n", name(c.Class.String()))
		fmt.Fprintf(&b, "Level: %d\n", c.Level)
		fmt.Fprintf(&b, "HP: %d\n", c.HitPoints)
		fmt.Fprintf(&b, "Hit Dice: %s\n", c.HitDice)
		fmt.Fprintf(&b, "Alignment: %s\n", name(c.Alignment.String()))
		for _, a := range dnd5e.Abilities() {
			fmt.Fprintf(&b, "%s: %d\n", name(a.String()), c.AbilityScores.Get(a))
		}
		fmt.Fprintf(&b, "Languages Spoken: %s\n", joinNames(name, c.Languages))
		fmt.Fprintf(&b, "Proficiencies: %s\n", joinNames(name, c.Proficiencies))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "failed to write sheets")
	}
	return nil
}

// JSON renders an indented array of sheets
type JSON struct{}

// Render implements Renderer
func (JSON) Render(w io.Writer, characters []*dnd5e.Character) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Sheets(characters)); err != nil {
		return errors.Wrap(err, "failed to encode json")
	}
	return nil
}

// YAML renders a sequence of sheets
type YAML struct{}

// Render implements Renderer
func (YAML) Render(w io.Writer, characters []*dnd5e.Character) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Sheets(characters)); err != nil {
		return errors.Wrap(err, "failed to encode yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "failed to flush yaml")
	}
	return nil
}

// hyphenated race names read better than their keys
var raceNames = map[dnd5e.Race]string{
	dnd5e.RaceHalfElf: "Half-Elf",
	dnd5e.RaceHalfOrc: "Half-Orc",
}

func raceName(title cases.Caser, r dnd5e.Race) string {
	if n, ok := raceNames[r]; ok {
		return n
	}
	return displayName(title, r.String())
}

// displayName turns a snake_case key into title-cased words
func displayName(title cases.Caser, key string) string {
	return title.String(strings.ReplaceAll(key, "_", " "))
}

func joinNames[T fmt.Stringer](name func(string) string, values []T) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = name(v.String())
	}
	return strings.Join(out, ", ")
}

var (
	_ Renderer = Text{}
	_ Renderer = JSON{}
	_ Renderer = YAML{}
)
