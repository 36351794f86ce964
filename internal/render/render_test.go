package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/render"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils/builders"
)

type RenderTestSuite struct {
	suite.Suite
	buf bytes.Buffer
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func (s *RenderTestSuite) SetupTest() {
	s.buf.Reset()
}

func (s *RenderTestSuite) TestTextSheet() {
	c := testutils.CreateTestCharacter()

	s.Require().NoError(render.Text{}.Render(&s.buf, []*dnd5e.Character{c}))

	want := strings.Join([]string{
		"Gender: Female",
		"Race: Dwarf",
		"Size: Medium",
		"Walk speed: 25 feet",
		"Racial Traits: Darkvision, Dwarven Resilience, Dwarven Combat Training, Tool Proficiency, Stonecunning",
		"Class: Fighter",
		"Level: 1",
		"HP: 26",
		"Hit Dice: 1d10",
		"Alignment: Lawful Good",
		"Strength: 15",
		"Dexterity: 12",
		"Constitution: 16",
		"Intelligence: 10",
		"Wisdom: 13",
		"Charisma: 8",
		"Languages Spoken: Common, Dwarvish",
		"Proficiencies: Strength Saves, Constitution Saves, Athletics, Perception, Simple Weapons, " +
			"Martial Weapons, Light Armor, Medium Armor, Heavy Armor, Shields",
		"",
		"",
	}, "\n")
	s.Assert().Equal(want, s.buf.String())
}

func (s *RenderTestSuite) TestTextSeparatesCharacters() {
	first := builders.NewCharacterBuilder().WithRace(dnd5e.RaceHalfElf).Build()
	second := builders.NewCharacterBuilder().WithRace(dnd5e.RaceHalfOrc).WithClass(dnd5e.ClassRogue).Build()

	s.Require().NoError(render.Text{}.Render(&s.buf, []*dnd5e.Character{first, second}))

	blocks := strings.Split(strings.TrimSuffix(s.buf.String(), "\n\n"), "\n\n")
	s.Require().Len(blocks, 2)
	s.Assert().Contains(blocks[0], "Race: Half-Elf")
	s.Assert().Contains(blocks[1], "Race: Half-Orc")
	s.Assert().Contains(blocks[1], "Class: Rogue")
}

func (s *RenderTestSuite) TestTextMultiWordNames() {
	c := builders.NewCharacterBuilder().
		WithProficiencies(dnd5e.SkillSleightOfHand, dnd5e.ToolThreeDragonAnteSet).
		Build()

	s.Require().NoError(render.Text{}.Render(&s.buf, []*dnd5e.Character{c}))
	s.Assert().Contains(s.buf.String(), "Proficiencies: Sleight Of Hand, Three Dragon Ante Set\n")
}

func (s *RenderTestSuite) TestJSON() {
	c := testutils.CreateTestCharacter()

	s.Require().NoError(render.JSON{}.Render(&s.buf, []*dnd5e.Character{c}))

	var sheets []render.Sheet
	s.Require().NoError(json.Unmarshal(s.buf.Bytes(), &sheets))
	s.Require().Len(sheets, 1)
	s.Assert().Equal(testutils.TestCharacterID, sheets[0].ID)
	s.Assert().Equal("dwarf", sheets[0].Race)
	s.Assert().Equal(16, sheets[0].AbilityScores.Constitution)
	s.Assert().Equal([]string{"common", "dwarvish"}, sheets[0].Languages)
	s.Assert().Contains(s.buf.String(), `"hit_points": 26`)
}

func (s *RenderTestSuite) TestYAML() {
	c := builders.NewCharacterBuilder().WithLevel(7).Build()

	s.Require().NoError(render.YAML{}.Render(&s.buf, []*dnd5e.Character{c}))

	var sheets []render.Sheet
	s.Require().NoError(yaml.Unmarshal(s.buf.Bytes(), &sheets))
	s.Require().Len(sheets, 1)
	s.Assert().Equal(7, sheets[0].Level)
	s.Assert().Equal("lawful_good", sheets[0].Alignment)
	s.Assert().Contains(s.buf.String(), "hit_dice: 1d10")
}

func (s *RenderTestSuite) TestNew() {
	for _, f := range render.Formats() {
		r, err := render.New(f)
		s.Require().NoError(err, f)
		s.Assert().NotNil(r)
	}

	_, err := render.New("xml")
	s.Assert().True(errors.IsInvalidArgument(err))
}
