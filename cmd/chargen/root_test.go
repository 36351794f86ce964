package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-chargen/internal/config"
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	characterService "github.com/KirkDiggler/rpg-chargen/internal/services/character"
	charactermock "github.com/KirkDiggler/rpg-chargen/internal/services/character/mock"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils"
)

type RootCmdTestSuite struct {
	suite.Suite

	ctrl        *gomock.Controller
	mockService *charactermock.MockService
	stdout      *bytes.Buffer
	stderr      *bytes.Buffer
}

func TestRootCmdSuite(t *testing.T) {
	suite.Run(t, new(RootCmdTestSuite))
}

func (s *RootCmdTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = charactermock.NewMockService(s.ctrl)
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
}

func (s *RootCmdTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RootCmdTestSuite) mockFactory(_ *config.Config) (characterService.Service, error) {
	return s.mockService, nil
}

func (s *RootCmdTestSuite) run(factory serviceFactory, args ...string) int {
	s.stdout.Reset()
	s.stderr.Reset()
	return execute(context.Background(), args, s.stdout, s.stderr, factory)
}

func (s *RootCmdTestSuite) TestLegacyArgumentsReachService() {
	s.mockService.EXPECT().
		GenerateBatch(gomock.Any(), &characterService.GenerateBatchInput{Count: 3, Level: 5}).
		Return(&characterService.GenerateBatchOutput{
			Characters: []*dnd5e.Character{testutils.CreateTestCharacter()},
		}, nil)

	code := s.run(s.mockFactory, "-3", "-5")

	s.Require().Equal(errors.ExitOK, code, s.stderr.String())
	s.Assert().Contains(s.stdout.String(), "Race: Dwarf\n")
	s.Assert().Contains(s.stdout.String(), "Class: Fighter\n")
	s.Assert().Empty(s.stderr.String())
}

func (s *RootCmdTestSuite) TestDefaultsToOneLevelOneCharacter() {
	s.mockService.EXPECT().
		GenerateBatch(gomock.Any(), &characterService.GenerateBatchInput{Count: 1, Level: 1}).
		Return(&characterService.GenerateBatchOutput{
			Characters: []*dnd5e.Character{testutils.CreateTestCharacter()},
		}, nil)

	s.Assert().Equal(errors.ExitOK, s.run(s.mockFactory))
}

func (s *RootCmdTestSuite) TestVersion() {
	code := s.run(s.mockFactory, "--version")

	s.Assert().Equal(errors.ExitOK, code)
	s.Assert().Equal("D20 Character Generator version 3.0\n", s.stdout.String())
}

func (s *RootCmdTestSuite) TestHelp() {
	for _, arg := range []string{"-h", "--help"} {
		code := s.run(s.mockFactory, arg)

		s.Assert().Equal(errors.ExitOK, code, arg)
		s.Assert().Contains(s.stdout.String(), "Usage:", arg)
		s.Assert().Contains(s.stdout.String(), "chargen [-N] [-L]", arg)
	}
}

func (s *RootCmdTestSuite) TestBadArgumentsExitWithUsage() {
	testCases := []struct {
		name string
		args []string
	}{
		{"unknown shorthand", []string{"-x"}},
		{"malformed number", []string{"-5a"}},
		{"unknown long flag", []string{"--colour"}},
		{"bare word", []string{"five"}},
		{"third number", []string{"-1", "-2", "-3"}},
		{"non numeric count", []string{"--count", "lots"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			code := s.run(s.mockFactory, tc.args...)

			s.Assert().Equal(errors.ExitUsage, code)
			s.Assert().Empty(s.stdout.String())
			s.Assert().True(strings.HasPrefix(s.stderr.String(), "Error: "), s.stderr.String())
			s.Assert().Contains(s.stderr.String(), "Usage:")
		})
	}
}

func (s *RootCmdTestSuite) TestServiceFailureWritesNothing() {
	s.mockService.EXPECT().
		GenerateBatch(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("dice went missing"))

	code := s.run(s.mockFactory, "-2")

	s.Assert().Equal(errors.ExitInternal, code)
	s.Assert().Empty(s.stdout.String())
	s.Assert().Contains(s.stderr.String(), "dice went missing")
}

func (s *RootCmdTestSuite) TestLevelOutOfRange() {
	code := s.run(newService, "-1", "-21")

	s.Assert().Equal(errors.ExitUsage, code)
	s.Assert().Empty(s.stdout.String())
	s.Assert().Contains(s.stderr.String(), "level")
}

func (s *RootCmdTestSuite) TestUnknownRuleset() {
	code := s.run(newService, "--ruleset", "pathfinder")

	s.Assert().Equal(errors.ExitUsage, code)
	s.Assert().Empty(s.stdout.String())
}

func (s *RootCmdTestSuite) TestSeededRunsAreReproducible() {
	s.Require().Equal(errors.ExitOK, s.run(newService, "-4", "-7", "--seed", "42", "--workers", "3"), s.stderr.String())
	first := s.stdout.String()

	s.Require().Equal(errors.ExitOK, s.run(newService, "-4", "-7", "--seed", "42"), s.stderr.String())
	second := s.stdout.String()

	s.Assert().Equal(first, second)
	s.Assert().Equal(4, strings.Count(first, "Gender: "))
	s.Assert().Equal(4, strings.Count(first, "Level: 7\n"))
}

func (s *RootCmdTestSuite) TestJSONOutput() {
	code := s.run(newService, "-2", "--seed", "1", "-o", "json", "--ruleset", "legacy")
	s.Require().Equal(errors.ExitOK, code, s.stderr.String())

	var sheets []map[string]any
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &sheets))
	s.Require().Len(sheets, 2)
	for _, sheet := range sheets {
		s.Assert().Equal("legacy", sheet["ruleset"])
		s.Assert().NotEmpty(sheet["id"])
	}
}

func (s *RootCmdTestSuite) TestExplicitCountLeavesBareNumberForLevel() {
	s.mockService.EXPECT().
		GenerateBatch(gomock.Any(), &characterService.GenerateBatchInput{Count: 2, Level: 7}).
		Return(&characterService.GenerateBatchOutput{
			Characters: []*dnd5e.Character{testutils.CreateTestCharacter()},
		}, nil)

	s.Assert().Equal(errors.ExitOK, s.run(s.mockFactory, "-n", "2", "-7"), s.stderr.String())
}

func (s *RootCmdTestSuite) TestNegativeFlagValueReportsItsFlag() {
	code := s.run(s.mockFactory, "--workers", "-1")

	s.Assert().Equal(errors.ExitUsage, code)
	s.Assert().Empty(s.stdout.String())
	s.Assert().Contains(s.stderr.String(), "workers")
	s.Assert().NotContains(s.stderr.String(), "--level=1")
}
