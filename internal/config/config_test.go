package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/config"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook"
)

type ConfigTestSuite struct {
	suite.Suite
	missing string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.missing = filepath.Join(s.T().TempDir(), "absent.env")
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load(s.missing)
	s.Require().NoError(err)
	s.Require().NoError(cfg.Validate())

	s.Assert().Equal("standard", cfg.Ruleset)
	s.Assert().Empty(cfg.StatMethod)
	s.Assert().Zero(cfg.Seed)
	s.Assert().Equal(1, cfg.Workers)
	s.Assert().Equal("text", cfg.Output)
	s.Assert().Equal("warn", cfg.Log.Level)
	s.Assert().Empty(cfg.Log.File)

	rs, err := cfg.Rules()
	s.Require().NoError(err)
	s.Assert().Equal(rulebook.Standard(), rs)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("CHARGEN_RULESET", "legacy")
	s.T().Setenv("CHARGEN_STAT_METHOD", "3d6")
	s.T().Setenv("CHARGEN_SEED", "99")
	s.T().Setenv("CHARGEN_WORKERS", "4")
	s.T().Setenv("CHARGEN_OUTPUT", "yaml")
	s.T().Setenv("CHARGEN_LOG_LEVEL", "debug")

	cfg, err := config.Load(s.missing)
	s.Require().NoError(err)
	s.Require().NoError(cfg.Validate())

	s.Assert().Equal(uint64(99), cfg.Seed)
	s.Assert().Equal(4, cfg.Workers)
	s.Assert().Equal("yaml", cfg.Output)
	s.Assert().Equal("debug", cfg.Logger().Level)

	rs, err := cfg.Rules()
	s.Require().NoError(err)
	s.Assert().Equal(18, rs.StatCap)
	s.Assert().Equal(rulebook.StatMethodClassic, rs.StatMethod)
}

func (s *ConfigTestSuite) TestEnvFile() {
	path := filepath.Join(s.T().TempDir(), "test.env")
	s.Require().NoError(os.WriteFile(path, []byte("CHARGEN_OUTPUT=json\nCHARGEN_WORKERS=2\n"), 0o600))
	s.T().Cleanup(func() {
		os.Unsetenv("CHARGEN_OUTPUT")
		os.Unsetenv("CHARGEN_WORKERS")
	})

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Assert().Equal("json", cfg.Output)
	s.Assert().Equal(2, cfg.Workers)
}

func (s *ConfigTestSuite) TestEnvFileDoesNotOverrideEnvironment() {
	path := filepath.Join(s.T().TempDir(), "test.env")
	s.Require().NoError(os.WriteFile(path, []byte("CHARGEN_RULESET=legacy\n"), 0o600))
	s.T().Setenv("CHARGEN_RULESET", "standard")

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Assert().Equal("standard", cfg.Ruleset)
}

func (s *ConfigTestSuite) TestMalformedValue() {
	s.T().Setenv("CHARGEN_WORKERS", "many")

	_, err := config.Load(s.missing)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"ruleset", func(c *config.Config) { c.Ruleset = "pathfinder" }, "ruleset"},
		{"stat method", func(c *config.Config) { c.StatMethod = "point_buy" }, "stat_method"},
		{"workers", func(c *config.Config) { c.Workers = 0 }, "workers"},
		{"output", func(c *config.Config) { c.Output = "xml" }, "output"},
		{"log level", func(c *config.Config) { c.Log.Level = "chatty" }, "level"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.Load(s.missing)
			s.Require().NoError(err)

			tc.mutate(cfg)
			err = cfg.Validate()
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestRulesFollowsOverriddenFields() {
	cfg, err := config.Load(s.missing)
	s.Require().NoError(err)

	cfg.Ruleset = rulebook.RulesetLegacy
	cfg.StatMethod = string(rulebook.StatMethodDropLowest)

	rs, err := cfg.Rules()
	s.Require().NoError(err)
	s.Assert().Equal(rulebook.RulesetLegacy, rs.Name)
	s.Assert().Equal(18, rs.StatCap)
	s.Assert().Equal(rulebook.StatMethodDropLowest, rs.StatMethod)

	cfg.Ruleset = "pathfinder"
	_, err = cfg.Rules()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
