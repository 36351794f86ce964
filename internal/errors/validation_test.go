package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("count", "is required").
		Fieldf("level", "must be between %d and %d", 1, 20).
		RequiredField("roller").
		InvalidField("ruleset", "unknown ruleset")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "count: is required")
	s.Assert().Contains(err.Error(), "ruleset: is invalid: unknown ruleset")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestMessageIsSortedByField() {
	ve := errors.NewValidationError()
	ve.AddFieldError("workers", "must be at least 1")
	ve.AddFieldError("count", "must be at least 1")

	s.Assert().Equal("validation failed: count: must be at least 1; workers: must be at least 1", ve.Error())
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", 21, 1, 20, vb)
	errors.ValidateRange("strength", 15, 3, 18, vb)
	errors.ValidateRange("count", 0, 1, 100, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["level"][0], "must be between 1 and 20")
	s.Assert().Contains(validationErrors["count"][0], "must be between 1 and 100")
	s.Assert().NotContains(validationErrors, "strength")
}

func (s *ValidationTestSuite) TestValidateMin() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("workers", 0, 1, vb)
	errors.ValidateMin("count", 3, 1, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Equal([]string{"must be at least 1"}, validationErrors["workers"])
	s.Assert().NotContains(validationErrors, "count")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"text", "json", "yaml"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("output", "xml", allowed, vb)
	errors.ValidateEnum("format", "json", allowed, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["output"][0], "must be one of: text, json, yaml")
	s.Assert().NotContains(validationErrors, "format")
}
