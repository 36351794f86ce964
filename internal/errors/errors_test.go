package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid count",
			expected: "INVALID_ARGUMENT: invalid count",
		},
		{
			name:     "internal error",
			code:     errors.CodeInternal,
			message:  "roller failed",
			expected: "INTERNAL: roller failed",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("entropy source closed")
	wrapped := errors.Wrap(baseErr, "failed to roll ability score")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to roll ability score", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.InvalidArgument("level must be positive").WithMeta("level", 0)
	wrapped := errors.Wrap(baseErr, "invalid input")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().Equal(0, wrapped.Meta["level"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("strconv.Atoi: parsing \"x\": invalid syntax")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInvalidArgument, "count must be a number")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().Equal("count must be a number", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.InvalidArgument("a")
	err2 := errors.InvalidArgument("b")
	err3 := errors.Internal("c")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
	s.Assert().True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	invalidErr := errors.InvalidArgumentf("unknown ruleset %q", "3e")
	wrapped := errors.Wrap(invalidErr, "failed to load config")

	s.Assert().True(errors.IsInvalidArgument(invalidErr))
	s.Assert().True(errors.IsInvalidArgument(wrapped))
	s.Assert().False(errors.IsInternal(wrapped))
	s.Assert().True(errors.IsInternal(fmt.Errorf("plain")))
	s.Assert().True(errors.IsCanceled(errors.Canceled("stop")))
	s.Assert().True(errors.IsNotFound(errors.NotFoundf("no table for %s", "race")))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, errors.ExitOK},
		{"invalid argument", errors.InvalidArgument("bad"), errors.ExitUsage},
		{"not found", errors.NotFoundf("ruleset %s", "3e"), errors.ExitUsage},
		{"internal", errors.Internal("boom"), errors.ExitInternal},
		{"canceled", errors.Canceled("stop"), errors.ExitInternal},
		{"plain error", fmt.Errorf("boom"), errors.ExitInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, errors.ExitCode(tc.err))
		})
	}
}
