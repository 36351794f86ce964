package dice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-chargen/internal/dice"
	dicemock "github.com/KirkDiggler/rpg-chargen/internal/dice/mock"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

type SourceTestSuite struct {
	suite.Suite

	ctrl       *gomock.Controller
	mockRoller *dicemock.MockRoller
	source     *dice.Source
}

func TestSourceSuite(t *testing.T) {
	suite.Run(t, new(SourceTestSuite))
}

func (s *SourceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = dicemock.NewMockRoller(s.ctrl)

	source, err := dice.NewSource(s.mockRoller)
	s.Require().NoError(err)
	s.source = source
}

func (s *SourceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SourceTestSuite) TestNewSourceRequiresRoller() {
	_, err := dice.NewSource(nil)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *SourceTestSuite) TestBetweenShiftsDieIntoRange() {
	s.mockRoller.EXPECT().Roll(16).Return(1, nil)
	s.mockRoller.EXPECT().Roll(16).Return(16, nil)

	low, err := s.source.Between(3, 18)
	s.Require().NoError(err)
	s.Assert().Equal(3, low)

	high, err := s.source.Between(3, 18)
	s.Require().NoError(err)
	s.Assert().Equal(18, high)
}

func (s *SourceTestSuite) TestIndex() {
	s.mockRoller.EXPECT().Roll(6).Return(4, nil)

	idx, err := s.source.Index(6)
	s.Require().NoError(err)
	s.Assert().Equal(3, idx)
}

func (s *SourceTestSuite) TestBetweenEmptyRange() {
	_, err := s.source.Between(5, 4)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *SourceTestSuite) TestRollerErrorIsWrapped() {
	s.mockRoller.EXPECT().Roll(8).Return(0, fmt.Errorf("entropy exhausted"))

	_, err := s.source.Die(8)
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
	s.Assert().Contains(err.Error(), "failed to roll d8")
}

func (s *SourceTestSuite) TestRollerOutOfRangeResult() {
	s.mockRoller.EXPECT().Roll(6).Return(7, nil)

	_, err := s.source.Die(6)
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func (s *SourceTestSuite) TestRollDropLowest() {
	s.mockRoller.EXPECT().RollN(4, 6).Return([]int{5, 1, 6, 3}, nil)

	kept, dropped, total, err := s.source.RollDropLowest(4, 6, 1)
	s.Require().NoError(err)
	s.Assert().Equal([]int{3, 5, 6}, kept)
	s.Assert().Equal([]int{1}, dropped)
	s.Assert().Equal(14, total)
}

func (s *SourceTestSuite) TestRollDropLowestRejectsDroppingAll() {
	_, _, _, err := s.source.RollDropLowest(4, 6, 4)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *SourceTestSuite) TestDiceShortResult() {
	s.mockRoller.EXPECT().RollN(4, 6).Return([]int{1, 2}, nil)

	_, err := s.source.Dice(4, 6)
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func TestSeededRollerIsReproducible(t *testing.T) {
	a := dice.NewSeededRoller(42, 0)
	b := dice.NewSeededRoller(42, 0)

	for i := 0; i < 100; i++ {
		va, err := a.Roll(20)
		if err != nil {
			t.Fatal(err)
		}
		vb, err := b.Roll(20)
		if err != nil {
			t.Fatal(err)
		}
		if va != vb {
			t.Fatalf("roll %d differs: %d != %d", i, va, vb)
		}
		if va < 1 || va > 20 {
			t.Fatalf("roll %d out of range: %d", i, va)
		}
	}
}

func TestNewFactory(t *testing.T) {
	if _, ok := dice.NewFactory(0).(dice.Shared); !ok {
		t.Fatal("seed 0 should share the default roller")
	}

	f := dice.NewFactory(7)
	first, err := f.ForIndex(3).RollN(10, 100)
	if err != nil {
		t.Fatal(err)
	}
	again, err := f.ForIndex(3).RollN(10, 100)
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(first) != fmt.Sprint(again) {
		t.Fatalf("same index should replay the same stream: %v vs %v", first, again)
	}
}
