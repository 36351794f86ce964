// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-chargen/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-chargen/internal/engine/mock"
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook"
)

// ExpectRuleset lets the engine report rs any number of times
func ExpectRuleset(mockEngine *enginemock.MockEngine, rs rulebook.Ruleset) {
	mockEngine.EXPECT().Ruleset().Return(rs).AnyTimes()
}

// ExpectCharacterStages sets up one pass through every resolution stage, in
// order, so the assembled character matches want apart from ID and CreatedAt
func ExpectCharacterStages(mockEngine *enginemock.MockEngine, want *dnd5e.Character) {
	gomock.InOrder(
		mockEngine.EXPECT().
			RollIdentity(gomock.Any(), gomock.Any()).
			Return(&engine.RollIdentityOutput{
				Gender:    want.Gender,
				Race:      want.Race,
				Class:     want.Class,
				Alignment: want.Alignment,
			}, nil),
		mockEngine.EXPECT().
			RollAbilityScores(gomock.Any(), gomock.Any()).
			Return(&engine.RollAbilityScoresOutput{AbilityScores: want.AbilityScores}, nil),
		mockEngine.EXPECT().
			ApplyRacialEffects(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *engine.ApplyRacialEffectsInput) (*engine.ApplyRacialEffectsOutput, error) {
				return &engine.ApplyRacialEffectsOutput{
					AbilityScores: input.AbilityScores,
					Speed:         want.Speed,
					Size:          want.Size,
				}, nil
			}),
		mockEngine.EXPECT().
			ApplyImprovements(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *engine.ApplyImprovementsInput) (*engine.ApplyImprovementsOutput, error) {
				return &engine.ApplyImprovementsOutput{AbilityScores: input.AbilityScores}, nil
			}),
		mockEngine.EXPECT().
			RollHitPoints(gomock.Any(), gomock.Any()).
			Return(&engine.RollHitPointsOutput{HitPoints: want.HitPoints, HitDice: want.HitDice}, nil),
		mockEngine.EXPECT().
			ResolveLanguages(gomock.Any(), gomock.Any()).
			Return(&engine.ResolveLanguagesOutput{Languages: want.Languages}, nil),
		mockEngine.EXPECT().
			ResolveProficiencies(gomock.Any(), gomock.Any()).
			Return(&engine.ResolveProficienciesOutput{Proficiencies: want.Proficiencies}, nil),
	)
}
