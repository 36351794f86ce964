// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-chargen/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
)

// Level bounds
const (
	MinLevel = 1
	MaxLevel = 20
)

// Service defines the interface for character operations
type Service interface {
	// Generate rolls one character at the requested level
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// GenerateBatch rolls Count characters, returned in index order
	GenerateBatch(ctx context.Context, input *GenerateBatchInput) (*GenerateBatchOutput, error)
}

// GenerateInput defines the request for generating a character
type GenerateInput struct {
	Level int
}

// GenerateOutput defines the response for generating a character
type GenerateOutput struct {
	Character *dnd5e.Character
}

// GenerateBatchInput defines the request for generating several characters
type GenerateBatchInput struct {
	Count int
	Level int
	// Workers bounds how many characters resolve at once. Zero uses the
	// service default.
	Workers int
}

// GenerateBatchOutput defines the response for generating several characters
type GenerateBatchOutput struct {
	Characters []*dnd5e.Character
}
