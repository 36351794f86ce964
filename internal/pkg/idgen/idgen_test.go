package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-chargen/internal/pkg/idgen"
)

func TestCharacterIDs(t *testing.T) {
	gen := idgen.NewCharacterIDs()

	first := gen.Generate()
	second := gen.Generate()

	require.True(t, strings.HasPrefix(first, "char_"))
	assert.NotEqual(t, first, second)

	_, err := uuid.Parse(strings.TrimPrefix(first, "char_"))
	assert.NoError(t, err)
}

func TestSequential(t *testing.T) {
	gen := idgen.NewSequential("char")
	assert.Equal(t, "char_1", gen.Generate())
	assert.Equal(t, "char_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
