package swiss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSeedingAcceptsPermutation(t *testing.T) {
	roster := []int{1, 2, 3, 4}
	assert.Nil(t, ValidateSeeding(roster, []int{4, 2, 1, 3}))
}

func TestValidateSeedingMissingTeam(t *testing.T) {
	roster := []int{1, 2, 3, 4}
	issues := ValidateSeeding(roster, []int{1, 2, 3})
	require.NotNil(t, issues)
	assert.Equal(t, []int{4}, issues.Missing)
	assert.Empty(t, issues.Extra)
	assert.Empty(t, issues.Duplicates)
}

func TestValidateSeedingExtraTeam(t *testing.T) {
	roster := []int{1, 2, 3}
	issues := ValidateSeeding(roster, []int{1, 2, 3, 9})
	require.NotNil(t, issues)
	assert.Equal(t, []int{9}, issues.Extra)
}

func TestValidateSeedingDuplicate(t *testing.T) {
	roster := []int{1, 2, 3}
	issues := ValidateSeeding(roster, []int{1, 2, 2})
	require.NotNil(t, issues)
	assert.Equal(t, []int{2}, issues.Duplicates)
	assert.Equal(t, []int{3}, issues.Missing)
}

func TestMoveUpAndDown(t *testing.T) {
	order := []int{1, 2, 3}

	order = MoveUp(order, 2)
	assert.Equal(t, []int{1, 3, 2}, order)

	order = MoveDown(order, 0)
	assert.Equal(t, []int{3, 1, 2}, order)
}

func TestMoveBoundariesAreNoOps(t *testing.T) {
	order := []int{1, 2, 3}

	assert.Equal(t, []int{1, 2, 3}, MoveUp(order, 0))
	assert.Equal(t, []int{1, 2, 3}, MoveDown(order, 2))
	assert.Equal(t, []int{1, 2, 3}, MoveUp(order, -1))
	assert.Equal(t, []int{1, 2, 3}, MoveDown(order, 5))
}
