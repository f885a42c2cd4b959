package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clanfrenzy/frenzybot/internal/domain"
	"github.com/clanfrenzy/frenzybot/internal/scoring"
)

func TestItemPoints_ThresholdBoundaries(t *testing.T) {
	item := &domain.Item{
		Name:              "Dragon Claws",
		BasePoints:        10,
		DuplicatePoints:   6,
		UniqueRequired:    2,
		DuplicateRequired: 2,
	}

	tests := []struct {
		obtained int
		want     float64
	}{
		{0, 0},
		{1, 5},  // half unique credit, required==2 rule
		{2, 10}, // full unique
		{3, 13}, // unique + half duplicate
		{4, 16}, // unique + full duplicate
		{5, 16}, // capped; the processor rejects further submissions
		{9, 16},
	}

	for _, tt := range tests {
		item.Obtained = tt.obtained
		assert.Equal(t, tt.want, scoring.ItemPoints(item), "obtained=%d", tt.obtained)
	}
}

func TestItemPoints_HalfCreditOnlyForRequiredTwo(t *testing.T) {
	// The half rule is specific to required==2; a required==3 item one or
	// two short of the threshold earns nothing.
	item := &domain.Item{BasePoints: 30, DuplicatePoints: 10, UniqueRequired: 3, DuplicateRequired: 1}

	item.Obtained = 1
	assert.Equal(t, 0.0, scoring.ItemPoints(item))
	item.Obtained = 2
	assert.Equal(t, 0.0, scoring.ItemPoints(item))
	item.Obtained = 3
	assert.Equal(t, 30.0, scoring.ItemPoints(item))
}

func TestItemPoints_DefaultThresholds(t *testing.T) {
	// Zero and negative configured thresholds are treated as 1.
	item := &domain.Item{BasePoints: 8, DuplicatePoints: 4, UniqueRequired: 0, DuplicateRequired: -1}

	item.Obtained = 0
	assert.Equal(t, 0.0, scoring.ItemPoints(item))
	item.Obtained = 1
	assert.Equal(t, 8.0, scoring.ItemPoints(item))
	item.Obtained = 2
	assert.Equal(t, 12.0, scoring.ItemPoints(item))
}

func TestItemPoints_AwardsAreAdditive(t *testing.T) {
	item := &domain.Item{BasePoints: 10, DuplicatePoints: 6, UniqueRequired: 1, DuplicateRequired: 1, Obtained: 2}
	assert.Equal(t, 16.0, scoring.ItemPoints(item))
}

func TestItemPointsAt_IgnoresLiveCounter(t *testing.T) {
	item := &domain.Item{BasePoints: 10, DuplicatePoints: 6, UniqueRequired: 2, DuplicateRequired: 2, Obtained: 4}
	assert.Equal(t, 5.0, scoring.ItemPointsAt(item, 1))
	assert.Equal(t, 4, item.Obtained)
}
