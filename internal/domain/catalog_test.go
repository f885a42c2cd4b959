package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return &Catalog{
		Team: "ironworks",
		Tiers: map[string]*Tier{
			"Raids": {
				Sources: []*Source{
					{
						Name: "Chambers of Xeric",
						Items: []*Item{
							{Name: "Twisted Bow", BasePoints: 100, DuplicatePoints: 50, UniqueRequired: 1, DuplicateRequired: 1},
							{Name: "Dragon Claws", BasePoints: 40, DuplicatePoints: 20, UniqueRequired: 2, DuplicateRequired: 2, Obtained: 1},
						},
					},
				},
			},
		},
		Multipliers: []*Multiplier{
			{Name: "Rock Solid", Factor: 1.5, Affects: []string{"Chambers of Xeric"}, Requirement: []string{"Twisted Bow"}},
		},
	}
}

func TestFindItem(t *testing.T) {
	c := testCatalog()

	ref, err := c.FindItem("Raids", "Chambers of Xeric", "Twisted Bow")
	require.NoError(t, err)
	assert.Equal(t, "Twisted Bow", ref.Item.Name)
	assert.Equal(t, "Raids.Chambers of Xeric.Twisted Bow", ref.Key())
}

func TestFindItem_DistinctNotFound(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name    string
		tier    string
		source  string
		item    string
		wantErr error
	}{
		{"missing tier", "Bosses", "Chambers of Xeric", "Twisted Bow", ErrTierNotFound},
		{"missing source", "Raids", "Tombs of Amascut", "Twisted Bow", ErrSourceNotFound},
		{"missing item", "Raids", "Chambers of Xeric", "Scythe", ErrItemNotFound},
		{"case sensitive", "Raids", "Chambers of Xeric", "twisted bow", ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.FindItem(tt.tier, tt.source, tt.item)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIncrementObtained(t *testing.T) {
	c := testCatalog()

	n, err := c.IncrementObtained("Raids", "Chambers of Xeric", "Twisted Bow")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = c.IncrementObtained("Raids", "Chambers of Xeric", "Twisted Bow")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = c.IncrementObtained("Raids", "Nex", "Torva")
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestClone_Isolated(t *testing.T) {
	c := testCatalog()
	snapshot := c.Clone()

	_, err := c.IncrementObtained("Raids", "Chambers of Xeric", "Twisted Bow")
	require.NoError(t, err)
	c.Multipliers[0].Unlocked = true

	ref, err := snapshot.FindItem("Raids", "Chambers of Xeric", "Twisted Bow")
	require.NoError(t, err)
	assert.Equal(t, 0, ref.Item.Obtained, "snapshot must not observe live mutations")
	assert.False(t, snapshot.Multipliers[0].Unlocked)
}

func TestMaxObtainable_NormalizesThresholds(t *testing.T) {
	assert.Equal(t, 2, (&Item{UniqueRequired: 0, DuplicateRequired: -3}).MaxObtainable())
	assert.Equal(t, 4, (&Item{UniqueRequired: 2, DuplicateRequired: 2}).MaxObtainable())
}

func TestObtainedCounts(t *testing.T) {
	c := testCatalog()
	counts := c.ObtainedCounts()
	assert.Equal(t, 0, counts["Twisted Bow"])
	assert.Equal(t, 1, counts["Dragon Claws"])
}
