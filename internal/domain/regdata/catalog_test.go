package regdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogCoversFiftyStates(t *testing.T) {
	c := Default()
	assert.Equal(t, 50, c.Len())
	assert.Len(t, c.ListAll(), 50)

	rec, ok := c.Get("CA")
	require.True(t, ok)
	assert.Equal(t, "California", rec.Name)
	assert.Equal(t, TierHigh, rec.RiskTier)
	assert.NotEmpty(t, rec.Regulations)
	assert.NotEmpty(t, rec.KeyRequirements)
}

func TestListAllIsSortedAndStable(t *testing.T) {
	c := Default()
	codes := c.ListAll()
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i-1], codes[i])
	}
	// returned slice is a copy
	codes[0] = "zz"
	assert.NotEqual(t, "zz", c.ListAll()[0])
}

func TestListHighRiskIsSubset(t *testing.T) {
	c := Default()
	high := c.ListHighRisk()
	require.NotEmpty(t, high)
	assert.Contains(t, high, "CA")
	for _, code := range high {
		rec, ok := c.Get(code)
		require.True(t, ok)
		assert.Equal(t, TierHigh, rec.RiskTier)
	}
	assert.Less(t, len(high), c.Len())
}

func TestGetUnknownCode(t *testing.T) {
	_, ok := Default().Get("XX")
	assert.False(t, ok)
}
