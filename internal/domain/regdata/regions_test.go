package regdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegionsCoversSevenRegions(t *testing.T) {
	c := DefaultRegions()
	assert.Equal(t, 7, c.Len())
	assert.Len(t, c.ListAll(), 7)

	p := c.Get("europe")
	assert.Equal(t, "Europe", p.Name)
	require.NotEmpty(t, p.Factors)
	assert.Contains(t, p.Factors, "privacy")
}

func TestRegionListAllIsSortedAndStable(t *testing.T) {
	c := DefaultRegions()
	codes := c.ListAll()
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i-1], codes[i])
	}
	codes[0] = "zz"
	assert.NotEqual(t, "zz", c.ListAll()[0])
}

func TestRegionGetUnknownFallsBackToGlobal(t *testing.T) {
	p := DefaultRegions().Get("atlantis")
	assert.Equal(t, "global", p.Code)
	assert.NotEmpty(t, p.Factors)
}
