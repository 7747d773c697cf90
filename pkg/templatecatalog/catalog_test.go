package templatecatalog

import (
	"testing"

	"chodae.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogCoversEveryType(t *testing.T) {
	c := Default()
	require.NotEmpty(t, c.All())

	for _, typ := range models.InvitationTypes {
		assert.NotEmpty(t, c.ByType(typ), "no template for %s", typ)
	}
}

func TestByID(t *testing.T) {
	tpl, ok := Default().ByID("wedding-floral-01")
	require.True(t, ok)
	assert.Equal(t, models.InvitationTypeWedding, tpl.Type)
	assert.False(t, tpl.IsPremium)

	_, ok = Default().ByID("does-not-exist")
	assert.False(t, ok)
}

func TestStatsAddUp(t *testing.T) {
	stats := Default().Stats()
	assert.Equal(t, stats.Total, stats.Free+stats.Premium)
	assert.Len(t, Default().Premium(), stats.Premium)
	assert.Len(t, Default().Free(), stats.Free)

	sum := 0
	for _, n := range stats.ByType {
		sum += n
	}
	assert.Equal(t, stats.Total, sum)
}

func TestLoadRejectsDuplicatesAndUnknownTypes(t *testing.T) {
	_, err := Load([]byte(`
[[templates]]
id = "a"
type = "wedding"

[[templates]]
id = "a"
type = "wedding"
`))
	require.Error(t, err)

	_, err = Load([]byte(`
[[templates]]
id = "b"
type = "retirement"
`))
	require.Error(t, err)
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Name = "mutated"

	again := c.All()
	assert.NotEqual(t, "mutated", again[0].Name)
}
