package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogues(t *testing.T) {
	assert.Len(t, Keys(), 17)
	assert.Len(t, Themes(), 10)
	assert.Equal(t, Key("2010"), Years()[0])
	assert.Equal(t, Key("2019"), Years()[len(Years())-1])

	// Returned slices are copies.
	ks := Keys()
	ks[0] = "mutated"
	assert.Equal(t, Change, Keys()[0])
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("2015")
	require.NoError(t, err)
	assert.Equal(t, Key("2015"), k)

	k, err = ParseKey("Domestic")
	require.NoError(t, err)
	assert.Equal(t, Domestic, k)

	_, err = ParseKey("2020")
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = ParseKey("births")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme("viridis")
	require.NoError(t, err)
	assert.Equal(t, Theme("viridis"), th)

	_, err = ParseTheme("jet")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestKeyDiffable(t *testing.T) {
	tests := []struct {
		key      Key
		diffable bool
		prior    Key
	}{
		{"2010", false, "2009"},
		{"2011", true, "2010"},
		{"2019", true, "2018"},
		{Change, false, ""},
		{International, false, ""},
		{"20a1", false, ""},
		{"", false, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.diffable, tt.key.Diffable())
			assert.Equal(t, tt.prior, tt.key.Prior())
		})
	}

	for _, c := range Components() {
		assert.True(t, c.IsComponent())
		assert.False(t, c.IsYear())
	}
}

func TestSelectionIsValue(t *testing.T) {
	base := Default()
	changed := base.WithKey("2015").WithTheme("reds")

	assert.Equal(t, Key("2011"), base.Key)
	assert.Equal(t, Theme("blues"), base.Theme)
	assert.Equal(t, Key("2015"), changed.Key)
	assert.Equal(t, Theme("reds"), changed.Theme)
	assert.Equal(t, base.Line, changed.Line)

	require.NoError(t, base.Validate())
	assert.ErrorIs(t, base.WithKey("1999").Validate(), ErrUnknownKey)
	assert.ErrorIs(t, base.WithTheme("gray").Validate(), ErrUnknownTheme)
}

func TestViewportResolution(t *testing.T) {
	assert.Equal(t, float64(DefaultDPI), Viewport{Width: 10}.Resolution())
	assert.Equal(t, 96.0, Viewport{DPI: 96}.Resolution())
}
