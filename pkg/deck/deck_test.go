package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := New()
	assert.Equal(t, Size, len(d.Cards))

	// canonical order is rank-major, suit-minor
	assert.Equal(t, "2C", d.Cards[0].String())
	assert.Equal(t, "2D", d.Cards[1].String())
	assert.Equal(t, "2H", d.Cards[2].String())
	assert.Equal(t, "2S", d.Cards[3].String())
	assert.Equal(t, "3C", d.Cards[4].String())
	assert.Equal(t, "AS", d.Cards[51].String())

	// all cards are distinct
	seen := make(map[string]bool)
	for _, c := range d.Cards {
		assert.False(t, seen[c.String()], "duplicate card %s", c)
		seen[c.String()] = true
	}
	assert.Equal(t, Size, len(seen))
}

func TestNew_stableOrder(t *testing.T) {
	d1 := New()
	d2 := New()
	for i := range d1.Cards {
		assert.True(t, d1.Cards[i].Equal(d2.Cards[i]))
	}
}
