package generate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/internal/gamemap"
)

func TestFillRandomExtremes(t *testing.T) {
	cases := []struct {
		name   string
		chance float64
		walls  int
	}{
		{"zero chance leaves floor", 0, 0},
		{"negative chance leaves floor", -0.5, 0},
		{"certain chance walls everything", 1, 12 * 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gamemap.New(12, 9)
			require.NoError(t, err)
			FillRandom(g, tc.chance, rand.New(rand.NewSource(1)))
			assert.Equal(t, tc.walls, g.Count(gamemap.Wall))
		})
	}
}

func TestFillRandomDeterministic(t *testing.T) {
	a, _ := gamemap.New(30, 20)
	b, _ := gamemap.New(30, 20)
	FillRandom(a, 0.45, rand.New(rand.NewSource(99)))
	FillRandom(b, 0.45, rand.New(rand.NewSource(99)))
	assert.True(t, a.Equal(b), "same seed must produce the same noise")

	c, _ := gamemap.New(30, 20)
	FillRandom(c, 0.45, rand.New(rand.NewSource(100)))
	assert.False(t, a.Equal(c), "different seeds should differ")
}

func TestFillRandomProportion(t *testing.T) {
	g, _ := gamemap.New(200, 200)
	FillRandom(g, 0.3, rand.New(rand.NewSource(5)))
	ratio := float64(g.Count(gamemap.Wall)) / float64(200*200)
	assert.InDelta(t, 0.3, ratio, 0.02)
}

func TestFillRandomKeepsExistingWalls(t *testing.T) {
	g, _ := gamemap.New(4, 4)
	g.Fill(gamemap.Wall)
	FillRandom(g, 0, rand.New(rand.NewSource(1)))
	assert.Equal(t, 16, g.Count(gamemap.Wall))
}
