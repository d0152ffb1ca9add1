package layout

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cardWidth  = 1280
	cardHeight = 1800
)

func mustPoints(t *testing.T, rank, w, h int) []Point {
	t.Helper()
	points, ok := SymmetricPoints(rank, w, h)
	require.True(t, ok, "rank %d should have a layout", rank)
	return points
}

func sorted(points []Point) []Point {
	out := append([]Point(nil), points...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

func TestSymmetricPointsCountAndBounds(t *testing.T) {
	sizes := [][2]int{{cardWidth, cardHeight}, {128, 180}, {600, 400}}
	for _, size := range sizes {
		w, h := size[0], size[1]
		for rank := 1; rank <= 10; rank++ {
			points := mustPoints(t, rank, w, h)
			assert.Len(t, points, rank, "rank %d on %dx%d", rank, w, h)
			for _, p := range points {
				assert.True(t, p.X >= 0 && p.X <= float64(w), "x out of bounds: %v", p)
				assert.True(t, p.Y >= 0 && p.Y <= float64(h), "y out of bounds: %v", p)
			}
		}
	}
}

func TestSymmetricPointsExact(t *testing.T) {
	// margin = max(1280/6, 1800/6) = 300
	assert.Equal(t, 300, Margin(cardWidth, cardHeight))

	assert.Equal(t, []Point{{640, 900}}, mustPoints(t, 1, cardWidth, cardHeight))
	assert.Equal(t, []Point{{640, 600}, {640, 1200}}, mustPoints(t, 2, cardWidth, cardHeight))
	assert.Equal(t, []Point{{640, 300}, {640, 900}, {640, 1500}}, mustPoints(t, 3, cardWidth, cardHeight))
	assert.Equal(t, []Point{{300, 300}, {980, 300}, {300, 1500}, {980, 1500}}, mustPoints(t, 4, cardWidth, cardHeight))

	nine := mustPoints(t, 9, cardWidth, cardHeight)
	assert.Equal(t, []Point{
		{300, 300}, {980, 300},
		{300, 700}, {980, 700},
		{300, 1100}, {980, 1100},
		{300, 1500}, {980, 1500},
		{640, 900},
	}, nine)
}

func TestSymmetricPointsCeilRounding(t *testing.T) {
	// margin = 17, the middle row falls on 53.5
	points := mustPoints(t, 3, 60, 107)
	require.Equal(t, 17, Margin(60, 107))
	assert.Equal(t, []Point{{30, 17}, {30, 54}, {30, 90}}, points)
}

func TestFiveIsFourPlusOne(t *testing.T) {
	for _, size := range [][2]int{{cardWidth, cardHeight}, {200, 300}} {
		five := mustPoints(t, 5, size[0], size[1])
		one := mustPoints(t, 1, size[0], size[1])
		four := mustPoints(t, 4, size[0], size[1])
		assert.Equal(t, sorted(append(one, four...)), sorted(five))
	}
}

func TestEightIsTwoPlusSix(t *testing.T) {
	eight := mustPoints(t, 8, cardWidth, cardHeight)
	two := mustPoints(t, 2, cardWidth, cardHeight)
	six := mustPoints(t, 6, cardWidth, cardHeight)
	assert.Equal(t, sorted(append(two, six...)), sorted(eight))

	seen := map[Point]bool{}
	for _, p := range eight {
		assert.False(t, seen[p], "duplicate point %v", p)
		seen[p] = true
	}
}

func TestSevenAddsTopPointToSix(t *testing.T) {
	seven := mustPoints(t, 7, cardWidth, cardHeight)
	two := mustPoints(t, 2, cardWidth, cardHeight)
	six := mustPoints(t, 6, cardWidth, cardHeight)
	assert.Equal(t, two[0], seven[0])
	assert.Equal(t, six, seven[1:])
}

func TestTenIsTwoPlusGrid(t *testing.T) {
	ten := mustPoints(t, 10, cardWidth, cardHeight)
	nine := mustPoints(t, 9, cardWidth, cardHeight)
	two := mustPoints(t, 2, cardWidth, cardHeight)
	assert.Equal(t, two, ten[:2])
	assert.Equal(t, nine[:8], ten[2:])
}

func TestSymmetricPointsPointSymmetry(t *testing.T) {
	w, h := float64(cardWidth), float64(cardHeight)
	for rank := 1; rank <= 10; rank++ {
		if rank == 7 {
			// seven carries a single extra icon in the upper half
			continue
		}
		points := mustPoints(t, rank, cardWidth, cardHeight)
		for _, p := range points {
			found := false
			for _, q := range points {
				if math.Abs(q.X-(w-p.X)) <= 1 && math.Abs(q.Y-(h-p.Y)) <= 1 {
					found = true
					break
				}
			}
			assert.True(t, found, "rank %d: no mirror for %v", rank, p)
		}
	}
}

func TestSymmetricPointsNoLayout(t *testing.T) {
	for _, rank := range []int{-1, 0, 11, 42} {
		points, ok := SymmetricPoints(rank, cardWidth, cardHeight)
		assert.False(t, ok)
		assert.Nil(t, points)
	}
}
