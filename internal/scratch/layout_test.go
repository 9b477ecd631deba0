package scratch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutLocate(t *testing.T) {
	l := NewLayout(3, DefaultSurface())

	tests := []struct {
		name  string
		point Point
		index int
		local Point
		ok    bool
	}{
		{"padding", Point{X: 5, Y: 5}, 0, Point{}, false},
		{"first cell border", Point{X: 11, Y: 20}, 0, Point{}, false},
		{"first cell", Point{X: 12, Y: 12}, 0, Point{X: 0, Y: 0}, true},
		{"first cell far edge", Point{X: 111.5, Y: 60}, 0, Point{X: 99.5, Y: 48}, true},
		{"gap", Point{X: 118, Y: 60}, 0, Point{}, false},
		{"second cell", Point{X: 126 + 30, Y: 12 + 40}, 1, Point{X: 30, Y: 40}, true},
		{"second row", Point{X: 12 + 5, Y: 126 + 5}, 3, Point{X: 5, Y: 5}, true},
		{"past last column", Point{X: 400, Y: 20}, 0, Point{}, false},
		{"past last row", Point{X: 20, Y: 4*114 + 20}, 0, Point{}, false},
		{"negative", Point{X: -20, Y: 20}, 0, Point{}, false},
		{"huge", Point{X: 1e300, Y: 1e300}, 0, Point{}, false},
		{"not a number", Point{X: math.NaN(), Y: 20}, 0, Point{}, false},
		{"infinite", Point{X: 20, Y: math.Inf(1)}, 0, Point{}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			index, local, ok := l.Locate(test.point, 12)
			assert.Equal(t, test.ok, ok)
			if test.ok {
				assert.Equal(t, test.index, index)
				assert.InDelta(t, test.local.X, local.X, 1e-9)
				assert.InDelta(t, test.local.Y, local.Y, 1e-9)
			}
		})
	}
}

func TestLayoutOrigin(t *testing.T) {
	l := NewLayout(3, DefaultSurface())

	assert.Equal(t, Point{X: 12, Y: 12}, l.Origin(0))
	assert.Equal(t, Point{X: 126, Y: 12}, l.Origin(1))
	assert.Equal(t, Point{X: 240, Y: 126}, l.Origin(5))
}
