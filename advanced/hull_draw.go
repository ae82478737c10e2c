package advanced

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 10

// dbgDrawHull renders the input points and the hull boundary to a PNG and
// cats it to the terminal. Hull vertices are drawn larger than interior
// points so a point wrongly excluded from the hull stands out.
func dbgDrawHull(points []*Point, hull Hull, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Hull boundary
	if len(hull) > 0 {
		c.SetLineWidth(2)
		c.MoveTo(hull[0].X, hull[0].Y)
		for _, p := range hull[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	// Input points
	onHull := make(map[*Point]struct{}, len(hull))
	for _, p := range hull {
		onHull[p] = struct{}{}
	}
	for _, p := range points {
		radius := 2 / scale
		if _, ok := onHull[p]; ok {
			radius *= 2
			c.SetRGB(0, 1, 0)
		} else {
			c.SetRGB(1, 0.5, 0)
		}
		c.DrawCircle(p.X, p.Y, radius)
		c.Fill()
	}

	c.SavePNG("/tmp/convex_hull.png")
	imgcat.CatFile("/tmp/convex_hull.png", os.Stdout)
}
