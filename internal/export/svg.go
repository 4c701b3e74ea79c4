package export

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbitsim/internal/sim"
)

var trailColors = []string{"#00ff88", "#ff6b6b", "#4ecdc4", "#ffe66d", "#c792ea", "#89ddff"}

type bounds struct {
	min, max r2.Vec
}

func (b *bounds) include(p r2.Vec, pad float64) {
	b.min.X = math.Min(b.min.X, p.X-pad)
	b.min.Y = math.Min(b.min.Y, p.Y-pad)
	b.max.X = math.Max(b.max.X, p.X+pad)
	b.max.Y = math.Max(b.max.Y, p.Y+pad)
}

// padded widens the box by 10% and guards against a zero extent.
func (b bounds) padded() bounds {
	span := r2.Sub(b.max, b.min)
	if span.X == 0 {
		span.X = 1
	}
	if span.Y == 0 {
		span.Y = 1
	}
	margin := r2.Scale(0.1, span)
	return bounds{min: r2.Sub(b.min, margin), max: r2.Add(b.max, margin)}
}

// project maps world coordinates (y up) to SVG coordinates (y down).
func (b bounds) project(p r2.Vec, width, height int) (float64, float64, float64) {
	span := r2.Sub(b.max, b.min)
	sx := float64(width) / span.X
	sy := float64(height) / span.Y
	x := (p.X - b.min.X) * sx
	y := float64(height) - (p.Y-b.min.Y)*sy
	return x, y, math.Min(sx, sy)
}

func newBounds(p r2.Vec) bounds {
	return bounds{min: p, max: p}
}

func header(sb *strings.Builder, width, height int) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))
}

func writePath(sb *strings.Builder, b bounds, points []r2.Vec, width, height int, stroke string) {
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
	for i, p := range points {
		x, y, _ := b.project(p, width, height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")
}

// TrajectoryToSVG renders a single polyline.
func TrajectoryToSVG(points []r2.Vec, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	b := newBounds(points[0])
	for _, p := range points {
		b.include(p, 0)
	}
	b = b.padded()

	var sb strings.Builder
	header(&sb, width, height)
	writePath(&sb, b, points, width, height, strokeColor)
	sb.WriteString("</svg>")
	return sb.String()
}

// SceneToSVG renders every body of snap as a circle with its trail behind it.
// Planets are filled, vehicles are outlined.
func SceneToSVG(snap sim.Snapshot, width, height int) string {
	if len(snap.Bodies) == 0 {
		return ""
	}

	first := snap.Bodies[0].Position.Vec()
	b := newBounds(first)
	for _, body := range snap.Bodies {
		b.include(body.Position.Vec(), body.Radius)
		for _, p := range body.Trail {
			b.include(p, 0)
		}
	}
	b = b.padded()

	var sb strings.Builder
	header(&sb, width, height)

	for i, body := range snap.Bodies {
		color := trailColors[i%len(trailColors)]
		if len(body.Trail) >= 2 {
			writePath(&sb, b, body.Trail, width, height, color)
		}

		x, y, scale := b.project(body.Position.Vec(), width, height)
		r := math.Max(body.Radius*scale, 1)
		if body.Vehicle {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s"/>`+"\n", x, y, r, color))
		} else {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n", x, y, r, color))
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#cccccc" font-size="10">%s</text>`+"\n", x+r+2, y, body.Label))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
