package export

import (
	"fmt"
	"math"
	"strings"
)

const (
	radarWidth  = 450
	radarHeight = 350
	gridLevels  = 4
)

// radarSVG renders the score profile as a radar polygon. Axes start at
// the top and run clockwise in catalog order.
func radarSVG(labels []string, values []float64, maxScore float64) string {
	centerX := float64(radarWidth) / 2
	centerY := float64(radarHeight) / 2
	radius := math.Min(radarWidth, radarHeight) * 0.35
	sides := len(values)
	if sides == 0 {
		return ""
	}
	angleSlice := 2 * math.Pi / float64(sides)

	point := func(value float64, index int) (float64, float64) {
		angle := angleSlice*float64(index) - math.Pi/2
		r := value / maxScore * radius
		return centerX + r*math.Cos(angle), centerY + r*math.Sin(angle)
	}
	pointStr := func(value float64, index int) string {
		x, y := point(value, index)
		return fmt.Sprintf("%.1f,%.1f", x, y)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`,
		radarWidth, radarHeight, radarWidth, radarHeight)

	// Grid polygons, outermost first.
	for i := gridLevels; i >= 1; i-- {
		level := maxScore / gridLevels * float64(i)
		points := make([]string, sides)
		for j := range sides {
			points[j] = pointStr(level, j)
		}
		fmt.Fprintf(&b, `<polygon points="%s" fill="#f1f5f9" stroke="#e2e8f0" stroke-width="1"/>`,
			strings.Join(points, " "))
	}

	// Axis lines from center to edge.
	for i := range sides {
		x, y := point(maxScore, i)
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e2e8f0" stroke-width="1"/>`,
			centerX, centerY, x, y)
	}

	// Data polygon.
	points := make([]string, sides)
	for i, v := range values {
		points[i] = pointStr(v, i)
	}
	fmt.Fprintf(&b, `<polygon points="%s" fill="rgba(14,165,233,0.3)" stroke="#0284c7" stroke-width="2"/>`,
		strings.Join(points, " "))

	// Axis labels, pushed out past the edge.
	for i, label := range labels {
		angle := angleSlice*float64(i) - math.Pi/2
		labelRadius := radius * 1.25
		x := centerX + labelRadius*math.Cos(angle)
		y := centerY + labelRadius*math.Sin(angle)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="11" font-weight="600" fill="#475569">%s</text>`,
			x, y, htmlEscape(label))
	}

	b.WriteString("</svg>")
	return b.String()
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
