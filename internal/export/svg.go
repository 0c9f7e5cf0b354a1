package export

import (
	"fmt"
	"strings"

	"github.com/mvail/lifelab/internal/life"
)

// BoardToSVG renders a universe snapshot as an SVG, one square per live cell.
func BoardToSVG(u *life.Universe, scale float64) string {
	if u == nil {
		return ""
	}

	width := float64(u.Width()) * scale
	height := float64(u.Height()) * scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	gap := scale * 0.1
	for y := 0; y < u.Height(); y++ {
		for x := 0; x < u.Width(); x++ {
			if u.Get(x, y) != life.Alive {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(x)*scale+gap/2, float64(y)*scale+gap/2, scale-gap, scale-gap))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PopulationToSVG plots a population history as an SVG polyline.
func PopulationToSVG(populations []int, width, height int, strokeColor string) string {
	if len(populations) < 2 {
		return ""
	}

	minP, maxP := populations[0], populations[0]
	for _, p := range populations {
		if p < minP {
			minP = p
		}
		if p > maxP {
			maxP = p
		}
	}

	rangeP := float64(maxP - minP)
	if rangeP == 0 {
		rangeP = 1
	}
	pad := rangeP * 0.1
	lo := float64(minP) - pad
	rangeP += 2 * pad

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range populations {
		x := float64(i) / float64(len(populations)-1) * float64(width)
		y := float64(height) - (float64(p)-lo)/rangeP*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
