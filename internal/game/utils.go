package game

import (
	"fmt"
	"image/color"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// nrgba converts a palette color with an opacity in [0,1].
func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(alpha)*255 + 0.5),
	}
}

// fogged blends c toward fog by linear distance fog.
func fogged(c, fog colorful.Color, dist, near, far float64) colorful.Color {
	f := clamp01((dist - near) / (far - near))
	return c.BlendRgb(fog, f)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as HH:MM:SS
func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
