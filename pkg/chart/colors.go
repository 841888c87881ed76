package chart

import (
	"image/color"
	"strings"
)

// colorConfigs maps a workload group's replica count to its three series
// colors. Groups outside the known scales fall back to the "1" palette.
var colorConfigs = map[string][3]color.RGBA{
	"1": {
		{0x66, 0xa6, 0x1e, 0xff}, // green
		{0xe6, 0xab, 0x02, 0xff}, // mustard
		{0xe7, 0x29, 0x8a, 0xff}, // magenta
	},
	"2": {
		{0x1b, 0x9e, 0x77, 0xff}, // teal
		{0xd9, 0x5f, 0x02, 0xff}, // orange
		{0x75, 0x70, 0xb3, 0xff}, // violet
	},
	"4": {
		{0xa6, 0x76, 0x1d, 0xff}, // brown
		{0x66, 0x66, 0x66, 0xff}, // gray
		{0x86, 0xbb, 0xd8, 0xff}, // sky blue
	},
}

// groupColors picks the palette for a workload group label like "2 pods"
func groupColors(label string) [3]color.RGBA {
	scale := strings.Split(label, " ")[0]
	if colors, ok := colorConfigs[scale]; ok {
		return colors
	}
	return colorConfigs["1"]
}
