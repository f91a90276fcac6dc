package client

import (
	"strconv"
	"strings"
)

// Text colors returned by ContrastColor.
const (
	Black = "#000000"
	White = "#FFFFFF"
)

// ContrastColor picks black or white text for a badge with background
// color hex ("#rgb", "#rrggbb" or either with an alpha digit pair, the
// leading # optional). Alpha is ignored. Empty or unparsable colors get
// black.
func ContrastColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 4, 8:
		hex = hex[:len(hex)*3/4]
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Black
	}

	var rgb [3]float64
	for i := range rgb {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Black
		}
		rgb[i] = float64(v)
	}

	luminance := (0.299*rgb[0] + 0.587*rgb[1] + 0.114*rgb[2]) / 255
	if luminance > 0.5 {
		return Black
	}
	return White
}
