package config

import "sort"

// colorCodes maps the supported theme colors to their CSS hex codes.
var colorCodes = map[string]string{
	"red":      "#e74c3c",
	"green":    "#16a085",
	"blue":     "#89CFF0",
	"blue2":    "#30336b",
	"pink":     "#f4c2c2",
	"darkblue": "#130f40",
	"lime":     "#C1FF9C",
}

// SupportedColors returns the accepted APP_COLOR values in sorted order.
func SupportedColors() []string {
	names := make([]string, 0, len(colorCodes))
	for name := range colorCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
