package ui

import "image/color"

var backgroundColor = color.NRGBA{R: 250, G: 248, B: 240, A: 255}
var wallColor = color.NRGBA{R: 25, G: 25, B: 35, A: 255}
