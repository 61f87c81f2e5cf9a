package canvas

import (
	"image/color"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Sky is drawn behind everything.
var Sky = color.RGBA{0x4e, 0xc0, 0xca, 0xff}

var spriteColors = map[flappy.Sprite]color.RGBA{
	flappy.SpriteBlueBirdDown:     {0x3b, 0x8e, 0xd0, 0xff},
	flappy.SpriteBlueBirdMid:      {0x4a, 0x9f, 0xe0, 0xff},
	flappy.SpriteBlueBirdUp:       {0x5a, 0xaf, 0xf0, 0xff},
	flappy.SpriteRedBirdDown:      {0xc8, 0x30, 0x2c, 0xff},
	flappy.SpriteRedBirdMid:       {0xd8, 0x40, 0x3c, 0xff},
	flappy.SpriteRedBirdUp:        {0xe8, 0x50, 0x4c, 0xff},
	flappy.SpriteYellowBirdDown:   {0xe0, 0xb0, 0x20, 0xff},
	flappy.SpriteYellowBirdMid:    {0xf0, 0xc0, 0x30, 0xff},
	flappy.SpriteYellowBirdUp:     {0xff, 0xd0, 0x40, 0xff},
	flappy.SpritePipeGreen:        {0x1e, 0xc8, 0x0f, 0xff},
	flappy.SpritePipeGreenRotated: {0x1e, 0xc8, 0x0f, 0xff},
	flappy.SpritePipeRed:          {0xc0, 0x28, 0x1e, 0xff},
	flappy.SpritePipeRedRotated:   {0xc0, 0x28, 0x1e, 0xff},
	flappy.SpriteBackgroundDay:    {0x4e, 0xc0, 0xca, 0xff},
	flappy.SpriteBackgroundNight:  {0x0c, 0x1a, 0x3a, 0xff},
	flappy.SpriteFloor:            {0xde, 0xd8, 0x95, 0xff},
	flappy.SpriteHeart:            {0xff, 0x3c, 0x64, 0xff},
	flappy.SpriteStartMessage:     {0x20, 0x20, 0x30, 0xe0},
	flappy.SpriteGameOverMessage:  {0x20, 0x20, 0x30, 0xe0},
}

// Color returns the fill color of a sprite.
func Color(s flappy.Sprite) (color.RGBA, bool) {
	c, ok := spriteColors[s]
	return c, ok
}

var messageLines = map[flappy.Sprite][]string{
	flappy.SpriteStartMessage:    {"FLAPPY", "", "enter/click: start", "space: flap"},
	flappy.SpriteGameOverMessage: {"GAME OVER"},
}

// MessageLines returns the text of an overlay message sprite, or nil for
// sprites that are plain images.
func MessageLines(s flappy.Sprite) []string {
	return messageLines[s]
}
