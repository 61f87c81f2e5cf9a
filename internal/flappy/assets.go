package flappy

// Sprite identifies an image the drawing surface knows how to blit.
// Frontends resolve sprites to glyphs or colors; nothing is decoded here.
type Sprite int

const (
	SpriteNone Sprite = iota
	SpriteBlueBirdDown
	SpriteBlueBirdMid
	SpriteBlueBirdUp
	SpriteRedBirdDown
	SpriteRedBirdMid
	SpriteRedBirdUp
	SpriteYellowBirdDown
	SpriteYellowBirdMid
	SpriteYellowBirdUp
	SpritePipeGreen
	SpritePipeGreenRotated
	SpritePipeRed
	SpritePipeRedRotated
	SpriteBackgroundDay
	SpriteBackgroundNight
	SpriteFloor
	SpriteHeart
	SpriteStartMessage
	SpriteGameOverMessage
)

var spriteNames = map[Sprite]string{
	SpriteBlueBirdDown:     "players/bluebird-downflap",
	SpriteBlueBirdMid:      "players/bluebird-midflap",
	SpriteBlueBirdUp:       "players/bluebird-upflap",
	SpriteRedBirdDown:      "players/redbird-downflap",
	SpriteRedBirdMid:       "players/redbird-midflap",
	SpriteRedBirdUp:        "players/redbird-upflap",
	SpriteYellowBirdDown:   "players/yellowbird-downflap",
	SpriteYellowBirdMid:    "players/yellowbird-midflap",
	SpriteYellowBirdUp:     "players/yellowbird-upflap",
	SpritePipeGreen:        "environment/pipe-green",
	SpritePipeGreenRotated: "environment/pipe-green-rotated",
	SpritePipeRed:          "environment/pipe-red",
	SpritePipeRedRotated:   "environment/pipe-red-rotated",
	SpriteBackgroundDay:    "environment/background-day",
	SpriteBackgroundNight:  "environment/background-night",
	SpriteFloor:            "environment/base",
	SpriteHeart:            "environment/heart",
	SpriteStartMessage:     "messages/message",
	SpriteGameOverMessage:  "messages/gameover",
}

// String returns the asset id of the sprite.
func (s Sprite) String() string {
	if name, ok := spriteNames[s]; ok {
		return name
	}
	return "none"
}

// avatarFrames maps each avatar to its down/mid/up flap cycle.
var avatarFrames = map[Avatar][3]Sprite{
	AvatarBlue:   {SpriteBlueBirdDown, SpriteBlueBirdMid, SpriteBlueBirdUp},
	AvatarRed:    {SpriteRedBirdDown, SpriteRedBirdMid, SpriteRedBirdUp},
	AvatarYellow: {SpriteYellowBirdDown, SpriteYellowBirdMid, SpriteYellowBirdUp},
}

// pipeSprites maps each skin to its lower (upright) and upper (rotated) sprite.
var pipeSprites = map[PipeSkin][2]Sprite{
	PipeGreen: {SpritePipeGreen, SpritePipeGreenRotated},
	PipeRed:   {SpritePipeRed, SpritePipeRedRotated},
}

var backdropSprites = map[Backdrop]Sprite{
	BackdropDay:   SpriteBackgroundDay,
	BackdropNight: SpriteBackgroundNight,
}

// Sound identifies an effect the audio collaborator can play.
type Sound int

const (
	SoundWing      Sound = iota // Flap animation step
	SoundSwoosh                 // Jump input
	SoundPoint                  // Pair scored
	SoundHit                    // Death, or a life consumed
	SoundExtraLife              // Bonus collected
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundWing:
		return "wing"
	case SoundSwoosh:
		return "swoosh"
	case SoundPoint:
		return "point"
	case SoundHit:
		return "hit"
	case SoundExtraLife:
		return "extra_life"
	default:
		return "unknown"
	}
}
