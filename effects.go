package bledom

import "fmt"

// Effect is a built-in lighting effect code understood by the controller.
type Effect byte

// Built-in effects.
const (
	EffectJumpRGB            Effect = 0x87
	EffectJumpRGBYCMW        Effect = 0x88
	EffectCrossfadeRGB       Effect = 0x89
	EffectCrossfadeRGBYCMW   Effect = 0x8A
	EffectCrossfadeRed       Effect = 0x8B
	EffectCrossfadeGreen     Effect = 0x8C
	EffectCrossfadeBlue      Effect = 0x8D
	EffectCrossfadeYellow    Effect = 0x8E
	EffectCrossfadeCyan      Effect = 0x8F
	EffectCrossfadeMagenta   Effect = 0x90
	EffectCrossfadeWhite     Effect = 0x91
	EffectCrossfadeRedGreen  Effect = 0x92
	EffectCrossfadeRedBlue   Effect = 0x93
	EffectCrossfadeGreenBlue Effect = 0x94
	EffectBlinkRGBYCMW       Effect = 0x95
	EffectBlinkRed           Effect = 0x96
	EffectBlinkGreen         Effect = 0x97
	EffectBlinkBlue          Effect = 0x98
	EffectBlinkYellow        Effect = 0x99
	EffectBlinkCyan          Effect = 0x9A
	EffectBlinkMagenta       Effect = 0x9B
	EffectBlinkWhite         Effect = 0x9C
)

var effectNames = map[Effect]string{
	EffectJumpRGB:            "jump-rgb",
	EffectJumpRGBYCMW:        "jump-rainbow",
	EffectCrossfadeRGB:       "crossfade-rgb",
	EffectCrossfadeRGBYCMW:   "crossfade-rainbow",
	EffectCrossfadeRed:       "crossfade-red",
	EffectCrossfadeGreen:     "crossfade-green",
	EffectCrossfadeBlue:      "crossfade-blue",
	EffectCrossfadeYellow:    "crossfade-yellow",
	EffectCrossfadeCyan:      "crossfade-cyan",
	EffectCrossfadeMagenta:   "crossfade-magenta",
	EffectCrossfadeWhite:     "crossfade-white",
	EffectCrossfadeRedGreen:  "crossfade-red-green",
	EffectCrossfadeRedBlue:   "crossfade-red-blue",
	EffectCrossfadeGreenBlue: "crossfade-green-blue",
	EffectBlinkRGBYCMW:       "blink-rainbow",
	EffectBlinkRed:           "blink-red",
	EffectBlinkGreen:         "blink-green",
	EffectBlinkBlue:          "blink-blue",
	EffectBlinkYellow:        "blink-yellow",
	EffectBlinkCyan:          "blink-cyan",
	EffectBlinkMagenta:       "blink-magenta",
	EffectBlinkWhite:         "blink-white",
}

// String returns the effect's name, or its hex code for unknown effects.
func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return fmt.Sprintf("effect-0x%02X", byte(e))
}

// EffectByName looks up an effect by its name as returned by String.
func EffectByName(name string) (Effect, bool) {
	for e, n := range effectNames {
		if n == name {
			return e, true
		}
	}
	return 0, false
}

// AllEffects returns every built-in effect in ascending code order.
func AllEffects() []Effect {
	effects := make([]Effect, 0, len(effectNames))
	for e := EffectJumpRGB; e <= EffectBlinkWhite; e++ {
		if _, ok := effectNames[e]; ok {
			effects = append(effects, e)
		}
	}
	return effects
}
