package models

import (
	"encoding/json"
	"fmt"
)

// Colour is the avatar body colour code.
type Colour int

const (
	ColourRed Colour = iota
	ColourOrange
	ColourYellow
	ColourGreen
	ColourCyan
	ColourBlue
	ColourPink
	ColourPurple
	ColourGrey
	ColourBrown
	ColourDarkBrown
	ColourCream
	ColourRedStriped
	ColourYellowStriped
	ColourGreenStriped
	ColourBlueStriped
	ColourPinkStriped
	ColourGreyStriped

	colourCount
)

// Eye is the avatar eye style code.
type Eye int

const (
	EyeDefault Eye = iota
	EyeBlinking
	EyeBrowless
	EyeTiredBlinking
	EyeConcerned
	EyeHappy
	EyeUnpleased
	EyeCyclop
	EyeCross
	EyeAnnoyed
	EyeShut
	EyeCrossed
	EyeCrossedFrown
	EyeGone
	EyeTired
	EyeThree
	EyeSunglasses
	EyeSad
	EyeWideCyclop
	EyeAlienCyclop
	EyeGlasses
	EyeEggs
	EyePatch
	EyeAlien
	EyeDarkGlasses
	EyeCrosses
	EyeSmallBig
	EyeBigSmall
	EyeFrown
	EyeUpset
	EyeMonobrow

	eyeCount
)

// Mouth is the avatar mouth style code.
type Mouth int

const (
	MouthGritted Mouth = iota
	MouthSad
	MouthSmile
	MouthNeutral
	MouthSuprised
	MouthVampire
	MouthMuted
	MouthHigherSmile
	MouthWideSmile
	MouthWobbly
	MouthTriangle
	MouthBaby
	MouthWoah
	MouthCheeky
	MouthGentleman
	MouthMexicanoLong
	MouthKiller
	MouthDog
	MouthOpened
	MouthShocked
	MouthStiched
	MouthSlightSmile
	MouthMexicano
	MouthStache

	mouthCount
)

// Hat is the avatar hat code. The service uses -1 for "no hat"; positive
// codes are unlocked cosmetics we pass through untouched.
type Hat int

const HatNone Hat = -1

// Avatar is the visual identity of a player. On the wire it is always the
// four raw integer codes in (colour, eye, mouth, hat) order.
type Avatar struct {
	Colour Colour
	Eye    Eye
	Mouth  Mouth
	Hat    Hat
}

// NewAvatar builds an avatar with no hat.
func NewAvatar(c Colour, e Eye, m Mouth) Avatar {
	return Avatar{Colour: c, Eye: e, Mouth: m, Hat: HatNone}
}

// AvatarFromRaw validates the four wire codes and builds an avatar from
// them. Raw() inverts it exactly.
func AvatarFromRaw(raw [4]int) (Avatar, error) {
	if raw[0] < 0 || raw[0] >= int(colourCount) {
		return Avatar{}, fmt.Errorf("avatar colour %d out of range", raw[0])
	}
	if raw[1] < 0 || raw[1] >= int(eyeCount) {
		return Avatar{}, fmt.Errorf("avatar eye %d out of range", raw[1])
	}
	if raw[2] < 0 || raw[2] >= int(mouthCount) {
		return Avatar{}, fmt.Errorf("avatar mouth %d out of range", raw[2])
	}
	if raw[3] < int(HatNone) {
		return Avatar{}, fmt.Errorf("avatar hat %d out of range", raw[3])
	}
	return Avatar{Colour: Colour(raw[0]), Eye: Eye(raw[1]), Mouth: Mouth(raw[2]), Hat: Hat(raw[3])}, nil
}

// Raw returns the wire codes in (colour, eye, mouth, hat) order.
func (a Avatar) Raw() [4]int {
	return [4]int{int(a.Colour), int(a.Eye), int(a.Mouth), int(a.Hat)}
}

// MarshalJSON emits the wire form: a four-element integer array.
func (a Avatar) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Raw())
}

// UnmarshalJSON parses and validates the wire form.
func (a *Avatar) UnmarshalJSON(data []byte) error {
	var raw [4]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("malformed avatar tuple: %w", err)
	}
	parsed, err := AvatarFromRaw(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
