package core

// SoundType identifies a sound effect
type SoundType int

const (
	SoundNone SoundType = iota
	SoundEat
	SoundGameOver
	SoundPause
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "Eat"
	case SoundGameOver:
		return "GameOver"
	case SoundPause:
		return "Pause"
	default:
		return "None"
	}
}
