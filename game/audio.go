package game

// Sound ids played by the game
const (
	SoundEat = "eat"
	SoundHit = "hit"
)

// Audio is what the game needs from an audio player
type Audio interface {
	// PlayLoop starts track looping, replacing whatever music is playing
	PlayLoop(track string)
	StopMusic()
	// PlayOnce plays a short sound over the music
	PlayOnce(sound string)
}
