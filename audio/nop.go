// Package audio provides the players behind the game's sound triggers.
package audio

// Nop discards every request. Used when sound is muted.
type Nop struct{}

func (Nop) PlayLoop(string) {}
func (Nop) StopMusic()      {}
func (Nop) PlayOnce(string) {}
func (Nop) Update()         {}
func (Nop) Close()          {}
