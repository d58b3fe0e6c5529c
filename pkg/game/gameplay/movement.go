package gameplay

import (
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/state"
)

// Move attempts one step of the player. A finished maze ignores movement
// until the player asks for a new one, so a held key cannot skip the result.
func (s *Session) Move(dir world.Direction) state.MoveResult {
	return s.Game.AttemptMove(dir)
}
