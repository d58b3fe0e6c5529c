package gameplay

import (
	"log"

	"github.com/leonelquinteros/gotext"

	engineinput "darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/devtools"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func (s *Session) ProcessIntent(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		s.Quit = true
		return

	case engineinput.ActionRestart:
		s.regenerateOrLog(s.Regenerate)
		return

	case engineinput.ActionReplay:
		s.regenerateOrLog(s.Replay)
		return

	case engineinput.ActionDumpMap:
		s.dumpMap()
		return
	}

	if dir, ok := intent.Action.Direction(); ok {
		s.Move(dir)
	}
}

func (s *Session) regenerateOrLog(fn func() error) {
	if err := fn(); err != nil {
		// Params were validated when the session was built
		log.Printf("Could not regenerate maze: %v", err)
	}
}

// dumpMap writes the current maze to map.txt for debugging
func (s *Session) dumpMap() {
	path, err := devtools.DumpMapToFile(s.Game)
	if err != nil {
		log.Printf("Map dump failed: %v", err)
		return
	}
	log.Printf("Map dumped to %s", path)
	logMessage(s.Game, gotext.Get("MAP_DUMPED"))
}
