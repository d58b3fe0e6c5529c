package input

import "time"

// Default key repeat timing
const (
	KeyRepeatInitialDelay = 500 * time.Millisecond // Delay before the first repeat
	KeyRepeatInterval     = 100 * time.Millisecond // Interval between repeats
)

// keyRepeatInfo tracks the repeat state for a held key
type keyRepeatInfo struct {
	firstPressed time.Time
	lastRepeat   time.Time
}

// KeyRepeater turns held keys into a first event followed by repeats.
// Polling loops call Trigger for every watched key on every frame.
type KeyRepeater struct {
	InitialDelay time.Duration
	Interval     time.Duration

	state map[string]keyRepeatInfo
}

// NewKeyRepeater returns a repeater with the default timing
func NewKeyRepeater() *KeyRepeater {
	return &KeyRepeater{
		InitialDelay: KeyRepeatInitialDelay,
		Interval:     KeyRepeatInterval,
		state:        make(map[string]keyRepeatInfo),
	}
}

// Trigger reports whether code should fire at now: on the initial press,
// and while held once the initial delay has passed, every interval.
func (k *KeyRepeater) Trigger(code string, pressed bool, now time.Time) bool {
	state, exists := k.state[code]

	if !pressed {
		// Key released - clean up state
		delete(k.state, code)
		return false
	}

	if !exists {
		k.state[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now.Sub(state.firstPressed) >= k.InitialDelay && now.Sub(state.lastRepeat) >= k.Interval {
		state.lastRepeat = now
		k.state[code] = state
		return true
	}
	return false
}

// Held reports whether code is currently tracked as pressed
func (k *KeyRepeater) Held(code string) bool {
	_, ok := k.state[code]
	return ok
}
