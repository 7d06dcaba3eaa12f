package animations

import "fmt"

// Policy determines what happens when an animation reaches its final frame.
type Policy int

const (
	Repeat Policy = iota // loop back to the first frame forever
	Once                 // freeze on the final frame, keep the entity
	Despawn              // remove the entity once the final frame has shown
)

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "Repeat":
		return Repeat, nil
	case "Once":
		return Once, nil
	case "Despawn":
		return Despawn, nil
	}
	return Repeat, fmt.Errorf("unknown animation policy %q", s)
}

func (p Policy) String() string {
	switch p {
	case Once:
		return "Once"
	case Despawn:
		return "Despawn"
	default:
		return "Repeat"
	}
}

// Definition is an immutable catalog entry shared by reference across every
// instance that plays it.
type Definition struct {
	SheetName    string
	Frames       []int
	FrameSeconds float64
	Policy       Policy
}

// NewDefinition builds a definition whose frame sequence is the closed range
// [start, end], inclusive on both ends.
func NewDefinition(sheet string, start, end int, frameSeconds float64, policy Policy) (*Definition, error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("invalid frame range [%d, %d]", start, end)
	}
	if frameSeconds <= 0 {
		return nil, fmt.Errorf("frame duration must be positive, got %v", frameSeconds)
	}
	frames := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		frames = append(frames, i)
	}
	return &Definition{
		SheetName:    sheet,
		Frames:       frames,
		FrameSeconds: frameSeconds,
		Policy:       policy,
	}, nil
}

// Animation is the per-entity playback state over one shared Definition.
type Animation struct {
	def       *Definition
	position  int // index into def.Frames
	elapsed   float64
	completed bool
}

func NewAnimation(def *Definition) *Animation {
	return &Animation{def: def}
}

// Update advances playback by dt seconds and returns the tile index to
// display. At most one frame advances per call; when the threshold is
// reached the timer restarts from zero instead of keeping the remainder.
// Calling Update on a completed animation is a safe no-op for position.
func (a *Animation) Update(dt float64) int {
	a.elapsed += dt
	if a.elapsed >= a.def.FrameSeconds {
		a.advance()
	}
	return a.def.Frames[a.position]
}

func (a *Animation) advance() {
	if a.def.Policy == Repeat {
		a.position = (a.position + 1) % len(a.def.Frames)
		a.elapsed = 0
		return
	}
	if a.position < len(a.def.Frames)-1 {
		a.position++
		a.elapsed = 0
	} else {
		// The timer keeps its value, so later calls land back in this
		// branch without moving position.
		a.completed = true
	}
}

// Index returns the currently displayed tile index without advancing.
func (a *Animation) Index() int {
	return a.def.Frames[a.position]
}

func (a *Animation) Completed() bool {
	return a.completed
}

func (a *Animation) Definition() *Definition {
	return a.def
}

// Restart rewinds to the first frame.
func (a *Animation) Restart() {
	a.position = 0
	a.elapsed = 0
	a.completed = false
}
