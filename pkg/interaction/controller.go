package interaction

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/damagedcard/pkg/card"
	"github.com/matzehuels/damagedcard/pkg/observability"
)

// State is the hover state of a panel.
type State int

const (
	Idle State = iota
	Hovering
)

func (s State) String() string {
	if s == Hovering {
		return "hovering"
	}
	return "idle"
}

// Wobble and tilt ranges.
const (
	wobbleRotation = 40.0 // degrees, centered on zero
	wobbleScaleMin = 0.95
	wobbleScaleMax = 1.05
	wobbleDelayMin = 500 * time.Millisecond
	wobbleDelayMax = 1500 * time.Millisecond

	tiltRotation = 6.0 // degrees, centered on zero
	tiltScaleMin = 1.02
	tiltScaleMax = 1.05
)

// Options configures a Controller.
type Options struct {
	// Panel is the tilted element. Nil skips the tilt.
	Panel Element
	// Logo is wobbled while hovering. Nil skips the wobble.
	Logo Element
	// Upright elements are counter-transformed to cancel the panel tilt.
	Upright []Element
	// Staples enables the staple and hole decorations.
	Staples bool
	// Rand drives every random choice. Nil uses a source seeded with 1.
	Rand card.Rand
	// Clock schedules wobble ticks. Nil uses SystemClock.
	Clock Clock
	// Logger receives debug output. Nil uses log.Default().
	Logger *log.Logger
	// OnChange, if set, is called after every state change and wobble tick.
	OnChange func(Snapshot)
}

// Snapshot is the observable state of a controller.
type Snapshot struct {
	ID             string   `json:"id"`
	State          State    `json:"state"`
	Staples        []Staple `json:"staples,omitempty"`
	StaplesVisible bool     `json:"staples_visible"`
	Holes          []Hole   `json:"holes,omitempty"`
	Panel          Stack    `json:"panel,omitempty"`
	Logo           Stack    `json:"logo,omitempty"`
}

// Controller runs the hover choreography for one panel. Its methods and the
// wobble callback are serialized by an internal mutex, so a Controller can be
// used with SystemClock from any goroutine. Element writes happen under that
// mutex; OnChange runs after it is released.
type Controller struct {
	mu sync.Mutex

	id       uuid.UUID
	panel    Element
	logo     Element
	upright  []Element
	staples  bool
	rng      card.Rand
	clock    Clock
	logger   *log.Logger
	onChange func(Snapshot)

	state  State
	tilted bool
	// originals holds each upright element's transform from before the
	// tilt, by index into upright. Nil while idle.
	originals map[int]Stack

	pair           []Staple
	staplesVisible bool
	holes          []Hole

	wobble  Timer
	session int
}

// New creates an idle controller. With staples enabled, an initial visible
// pair is generated.
func New(opts Options) *Controller {
	c := &Controller{
		id:       uuid.New(),
		panel:    opts.Panel,
		logo:     opts.Logo,
		upright:  opts.Upright,
		staples:  opts.Staples,
		rng:      opts.Rand,
		clock:    opts.Clock,
		logger:   opts.Logger,
		onChange: opts.OnChange,
	}
	if c.rng == nil {
		c.rng = card.NewRand(1)
	}
	if c.clock == nil {
		c.clock = SystemClock{}
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	c.logger = c.logger.With("panel", c.id.String()[:8])
	if c.staples {
		c.pair = newStaplePair(c.rng)
		c.staplesVisible = true
	}
	return c
}

// ID returns the controller's instance ID.
func (c *Controller) ID() string { return c.id.String() }

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Enter handles the pointer entering the panel. It is a no-op while hovering.
func (c *Controller) Enter() {
	c.mu.Lock()
	if c.state == Hovering {
		c.mu.Unlock()
		return
	}
	c.transition(Hovering)
	c.session++

	if c.staples && len(c.pair) > 0 {
		c.staplesVisible = false
		for _, s := range c.pair {
			h := s.Holes()
			c.holes = append(c.holes, h[0], h[1])
		}
	}

	if c.logo != nil {
		c.wobbleTick(c.session)
	}

	if !c.tilted {
		c.tilt()
	}
	c.unlockAndNotify()
}

// Leave handles the pointer leaving the panel. It is a no-op while idle.
func (c *Controller) Leave() {
	c.mu.Lock()
	if c.state == Idle {
		c.mu.Unlock()
		return
	}
	c.transition(Idle)
	c.stopWobble()

	if c.staples {
		c.pair = newStaplePair(c.rng)
		c.staplesVisible = true
	}
	if c.logo != nil {
		c.logo.SetTransform(Identity)
	}
	if c.panel != nil {
		c.panel.SetTransform(Identity)
	}
	for i, orig := range c.originals {
		c.upright[i].SetTransform(orig)
	}
	c.originals = nil
	c.tilted = false
	c.unlockAndNotify()
}

// Close cancels any pending wobble.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopWobble()
	c.session++
}

// Snapshot returns the current decorations and transforms.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() Snapshot {
	s := Snapshot{
		ID:             c.id.String(),
		State:          c.state,
		Staples:        append([]Staple(nil), c.pair...),
		StaplesVisible: c.staplesVisible,
		Holes:          append([]Hole(nil), c.holes...),
	}
	if c.panel != nil {
		s.Panel = c.panel.Transform()
	}
	if c.logo != nil {
		s.Logo = c.logo.Transform()
	}
	return s
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	observability.Interaction().OnTransition(c.ID(), from.String(), to.String())
	c.logger.Debug("hover transition", "from", from, "to", to)
}

// wobbleTick randomizes the logo and schedules the next tick. Ticks from an
// earlier session or after Leave are ignored. c.mu must be held.
func (c *Controller) wobbleTick(session int) bool {
	if c.state != Hovering || session != c.session {
		return false
	}
	rot := (c.rng.Float64() - 0.5) * wobbleRotation
	scale := wobbleScaleMin + c.rng.Float64()*(wobbleScaleMax-wobbleScaleMin)
	c.logo.SetTransform(Stack{{Rotate: rot, Scale: scale}})

	delay := wobbleDelayMin + time.Duration(c.rng.Float64()*float64(wobbleDelayMax-wobbleDelayMin))
	c.wobble = c.clock.AfterFunc(delay, func() {
		c.mu.Lock()
		if !c.wobbleTick(session) {
			c.mu.Unlock()
			return
		}
		c.unlockAndNotify()
	})
	return true
}

func (c *Controller) stopWobble() {
	if c.wobble != nil {
		c.wobble.Stop()
		c.wobble = nil
	}
}

// tilt rotates and scales the panel once and counter-transforms every
// upright element against its pre-tilt transform.
func (c *Controller) tilt() {
	c.tilted = true
	t := Transform{
		Rotate: (c.rng.Float64() - 0.5) * tiltRotation,
		Scale:  tiltScaleMin + c.rng.Float64()*(tiltScaleMax-tiltScaleMin),
	}
	if c.panel != nil {
		c.panel.SetTransform(Stack{t})
	}

	if len(c.upright) > 0 && c.originals == nil {
		c.originals = make(map[int]Stack, len(c.upright))
	}
	inv := t.Inverse()
	for i, el := range c.upright {
		if el == nil {
			continue
		}
		orig, ok := c.originals[i]
		if !ok {
			orig = el.Transform()
			c.originals[i] = orig
		}
		el.SetTransform(orig.Then(inv))
	}

	observability.Interaction().OnTilt(c.ID(), t.Rotate, t.Scale)
	c.logger.Debug("tilted panel", "rotate", t.Rotate, "scale", t.Scale, "upright", len(c.upright))
}

// unlockAndNotify releases c.mu and then reports the new state to OnChange.
func (c *Controller) unlockAndNotify() {
	if c.onChange == nil {
		c.mu.Unlock()
		return
	}
	snap := c.snapshot()
	c.mu.Unlock()
	c.onChange(snap)
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
