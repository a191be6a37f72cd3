package render

// FrameScheduler runs a callback before the next frame.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// Panel binds a Renderer to a surface and defers drawing to frames.
// Mount and Resize coalesce: however many arrive before a frame runs, the
// frame draws once at the latest size.
type Panel struct {
	renderer *Renderer
	surface  Surface
	frames   FrameScheduler

	width, height float64
	pending       bool
}

// NewPanel creates a panel. A nil scheduler draws synchronously.
func NewPanel(r *Renderer, s Surface, frames FrameScheduler) *Panel {
	return &Panel{renderer: r, surface: s, frames: frames}
}

// Renderer returns the panel's renderer.
func (p *Panel) Renderer() *Renderer { return p.renderer }

// Size returns the most recently requested size.
func (p *Panel) Size() (width, height float64) { return p.width, p.height }

// Mount schedules the first draw at the host's initial size.
func (p *Panel) Mount(width, height float64) {
	p.Resize(width, height)
}

// Resize records the host size and requests a frame if none is pending.
func (p *Panel) Resize(width, height float64) {
	p.width, p.height = width, height
	if p.pending {
		return
	}
	p.pending = true
	if p.frames == nil {
		p.frame()
		return
	}
	p.frames.RequestFrame(p.frame)
}

func (p *Panel) frame() {
	p.pending = false
	if p.width > 0 && p.height > 0 {
		if rs, ok := p.surface.(Resizer); ok {
			rs.Resize(p.width, p.height)
		}
	}
	p.renderer.Draw(p.surface, p.width, p.height)
}

// FrameQueue is a FrameScheduler drained explicitly by the host loop.
type FrameQueue struct {
	queue []func()
}

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn func()) {
	q.queue = append(q.queue, fn)
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int { return len(q.queue) }

// Flush runs the callbacks queued so far and returns how many ran.
// Callbacks requested during Flush run on the next Flush.
func (q *FrameQueue) Flush() int {
	run := q.queue
	q.queue = nil
	for _, fn := range run {
		fn()
	}
	return len(run)
}
