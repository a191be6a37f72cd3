package render

import (
	"testing"

	"github.com/matzehuels/damagedcard/pkg/card"
)

type resizingSurface struct {
	recordingSurface
	sizes [][2]float64
}

func (s *resizingSurface) Resize(w, h float64) {
	s.sizes = append(s.sizes, [2]float64{w, h})
}

func TestPanelMountDefersDraw(t *testing.T) {
	var q FrameQueue
	s := &recordingSurface{}
	p := NewPanel(NewRenderer(Options{Rand: card.NewRand(1)}), s, &q)

	p.Mount(320, 180)
	if len(s.ops) != 0 {
		t.Fatal("Mount should not draw synchronously")
	}
	if q.Pending() != 1 {
		t.Fatalf("pending frames = %d, want 1", q.Pending())
	}
	q.Flush()
	if len(s.ops) == 0 {
		t.Error("frame should draw")
	}
}

func TestPanelCoalescesResizes(t *testing.T) {
	var q FrameQueue
	s := &resizingSurface{}
	r, builds := countingRenderer(Options{Rand: card.NewRand(1)})
	p := NewPanel(r, s, &q)

	p.Mount(100, 100)
	p.Resize(200, 100)
	p.Resize(320, 180)
	if q.Pending() != 1 {
		t.Fatalf("pending frames = %d, want 1", q.Pending())
	}
	if n := q.Flush(); n != 1 {
		t.Fatalf("Flush ran %d frames, want 1", n)
	}
	if *builds != 1 {
		t.Errorf("builds = %d, want 1", *builds)
	}
	if len(s.sizes) != 1 || s.sizes[0] != [2]float64{320, 180} {
		t.Errorf("surface resized to %v, want only 320x180", s.sizes)
	}

	p.Resize(320, 180)
	q.Flush()
	if *builds != 1 {
		t.Errorf("same-size resize rebuilt the path: builds = %d", *builds)
	}
}

func TestPanelZeroAreaRetriedOnResize(t *testing.T) {
	var q FrameQueue
	s := &resizingSurface{}
	p := NewPanel(NewRenderer(Options{}), s, &q)

	p.Mount(0, 0)
	q.Flush()
	if len(s.ops) != 0 || len(s.sizes) != 0 {
		t.Fatal("zero-size mount should not draw or resize")
	}

	p.Resize(120, 80)
	q.Flush()
	if len(s.ops) == 0 {
		t.Error("resize to a real size should draw")
	}
}

func TestPanelWithoutScheduler(t *testing.T) {
	s := &recordingSurface{}
	p := NewPanel(NewRenderer(Options{}), s, nil)
	p.Mount(50, 50)
	if len(s.ops) == 0 {
		t.Error("panel without scheduler should draw immediately")
	}
}

func TestFrameQueueRequestsDuringFlush(t *testing.T) {
	var q FrameQueue
	ran := 0
	q.RequestFrame(func() {
		ran++
		q.RequestFrame(func() { ran++ })
	})
	if n := q.Flush(); n != 1 || ran != 1 {
		t.Fatalf("first flush ran %d (counter %d), want 1", n, ran)
	}
	if n := q.Flush(); n != 1 || ran != 2 {
		t.Errorf("second flush ran %d (counter %d), want 1", n, ran)
	}
}
