package interaction

import "testing"

func TestStackString(t *testing.T) {
	tests := []struct {
		name  string
		stack Stack
		want  string
	}{
		{"identity", Identity, "none"},
		{"single", Stack{{Rotate: 3, Scale: 1.02}}, "rotate(3.00deg) scale(1.0200)"},
		{"compensated", Stack{{Rotate: 0, Scale: 1}}.Then(Transform{Rotate: -3, Scale: 0.5}),
			"rotate(0.00deg) scale(1.0000) rotate(-3.00deg) scale(0.5000)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stack.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStackThenDoesNotAlias(t *testing.T) {
	base := make(Stack, 1, 4)
	base[0] = Transform{Rotate: 1, Scale: 1}
	a := base.Then(Transform{Rotate: 2, Scale: 1})
	b := base.Then(Transform{Rotate: 3, Scale: 1})
	if a[1].Rotate != 2 || b[1].Rotate != 3 {
		t.Errorf("Then aliased the receiver: a=%v b=%v", a, b)
	}
}

func TestTransformInverse(t *testing.T) {
	inv := Transform{Rotate: 2, Scale: 1.25}.Inverse()
	if inv.Rotate != -2 || inv.Scale != 0.8 {
		t.Errorf("Inverse() = %+v", inv)
	}
}

func TestManualClockOrder(t *testing.T) {
	c := NewManualClock()
	var got []int
	c.AfterFunc(20, func() { got = append(got, 2) })
	c.AfterFunc(10, func() { got = append(got, 1) })
	stopped := c.AfterFunc(15, func() { got = append(got, 99) })
	if !stopped.Stop() {
		t.Error("Stop on a pending timer should report true")
	}
	if stopped.Stop() {
		t.Error("second Stop should report false")
	}

	c.Advance(15)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("after 15: got %v", got)
	}
	c.Advance(5)
	if len(got) != 2 || got[1] != 2 {
		t.Errorf("after 20: got %v", got)
	}
	if c.Now() != 20 {
		t.Errorf("Now() = %v", c.Now())
	}
}
