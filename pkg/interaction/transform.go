package interaction

import (
	"fmt"
	"strings"
	"sync"
)

// Transform is a rotation in degrees followed by a uniform scale.
type Transform struct {
	Rotate float64 `json:"rotate"`
	Scale  float64 `json:"scale"`
}

// Inverse returns the transform that undoes t.
func (t Transform) Inverse() Transform {
	s := t.Scale
	if s != 0 {
		s = 1 / s
	}
	return Transform{Rotate: -t.Rotate, Scale: s}
}

func (t Transform) String() string {
	return fmt.Sprintf("rotate(%.2fdeg) scale(%.4f)", t.Rotate, t.Scale)
}

// Stack is an ordered list of transforms applied left to right.
// The empty stack is the identity.
type Stack []Transform

// Identity is the empty stack.
var Identity Stack

// Then returns a new stack with ts appended.
func (s Stack) Then(ts ...Transform) Stack {
	out := make(Stack, 0, len(s)+len(ts))
	out = append(out, s...)
	return append(out, ts...)
}

// Net collapses the stack into a total rotation and scale.
func (s Stack) Net() (rotate, scale float64) {
	scale = 1
	for _, t := range s {
		rotate += t.Rotate
		scale *= t.Scale
	}
	return rotate, scale
}

// IsIdentity reports whether the stack has no transforms.
func (s Stack) IsIdentity() bool { return len(s) == 0 }

// String renders the stack like a CSS transform list, or "none".
func (s Stack) String() string {
	if len(s) == 0 {
		return "none"
	}
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// Element is a handle to something whose transform the controller drives.
type Element interface {
	Transform() Stack
	SetTransform(Stack)
}

// Node is an in-memory Element. It is safe for concurrent use.
type Node struct {
	Name string

	mu    sync.Mutex
	stack Stack
}

// NewNode creates a node with an initial transform.
func NewNode(name string, initial Stack) *Node {
	return &Node{Name: name, stack: initial}
}

// Transform returns the current transform.
func (n *Node) Transform() Stack {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack
}

// SetTransform replaces the transform.
func (n *Node) SetTransform(s Stack) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack = s
}
