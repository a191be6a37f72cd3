package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/damagedcard/pkg/card"
	"github.com/matzehuels/damagedcard/pkg/pipeline"
)

func TestWriteInspect(t *testing.T) {
	opts := pipeline.Options{Seed: 7, RipChance: 1}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	g := pipeline.Generate(opts)

	var buf bytes.Buffer
	writeInspect(&buf, g, opts.Seed)
	out := buf.String()

	for _, want := range []string{"seed", "7", "320x180", "blemishes", "rip", string(g.Rip.Corner), "commands"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestBlemishTableMarksDropped(t *testing.T) {
	all := card.Blemishes{
		Top: []card.Blemish{
			{Edge: card.Top, Position: 0.5, Depth: 2, Width: 4},
			{Edge: card.Top, Position: 0.01, Depth: 2, Width: 4},
		},
	}
	drawn := card.Blemishes{Top: all.Top[:1]}

	out := blemishTable(all, drawn)
	if !strings.Contains(out, "drawn") || !strings.Contains(out, "dropped") {
		t.Errorf("table should mark drawn and dropped rows:\n%s", out)
	}
	if strings.Count(out, "top") != 2 {
		t.Errorf("table should have one row per blemish:\n%s", out)
	}
}
