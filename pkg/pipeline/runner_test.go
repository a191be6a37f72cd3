package pipeline

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/matzehuels/damagedcard/pkg/cache"
	"github.com/matzehuels/damagedcard/pkg/render/sink"
)

// memCache is an in-memory cache.Cache that counts operations.
type memCache struct {
	data       map[string][]byte
	gets, sets int
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.gets++
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.sets++
	c.data[key] = data
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

var _ cache.Cache = (*memCache)(nil)

func TestRunnerExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), Options{Formats: []string{"svg", "png", "json"}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, f := range []string{"svg", "png", "json"} {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("missing %s artifact", f)
		}
	}
	if res.Geometry == nil || res.GeometryHash == "" {
		t.Error("geometry and hash should be set")
	}
	if res.Stats.Blemishes != res.Geometry.Blemishes.Count() {
		t.Errorf("Stats.Blemishes = %d", res.Stats.Blemishes)
	}
	if res.CacheInfo.GeometryHit || res.CacheInfo.RenderHit {
		t.Error("null cache should never hit")
	}
}

func TestRunnerCaches(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)
	opts := Options{Seed: 7, Formats: []string{"svg", "json"}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.GeometryHit || first.CacheInfo.RenderHit {
		t.Error("first run should miss")
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.GeometryHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit: %+v", second.CacheInfo)
	}
	if !bytes.Equal(first.Artifacts["svg"], second.Artifacts["svg"]) {
		t.Error("cached SVG differs")
	}
	if first.GeometryHash != second.GeometryHash {
		t.Error("geometry hash changed across cache round trip")
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.GeometryHit || third.CacheInfo.RenderHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerGeometryCacheEntries(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)
	opts := Options{Seed: 5}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	key := r.Keyer.GeometryKey(opts.GeometryKeyOpts())

	g, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil || hit {
		t.Fatalf("first generate: hit=%v err=%v", hit, err)
	}
	stored, err := sink.ReadGeometry(mc.data[key])
	if err != nil {
		t.Fatalf("cache entry should be a sink JSON document: %v", err)
	}
	if stored.Path(320, 180).SVG() != g.Path(320, 180).SVG() {
		t.Error("cached geometry should compile to the same outline")
	}

	// A bare geometry without the document wrapper is unreadable.
	mc.data[key] = []byte(`{"width":320,"height":180}`)
	again, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("unreadable entry should count as a miss")
	}
	if again.Path(320, 180).SVG() != g.Path(320, 180).SVG() {
		t.Error("regenerated geometry differs")
	}
	if _, err := sink.ReadGeometry(mc.data[key]); err != nil {
		t.Errorf("miss should rewrite the entry: %v", err)
	}
}

func TestRunnerDeterministicWithoutCache(t *testing.T) {
	ctx := context.Background()
	opts := Options{Seed: 3, Staples: true, Formats: []string{"svg"}}

	a, err := NewRunner(nil, nil, nil).Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRunner(nil, nil, nil).Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Artifacts["svg"], b.Artifacts["svg"]) {
		t.Error("same options should render identical SVG")
	}
	if a.Decorations == nil {
		t.Error("staples enabled: decorations should be reported")
	}
}

func TestRunnerInvalidOptions(t *testing.T) {
	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Width: -5})
	if err == nil {
		t.Fatal("invalid options should fail")
	}
}

func TestRunnerScopedKeyer(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	opts := Options{Seed: 9}

	if _, err := NewRunner(mc, cache.NewScopedKeyer(nil, "a:"), nil).Execute(ctx, opts); err != nil {
		t.Fatal(err)
	}
	res, err := NewRunner(mc, cache.NewScopedKeyer(nil, "b:"), nil).Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheInfo.GeometryHit {
		t.Error("different scopes should not share entries")
	}
}
