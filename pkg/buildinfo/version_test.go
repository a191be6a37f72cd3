package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	if !strings.Contains(Template(), "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.Contains(String(), "commit: "+Commit) {
		t.Errorf("String() = %q", String())
	}
}

func TestCacheScope(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "v1.2.3", "0123456789abcdef0123"
	if got := CacheScope(); got != "v1.2.3+0123456789ab:" {
		t.Errorf("CacheScope() = %q", got)
	}

	Version, Commit = "dev", "none"
	if got := CacheScope(); got != "dev+none:" {
		t.Errorf("CacheScope() = %q", got)
	}
}
