package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestDefault(t *testing.T) {
	site := Default()

	assert.Equal(t, "NexusFlow", site.Brand)
	require.Len(t, site.Links, 3)
	assert.Equal(t, Link{Label: "Pricing", Anchor: "pricing"}, site.Links[2])
	assert.Equal(t, "Get Started", site.NavCTA)
	assert.Len(t, site.Features, 6)
	assert.Len(t, site.Stats, 4)
	require.Len(t, site.Plans, 3)
	assert.True(t, site.Plans[1].Popular)
	assert.NoError(t, validate(site))
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeFile(t, path, `brand: Acme
links:
  - label: Docs
    anchor: docs
nav_cta: Sign up
`)

	site, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", site.Brand)
	assert.Equal(t, []Link{{Label: "Docs", Anchor: "docs"}}, site.Links)
	assert.Equal(t, "Sign up", site.NavCTA)
	assert.Equal(t, "Everything you need to grow", site.FeaturesTitle, "unset keys keep defaults")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, `{{{not yaml`)
	_, err = Load(bad)
	assert.Error(t, err)

	noAnchor := filepath.Join(dir, "anchor.yaml")
	writeFile(t, noAnchor, "links:\n  - label: Docs\n")
	_, err = Load(noAnchor)
	assert.Error(t, err)

	noBrand := filepath.Join(dir, "brand.yaml")
	writeFile(t, noBrand, "brand: \"\"\n")
	_, err = Load(noBrand)
	assert.Error(t, err)
}

func TestStoreWithoutPath(t *testing.T) {
	s, err := NewStore("", nil)
	require.NoError(t, err)

	site, v := s.Site()
	assert.Equal(t, "NexusFlow", site.Brand)
	assert.Equal(t, uint64(0), v)
	assert.False(t, s.Backed())
	assert.NoError(t, s.Reload())
	assert.NoError(t, s.Watch(context.Background()))
}

func TestStoreReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeFile(t, path, "brand: First\n")

	s, err := NewStore(path, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.Version())

	writeFile(t, path, "{{{")
	assert.Error(t, s.Reload())

	site, v := s.Site()
	assert.Equal(t, "First", site.Brand)
	assert.Equal(t, uint64(1), v)
}

func TestNewStoreBadFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestStoreWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeFile(t, path, "brand: First\n")

	s, err := NewStore(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Watch(ctx))

	writeFile(t, path, "brand: Second\n")

	assert.Eventually(t, func() bool {
		site, _ := s.Site()
		return site.Brand == "Second"
	}, 2*time.Second, 10*time.Millisecond)
}
