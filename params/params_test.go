package params_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velkorn/frontis/params"
)

func testValues() map[string]any {
	return map[string]any{
		"min_frontier_size": 5,
		"verbosity":         "2",
		"strategies":        []any{"max_size", "orientation"},
		"strategy": map[string]any{
			"orientation": map[string]any{
				"weight": 1.5,
			},
		},
	}
}

// TestMapProvider_Scalars exercises the typed getters and conversions.
func TestMapProvider_Scalars(t *testing.T) {
	p := params.NewMapProvider(testValues())

	s, err := p.String("verbosity")
	require.NoError(t, err)
	require.Equal(t, "2", s)

	n, err := p.Int("min_frontier_size")
	require.NoError(t, err)
	require.Equal(t, 5, n)

	// string leaves parse as integers too
	n, err = p.Int("verbosity")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// numeric leaves convert to strings
	s, err = p.String("strategy/orientation/weight")
	require.NoError(t, err)
	require.Equal(t, "1.5", s)
}

// TestMapProvider_Missing verifies ErrMissingKey on absent keys.
func TestMapProvider_Missing(t *testing.T) {
	p := params.NewMapProvider(testValues())

	_, err := p.String("no_such_key")
	require.ErrorIs(t, err, params.ErrMissingKey)

	_, err = p.Int("strategy/max_size/weight")
	require.ErrorIs(t, err, params.ErrMissingKey)

	require.False(t, p.Has("no_such_key"))
	require.True(t, p.Has("strategy/orientation"))
}

// TestMapProvider_BadValue verifies ErrBadValue on type mismatches.
func TestMapProvider_BadValue(t *testing.T) {
	p := params.NewMapProvider(testValues())

	_, err := p.Int("strategies")
	require.ErrorIs(t, err, params.ErrBadValue)

	_, err = p.Strings("verbosity")
	require.ErrorIs(t, err, params.ErrBadValue)

	_, err = p.String("strategy")
	require.ErrorIs(t, err, params.ErrBadValue)
}

// TestMapProvider_StringsAndMap covers list and namespace access.
func TestMapProvider_StringsAndMap(t *testing.T) {
	p := params.NewMapProvider(testValues())

	names, err := p.Strings("strategies")
	require.NoError(t, err)
	require.Equal(t, []string{"max_size", "orientation"}, names)

	m, err := p.StringMap("strategy/orientation")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"weight": "1.5"}, m)
}

// TestMapProvider_Sub verifies namespace re-rooting, including the
// all-missing behavior of an absent namespace.
func TestMapProvider_Sub(t *testing.T) {
	p := params.NewMapProvider(testValues())

	sub := p.Sub("strategy/orientation")
	w, err := sub.String("weight")
	require.NoError(t, err)
	require.Equal(t, "1.5", w)

	ghost := p.Sub("strategy/ghost")
	_, err = ghost.String("weight")
	require.ErrorIs(t, err, params.ErrMissingKey)
	require.False(t, ghost.Has("weight"))
}

// TestParseYAML round-trips a configuration document.
func TestParseYAML(t *testing.T) {
	doc := []byte(`
min_frontier_size: 4
verbosity: 1
strategies: [max_size, min_euclidean_distance]
strategy:
  min_euclidean_distance:
    weight: "2.5"
`)
	p, err := params.ParseYAML(doc)
	require.NoError(t, err)

	n, err := p.Int("min_frontier_size")
	require.NoError(t, err)
	require.Equal(t, 4, n)

	names, err := p.Strings("strategies")
	require.NoError(t, err)
	require.Equal(t, []string{"max_size", "min_euclidean_distance"}, names)

	w, err := p.String("strategy/min_euclidean_distance/weight")
	require.NoError(t, err)
	require.Equal(t, "2.5", w)
}

// TestParseYAML_Invalid reports a parse error.
func TestParseYAML_Invalid(t *testing.T) {
	_, err := params.ParseYAML([]byte("strategies: [unterminated"))
	require.Error(t, err)
}

// TestLoadYAML reads a provider from disk.
func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbosity: 3\n"), 0o600))

	p, err := params.LoadYAML(path)
	require.NoError(t, err)

	v, err := p.Int("verbosity")
	require.NoError(t, err)
	require.Equal(t, 3, v)

	_, err = params.LoadYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
