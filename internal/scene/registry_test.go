package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/deck2video/internal/surface"
)

func named(name string) Factory {
	return func() Scene {
		return &Func{SceneName: name, ConstructFn: func(*surface.Surface) error { return nil }}
	}
}

func TestRegistryBuildKeepsOrder(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"Intro", "Outro", "Body"} {
		require.NoError(t, r.Register(n, "", named(n)))
	}
	require.NoError(t, r.SetDefault("Intro", "Body"))

	scenes, err := r.Build([]string{"Outro", "Intro"})
	require.NoError(t, err)
	require.Len(t, scenes, 2)
	assert.Equal(t, "Outro", scenes[0].Name())
	assert.Equal(t, "Intro", scenes[1].Name())

	scenes, err = r.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, "Body", scenes[1].Name())
}

func TestRegistryRejectsUnknownAndDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("Intro", "", named("Intro")))

	assert.Error(t, r.Register("Intro", "", named("Intro")))
	assert.Error(t, r.Register("", "", named("x")))
	assert.ErrorIs(t, r.SetDefault("Missing"), ErrUnknownScene)

	_, err := r.Build([]string{"Intro", "Missing"})
	assert.ErrorIs(t, err, ErrUnknownScene)
}

func TestEntriesSorted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("b", "", named("b")))
	require.NoError(t, r.Register("a", "", named("a")))

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Name)
}

func TestFuncWithoutConstruct(t *testing.T) {
	f := &Func{SceneName: "Empty"}
	assert.ErrorIs(t, f.Validate(), ErrNoConstruct)
	assert.NoError(t, f.Setup(surface.New(nil)))
}
