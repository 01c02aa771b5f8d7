package typeconfig_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/confkit/typeconfig"
)

func TestGetters(t *testing.T) {
	t.Parallel()

	tc := newIOConfig()

	opts := tc.Options()
	require.Len(t, opts, 2)
	assert.Equal(t, typeconfig.Definition{
		Name:          "test",
		Type:          "TestType",
		Default:       "value",
		Help:          "A test option",
		ImportantHelp: "The test must pass",
	}, opts[0])
	assert.Equal(t, "test2", opts[1].Name)

	// Mutating the copies does not reach the schema.
	opts[0].Default = "changed"

	def, ok := tc.Option("test")
	require.True(t, ok)
	assert.Equal(t, "value", def.Default)

	types := tc.Types()
	require.Contains(t, types, "TestType")

	delete(types, "TestType")
	assert.Contains(t, tc.Types(), "TestType")

	_, ok = tc.Option("missing")
	assert.False(t, ok)
}

func TestAddOptionOverwrite(t *testing.T) {
	t.Parallel()

	tc := typeconfig.New()
	tc.AddOption("a", "first", "1")
	tc.AddOption("a", "second", "2")
	tc.AddOption("b", "first", "replaced", typeconfig.WithDefault("x"))

	opts := tc.Options()
	require.Len(t, opts, 2)
	assert.Equal(t, "first", opts[0].Name)
	assert.Equal(t, "b", opts[0].Type)
	assert.Equal(t, "replaced", opts[0].Help)
	assert.Equal(t, "second", opts[1].Name)
}

func TestAddTypeOverwrite(t *testing.T) {
	t.Parallel()

	tc := typeconfig.New()
	tc.AddOption("t", "opt", "help")
	tc.AddType("t", typeconfig.NewType(func(string) bool { return false }, nil, "never"))
	tc.AddType("t", typeconfig.NewType(func(string) bool { return true }, nil, "always"))

	got, err := tc.ValidateOption("opt", typeconfig.Some("raw"))
	require.NoError(t, err)
	assert.Equal(t, "raw", got)
	assert.Equal(t, "always", tc.Types()["t"].ErrorMessage())
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tc := typeconfig.New(typeconfig.WithLogger(logger))
	tc.AddOption("t", "opt", "help")
	tc.HealConfig("opt = a = b\nbroken", false)

	assert.Contains(t, buf.String(), "discarding ambiguous line")
	assert.Contains(t, buf.String(), "discarding malformed line")
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	tc := newHealConfig()
	tc.AddType("TestType", testType(true))

	var wg sync.WaitGroup

	for range 4 {
		wg.Go(func() {
			for range 50 {
				tc.ParseConfig("test = value\ntest2 = value")
				tc.HealConfig("test3 = value", false)
				tc.CreateConfig(true)
			}
		})
	}

	wg.Wait()

	def, ok := tc.Option("test3")
	require.True(t, ok)
	assert.Equal(t, "value", def.Default)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tc := newValidationConfig()

	_, errs := tc.ValidateConfig(map[string]typeconfig.Value{
		"b": typeconfig.Some("x"),
		"a": typeconfig.Some("x"),
	})

	require.Error(t, errs.Err())
	assert.Equal(t, []string{"a", "b"}, errs.Keys())
	require.ErrorIs(t, errs, typeconfig.ErrUnknownOption)
	assert.Equal(t, errs["a"].Error()+"\n"+errs["b"].Error(), errs.Error())

	_, errs = tc.ValidateConfig(nil)
	require.NoError(t, errs.Err())
}
