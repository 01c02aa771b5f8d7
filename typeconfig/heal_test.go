package typeconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/confkit/stringtest"
	"go.jacobcolvin.com/confkit/typeconfig"
)

func newHealConfig() *typeconfig.TypeConfig {
	tc := typeconfig.New()
	tc.AddOption("TestType", "test", "A test option",
		typeconfig.WithDefault("default value"),
		typeconfig.WithImportantHelp("The test must pass"))
	tc.AddOption("TestType", "test2", "A test option")
	tc.AddOption("TestType", "test3", "A test option")
	tc.AddOption("TestType", "test4", "A test option",
		typeconfig.WithImportantHelp("Must be all caps"))

	return tc
}

func TestHealConfig(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		want        string
		withTypeTag bool
	}{
		"without types": {
			input: stringtest.Input(`
				test4 = SOMETHING # Even added an inline comment
				# New order of options
				# I changed this comment because Yeah

				test2 = something else test = oof removed newline

				test3 = a value
			`),
			want: stringtest.JoinLF(
				"test = default value",
				"# !!! The test must pass",
				"# A test option",
				"",
				"test2 = ",
				"# A test option",
				"",
				"test3 = a value",
				"# A test option",
				"",
				"test4 = SOMETHING",
				"# !!! Must be all caps",
				"# A test option",
			),
		},
		"with types": {
			input: stringtest.Input(`
				[What's this???] test4 = SOMETHING # Even added an inline comment
				# New order of options
				# I changed this comment because Yeah

				[RandomType] test2 = something else test = oof removed newline

				test3 = a value
			`),
			withTypeTag: true,
			want: stringtest.JoinLF(
				"[TestType] test = default value",
				"# !!! The test must pass",
				"# A test option",
				"",
				"[TestType] test2 = ",
				"# A test option",
				"",
				"[TestType] test3 = a value",
				"# A test option",
				"",
				"[TestType] test4 = SOMETHING",
				"# !!! Must be all caps",
				"# A test option",
			),
		},
		"discards ambiguous and malformed lines": {
			input: stringtest.JoinLF(
				"test = value",
				"test2 = a = b",
				"test3 value",
				"unknown = ignored",
			),
			want: stringtest.JoinLF(
				"test = value",
				"# !!! The test must pass",
				"# A test option",
				"",
				"test2 = ",
				"# A test option",
				"",
				"test3 = ",
				"# A test option",
				"",
				"test4 = ",
				"# !!! Must be all caps",
				"# A test option",
			),
		},
		"empty recovered value keeps default": {
			input: "test =",
			want: stringtest.JoinLF(
				"test = default value",
				"# !!! The test must pass",
				"# A test option",
				"",
				"test2 = ",
				"# A test option",
				"",
				"test3 = ",
				"# A test option",
				"",
				"test4 = ",
				"# !!! Must be all caps",
				"# A test option",
			),
		},
	}

	for name, tt := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tc := newHealConfig()
			assert.Equal(t, tt.want, tc.HealConfig(tt.input, tt.withTypeTag))
		})
	}
}

func TestHealConfigUpdatesDefaults(t *testing.T) {
	t.Parallel()

	tc := newHealConfig()
	tc.AddType("TestType", testType(true))

	tc.HealConfig("test3 = a value\ntest4 = value", false)

	def, ok := tc.Option("test3")
	require.True(t, ok)
	assert.Equal(t, "a value", def.Default)

	// The healed default is visible to later operations.
	assert.Contains(t, tc.CreateConfig(false), "test4 = value")

	got, err := tc.ValidateOption("test4", typeconfig.None())
	require.NoError(t, err)
	assert.Equal(t, passed, got)
}

func TestHealedOptions(t *testing.T) {
	t.Parallel()

	tc := newHealConfig()

	healed := tc.HealedOptions("test2 = kept\ntest3 = x = y")
	require.Len(t, healed, 4)
	assert.Equal(t, "kept", healed[1].Default)
	assert.Empty(t, healed[2].Default)

	// The schema itself is untouched.
	def, ok := tc.Option("test2")
	require.True(t, ok)
	assert.Empty(t, def.Default)
}

func TestRecover(t *testing.T) {
	t.Parallel()

	tc := newHealConfig()

	got := tc.Recover(stringtest.JoinLF(
		"# comment",
		"[T] a = 1",
		"b = 2 # note",
		"c = x = y",
		"d",
		"a = 3",
		"e =",
	))

	assert.Equal(t, map[string]string{"a": "3", "b": "2", "e": ""}, got)
}
