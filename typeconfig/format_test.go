package typeconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/confkit/stringtest"
	"go.jacobcolvin.com/confkit/typeconfig"
)

func TestCreateConfig(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want        string
		withTypeTag bool
	}{
		"without types": {
			withTypeTag: false,
			want: stringtest.JoinLF(
				"test = value",
				"# !!! The test must pass",
				"# A test option",
				"",
				"test2 = ",
				"# A test option",
			),
		},
		"with types": {
			withTypeTag: true,
			want: stringtest.JoinLF(
				"[TestType] test = value",
				"# !!! The test must pass",
				"# A test option",
				"",
				"[TestType] test2 = ",
				"# A test option",
			),
		},
	}

	tc := newIOConfig()

	for name, tt := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tc.CreateConfig(tt.withTypeTag))
		})
	}
}

func TestFormatOption(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		def         typeconfig.Definition
		want        string
		withTypeTag bool
	}{
		"multi-line help": {
			def: typeconfig.Definition{
				Name: "Money",
				Type: "int",
				Help: "The amount of money\nyou can use in the shop.\n",
			},
			want: stringtest.JoinLF(
				"Money = ",
				"# The amount of money",
				"# you can use in the shop.",
			),
		},
		"multi-line important help": {
			def: typeconfig.Definition{
				Name:          "Out directory",
				Type:          "path",
				Default:       "/tmp",
				ImportantHelp: "Must be absolute\nMust exist",
				Help:          "Where the list is sent.",
			},
			withTypeTag: true,
			want: stringtest.JoinLF(
				"[path] Out directory = /tmp",
				"# !!! Must be absolute",
				"# !!! Must exist",
				"# Where the list is sent.",
			),
		},
		"no help at all": {
			def:  typeconfig.Definition{Name: "bare", Type: "string", Default: "x"},
			want: "bare = x",
		},
	}

	for name, tt := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, typeconfig.FormatOption(tt.def, tt.withTypeTag))
		})
	}
}

func TestCreateConfigEmptySchema(t *testing.T) {
	t.Parallel()

	assert.Empty(t, typeconfig.New().CreateConfig(true))
}
