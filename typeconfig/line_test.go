package typeconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/confkit/stringtest"
	"go.jacobcolvin.com/confkit/typeconfig"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  typeconfig.Line
		err   error
	}{
		"plain line": {
			input: "my option = value",
			want:  typeconfig.Line{Option: "my option", Value: "value"},
		},
		"surrounding whitespace": {
			input: "   my option   =    value   ",
			want:  typeconfig.Line{Option: "my option", Value: "value"},
		},
		"type tag": {
			input: "[A type] my option = value",
			want:  typeconfig.Line{Tag: "A type", Option: "my option", Value: "value"},
		},
		"no value": {
			input: "my option =",
			want:  typeconfig.Line{Option: "my option", Value: ""},
		},
		"inline comment": {
			input: "test4 = SOMETHING # Even added an inline comment",
			want:  typeconfig.Line{Option: "test4", Value: "SOMETHING"},
		},
		"hash inside tag is not a comment": {
			input: "[C#] lang = go",
			want:  typeconfig.Line{Tag: "C#", Option: "lang", Value: "go"},
		},
		"only first equals splits": {
			input: "query = a=b",
			want:  typeconfig.Line{Option: "query", Value: "a=b"},
		},
		"stray bracket without tag": {
			input: "junk] key = v",
			want:  typeconfig.Line{Option: "key", Value: "v"},
		},
		"no equals": {
			input: "my option | value",
			err:   typeconfig.ErrMalformedLine,
		},
		"empty line": {
			input: "",
			err:   typeconfig.ErrMalformedLine,
		},
		"empty option name": {
			input: "   = value",
			err:   typeconfig.ErrMalformedLine,
		},
		"equals only inside comment": {
			input: "option # = value",
			err:   typeconfig.ErrMalformedLine,
		},
		"tagged line without equals": {
			input: "[TestType] test value",
			err:   typeconfig.ErrMalformedLine,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := typeconfig.ParseLine(tc.input)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCleanLines(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  []string
	}{
		"without types": {
			input: stringtest.Input(`
				option = value
				# !!! something
				# another comment

				another_option = value
				# another comment
			`),
			want: []string{"option = value", "another_option = value"},
		},
		"with types": {
			input: stringtest.Input(`
				[some type] option = value
				# !!! something
				# another comment

				[AnotherType] another_option = value
				# another comment
			`),
			want: []string{"[some type] option = value", "[AnotherType] another_option = value"},
		},
		"crlf line endings": {
			input: stringtest.JoinCRLF("a = 1", "# help", "", "b = 2"),
			want:  []string{"a = 1", "b = 2"},
		},
		"indented comments": {
			input: "   # comment\n\t#another\n  x = 1  ",
			want:  []string{"x = 1"},
		},
		"empty document": {
			input: "",
			want:  nil,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, typeconfig.CleanLines(tc.input))
		})
	}
}
