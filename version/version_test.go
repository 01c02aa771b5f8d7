package version_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/confkit/version"
)

func TestGet(t *testing.T) {
	t.Parallel()

	info := version.Get()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Revision)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		info version.Info
		want string
	}{
		"with build date": {
			info: version.Info{
				Version:   "v1.2.0",
				Revision:  "abc123",
				BuildDate: "2026-01-02",
				GoVersion: "go1.25.0",
				Platform:  "linux/amd64",
			},
			want: "typeconfig v1.2.0 (revision abc123, built 2026-01-02) go1.25.0 linux/amd64",
		},
		"without build date": {
			info: version.Info{
				Version:   "devel",
				Revision:  "unknown",
				GoVersion: "go1.25.0",
				Platform:  "darwin/arm64",
			},
			want: "typeconfig devel (revision unknown) go1.25.0 darwin/arm64",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := tc.info.String()
			assert.Equal(t, tc.want, got)
			assert.False(t, strings.HasSuffix(got, " "))
		})
	}
}
