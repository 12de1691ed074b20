package libc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlibcVersion(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected string
	}{
		{
			name:     "ubuntu ldd banner",
			output:   "ldd (Ubuntu GLIBC 2.39-0ubuntu8.4) 2.39",
			expected: "2.39",
		},
		{
			name:     "gnu c library banner",
			output:   "GNU C Library (GNU libc) stable release version 2.38.",
			expected: "2.38",
		},
		{
			name:     "ld-linux version output",
			output:   "ld.so (GNU libc) version 2.31, by Roland McGrath et al.",
			expected: "2.31",
		},
		{
			name:     "three part version",
			output:   "glibc 2.17.90",
			expected: "2.17.90",
		},
		{
			name:     "no version",
			output:   "something else entirely",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, glibcVersion(tt.output))
		})
	}
}

func TestMuslVersion(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected string
	}{
		{
			name:     "musl banner",
			output:   "musl libc (x86_64)\nVersion 1.2.5\nDynamic Program Loader",
			expected: "1.2.5",
		},
		{
			name:     "two part version",
			output:   "musl 1.1",
			expected: "1.1",
		},
		{
			name:     "no version",
			output:   "glibc only here",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, muslVersion(tt.output))
		})
	}
}

func TestSortLinkers(t *testing.T) {
	t.Run("machine match ranks first", func(t *testing.T) {
		linkers := []string{
			"/lib/ld-musl-aarch64.so.1",
			"/lib/ld-musl-x86_64.so.1",
		}

		sorted := sortLinkers(linkers, "x86_64")
		assert.Equal(t, "/lib/ld-musl-x86_64.so.1", sorted[0])
	})

	t.Run("shorter path breaks ties", func(t *testing.T) {
		linkers := []string{
			"/lib/x86_64-linux-gnu/ld-linux-x86-64.so.2",
			"/lib64/ld-linux-x86-64.so.2",
		}

		sorted := sortLinkers(linkers, "")
		assert.Equal(t, "/lib64/ld-linux-x86-64.so.2", sorted[0])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, sortLinkers([]string{}, "x86_64"))
	})
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name     string
		family   string
		linker   string
		expected LddEquivalent
	}{
		{
			name:   "glibc",
			family: "glibc",
			linker: "/lib64/ld-linux-x86-64.so.2",
			expected: LddEquivalent{
				Method:      "glibc-ld--list",
				CmdTemplate: []string{"/lib64/ld-linux-x86-64.so.2", "--list", "{target}"},
			},
		},
		{
			name:   "musl",
			family: "musl",
			linker: "/lib/ld-musl-x86_64.so.1",
			expected: LddEquivalent{
				Method:      "musl-ld-argv0-ldd",
				CmdTemplate: []string{"ldd", "{target}"},
				Executable:  "/lib/ld-musl-x86_64.so.1",
			},
		},
		{
			name:     "unknown family",
			family:   FamilyUnknown,
			linker:   "/lib64/ld-linux-x86-64.so.2",
			expected: LddEquivalent{Method: FamilyUnknown},
		},
		{
			name:     "no linker",
			family:   "glibc",
			linker:   "",
			expected: LddEquivalent{Method: FamilyUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			equivalent := Equivalent(tt.family, tt.linker)
			require.NotNil(t, equivalent)
			assert.Equal(t, tt.expected, *equivalent)
		})
	}
}

func TestDetect_NeverNil(t *testing.T) {
	info := Detect(t.Context(), "x86_64")

	require.NotNil(t, info)
	assert.NotEmpty(t, info.Family)
	assert.NotEmpty(t, info.Detector)
}

func TestIsExecutableFile(t *testing.T) {
	assert.False(t, isExecutableFile("/this/path/does/not/exist"))
	// Directories are never linker candidates even when executable.
	assert.False(t, isExecutableFile(t.TempDir()))
}
