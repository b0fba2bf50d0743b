package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoRandomString/GoRandomString/internal/config"
	"github.com/GoRandomString/GoRandomString/internal/generator"
	"github.com/GoRandomString/GoRandomString/internal/secret"
)

func execGenerate(t *testing.T, args ...string) ([]string, error) {
	t.Helper()

	cmd := newGenerateCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return strings.Fields(out.String()), err
}

func TestGenerateCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		charset string
		length  int
		count   int
	}{
		{name: "defaults", args: nil, charset: generator.StdChars, length: generator.StdLen, count: 1},
		{name: "characters", args: []string{"-c", "abc", "-l", "5"}, charset: "abc", length: 5, count: 1},
		{name: "preset", args: []string{"-p", "hex", "-l", "32", "-n", "3"}, charset: "0123456789abcdef", length: 32, count: 3},
		{name: "keep duplicates", args: []string{"-c", "aab", "-l", "8", "--keep-duplicates"}, charset: "ab", length: 8, count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := execGenerate(t, tt.args...)
			require.NoError(t, err)
			require.Len(t, lines, tt.count)

			for _, l := range lines {
				assert.Equal(t, tt.length, utf8.RuneCountInString(l))

				for _, r := range l {
					assert.Contains(t, tt.charset, string(r))
				}
			}
		})
	}
}

func TestGenerateCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{name: "empty characters", args: []string{"-c", ""}, err: generator.ErrInvalidCharset},
		{name: "single character", args: []string{"-c", "a"}, err: generator.ErrInsufficientCharsetSize},
		{name: "zero length", args: []string{"-c", "ab", "-l", "0"}, err: generator.ErrInvalidLength},
		{name: "unknown preset", args: []string{"-p", "emoji"}, err: generator.ErrUnknownPreset},
		{name: "zero count", args: []string{"-n", "0"}, err: ErrCountTooSmall},
		{name: "unknown hash", args: []string{"--hash", "md5"}, err: secret.ErrUnknownAlgorithm},
		{name: "too long for bcrypt", args: []string{"-c", "αβ", "-l", "40", "--hash", "bcrypt"}, err: secret.ErrValueTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := execGenerate(t, tt.args...)
			require.ErrorIs(t, err, tt.err)
			assert.Empty(t, lines)
		})
	}
}

func TestGenerateCommandExclusiveFlags(t *testing.T) {
	_, err := execGenerate(t, "-c", "abc", "-p", "hex")
	require.Error(t, err)
}

func TestGenerateCommandHash(t *testing.T) {
	lines, err := execGenerate(t, "-l", "12", "--hash", "bcrypt")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	ok, err := secret.Verify(lines[0], lines[1])
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerateCommandMetricsTextfile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "randomstring.prom")

	_, err := execGenerate(t, "-n", "2", "--metrics-textfile", file)
	require.NoError(t, err)

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), `randomstring_generated_total{source="cli"} 2`)
}

func useConfig(t *testing.T, toml string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(toml), 0o600))

	old := configPath
	configPath = dir

	t.Cleanup(func() { configPath = old })
}

func TestGenerateCommandConfigDefaults(t *testing.T) {
	useConfig(t, `
[generator]
defaultLength = 8
defaultPreset = "hex"
ignoreDuplicates = false
`)

	lines, err := execGenerate(t)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 8)

	for _, r := range lines[0] {
		assert.Contains(t, "0123456789abcdef", string(r))
	}

	// duplicates are kept by the config, flags still win
	lines, err = execGenerate(t, "-c", "aa")
	require.NoError(t, err)
	assert.Equal(t, []string{"aaaaaaaa"}, lines)

	_, err = execGenerate(t, "-c", "aa", "--keep-duplicates=false")
	require.ErrorIs(t, err, generator.ErrInsufficientCharsetSize)

	lines, err = execGenerate(t, "-p", "numeric", "-l", "3")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 3)
}

func TestGenerateCommandBrokenConfig(t *testing.T) {
	useConfig(t, `
[generator]
defaultPreset = "klingon"
`)

	_, err := execGenerate(t)
	require.ErrorIs(t, err, config.ErrUnknownDefaultPreset)
}

func TestGenerateCommandRecordsRejections(t *testing.T) {
	file := filepath.Join(t.TempDir(), "randomstring.prom")

	_, err := execGenerate(t, "-n", "0", "--metrics-textfile", file)
	require.ErrorIs(t, err, ErrCountTooSmall)

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), `randomstring_generation_errors_total{kind="invalid_request",source="cli"} 1`)
}

func TestGenerateCommandListsPresets(t *testing.T) {
	usage := newGenerateCmd().Flags().Lookup("preset").Usage

	for _, name := range generator.PresetNames() {
		assert.Contains(t, usage, name)
	}
}
