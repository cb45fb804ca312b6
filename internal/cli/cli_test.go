package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerofoolcoder/collectionsjs/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := run(cmd)
	return stdout.String(), stderr.String(), err
}

func TestFilter_Stdin(t *testing.T) {
	out, _, err := execute(t, "[1, 4, 8, 10, 20]", "filter", "--gte", "5")
	require.NoError(t, err)
	jsonassert.New(t).Assertf(out, `[8, 10, 20]`)
}

func TestFilter_NoMatches(t *testing.T) {
	out, _, err := execute(t, "[1, 2, 3]", "filter", "--gt", "100")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestFilter_NoFlagsKeepsEverything(t *testing.T) {
	out, _, err := execute(t, "[3, 1, 2]", "filter")
	require.NoError(t, err)
	assert.Equal(t, "[3,1,2]\n", out)
}

func TestFilter_CombinedStages(t *testing.T) {
	out, _, err := execute(t, "[20, 1, 10, 4, 8, 6]", "filter", "--gte", "4", "--ne", "10", "--sort", "--skip", "1", "--take", "2")
	require.NoError(t, err)
	assert.Equal(t, "[6,8]\n", out)

	out, _, err = execute(t, "[1, 4, 8, 10, 20]", "filter", "--gte", "5", "--reject")
	require.NoError(t, err)
	assert.Equal(t, "[1,4]\n", out)
}

func TestFilter_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- 1\n- 4\n- 8\n- 10\n- 20\n"), 0o600))

	out, _, err := execute(t, "", "filter", "--file", path, "--format", "yaml", "--output", "yaml", "--lt", "10")
	require.NoError(t, err)
	assert.Equal(t, "- 1\n- 4\n- 8\n", out)
}

func TestFilter_OutputFormatFromEnv(t *testing.T) {
	t.Setenv("COLLECTION_OUTPUT_FORMAT", "yaml")
	out, _, err := execute(t, "[5, 6]", "filter", "--eq", "6")
	require.NoError(t, err)
	assert.Equal(t, "- 6\n", out)
}

func TestFilter_Errors(t *testing.T) {
	_, _, err := execute(t, "   ", "filter")
	assert.True(t, errors.Is(err, ErrEmptyInput))

	_, _, err = execute(t, `{"a": 1}`, "filter")
	assert.Error(t, err)

	_, _, err = execute(t, "[1]", "filter", "--format", "xml")
	assert.True(t, errors.Is(err, config.ErrUnknownFormat))

	_, stderr, err := execute(t, "", "filter", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Contains(t, stderr, "open input")
}

func TestErrorsReportedOnStderr(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown input format", []string{"filter", "--format", "xml"}, `collection: unknown format "xml"`},
		{"unknown output format", []string{"filter", "--output", "csv"}, `collection: unknown format "csv"`},
		{"bad flag value", []string{"filter", "--take", "abc"}, "collection: invalid argument"},
		{"unknown flag", []string{"filter", "--bogus"}, "collection: unknown flag: --bogus"},
		{"unknown command", []string{"frobnicate"}, `collection: unknown command "frobnicate"`},
	}
	for _, c := range cases {
		_, stderr, err := execute(t, "[1]", c.args...)
		assert.Error(t, err, c.name)
		assert.Contains(t, stderr, c.want, c.name)
	}
}

func TestConfigErrorReportedOnStderr(t *testing.T) {
	t.Setenv("COLLECTION_INPUT_FORMAT", "xml")
	_, stderr, err := execute(t, "[1]", "filter")
	require.Error(t, err)
	assert.Contains(t, stderr, "collection: config: input: unknown format")
}

func TestFilter_DebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "[1, 4, 8]", "--debug", "filter", "--gte", "5")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"filtered"`)
	assert.Contains(t, stderr, `"out":1`)

	_, stderr, err = execute(t, "[1, 4, 8]", "filter", "--gte", "5")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "collection dev\n", out)
}
