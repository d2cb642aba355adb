package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/dagforge/internal/grouping"
)

func TestParse_FullFlagSet(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, exit, err := Parse([]string{
		"-pipeline", "pipe.hcl",
		"-out", "dags/pipe.py",
		"-target", "airflow",
		"-dag-name", "nightly",
		"-schedule", "@daily",
		"-group-by", "by-tag",
		"-group-tag", "stage",
		"-log-format", "json",
		"-log-level", "debug",
	}, &out)

	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "pipe.hcl", cfg.PipelinePath)
	assert.Equal(t, "dags/pipe.py", cfg.OutputPath)
	assert.Equal(t, "airflow", cfg.Target)
	assert.Equal(t, "nightly", cfg.DAGName)
	assert.Equal(t, "@daily", cfg.Schedule)
	assert.Equal(t, grouping.ModeByTag, cfg.GroupMode)
	assert.Equal(t, "stage", cfg.GroupTag)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_PositionalPathAndDefaults(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"pipe.hcl"}, &out)

	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "pipe.hcl", cfg.PipelinePath)
	assert.Equal(t, "", cfg.OutputPath)
	assert.Equal(t, "airflow", cfg.Target)
	assert.Equal(t, grouping.ModeNone, cfg.GroupMode)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out)

	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_UsageErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown grouping mode", []string{"-group-by", "bogus", "pipe.hcl"}, "unknown grouping mode"},
		{"by-tag without key", []string{"-group-by", "by-tag", "pipe.hcl"}, "requires -group-tag"},
		{"bad log format", []string{"-log-format", "xml", "pipe.hcl"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "loud", "pipe.hcl"}, "invalid log-level"},
		{"bad schedule", []string{"-schedule", "not a cron", "pipe.hcl"}, "invalid schedule"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
