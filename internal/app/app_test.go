package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/dagforge/internal/grouping"
	"github.com/vk/dagforge/internal/hcl"
)

const fixturePipeline = `
pipeline {
  name     = "Price Model"
  schedule = "@daily"
}

node "clean" {
  inputs  = ["raw"]
  outputs = ["clean_data"]
  tags    = ["stage:prep"]
}

node "split" {
  inputs  = ["clean_data"]
  outputs = ["train", "test"]
  tags    = ["stage:prep"]
}

node "train_model" {
  inputs  = ["train"]
  outputs = ["model"]
}

node "evaluate" {
  inputs  = ["model", "test"]
}
`

func writePipeline(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.hcl")
	require.NoError(t, os.WriteFile(path, []byte(fixturePipeline), 0o644))
	return path
}

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	validated, err := NewConfig(cfg)
	require.NoError(t, err)
	a, err := NewApp(&out, io.Discard, validated, hcl.NewLoader())
	require.NoError(t, err)
	return a, &out
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	assert.ErrorContains(t, err, "PipelinePath is a required")

	_, err = NewConfig(Config{PipelinePath: "p.hcl", Schedule: "nonsense"})
	assert.ErrorContains(t, err, "invalid schedule")

	cfg, err := NewConfig(Config{PipelinePath: "p.hcl", Schedule: "0 4 * * *"})
	require.NoError(t, err)
	assert.Equal(t, "0 4 * * *", cfg.Schedule)
}

func TestRun_WritesAirflowFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "price_model.py")
	a, _ := newTestApp(t, Config{
		PipelinePath: writePipeline(t),
		OutputPath:   outPath,
		Target:       "airflow",
		GroupMode:    grouping.ModeByTag,
		GroupTag:     "stage",
	})

	require.NoError(t, a.Run(context.Background()))

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	text := string(raw)

	// Pipeline name goes through the identifier policy.
	assert.Contains(t, text, `dag_id="price_model"`)
	assert.Contains(t, text, `schedule="@daily"`)

	// clean+split merge under the prep tag; the rest stay singletons.
	assert.Contains(t, text, `task_id="prep"`)
	assert.Contains(t, text, `"nodes": ["clean", "split"]`)
	assert.Contains(t, text, `task_id="train_model"`)
	assert.Contains(t, text, `task_id="evaluate"`)
	assert.Contains(t, text, "prep >> train_model")
	assert.Contains(t, text, "prep >> evaluate")
	assert.Contains(t, text, "train_model >> evaluate")
}

func TestRun_StdoutAndDeterminism(t *testing.T) {
	t.Parallel()

	path := writePipeline(t)
	cfg := Config{
		PipelinePath: path,
		Target:       "airflow",
		GroupMode:    grouping.ModeByTag,
		GroupTag:     "stage",
	}

	first, out := newTestApp(t, cfg)
	require.NoError(t, first.Run(context.Background()))
	require.NotEmpty(t, out.Bytes())

	for i := 0; i < 3; i++ {
		again, againOut := newTestApp(t, cfg)
		require.NoError(t, again.Run(context.Background()))
		assert.True(t, bytes.Equal(out.Bytes(), againOut.Bytes()), "output must be byte-identical across runs")
	}
}

func TestRun_DotTarget(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t, Config{
		PipelinePath: writePipeline(t),
		Target:       "dot",
		GroupMode:    grouping.ModeNone,
	})

	require.NoError(t, a.Run(context.Background()))
	text := out.String()
	assert.Contains(t, text, `digraph "price_model"`)
	assert.Contains(t, text, `"clean" -> "split";`)
}

func TestRun_TemplateOverride(t *testing.T) {
	t.Parallel()

	tmplPath := filepath.Join(t.TempDir(), "short.tmpl")
	require.NoError(t, os.WriteFile(tmplPath, []byte(`{{ .DAGName }}:{{ len .Tasks }}`), 0o644))

	a, out := newTestApp(t, Config{
		PipelinePath: writePipeline(t),
		Target:       "airflow",
		TemplatePath: tmplPath,
		GroupMode:    grouping.ModeNone,
	})

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "price_model:4", out.String())
}

func TestRun_ScheduleFlagOverridesPipeline(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t, Config{
		PipelinePath: writePipeline(t),
		Target:       "airflow",
		Schedule:     "0 6 * * 1",
		GroupMode:    grouping.ModeNone,
	})

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), `schedule="0 6 * * 1"`)
}

func TestRun_UnknownTarget(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, Config{
		PipelinePath: writePipeline(t),
		Target:       "nomad",
		GroupMode:    grouping.ModeNone,
	})

	err := a.Run(context.Background())
	assert.ErrorContains(t, err, "unknown target")
}

func TestRun_GroupingErrorsPropagate(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, Config{
		PipelinePath: writePipeline(t),
		Target:       "airflow",
		GroupMode:    grouping.ModeByTag,
		// No tag key: the grouping engine must reject the configuration.
	})

	err := a.Run(context.Background())
	var confErr *grouping.InvalidConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestNewApp_LoadFailure(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{PipelinePath: filepath.Join(t.TempDir(), "missing.hcl")})
	require.NoError(t, err)

	_, err = NewApp(io.Discard, io.Discard, cfg, hcl.NewLoader())
	assert.ErrorContains(t, err, "failed to load pipeline definition")
}
