package app

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/vk/dagforge/internal/ctxlog"
	"github.com/vk/dagforge/internal/dag"
	"github.com/vk/dagforge/internal/grouping"
	"github.com/vk/dagforge/internal/render"
	"github.com/vk/dagforge/internal/taskgraph"
)

// Run executes one conversion: build the node graph, partition it into
// groups, project the group graph, render it through the target's
// template, and write the result.
func (a *App) Run(ctx context.Context) error {
	logger := a.logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")

	tgt, err := a.targets.Lookup(a.config.Target)
	if err != nil {
		return err
	}

	tmplText := tgt.Template
	if a.config.TemplatePath != "" {
		raw, err := os.ReadFile(a.config.TemplatePath)
		if err != nil {
			return fmt.Errorf("failed to read template override: %w", err)
		}
		tmplText = string(raw)
		logger.Debug("Using template override.", "path", a.config.TemplatePath)
	}

	graph, err := dag.Build(ctx, a.model.Pipeline)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}
	logger.Debug("Dependency graph built.", "node_count", len(graph.Nodes))

	partition, err := grouping.Build(ctx, graph, grouping.Options{
		Mode:   a.config.GroupMode,
		TagKey: a.config.GroupTag,
		Policy: tgt.Policy,
	})
	if err != nil {
		return fmt.Errorf("grouping failed: %w", err)
	}
	logger.Debug("Nodes partitioned into groups.", "group_count", partition.Len())

	tg, err := taskgraph.Project(ctx, graph, partition)
	if err != nil {
		return fmt.Errorf("failed to project task graph: %w", err)
	}

	schedule, err := a.schedule()
	if err != nil {
		return err
	}

	out, err := render.Render(ctx, tmplText, &render.Data{
		DAGName:  a.dagName(tgt.Policy.Normalize),
		Schedule: schedule,
		Tasks:    tg.Tasks,
	})
	if err != nil {
		return err
	}

	if a.config.OutputPath == "" {
		_, err = a.outW.Write(out)
		return err
	}
	if err := os.WriteFile(a.config.OutputPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.config.OutputPath, err)
	}
	logger.Info("DAG file written.", "path", a.config.OutputPath, "tasks", len(tg.Tasks))
	return nil
}

// dagName resolves the generated DAG identifier: explicit flag first, then
// the pipeline's own name, then a last-resort constant. The result goes
// through the target's identifier policy either way.
func (a *App) dagName(normalize func(string) string) string {
	name := a.config.DAGName
	if name == "" {
		name = a.model.Pipeline.Name
	}
	if name == "" {
		name = "pipeline"
	}
	return normalize(name)
}

// schedule resolves the DAG schedule: explicit flag first, then the
// pipeline definition. A schedule from the definition file has not been
// through NewConfig, so it is validated here; an invalid one aborts the
// run rather than producing a file the orchestrator would reject.
func (a *App) schedule() (string, error) {
	if a.config.Schedule != "" {
		return a.config.Schedule, nil
	}
	s := a.model.Pipeline.Schedule
	if s == "" {
		return "", nil
	}
	if err := ValidateSchedule(s); err != nil {
		return "", err
	}
	return s, nil
}
