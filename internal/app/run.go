package app

import (
	"context"
	"fmt"

	"buildgate/internal/ctxlog"
	"buildgate/internal/dag"
	"buildgate/internal/executor"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.HealthcheckPort > 0 {
		go a.startHealthcheckServer(appConfig.HealthcheckPort)
	}

	a.logger.Debug("Building target graph from pipeline model...")
	graph, err := dag.Build(ctx, a.model)
	if err != nil {
		return fmt.Errorf("failed to build target graph: %w", err)
	}
	a.logger.Debug("Target graph built.", "target_count", len(graph.Targets()))

	if appConfig.ListTargets {
		a.listTargets(graph)
		return nil
	}

	name := appConfig.TargetName
	if name == "" {
		name = a.model.DefaultTarget
	}
	if name == "" {
		name = "all"
	}

	inv, err := graph.Resolve(name, appConfig.Args)
	if err != nil {
		return err
	}
	a.logger.Debug("Invocation resolved.", "target", name, "steps", len(inv.Steps))

	a.logger.Info("🚀 Starting sequential execution...", "target", name)
	runner := executor.New(executor.Context{
		Dir:    appConfig.WorkDir,
		Stdout: a.subStdout,
		Stderr: a.subStderr,
	})
	result, err := runner.Run(ctx, inv)
	if err != nil {
		a.logger.Error("🏁 Execution halted.", "target", name, "outcome", result.Outcome.String())
		return err
	}
	a.logger.Info("🏁 Execution finished.", "target", name, "outcome", result.Outcome.String(), "steps_run", len(result.Steps))

	a.logger.Debug("App.Run method finished.")
	return nil
}

// listTargets prints the target table in declaration order.
func (a *App) listTargets(graph *dag.Graph) {
	for _, node := range graph.Targets() {
		line := node.Name
		if len(node.Deps) > 0 {
			deps := make([]string, 0, len(node.Deps))
			for _, dep := range node.Deps {
				deps = append(deps, dep.Name)
			}
			line = fmt.Sprintf("%s (depends on: %v)", line, deps)
		}
		if node.Description != "" {
			line = fmt.Sprintf("%-40s %s", line, node.Description)
		}
		fmt.Fprintln(a.outW, line)
	}
}
