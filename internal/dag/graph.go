package dag

import (
	"context"
	"fmt"

	"buildgate/internal/config"
	"buildgate/internal/ctxlog"
)

// Graph is the validated, immutable target graph. It is built once at
// load time; invocations are stateless traversals over it.
type Graph struct {
	// nodes stores all targets, keyed by their unique name.
	nodes map[string]*Node
	// order preserves declaration order for deterministic listings.
	order []string
}

// Node represents a single target in the graph.
type Node struct {
	// Name is the unique target name.
	Name string
	// Description is the optional human-readable summary.
	Description string
	// Commands is the ordered list of argv vectors the target runs
	// after its dependencies succeed. Empty for pure aggregators.
	Commands [][]string
	// Deps holds dependency nodes in declaration order.
	Deps []*Node
}

// Build constructs a complete, validated target graph from a config model.
func Build(ctx context.Context, model *config.Model) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.")

	graph := &Graph{nodes: make(map[string]*Node, len(model.Targets))}

	// First pass: create all nodes, rejecting duplicate names.
	for _, t := range model.Targets {
		if _, exists := graph.nodes[t.Name]; exists {
			return nil, fmt.Errorf("duplicate target name %q", t.Name)
		}
		graph.nodes[t.Name] = &Node{
			Name:        t.Name,
			Description: t.Description,
			Commands:    t.Commands,
		}
		graph.order = append(graph.order, t.Name)
	}
	logger.Debug("Build: Node creation complete.", "node_count", len(graph.nodes))

	// Second pass: link dependencies in declaration order.
	for _, t := range model.Targets {
		node := graph.nodes[t.Name]
		for _, depName := range t.DependsOn {
			if depName == t.Name {
				return nil, fmt.Errorf("target %q depends on itself", t.Name)
			}
			dep, ok := graph.nodes[depName]
			if !ok {
				return nil, fmt.Errorf("undefined target %q referenced by %q", depName, t.Name)
			}
			node.Deps = append(node.Deps, dep)
		}
	}
	logger.Debug("Build: Node linking complete.")

	if err := graph.detectCycles(); err != nil {
		return nil, fmt.Errorf("error validating target graph: %w", err)
	}
	logger.Debug("Build: Cycle detection passed.")

	return graph, nil
}

// Node returns the target with the given name, if it exists.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Targets returns all targets in declaration order.
func (g *Graph) Targets() []*Node {
	nodes := make([]*Node, 0, len(g.order))
	for _, name := range g.order {
		nodes = append(nodes, g.nodes[name])
	}
	return nodes
}

// detectCycles checks for circular dependencies in the graph using DFS.
func (g *Graph) detectCycles() error {
	visiting := make(map[string]bool)
	visited := make(map[string]bool)

	var visit func(node *Node) error
	visit = func(node *Node) error {
		visiting[node.Name] = true
		for _, dep := range node.Deps {
			if visiting[dep.Name] {
				return fmt.Errorf("cycle detected involving '%s'", dep.Name)
			}
			if !visited[dep.Name] {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}
		delete(visiting, node.Name)
		visited[node.Name] = true
		return nil
	}

	for _, name := range g.order {
		if !visited[name] {
			if err := visit(g.nodes[name]); err != nil {
				return err
			}
		}
	}
	return nil
}
