package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/buildpin-labs/buildpin/internal/workspace"
)

var (
	// ErrCycle is returned when depends_on entries form a cycle.
	ErrCycle = errors.New("dependency cycle")
	// ErrUnknownProject is returned when depends_on names a subproject
	// that the workspace does not declare.
	ErrUnknownProject = errors.New("unknown subproject")
)

// EvaluationOrder returns subproject names with every dependency before its
// dependents, declaration order breaking ties. When aggregator names a
// declared subproject it is placed last; no other subproject may depend on
// it.
func EvaluationOrder(ws *workspace.Workspace, aggregator string) ([]string, error) {
	if ws.Find(aggregator) == nil {
		aggregator = ""
	}

	state := make(map[string]visit, len(ws.Subprojects))
	var order []string

	for _, s := range ws.Subprojects {
		if s.Name == aggregator {
			continue
		}
		if err := visitNode(ws, s.Name, aggregator, state, nil, &order); err != nil {
			return nil, err
		}
	}
	if aggregator != "" {
		if err := visitNode(ws, aggregator, "", state, nil, &order); err != nil {
			return nil, err
		}
	}
	return order, nil
}

type visit int

const (
	unvisited visit = iota
	visiting
	done
)

func visitNode(ws *workspace.Workspace, name, aggregator string, state map[string]visit, stack []string, order *[]string) error {
	switch state[name] {
	case done:
		return nil
	case visiting:
		return fmt.Errorf("%w: %s", ErrCycle, strings.Join(append(stack, name), " -> "))
	}

	spec := ws.Find(name)
	if spec == nil {
		from := "workspace"
		if len(stack) > 0 {
			from = stack[len(stack)-1]
		}
		return fmt.Errorf("%w %q (required by %s)", ErrUnknownProject, name, from)
	}

	state[name] = visiting
	stack = append(stack, name)
	for _, dep := range spec.DependsOn {
		if aggregator != "" && dep == aggregator {
			return fmt.Errorf("subproject %q depends on %q, which is evaluated last", name, aggregator)
		}
		if err := visitNode(ws, dep, aggregator, state, stack, order); err != nil {
			return err
		}
	}
	state[name] = done
	*order = append(*order, name)
	return nil
}
