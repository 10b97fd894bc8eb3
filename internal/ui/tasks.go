package ui

import (
	"context"
	"io"

	"github.com/ImSingee/shopify-cli/internal/lib/tl"
)

// TaskRunner runs an ordered list of tasks to completion.
//
// Tasks pass their results out through the variables they close over; the
// value written by the last task is the result of the whole run.
type TaskRunner interface {
	RunTasks(ctx context.Context, tasks []*tl.Task) error
}

type TaskListRunner struct {
	Output io.Writer // nil means stdout
}

func (r TaskListRunner) RunTasks(ctx context.Context, tasks []*tl.Task) error {
	runner := tl.New(tasks)
	if r.Output != nil {
		runner.Configure(tl.WithOutput(r.Output))
	}

	return runner.RunContext(ctx)
}
