package tl

import "io"

// option is shared by a task list and its tasks
type option struct {
	inited      bool
	exitOnError bool
}

func defaultOption() option {
	return option{
		inited:      true,
		exitOnError: true,
	}
}

type OptionApplier func(o *option)

// WithExitOnError controls whether a failed task stops the rest of its list (default true)
func WithExitOnError(exitOnError bool) OptionApplier {
	return func(o *option) {
		o.exitOnError = exitOnError
	}
}

// RunnerOption configures how a Runner renders
type RunnerOption func(r *Runner)

// WithOutput changes where the task list is rendered (default os.Stdout).
//
// Non-terminal writers always get the plain renderer.
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.output = w
		r.interactive = isTerminal(w)
	}
}

// WithPlain forces line based output even on a terminal
func WithPlain() RunnerOption {
	return func(r *Runner) {
		r.interactive = false
	}
}
