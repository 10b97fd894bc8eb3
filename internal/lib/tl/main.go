package tl

import (
	"context"
	"io"
	"os"

	"github.com/ImSingee/go-ex/ee"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

var ErrCanceled = ee.New("canceled")

type Runner struct {
	tl *TaskList

	output      io.Writer
	interactive bool

	result *Result
}

func New(tasks []*Task, options ...OptionApplier) *Runner {
	return &Runner{
		tl:          NewTaskList(tasks, options...),
		output:      os.Stdout,
		interactive: isTerminal(os.Stdout),
	}
}

// Configure applies runner level options and returns the runner itself
func (runner *Runner) Configure(options ...RunnerOption) *Runner {
	for _, apply := range options {
		apply(runner)
	}
	return runner
}

func (runner *Runner) Run() error {
	return runner.RunContext(context.Background())
}

// RunContext runs all tasks in order and returns the first task error.
//
// Tasks that did not start before ctx was cancelled are reported as skipped.
func (runner *Runner) RunContext(ctx context.Context) error {
	runner.prepare()

	if !runner.interactive {
		p := newPlainRenderer(runner.output, runner.tl.createModel())
		runner.result = runner.tl.start(ctx, p)
		return runner.err()
	}

	p := tea.NewProgram(runner.createModel(), tea.WithOutput(runner.output), tea.WithContext(ctx))

	finished := make(chan *Result, 1)
	go func() {
		finished <- runner.tl.start(ctx, p)
		p.Send(tea.Quit())
	}()

	_, err := p.Run()
	if err != nil && !ee.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return runner.collect(finished)
}

// collect takes the result of a finished run, the program quitting first means the user cancelled
func (runner *Runner) collect(finished <-chan *Result) error {
	select {
	case result := <-finished:
		runner.result = result
		return runner.err()
	default:
		return ErrCanceled
	}
}

// Result is only available after Run returns, it stays nil when the run was cancelled from the terminal
func (runner *Runner) Result() *Result {
	return runner.result
}

func (runner *Runner) prepare() {
	runner.tl.prepare()
}

func (runner *Runner) err() error {
	if runner.result == nil || !runner.result.Error {
		return nil
	}

	if err := runner.result.FirstErr(); err != nil {
		return err
	}

	return ee.New("some tasks error")
}

type runnerModel struct {
	tl tea.Model
}

func (runner *Runner) createModel() runnerModel {
	return runnerModel{
		tl: runner.tl.createModel(),
	}
}

func (m runnerModel) Init() tea.Cmd {
	return nil
}
func (m runnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if shouldQuit(msg) {
		return m, tea.Quit
	}

	tl, cmd := m.tl.Update(msg)
	m.tl = tl
	return m, cmd
}
func (m runnerModel) View() string {
	return m.tl.View()
}

func shouldQuit(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return true
		}
	}

	return false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
