package tl

import (
	"context"
	"strings"

	"github.com/ImSingee/go-ex/mr"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// TaskList runs its tasks one after another
type TaskList struct {
	Tasks   []*Task
	Options []OptionApplier

	id    string
	tasks []*Task
	option
}

func NewTaskList(tasks []*Task, options ...OptionApplier) *TaskList {
	return &TaskList{
		Tasks:   tasks,
		Options: options,
	}
}

// prepare freezes the task list, a list can only be run once
func (tl *TaskList) prepare() {
	if tl.id != "" {
		panic("task list is already used")
	}
	tl.id = uuid.NewString()

	if !tl.inited {
		tl.option = defaultOption()
	}
	for _, apply := range tl.Options {
		apply(&tl.option)
	}

	tl.tasks = append([]*Task(nil), tl.Tasks...)
	for _, task := range tl.tasks {
		task.option = tl.option
		task.use()
	}
}

type tlModel struct {
	id    string
	tasks []tea.Model
}

func (tl *TaskList) createModel() tlModel {
	return tlModel{
		id: tl.id,
		tasks: mr.Map(tl.tasks, func(t *Task, _ int) tea.Model {
			return t.createModel()
		}),
	}
}

func (m tlModel) Init() tea.Cmd {
	return nil
}

func (m tlModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i, t := range m.tasks {
		next, cmd := t.Update(msg)
		m.tasks[i] = next
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m tlModel) View() string {
	return strings.Join(mr.Map(m.tasks, func(t tea.Model, _ int) string {
		return t.View()
	}), "")
}

// start runs every task in order; after a failure (with exitOnError) or cancellation the rest are skipped
func (tl *TaskList) start(ctx context.Context, p sender) *Result {
	result := &Result{
		TaskList:   tl,
		Enabled:    true,
		SubResults: make([]*Result, len(tl.tasks)),
	}

	stopped := false
	for i, task := range tl.tasks {
		if stopped || ctx.Err() != nil {
			task.skip(p)
			continue
		}

		r := task.start(ctx, p)
		result.SubResults[i] = r
		if !r.Error {
			continue
		}

		result.Error = true
		stopped = tl.exitOnError && task.exitOnError
	}

	return result
}
