package tl

import (
	"context"
	"fmt"

	"github.com/ImSingee/go-ex/ee"
	"github.com/google/uuid"
)

// Task is one step of a task list.
//
// A task, like its list, can only be run once.
type Task struct {
	Title string
	Run   func(callback TaskCallback) error
	// PostRun always runs after Run and may inspect or amend the result
	PostRun func(result *Result)
	// Enable hides and skips the task when it returns false
	Enable func() bool

	Options []OptionApplier

	id string
	option
}

func NewTask(title string, run func(callback TaskCallback) error, options ...OptionApplier) *Task {
	return &Task{
		Title:   title,
		Run:     run,
		Options: options,
	}
}

// Id is empty until the owning list is prepared
func (t *Task) Id() string {
	return t.id
}

func (t *Task) use() {
	if t.id != "" {
		panic("task is already used")
	}
	if !t.inited {
		panic("task used outside of a task list")
	}

	t.id = uuid.NewString()
	for _, apply := range t.Options {
		apply(&t.option)
	}
}

func (t *Task) enabled() bool {
	return t.Enable == nil || t.Enable()
}

func (t *Task) start(ctx context.Context, p sender) *Result {
	result := &Result{Task: t, Enabled: t.enabled()}
	if !result.Enabled {
		return result
	}

	p.Send(&eventTaskStart{Id: t.id})

	c := &taskController{ctx: ctx, task: t}
	result.Err = t.run(c)
	result.Error = result.Err != nil
	result.Hide = c.hide

	switch {
	case result.Error:
	case c.skipped:
		result.Skipped = true
		result.SkipReason = c.skipReason
	case c.subList != nil:
		t.startSubList(ctx, p, c.subList, result)
	}

	t.postRun(result)
	t.finish(p, result)

	return result
}

func (t *Task) startSubList(ctx context.Context, p sender, list *TaskList, result *Result) {
	list.option = t.option
	list.prepare()
	p.Send(&eventTaskAddSubList{Id: t.id, List: list.createModel()})

	sub := list.start(ctx, p)
	result.TaskList = sub.TaskList
	result.SubResults = sub.SubResults
	if sub.Error {
		// the concrete error stays on the sub result
		result.Error = true
	}
}

// finish reports the final state of the task to the renderer
func (t *Task) finish(p sender, result *Result) {
	if result.Hide {
		p.Send(&eventTaskHide{Id: t.id})
	}

	switch {
	case result.Error:
		p.Send(&eventTaskFail{Id: t.id, Err: result.Err})
	case result.Skipped:
		p.Send(&eventTaskSkip{Id: t.id, Reason: result.SkipReason})
	default:
		p.Send(&eventTaskSuccess{Id: t.id})
	}
}

func (t *Task) run(c *taskController) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = fmt.Errorf("panic: %v", e)
		}
	}()

	if t.Run == nil {
		return ee.New("no Run function provided")
	}
	return t.Run(c)
}

func (t *Task) postRun(result *Result) {
	if t.PostRun == nil {
		return
	}

	defer func() {
		e := recover()
		if e == nil {
			return
		}

		if result.Err != nil {
			result.Err = fmt.Errorf("PostRun panic: %v; Run error: %w", e, result.Err)
		} else {
			result.Err = fmt.Errorf("PostRun panic: %v", e)
		}
		result.Error = true
	}()

	t.PostRun(result)
}

func (t *Task) skip(p sender) {
	p.Send(&eventTaskSkip{Id: t.id})
}

// TaskCallback is handed to a running task
type TaskCallback interface {
	GetTask() *Task
	// Context is cancelled when the runner is cancelled
	Context() context.Context
	Hide()
	Skip(reason string)
	AddSubTaskList(taskList *TaskList)
	AddSubTask(tasks ...*Task)
}

type taskController struct {
	ctx  context.Context
	task *Task

	skipped    bool
	skipReason string
	hide       bool
	subList    *TaskList
}

func (c *taskController) GetTask() *Task           { return c.task }
func (c *taskController) Context() context.Context { return c.ctx }
func (c *taskController) Hide()                    { c.hide = true }

func (c *taskController) Skip(reason string) {
	c.skipped = true
	c.skipReason = reason
}

func (c *taskController) AddSubTaskList(taskList *TaskList) {
	if c.subList != nil {
		panic("a task can only have one sub task list")
	}
	c.subList = taskList
}

func (c *taskController) AddSubTask(tasks ...*Task) {
	if c.subList == nil {
		c.subList = NewTaskList(nil)
	}
	c.subList.Tasks = append(c.subList.Tasks, tasks...)
}
