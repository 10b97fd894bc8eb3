package tl

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// plainRenderer prints one line per task state change.
// It is used when the output is not a terminal (CI, pipes, tests).
type plainRenderer struct {
	w      io.Writer
	titles map[string]string
	depth  map[string]int
	hidden map[string]bool
}

func newPlainRenderer(w io.Writer, root tlModel) *plainRenderer {
	r := &plainRenderer{
		w:      w,
		titles: make(map[string]string),
		depth:  make(map[string]int),
		hidden: make(map[string]bool),
	}
	r.register(root, 0)

	return r
}

func (r *plainRenderer) register(list tlModel, depth int) {
	for _, m := range list.tasks {
		task, ok := m.(taskModel)
		if !ok {
			continue
		}

		r.titles[task.id] = task.title
		r.depth[task.id] = depth
	}
}

func (r *plainRenderer) Send(msg tea.Msg) {
	switch v := msg.(type) {
	case *eventTaskStart:
		r.line(v.Id, statusIcon(taskStatusRunning, false)+" "+r.titles[v.Id])
	case *eventTaskSuccess:
		r.line(v.Id, statusIcon(taskStatusSuccess, false)+" "+r.titles[v.Id])
	case *eventTaskFail:
		r.line(v.Id, statusIcon(taskStatusFailed, false)+" "+r.titles[v.Id])
		if v.Err != nil {
			r.line(v.Id, "  ERROR: "+strings.TrimSpace(v.Err.Error()))
		}
	case *eventTaskSkip:
		r.line(v.Id, statusIcon(taskStatusSkipped, false)+" "+r.titles[v.Id]+skipSuffix(taskStatusSkipped, v.Reason))
	case *eventTaskHide:
		r.hidden[v.Id] = true
	case *eventTaskAddSubList:
		r.register(v.List, r.depth[v.Id]+1)
	}
}

func (r *plainRenderer) line(id string, s string) {
	if r.hidden[id] {
		return
	}
	if _, known := r.titles[id]; !known {
		return
	}

	_, _ = fmt.Fprintln(r.w, strings.Repeat("  ", r.depth[id])+s)
}
