package tl

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type taskStatus uint8

const (
	taskStatusPending taskStatus = iota
	taskStatusRunning
	taskStatusSuccess
	taskStatusFailed
	taskStatusSkipped
)

// taskModel is the bubbletea view of a single task
type taskModel struct {
	id         string
	title      string
	status     taskStatus
	skipReason string
	errReason  string
	visible    bool
	subList    tea.Model
}

func (t *Task) createModel() taskModel {
	return taskModel{
		id:      t.id,
		title:   t.Title,
		status:  taskStatusPending,
		visible: t.enabled(),
	}
}

func (m taskModel) Init() tea.Cmd {
	return nil
}

// owns reports whether msg is an event addressed to this task
func (m taskModel) owns(msg tea.Msg) bool {
	switch v := msg.(type) {
	case *eventTaskStart:
		return v.Id == m.id
	case *eventTaskSuccess:
		return v.Id == m.id
	case *eventTaskFail:
		return v.Id == m.id
	case *eventTaskSkip:
		return v.Id == m.id
	case *eventTaskHide:
		return v.Id == m.id
	case *eventTaskAddSubList:
		return v.Id == m.id
	}
	return false
}

func (m taskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.owns(msg) {
		if m.subList == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.subList, cmd = m.subList.Update(msg)
		return m, cmd
	}

	switch v := msg.(type) {
	case *eventTaskStart:
		m.visible = true
		m.status = taskStatusRunning
	case *eventTaskSuccess:
		m.status = taskStatusSuccess
	case *eventTaskFail:
		m.status = taskStatusFailed
		if v.Err != nil {
			m.errReason = v.Err.Error()
		}
	case *eventTaskSkip:
		m.status = taskStatusSkipped
		m.skipReason = v.Reason
	case *eventTaskHide:
		m.visible = false
	case *eventTaskAddSubList:
		m.subList = v.List
	}
	return m, nil
}

func (m taskModel) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(statusIcon(m.status, true) + " " + m.title + skipSuffix(m.status, m.skipReason) + "\n")

	if m.errReason != "" {
		b.WriteString("  ERROR: " + strings.TrimSpace(m.errReason) + "\n")
	}

	if m.subList != nil {
		if sub := strings.TrimSpace(m.subList.View()); sub != "" {
			for _, line := range strings.Split(sub, "\n") {
				b.WriteString("  " + line + "\n")
			}
		}
	}

	return b.String()
}
