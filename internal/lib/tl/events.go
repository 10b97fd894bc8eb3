package tl

import tea "github.com/charmbracelet/bubbletea"

// sender receives task events, either a bubbletea program or the plain renderer
type sender interface {
	Send(msg tea.Msg)
}

type eventTaskStart struct {
	Id string
}

type eventTaskSuccess struct {
	Id string
}

type eventTaskFail struct {
	Id  string
	Err error
}

type eventTaskSkip struct {
	Id     string
	Reason string
}

type eventTaskHide struct {
	Id string
}

type eventTaskAddSubList struct {
	Id   string
	List tlModel
}
