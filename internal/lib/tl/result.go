package tl

type Result struct {
	Task     *Task
	TaskList *TaskList

	Enabled    bool
	Skipped    bool
	SkipReason string
	Hide       bool
	Error      bool
	Err        error

	SubResults []*Result
}

// FirstErr returns the first concrete error in execution order, searching sub results too
func (r *Result) FirstErr() error {
	if r == nil {
		return nil
	}
	if r.Err != nil {
		return r.Err
	}

	for _, sub := range r.SubResults {
		if err := sub.FirstErr(); err != nil {
			return err
		}
	}

	return nil
}
