package tl

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, tasks []*Task, options ...OptionApplier) (*Runner, string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	r := New(tasks, options...).Configure(WithOutput(buf))
	err := r.Run()

	return r, buf.String(), err
}

func TestRunner(t *testing.T) {
	t.Run("runs tasks in order", func(t *testing.T) {
		var order []string

		_, out, err := run(t, []*Task{
			NewTask("first", func(callback TaskCallback) error {
				order = append(order, "first")
				return nil
			}),
			NewTask("second", func(callback TaskCallback) error {
				order = append(order, "second")
				return nil
			}),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
		assert.Equal(t, "> first\n✓ first\n> second\n✓ second\n", out)
	})

	t.Run("stops after first error and returns it", func(t *testing.T) {
		boom := fmt.Errorf("boom")
		thirdRan := false

		r, out, err := run(t, []*Task{
			NewTask("first", func(callback TaskCallback) error { return nil }),
			NewTask("second", func(callback TaskCallback) error { return boom }),
			NewTask("third", func(callback TaskCallback) error {
				thirdRan = true
				return nil
			}),
		})

		require.ErrorIs(t, err, boom)
		assert.False(t, thirdRan)
		assert.Contains(t, out, "✗ second\n  ERROR: boom\n")
		assert.Contains(t, out, "- third (skipped)")
		assert.True(t, r.Result().Error)
	})

	t.Run("continues when exit on error is disabled", func(t *testing.T) {
		thirdRan := false

		_, _, err := run(t, []*Task{
			NewTask("second", func(callback TaskCallback) error { return fmt.Errorf("boom") }),
			NewTask("third", func(callback TaskCallback) error {
				thirdRan = true
				return nil
			}),
		}, WithExitOnError(false))

		require.EqualError(t, err, "boom")
		assert.True(t, thirdRan)
	})

	t.Run("skip and hide", func(t *testing.T) {
		_, out, err := run(t, []*Task{
			NewTask("skipped", func(callback TaskCallback) error {
				callback.Skip("nothing to do")
				return nil
			}),
			NewTask("hidden", func(callback TaskCallback) error {
				callback.Hide()
				return nil
			}),
			{
				Title:  "disabled",
				Run:    func(callback TaskCallback) error { return nil },
				Enable: func() bool { return false },
			},
		})

		require.NoError(t, err)
		assert.Contains(t, out, "- skipped (skipped - nothing to do)")
		assert.NotContains(t, out, "✓ hidden")
		assert.NotContains(t, out, "disabled")
	})

	t.Run("sub tasks are indented and their errors surface", func(t *testing.T) {
		_, out, err := run(t, []*Task{
			NewTask("parent", func(callback TaskCallback) error {
				callback.AddSubTask(
					NewTask("child", func(callback TaskCallback) error { return fmt.Errorf("child failed") }),
				)
				return nil
			}),
		})

		require.EqualError(t, err, "child failed")
		assert.Contains(t, out, "  ✗ child\n")
	})

	t.Run("panics become errors", func(t *testing.T) {
		_, _, err := run(t, []*Task{
			NewTask("panic", func(callback TaskCallback) error { panic("oops") }),
		})

		require.EqualError(t, err, "panic: oops")
	})

	t.Run("callback exposes the run context", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "value")

		var got any
		r := New([]*Task{
			NewTask("ctx", func(callback TaskCallback) error {
				got = callback.Context().Value(key{})
				return nil
			}),
		}).Configure(WithOutput(&bytes.Buffer{}))

		require.NoError(t, r.RunContext(ctx))
		assert.Equal(t, "value", got)
	})

	t.Run("cancelled context skips remaining tasks", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		secondRan := false

		r := New([]*Task{
			NewTask("first", func(callback TaskCallback) error {
				cancel()
				return nil
			}),
			NewTask("second", func(callback TaskCallback) error {
				secondRan = true
				return nil
			}),
		}).Configure(WithOutput(&bytes.Buffer{}))

		require.NoError(t, r.RunContext(ctx))
		assert.False(t, secondRan)
	})

	t.Run("collect waits for a finished run only", func(t *testing.T) {
		r := New(nil)

		finished := make(chan *Result, 1)
		assert.ErrorIs(t, r.collect(finished), ErrCanceled)
		assert.Nil(t, r.Result())

		boom := fmt.Errorf("boom")
		finished <- &Result{Error: true, Err: boom}
		assert.ErrorIs(t, r.collect(finished), boom)
		assert.True(t, r.Result().Error)
	})

	t.Run("task list cannot be reused", func(t *testing.T) {
		task := NewTask("once", func(callback TaskCallback) error { return nil })
		_, _, err := run(t, []*Task{task})
		require.NoError(t, err)

		assert.Panics(t, func() {
			_ = New([]*Task{task}).Configure(WithOutput(&bytes.Buffer{})).Run()
		})
	})
}
