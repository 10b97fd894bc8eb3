package xlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	t.Run("quiet disables everything", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := Setup(buf, true, true)

		l.Error("boom")
		assert.False(t, l.Enabled(context.Background(), slog.LevelError))
		assert.Empty(t, buf.String())
	})

	t.Run("debug prints debug records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := Setup(buf, false, true)

		l.Debug("Fetched version diff", "added", 1)
		assert.Contains(t, buf.String(), "Fetched version diff")
		assert.Contains(t, buf.String(), "added=1")
	})

	t.Run("default hides debug and info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := Setup(buf, false, false)

		l.Info("hidden")
		l.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}
