package process

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/ImSingee/go-ex/ee"
	"golang.org/x/sync/errgroup"
)

// Process is a long-running part of a dev session
type Process struct {
	Prefix string
	Run    func(ctx context.Context, stdout, stderr io.Writer) error
}

// Run starts all processes concurrently and waits for them.
//
// The first failure cancels the others. Every output line is prefixed with
// the process prefix.
func Run(ctx context.Context, processes []*Process, stdout, stderr io.Writer) error {
	width := 0
	for _, p := range processes {
		width = max(width, len(p.Prefix))
	}

	mu := &sync.Mutex{}
	g, ctx := errgroup.WithContext(ctx)

	for _, p := range processes {
		g.Go(func() error {
			slog.Debug("Starting process", "prefix", p.Prefix)

			out := newPrefixWriter(stdout, p.Prefix, width, mu)
			errOut := newPrefixWriter(stderr, p.Prefix, width, mu)
			defer out.Flush()
			defer errOut.Flush()

			err := p.Run(ctx, out, errOut)
			if err != nil && ctx.Err() == nil {
				return ee.Wrapf(err, "%s failed", p.Prefix)
			}
			return nil
		})
	}

	return g.Wait()
}

type prefixWriter struct {
	w      io.Writer
	prefix string
	mu     *sync.Mutex
	buf    bytes.Buffer
}

func newPrefixWriter(w io.Writer, prefix string, width int, mu *sync.Mutex) *prefixWriter {
	return &prefixWriter{
		w:      w,
		prefix: fmt.Sprintf("%-*s │ ", width, prefix),
		mu:     mu,
	}
}

func (p *prefixWriter) Write(b []byte) (int, error) {
	p.buf.Write(b)

	for {
		line, err := p.buf.ReadString('\n')
		if err != nil {
			// incomplete line, keep it for the next write
			p.buf.Reset()
			p.buf.WriteString(line)
			break
		}
		p.writeLine(line)
	}

	return len(b), nil
}

// Flush writes a trailing incomplete line
func (p *prefixWriter) Flush() {
	if p.buf.Len() == 0 {
		return
	}
	p.writeLine(p.buf.String() + "\n")
	p.buf.Reset()
}

func (p *prefixWriter) writeLine(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = io.WriteString(p.w, p.prefix+strings.TrimRight(line, "\r\n")+"\n")
}
