// Package partnerstest provides an in-memory partners.Client for tests
package partnerstest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ImSingee/shopify-cli/internal/partners"
)

type Call struct {
	Operation string
	Token     string
	Variables map[string]any
}

type response struct {
	data any
	err  error
}

// Fake answers operations from queued responses, in order per operation.
//
// Responses are round-tripped through JSON so the schema tags are exercised.
type Fake struct {
	mu        sync.Mutex
	responses map[string][]response
	calls     []Call
}

func New() *Fake {
	return &Fake{responses: make(map[string][]response)}
}

// Respond queues data (any JSON encodable value or raw JSON string) for op
func (f *Fake) Respond(op partners.Operation, data any) *Fake {
	return f.queue(op, response{data: data})
}

// Fail queues an error for op
func (f *Fake) Fail(op partners.Operation, err error) *Fake {
	return f.queue(op, response{err: err})
}

func (f *Fake) queue(op partners.Operation, r response) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.responses[op.Name] = append(f.responses[op.Name], r)
	return f
}

func (f *Fake) Request(_ context.Context, op partners.Operation, token string, variables map[string]any, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Operation: op.Name, Token: token, Variables: variables})

	queued := f.responses[op.Name]
	if len(queued) == 0 {
		return fmt.Errorf("partnerstest: unexpected operation %s", op.Name)
	}
	r := queued[0]
	f.responses[op.Name] = queued[1:]

	if r.err != nil {
		return r.err
	}

	var raw []byte
	switch d := r.data.(type) {
	case string:
		raw = []byte(d)
	default:
		b, err := json.Marshal(d)
		if err != nil {
			return err
		}
		raw = b
	}

	return json.Unmarshal(raw, out)
}

func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]Call(nil), f.calls...)
}

// CallsTo returns the calls made for one operation
func (f *Fake) CallsTo(op partners.Operation) []Call {
	var result []Call
	for _, c := range f.Calls() {
		if c.Operation == op.Name {
			result = append(result, c)
		}
	}
	return result
}
