package session

import (
	"context"

	"github.com/drujensen/agenthub/internal/domain/entities"
)

// Pending is the handle for an agent reply that has been scheduled but may
// not have arrived yet.
type Pending struct {
	prompt entities.Message
	done   chan struct{}
	reply  *entities.Message
	err    error
}

func newPending(prompt entities.Message) *Pending {
	return &Pending{
		prompt: prompt,
		done:   make(chan struct{}),
	}
}

// Prompt is the user message that was appended by the submission.
func (p *Pending) Prompt() entities.Message {
	return p.prompt.Clone()
}

// Done is closed once the reply was appended or discarded.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the reply resolves or ctx ends. A reply dropped because
// the session was reset yields a *errs.CanceledError.
func (p *Pending) Wait(ctx context.Context) (*entities.Message, error) {
	select {
	case <-p.done:
		return p.reply, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Pending) resolve(reply *entities.Message, err error) {
	p.reply = reply
	p.err = err
	close(p.done)
}
