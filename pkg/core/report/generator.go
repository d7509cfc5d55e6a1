// Package report turns a form selection into a generated financial report.
package report

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"financial_report/pkg/core/llm"
	"financial_report/pkg/core/logger"

	"github.com/google/uuid"
)

// ErrBusy is reported when a trigger arrives while another call is in flight.
var ErrBusy = errors.New("another report is already being generated")

// Archive persists outcomes. Failures to archive never fail a generation.
type Archive interface {
	Save(ctx context.Context, out Outcome) error
}

// Generator performs at most one remote call at a time. State is idle or
// in-flight; overlapping triggers are rejected, not queued.
type Generator struct {
	provider llm.Provider
	model    string
	archive  Archive

	mu       sync.Mutex
	inFlight atomic.Bool

	now   func() time.Time
	newID func() string
}

// NewGenerator wires a provider and an optional archive (nil disables it).
func NewGenerator(provider llm.Provider, model string, archive Archive) *Generator {
	return &Generator{
		provider: provider,
		model:    model,
		archive:  archive,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// InFlight reports whether a remote call is currently running.
func (g *Generator) InFlight() bool {
	return g.inFlight.Load()
}

func (g *Generator) Model() string {
	return g.model
}

// Generate validates sel, builds the prompt and asks the provider for the report.
// It never returns an error or panics; failures come back as a failure Outcome.
func (g *Generator) Generate(ctx context.Context, sel Selection) Outcome {
	out := Outcome{
		ID:        g.newID(),
		Selection: sel,
		Model:     g.model,
		CreatedAt: g.now(),
	}

	if err := sel.Validate(); err != nil {
		return fail(out, err, llm.FailureInvalid)
	}

	if !g.mu.TryLock() {
		return fail(out, ErrBusy, llm.FailureBusy)
	}
	g.inFlight.Store(true)
	defer func() {
		g.inFlight.Store(false)
		g.mu.Unlock()
	}()

	out.Prompt = sel.Prompt()
	log := logger.Tagged("REPORT").WithField("id", out.ID)
	log.Infof("Generating %s for %s %s (%s)", sel.Analysis, sel.Company, sel.Period(), sel.Language)

	start := g.now()
	text, err := g.call(ctx, out.Prompt)
	out.DurationMs = g.now().Sub(start).Milliseconds()

	if err != nil {
		out = fail(out, err, llm.ClassifyError(err))
		log.WithField("kind", out.FailureKind).Warnf("Generation failed: %v", err)
	} else {
		out.Status = StatusSuccess
		out.Text = text
		log.Infof("Generated %d chars in %dms", len(text), out.DurationMs)
	}

	g.store(ctx, out)
	return out
}

// call isolates the provider so a panic inside an SDK becomes an ordinary failure.
func (g *Generator) call(ctx context.Context, promptText string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	return g.provider.GenerateResponse(ctx, promptText, "", nil)
}

func (g *Generator) store(ctx context.Context, out Outcome) {
	if g.archive == nil {
		return
	}
	if err := g.archive.Save(ctx, out); err != nil {
		logger.Tagged("ARCHIVE").Warnf("Failed to archive report %s: %v", out.ID, err)
	}
}

func fail(out Outcome, err error, kind llm.FailureKind) Outcome {
	out.Status = StatusFailure
	out.Error = FailurePrefix + err.Error()
	out.FailureKind = kind
	return out
}
