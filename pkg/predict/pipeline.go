package predict

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-medrec/pkg/form"
)

// Predictor performs the network exchange for a payload.
type Predictor interface {
	Predict(ctx context.Context, payload Payload) (string, error)
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithPipelineLogger sets the logger used to record submission outcomes.
func WithPipelineLogger(logger zerolog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// Pipeline drives one submission of a form.Store.
type Pipeline struct {
	predictor Predictor
	logger    zerolog.Logger
}

// NewPipeline wraps predictor.
func NewPipeline(predictor Predictor, options ...PipelineOption) *Pipeline {
	p := &Pipeline{
		predictor: predictor,
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Submit snapshots store, sends the payload and writes the result back. The
// returned error is non-nil only when the submission could not start
// (form.ErrSubmissionInFlight, ErrNilStore); every other failure is recorded
// in the store as a failure result and returned as that result.
func (p *Pipeline) Submit(ctx context.Context, store *form.Store) (form.Result, error) {
	if store == nil {
		return form.Result{}, ErrNilStore
	}

	snap, err := store.BeginSubmission()
	if err != nil {
		return form.Result{}, err
	}

	result := form.Failure(form.FailureTransport, TransportMessage)
	defer func() {
		store.CompleteSubmission(result)
	}()

	result = p.exchange(ctx, snap)
	return result, nil
}

func (p *Pipeline) exchange(ctx context.Context, snap form.Snapshot) form.Result {
	if p.predictor == nil {
		p.logger.Error().Msg("submission without predictor")
		return form.Failure(form.FailureTransport, TransportMessage)
	}

	payload, err := NewPayload(snap)
	if err != nil {
		return p.failure(err)
	}

	text, err := p.predictor.Predict(ctx, payload)
	if err != nil {
		return p.failure(err)
	}

	p.logger.Info().Int("lines", countLines(text)).Msg("prediction received")
	return form.Success(text)
}

func (p *Pipeline) failure(err error) form.Result {
	result := ResultFromError(err)
	p.logger.Warn().
		Err(err).
		Str("failure", string(result.Failure)).
		Msg("submission failed")
	return result
}

// ResultFromError maps an error onto the failure result shown to the user.
func ResultFromError(err error) form.Result {
	var rejection *RemoteRejection
	if errors.As(err, &rejection) {
		return form.Failure(form.FailureRemoteRejection, rejection.Message)
	}
	var validation *form.ValidationError
	if errors.As(err, &validation) {
		return form.Failure(form.FailureValidation, validation.UserMessage())
	}
	return form.Failure(form.FailureTransport, TransportMessage)
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := 1
	for _, r := range text {
		if r == '\n' {
			n++
		}
	}
	return n
}
