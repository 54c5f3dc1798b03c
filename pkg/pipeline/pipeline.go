// Package pipeline orchestrates the four-stage answer flow: validate the
// question, generate SQL, execute it, summarize the result. Stages run
// strictly in sequence, short-circuit on failure or irrelevance, and every
// invocation ends in exactly one terminal outcome.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aeroquery/aeroquery/pkg/database"
	"github.com/aeroquery/aeroquery/pkg/llm"
	sqlutil "github.com/aeroquery/aeroquery/pkg/sql"
)

// QueryExecutor runs one SQL statement against the datastore.
type QueryExecutor interface {
	ExecuteQuery(ctx context.Context, sqlQuery string) (*database.QueryResult, error)
}

// Status is the terminal state of one invocation.
type Status int

const (
	// StatusRejected means the question was judged irrelevant; no SQL
	// was generated.
	StatusRejected Status = iota
	// StatusNoSQL means generation ran but no statement could be
	// recovered; the raw response (or a failure description) is the
	// fallback.
	StatusNoSQL
	// StatusCompleted means a statement was extracted, executed and
	// summarized. The execution itself may still have produced an
	// error-shaped Result.
	StatusCompleted
)

// Outcome is the user-facing payload of one invocation.
type Outcome struct {
	Status   Status
	SQL      string  // set for StatusCompleted
	Result   *Result // set for StatusCompleted
	Summary  string  // set for StatusCompleted
	Fallback string  // set for StatusNoSQL
}

// Pipeline sequences the four stages over three agents and one executor.
// It holds no state across invocations.
type Pipeline struct {
	validator      llm.Client
	generator      llm.Client
	summarizer     llm.Client
	executor       QueryExecutor
	schema         string
	requestTimeout time.Duration
	logger         *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRequestTimeout bounds each external call. Zero disables the bound.
// Sequencing is unaffected either way.
func WithRequestTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		p.requestTimeout = d
	}
}

// New creates a pipeline over the three agents, the executor and the
// schema ground truth shared by every prompt.
func New(agents *llm.AgentSet, executor QueryExecutor, schemaText string, logger *zap.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		validator:  agents.Validator,
		generator:  agents.Generator,
		summarizer: agents.Summarizer,
		executor:   executor,
		schema:     schemaText,
		logger:     logger.Named("pipeline"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes one invocation: validate, generate, execute, summarize.
// It always returns a terminal Outcome; external-call failures surface as
// data inside it, never as a panic or error return.
func (p *Pipeline) Run(ctx context.Context, question string) *Outcome {
	logger := p.logger.With(zap.String("invocation_id", uuid.NewString()))
	logger.Info("pipeline started", zap.Int("question_len", len(question)))

	if check := sqlutil.CheckPromptForInjection(question); check != nil {
		// Advisory only: the statement is executed verbatim regardless.
		logger.Warn("injection pattern in question",
			zap.String("fingerprint", check.Fingerprint))
	}

	if !p.validate(ctx, question) {
		logger.Info("question rejected as irrelevant")
		return &Outcome{Status: StatusRejected}
	}

	statement, fallback := p.generateSQL(ctx, question)
	if statement == "" {
		logger.Info("no SQL recovered from generation")
		return &Outcome{Status: StatusNoSQL, Fallback: fallback}
	}
	logger.Info("SQL extracted", zap.Int("sql_len", len(statement)))

	result := p.execute(ctx, statement)
	summary := p.summarize(ctx, question, result)

	logger.Info("pipeline completed",
		zap.Int("result_kind", int(result.Kind)),
		zap.Int("rows", result.RowCount()))

	return &Outcome{
		Status:  StatusCompleted,
		SQL:     statement,
		Result:  result,
		Summary: summary,
	}
}
