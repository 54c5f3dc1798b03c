package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	sqlutil "github.com/aeroquery/aeroquery/pkg/sql"
)

// Each stage wraps exactly one external call (or one pure transformation)
// behind a uniform success/failure contract: failures become data, never
// panics, and nothing is retried.

// validate gates the pipeline on relevance. The response must be the
// literal VALID, case-insensitively and whitespace-trimmed; anything else,
// including a capability failure, fails closed.
func (p *Pipeline) validate(ctx context.Context, question string) bool {
	callCtx, cancel := p.callContext(ctx)
	defer cancel()

	resp, err := p.validator.Generate(callCtx, validatorSystem(p.schema), question)
	if err != nil {
		p.logger.Warn("validation call failed, treating question as irrelevant", zap.Error(err))
		return false
	}

	return strings.EqualFold(strings.TrimSpace(resp), "VALID")
}

// generateSQL asks the generator for a statement and runs the raw
// response through the extractor. On extraction failure the raw response
// comes back as fallback so the caller can surface it unmodified; on
// capability failure the fallback embeds the failure description.
func (p *Pipeline) generateSQL(ctx context.Context, question string) (string, string) {
	callCtx, cancel := p.callContext(ctx)
	defer cancel()

	resp, err := p.generator.Generate(callCtx, generatorSystem(p.schema), generatePrompt(question, p.schema))
	if err != nil {
		return "", fmt.Sprintf("SQL generation failed: %v", err)
	}

	statement, ok := sqlutil.Extract(resp)
	if !ok {
		return "", resp
	}
	return statement, ""
}

// execute runs the extracted statement verbatim and folds the outcome
// into the three-shape Result.
func (p *Pipeline) execute(ctx context.Context, statement string) *Result {
	callCtx, cancel := p.callContext(ctx)
	defer cancel()

	qr, err := p.executor.ExecuteQuery(callCtx, statement)
	if err != nil {
		p.logger.Warn("statement execution failed", zap.Error(err))
		return resultFromError(err)
	}
	return resultFromQuery(qr)
}

// summarize turns the rendered result into prose. Execution errors are
// rendered and summarized like any other result. This stage never aborts
// the pipeline: a capability failure becomes an error-description string.
func (p *Pipeline) summarize(ctx context.Context, question string, result *Result) string {
	callCtx, cancel := p.callContext(ctx)
	defer cancel()

	resp, err := p.summarizer.Generate(callCtx, summarizerSystem(p.schema), summaryPrompt(question, result.Render()))
	if err != nil {
		return fmt.Sprintf("Summarization error: %v", err)
	}
	return strings.TrimSpace(resp)
}

func (p *Pipeline) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.requestTimeout > 0 {
		return context.WithTimeout(ctx, p.requestTimeout)
	}
	return context.WithCancel(ctx)
}
