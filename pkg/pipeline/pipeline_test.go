package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aeroquery/aeroquery/pkg/database"
	"github.com/aeroquery/aeroquery/pkg/llm"
	"github.com/aeroquery/aeroquery/pkg/schema"
)

// fakeExecutor is a configurable in-memory QueryExecutor.
type fakeExecutor struct {
	result  *database.QueryResult
	err     error
	calls   int
	lastSQL string
}

func (f *fakeExecutor) ExecuteQuery(ctx context.Context, sqlQuery string) (*database.QueryResult, error) {
	f.calls++
	f.lastSQL = sqlQuery
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func fixedResponse(text string) func(context.Context, string, string) (string, error) {
	return func(context.Context, string, string) (string, error) {
		return text, nil
	}
}

func newTestPipeline(validator, generator, summarizer *llm.MockClient, executor QueryExecutor) *Pipeline {
	agents := &llm.AgentSet{
		Validator:  validator,
		Generator:  generator,
		Summarizer: summarizer,
	}
	return New(agents, executor, schema.Describe(), zap.NewNop())
}

// An irrelevant question halts the pipeline before any generation call.
func TestRun_IrrelevantQuestionRejected(t *testing.T) {
	validator := llm.NewMockClient()
	validator.GenerateFunc = fixedResponse("INVALID")
	generator := llm.NewMockClient()
	summarizer := llm.NewMockClient()
	executor := &fakeExecutor{}

	p := newTestPipeline(validator, generator, summarizer, executor)
	outcome := p.Run(context.Background(), "Show me all Boeing planes")

	assert.Equal(t, StatusRejected, outcome.Status)
	assert.Equal(t, 1, validator.GenerateCalls)
	assert.Equal(t, 0, generator.GenerateCalls, "no generation call after rejection")
	assert.Equal(t, 0, summarizer.GenerateCalls)
	assert.Equal(t, 0, executor.calls)
}

// The happy path: fenced SQL is extracted exactly, executed, and the row
// results are summarized.
func TestRun_HappyPath(t *testing.T) {
	const wantSQL = "SELECT * FROM flights WHERE source='JFK' AND departure_time > '18:00';"

	validator := llm.NewMockClient()
	validator.GenerateFunc = fixedResponse("VALID")
	generator := llm.NewMockClient()
	generator.GenerateFunc = fixedResponse("```sql\n" + wantSQL + "\n``` Explanation: evening departures from JFK.")
	summarizer := llm.NewMockClient()
	summarizer.GenerateFunc = fixedResponse("  Two flights leave JFK after 6pm.  ")
	executor := &fakeExecutor{
		result: &database.QueryResult{
			Columns: []string{"flight_id", "airline"},
			Rows:    [][]any{{1, "Delta"}, {2, "JetBlue"}},
		},
	}

	p := newTestPipeline(validator, generator, summarizer, executor)
	outcome := p.Run(context.Background(), "List all flights departing from JFK after 6pm")

	require.Equal(t, StatusCompleted, outcome.Status)
	assert.Equal(t, wantSQL, outcome.SQL)
	assert.Equal(t, wantSQL, executor.lastSQL, "extracted statement executed verbatim")
	require.NotNil(t, outcome.Result)
	assert.Equal(t, ResultRows, outcome.Result.Kind)
	assert.Equal(t, 2, outcome.Result.RowCount())
	assert.Equal(t, "Two flights leave JFK after 6pm.", outcome.Summary, "summary is trimmed")
}

// Prose with no recoverable SQL halts the pipeline, surfacing the raw
// generation text verbatim.
func TestRun_ExtractionFailureSurfacesRawResponse(t *testing.T) {
	const prose = "I'm not able to write a query for that, sorry."

	validator := llm.NewMockClient()
	validator.GenerateFunc = fixedResponse("VALID")
	generator := llm.NewMockClient()
	generator.GenerateFunc = fixedResponse(prose)
	summarizer := llm.NewMockClient()
	executor := &fakeExecutor{}

	p := newTestPipeline(validator, generator, summarizer, executor)
	outcome := p.Run(context.Background(), "What is the cheapest flight?")

	assert.Equal(t, StatusNoSQL, outcome.Status)
	assert.Equal(t, prose, outcome.Fallback)
	assert.Equal(t, 0, executor.calls, "nothing executed without SQL")
	assert.Equal(t, 0, summarizer.GenerateCalls)
}

// Execution errors are converted to data and still summarized.
func TestRun_ExecutionErrorStillSummarized(t *testing.T) {
	validator := llm.NewMockClient()
	validator.GenerateFunc = fixedResponse("VALID")
	generator := llm.NewMockClient()
	generator.GenerateFunc = fixedResponse("```sql\nSELECT nonexistent FROM flights\n```")
	summarizer := llm.NewMockClient()
	summarizer.GenerateFunc = fixedResponse("The query referenced a column that does not exist.")
	executor := &fakeExecutor{err: errors.New(`column "nonexistent" does not exist`)}

	p := newTestPipeline(validator, generator, summarizer, executor)
	outcome := p.Run(context.Background(), "Show the nonexistent column")

	require.Equal(t, StatusCompleted, outcome.Status)
	require.NotNil(t, outcome.Result)
	assert.Equal(t, ResultError, outcome.Result.Kind)
	assert.Contains(t, outcome.Result.Err, "SQL execution error")
	assert.Contains(t, outcome.Result.Err, "nonexistent")

	require.Equal(t, 1, summarizer.GenerateCalls, "summarization still runs on error results")
	assert.Contains(t, summarizer.Prompts[0], "nonexistent", "error text forwarded to summarizer as-is")
	assert.Equal(t, "The query referenced a column that does not exist.", outcome.Summary)
}

// A generation capability failure becomes a fallback message, not a crash.
func TestRun_GenerationCallFailure(t *testing.T) {
	validator := llm.NewMockClient()
	validator.GenerateFunc = fixedResponse("VALID")
	generator := llm.NewMockClient()
	generator.GenerateFunc = func(context.Context, string, string) (string, error) {
		return "", errors.New("connection refused")
	}
	summarizer := llm.NewMockClient()
	executor := &fakeExecutor{}

	p := newTestPipeline(validator, generator, summarizer, executor)
	outcome := p.Run(context.Background(), "List all airlines")

	assert.Equal(t, StatusNoSQL, outcome.Status)
	assert.Contains(t, outcome.Fallback, "SQL generation failed")
	assert.Contains(t, outcome.Fallback, "connection refused")
}

// Zero rows is a distinct, successful shape.
func TestRun_EmptyResult(t *testing.T) {
	validator := llm.NewMockClient()
	validator.GenerateFunc = fixedResponse("VALID")
	generator := llm.NewMockClient()
	generator.GenerateFunc = fixedResponse("```sql\nSELECT * FROM bookings WHERE status = 'waitlisted'\n```")
	summarizer := llm.NewMockClient()
	summarizer.GenerateFunc = fixedResponse("No bookings are waitlisted.")
	executor := &fakeExecutor{result: &database.QueryResult{Columns: []string{"booking_id"}}}

	p := newTestPipeline(validator, generator, summarizer, executor)
	outcome := p.Run(context.Background(), "Which bookings are waitlisted?")

	require.Equal(t, StatusCompleted, outcome.Status)
	assert.Equal(t, ResultEmpty, outcome.Result.Kind)
	assert.Contains(t, summarizer.Prompts[0], "returned no rows")
}
