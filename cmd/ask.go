package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aeroquery/aeroquery/pkg/database"
	"github.com/aeroquery/aeroquery/pkg/llm"
	"github.com/aeroquery/aeroquery/pkg/pipeline"
	"github.com/aeroquery/aeroquery/pkg/schema"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a natural-language question about the flight data",
	Long:  `Runs the four-stage pipeline: validate the question against the schema, generate SQL, execute it, and summarize the result. With no arguments the question is read interactively.`,
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		question, err = pterm.DefaultInteractiveTextInput.Show("Enter your question")
		if err != nil {
			return fmt.Errorf("read question: %w", err)
		}
		question = strings.TrimSpace(question)
	}
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	ctx := cmd.Context()
	db, err := connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	// Released on every exit path, whichever terminal state is reached.
	defer db.Close()

	agents, err := llm.NewAgents(&cfg.AI, logger)
	if err != nil {
		return fmt.Errorf("configure agents: %w", err)
	}

	p := pipeline.New(agents, database.NewExecutor(db, logger), schema.Describe(), logger,
		pipeline.WithRequestTimeout(time.Duration(cfg.AI.RequestTimeoutSeconds)*time.Second))

	outcome := p.Run(ctx, question)
	printOutcome(outcome, cfg.Query.RowLimit)
	return nil
}

func printOutcome(outcome *pipeline.Outcome, rowLimit int) {
	switch outcome.Status {
	case pipeline.StatusRejected:
		pterm.Warning.Println("Your question is not related to the flight booking database.")

	case pipeline.StatusNoSQL:
		pterm.Warning.Println("Could not extract SQL from the model response.")
		if outcome.Fallback != "" {
			pterm.DefaultSection.Println("Model Response")
			pterm.Println(outcome.Fallback)
		}

	case pipeline.StatusCompleted:
		pterm.DefaultSection.Println("Generated SQL")
		pterm.Println(outcome.SQL)

		pterm.DefaultSection.Println("Query Results")
		printResult(outcome.Result, rowLimit)

		pterm.DefaultSection.Println("Summary")
		pterm.Println(outcome.Summary)
	}
}

func printResult(result *pipeline.Result, rowLimit int) {
	if result.Kind != pipeline.ResultRows {
		pterm.Println(result.Render())
		return
	}

	rows := result.Rows
	truncated := false
	if rowLimit > 0 && len(rows) > rowLimit {
		rows = rows[:rowLimit]
		truncated = true
	}

	data := pterm.TableData{result.Columns}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = cellString(v)
		}
		data = append(data, cells)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Println(result.Render())
	}
	if truncated {
		pterm.Printf("... showing first %d of %d rows\n", rowLimit, result.RowCount())
	}
}

func cellString(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
