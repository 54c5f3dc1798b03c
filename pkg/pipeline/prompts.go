package pipeline

import (
	"fmt"
	"strings"
)

// The three agents share the same schema ground truth but carry fixed,
// role-specific instruction preambles. Wording stays close to the
// validator/generator/summarizer roles the product started with.

func validatorSystem(schema string) string {
	var sb strings.Builder
	sb.WriteString("You are responsible for checking if a user's question is related to the flight booking database described below.\n\n")
	sb.WriteString("Here is the schema:\n")
	sb.WriteString(schema)
	sb.WriteString("\n\n")
	sb.WriteString("If the user's question is NOT relevant to the schema, respond with exactly: INVALID\n")
	sb.WriteString("If the question is relevant, respond with exactly: VALID")
	return sb.String()
}

func generatorSystem(schema string) string {
	var sb strings.Builder
	sb.WriteString("You generate SQL queries for the flight booking database based on natural language questions.\n\n")
	sb.WriteString("Use the following schema to generate SQL queries:\n")
	sb.WriteString(schema)
	sb.WriteString("\n\n")
	sb.WriteString("Always provide SQL in a code block using ```sql and ```. Explain briefly after the SQL.")
	return sb.String()
}

func summarizerSystem(schema string) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful assistant that summarizes SQL query results.\n\n")
	sb.WriteString("Here is the schema to help understand the query structure:\n")
	sb.WriteString(schema)
	sb.WriteString("\n\n")
	sb.WriteString("You will be given the user's original question and the results returned from the database.\n")
	sb.WriteString("Respond with a concise and informative summary in plain language.")
	return sb.String()
}

func generatePrompt(question, schema string) string {
	return fmt.Sprintf("%s\n\nSchema:\n%s", question, schema)
}

func summaryPrompt(question, renderedResult string) string {
	return fmt.Sprintf(
		"User question: %s\n\nQuery result: %s\n\nBased on the schema provided earlier, summarize this result in a helpful way.",
		question, renderedResult,
	)
}
