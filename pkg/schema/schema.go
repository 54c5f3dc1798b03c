// Package schema holds the static description of the flight booking
// database. The descriptor text is the single ground truth injected into
// every agent prompt; it is created once and never mutated.
package schema

import (
	"fmt"
	"strings"
)

// Column describes one column of the flight booking schema.
type Column struct {
	Name       string
	Type       string
	PrimaryKey bool
	References string // "table.column" for foreign keys, empty otherwise
}

// Table describes one table of the flight booking schema.
type Table struct {
	Name    string
	Columns []Column
}

var tables = []Table{
	{
		Name: "airports",
		Columns: []Column{
			{Name: "airport_code", Type: "String", PrimaryKey: true},
			{Name: "city", Type: "String"},
			{Name: "country", Type: "String"},
			{Name: "name", Type: "String"},
		},
	},
	{
		Name: "flights",
		Columns: []Column{
			{Name: "flight_id", Type: "Integer", PrimaryKey: true},
			{Name: "airline", Type: "String"},
			{Name: "source", Type: "String", References: "airports.airport_code"},
			{Name: "destination", Type: "String", References: "airports.airport_code"},
			{Name: "departure_time", Type: "DateTime"},
			{Name: "arrival_time", Type: "DateTime"},
			{Name: "price", Type: "Float"},
			{Name: "seats_available", Type: "Integer"},
		},
	},
	{
		Name: "passengers",
		Columns: []Column{
			{Name: "passenger_id", Type: "Integer", PrimaryKey: true},
			{Name: "name", Type: "String"},
			{Name: "email", Type: "String"},
			{Name: "phone", Type: "String"},
		},
	},
	{
		Name: "bookings",
		Columns: []Column{
			{Name: "booking_id", Type: "Integer", PrimaryKey: true},
			{Name: "passenger_id", Type: "Integer", References: "passengers.passenger_id"},
			{Name: "flight_id", Type: "Integer", References: "flights.flight_id"},
			{Name: "booking_date", Type: "DateTime, default current time"},
			{Name: "status", Type: "String"},
		},
	},
}

var descriptor = render()

// Describe returns the textual schema description shared by all three
// agents.
func Describe() string {
	return descriptor
}

// Tables returns the typed schema metadata.
func Tables() []Table {
	return tables
}

func render() string {
	var sb strings.Builder
	sb.WriteString("The database consists of the following tables:\n\n")

	for i, table := range tables {
		sb.WriteString(fmt.Sprintf("%d. **%s**:\n", i+1, table.Name))
		for _, col := range table.Columns {
			var attrs []string
			if col.PrimaryKey {
				attrs = append(attrs, "Primary Key")
			}
			if col.References != "" {
				attrs = append(attrs, "ForeignKey -> "+col.References)
			}
			attrs = append(attrs, col.Type)
			sb.WriteString(fmt.Sprintf("    - %s (%s)\n", col.Name, strings.Join(attrs, ", ")))
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}
