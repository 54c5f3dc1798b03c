package cmd

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aeroquery/aeroquery/pkg/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a small sample dataset into the flight schema",
	Long:  `Applies pending migrations and inserts sample airports, flights, passengers and bookings so the pipeline has data to answer about. Existing rows are left untouched.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx := cmd.Context()
	db, err := connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.RunMigrations(db, logger); err != nil {
		return err
	}

	if err := seedSampleData(ctx, db); err != nil {
		return fmt.Errorf("seed sample data: %w", err)
	}

	pterm.Success.Println("Sample data loaded.")
	return nil
}

func seedSampleData(ctx context.Context, db *database.DB) error {
	batch := &pgx.Batch{}

	airports := [][]any{
		{"JFK", "New York", "USA", "John F. Kennedy International"},
		{"LAX", "Los Angeles", "USA", "Los Angeles International"},
		{"SFO", "San Francisco", "USA", "San Francisco International"},
		{"LHR", "London", "UK", "Heathrow"},
		{"CDG", "Paris", "France", "Charles de Gaulle"},
		{"NRT", "Tokyo", "Japan", "Narita International"},
	}
	for _, a := range airports {
		batch.Queue(`INSERT INTO airports (airport_code, city, country, name)
			VALUES ($1, $2, $3, $4) ON CONFLICT (airport_code) DO NOTHING`, a...)
	}

	flights := [][]any{
		{1, "Delta", "JFK", "LAX", "2026-09-01 08:00:00+00", "2026-09-01 11:10:00+00", 289.00, 42},
		{2, "JetBlue", "JFK", "SFO", "2026-09-01 18:45:00+00", "2026-09-01 22:20:00+00", 324.50, 18},
		{3, "United", "SFO", "NRT", "2026-09-02 10:30:00+00", "2026-09-03 14:05:00+00", 812.00, 7},
		{4, "British Airways", "LHR", "JFK", "2026-09-02 09:15:00+00", "2026-09-02 12:00:00+00", 540.25, 55},
		{5, "Air France", "CDG", "NRT", "2026-09-03 13:20:00+00", "2026-09-04 08:45:00+00", 765.00, 23},
		{6, "Delta", "LAX", "JFK", "2026-09-03 22:05:00+00", "2026-09-04 06:15:00+00", 301.75, 31},
		{7, "JetBlue", "JFK", "LHR", "2026-09-04 19:30:00+00", "2026-09-05 07:25:00+00", 488.00, 12},
		{8, "United", "SFO", "LAX", "2026-09-04 07:00:00+00", "2026-09-04 08:25:00+00", 99.99, 64},
	}
	for _, f := range flights {
		batch.Queue(`INSERT INTO flights (flight_id, airline, source, destination, departure_time, arrival_time, price, seats_available)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (flight_id) DO NOTHING`, f...)
	}

	passengers := [][]any{
		{1, "Alice Nguyen", "alice.nguyen@example.com", "+1-212-555-0117"},
		{2, "Ben Okafor", "ben.okafor@example.com", "+1-310-555-0184"},
		{3, "Chloe Martin", "chloe.martin@example.com", "+44-20-7946-0958"},
		{4, "Daiki Sato", "daiki.sato@example.com", "+81-3-5555-0123"},
	}
	for _, p := range passengers {
		batch.Queue(`INSERT INTO passengers (passenger_id, name, email, phone)
			VALUES ($1, $2, $3, $4) ON CONFLICT (passenger_id) DO NOTHING`, p...)
	}

	bookings := [][]any{
		{1, 1, 2, "confirmed"},
		{2, 2, 1, "confirmed"},
		{3, 3, 4, "cancelled"},
		{4, 4, 3, "confirmed"},
		{5, 1, 7, "pending"},
	}
	for _, b := range bookings {
		batch.Queue(`INSERT INTO bookings (booking_id, passenger_id, flight_id, status)
			VALUES ($1, $2, $3, $4) ON CONFLICT (booking_id) DO NOTHING`, b...)
	}

	// Keep the sequences ahead of the explicit IDs above.
	for _, stmt := range []string{
		`SELECT setval(pg_get_serial_sequence('flights', 'flight_id'), (SELECT max(flight_id) FROM flights))`,
		`SELECT setval(pg_get_serial_sequence('passengers', 'passenger_id'), (SELECT max(passenger_id) FROM passengers))`,
		`SELECT setval(pg_get_serial_sequence('bookings', 'booking_id'), (SELECT max(booking_id) FROM bookings))`,
	} {
		batch.Queue(stmt)
	}

	results := db.SendBatch(ctx, batch)
	defer results.Close() //nolint:errcheck

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch statement %d: %w", i, err)
		}
	}
	return nil
}
