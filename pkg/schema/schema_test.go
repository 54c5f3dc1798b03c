package schema

import (
	"strings"
	"testing"
)

func TestDescribe_ContainsAllTables(t *testing.T) {
	desc := Describe()

	for _, table := range []string{"airports", "flights", "passengers", "bookings"} {
		if !strings.Contains(desc, table) {
			t.Errorf("descriptor missing table %q", table)
		}
	}

	for _, fk := range []string{
		"ForeignKey -> airports.airport_code",
		"ForeignKey -> passengers.passenger_id",
		"ForeignKey -> flights.flight_id",
	} {
		if !strings.Contains(desc, fk) {
			t.Errorf("descriptor missing relationship %q", fk)
		}
	}
}

func TestDescribe_Stable(t *testing.T) {
	if Describe() != Describe() {
		t.Error("descriptor must be immutable")
	}
}

func TestTables_Shape(t *testing.T) {
	tbls := Tables()
	if len(tbls) != 4 {
		t.Fatalf("expected 4 tables, got %d", len(tbls))
	}

	for _, table := range tbls {
		pks := 0
		for _, col := range table.Columns {
			if col.PrimaryKey {
				pks++
			}
		}
		if pks != 1 {
			t.Errorf("table %s: expected exactly one primary key, got %d", table.Name, pks)
		}
	}
}
