package routes

import (
	"strings"
	"testing"
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("opening dry-run db: %v", err)
	}
	return db
}

func TestApplyCreatedAtRange(t *testing.T) {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	var bookings []models.Booking
	stmt := applyCreatedAtRange(dryRunDB(t).Model(&models.Booking{}), &start, &end).
		Find(&bookings).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "created_at >= ?") {
		t.Fatalf("missing lower bound in %q", sql)
	}
	if !strings.Contains(sql, "created_at < ?") || strings.Contains(sql, "created_at <= ?") {
		t.Fatalf("upper bound must be half-open, got %q", sql)
	}

	// endDate is inclusive: the bound variable is midnight of the next day.
	wantBound := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)
	var gotBound time.Time
	for _, v := range stmt.Vars {
		if ts, ok := v.(time.Time); ok {
			gotBound = ts
		}
	}
	if !gotBound.Equal(wantBound) {
		t.Fatalf("upper bound = %v, want %v", gotBound, wantBound)
	}
}

func TestApplyCreatedAtRangeNoDates(t *testing.T) {
	var bookings []models.Booking
	stmt := applyCreatedAtRange(dryRunDB(t).Model(&models.Booking{}), nil, nil).
		Find(&bookings).Statement

	if strings.Contains(stmt.SQL.String(), "created_at") {
		t.Fatalf("expected no created_at filter, got %q", stmt.SQL.String())
	}
}
