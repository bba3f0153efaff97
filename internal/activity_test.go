package internal

import (
	"testing"
	"time"
)

func TestDayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want Day
	}{
		{"epoch", time.Unix(0, 0).UTC(), 0},
		{"end of epoch day", time.Unix(86399, 0).UTC(), 0},
		{"next day", time.Unix(86400, 0).UTC(), 1},
		{"before epoch", time.Unix(-1, 0).UTC(), -1},
		{"tz normalized", time.Date(2006, 1, 3, 0, 30, 0, 0, time.FixedZone("", 3600)), DayOf(time.Date(2006, 1, 2, 23, 30, 0, 0, time.UTC))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayOf(tt.in); got != tt.want {
				t.Errorf("DayOf(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestComputeActivity_TotalsAndShape(t *testing.T) {
	now := time.Date(2006, 1, 10, 0, 0, 0, 0, time.UTC)
	records := []MessageRecord{
		CreateTestRecord("m1", "alice", 0, ""),
		CreateTestRecord("m2", "bob", 1, ""),
		CreateTestRecord("m3", "alice", 25, ""),  // next day
		CreateTestRecord("m4", "alice", 240, ""), // well past now: excluded
	}
	records[3].Date = now.Add(time.Hour)

	m := computeActivity(records, nil, now)

	if m.Total() != 3 {
		t.Errorf("Total() = %d, want 3 (future record excluded)", m.Total())
	}
	if len(m.Senders) != 2 {
		t.Errorf("got %d senders, want 2", len(m.Senders))
	}
	if m.Days() != 2 {
		t.Errorf("Days() = %d, want 2", m.Days())
	}
	if got := m.SenderTotal("alice"); got != 2 {
		t.Errorf("SenderTotal(alice) = %d, want 2", got)
	}
	if got := m.SenderTotal("bob"); got != 1 {
		t.Errorf("SenderTotal(bob) = %d, want 1", got)
	}
}

func TestComputeActivity_DenseZeroFill(t *testing.T) {
	now := time.Date(2006, 2, 1, 0, 0, 0, 0, time.UTC)
	records := []MessageRecord{
		CreateTestRecord("m1", "alice", 0, ""),
		CreateTestRecord("m2", "alice", 24*5, ""), // five days later
	}

	m := computeActivity(records, nil, now)
	if m.Days() != 6 {
		t.Fatalf("Days() = %d, want 6 (dense range)", m.Days())
	}
	series := m.Series("alice")
	if len(series) != 6 {
		t.Fatalf("Series(alice) length = %d, want 6", len(series))
	}
	for d := 1; d < 5; d++ {
		if series[d] != 0 {
			t.Errorf("series[%d] = %d, want 0 (zero-filled gap)", d, series[d])
		}
	}
	if series[0] != 1 || series[5] != 1 {
		t.Errorf("series endpoints = %d, %d, want 1, 1", series[0], series[5])
	}
	if m.ActiveDays("alice") != 2 {
		t.Errorf("ActiveDays(alice) = %d, want 2", m.ActiveDays("alice"))
	}
}

func TestComputeActivity_AliasesCollapseBeforePivot(t *testing.T) {
	now := time.Date(2006, 2, 1, 0, 0, 0, 0, time.UTC)
	records := []MessageRecord{
		CreateTestRecord("m1", "Alice <alice@example.org>", 0, ""),
		CreateTestRecord("m2", "alice@example.org", 1, ""),
		CreateTestRecord("m3", "bob@example.org", 2, ""),
	}
	aliases := map[string]string{
		"Alice <alice@example.org>": "alice@example.org",
	}

	m := computeActivity(records, aliases, now)
	if len(m.Senders) != 2 {
		t.Fatalf("got %d sender columns, want 2 after alias collapse", len(m.Senders))
	}
	if got := m.SenderTotal("alice@example.org"); got != 2 {
		t.Errorf("SenderTotal(alice@example.org) = %d, want 2", got)
	}
	if m.Total() != 3 {
		t.Errorf("Total() = %d, want 3", m.Total())
	}
}

func TestComputeActivity_Empty(t *testing.T) {
	now := time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []MessageRecord{
		CreateTestRecord("m1", "alice", 24*365, ""), // entirely in the future
	}
	m := computeActivity(records, nil, now)
	if m.Total() != 0 || m.Days() != 0 {
		t.Errorf("empty matrix expected, got total=%d days=%d", m.Total(), m.Days())
	}
}

func TestActivityMatrix_CountBounds(t *testing.T) {
	now := time.Date(2006, 2, 1, 0, 0, 0, 0, time.UTC)
	records := []MessageRecord{CreateTestRecord("m1", "alice", 0, "")}
	m := computeActivity(records, nil, now)

	d := DayOf(records[0].Date)
	if m.Count("alice", d) != 1 {
		t.Errorf("Count(alice, %v) = %d, want 1", d, m.Count("alice", d))
	}
	if m.Count("alice", d+10) != 0 {
		t.Error("out-of-range day should count 0")
	}
	if m.Count("nobody", d) != 0 {
		t.Error("unknown sender should count 0")
	}
}

func TestArchive_ActivitySumsToDatedRecords(t *testing.T) {
	archive := CreateTestArchive(CreateTestThreadRows())
	m := archive.Activity()
	if m.Total() != archive.Len() {
		t.Errorf("activity total = %d, want %d", m.Total(), archive.Len())
	}
}

func TestArchive_ActivityCached(t *testing.T) {
	archive := CreateTestArchive(CreateTestThreadRows())
	if archive.Activity() != archive.Activity() {
		t.Error("Activity() should return the memoized matrix")
	}
}
