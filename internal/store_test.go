package internal

import (
	"path/filepath"
	"testing"
	"time"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	rows := CreateTestThreadRows()
	rows[0].Body = "hello\n--\nfooter"
	rows[1].References = "m1 m0"
	archive := CreateTestArchive(rows)

	s := createTestStore(t)
	if err := s.SaveArchive(archive); err != nil {
		t.Fatalf("SaveArchive() error = %v", err)
	}

	loaded, err := s.LoadArchive()
	if err != nil {
		t.Fatalf("LoadArchive() error = %v", err)
	}
	if loaded.Len() != archive.Len() {
		t.Fatalf("loaded %d records, want %d", loaded.Len(), archive.Len())
	}

	for i, want := range archive.Records() {
		got := loaded.Records()[i]
		if got.ID != want.ID || got.Sender != want.Sender || got.InReplyTo != want.InReplyTo || got.Body != want.Body {
			t.Errorf("record %d = %+v, want %+v", i, got, want)
		}
		if !got.Date.Equal(want.Date) {
			t.Errorf("record %d date = %v, want %v", i, got.Date, want.Date)
		}
		if len(got.References) != len(want.References) {
			t.Errorf("record %d references = %v, want %v", i, got.References, want.References)
		}
	}
}

func TestStore_SaveReplacesPrevious(t *testing.T) {
	s := createTestStore(t)

	big := CreateTestArchive(CreateTestThreadRows())
	if err := s.SaveArchive(big); err != nil {
		t.Fatalf("SaveArchive() error = %v", err)
	}

	small := CreateTestArchive([]RawMessage{
		CreateTestRawMessage("only", "alice@example.org", "Mon, 02 Jan 2006 10:00:00 +0000", "None"),
	})
	if err := s.SaveArchive(small); err != nil {
		t.Fatalf("SaveArchive() error = %v", err)
	}

	loaded, err := s.LoadArchive()
	if err != nil {
		t.Fatalf("LoadArchive() error = %v", err)
	}
	if loaded.Len() != 1 {
		t.Errorf("loaded %d records, want 1 (save replaces contents)", loaded.Len())
	}
	if _, ok := loaded.Record("only"); !ok {
		t.Error("replacement archive missing its record")
	}
}

func TestStore_LoadPreservesOrder(t *testing.T) {
	rows := []RawMessage{
		CreateTestRawMessage("late", "a@example.org", "Mon, 02 Jan 2006 12:00:00 +0000", "None"),
		CreateTestRawMessage("early", "b@example.org", "Mon, 02 Jan 2006 10:00:00 +0000", "None"),
	}
	archive := CreateTestArchive(rows)

	s := createTestStore(t)
	if err := s.SaveArchive(archive); err != nil {
		t.Fatalf("SaveArchive() error = %v", err)
	}
	loaded, err := s.LoadArchive()
	if err != nil {
		t.Fatalf("LoadArchive() error = %v", err)
	}

	records := loaded.Records()
	if records[0].ID != "early" || records[1].ID != "late" {
		t.Errorf("loaded order = %s, %s; want early, late", records[0].ID, records[1].ID)
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	s := createTestStore(t)
	if _, err := s.LoadArchive(); err == nil {
		t.Error("LoadArchive() on an empty store should fail")
	}
}

func TestStore_DatesStoredUTC(t *testing.T) {
	rows := []RawMessage{
		CreateTestRawMessage("m1", "a@example.org", "Mon, 02 Jan 2006 10:00:00 +0500", "None"),
	}
	archive := CreateTestArchive(rows)

	s := createTestStore(t)
	if err := s.SaveArchive(archive); err != nil {
		t.Fatalf("SaveArchive() error = %v", err)
	}
	loaded, err := s.LoadArchive()
	if err != nil {
		t.Fatalf("LoadArchive() error = %v", err)
	}

	want := time.Date(2006, 1, 2, 5, 0, 0, 0, time.UTC)
	got := loaded.Records()[0].Date
	if !got.Equal(want) {
		t.Errorf("loaded date = %v, want %v", got, want)
	}
}
