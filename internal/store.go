package internal

import (
	"database/sql"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists one archive's canonical dataset in a SQLite file so
// expensive ingests run once. The store holds exactly one archive; saving
// replaces the previous contents.
type Store struct {
	path string
	db   *sql.DB
}

const storeSchema = `
CREATE TABLE IF NOT EXISTS messages (
	position    INTEGER PRIMARY KEY,
	message_id  TEXT NOT NULL UNIQUE,
	sender      TEXT NOT NULL,
	date        TEXT NOT NULL,
	in_reply_to TEXT NOT NULL DEFAULT '',
	refs        TEXT NOT NULL DEFAULT '',
	body        TEXT NOT NULL DEFAULT ''
);`

// OpenStore opens (creating if needed) an archive database.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StoreError{Path: path, Op: "open", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Path: path, Op: "open", Err: err}
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, &StoreError{Path: path, Op: "init", Err: err}
	}
	return &Store{path: path, db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveArchive replaces the stored dataset with the archive's canonical
// records. Position preserves the canonical chronological order.
func (s *Store) SaveArchive(a *Archive) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &StoreError{Path: s.path, Op: "save", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM messages"); err != nil {
		return &StoreError{Path: s.path, Op: "save", Err: err}
	}

	stmt, err := tx.Prepare(
		"INSERT INTO messages (position, message_id, sender, date, in_reply_to, refs, body) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return &StoreError{Path: s.path, Op: "save", Err: err}
	}
	defer stmt.Close()

	for i, rec := range a.Records() {
		_, err := stmt.Exec(
			i,
			rec.ID,
			rec.Sender,
			rec.Date.UTC().Format(time.RFC3339Nano),
			rec.InReplyTo,
			strings.Join(rec.References, " "),
			rec.Body,
		)
		if err != nil {
			return &StoreError{Path: s.path, Op: "save", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StoreError{Path: s.path, Op: "save", Err: err}
	}
	LogInfo("Saved %d message(s) to %s", a.Len(), s.path)
	return nil
}

// LoadArchive restores the stored archive.
func (s *Store) LoadArchive() (*Archive, error) {
	rows, err := s.db.Query(
		"SELECT message_id, sender, date, in_reply_to, refs, body FROM messages ORDER BY position")
	if err != nil {
		return nil, &StoreError{Path: s.path, Op: "load", Err: err}
	}
	defer rows.Close()

	var records []MessageRecord
	for rows.Next() {
		var rec MessageRecord
		var date, refs string
		if err := rows.Scan(&rec.ID, &rec.Sender, &date, &rec.InReplyTo, &refs, &rec.Body); err != nil {
			return nil, &StoreError{Path: s.path, Op: "load", Err: err}
		}
		t, err := time.Parse(time.RFC3339Nano, date)
		if err != nil {
			return nil, &StoreError{Path: s.path, Op: "load", Err: err}
		}
		rec.Date = t.UTC()
		rec.References = ParseReferences(refs)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Path: s.path, Op: "load", Err: err}
	}

	return NewArchiveFromRecords(records)
}
