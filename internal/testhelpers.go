package internal

import (
	"fmt"
	"time"
)

// CreateTestRawMessage builds one raw row. Pass "None" or "" for
// inReplyTo to mark a thread start.
func CreateTestRawMessage(id, from, date, inReplyTo string) RawMessage {
	return RawMessage{
		MessageID: id,
		From:      from,
		Date:      date,
		InReplyTo: inReplyTo,
	}
}

// CreateTestThreadRows returns three messages forming two threads: m1 with
// reply m2, and m3 replying to the never-seen m5.
func CreateTestThreadRows() []RawMessage {
	return []RawMessage{
		CreateTestRawMessage("m1", "alice@example.org", "Mon, 02 Jan 2006 10:00:00 +0000", "None"),
		CreateTestRawMessage("m2", "bob@example.org", "Mon, 02 Jan 2006 10:05:00 +0000", "m1"),
		CreateTestRawMessage("m3", "carol@example.org", "Mon, 02 Jan 2006 10:10:00 +0000", "m5"),
	}
}

// CreateTestRecord builds one canonical record dated the given number of
// hours after a fixed base instant.
func CreateTestRecord(id, sender string, hours int, inReplyTo string) MessageRecord {
	base := time.Date(2006, 1, 2, 10, 0, 0, 0, time.UTC)
	return MessageRecord{
		ID:        id,
		Sender:    sender,
		Date:      base.Add(time.Duration(hours) * time.Hour),
		InReplyTo: inReplyTo,
	}
}

// CreateTestArchive normalizes the rows and fails loudly on error; for
// tests that exercise the happy path.
func CreateTestArchive(rows []RawMessage) *Archive {
	a, err := NewArchive(rows)
	if err != nil {
		panic(fmt.Sprintf("test archive construction failed: %v", err))
	}
	return a
}
