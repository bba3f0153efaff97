package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// NormalizeStats counts what happened to the input rows. The per-category
// drop counts are the only trace of recovered per-row defects.
type NormalizeStats struct {
	Input        int // raw rows received
	Duplicates   int // exact duplicate rows removed
	BadDate      int // rows dropped for a missing or unparseable date
	BadZone      int // rows dropped for a zone-less (naive) date
	DuplicateIDs int // rows dropped for reusing an id with different content
	Kept         int
}

// Normalize turns an arbitrary-order batch of raw rows into the canonical
// record sequence: exact duplicates removed, dateless and zone-naive rows
// dropped (and counted separately), ids unique, records sorted ascending by
// date with input order breaking ties. The input slice is not mutated.
//
// A row missing a required field fails the whole batch with a SchemaError;
// an empty result fails with a DataIntegrityError.
func Normalize(raw []RawMessage) ([]MessageRecord, *NormalizeStats, error) {
	stats := &NormalizeStats{Input: len(raw)}

	for _, r := range raw {
		if err := r.Validate(); err != nil {
			return nil, stats, err
		}
	}

	// Exact duplicates collapse on a content hash over every raw field.
	seen := make(map[string]bool, len(raw))
	seenID := make(map[string]bool, len(raw))
	records := make([]MessageRecord, 0, len(raw))

	for _, r := range raw {
		h := hashRawMessage(r)
		if seen[h] {
			stats.Duplicates++
			continue
		}
		seen[h] = true

		date, status := coerceDate(r.Date)
		switch status {
		case dateInvalid:
			stats.BadDate++
			continue
		case dateNaive:
			stats.BadZone++
			continue
		}

		id := r.MessageID
		if seenID[id] {
			stats.DuplicateIDs++
			continue
		}
		seenID[id] = true

		records = append(records, MessageRecord{
			ID:         id,
			Sender:     r.From,
			Date:       date,
			InReplyTo:  r.replyTo(),
			References: ParseReferences(r.References),
			Body:       r.Body,
		})
	}

	if stats.Duplicates > 0 {
		LogInfo("Dropped %d exact duplicate row(s)", stats.Duplicates)
	}
	if stats.BadDate > 0 {
		LogWarn("Dropped %d row(s) with missing or unparseable dates", stats.BadDate)
	}
	if stats.BadZone > 0 {
		LogWarn("Dropped %d row(s) with timezone-naive dates", stats.BadZone)
	}
	if stats.DuplicateIDs > 0 {
		LogWarn("Dropped %d row(s) with conflicting duplicate ids", stats.DuplicateIDs)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	stats.Kept = len(records)
	if len(records) == 0 {
		return nil, stats, &DataIntegrityError{
			Reason: "no valid, dated messages after normalization",
		}
	}

	return records, stats, nil
}

// hashRawMessage creates a content-based hash covering all fields of a row.
func hashRawMessage(r RawMessage) string {
	h := sha256.New()
	for _, f := range []string{r.MessageID, r.From, r.Date, r.InReplyTo, r.References, r.Body} {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
