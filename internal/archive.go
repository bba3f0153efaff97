package internal

import "time"

// Archive owns the canonical dataset of one mailing-list corpus plus the
// structures derived from it. The derived activity matrix and thread forest
// are memoized explicitly: each is rebuilt lazily after the mutation that
// invalidates it, never by implicit attribute checks.
//
// An Archive is not safe for concurrent mutation; give each goroutine its
// own instance.
type Archive struct {
	records []MessageRecord
	byID    map[string]int
	stats   NormalizeStats

	activity *ActivityMatrix
	forest   []*Thread
	forestErr error
	built     bool

	entities map[string][]string
}

// NewArchive normalizes raw producer rows into an archive.
func NewArchive(raw []RawMessage) (*Archive, error) {
	records, stats, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	a := &Archive{records: records, stats: *stats}
	a.reindex()
	return a, nil
}

// NewArchiveFromRecords restores an archive from already-canonical records,
// as loaded from the store. Ordering and id uniqueness are re-checked so a
// tampered or stale snapshot cannot violate the invariants.
func NewArchiveFromRecords(records []MessageRecord) (*Archive, error) {
	if len(records) == 0 {
		return nil, &DataIntegrityError{Reason: "archive snapshot holds no messages"}
	}
	ids := make(map[string]bool, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			return nil, &SchemaError{Field: "Message-ID"}
		}
		if ids[rec.ID] {
			return nil, &DataIntegrityError{Reason: "duplicate id " + rec.ID + " in archive snapshot"}
		}
		ids[rec.ID] = true
		if rec.Date.IsZero() {
			return nil, &DataIntegrityError{Reason: "undated message " + rec.ID + " in archive snapshot"}
		}
		if i > 0 && rec.Date.Before(records[i-1].Date) {
			return nil, &DataIntegrityError{Reason: "archive snapshot is not sorted by date"}
		}
	}
	a := &Archive{records: records, stats: NormalizeStats{Input: len(records), Kept: len(records)}}
	a.reindex()
	return a, nil
}

func (a *Archive) reindex() {
	a.byID = make(map[string]int, len(a.records))
	for i, rec := range a.records {
		a.byID[rec.ID] = i
	}
}

// Records returns the canonical dataset in chronological order. Callers
// must treat the slice as read-only.
func (a *Archive) Records() []MessageRecord {
	return a.records
}

// Len returns the number of canonical records.
func (a *Archive) Len() int {
	return len(a.records)
}

// Record looks up one record by id.
func (a *Archive) Record(id string) (MessageRecord, bool) {
	i, ok := a.byID[id]
	if !ok {
		return MessageRecord{}, false
	}
	return a.records[i], true
}

// Stats returns the normalization counters for this archive.
func (a *Archive) Stats() NormalizeStats {
	return a.stats
}

// Span returns the dates of the earliest and latest canonical records.
func (a *Archive) Span() (time.Time, time.Time) {
	if len(a.records) == 0 {
		return time.Time{}, time.Time{}
	}
	return a.records[0].Date, a.records[len(a.records)-1].Date
}

// Bodies returns the message bodies in chronological order, for footer
// detection.
func (a *Archive) Bodies() []string {
	bodies := make([]string, len(a.records))
	for i, rec := range a.records {
		bodies[i] = rec.Body
	}
	return bodies
}

// Activity returns the sender×day activity matrix, computing it on first
// use. Rows dated in the future are excluded from the matrix.
func (a *Archive) Activity() *ActivityMatrix {
	if a.activity == nil {
		a.activity = computeActivity(a.records, nil, time.Now())
	}
	return a.activity
}

// ActivityResolved resolves sender entities over the current activity
// matrix, applies the mapping to the archive, and returns the rebuilt
// matrix together with the mapping used.
func (a *Archive) ActivityResolved() (*ActivityMatrix, map[string][]string) {
	entities := a.Entities()
	a.ResolveEntities(entities)
	return a.Activity(), entities
}

// Entities returns the sender-entity mapping for this archive, resolving it
// on first use.
func (a *Archive) Entities() map[string][]string {
	if a.entities == nil {
		a.entities = ResolveSenderEntities(a.Activity())
	}
	return a.entities
}

// ResolveEntities rewrites the Sender column in place so every alias in the
// mapping reads as its canonical entity id, then invalidates the activity
// matrix. Thread structure is keyed by message id and is unaffected.
// Applying the same mapping twice yields the same archive and matrix.
func (a *Archive) ResolveEntities(entities map[string][]string) {
	aliases := flattenEntities(entities)
	changed := false
	for i := range a.records {
		if canonical, ok := aliases[a.records[i].Sender]; ok && canonical != a.records[i].Sender {
			a.records[i].Sender = canonical
			changed = true
		}
	}
	a.entities = entities
	if changed {
		a.invalidateActivity()
	}
}

func (a *Archive) invalidateActivity() {
	a.activity = nil
}

// Threads returns the reply forest, building it on the first call. The
// forest covers every canonical record exactly once; records with
// self-referential reply headers are excluded and reported through the
// returned error.
func (a *Archive) Threads() ([]*Thread, error) {
	if !a.built {
		b := ThreadBuilder{}
		a.forest, a.forestErr = b.Build(a.records)
		a.built = true
	}
	return a.forest, a.forestErr
}

// flattenEntities inverts entity -> aliases into alias -> entity.
func flattenEntities(entities map[string][]string) map[string]string {
	aliases := make(map[string]string)
	for entity, names := range entities {
		for _, n := range names {
			aliases[n] = entity
		}
	}
	return aliases
}
