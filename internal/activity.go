package internal

import (
	"sort"
	"time"
)

// Day is an ordinal day: the number of civil days since the Unix epoch, in
// UTC. It keeps the activity matrix index compact and comparable.
type Day int

const secondsPerDay = 86400

// DayOf returns the ordinal day containing t.
func DayOf(t time.Time) Day {
	sec := t.UTC().Unix()
	d := sec / secondsPerDay
	if sec%secondsPerDay < 0 {
		d--
	}
	return Day(d)
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

func (d Day) String() string {
	return d.Time().Format("2006-01-02")
}

// ActivityMatrix is a dense sender×day message-count table spanning
// [Start, End). Days with no traffic are zero-filled; every canonical
// record dated at or before the reference time contributes exactly one
// count.
type ActivityMatrix struct {
	Start   Day
	End     Day
	Senders []string // sorted

	counts map[string][]int // sender -> per-day counts, len == End-Start
}

// Days returns the number of days the matrix spans.
func (m *ActivityMatrix) Days() int {
	return int(m.End - m.Start)
}

// Count returns the number of messages sender posted on day d.
func (m *ActivityMatrix) Count(sender string, d Day) int {
	if d < m.Start || d >= m.End {
		return 0
	}
	row, ok := m.counts[sender]
	if !ok {
		return 0
	}
	return row[d-m.Start]
}

// Series returns sender's per-day counts over the full span. The slice is
// read-only; unknown senders yield nil.
func (m *ActivityMatrix) Series(sender string) []int {
	return m.counts[sender]
}

// SenderTotal returns the number of messages sender posted over the span.
func (m *ActivityMatrix) SenderTotal(sender string) int {
	total := 0
	for _, c := range m.counts[sender] {
		total += c
	}
	return total
}

// ActiveDays returns the number of distinct days sender posted on.
func (m *ActivityMatrix) ActiveDays(sender string) int {
	days := 0
	for _, c := range m.counts[sender] {
		if c > 0 {
			days++
		}
	}
	return days
}

// Total returns the sum of all cells.
func (m *ActivityMatrix) Total() int {
	total := 0
	for _, row := range m.counts {
		for _, c := range row {
			total += c
		}
	}
	return total
}

// computeActivity builds the matrix from canonical records. Records dated
// strictly after now are excluded as clock-skew artifacts. When aliases is
// non-nil, senders collapse to their canonical entity before the pivot, so
// applying the same mapping again cannot change the matrix shape.
func computeActivity(records []MessageRecord, aliases map[string]string, now time.Time) *ActivityMatrix {
	type cell struct {
		sender string
		day    Day
	}
	tally := make(map[cell]int)

	var minDay, maxDay Day
	first := true
	future := 0

	for _, rec := range records {
		if rec.Date.After(now) {
			future++
			continue
		}
		sender := rec.Sender
		if canonical, ok := aliases[sender]; ok {
			sender = canonical
		}
		d := DayOf(rec.Date)
		tally[cell{sender, d}]++
		if first || d < minDay {
			minDay = d
		}
		if first || d > maxDay {
			maxDay = d
		}
		first = false
	}

	if future > 0 {
		LogWarn("Excluded %d message(s) dated in the future from the activity matrix", future)
	}

	m := &ActivityMatrix{counts: make(map[string][]int)}
	if first {
		return m
	}
	m.Start = minDay
	m.End = maxDay + 1

	span := m.Days()
	for c, n := range tally {
		row, ok := m.counts[c.sender]
		if !ok {
			row = make([]int, span)
			m.counts[c.sender] = row
			m.Senders = append(m.Senders, c.sender)
		}
		row[c.day-m.Start] = n
	}
	sort.Strings(m.Senders)

	return m
}
