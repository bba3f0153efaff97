package internal

import (
	"net/mail"
	"strings"
	"time"
)

// noParentSentinel is the literal value stringified archives use for a
// message that starts a thread. Producers translate it to an empty
// InReplyTo at the schema boundary; core logic never sees it.
const noParentSentinel = "None"

// RawMessage is one row as delivered by a producer (mbox parser, LISTSERV
// parser, CSV loader). All fields are strings; Date may be absent or
// garbled, InReplyTo may carry the "None" sentinel, References is a
// whitespace-separated id list.
type RawMessage struct {
	MessageID  string `json:"message_id"`
	From       string `json:"from"`
	Date       string `json:"date,omitempty"`
	InReplyTo  string `json:"in_reply_to,omitempty"`
	References string `json:"references,omitempty"`
	Body       string `json:"body,omitempty"`
}

// Validate checks the fields the schema cannot do without.
func (r RawMessage) Validate() error {
	if strings.TrimSpace(r.MessageID) == "" {
		return &SchemaError{Field: "Message-ID"}
	}
	if strings.TrimSpace(r.From) == "" {
		return &SchemaError{Field: "From", ID: r.MessageID}
	}
	return nil
}

// replyTo maps the raw In-Reply-To value to the record form: empty string
// means the message does not reply to anything.
func (r RawMessage) replyTo() string {
	v := strings.TrimSpace(r.InReplyTo)
	if v == noParentSentinel {
		return ""
	}
	return v
}

// MessageRecord is one validated, fixed-shape email record. After
// normalization Date is a UTC instant and ID is unique within the archive.
type MessageRecord struct {
	ID         string
	Sender     string
	Date       time.Time
	InReplyTo  string // empty = no parent
	References []string
	Body       string
}

// HasParent reports whether the record replies to another message.
func (m MessageRecord) HasParent() bool {
	return m.InReplyTo != ""
}

// ParseReferences splits a raw References header into individual ids.
func ParseReferences(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

type dateStatus int

const (
	dateValid dateStatus = iota
	dateInvalid
	dateNaive // parseable, but carries no timezone
)

// dateLayouts are tried after RFC 5322 parsing fails. Layouts without a
// zone mark the row as naive rather than valid.
var dateLayouts = []struct {
	layout string
	naive  bool
}{
	{time.RFC3339, false},
	{"2006-01-02 15:04:05 -0700", false},
	{"2006-01-02 15:04:05Z07:00", false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05", true},
	{"Mon Jan 2 15:04:05 2006", true},
	{"2006-01-02", true},
}

// coerceDate parses a producer date string into a UTC instant.
func coerceDate(s string) (time.Time, dateStatus) {
	s = strings.TrimSpace(s)
	if s == "" || s == noParentSentinel {
		return time.Time{}, dateInvalid
	}
	if t, err := mail.ParseDate(s); err == nil {
		return t.UTC(), dateValid
	}
	for _, l := range dateLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}
		if l.naive {
			return time.Time{}, dateNaive
		}
		return t.UTC(), dateValid
	}
	return time.Time{}, dateInvalid
}
