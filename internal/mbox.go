package internal

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jhillyerd/enmime"
)

// ReadMbox parses a GNU-Mailman style mbox file into raw rows. Messages
// that fail MIME parsing are logged and skipped; the producer contract
// tolerates per-message defects the same way normalization does.
func ReadMbox(path string) ([]RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	var rows []RawMessage
	var current bytes.Buffer
	flush := func() {
		if current.Len() == 0 {
			return
		}
		if row, ok := parseMboxMessage(current.Bytes(), path); ok {
			rows = append(rows, row)
		}
		current.Reset()
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "From ") {
			flush()
			continue // envelope separator, not part of the message
		}
		// Reverse the classic mbox body escaping.
		if strings.HasPrefix(line, ">From ") {
			line = line[1:]
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, &SourceError{Path: path, Op: "read", Err: err}
	}
	flush()

	LogInfo("Parsed %d message(s) from %s", len(rows), path)
	return rows, nil
}

// ReadMboxDir parses every regular file in dir as an mbox archive, in name
// order. Mailing-list archives are commonly split per month; extensions
// vary (.mbox, .txt), so no filtering is applied.
func ReadMboxDir(dir string) ([]RawMessage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &SourceError{Path: dir, Op: "open", Err: err}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var rows []RawMessage
	for _, name := range names {
		part, err := ReadMbox(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		rows = append(rows, part...)
	}
	return rows, nil
}

func parseMboxMessage(msg []byte, path string) (RawMessage, bool) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(msg))
	if err != nil {
		LogWarn("Skipping unparseable message in %s: %v", path, err)
		return RawMessage{}, false
	}
	row := RawMessage{
		MessageID:  strings.Trim(env.GetHeader("Message-Id"), "<> "),
		From:       env.GetHeader("From"),
		Date:       env.GetHeader("Date"),
		InReplyTo:  strings.Trim(env.GetHeader("In-Reply-To"), "<> "),
		References: stripAngles(env.GetHeader("References")),
		Body:       env.Text,
	}
	if row.MessageID == "" {
		LogWarn("Skipping message without Message-Id in %s", path)
		return RawMessage{}, false
	}
	return row, true
}

// stripAngles removes RFC 5322 angle brackets from each id in a References
// header so ids compare equal across headers that quote inconsistently.
func stripAngles(refs string) string {
	fields := strings.Fields(refs)
	for i, f := range fields {
		fields[i] = strings.Trim(f, "<>")
	}
	return strings.Join(fields, " ")
}
