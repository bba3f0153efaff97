package internal

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// LISTSERV text archives separate messages with long ruler lines and carry
// a small header block (Date:, From:, Subject:, sometimes In-Reply-To:)
// followed by the body. They rarely carry Message-IDs, so one is
// synthesized from the date and sender.

var (
	listservRuler  = regexp.MustCompile(`^={10,}\s*$`)
	listservHeader = regexp.MustCompile(`^([A-Za-z][A-Za-z-]*):\s+(\S.*)$`)
)

// ReadListserv parses one LISTSERV-format text archive into raw rows.
func ReadListserv(path string) ([]RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &SourceError{Path: path, Op: "read", Err: err}
	}

	var rows []RawMessage
	for _, block := range splitListservBlocks(lines) {
		row, ok := parseListservBlock(block)
		if !ok {
			LogWarn("Skipping malformed LISTSERV block in %s", path)
			continue
		}
		rows = append(rows, row)
	}
	LogInfo("Parsed %d message(s) from %s", len(rows), path)
	return rows, nil
}

// ReadListservDir parses every regular file in dir as a LISTSERV archive,
// in name order.
func ReadListservDir(dir string) ([]RawMessage, error) {
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
		part, err := ReadListserv(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		rows = append(rows, part...)
	}
	return rows, nil
}

// splitListservBlocks cuts the file into per-message line blocks at ruler
// lines.
func splitListservBlocks(lines []string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range lines {
		if listservRuler.MatchString(line) {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// parseListservBlock reads the header lines at the top of a block (with
// single-line continuations) and treats the remainder as the body.
func parseListservBlock(block []string) (RawMessage, bool) {
	headers := make(map[string]string)
	bodyStart := 0
	lastKey := ""

	for i, line := range block {
		if strings.TrimSpace(line) == "" {
			bodyStart = i + 1
			break
		}
		if m := listservHeader.FindStringSubmatch(line); m != nil {
			headers[m[1]] = strings.TrimSpace(m[2])
			lastKey = m[1]
			bodyStart = i + 1
			continue
		}
		// Continuation of the previous header value.
		if lastKey != "" {
			headers[lastKey] += " " + strings.TrimSpace(line)
			bodyStart = i + 1
			continue
		}
		bodyStart = i
		break
	}

	from := headers["From"]
	date := headers["Date"]
	if from == "" || date == "" {
		return RawMessage{}, false
	}

	body := strings.TrimSpace(strings.Join(block[bodyStart:], "\n"))

	id := headers["Message-ID"]
	if id == "" {
		id = synthesizeMessageID(date, from)
	}

	return RawMessage{
		MessageID:  strings.Trim(id, "<> "),
		From:       from,
		Date:       date,
		InReplyTo:  strings.Trim(headers["In-Reply-To"], "<> "),
		References: stripAngles(headers["References"]),
		Body:       body,
	}, true
}

// synthesizeMessageID builds a stable id for archives without Message-ID
// headers. Identical date+sender pairs collide deliberately: they are the
// same message seen twice.
func synthesizeMessageID(date, from string) string {
	t, status := coerceDate(date)
	addr := senderKey(from)
	if status != dateValid {
		return fmt.Sprintf("%s.%s@listserv", sanitizeIDPart(date), sanitizeIDPart(addr))
	}
	return fmt.Sprintf("%d.%s@listserv", t.Unix(), sanitizeIDPart(addr))
}

func sanitizeIDPart(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_', r == '@':
			return r
		default:
			return '-'
		}
	}, s)
}
