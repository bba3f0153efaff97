package internal

import (
	"net/mail"
	"sort"
	"strings"
)

// ResolveSenderEntities groups the matrix's sender columns into entities:
// senders sharing the same email address (case-insensitive) are treated as
// aliases of one identity. The entity id is the alias with the most
// messages, ties broken lexically, so resolving an already-resolved matrix
// changes nothing.
func ResolveSenderEntities(m *ActivityMatrix) map[string][]string {
	groups := make(map[string][]string)
	for _, sender := range m.Senders {
		key := senderKey(sender)
		groups[key] = append(groups[key], sender)
	}

	entities := make(map[string][]string, len(groups))
	for _, members := range groups {
		sort.Strings(members)
		entity := members[0]
		best := m.SenderTotal(entity)
		for _, s := range members[1:] {
			if t := m.SenderTotal(s); t > best {
				entity = s
				best = t
			}
		}
		entities[entity] = members
	}
	return entities
}

// senderKey extracts the comparable identity from a raw sender string: the
// lowercased address part when one parses, the lowercased trimmed string
// otherwise.
func senderKey(sender string) string {
	if addr, err := mail.ParseAddress(sender); err == nil {
		return strings.ToLower(addr.Address)
	}
	return strings.ToLower(strings.TrimSpace(sender))
}
