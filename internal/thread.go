package internal

import "errors"

// ThreadNode wraps one message record inside a reply tree. A placeholder
// node stands in for a referenced-but-never-seen ancestor and carries only
// its id.
type ThreadNode struct {
	ID       string
	Record   *MessageRecord // nil for placeholders
	Parent   *ThreadNode    // nil for roots
	Children []*ThreadNode  // discovery order
}

// IsPlaceholder reports whether the node was synthesized for an unseen
// ancestor id.
func (n *ThreadNode) IsPlaceholder() bool {
	return n.Record == nil
}

// Size returns the number of message records in the subtree rooted at n.
// Placeholders are structural only and do not count.
func (n *ThreadNode) Size() int {
	size := 0
	if !n.IsPlaceholder() {
		size = 1
	}
	for _, c := range n.Children {
		size += c.Size()
	}
	return size
}

// Depth returns the length of the longest root-to-leaf chain under n,
// counting n itself.
func (n *ThreadNode) Depth() int {
	deepest := 0
	for _, c := range n.Children {
		if d := c.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Walk visits n and every descendant in depth-first discovery order.
func (n *ThreadNode) Walk(visit func(*ThreadNode)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Thread is one reply tree. RootKnown is false when the root is a
// placeholder synthesized because a reply referenced an unseen ancestor.
type Thread struct {
	Root      *ThreadNode
	RootKnown bool
}

// Len returns the number of message records in the thread.
func (t *Thread) Len() int {
	return t.Root.Size()
}

// ThreadBuilder reconstructs reply forests from canonical records.
//
// The single forward pass never backfills a placeholder when a record with
// the same id shows up later; the real record becomes its own node and the
// placeholder thread stays separate. RelinkPlaceholders opts into a second
// pass that merges such placeholders into the observed root.
type ThreadBuilder struct {
	RelinkPlaceholders bool
}

// Build consumes records strictly in their canonical chronological order
// and returns the forest covering every record exactly once. The ordering
// is load-bearing: a child can only precede its parent when the parent is
// dated later (clock skew) or never appears.
//
// Records whose In-Reply-To points at themselves are excluded from the
// forest; Build still returns the forest it could construct, with the
// per-record MalformedReferenceError values joined into the error.
func (b ThreadBuilder) Build(records []MessageRecord) ([]*Thread, error) {
	threads := make([]*Thread, 0)
	visited := make(map[string]*ThreadNode, len(records))
	placeholders := make(map[string]*ThreadNode)
	var errs []error

	for i := range records {
		rec := &records[i]

		switch {
		case rec.InReplyTo == "":
			root := &ThreadNode{ID: rec.ID, Record: rec}
			visited[rec.ID] = root
			threads = append(threads, &Thread{Root: root, RootKnown: true})

		case rec.InReplyTo == rec.ID:
			LogWarn("Message %s replies to itself, excluded from forest", rec.ID)
			errs = append(errs, &MalformedReferenceError{ID: rec.ID})

		default:
			parent, ok := visited[rec.InReplyTo]
			if !ok {
				// Ancestor not seen yet (and possibly never): synthesize a
				// placeholder root for it.
				parent = &ThreadNode{ID: rec.InReplyTo}
				visited[parent.ID] = parent
				placeholders[parent.ID] = parent
				threads = append(threads, &Thread{Root: parent, RootKnown: false})
				LogDebug("New thread for unseen ancestor %s", parent.ID)
			}
			node := &ThreadNode{ID: rec.ID, Record: rec, Parent: parent}
			parent.Children = append(parent.Children, node)
			visited[rec.ID] = node
		}
	}

	if b.RelinkPlaceholders {
		threads = relinkPlaceholders(threads, visited, placeholders)
	}

	return threads, errors.Join(errs...)
}

// relinkPlaceholders merges each placeholder whose real message was
// observed into that message's node. The visited map always holds the most
// recent node per id, so a surviving placeholder entry means the id was
// never observed as a record.
func relinkPlaceholders(threads []*Thread, visited, placeholders map[string]*ThreadNode) []*Thread {
	drop := make(map[*Thread]bool)

	for _, t := range threads {
		if t.RootKnown {
			continue
		}
		ph := t.Root
		real := visited[ph.ID]
		if real == ph || real.IsPlaceholder() {
			continue
		}
		if reachable(real, ph) {
			LogWarn("Cannot relink placeholder %s: real node sits inside its own subtree", ph.ID)
			continue
		}
		for _, c := range ph.Children {
			c.Parent = real
			real.Children = append(real.Children, c)
		}
		ph.Children = nil
		drop[t] = true
		LogDebug("Relinked placeholder thread %s onto observed message", ph.ID)
	}

	if len(drop) == 0 {
		return threads
	}
	kept := threads[:0]
	for _, t := range threads {
		if !drop[t] {
			kept = append(kept, t)
		}
	}
	return kept
}

// reachable reports whether from can be reached by walking parents up from
// n.
func reachable(n, from *ThreadNode) bool {
	for p := n; p != nil; p = p.Parent {
		if p == from {
			return true
		}
	}
	return false
}
