package internal

import "testing"

func TestFindFooters_SharedSignature(t *testing.T) {
	bodies := []string{
		"Hello\n--\nSent from my phone",
		"Hi there\n--\nSent from my phone",
	}

	footers := FindFooters(bodies, 3)
	if len(footers) == 0 {
		t.Fatal("FindFooters() returned no candidates")
	}
	if footers[0].Text != "--\nSent from my phone" {
		t.Errorf("top candidate = %q, want the shared signature", footers[0].Text)
	}
	if footers[0].Count != 1 {
		t.Errorf("top candidate count = %d, want 1 (one adjacent pair)", footers[0].Count)
	}
}

func TestFindFooters_FrequencyRanking(t *testing.T) {
	bodies := []string{
		"one\n--\nlist footer",
		"two\n--\nlist footer",
		"three\n--\nlist footer",
		"no signature here",
	}

	footers := FindFooters(bodies, 1)
	if len(footers) != 1 {
		t.Fatalf("FindFooters() returned %d candidates, want 1", len(footers))
	}
	if footers[0].Text != "--\nlist footer" {
		t.Errorf("top candidate = %q, want %q", footers[0].Text, "--\nlist footer")
	}
	if footers[0].Count < 2 {
		t.Errorf("top candidate count = %d, want at least 2", footers[0].Count)
	}
}

func TestFindFooters_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		bodies []string
		n      int
	}{
		{"no bodies", nil, 3},
		{"single body", []string{"hello"}, 3},
		{"all empty", []string{"", "", ""}, 3},
		{"zero n", []string{"a\nfoot", "b\nfoot"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindFooters(tt.bodies, tt.n); got != nil {
				t.Errorf("FindFooters() = %v, want nil", got)
			}
		})
	}
}

func TestFindFooters_SkipsEmptyBodies(t *testing.T) {
	bodies := []string{
		"",
		"alpha\n--\nthe footer",
		"",
		"beta\n--\nthe footer",
	}
	footers := FindFooters(bodies, 1)
	if len(footers) != 1 || footers[0].Text != "--\nthe footer" {
		t.Errorf("FindFooters() = %v, want the shared footer", footers)
	}
}

func TestMergeFooterCounts_FoldsLongerIntoSubstring(t *testing.T) {
	counts := map[string]int{
		"Sent from my phone":               3,
		"Cheers,\nBob\nSent from my phone": 1,
	}
	mergeFooterCounts(counts)

	if _, ok := counts["Cheers,\nBob\nSent from my phone"]; ok {
		t.Error("longer, rarer candidate should fold away")
	}
	if counts["Sent from my phone"] != 4 {
		t.Errorf("folded count = %d, want 4", counts["Sent from my phone"])
	}
}

func TestMergeFooterCounts_KeepsMoreFrequentLonger(t *testing.T) {
	counts := map[string]int{
		"footer":        1,
		"longer footer": 5,
	}
	mergeFooterCounts(counts)

	if counts["longer footer"] != 5 {
		t.Errorf("more frequent candidate changed: %v", counts)
	}
	if _, ok := counts["footer"]; !ok {
		t.Error("shorter candidate should survive the merge untouched")
	}
}

func TestReverseString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "cba"},
		{"a\nb", "b\na"},
		{"héllo", "olléh"},
	}
	for _, tt := range tests {
		if got := reverseString(tt.in); got != tt.want {
			t.Errorf("reverseString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
