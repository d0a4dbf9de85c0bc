package diff

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// --- Generators ---

func genSnapshot() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		n := rapid.IntRange(0, 30).Draw(t, "lineCount")
		lines := make([]string, n)
		for i := range lines {
			lines[i] = rapid.StringMatching(`[a-z ]{0,12}`).Draw(t, "line")
		}
		if n == 0 {
			return ""
		}
		return strings.Join(lines, "\n") + "\n"
	})
}

// Insertions-Deletions must equal the net line-count change for any pair of
// snapshots, under the positional counting convention.
func TestComputeAdditivityRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		oldText := genSnapshot().Draw(t, "oldText")
		newText := genSnapshot().Draw(t, "newText")

		res := Compute(oldText, newText, "f.yaml", Options{})
		net := len(SplitLines(newText)) - len(SplitLines(oldText))
		if res.Insertions-res.Deletions != net {
			t.Fatalf("insertions-deletions = %d, want net line change %d",
				res.Insertions-res.Deletions, net)
		}
	})
}

// The rendered rows must replay: applying deletions to the old side and
// insertions to the new side reproduces both snapshots, for either
// algorithm.
func TestComputeReplayRapid(t *testing.T) {
	algos := map[string]Algorithm{"greedy": AlgorithmGreedy, "myers": AlgorithmMyers}

	for name, algo := range algos {
		algo := algo
		t.Run(name, func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				oldText := genSnapshot().Draw(t, "oldText")
				newText := genSnapshot().Draw(t, "newText")
				if oldText == newText {
					return
				}

				res := Compute(oldText, newText, "f.yaml", Options{Algorithm: algo})

				var oldGot, newGot []string
				for _, line := range strings.Split(strings.TrimRight(res.Text, "\n"), "\n") {
					if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "@@") {
						continue
					}
					if line == "" {
						continue
					}
					switch line[0] {
					case ' ':
						oldGot = append(oldGot, line[1:])
						newGot = append(newGot, line[1:])
					case '-':
						oldGot = append(oldGot, line[1:])
					case '+':
						newGot = append(newGot, line[1:])
					}
				}

				if want := SplitLines(oldText); !equalLines(oldGot, want) {
					t.Fatalf("old side does not replay: got %q, want %q", oldGot, want)
				}
				if want := SplitLines(newText); !equalLines(newGot, want) {
					t.Fatalf("new side does not replay: got %q, want %q", newGot, want)
				}
			})
		})
	}
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
