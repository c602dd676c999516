package ax

import (
	"crypto/sha256"
	"fmt"
)

// TreeChange represents a changed element detected between two reads.
type TreeChange struct {
	ID      int                  `yaml:"i"           json:"i"`
	Role    string               `yaml:"r,omitempty" json:"r,omitempty"`
	Title   string               `yaml:"t,omitempty" json:"t,omitempty"`
	Changes map[string][2]string `yaml:"changes"     json:"changes"`
}

// TreeDiff is the result of comparing two element snapshots.
type TreeDiff struct {
	Added          []FlatElement `yaml:"added,omitempty"   json:"added,omitempty"`
	Removed        []FlatElement `yaml:"removed,omitempty" json:"removed,omitempty"`
	Changed        []TreeChange  `yaml:"changed,omitempty" json:"changed,omitempty"`
	UnchangedCount int           `yaml:"unchanged_count"   json:"unchanged_count"`
}

// Empty reports whether the diff contains no changes.
func (d TreeDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// ElementHash computes a stable identity hash for an element from its
// semantic content and position in the tree. Sequential IDs shift between
// reads when elements appear or disappear; the hash does not.
func ElementHash(el FlatElement) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", el.Role, el.Title, el.Description, el.Path)
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

// hashKeys assigns each element its content hash plus an occurrence index,
// so twin siblings with identical content keep distinct identities.
func hashKeys(elements []FlatElement) []string {
	seen := make(map[string]int, len(elements))
	keys := make([]string, len(elements))
	for i, el := range elements {
		h := ElementHash(el)
		keys[i] = fmt.Sprintf("%s#%d", h, seen[h])
		seen[h]++
	}
	return keys
}

// DiffElements compares two flat element lists using content hashing for
// stable identity across reads.
func DiffElements(prev, curr []FlatElement) TreeDiff {
	prevKeys := hashKeys(prev)
	currKeys := hashKeys(curr)

	prevByKey := make(map[string]FlatElement, len(prev))
	for i, el := range prev {
		prevByKey[prevKeys[i]] = el
	}
	currByKey := make(map[string]FlatElement, len(curr))
	for i, el := range curr {
		currByKey[currKeys[i]] = el
	}

	var diff TreeDiff

	for i, el := range curr {
		prevEl, existed := prevByKey[currKeys[i]]
		if !existed {
			diff.Added = append(diff.Added, el)
			continue
		}
		changes := diffProperties(prevEl, el)
		if len(changes) > 0 {
			diff.Changed = append(diff.Changed, TreeChange{
				ID:      el.ID,
				Role:    el.Role,
				Title:   el.Title,
				Changes: changes,
			})
		} else {
			diff.UnchangedCount++
		}
	}

	for i, el := range prev {
		if _, exists := currByKey[prevKeys[i]]; !exists {
			diff.Removed = append(diff.Removed, el)
		}
	}

	return diff
}

// diffProperties compares the mutable fields of two hash-matched elements.
// Role, title, description, and path are part of the hash and cannot differ.
func diffProperties(prev, curr FlatElement) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Value != curr.Value {
		diffs["v"] = [2]string{prev.Value, curr.Value}
	}
	if prev.Bounds != curr.Bounds {
		diffs["b"] = [2]string{
			fmt.Sprintf("%v", prev.Bounds),
			fmt.Sprintf("%v", curr.Bounds),
		}
	}
	if prev.Focused != curr.Focused {
		diffs["f"] = [2]string{
			fmt.Sprintf("%v", prev.Focused),
			fmt.Sprintf("%v", curr.Focused),
		}
	}
	if prev.Selected != curr.Selected {
		diffs["s"] = [2]string{
			fmt.Sprintf("%v", prev.Selected),
			fmt.Sprintf("%v", curr.Selected),
		}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
