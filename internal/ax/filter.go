package ax

import (
	"strings"

	"github.com/mj1618/axq/internal/geom"
)

// FilterElements returns only the elements matching the role set and bounding
// rectangle. Elements that fail the filter but have matching descendants are
// replaced by those descendants, so the result stays a forest.
func FilterElements(elements []Element, roles []string, within *geom.Rect) []Element {
	if len(roles) == 0 && within == nil {
		return elements
	}

	roleSet := make(map[string]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	var result []Element
	for _, el := range elements {
		var filteredChildren []Element
		if len(el.Children) > 0 {
			filteredChildren = FilterElements(el.Children, roles, within)
		}

		roleMatch := len(roleSet) == 0 || roleSet[el.Role]
		rectMatch := within == nil || within.Intersects(el.Frame())

		if roleMatch && rectMatch {
			filtered := el
			filtered.Children = filteredChildren
			result = append(result, filtered)
		} else if len(filteredChildren) > 0 {
			result = append(result, filteredChildren...)
		}
	}
	return result
}

// FilterByText keeps elements whose title, value, or description contains the
// given text (case-insensitive), plus any ancestors needed to reach them.
func FilterByText(elements []Element, text string) []Element {
	if text == "" {
		return elements
	}
	textLower := strings.ToLower(text)
	var result []Element
	for _, el := range elements {
		matched := textMatches(el, textLower)
		childMatches := FilterByText(el.Children, text)

		if matched || len(childMatches) > 0 {
			filtered := el
			filtered.Children = childMatches
			result = append(result, filtered)
		}
	}
	return result
}

func textMatches(el Element, textLower string) bool {
	return strings.Contains(strings.ToLower(el.Title), textLower) ||
		strings.Contains(strings.ToLower(el.Value), textLower) ||
		strings.Contains(strings.ToLower(el.Description), textLower)
}

// PruneEmptyGroups removes anonymous group/other nodes that carry no title,
// value, or description. Children of removed nodes are promoted to the
// parent. Structural-only containers dominate most accessibility trees, so
// this shrinks output considerably.
func PruneEmptyGroups(elements []Element) []Element {
	var result []Element
	for _, el := range elements {
		prunedChildren := PruneEmptyGroups(el.Children)

		if isEmptyGroup(el) {
			result = append(result, prunedChildren...)
		} else {
			pruned := el
			pruned.Children = prunedChildren
			result = append(result, pruned)
		}
	}
	return result
}

func isEmptyGroup(el Element) bool {
	return (el.Role == "group" || el.Role == "other") &&
		el.Title == "" && el.Value == "" && el.Description == ""
}

// LimitDepth truncates the tree below the given depth. Depth 1 keeps only
// the root elements, depth 0 means unlimited.
func LimitDepth(elements []Element, depth int) []Element {
	if depth <= 0 {
		return elements
	}
	result := make([]Element, len(elements))
	for i, el := range elements {
		result[i] = el
		if depth == 1 {
			result[i].Children = nil
		} else {
			result[i].Children = LimitDepth(el.Children, depth-1)
		}
	}
	return result
}
