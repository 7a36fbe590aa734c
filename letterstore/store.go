// Package letterstore holds the letter collections a mailbox page works
// with (inbox, outbox, archive, pending disposition) and derives filtered
// views from them. Filtering is a pure function of (collections, search,
// category); the store keeps no hidden state, so a view can be recomputed
// whenever any input changes.
package letterstore

import (
	"strings"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// Collections are the three named mailbox lists delivered by a page
// snapshot. Pending disposition letters live apart (see Pending/PriorityFilter)
// because they filter by priority, not by search/category.
type Collections struct {
	Inbox   []models.Letter
	Outbox  []models.Letter
	Archive []models.Letter
}

// Matches is the filter predicate: a letter passes when the search text is
// empty or is a case-insensitive substring of its subject, letter number, or
// recipient name, and the category is "all" or an exact match.
func Matches(l models.Letter, search, category string) bool {
	if category != "" && category != CategoryAll && l.Kategori != category {
		return false
	}

	q := strings.TrimSpace(search)
	if q == "" {
		return true
	}
	q = strings.ToLower(q)

	return strings.Contains(strings.ToLower(l.Perihal), q) ||
		strings.Contains(strings.ToLower(l.NomorSurat), q) ||
		strings.Contains(strings.ToLower(l.Penerima), q)
}

// Filter applies the predicate independently to each collection. Empty
// search plus "all" category returns the collections unchanged.
func (c Collections) Filter(search, category string) Collections {
	if strings.TrimSpace(search) == "" && (category == "" || category == CategoryAll) {
		return c
	}

	return Collections{
		Inbox:   filterLetters(c.Inbox, search, category),
		Outbox:  filterLetters(c.Outbox, search, category),
		Archive: filterLetters(c.Archive, search, category),
	}
}

func filterLetters(letters []models.Letter, search, category string) []models.Letter {
	out := make([]models.Letter, 0, len(letters))
	for _, l := range letters {
		if Matches(l, search, category) {
			out = append(out, l)
		}
	}
	return out
}

// PendingView assembles the pending-disposition widget state: priority
// counts over the FULL pending set, then search/category narrowing, then the
// priority filter on top. Counts never shrink when a search or chip is
// active; they always reflect the whole queue.
func PendingView(pending []models.Letter, search, category string, filter *PriorityFilter) ([]models.Letter, map[models.Priority]int) {
	counts := CountByPriority(pending)

	visible := pending
	if strings.TrimSpace(search) != "" || (category != "" && category != CategoryAll) {
		visible = filterLetters(visible, search, category)
	}
	if filter != nil {
		visible = filter.Apply(visible)
	}
	return visible, counts
}

// CountByPriority counts pending-disposition letters per priority. Counts
// are always computed over the full set handed in; callers must not pass an
// already priority-filtered slice, the widget shows totals.
func CountByPriority(pending []models.Letter) map[models.Priority]int {
	counts := map[models.Priority]int{
		models.PriorityHigh:   0,
		models.PriorityMedium: 0,
		models.PriorityLow:    0,
	}
	for _, l := range pending {
		counts[l.Prioritas]++
	}
	return counts
}

// PriorityFilter is the single-select, toggleable priority filter of the
// pending-disposition widget. The zero value shows everything.
type PriorityFilter struct {
	active models.Priority
}

// Toggle activates p exclusively, or clears the filter when p is already
// active.
func (f *PriorityFilter) Toggle(p models.Priority) {
	if f.active == p {
		f.active = ""
		return
	}
	f.active = p
}

// Active returns the currently selected priority, empty when unfiltered.
func (f *PriorityFilter) Active() models.Priority {
	return f.active
}

// Apply returns the letters visible under the current filter.
func (f *PriorityFilter) Apply(pending []models.Letter) []models.Letter {
	if f.active == "" {
		return pending
	}
	out := make([]models.Letter, 0, len(pending))
	for _, l := range pending {
		if l.Prioritas == f.active {
			out = append(out, l)
		}
	}
	return out
}
