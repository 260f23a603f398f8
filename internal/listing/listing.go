// Package listing provides the tab/search/pagination derivation shared by
// the venues, owners, enquiries and subscriptions list screens.
package listing

import "strings"

// Tab pairs a label with a membership predicate. A nil Match is the
// identity predicate; by convention tab 0 ("all") uses it.
type Tab[T any] struct {
	Label string
	Match func(T) bool
}

// Counts returns the number of items matching each tab.
func Counts[T any](items []T, tabs []Tab[T]) []int {
	counts := make([]int, len(tabs))
	for i, tab := range tabs {
		if tab.Match == nil {
			counts[i] = len(items)
			continue
		}
		for _, it := range items {
			if tab.Match(it) {
				counts[i]++
			}
		}
	}
	return counts
}

// Filter applies the active tab's predicate and then a case-insensitive
// substring search across the values produced by fields. An empty query
// short-circuits to the tab-filtered set unchanged.
func Filter[T any](items []T, tab Tab[T], query string, fields func(T) []string) []T {
	filtered := items
	if tab.Match != nil {
		filtered = make([]T, 0, len(items))
		for _, it := range items {
			if tab.Match(it) {
				filtered = append(filtered, it)
			}
		}
	}

	query = strings.TrimSpace(query)
	if query == "" || fields == nil {
		return filtered
	}

	needle := strings.ToLower(query)
	matched := make([]T, 0, len(filtered))
	for _, it := range filtered {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), needle) {
				matched = append(matched, it)
				break
			}
		}
	}
	return matched
}

// Page is one window of a filtered list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	Size       int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices items into the requested page. Total pages is
// ceil(n/size) with a floor of one page even when the list is empty, and
// the requested page is clamped into [1, totalPages].
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = 1
	}
	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		Size:       size,
		TotalItems: len(items),
		TotalPages: totalPages,
	}
}

// Window returns the page numbers a pager control should render: at most
// five buttons centered on the current page, clamped to valid bounds.
func Window(current, total int) []int {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	count := 5
	if total < count {
		count = total
	}

	start := current - count/2
	if start < 1 {
		start = 1
	}
	if start+count-1 > total {
		start = total - count + 1
	}

	window := make([]int, count)
	for i := range window {
		window[i] = start + i
	}
	return window
}

// View is the stateful list selection a screen holds: active tab, search
// query and current page. Changing the tab or the query resets the page to
// one.
type View struct {
	tab   int
	query string
	page  int
}

// NewView starts on tab 0, empty query, page 1.
func NewView() View {
	return View{page: 1}
}

// Tab returns the active tab index.
func (v *View) Tab() int { return v.tab }

// Query returns the active search query.
func (v *View) Query() string { return v.query }

// Page returns the current page number.
func (v *View) Page() int { return v.page }

// SetTab activates a tab and resets the page.
func (v *View) SetTab(tab int) {
	if tab < 0 {
		tab = 0
	}
	v.tab = tab
	v.page = 1
}

// SetQuery replaces the search query and resets the page.
func (v *View) SetQuery(query string) {
	v.query = query
	v.page = 1
}

// SetPage moves to the requested page; clamping to the real bounds happens
// in Paginate.
func (v *View) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}
