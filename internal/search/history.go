package search

import (
	"container/list"
	"strings"
)

// HistoryLimit caps the recency list.
const HistoryLimit = 10

// History is a bounded, most-recent-first list of search terms. Terms are
// deduplicated case-insensitively; re-submitting moves a term to the front
// and the newest casing wins.
type History struct {
	limit int
	order *list.List
	items map[string]*list.Element
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = HistoryLimit
	}
	return &History{
		limit: limit,
		order: list.New(),
		items: make(map[string]*list.Element),
	}
}

// Push records term as the most recent entry.
func (h *History) Push(term string) {
	key := strings.ToLower(term)
	if ele, hit := h.items[key]; hit {
		ele.Value = term
		h.order.MoveToFront(ele)
		return
	}

	h.items[key] = h.order.PushFront(term)
	if h.order.Len() > h.limit {
		h.removeOldest()
	}
}

// Remove drops the entry matching term, if present.
func (h *History) Remove(term string) {
	key := strings.ToLower(term)
	if ele, hit := h.items[key]; hit {
		h.order.Remove(ele)
		delete(h.items, key)
	}
}

// Terms returns the list front to back.
func (h *History) Terms() []string {
	terms := make([]string, 0, h.order.Len())
	for ele := h.order.Front(); ele != nil; ele = ele.Next() {
		terms = append(terms, ele.Value.(string))
	}
	return terms
}

func (h *History) Len() int {
	return h.order.Len()
}

func (h *History) removeOldest() {
	ele := h.order.Back()
	if ele == nil {
		return
	}
	h.order.Remove(ele)
	delete(h.items, strings.ToLower(ele.Value.(string)))
}
