package docscrape

import (
	"slices"
	"strconv"
)

// Column names of the PEP status summary.
const (
	StatusColumn = "Статус"
	CountColumn  = "Количество"
	TotalLabel   = "Итого"
)

// ExpectedStatus maps a PEP preview status code, as shown in the PEP index,
// to the statuses a PEP page may declare for it.
var ExpectedStatus = map[string][]string{
	"A": {"Active", "Accepted"},
	"D": {"Deferred"},
	"F": {"Final"},
	"P": {"Provisional"},
	"R": {"Rejected"},
	"S": {"Superseded"},
	"W": {"Withdrawn"},
	"":  {"Draft", "Active"},
}

// StatusExpected reports whether status is acceptable for the preview code.
// Unknown codes accept nothing.
func StatusExpected(code, status string) bool {
	return slices.Contains(ExpectedStatus[code], status)
}

// Tally counts status labels, remembering the order labels were first seen.
// The zero value is an empty Tally ready to use.
type Tally struct {
	labels []string
	counts map[string]int
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add increments the count for label.
func (t *Tally) Add(label string) {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	if _, ok := t.counts[label]; !ok {
		t.labels = append(t.labels, label)
	}
	t.counts[label]++
}

// Labels returns the labels in first-seen order.
func (t *Tally) Labels() []string {
	return slices.Clone(t.labels)
}

// Count returns the count for label.
func (t *Tally) Count(label string) int {
	return t.counts[label]
}

// Total returns the sum of all counts.
func (t *Tally) Total() int {
	var total int
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Table renders the tally as a status summary ending with a total row.
func (t *Tally) Table() *Table {
	table := NewTable(StatusColumn, CountColumn)
	for _, label := range t.Labels() {
		table.Append(label, strconv.Itoa(t.Count(label)))
	}
	table.Append(TotalLabel, strconv.Itoa(t.Total()))
	return table
}
