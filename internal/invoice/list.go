package invoice

import "github.com/shopspring/decimal"

// Record is a submitted line item. ID is assigned on creation and never
// changes afterwards.
type Record struct {
	ID string
	FormState
}

// List keeps records in insertion order.
type List []Record

// Index returns the position of the record with the given id, or -1.
func (l List) Index(id string) int {
	if id == "" {
		return -1
	}
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the record with the given id.
func (l List) Get(id string) (Record, bool) {
	i := l.Index(id)
	if i < 0 {
		return Record{}, false
	}
	return l[i], true
}

// Has reports whether id is already used.
func (l List) Has(id string) bool {
	return l.Index(id) >= 0
}

// GrandTotal sums the stored total prices. Values that do not parse count
// as zero, matching the form's input handling.
func (l List) GrandTotal() string {
	sum := decimal.Zero
	for _, r := range l {
		sum = sum.Add(ParseAmount(r.TotalPrice))
	}
	return FormatAmount(sum)
}

// withReplaced returns a copy of l with the record at i swapped for r.
func (l List) withReplaced(i int, r Record) List {
	out := make(List, len(l))
	copy(out, l)
	out[i] = r
	return out
}

// withAppended returns a copy of l with r added at the end.
func (l List) withAppended(r Record) List {
	out := make(List, len(l), len(l)+1)
	copy(out, l)
	return append(out, r)
}
