package snapshot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"filmbox/internal/catalog"
)

// Order identifies a client-side sort of the cached snapshot.
type Order string

const (
	// OrderFetched keeps the order the records arrived in.
	OrderFetched Order = "fetched"
	// OrderYear sorts by year, newest first.
	OrderYear Order = "year"
	// OrderRuntime sorts by runtime, longest first.
	OrderRuntime Order = "runtime"
	// OrderName sorts alphabetically by name, case-insensitive.
	OrderName Order = "name"
)

// ParseOrder maps a user-supplied sort name to an Order.
func ParseOrder(value string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(value))) {
	case "", OrderFetched:
		return OrderFetched, nil
	case OrderYear:
		return OrderYear, nil
	case OrderRuntime:
		return OrderRuntime, nil
	case OrderName:
		return OrderName, nil
	default:
		return "", fmt.Errorf("unknown sort %q (year, runtime, or name)", value)
	}
}

// Sorted returns the cached records reordered by the given sort. The
// reorder is pure and stable; the cached list itself is not mutated and
// nothing is sent to the service.
func (s *Snapshot) Sorted(order Order) []catalog.Record {
	records := s.Records()
	switch order {
	case OrderYear:
		sort.SliceStable(records, func(i, j int) bool {
			return yearValue(records[i]) > yearValue(records[j])
		})
	case OrderRuntime:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Runtime > records[j].Runtime
		})
	case OrderName:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(records, func(i, j int) bool {
			return c.CompareString(records[i].Name, records[j].Name) < 0
		})
	}
	return records
}

// yearValue parses the display year for ordering. Records without a
// numeric year sort after every dated record.
func yearValue(rec catalog.Record) int {
	year, err := strconv.Atoi(strings.TrimSpace(rec.Year))
	if err != nil {
		return -1
	}
	return year
}
