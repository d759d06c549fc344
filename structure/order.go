package structure

import (
	"fmt"
	"slices"
	"sort"

	"github.com/ancientlore/quire/content"
)

// OrderError is returned when items in a listing share an order value.
type OrderError struct {
	Listing string    // Content path of the index page, if known
	Orders  []float64 // Distinct order values found in the listing
}

func (e *OrderError) Error() string {
	if e.Listing == "" {
		return fmt.Sprintf("order values are not unique: %v", e.Orders)
	}
	return fmt.Sprintf("order values in listing %q are not unique: %v", e.Listing, e.Orders)
}

// SortByOrder sorts the items by ascending Metadata.Order, a missing order
// counting as 0. Every item must be annotated. An *OrderError is returned,
// and items are left untouched, when two items have the same order.
func SortByOrder(items []*content.Item) error {
	return SortListing("", items)
}

// SortListing is SortByOrder for the listing of the index page at
// contentPath, which is recorded in any *OrderError.
func SortListing(contentPath string, items []*content.Item) error {
	var (
		seen   = make(map[float64]bool, len(items))
		orders = make([]float64, 0, len(items))
	)
	for _, item := range items {
		o := item.Metadata.OrderValue()
		if !seen[o] {
			seen[o] = true
			orders = append(orders, o)
		}
	}
	if len(orders) != len(items) {
		slices.Sort(orders)
		return &OrderError{Listing: contentPath, Orders: orders}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Metadata.OrderValue() < items[j].Metadata.OrderValue()
	})
	return nil
}
