// Package rollup groups dated money records into year/month buckets.
//
// The same grouping shape is needed by three report views (timesheet
// salaries, advances, payouts), so it is implemented once here instead of
// per view.
package rollup

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Month identifies one year/month bucket.
type Month struct {
	Year  int
	Month time.Month
}

// Bucket accumulates the records that fall into one Month.
type Bucket struct {
	Count    int
	Total    decimal.Decimal
	ByStatus map[string]decimal.Decimal
}

// Accessors describe how to read a record of type T. Status may be nil when
// per-status subtotals are not wanted.
type Accessors[T any] struct {
	Date   func(T) time.Time
	Amount func(T) decimal.Decimal
	Status func(T) string
}

// ByMonth groups records into year/month buckets, summing the amount field
// and, when a Status accessor is given, keeping per-status subtotals.
func ByMonth[T any](records []T, acc Accessors[T]) map[Month]*Bucket {
	out := make(map[Month]*Bucket)
	for _, rec := range records {
		d := acc.Date(rec)
		key := Month{Year: d.Year(), Month: d.Month()}

		b, ok := out[key]
		if !ok {
			b = &Bucket{Total: decimal.Zero}
			if acc.Status != nil {
				b.ByStatus = make(map[string]decimal.Decimal)
			}
			out[key] = b
		}

		amount := acc.Amount(rec)
		b.Count++
		b.Total = b.Total.Add(amount)
		if acc.Status != nil {
			status := acc.Status(rec)
			b.ByStatus[status] = b.ByStatus[status].Add(amount)
		}
	}
	return out
}

// SortedMonths returns the bucket keys in chronological order.
func SortedMonths[T any](buckets map[Month]*T) []Month {
	keys := make([]Month, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].Month < keys[j].Month
	})
	return keys
}
