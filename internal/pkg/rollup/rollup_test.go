package rollup

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type record struct {
	date   time.Time
	amount decimal.Decimal
	status string
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var recordAccessors = Accessors[record]{
	Date:   func(r record) time.Time { return r.date },
	Amount: func(r record) decimal.Decimal { return r.amount },
	Status: func(r record) string { return r.status },
}

func TestByMonth(t *testing.T) {
	records := []record{
		{day(2025, time.January, 3), amt("100"), "present"},
		{day(2025, time.January, 20), amt("50"), "half-day"},
		{day(2025, time.February, 1), amt("200"), "present"},
	}

	buckets := ByMonth(records, recordAccessors)

	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}

	jan := buckets[Month{Year: 2025, Month: time.January}]
	if jan == nil {
		t.Fatal("missing January bucket")
	}
	if jan.Count != 2 {
		t.Errorf("January Count = %d, want 2", jan.Count)
	}
	if !jan.Total.Equal(amt("150")) {
		t.Errorf("January Total = %s, want 150", jan.Total)
	}
	if !jan.ByStatus["present"].Equal(amt("100")) {
		t.Errorf("January present subtotal = %s, want 100", jan.ByStatus["present"])
	}
	if !jan.ByStatus["half-day"].Equal(amt("50")) {
		t.Errorf("January half-day subtotal = %s, want 50", jan.ByStatus["half-day"])
	}

	feb := buckets[Month{Year: 2025, Month: time.February}]
	if feb == nil || feb.Count != 1 || !feb.Total.Equal(amt("200")) {
		t.Errorf("February bucket = %+v, want Count 1 Total 200", feb)
	}
}

func TestByMonthNoStatusAccessor(t *testing.T) {
	records := []record{
		{day(2025, time.March, 10), amt("75"), "present"},
	}

	acc := recordAccessors
	acc.Status = nil
	buckets := ByMonth(records, acc)

	mar := buckets[Month{Year: 2025, Month: time.March}]
	if mar == nil {
		t.Fatal("missing March bucket")
	}
	if mar.ByStatus != nil {
		t.Error("ByStatus should be nil without a Status accessor")
	}
	if !mar.Total.Equal(amt("75")) {
		t.Errorf("March Total = %s, want 75", mar.Total)
	}
}

func TestByMonthEmpty(t *testing.T) {
	buckets := ByMonth(nil, recordAccessors)
	if len(buckets) != 0 {
		t.Errorf("got %d buckets from no records, want 0", len(buckets))
	}
}

func TestSortedMonths(t *testing.T) {
	buckets := map[Month]*Bucket{
		{Year: 2025, Month: time.March}:    {},
		{Year: 2024, Month: time.December}: {},
		{Year: 2025, Month: time.January}:  {},
	}

	got := SortedMonths(buckets)
	want := []Month{
		{Year: 2024, Month: time.December},
		{Year: 2025, Month: time.January},
		{Year: 2025, Month: time.March},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d months, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedMonths[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
