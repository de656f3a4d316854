package order

import (
	"fmt"
	"time"
)

// Order numbers are per-day sequential: ORD-YYYYMMDD-NNNN, where NNNN
// is 1 + the count of orders created since local midnight of the
// creation instant. Two creations racing on the same day can compute
// the same sequence; the unique index catches that and we fall back to
// a timestamp+random number. The fallback trades strict sequential
// numbering for availability: the write goes through, the number is
// merely ugly.

func sequentialNumber(createdAt time.Time, countToday int) string {
	return fmt.Sprintf("ORD-%s-%04d", createdAt.Format("20060102"), countToday+1)
}

func fallbackNumber(createdAt time.Time, rnd int) string {
	return fmt.Sprintf("ORD-%d-%d", createdAt.UnixMilli(), rnd%1000)
}

// dayBounds returns local midnight and end-of-day around t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
