package ethcal

import (
	"time"
)

// dayOf truncates t to midnight UTC of its calendar date
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
