package statistics

import (
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

// Window returns the trailing range of days calendar days ending at now:
// from is midnight of the first day in loc, to is now itself.
func Window(now time.Time, days int, loc *time.Location) entity.TimeRange {
	if days < 1 {
		days = 1
	}
	now = now.In(loc)
	first := dayStart(now).AddDate(0, 0, -(days - 1))
	return entity.TimeRange{From: first, To: now}
}

// FillSalesGaps returns one entry per calendar day of the window in
// ascending order. Days missing from points get a zero amount and points
// outside the window are dropped.
func FillSalesGaps(points []entity.SalesByDate, window entity.TimeRange, loc *time.Location) []entity.SalesByDate {
	byDay := make(map[string]decimal.Decimal, len(points))
	for _, p := range points {
		byDay[p.Date] = byDay[p.Date].Add(p.Amount)
	}

	cur := dayStart(window.From.In(loc))
	end := dayStart(window.To.In(loc))
	result := []entity.SalesByDate{}
	for !cur.After(end) {
		key := cur.Format(entity.SalesDateLayout)
		amount, ok := byDay[key]
		if !ok {
			amount = decimal.Zero
		}
		result = append(result, entity.SalesByDate{Date: key, Amount: amount})
		cur = time.Date(cur.Year(), cur.Month(), cur.Day()+1, 0, 0, 0, 0, cur.Location())
	}
	return result
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
