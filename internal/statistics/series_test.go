package statistics

import (
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

	w := Window(now, 7, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), w.From)
	assert.Equal(t, now, w.To)

	w = Window(now, 1, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), w.From)

	w = Window(now, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), w.From)

	// 23:30 UTC is already the next day at UTC+1
	late := time.Date(2024, time.March, 10, 23, 30, 0, 0, time.UTC)
	loc := time.FixedZone("UTC+1", 3600)
	w = Window(late, 2, loc)
	assert.True(t, w.From.Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, loc)))
}

func TestFillSalesGaps(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)
	w := Window(now, 7, time.UTC)

	t.Run("Empty", func(t *testing.T) {
		series := FillSalesGaps(nil, w, time.UTC)
		require.Len(t, series, 7)
		assert.Equal(t, "2024-03-04", series[0].Date)
		assert.Equal(t, "2024-03-10", series[6].Date)
		for _, s := range series {
			assert.True(t, s.Amount.IsZero())
		}
	})

	t.Run("Points", func(t *testing.T) {
		series := FillSalesGaps([]entity.SalesByDate{
			{Date: "2024-03-09", Amount: decimal.NewFromInt(50)},
			{Date: "2024-03-05", Amount: decimal.NewFromInt(100)},
			{Date: "2024-03-05", Amount: decimal.NewFromInt(20)},
			{Date: "2024-02-01", Amount: decimal.NewFromInt(999)},
			{Date: "2024-03-11", Amount: decimal.NewFromInt(999)},
		}, w, time.UTC)
		require.Len(t, series, 7)
		assert.Equal(t, "2024-03-05", series[1].Date)
		assert.True(t, series[1].Amount.Equal(decimal.NewFromInt(120)))
		assert.Equal(t, "2024-03-09", series[5].Date)
		assert.True(t, series[5].Amount.Equal(decimal.NewFromInt(50)))

		total := decimal.Zero
		for i, s := range series {
			if i > 0 {
				assert.Less(t, series[i-1].Date, s.Date)
			}
			total = total.Add(s.Amount)
		}
		assert.True(t, total.Equal(decimal.NewFromInt(170)))
	})

	t.Run("Lengths", func(t *testing.T) {
		for _, days := range []int{1, 7, 30, 31, 366} {
			series := FillSalesGaps(nil, Window(now, days, time.UTC), time.UTC)
			assert.Len(t, series, days)
		}
	})

	t.Run("DaylightSaving", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skip("no tz database")
		}
		// 2024-03-10 is 23 hours long in New York
		at := time.Date(2024, time.March, 12, 9, 0, 0, 0, ny)
		series := FillSalesGaps(nil, Window(at, 5, ny), ny)
		require.Len(t, series, 5)
		assert.Equal(t, "2024-03-08", series[0].Date)
		assert.Equal(t, "2024-03-09", series[1].Date)
		assert.Equal(t, "2024-03-10", series[2].Date)
		assert.Equal(t, "2024-03-11", series[3].Date)
		assert.Equal(t, "2024-03-12", series[4].Date)
	})
}
