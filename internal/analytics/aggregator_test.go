package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcel-tracking-service/internal/domain"
)

func f(v float64) *float64 { return &v }

func mkDelivery(status domain.DeliveryStatus, product, from, to string, created time.Time, hours float64, value, weight *float64) domain.Delivery {
	return domain.Delivery{
		TrackingCode:  "EI0000000000",
		SenderCity:    from,
		RecipientCity: to,
		ProductType:   product,
		Weight:        weight,
		DeclaredValue: value,
		Status:        status,
		CreatedAt:     created,
		UpdatedAt:     created.Add(time.Duration(hours * float64(time.Hour))),
	}
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	snap := Aggregate(nil, now)

	assert.Equal(t, now, snap.GeneratedAt)
	assert.Equal(t, 0, snap.TotalDeliveries)
	assert.Empty(t, snap.StatusDistribution)
	assert.Equal(t, 0.0, snap.Indicators.SuccessRate)

	// all seven weekday buckets exist even with no data
	require.Len(t, snap.ByWeekday, 7)
	assert.Equal(t, "Monday", snap.ByWeekday[0].Day)
	assert.Equal(t, "Sunday", snap.ByWeekday[6].Day)
	for _, wd := range snap.ByWeekday {
		assert.Equal(t, 0, wd.Count)
	}
}

func TestAggregate_Distributions(t *testing.T) {
	t.Parallel()

	// 2025-06-02 is a Monday
	monday := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	deliveries := []domain.Delivery{
		mkDelivery(domain.StatusDelivered, "Eletrônicos", "Recife - PE", "São Paulo - SP", monday, 48, f(850), f(2.5)),
		mkDelivery(domain.StatusDelivered, "Roupas", "Recife - PE", "São Paulo - SP", monday, 24, f(320), f(1.2)),
		mkDelivery(domain.StatusInTransit, "Eletrônicos", "Recife - PE", "Salvador - BA", tuesday, 12, f(1200), f(4.1)),
		mkDelivery(domain.StatusPending, "Livros", "Recife - PE", "São Paulo - SP", tuesday, 0, nil, nil),
	}

	snap := Aggregate(deliveries, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 4, snap.TotalDeliveries)

	// status distribution ordered by count desc, label asc on ties
	require.Len(t, snap.StatusDistribution, 3)
	assert.Equal(t, "entregue", snap.StatusDistribution[0].Label)
	assert.Equal(t, 2, snap.StatusDistribution[0].Count)
	assert.Equal(t, 50.0, snap.StatusDistribution[0].Percent)

	var pctSum float64
	for _, b := range snap.StatusDistribution {
		pctSum += b.Percent
	}
	assert.InDelta(t, 100.0, pctSum, 0.1)

	// routes use the arrow notation and are capped at the top five
	require.NotEmpty(t, snap.TopRoutes)
	assert.Equal(t, "Recife - PE → São Paulo - SP", snap.TopRoutes[0].Route)
	assert.Equal(t, 3, snap.TopRoutes[0].Count)
	assert.LessOrEqual(t, len(snap.TopRoutes), 5)

	// weekday buckets: Monday first, always seven
	require.Len(t, snap.ByWeekday, 7)
	assert.Equal(t, WeekdayCount{Day: "Monday", Count: 2}, snap.ByWeekday[0])
	assert.Equal(t, WeekdayCount{Day: "Tuesday", Count: 2}, snap.ByWeekday[1])
	assert.Equal(t, WeekdayCount{Day: "Sunday", Count: 0}, snap.ByWeekday[6])

	require.Len(t, snap.ByMonth, 1)
	assert.Equal(t, MonthCount{Month: "2025-06", Count: 4}, snap.ByMonth[0])

	assert.Equal(t, 50.0, snap.Indicators.SuccessRate)
	assert.Equal(t, 2370.0, snap.Indicators.TotalDeclaredValue)
	assert.Equal(t, 7.8, snap.Indicators.TotalWeight)
	assert.Equal(t, 21.0, snap.Indicators.MeanProcessingHours)
}

func TestAggregate_NullFieldsExcludedFromNumericAggregates(t *testing.T) {
	t.Parallel()

	monday := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	deliveries := []domain.Delivery{
		mkDelivery(domain.StatusDelivered, "Livros", "A", "B", monday, 10, f(100), nil),
		mkDelivery(domain.StatusDelivered, "Livros", "A", "B", monday, 10, nil, f(2)),
		mkDelivery(domain.StatusDelivered, "Livros", "A", "B", monday, 10, f(300), f(4)),
	}

	snap := Aggregate(deliveries, monday)

	require.Len(t, snap.ValueByProduct, 1)
	pv := snap.ValueByProduct[0]
	assert.Equal(t, "Livros", pv.Product)
	assert.Equal(t, 2, pv.ValueCount)
	assert.Equal(t, 400.0, pv.ValueSum)
	assert.Equal(t, 200.0, pv.ValueMean)
	assert.Equal(t, 2, pv.WeightCount)
	assert.Equal(t, 6.0, pv.WeightSum)
	assert.Equal(t, 3.0, pv.WeightMean)
}

func TestAggregate_ProcessingStats(t *testing.T) {
	t.Parallel()

	monday := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	deliveries := []domain.Delivery{
		mkDelivery(domain.StatusDelivered, "X", "A", "B", monday, 10, nil, nil),
		mkDelivery(domain.StatusDelivered, "X", "A", "B", monday, 30, nil, nil),
		mkDelivery(domain.StatusPending, "X", "A", "B", monday, 5, nil, nil),
	}

	snap := Aggregate(deliveries, monday)

	require.Len(t, snap.ProcessingByStatus, 2)
	// sorted by status name
	assert.Equal(t, "entregue", snap.ProcessingByStatus[0].Status)
	assert.Equal(t, 20.0, snap.ProcessingByStatus[0].Mean)
	assert.Equal(t, 20.0, snap.ProcessingByStatus[0].Median)
	assert.InDelta(t, 14.14, snap.ProcessingByStatus[0].StdDev, 0.01)
	assert.Equal(t, 10.0, snap.ProcessingByStatus[0].Min)
	assert.Equal(t, 30.0, snap.ProcessingByStatus[0].Max)

	assert.Equal(t, "pendente", snap.ProcessingByStatus[1].Status)
	assert.Equal(t, 0.0, snap.ProcessingByStatus[1].StdDev)
}

func TestSuccessRate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, SuccessRate(0, 0))
	assert.Equal(t, 0.0, SuccessRate(5, 0))
	assert.Equal(t, 50.0, SuccessRate(1, 2))
	assert.Equal(t, 33.33, SuccessRate(1, 3))
	assert.Equal(t, 100.0, SuccessRate(3, 3))
}
