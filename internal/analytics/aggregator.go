package analytics

import (
	"sort"
	"time"

	"parcel-tracking-service/internal/domain"
)

// weekdayOrder fixes the bucket order of the temporal distribution.
// All seven buckets are always present, zero-filled when empty.
var weekdayOrder = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

const topRouteLimit = 5

// Aggregate computes the full descriptive-statistics snapshot over the
// given delivery records. It is a pure function of its inputs: records
// with missing weight or declared value are excluded from those numeric
// aggregates only, never treated as errors.
func Aggregate(deliveries []domain.Delivery, generatedAt time.Time) Snapshot {
	total := len(deliveries)

	snap := Snapshot{
		GeneratedAt:     generatedAt,
		TotalDeliveries: total,
	}

	statusCounts := make(map[string]int)
	productCounts := make(map[string]int)
	routeCounts := make(map[string]int)
	weekdayCounts := make(map[time.Weekday]int)
	monthCounts := make(map[string]int)
	hoursByStatus := make(map[string][]float64)
	var allHours []float64

	type accum struct {
		valueSum  float64
		valueN    int
		weightSum float64
		weightN   int
	}
	byProduct := make(map[string]*accum)

	var delivered int
	var totalValue, totalWeight float64

	for i := range deliveries {
		d := &deliveries[i]

		statusCounts[string(d.Status)]++
		productCounts[d.ProductType]++
		routeCounts[d.SenderCity+" → "+d.RecipientCity]++
		weekdayCounts[d.CreatedAt.Weekday()]++
		monthCounts[d.CreatedAt.Format("2006-01")]++

		hours := d.UpdatedAt.Sub(d.CreatedAt).Hours()
		hoursByStatus[string(d.Status)] = append(hoursByStatus[string(d.Status)], hours)
		allHours = append(allHours, hours)

		if d.Status == domain.StatusDelivered {
			delivered++
		}

		acc := byProduct[d.ProductType]
		if acc == nil {
			acc = &accum{}
			byProduct[d.ProductType] = acc
		}
		if d.DeclaredValue != nil {
			acc.valueSum += *d.DeclaredValue
			acc.valueN++
			totalValue += *d.DeclaredValue
		}
		if d.Weight != nil {
			acc.weightSum += *d.Weight
			acc.weightN++
			totalWeight += *d.Weight
		}
	}

	snap.StatusDistribution = toBucketShares(statusCounts, total)
	snap.ProductDistribution = toBucketShares(productCounts, total)
	snap.TopRoutes = topRoutes(routeCounts, total, topRouteLimit)

	for _, wd := range weekdayOrder {
		snap.ByWeekday = append(snap.ByWeekday, WeekdayCount{
			Day:   wd.String(),
			Count: weekdayCounts[wd],
		})
	}

	for month, n := range monthCounts {
		snap.ByMonth = append(snap.ByMonth, MonthCount{Month: month, Count: n})
	}
	sort.Slice(snap.ByMonth, func(i, j int) bool {
		return snap.ByMonth[i].Month < snap.ByMonth[j].Month
	})

	for status, hours := range hoursByStatus {
		snap.ProcessingByStatus = append(snap.ProcessingByStatus, StatusDuration{
			Status: status,
			DurationStats: DurationStats{
				Mean:   round2(Mean(hours)),
				Median: round2(Median(hours)),
				StdDev: round2(StdDev(hours)),
				Min:    round2(Min(hours)),
				Max:    round2(Max(hours)),
			},
		})
	}
	sort.Slice(snap.ProcessingByStatus, func(i, j int) bool {
		return snap.ProcessingByStatus[i].Status < snap.ProcessingByStatus[j].Status
	})

	for product, acc := range byProduct {
		pv := ProductValue{
			Product:     product,
			ValueSum:    round2(acc.valueSum),
			ValueCount:  acc.valueN,
			WeightSum:   round2(acc.weightSum),
			WeightCount: acc.weightN,
		}
		if acc.valueN > 0 {
			pv.ValueMean = round2(acc.valueSum / float64(acc.valueN))
		}
		if acc.weightN > 0 {
			pv.WeightMean = round2(acc.weightSum / float64(acc.weightN))
		}
		snap.ValueByProduct = append(snap.ValueByProduct, pv)
	}
	sort.Slice(snap.ValueByProduct, func(i, j int) bool {
		return snap.ValueByProduct[i].Product < snap.ValueByProduct[j].Product
	})

	snap.Indicators = Indicators{
		SuccessRate:         SuccessRate(delivered, total),
		MeanProcessingHours: round2(Mean(allHours)),
		TotalDeclaredValue:  round2(totalValue),
		TotalWeight:         round2(totalWeight),
	}

	return snap
}

// SuccessRate returns delivered/total as a percentage; 0 when total is 0.
func SuccessRate(delivered, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(delivered) / float64(total) * 100)
}

func toBucketShares(counts map[string]int, total int) []BucketShare {
	out := make([]BucketShare, 0, len(counts))
	for label, n := range counts {
		share := BucketShare{Label: label, Count: n}
		if total > 0 {
			share.Percent = round2(float64(n) / float64(total) * 100)
		}
		out = append(out, share)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func topRoutes(counts map[string]int, total, limit int) []RouteCount {
	out := make([]RouteCount, 0, len(counts))
	for route, n := range counts {
		rc := RouteCount{Route: route, Count: n}
		if total > 0 {
			rc.Percent = round2(float64(n) / float64(total) * 100)
		}
		out = append(out, rc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Route < out[j].Route
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
