package domain

// CityCount pairs a destination city with its delivery count.
type CityCount struct {
	City  string
	Total int64
}

// QuickStats is the summary served by the statistics endpoint.
type QuickStats struct {
	TotalDeliveries int64
	ByStatus        map[DeliveryStatus]int64
	SuccessRate     float64
	TopCities       []CityCount
}
