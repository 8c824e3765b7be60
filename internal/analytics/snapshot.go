package analytics

import "time"

// Snapshot is the immutable result of one aggregation run over the
// delivery records, timestamped at generation. Serialized as-is into the
// report artifact consumed by the chart renderer.
type Snapshot struct {
	GeneratedAt         time.Time        `json:"data_analise"`
	TotalDeliveries     int              `json:"total_entregas"`
	StatusDistribution  []BucketShare    `json:"distribuicao_status"`
	ProductDistribution []BucketShare    `json:"distribuicao_produtos"`
	TopRoutes           []RouteCount     `json:"rotas_principais"`
	ByWeekday           []WeekdayCount   `json:"entregas_por_dia_semana"`
	ByMonth             []MonthCount     `json:"entregas_por_mes"`
	ProcessingByStatus  []StatusDuration `json:"tempo_processamento_por_status"`
	ValueByProduct      []ProductValue   `json:"valor_por_produto"`
	Indicators          Indicators       `json:"indicadores"`
}

// BucketShare is a count plus its share of the total, for one group label.
type BucketShare struct {
	Label   string  `json:"label"`
	Count   int     `json:"total"`
	Percent float64 `json:"percentual"`
}

// RouteCount counts deliveries on one origin → destination city pair.
type RouteCount struct {
	Route   string  `json:"rota"`
	Count   int     `json:"total"`
	Percent float64 `json:"percentual"`
}

// WeekdayCount counts deliveries created on one day of the week.
type WeekdayCount struct {
	Day   string `json:"dia"`
	Count int    `json:"total"`
}

// MonthCount counts deliveries created in one year-month.
type MonthCount struct {
	Month string `json:"mes"`
	Count int    `json:"total"`
}

// DurationStats are descriptive statistics over processing times, in hours.
type DurationStats struct {
	Mean   float64 `json:"media"`
	Median float64 `json:"mediana"`
	StdDev float64 `json:"desvio_padrao"`
	Min    float64 `json:"minimo"`
	Max    float64 `json:"maximo"`
}

// StatusDuration holds processing-time statistics for one status group.
type StatusDuration struct {
	Status string `json:"status"`
	DurationStats
}

// ProductValue summarizes declared value and weight for one product category.
// Records missing a field are excluded from that field's aggregates only.
type ProductValue struct {
	Product     string  `json:"tipo_produto"`
	ValueMean   float64 `json:"valor_medio"`
	ValueSum    float64 `json:"valor_total"`
	ValueCount  int     `json:"valor_qtd"`
	WeightMean  float64 `json:"peso_medio"`
	WeightSum   float64 `json:"peso_total"`
	WeightCount int     `json:"peso_qtd"`
}

// Indicators are the headline operational metrics.
type Indicators struct {
	SuccessRate         float64 `json:"taxa_sucesso"`
	MeanProcessingHours float64 `json:"tempo_medio_processamento"`
	TotalDeclaredValue  float64 `json:"total_valor_declarado"`
	TotalWeight         float64 `json:"peso_total"`
}
