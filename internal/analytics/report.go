package analytics

import (
	"fmt"
	"io"
	"strings"
)

// Render writes a human-readable version of the snapshot, section by
// section, for the console output of the offline analysis run.
func Render(w io.Writer, snap Snapshot) {
	rule := strings.Repeat("=", 50)

	fmt.Fprintf(w, "RELATÓRIO DE ANÁLISE DE ENTREGAS\n%s\n", rule)
	fmt.Fprintf(w, "Data da análise: %s\n", snap.GeneratedAt.Format("02/01/2006 15:04:05"))
	fmt.Fprintf(w, "Total de entregas: %d\n", snap.TotalDeliveries)

	fmt.Fprintf(w, "\nDISTRIBUIÇÃO DE STATUS\n%s\n", rule)
	for _, s := range snap.StatusDistribution {
		fmt.Fprintf(w, "%-15s: %3d entregas (%5.1f%%)\n", strings.ToUpper(s.Label), s.Count, s.Percent)
	}

	fmt.Fprintf(w, "\nPRODUTOS TRANSPORTADOS\n%s\n", rule)
	for _, p := range snap.ProductDistribution {
		fmt.Fprintf(w, "%-15s: %3d entregas (%5.1f%%)\n", strings.ToUpper(p.Label), p.Count, p.Percent)
	}

	fmt.Fprintf(w, "\nROTAS PRINCIPAIS\n%s\n", rule)
	for _, r := range snap.TopRoutes {
		fmt.Fprintf(w, "%-30s: %3d entregas (%5.1f%%)\n", r.Route, r.Count, r.Percent)
	}

	fmt.Fprintf(w, "\nANÁLISE TEMPORAL\n%s\n", rule)
	fmt.Fprintln(w, "Entregas por dia da semana:")
	for _, d := range snap.ByWeekday {
		fmt.Fprintf(w, "%-10s: %3d entregas\n", d.Day, d.Count)
	}
	fmt.Fprintln(w, "\nEntregas por mês:")
	for _, m := range snap.ByMonth {
		fmt.Fprintf(w, "%s: %3d entregas\n", m.Month, m.Count)
	}

	fmt.Fprintf(w, "\nPERFORMANCE\n%s\n", rule)
	fmt.Fprintln(w, "Tempo de processamento por status (horas):")
	for _, p := range snap.ProcessingByStatus {
		fmt.Fprintf(w, "%-12s media=%.2f mediana=%.2f desvio=%.2f min=%.2f max=%.2f\n",
			p.Status, p.Mean, p.Median, p.StdDev, p.Min, p.Max)
	}
	fmt.Fprintf(w, "Taxa de sucesso: %.1f%%\n", snap.Indicators.SuccessRate)
	fmt.Fprintf(w, "Tempo médio de processamento: %.1fh\n", snap.Indicators.MeanProcessingHours)

	fmt.Fprintf(w, "\nVALOR E PESO\n%s\n", rule)
	fmt.Fprintf(w, "Valor declarado total: R$ %.2f\n", snap.Indicators.TotalDeclaredValue)
	fmt.Fprintf(w, "Peso total: %.2f kg\n", snap.Indicators.TotalWeight)
	for _, v := range snap.ValueByProduct {
		fmt.Fprintf(w, "%-15s valor_medio=%.2f valor_total=%.2f (%d) peso_medio=%.2f peso_total=%.2f (%d)\n",
			v.Product, v.ValueMean, v.ValueSum, v.ValueCount, v.WeightMean, v.WeightSum, v.WeightCount)
	}
}
