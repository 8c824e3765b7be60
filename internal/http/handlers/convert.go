package handlers

import "parcel-tracking-service/internal/domain"

// Display format of creation timestamps on the public tracking lookup.
const trackTimeLayout = "02/01/2006 15:04"

func deliveryToSummary(d *domain.Delivery) deliverySummaryResponse {
	return deliverySummaryResponse{
		ID:                 d.ID,
		CodigoRastreamento: d.TrackingCode,
		RemetenteNome:      d.SenderName,
		RemetenteCidade:    d.SenderCity,
		DestinatarioNome:   d.RecipientName,
		DestinatarioCidade: d.RecipientCity,
		TipoProduto:        d.ProductType,
		Peso:               d.Weight,
		ValorDeclarado:     d.DeclaredValue,
		Status:             string(d.Status),
		DataCriacao:        d.CreatedAt,
		DataAtualizacao:    d.UpdatedAt,
	}
}

func deliveryToDetail(d *domain.Delivery) deliveryDetailResponse {
	return deliveryDetailResponse{
		deliverySummaryResponse: deliveryToSummary(d),
		RemetenteEndereco:       d.SenderAddress,
		DestinatarioEndereco:    d.RecipientAddress,
		Observacoes:             d.Notes,
	}
}

func deliveryToTrack(d *domain.Delivery) trackDeliveryResponse {
	return trackDeliveryResponse{
		Encontrado:   true,
		Codigo:       d.TrackingCode,
		Status:       string(d.Status),
		Destinatario: d.RecipientName,
		CidadeDest:   d.RecipientCity,
		DataCriacao:  d.CreatedAt.Format(trackTimeLayout),
	}
}

func statsToResponse(s *domain.QuickStats) quickStatsResponse {
	byStatus := make(map[string]int64, len(s.ByStatus))
	for status, n := range s.ByStatus {
		byStatus[string(status)] = n
	}

	cities := make([]cityCountResponse, 0, len(s.TopCities))
	for _, c := range s.TopCities {
		cities = append(cities, cityCountResponse{Cidade: c.City, Total: c.Total})
	}

	return quickStatsResponse{
		TotalEntregas:     s.TotalDeliveries,
		EntregasPorStatus: byStatus,
		TaxaSucesso:       s.SuccessRate,
		TopCidadesDestino: cities,
	}
}

func createRequestToInput(req *createDeliveryRequest, userID *int64) domain.NewDeliveryInput {
	return domain.NewDeliveryInput{
		SenderName:       req.RemetenteNome,
		SenderAddress:    req.RemetenteEndereco,
		SenderCity:       req.RemetenteCidade,
		RecipientName:    req.DestinatarioNome,
		RecipientAddress: req.DestinatarioEndereco,
		RecipientCity:    req.DestinatarioCidade,
		ProductType:      req.TipoProduto,
		Weight:           req.Peso,
		DeclaredValue:    req.ValorDeclarado,
		Notes:            req.Observacoes,
		UserID:           userID,
	}
}
