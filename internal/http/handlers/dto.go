package handlers

import "time"

type createDeliveryRequest struct {
	RemetenteNome     string `json:"remetente_nome" validate:"required"`
	RemetenteEndereco string `json:"remetente_endereco" validate:"required"`
	RemetenteCidade   string `json:"remetente_cidade" validate:"required"`

	DestinatarioNome     string `json:"destinatario_nome" validate:"required"`
	DestinatarioEndereco string `json:"destinatario_endereco" validate:"required"`
	DestinatarioCidade   string `json:"destinatario_cidade" validate:"required"`

	TipoProduto    string   `json:"tipo_produto" validate:"required"`
	Peso           *float64 `json:"peso" validate:"omitempty,gt=0"`
	ValorDeclarado *float64 `json:"valor_declarado" validate:"omitempty,gte=0"`
	Observacoes    string   `json:"observacoes"`
}

type createDeliveryResponse struct {
	ID                 int64  `json:"id"`
	CodigoRastreamento string `json:"codigo_rastreamento"`
	Status             string `json:"status"`
}

type deliverySummaryResponse struct {
	ID                 int64     `json:"id"`
	CodigoRastreamento string    `json:"codigo_rastreamento"`
	RemetenteNome      string    `json:"remetente_nome"`
	RemetenteCidade    string    `json:"remetente_cidade"`
	DestinatarioNome   string    `json:"destinatario_nome"`
	DestinatarioCidade string    `json:"destinatario_cidade"`
	TipoProduto        string    `json:"tipo_produto"`
	Peso               *float64  `json:"peso"`
	ValorDeclarado     *float64  `json:"valor_declarado"`
	Status             string    `json:"status"`
	DataCriacao        time.Time `json:"data_criacao"`
	DataAtualizacao    time.Time `json:"data_atualizacao"`
}

type deliveryDetailResponse struct {
	deliverySummaryResponse
	RemetenteEndereco    string `json:"remetente_endereco"`
	DestinatarioEndereco string `json:"destinatario_endereco"`
	Observacoes          string `json:"observacoes"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateStatusResponse struct {
	CodigoRastreamento string    `json:"codigo_rastreamento"`
	Status             string    `json:"status"`
	DataAtualizacao    time.Time `json:"data_atualizacao"`
}

type cityCountResponse struct {
	Cidade string `json:"cidade"`
	Total  int64  `json:"total"`
}

type quickStatsResponse struct {
	TotalEntregas     int64               `json:"total_entregas"`
	EntregasPorStatus map[string]int64    `json:"entregas_por_status"`
	TaxaSucesso       float64             `json:"taxa_sucesso"`
	TopCidadesDestino []cityCountResponse `json:"top_cidades_destino"`
}

type trackDeliveryResponse struct {
	Encontrado   bool   `json:"encontrado"`
	Codigo       string `json:"codigo,omitempty"`
	Status       string `json:"status,omitempty"`
	Destinatario string `json:"destinatario,omitempty"`
	CidadeDest   string `json:"cidade_destino,omitempty"`
	DataCriacao  string `json:"data_criacao,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Username string `json:"username"`
	Perfil   string `json:"perfil"`
}

type contactRequest struct {
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Telefone string `json:"telefone"`
	Assunto  string `json:"assunto" validate:"required"`
	Mensagem string `json:"mensagem" validate:"required"`
}
