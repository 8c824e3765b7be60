package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitSchema creates the usuarios and entregas tables if they do not exist.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS usuarios (
			id            BIGSERIAL PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			perfil        TEXT NOT NULL DEFAULT 'operador',
			ativo         BOOLEAN NOT NULL DEFAULT TRUE,
			data_criacao  TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("create usuarios table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS entregas (
			id                    BIGSERIAL PRIMARY KEY,
			codigo_rastreamento   TEXT NOT NULL UNIQUE,
			remetente_nome        TEXT NOT NULL,
			remetente_endereco    TEXT NOT NULL,
			remetente_cidade      TEXT NOT NULL,
			destinatario_nome     TEXT NOT NULL,
			destinatario_endereco TEXT NOT NULL,
			destinatario_cidade   TEXT NOT NULL,
			tipo_produto          TEXT NOT NULL,
			peso                  DOUBLE PRECISION,
			valor_declarado       DOUBLE PRECISION,
			observacoes           TEXT NOT NULL DEFAULT '',
			status                TEXT NOT NULL DEFAULT 'pendente',
			data_criacao          TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL,
			data_atualizacao      TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL,
			usuario_id            BIGINT REFERENCES usuarios(id)
		);
	`)
	if err != nil {
		return fmt.Errorf("create entregas table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_entregas_status ON entregas (status);
		CREATE INDEX IF NOT EXISTS idx_entregas_destinatario_cidade ON entregas (destinatario_cidade);
	`)
	if err != nil {
		return fmt.Errorf("create entregas indexes: %w", err)
	}

	return nil
}
