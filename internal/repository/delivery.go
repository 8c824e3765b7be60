package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parcel-tracking-service/internal/apperr"
	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/ports/deliverytx"
)

const deliveryColumns = `
    id, codigo_rastreamento,
    remetente_nome, remetente_endereco, remetente_cidade,
    destinatario_nome, destinatario_endereco, destinatario_cidade,
    tipo_produto, peso, valor_declarado, observacoes,
    status, data_criacao, data_atualizacao, usuario_id`

// DeliveryRepo represents delivery repository.
type DeliveryRepo struct {
	db *pgxpool.Pool
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(db *pgxpool.Pool) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *DeliveryRepo) WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// roll back on panic before re-raising
	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func scanDelivery(row pgx.Row) (*domain.Delivery, error) {
	var d domain.Delivery
	err := row.Scan(
		&d.ID, &d.TrackingCode,
		&d.SenderName, &d.SenderAddress, &d.SenderCity,
		&d.RecipientName, &d.RecipientAddress, &d.RecipientCity,
		&d.ProductType, &d.Weight, &d.DeclaredValue, &d.Notes,
		&d.Status, &d.CreatedAt, &d.UpdatedAt, &d.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByCode - returns the delivery with the given tracking code, or nil.
func (r *DeliveryRepo) GetByCode(ctx context.Context, code string) (*domain.Delivery, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM entregas WHERE codigo_rastreamento = $1`, code)
	d, err := scanDelivery(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %q: %w", code, err)
	}
	return d, nil
}

// List returns all deliveries ordered by creation time, newest first.
func (r *DeliveryRepo) List(ctx context.Context) ([]domain.Delivery, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+deliveryColumns+` FROM entregas ORDER BY data_criacao DESC`)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var out []domain.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// CodeExists reports whether a tracking code is already assigned.
func (r *DeliveryRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM entregas WHERE codigo_rastreamento = $1)`, code,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check tracking code %q: %w", code, err)
	}
	return exists, nil
}

// CountAll returns the total number of deliveries.
func (r *DeliveryRepo) CountAll(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM entregas`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count deliveries: %w", err)
	}
	return n, nil
}

// CountByStatus returns delivery counts grouped by status.
func (r *DeliveryRepo) CountByStatus(ctx context.Context) (map[domain.DeliveryStatus]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM entregas GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.DeliveryStatus]int64)
	for rows.Next() {
		var status domain.DeliveryStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[status] = n
	}
	return out, rows.Err()
}

// TopRecipientCities returns the most frequent destination cities, descending.
func (r *DeliveryRepo) TopRecipientCities(ctx context.Context, limit int) ([]domain.CityCount, error) {
	rows, err := r.db.Query(ctx, `
        SELECT destinatario_cidade, COUNT(*) AS total
        FROM entregas
        GROUP BY destinatario_cidade
        ORDER BY total DESC, destinatario_cidade ASC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("top recipient cities: %w", err)
	}
	defer rows.Close()

	var out []domain.CityCount
	for rows.Next() {
		var c domain.CityCount
		if err := rows.Scan(&c.City, &c.Total); err != nil {
			return nil, fmt.Errorf("scan city count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// CodeExists reports whether a tracking code is already assigned.
func (r *TxRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM entregas WHERE codigo_rastreamento = $1)`, code,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check tracking code %q: %w", code, err)
	}
	return exists, nil
}

// InsertDelivery - insert a new delivery.
func (r *TxRepo) InsertDelivery(ctx context.Context, d *domain.Delivery) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO entregas (
            codigo_rastreamento,
            remetente_nome, remetente_endereco, remetente_cidade,
            destinatario_nome, destinatario_endereco, destinatario_cidade,
            tipo_produto, peso, valor_declarado, observacoes,
            status, data_criacao, data_atualizacao, usuario_id
        )
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING id
    `,
		d.TrackingCode,
		d.SenderName, d.SenderAddress, d.SenderCity,
		d.RecipientName, d.RecipientAddress, d.RecipientCity,
		d.ProductType, d.Weight, d.DeclaredValue, d.Notes,
		string(d.Status), d.CreatedAt, d.UpdatedAt, d.UserID,
	).Scan(&d.ID)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.Conflict
		}
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// UpdateStatusByCode - set the status and the update timestamp. The timestamp
// is a bind parameter so it comes from the same clock as data_criacao.
// Returns nil when no delivery carries the code.
func (r *TxRepo) UpdateStatusByCode(ctx context.Context, code string, status domain.DeliveryStatus, updatedAt time.Time) (*domain.StatusUpdateResult, error) {
	var res domain.StatusUpdateResult
	err := r.tx.QueryRow(ctx, `
        UPDATE entregas
        SET status = $2, data_atualizacao = $3
        WHERE codigo_rastreamento = $1
        RETURNING codigo_rastreamento, status, data_atualizacao
    `, code, string(status), updatedAt).Scan(&res.TrackingCode, &res.Status, &res.UpdatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update delivery status %q: %w", code, err)
	}
	return &res, nil
}
