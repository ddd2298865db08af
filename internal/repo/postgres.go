package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-order-bot/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveOrderLog is idempotent per order id, so a retried insert never
// produces a second billing row.
func (r *postgresRepo) SaveOrderLog(ctx context.Context, e entities.OrderLogEntry) error {
	query, args := r.qb.Insert("order_log").
		Columns("order_id", "order_number", "restaurant", "total_price", "created_at").
		Values(e.OrderID, e.OrderNumber, e.Restaurant, e.TotalPrice, e.CreatedAt).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order log: %w", err)
	}
	return nil
}

func (r *postgresRepo) OrderLogByID(ctx context.Context, orderID string) (entities.OrderLogEntry, error) {
	query, args := r.qb.Select("id", "order_id", "order_number", "restaurant", "total_price", "created_at").
		From("order_log").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var row OrderLog
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.OrderLogEntry{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.OrderLogEntry{}, fmt.Errorf("failed to get order log: %w", err)
	}
	return OrderLogToEntity(row), nil
}

// CountAndSum aggregates the order log over [from, to). Zero bounds are open.
func (r *postgresRepo) CountAndSum(ctx context.Context, from, to time.Time) (entities.Stats, error) {
	q := r.qb.Select("COUNT(*) AS count", "COALESCE(SUM(total_price), 0) AS total").
		From("order_log")
	if !from.IsZero() {
		q = q.Where(sq.GtOrEq{"created_at": from})
	}
	if !to.IsZero() {
		q = q.Where(sq.Lt{"created_at": to})
	}
	query, args := q.MustSql()

	var row Stats
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.Stats{}, fmt.Errorf("failed to aggregate order log: %w", err)
	}
	return StatsToEntity(row), nil
}

func (r *postgresRepo) SaveDeliveryPerson(ctx context.Context, p entities.DeliveryPerson) error {
	query, args := r.qb.Insert("delivery_persons").
		Columns("restaurant", "name", "phone").
		Values(p.Restaurant, p.Name, p.Phone).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return entities.ErrDeliveryPersonExists
		}
		return fmt.Errorf("failed to save delivery person: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeliveryPersonExists(ctx context.Context, restaurant, name string) (bool, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("delivery_persons").
		Where(sq.Eq{"restaurant": restaurant, "name": name}).
		MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("failed to check delivery person: %w", err)
	}
	return count > 0, nil
}

func (r *postgresRepo) ListDeliveryPeople(ctx context.Context, restaurant string) ([]entities.DeliveryPerson, error) {
	query, args := r.qb.Select("id", "restaurant", "name", "phone").
		From("delivery_persons").
		Where(sq.Eq{"restaurant": restaurant}).
		OrderBy("id").
		MustSql()

	var rows []DeliveryPerson
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list delivery people: %w", err)
	}

	res := make([]entities.DeliveryPerson, 0, len(rows))
	for _, p := range rows {
		res = append(res, DeliveryPersonToEntity(p))
	}
	return res, nil
}

func (r *postgresRepo) DeleteDeliveryPerson(ctx context.Context, restaurant, name string) error {
	query, args := r.qb.Delete("delivery_persons").
		Where(sq.Eq{"restaurant": restaurant, "name": name}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete delivery person: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete delivery person: %w", err)
	}
	if n == 0 {
		return entities.ErrDeliveryPersonNotFound
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
