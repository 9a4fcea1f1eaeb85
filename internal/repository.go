package internal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v4/stdlib"
	"go.uber.org/zap"

	"github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/migrations"
	"github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/model"
)

var orderFields = []string{
	"id",
	"user_id",
	"pickup_deadline",
	"placed_at",
	"status",
	"priority",
	"estimated_prep_minutes",
	"preparation_started_at",
	"archived",
	"total_amount",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type IRepository interface {
	GetOpenOrders(context.Context) ([]model.Order, error)
	GetOrder(context.Context, int64) (model.Order, error)
	GetOrderItems(context.Context, int64) ([]model.OrderItem, error)
	UpdateStatus(ctx context.Context, id int64, from, to model.Status, startedAt *time.Time) error
	UpdatePriority(context.Context, int64, model.Priority) error
	SetEstimatedPrep(context.Context, int64, int) error
	GetArchivableOrderIDs(ctx context.Context, status model.Status, cutoff time.Time) ([]int64, error)
	BulkArchive(context.Context, []int64) (int64, error)
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	if err = conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	if err = migrations.Up(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) Close() error {
	return r.Conn.Close()
}

func (r Repository) GetOpenOrders(ctx context.Context) ([]model.Order, error) {
	query, args, err := psql.Select(orderFields...).
		From("orders").
		Where(sq.Eq{"status": statusStrings(model.OpenStatuses)}).
		Where(sq.Eq{"archived": false}).
		// orders without a computed priority go after every tier
		OrderBy("pickup_deadline ASC", "NULLIF(priority, 0) ASC NULLS LAST", "placed_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query open orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r Repository) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	query, args, err := psql.Select(orderFields...).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Order{}, err
	}

	o, err := scanOrder(r.Conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, ErrNotFound
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("get order %d: %w", id, err)
	}

	o.Items, err = r.GetOrderItems(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r Repository) GetOrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	query, args, err := psql.Select("food_item_id", "food_item_name", "quantity", "customization").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get items of order %d: %w", orderID, err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var (
			it           model.OrderItem
			foodID       sql.NullInt64
			name, custom sql.NullString
		)
		if err = rows.Scan(&foodID, &name, &it.Quantity, &custom); err != nil {
			return nil, err
		}
		it.FoodItemID = foodID.Int64
		it.FoodItemName = name.String
		it.Customization = custom.String
		items = append(items, it)
	}

	return items, rows.Err()
}

// UpdateStatus moves the order from one status to another only if it is
// still in the from status. startedAt is written when non-nil.
func (r Repository) UpdateStatus(ctx context.Context, id int64, from, to model.Status, startedAt *time.Time) error {
	b := psql.Update("orders").Set("status", string(to))
	if startedAt != nil {
		b = b.Set("preparation_started_at", *startedAt)
	}
	query, args, err := b.
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": string(from)}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.Conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update status of order %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return r.missOrConflict(ctx, id)
	}
	return nil
}

// UpdatePriority never touches orders that already left the open set.
func (r Repository) UpdatePriority(ctx context.Context, id int64, p model.Priority) error {
	query, args, err := psql.Update("orders").
		Set("priority", int(p)).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": statusStrings(model.OpenStatuses)}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.Conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update priority of order %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStatusConflict
	}
	return nil
}

// SetEstimatedPrep stores the estimate only while it is still unset.
func (r Repository) SetEstimatedPrep(ctx context.Context, id int64, minutes int) error {
	query, args, err := psql.Update("orders").
		Set("estimated_prep_minutes", minutes).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"estimated_prep_minutes": 0}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.Conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set prep estimate of order %d: %w", id, err)
	}
	return nil
}

func (r Repository) GetArchivableOrderIDs(ctx context.Context, status model.Status, cutoff time.Time) ([]int64, error) {
	query, args, err := psql.Select("id").
		From("orders").
		Where(sq.Eq{"status": string(status)}).
		Where(sq.Lt{"placed_at": cutoff}).
		Where(sq.Eq{"archived": false}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query archivable orders: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r Repository) BulkArchive(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := psql.Update("orders").
		Set("archived", true).
		Where(sq.Eq{"id": ids}).
		Where(sq.Eq{"archived": false}).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.Conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("archive orders: %w", err)
	}
	return res.RowsAffected()
}

func (r Repository) missOrConflict(ctx context.Context, id int64) error {
	var status string
	err := r.Conn.QueryRowContext(ctx, "SELECT status FROM orders WHERE id = $1", id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if r.Logger != nil {
		r.Logger.Debugf("order %d changed concurrently, now %s", id, status)
	}
	return fmt.Errorf("order %d is %s: %w", id, status, ErrStatusConflict)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(s scanner) (model.Order, error) {
	var (
		o        model.Order
		deadline sql.NullTime
		started  sql.NullTime
		status   string
		priority int
	)

	err := s.Scan(&o.ID, &o.UserID, &deadline, &o.PlacedAt, &status, &priority,
		&o.EstimatedPrepMinutes, &started, &o.Archived, &o.TotalAmount)
	if err != nil {
		return model.Order{}, err
	}

	o.Status = model.Status(status)
	o.Priority = model.Priority(priority)
	if deadline.Valid {
		o.PickupDeadline = deadline.Time
	}
	if started.Valid {
		t := started.Time
		o.PreparationStartedAt = &t
	}
	return o, nil
}

func statusStrings(statuses []model.Status) []string {
	res := make([]string, len(statuses))
	for i, s := range statuses {
		res[i] = string(s)
	}
	return res
}
