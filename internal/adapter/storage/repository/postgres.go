package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rgladkov/shoporder/internal/adapter/storage"
	"github.com/rgladkov/shoporder/internal/core/domain"
	"github.com/rgladkov/shoporder/internal/core/port"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

var orderColumns = []string{
	"id", "customer_id", "customer_email", "status", "price_paid_in_cents",
	"billing_address", "shipping_address",
	"carrier_order_id", "carrier_status", "carrier_waybill_number", "carrier_tracking_url",
	"created_at", "updated_at",
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	var billing, shipping []byte
	var carrierOrderID, carrierStatus, waybill, trackingURL *string

	err := row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.CustomerEmail,
		&order.Status,
		&order.PricePaidInCents,
		&billing,
		&shipping,
		&carrierOrderID,
		&carrierStatus,
		&waybill,
		&trackingURL,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(billing, &order.BillingAddress); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(shipping, &order.ShippingAddress); err != nil {
		return nil, err
	}

	if carrierOrderID != nil {
		order.CarrierOrderID = *carrierOrderID
	}
	if carrierStatus != nil {
		order.CarrierStatus = *carrierStatus
	}
	if waybill != nil {
		order.CarrierWaybillNumber = *waybill
	}
	if trackingURL != nil {
		order.CarrierTrackingURL = *trackingURL
	}

	return &order, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	items, err := r.readItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *Repository) readItems(ctx context.Context, orderID string) ([]domain.LineItem, error) {
	statement := r.db.QueryBuilder.
		Select("product_id", "quantity", "unit_price_cents").
		From("order_items").
		Where(sq.Eq{"order_id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.LineItem, 0)
	for rows.Next() {
		item := domain.LineItem{}
		err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPriceCents)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// UpdateOrderShipment applies fn to the order under SELECT ... FOR UPDATE and
// writes status and carrier fields in one transaction. fn runs against the
// stored row, so a stale in-memory copy can never overwrite a status another
// writer advanced in the meantime.
func (r *Repository) UpdateOrderShipment(ctx context.Context,
	orderID string, fn port.UpdateOrderFn) (*domain.Order, error) {
	var order *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.
			Select(orderColumns...).
			From("orders").
			Where(sq.Eq{"id": orderID}).
			Suffix("FOR UPDATE")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		order, err = scanOrder(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrDataNotFound
			}
			return err
		}

		if err := fn(order); err != nil {
			return err
		}

		update := r.db.QueryBuilder.
			Update("orders").
			Set("status", order.Status).
			Set("carrier_order_id", nullable(order.CarrierOrderID)).
			Set("carrier_status", nullable(order.CarrierStatus)).
			Set("carrier_waybill_number", nullable(order.CarrierWaybillNumber)).
			Set("carrier_tracking_url", nullable(order.CarrierTrackingURL)).
			Set("updated_at", time.Now()).
			Where(sq.Eq{"id": order.ID})

		sql, args, err = update.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrConflictingData
			}
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) ListOpenShipments(ctx context.Context) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.NotEq{"carrier_order_id": nil}).
		Where(sq.NotEq{"status": []string{
			string(domain.OrderStatusDelivered),
			string(domain.OrderStatusCancelled),
		}}).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	return list, rows.Err()
}

func (r *Repository) ReadPaymentByOrder(ctx context.Context, orderID string) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "status", "transaction_id", "amount_cents", "created_at", "updated_at").
		From("payments").
		Where(sq.Eq{"order_id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	payment, err := scanPayment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return payment, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	payment := domain.Payment{}
	var transactionID *string

	err := row.Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Status,
		&transactionID,
		&payment.AmountCents,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if transactionID != nil {
		payment.TransactionID = *transactionID
	}

	return &payment, nil
}

// UpdateOrderPayment applies fn to the order/payment pair and writes both
// rows in one transaction. SELECT ... FOR UPDATE on the order row gives the
// per-order serialization the racing webhook and verification paths rely on.
func (r *Repository) UpdateOrderPayment(ctx context.Context,
	orderID string, fn port.UpdateOrderPaymentFn) (*domain.Order, error) {
	var order *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Select(orderColumns...).
			From("orders").
			Where(sq.Eq{"id": orderID}).
			Suffix("FOR UPDATE")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		order, err = scanOrder(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrDataNotFound
			}
			return err
		}

		paymentSt := r.db.QueryBuilder.
			Select("id", "order_id", "status", "transaction_id", "amount_cents", "created_at", "updated_at").
			From("payments").
			Where(sq.Eq{"order_id": orderID}).
			Suffix("FOR UPDATE")

		sql, args, err = paymentSt.ToSql()
		if err != nil {
			return err
		}

		payment, err := scanPayment(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrDataNotFound
			}
			return err
		}

		if err := fn(order, payment); err != nil {
			return err
		}

		now := time.Now()

		updPayment := r.db.QueryBuilder.
			Update("payments").
			Set("status", payment.Status).
			Set("transaction_id", nullable(payment.TransactionID)).
			Set("updated_at", now).
			Where(sq.Eq{"id": payment.ID})

		sql, args, err = updPayment.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		updOrder := r.db.QueryBuilder.
			Update("orders").
			Set("status", order.Status).
			Set("updated_at", now).
			Where(sq.Eq{"id": order.ID})

		sql, args, err = updOrder.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}
