package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, order_number, user_id, total, status, created_at, updated_at`

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.UserID,
		&o.Total,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

const insertOrder = `INSERT INTO orders (id, order_number, user_id, total, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + orderColumns

type InsertOrderParams struct {
	ID          uuid.UUID
	OrderNumber string
	UserID      uuid.UUID
	Total       pgtype.Numeric
	Status      OrderStatus
}

func (q *Queries) InsertOrder(c context.Context, arg InsertOrderParams) (Order, error) {
	row := q.db.QueryRow(
		c,
		insertOrder,
		arg.ID,
		arg.OrderNumber,
		arg.UserID,
		arg.Total,
		arg.Status,
	)
	return scanOrder(row)
}

const insertOrderItem = `INSERT INTO order_items (id, order_id, product_id, quantity, price)
VALUES ($1, $2, $3, $4, $5)`

type InsertOrderItemParams struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int32
	Price     pgtype.Numeric
}

func (q *Queries) InsertOrderItems(
	c context.Context,
	args []InsertOrderItemParams,
) (int64, error) {
	var inserted int64
	for _, arg := range args {
		tag, err := q.db.Exec(
			c,
			insertOrderItem,
			arg.ID,
			arg.OrderID,
			arg.ProductID,
			arg.Quantity,
			arg.Price,
		)
		if err != nil {
			return inserted, err
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

const findOrderById = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

func (q *Queries) FindOrderById(c context.Context, id uuid.UUID) (Order, error) {
	return scanOrder(q.db.QueryRow(c, findOrderById, id))
}

const findOrderByNumber = `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1`

func (q *Queries) FindOrderByNumber(c context.Context, orderNumber string) (Order, error) {
	return scanOrder(q.db.QueryRow(c, findOrderByNumber, orderNumber))
}

const findOrdersByUserId = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

func (q *Queries) FindOrdersByUserId(c context.Context, userID uuid.UUID) ([]Order, error) {
	rows, err := q.db.Query(c, findOrdersByUserId, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orders := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

const findOrderItemsByOrderId = `SELECT oi.id, oi.order_id, oi.product_id, p.name AS product_name, oi.quantity, oi.price, oi.created_at
FROM order_items oi
JOIN products p ON p.id = oi.product_id
WHERE oi.order_id = $1
ORDER BY oi.created_at`

type FindOrderItemsByOrderIdRow struct {
	ID          uuid.UUID          `json:"id"`
	OrderID     uuid.UUID          `json:"order_id"`
	ProductID   uuid.UUID          `json:"product_id"`
	ProductName string             `json:"product_name"`
	Quantity    int32              `json:"quantity"`
	Price       pgtype.Numeric     `json:"price"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) FindOrderItemsByOrderId(
	c context.Context,
	orderID uuid.UUID,
) ([]FindOrderItemsByOrderIdRow, error) {
	rows, err := q.db.Query(c, findOrderItemsByOrderId, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []FindOrderItemsByOrderIdRow{}
	for rows.Next() {
		var i FindOrderItemsByOrderIdRow
		err := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.ProductID,
			&i.ProductName,
			&i.Quantity,
			&i.Price,
			&i.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
