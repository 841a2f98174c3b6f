package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const productColumns = `id, name, slug, category, color_variants, price, quantity, created_at, updated_at`

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Category,
		&p.ColorVariants,
		&p.Price,
		&p.Quantity,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const insertProduct = `INSERT INTO products (name, slug, category, color_variants, price, quantity)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + productColumns

type InsertProductParams struct {
	Name          string
	Slug          string
	Category      string
	ColorVariants []string
	Price         pgtype.Numeric
	Quantity      int32
}

func (q *Queries) InsertProduct(c context.Context, arg InsertProductParams) (Product, error) {
	row := q.db.QueryRow(
		c,
		insertProduct,
		arg.Name,
		arg.Slug,
		arg.Category,
		arg.ColorVariants,
		arg.Price,
		arg.Quantity,
	)
	return scanProduct(row)
}

const findProductById = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

func (q *Queries) FindProductById(c context.Context, id uuid.UUID) (Product, error) {
	return scanProduct(q.db.QueryRow(c, findProductById, id))
}

const findProductBySlug = `SELECT ` + productColumns + ` FROM products WHERE slug = $1`

func (q *Queries) FindProductBySlug(c context.Context, slug string) (Product, error) {
	return scanProduct(q.db.QueryRow(c, findProductBySlug, slug))
}

const findProductByName = `SELECT ` + productColumns + ` FROM products WHERE name = $1`

func (q *Queries) FindProductByName(c context.Context, name string) (Product, error) {
	return scanProduct(q.db.QueryRow(c, findProductByName, name))
}

const findProducts = `SELECT ` + productColumns + ` FROM products ORDER BY name`

func (q *Queries) FindProducts(c context.Context) ([]Product, error) {
	rows, err := q.db.Query(c, findProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

const findProductsByCategory = `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY name`

func (q *Queries) FindProductsByCategory(c context.Context, category string) ([]Product, error) {
	rows, err := q.db.Query(c, findProductsByCategory, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

const findProductsByIds = `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1::uuid[])`

func (q *Queries) FindProductsByIds(c context.Context, ids []uuid.UUID) ([]Product, error) {
	rows, err := q.db.Query(c, findProductsByIds, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// The quantity guard makes the decrement a conditional write: under concurrent
// checkouts the row lock taken by UPDATE serializes the read-modify-write, so
// stock can never go negative. pgx.ErrNoRows means the product is either
// missing or out of stock.
const decrementProductQuantity = `UPDATE products
SET quantity = quantity - $2, updated_at = now()
WHERE id = $1 AND quantity >= $2
RETURNING ` + productColumns

type DecrementProductQuantityParams struct {
	ID       uuid.UUID
	Quantity int32
}

func (q *Queries) DecrementProductQuantity(
	c context.Context,
	arg DecrementProductQuantityParams,
) (Product, error) {
	return scanProduct(q.db.QueryRow(c, decrementProductQuantity, arg.ID, arg.Quantity))
}
