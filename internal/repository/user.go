package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password, created_at, updated_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const insertUser = `INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING ` + userColumns

type InsertUserParams struct {
	Name     string
	Email    string
	Password string
}

func (q *Queries) InsertUser(c context.Context, arg InsertUserParams) (User, error) {
	return scanUser(q.db.QueryRow(c, insertUser, arg.Name, arg.Email, arg.Password))
}

const findUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) FindUserByEmail(c context.Context, email string) (User, error) {
	return scanUser(q.db.QueryRow(c, findUserByEmail, email))
}

const findUserById = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) FindUserById(c context.Context, id uuid.UUID) (User, error) {
	return scanUser(q.db.QueryRow(c, findUserById, id))
}
