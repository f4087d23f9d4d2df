package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"go-produtos-api/internal/model"
)

const userTable = "usuario"

var userColumns = []string{"id", "nome", "login", "senha", "email", "roles"}

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id}, "find user by id")
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (model.User, error) {
	return r.findOne(ctx, sq.Eq{"login": login}, "find user by login")
}

func (r *UserRepository) findOne(ctx context.Context, where sq.Eq, op string) (model.User, error) {
	query, args, err := psql.Select(userColumns...).From(userTable).Where(where).Limit(1).ToSql()
	if err != nil {
		return model.User{}, fmt.Errorf("build %s: %w", op, err)
	}

	var u model.User
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Nome, &u.Login, &u.Senha, &u.Email, &u.Roles)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

// Create inserts u and returns the generated id. An empty Roles leaves the
// column default in place.
func (r *UserRepository) Create(ctx context.Context, u model.User) (int64, error) {
	columns := []string{"nome", "login", "senha", "email"}
	values := []any{u.Nome, u.Login, u.Senha, u.Email}
	if strings.TrimSpace(u.Roles) != "" {
		columns = append(columns, "roles")
		values = append(values, u.Roles)
	}

	query, args, err := psql.Insert(userTable).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build create user: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}
