package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"protender-api/internal/entity"
	"protender-api/internal/repo/repo_errors"
	"protender-api/pkg/postgres"
)

const userColumns = "id, email, password_digest, role, created_at, updated_at"

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func (r *UserRepo) CreateUser(ctx context.Context, input *entity.CreateUserInput) (*entity.User, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Insert("users").
		Columns("email", "password_digest", "role").
		Values(input.Email, input.PasswordDigest, input.Role).
		Suffix("RETURNING " + userColumns).
		ToSql()

	var user entity.User
	if err := r.Database.GetContext(ctx, &user, sqlReq, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, repo_errors.ErrAlreadyExists
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select(userColumns).
		From("users").
		Where("email = ?", email).
		ToSql()

	var user entity.User
	if err := r.Database.GetContext(ctx, &user, sqlReq, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) DoesUserExistByEmail(ctx context.Context, email string) (bool, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select("id").
		From("users").
		Where("email = ?", email).
		ToSql()

	var id string
	err := r.Database.QueryRowxContext(ctx, sqlReq, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
