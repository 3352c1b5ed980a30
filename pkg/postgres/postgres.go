package postgres

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const driverName = "postgres"

type Postgres struct {
	Database   *sqlx.DB
	SqlBuilder squirrel.StatementBuilderType
}

func NewDB(url string) (*Postgres, error) {
	db, err := sqlx.Open(driverName, url)
	if err != nil {
		return nil, fmt.Errorf("error while opening database with driver `%s`. %w", driverName, err)
	}

	return New(db.DB), nil
}

// New wraps an already opened connection pool.
func New(db *sql.DB) *Postgres {
	return &Postgres{
		Database:   sqlx.NewDb(db, driverName),
		SqlBuilder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Postgres) Close() error {
	if p.Database != nil {
		return p.Database.Close()
	}

	return nil
}
