// Package directory resolves building, department and employee ids to the
// display names carried on porter request snapshots.
package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// PGResolver reads names straight from the directory tables. Unknown ids
// resolve to an empty name.
type PGResolver struct {
	db rowQuerier
}

func NewPGResolver(pool *pgxpool.Pool) *PGResolver {
	return &PGResolver{db: pool}
}

func (r *PGResolver) lookup(ctx context.Context, kind, query, id string) (string, error) {
	var name string
	err := r.db.QueryRow(ctx, query, id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("resolve %s %s: %w", kind, id, err)
	}
	return name, nil
}

func (r *PGResolver) BuildingName(ctx context.Context, id string) (string, error) {
	return r.lookup(ctx, "building", `SELECT name FROM building WHERE id = $1`, id)
}

func (r *PGResolver) DepartmentName(ctx context.Context, id string) (string, error) {
	return r.lookup(ctx, "department", `SELECT name FROM floor_department WHERE id = $1`, id)
}

func (r *PGResolver) EmployeeName(ctx context.Context, id string) (string, error) {
	return r.lookup(ctx, "employee",
		`SELECT TRIM(first_name || ' ' || last_name) FROM employee WHERE id = $1`, id)
}
