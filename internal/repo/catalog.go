// Package repo contains all catalog access logic for the trip planner.
// It offers a Postgres implementation and an in-memory one; both satisfy
// CatalogRepo. No planning logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CatalogRepo is the read-only destination catalog.
// The planner and the browse endpoints depend on this interface.
type CatalogRepo interface {
	// ListDestinations returns every destination ordered by name, then country.
	ListDestinations(ctx context.Context) ([]domain.Destination, error)

	// ListActivities returns a destination's activities in catalog order.
	// An unknown destination yields an empty list, not an error.
	ListActivities(ctx context.Context, destinationID uuid.UUID) ([]domain.Activity, error)

	// GetDestination returns one destination.
	// Returns domain.ErrNotFound if no destination has that ID.
	GetDestination(ctx context.Context, id uuid.UUID) (domain.Destination, error)

	// SearchDestinations returns one page of destinations matching f, ordered
	// like ListDestinations, and the total number of matches.
	SearchDestinations(ctx context.Context, f domain.DestinationFilter, p domain.PaginationParams) ([]domain.Destination, int, error)
}

// pgCatalogRepo is the Postgres implementation of CatalogRepo.
type pgCatalogRepo struct {
	db db
}

// NewCatalogRepo constructs a CatalogRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCatalogRepo(db db) CatalogRepo {
	return &pgCatalogRepo{db: db}
}

const destinationColumns = `id, name, country, description, keywords`

func (r *pgCatalogRepo) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	const q = `
		SELECT ` + destinationColumns + `
		FROM destinations
		ORDER BY name, country`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.ListDestinations: %w", err)
	}
	defer rows.Close()

	dests, err := collectDestinations(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.ListDestinations: %w", err)
	}
	return dests, nil
}

func (r *pgCatalogRepo) ListActivities(ctx context.Context, destinationID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT id, destination_id, label, keywords
		FROM activities
		WHERE destination_id = @destination_id
		ORDER BY position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"destination_id": destinationID})
	if err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.ListActivities: %w", err)
	}
	defer rows.Close()

	acts := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CatalogRepo.ListActivities: scan: %w", err)
		}
		acts = append(acts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.ListActivities: rows: %w", err)
	}
	return acts, nil
}

func (r *pgCatalogRepo) GetDestination(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	const q = `
		SELECT ` + destinationColumns + `
		FROM destinations
		WHERE id = @id`

	d, err := scanDestination(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.CatalogRepo.GetDestination: %w", err)
	}
	return d, nil
}

func (r *pgCatalogRepo) SearchDestinations(ctx context.Context, f domain.DestinationFilter, p domain.PaginationParams) ([]domain.Destination, int, error) {
	// Empty filter values disable their predicate.
	const where = `
		WHERE (@country = '' OR lower(country) = lower(@country))
		AND   (@keyword = '' OR @keyword = ANY (keywords))`

	args := pgx.NamedArgs{
		"country": f.Country,
		"keyword": f.Keyword,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM destinations`+where, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.CatalogRepo.SearchDestinations: count: %w", err)
	}

	q := `SELECT ` + destinationColumns + ` FROM destinations` + where + `
		ORDER BY name, country
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.CatalogRepo.SearchDestinations: %w", err)
	}
	defer rows.Close()

	dests, err := collectDestinations(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.CatalogRepo.SearchDestinations: %w", err)
	}
	return dests, total, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func collectDestinations(rows pgx.Rows) ([]domain.Destination, error) {
	dests := []domain.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		dests = append(dests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return dests, nil
}

// scanDestination maps one row of destinationColumns into a domain.Destination.
func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d  domain.Destination
		id pgtype.UUID
	)
	if err := s.Scan(&id, &d.Name, &d.Country, &d.Description, &d.Keywords); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}
	d.ID = uuid.UUID(id.Bytes)
	if d.Keywords == nil {
		d.Keywords = []string{}
	}
	return d, nil
}

func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a      domain.Activity
		id     pgtype.UUID
		destID pgtype.UUID
	)
	if err := s.Scan(&id, &destID, &a.Label, &a.Keywords); err != nil {
		return domain.Activity{}, err
	}
	a.ID = uuid.UUID(id.Bytes)
	a.DestinationID = uuid.UUID(destID.Bytes)
	if a.Keywords == nil {
		a.Keywords = []string{}
	}
	return a, nil
}
