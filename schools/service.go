package schools

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/schoolfinder-go/apperror"
)

// Store is the persistence surface the school handlers depend on.
// *SchoolService satisfies it; tests substitute a fake.
type Store interface {
	AddSchool(ctx context.Context, school *School) (*School, error)
	FindAll(ctx context.Context) ([]School, error)
}

// SchoolService persists and retrieves school records via PostgreSQL.
type SchoolService struct {
	db *pgxpool.Pool
}

// NewSchoolService creates a new SchoolService.
func NewSchoolService(db *pgxpool.Pool) *SchoolService {
	return &SchoolService{db: db}
}

// AddSchool inserts a validated school record and fills in its generated
// identifier and creation timestamp.
func (s *SchoolService) AddSchool(ctx context.Context, school *School) (*School, error) {
	query := `INSERT INTO schools (name, address, latitude, longitude)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`
	err := s.db.QueryRow(ctx, query, school.Name, school.Address, school.Latitude, school.Longitude).
		Scan(&school.ID, &school.CreatedAt)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to add school", err)
	}
	return school, nil
}

// FindAll returns every stored school in insertion order. The listing
// endpoint recomputes distances over this full set on each request.
func (s *SchoolService) FindAll(ctx context.Context) ([]School, error) {
	query := `SELECT id, name, address, latitude, longitude, created_at
	          FROM schools
	          ORDER BY id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list schools", err)
	}
	defer rows.Close()

	var schools []School
	for rows.Next() {
		var school School
		if err := rows.Scan(&school.ID, &school.Name, &school.Address,
			&school.Latitude, &school.Longitude, &school.CreatedAt); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan school row", err)
		}
		schools = append(schools, school)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read school rows", err)
	}
	return schools, nil
}
