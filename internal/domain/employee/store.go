package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("employee not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
    id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(address, ''),
    date_of_birth, COALESCE(department, ''), hourly_rate, role, created_at, updated_at`

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	err := row.Scan(&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone,
		&emp.Address, &emp.DateOfBirth, &emp.Department, &emp.HourlyRate, &emp.Role,
		&emp.CreatedAt, &emp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return emp, err
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, "SELECT"+employeeColumns+" FROM employees ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, "SELECT"+employeeColumns+" FROM employees WHERE id = $1", id))
}

func (s *Store) FindByEmail(ctx context.Context, email string) (Employee, string, error) {
	row := s.DB.QueryRow(ctx, "SELECT"+employeeColumns+", password_hash FROM employees WHERE email = $1", email)
	var emp Employee
	var hash string
	err := row.Scan(&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone,
		&emp.Address, &emp.DateOfBirth, &emp.Department, &emp.HourlyRate, &emp.Role,
		&emp.CreatedAt, &emp.UpdatedAt, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, "", ErrNotFound
	}
	return emp, hash, err
}

func (s *Store) Create(ctx context.Context, emp Employee, passwordHash string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (first_name, last_name, email, phone, address, date_of_birth, department, hourly_rate, password_hash, role)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    RETURNING id
  `, emp.FirstName, emp.LastName, emp.Email, nullIfEmpty(emp.Phone), nullIfEmpty(emp.Address),
		emp.DateOfBirth, nullIfEmpty(emp.Department), emp.HourlyRate, passwordHash, roleOrDefault(emp.Role)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update touches profile and employment fields. Rate changes do not touch
// existing payroll records; those keep the rate they were computed with.
func (s *Store) Update(ctx context.Context, emp Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET first_name = $1, last_name = $2, email = $3, phone = $4, address = $5,
        date_of_birth = $6, department = $7, hourly_rate = $8, updated_at = now()
    WHERE id = $9
  `, emp.FirstName, emp.LastName, emp.Email, nullIfEmpty(emp.Phone), nullIfEmpty(emp.Address),
		emp.DateOfBirth, nullIfEmpty(emp.Department), emp.HourlyRate, emp.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := s.DB.Exec(ctx, "UPDATE employees SET password_hash = $1, updated_at = now() WHERE id = $2", passwordHash, id)
	return err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func roleOrDefault(role string) string {
	if role == "" {
		return "employee"
	}
	return role
}
