package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type User struct {
	ID       int     `json:"id"`
	Login    string  `json:"login"`
	Email    string  `json:"email"`
	Material string  `json:"default_material"`
	AmbientC float64 `json:"default_ambient_c"`
}

// Calculation is one stored calculator run. Input and Result keep the exact
// JSON that went over the wire.
type Calculation struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	Tool      string          `json:"tool"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfile(ctx context.Context, id int) (User, error)
	UpdateDefaults(ctx context.Context, id int, material string, ambientC float64) error
	SaveCalculation(ctx context.Context, userID int, tool string, input, result []byte) (int, error)
	ListCalculations(ctx context.Context, userID, limit int) ([]Calculation, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password, default_material, default_ambient_c) VALUES ($1, $2, $3, 'copper', 30) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) GetProfile(ctx context.Context, id int) (User, error) {
	var u User
	query := "SELECT id, login, email, default_material, default_ambient_c FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Login, &u.Email, &u.Material, &u.AmbientC)
	return u, err
}

func (r *PostgresRepository) UpdateDefaults(ctx context.Context, id int, material string, ambientC float64) error {
	query := "UPDATE users SET default_material=$2, default_ambient_c=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, material, ambientC)
	return err
}

func (r *PostgresRepository) SaveCalculation(ctx context.Context, userID int, tool string, input, result []byte) (int, error) {
	var id int
	query := "INSERT INTO calculations (user_id, tool, input, result, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, tool, input, result).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListCalculations(ctx context.Context, userID, limit int) ([]Calculation, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := "SELECT id, user_id, tool, input, result, created_at FROM calculations WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2"
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Calculation
	for rows.Next() {
		var c Calculation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Tool, &c.Input, &c.Result, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
