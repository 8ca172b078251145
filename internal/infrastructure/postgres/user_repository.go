package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const colonnesUser = `id, email, password_hash, nom, role, statut, created_at, updated_at`

// UserRepo implémentation du port UserRepository sur PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construit l'adaptateur des utilisateurs.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nouvel utilisateur.
func (r *UserRepo) Create(ctx context.Context, u *entity.Utilisateur) error {
	query := `
		INSERT INTO utilisateurs (id, email, password_hash, nom, role, statut, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, u.ID, u.Email, u.PasswordHash, u.Nom, u.Role, u.Statut, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert utilisateur: %w", err)
	}
	return nil
}

// GetByID récupère un utilisateur par ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.Utilisateur, error) {
	query := `SELECT ` + colonnesUser + ` FROM utilisateurs WHERE id = $1`
	return r.scanUser(r.q.QueryRow(ctx, query, id), "get utilisateur")
}

// FindByEmail récupère un utilisateur par email (déjà normalisé en minuscules).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.Utilisateur, error) {
	query := `SELECT ` + colonnesUser + ` FROM utilisateurs WHERE email = $1`
	return r.scanUser(r.q.QueryRow(ctx, query, email), "find utilisateur par email")
}

func (r *UserRepo) scanUser(row pgx.Row, op string) (*entity.Utilisateur, error) {
	var u entity.Utilisateur
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Nom, &u.Role, &u.Statut, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
