package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
	"github.com/atelier-ceremonie/location-api/pkg/config"
	"github.com/atelier-ceremonie/location-api/pkg/jwt"
)

// AuthUseCase gère l'inscription et la connexion du personnel de la boutique.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

// NewAuthUseCase construit le cas d'usage.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crée un compte. L'email est normalisé en minuscules et doit être
// unique.
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	ve := &domain.ValidationError{}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "email", Message: "email invalide"})
	}
	if len(req.Password) < 8 {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "password", Message: "le mot de passe doit faire au moins 8 caractères"})
	}
	if req.Nom == "" {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "nom", Message: "le nom est obligatoire"})
	}
	role := req.Role
	if role == "" {
		role = entity.RoleVendeur
	}
	if role != entity.RoleAdmin && role != entity.RoleVendeur {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "role", Message: "rôle inconnu"})
	}
	if len(ve.Champs) > 0 {
		return nil, ve
	}

	existant, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existant != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.Utilisateur{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Nom:          req.Nom,
		Role:         role,
		Statut:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login vérifie les identifiants et renvoie un token signé. Email inconnu et
// mot de passe faux renvoient la même erreur.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Statut != "active" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Nom, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Me renvoie le compte correspondant à l'identifiant du token.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.Utilisateur) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nom:       u.Nom,
		Role:      u.Role,
		Statut:    u.Statut,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
