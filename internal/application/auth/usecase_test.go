package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/atelier-ceremonie/location-api/internal/application/auth"
	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/pkg/config"
	"github.com/atelier-ceremonie/location-api/pkg/jwt"
)

type userRepoMemoire struct {
	parEmail map[string]*entity.Utilisateur
	parID    map[string]*entity.Utilisateur
}

func newUserRepoMemoire() *userRepoMemoire {
	return &userRepoMemoire{
		parEmail: make(map[string]*entity.Utilisateur),
		parID:    make(map[string]*entity.Utilisateur),
	}
}

func (r *userRepoMemoire) Create(_ context.Context, u *entity.Utilisateur) error {
	r.parEmail[u.Email] = u
	r.parID[u.ID] = u
	return nil
}

func (r *userRepoMemoire) GetByID(_ context.Context, id string) (*entity.Utilisateur, error) {
	return r.parID[id], nil
}

func (r *userRepoMemoire) FindByEmail(_ context.Context, email string) (*entity.Utilisateur, error) {
	return r.parEmail[email], nil
}

var cfgTest = config.JWTConfig{Secret: "secret-de-test", Expiration: 60, Issuer: "location-api"}

func TestRegisterEtLogin(t *testing.T) {
	repo := newUserRepoMemoire()
	uc := appauth.NewAuthUseCase(repo, cfgTest)

	user, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "Isabelle@Boutique.fr",
		Password: "motdepasse",
		Nom:      "Isabelle",
	})
	require.NoError(t, err)

	assert.Equal(t, "isabelle@boutique.fr", user.Email)
	assert.Equal(t, entity.RoleVendeur, user.Role)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "isabelle@boutique.fr",
		Password: "motdepasse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, nom, role, err := jwt.Parse(cfgTest.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "Isabelle", nom)
	assert.Equal(t, entity.RoleVendeur, role)
}

func TestRegister_EmailDejaPris(t *testing.T) {
	repo := newUserRepoMemoire()
	uc := appauth.NewAuthUseCase(repo, cfgTest)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "karim@boutique.fr", Password: "motdepasse", Nom: "Karim",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Email: "KARIM@boutique.fr", Password: "autrepasse", Nom: "Karim bis",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	uc := appauth.NewAuthUseCase(newUserRepoMemoire(), cfgTest)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "pas-un-email", Password: "court", Role: "stagiaire",
	})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Champs, 4)
}

func TestLogin_MauvaisMotDePasse(t *testing.T) {
	repo := newUserRepoMemoire()
	uc := appauth.NewAuthUseCase(repo, cfgTest)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "nathalie@boutique.fr", Password: "motdepasse", Nom: "Nathalie",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "nathalie@boutique.fr", Password: "mauvais",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Email inconnu : même erreur, pas d'oracle
	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "inconnu@boutique.fr", Password: "motdepasse",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
