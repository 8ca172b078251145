package sequence

import (
	"context"
	"strconv"
	"time"

	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
)

// NumeroteurUseCase alloue les numéros lisibles (L-2025-007, C-2025-012).
// Le scope est l'année courante ; l'unicité sous concurrence repose sur
// l'incrément atomique du repository : aucun numéro n'existe avant d'être
// durablement écrit.
type NumeroteurUseCase struct {
	repo    repository.CompteurRepository
	horloge func() time.Time
}

// NewNumeroteurUseCase construit le cas d'usage.
func NewNumeroteurUseCase(repo repository.CompteurRepository) *NumeroteurUseCase {
	return &NumeroteurUseCase{repo: repo, horloge: time.Now}
}

// AllouerNumero incrémente le compteur du préfixe pour l'année courante et
// renvoie l'identifiant formaté.
func (uc *NumeroteurUseCase) AllouerNumero(ctx context.Context, prefixe string) (string, error) {
	scope := strconv.Itoa(uc.horloge().Year())
	n, err := uc.repo.Incrementer(ctx, prefixe, scope)
	if err != nil {
		return "", err
	}
	return entity.FormatNumero(prefixe, scope, n), nil
}
