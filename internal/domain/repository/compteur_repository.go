package repository

import "context"

// CompteurRepository définit le port d'allocation de numéros de séquence.
// Incrementer doit être atomique côté stockage : deux appels concurrents sur
// le même couple (prefixe, scope) reçoivent deux valeurs distinctes, et
// aucune valeur n'est observable avant d'être durablement écrite.
type CompteurRepository interface {
	Incrementer(ctx context.Context, prefixe, scope string) (int, error)
}
