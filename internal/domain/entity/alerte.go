package entity

import "time"

// AlerteStock signale qu'un article est passé sous son seuil. Réconciliée
// (activée ou désactivée) dans la transaction de chaque mouvement : Active
// vaut vrai exactement quand disponible <= seuil à la dernière écriture.
type AlerteStock struct {
	ID               string
	ArticleID        string
	QuantiteActuelle int
	Seuil            int
	Active           bool
	Message          string
	DetecteeLe       time.Time
}
