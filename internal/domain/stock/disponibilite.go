// Package stock porte les règles pures du grand livre de stock : transition
// des compteurs sous l'effet d'un mouvement et disponibilité projetée à une
// date donnée. Aucune dépendance d'infrastructure.
package stock

import (
	"time"

	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
)

// Compteurs les trois quantités d'un article. Disponible est dérivé.
type Compteurs struct {
	Stock    int
	Reservee int
}

// Disponible renvoie stock - réservé.
func (c Compteurs) Disponible() int { return c.Stock - c.Reservee }

// Appliquer calcule les compteurs résultant d'un mouvement. Renvoie une
// erreur si le mouvement violerait un invariant : quantité non positive,
// type inconnu, compteur négatif ou réservation au-delà du stock. Les
// compteurs d'entrée ne sont jamais modifiés.
func Appliquer(c Compteurs, typeMouvement string, quantite int) (Compteurs, error) {
	if quantite <= 0 {
		return c, domain.ErrInvalidInput
	}
	switch typeMouvement {
	case entity.MouvementEntree:
		c.Stock += quantite
	case entity.MouvementSortie, entity.MouvementDestruction, entity.MouvementPerte:
		c.Stock -= quantite
	case entity.MouvementReservation:
		c.Reservee += quantite
	case entity.MouvementRetour, entity.MouvementAnnulation:
		c.Reservee -= quantite
	default:
		return c, domain.ErrInvalidInput
	}
	if c.Stock < 0 || c.Reservee < 0 {
		return c, domain.ErrInvariantStock
	}
	if c.Reservee > c.Stock {
		return c, domain.ErrStockInsuffisant
	}
	return c, nil
}

// FenetreReservation une réservation encore ouverte, avec sa fenêtre
// d'effet. Une borne nil est ouverte (couvre toute date de ce côté).
type FenetreReservation struct {
	Quantite int
	Debut    *time.Time
	Fin      *time.Time
}

// Couvre indique si la fenêtre est active à la date donnée.
func (f FenetreReservation) Couvre(date time.Time) bool {
	if f.Debut != nil && f.Debut.After(date) {
		return false
	}
	if f.Fin != nil && f.Fin.Before(date) {
		return false
	}
	return true
}

// FenetresOuvertes reconstruit, depuis le journal d'un article, les
// réservations encore ouvertes avec leur fenêtre d'effet. Les mouvements
// sont nettés par contrat ; ceux sans contrat forment un lot commun, pour
// qu'un retour sans contrat solde la réservation sans contrat qui le
// précède. Seuls les lots au solde positif sortent.
func FenetresOuvertes(mouvements []*entity.MouvementStock) []FenetreReservation {
	type lot struct {
		solde int
		debut *time.Time
		fin   *time.Time
	}
	lots := make(map[string]*lot)
	var ordre []string

	for _, m := range mouvements {
		var delta int
		switch m.Type {
		case entity.MouvementReservation:
			delta = m.Quantite
		case entity.MouvementRetour, entity.MouvementAnnulation:
			delta = -m.Quantite
		default:
			continue
		}
		l, ok := lots[m.ContratID]
		if !ok {
			l = &lot{}
			lots[m.ContratID] = l
			ordre = append(ordre, m.ContratID)
		}
		l.solde += delta
		if m.DatePrevue != nil && (l.debut == nil || m.DatePrevue.Before(*l.debut)) {
			l.debut = m.DatePrevue
		}
		if m.DateRetourPrevue != nil && (l.fin == nil || m.DateRetourPrevue.After(*l.fin)) {
			l.fin = m.DateRetourPrevue
		}
	}

	var fenetres []FenetreReservation
	for _, id := range ordre {
		if l := lots[id]; l.solde > 0 {
			fenetres = append(fenetres, FenetreReservation{Quantite: l.solde, Debut: l.debut, Fin: l.fin})
		}
	}
	return fenetres
}

// DisponibleALaDate projette la disponibilité à une date : le stock total
// moins les réservations dont la fenêtre couvre cette date. C'est un modèle
// de lecture calculé depuis l'historique, distinct du compteur instantané :
// une pièce réservée aujourd'hui mais rendue avant la date demandée y
// redevient disponible.
func DisponibleALaDate(stockTotal int, fenetres []FenetreReservation, date time.Time) int {
	reserve := 0
	for _, f := range fenetres {
		if f.Couvre(date) {
			reserve += f.Quantite
		}
	}
	disponible := stockTotal - reserve
	if disponible < 0 {
		return 0
	}
	return disponible
}
