package entity

import "time"

// Participant rattache un contrat à une liste, avec un rôle libre (marié,
// témoin...) et une position 1..N.
type Participant struct {
	ContratID string
	Role      string
	Ordre     int
}

// Liste est un regroupement nommé de contrats (un mariage, une promotion...).
// Les participants sont ordonnés ; l'invariant est maintenu par les méthodes
// ci-dessous : Ordre forme toujours une suite contiguë 1..N et un contrat
// n'apparaît qu'une fois.
type Liste struct {
	ID           string
	Numero       string // L-2025-007, alloué via CompteurSequence
	Nom          string
	Description  string
	Couleur      string // couleur d'affichage côté UI
	Participants []Participant
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ContratIDs projette les identifiants de contrats dans l'ordre des
// participants. Calculé à la lecture, jamais stocké.
func (l *Liste) ContratIDs() []string {
	ids := make([]string, 0, len(l.Participants))
	for _, p := range l.Participants {
		ids = append(ids, p.ContratID)
	}
	return ids
}

// Contient indique si le contrat est déjà rattaché à la liste.
func (l *Liste) Contient(contratID string) bool {
	for _, p := range l.Participants {
		if p.ContratID == contratID {
			return true
		}
	}
	return false
}

// AjouterParticipant ajoute le contrat en fin de liste (Ordre = N+1).
// Renvoie false si le contrat est déjà présent (no-op).
func (l *Liste) AjouterParticipant(contratID, role string) bool {
	if l.Contient(contratID) {
		return false
	}
	l.Participants = append(l.Participants, Participant{
		ContratID: contratID,
		Role:      role,
		Ordre:     len(l.Participants) + 1,
	})
	return true
}

// RetirerParticipant supprime le contrat et renumérote les restants en 1..N
// en préservant l'ordre relatif. Renvoie false si le contrat est absent.
func (l *Liste) RetirerParticipant(contratID string) bool {
	restants := make([]Participant, 0, len(l.Participants))
	trouve := false
	for _, p := range l.Participants {
		if p.ContratID == contratID {
			trouve = true
			continue
		}
		restants = append(restants, p)
	}
	if !trouve {
		return false
	}
	l.Participants = restants
	l.reindexer()
	return true
}

// ModifierRole change le rôle du participant. Renvoie false s'il est absent.
func (l *Liste) ModifierRole(contratID, role string) bool {
	for i := range l.Participants {
		if l.Participants[i].ContratID == contratID {
			l.Participants[i].Role = role
			return true
		}
	}
	return false
}

// RemplacerParticipants remplace l'ensemble des participants. Les doublons de
// contrat sont écartés (première occurrence gagne) et Ordre est renormalisé
// en 1..N dans l'ordre fourni, sans faire confiance aux valeurs du caller.
func (l *Liste) RemplacerParticipants(participants []Participant) {
	vus := make(map[string]bool, len(participants))
	uniques := make([]Participant, 0, len(participants))
	for _, p := range participants {
		if p.ContratID == "" || vus[p.ContratID] {
			continue
		}
		vus[p.ContratID] = true
		uniques = append(uniques, p)
	}
	l.Participants = uniques
	l.reindexer()
}

func (l *Liste) reindexer() {
	for i := range l.Participants {
		l.Participants[i].Ordre = i + 1
	}
}
