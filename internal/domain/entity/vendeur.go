package entity

// Vendeurs de la boutique (énumération fixe côté métier).
var Vendeurs = []string{"Isabelle", "Karim", "Nathalie", "Thomas"}

// VendeurValide indique si le nom appartient à l'équipe.
func VendeurValide(nom string) bool {
	for _, v := range Vendeurs {
		if v == nom {
			return true
		}
	}
	return false
}
