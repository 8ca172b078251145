package postgres

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blocTable extrait le CREATE TABLE d'une table depuis le schéma.
func blocTable(t *testing.T, schema, table string) string {
	t.Helper()
	debut := strings.Index(schema, "CREATE TABLE "+table+" (")
	require.NotEqual(t, -1, debut, table)
	fin := strings.Index(schema[debut:], ");")
	require.NotEqual(t, -1, fin, table)
	return schema[debut : debut+fin]
}

// Le journal de stock est une piste d'audit : supprimer un article ne doit
// jamais entraîner ses écritures. Le schéma ne porte donc aucune clé
// étrangère de mouvements_stock vers articles_stock.
func TestSchema_JournalSansCleEtrangere(t *testing.T) {
	contenu, err := os.ReadFile("../../../migrations/00001_init.sql")
	require.NoError(t, err)
	schema := string(contenu)

	assert.NotContains(t, blocTable(t, schema, "mouvements_stock"), "REFERENCES")

	// Les tables dépendantes sans valeur historique, elles, cascadent bien.
	assert.Contains(t, blocTable(t, schema, "paiements"), "ON DELETE CASCADE")
	assert.Contains(t, blocTable(t, schema, "liste_participants"), "ON DELETE CASCADE")
	assert.Contains(t, blocTable(t, schema, "alertes_stock"), "ON DELETE CASCADE")
}
