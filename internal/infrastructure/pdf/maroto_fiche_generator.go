// Package pdf implémente la fiche de location remise au client au retrait de
// sa tenue.
//
// Mise en page A4 :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Atelier Cérémonie  │  N° Contrat + Date             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENT: Nom / Téléphone / Email                             │
//	│  DATES: Essai / Cérémonie / Retrait / Retour prévu           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qté | Description | Prix location | Sous-total       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAUX: Montant total / Payé / Solde / Caution              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appcontrat "github.com/atelier-ceremonie/location-api/internal/application/contrat"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
)

// ── Palette ──────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 54, Green: 46, Blue: 94}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appcontrat.FicheGenerator = (*MarotoFicheGenerator)(nil)

// MarotoFicheGenerator génère la fiche contrat avec Maroto v2.
type MarotoFicheGenerator struct {
	nomBoutique string
}

// NewMarotoFicheGenerator construit le générateur.
func NewMarotoFicheGenerator(nomBoutique string) *MarotoFicheGenerator {
	if nomBoutique == "" {
		nomBoutique = "Atelier Cérémonie"
	}
	return &MarotoFicheGenerator{nomBoutique: nomBoutique}
}

// GenererFiche génère le PDF et renvoie ses octets.
func (g *MarotoFicheGenerator) GenererFiche(contrat *entity.ContratLocation) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Fiche de location "+contrat.Numero, true).
		WithAuthor(g.nomBoutique, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(contrat))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(contrat))
	m.AddRows(datesRow(contrat))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLigneRows(contrat.Lignes) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totauxRows(contrat)...)

	if contrat.Notes != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(row.New(8).Add(
			col.New(12).Add(text.New("Notes : "+contrat.Notes, props.Text{Size: 8, Color: colorGray})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer fiche: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ─────────────────────────────────────────────────────────────────

func (g *MarotoFicheGenerator) headerRow(contrat *entity.ContratLocation) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.nomBoutique, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Fiche de location", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Contrat "+contrat.Numero, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1, Color: colorPrimary,
			}),
			text.New(contrat.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func clientRow(contrat *entity.ContratLocation) core.Row {
	client := contrat.ClientNom
	if contrat.ClientPrenom != "" {
		client = contrat.ClientPrenom + " " + contrat.ClientNom
	}
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Client", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(client, props.Text{Size: 10, Top: 4}),
			text.New(contrat.Telephone, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("Vendeur", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(contrat.Vendeur, props.Text{Size: 10, Top: 4}),
			text.New(contrat.Email, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
	)
}

func datesRow(contrat *entity.ContratLocation) core.Row {
	return row.New(12).Add(
		dateCol("Essai", contrat.DateEssai),
		dateCol("Cérémonie", contrat.DateCeremonie),
		dateCol("Retrait", contrat.DateRetrait),
		dateCol("Retour prévu", contrat.DateRetourPrevu),
	)
}

func dateCol(libelle string, d *time.Time) core.Col {
	valeur := "-"
	if d != nil {
		valeur = d.Format("02/01/2006")
	}
	return col.New(3).Add(
		text.New(libelle, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
		text.New(valeur, props.Text{Size: 9, Top: 4}),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(1).Add(text.New("Qté", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary})),
		col.New(7).Add(text.New("Description", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary})),
		col.New(2).Add(text.New("Prix", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary})),
		col.New(2).Add(text.New("Sous-total", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary})),
	)
}

func tableLigneRows(lignes []entity.LigneTenue) []core.Row {
	rows := make([]core.Row, 0, len(lignes))
	for _, l := range lignes {
		sousTotal := l.PrixLocation.Mul(decimal.NewFromInt(int64(l.Quantite)))
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Quantite), props.Text{Size: 8})),
			col.New(7).Add(text.New(l.Description, props.Text{Size: 8})),
			col.New(2).Add(text.New(montant(l.PrixLocation), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(montant(sousTotal), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

func totauxRows(contrat *entity.ContratLocation) []core.Row {
	total := contrat.MontantTotal()
	paye := contrat.MontantPaye()
	solde := total.Sub(paye)

	ligne := func(libelle string, m decimal.Decimal, gras bool) core.Row {
		style := fontstyle.Normal
		if gras {
			style = fontstyle.Bold
		}
		return row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New(libelle, props.Text{Size: 9, Style: style, Align: align.Right})),
			col.New(2).Add(text.New(montant(m), props.Text{Size: 9, Style: style, Align: align.Right})),
		)
	}
	return []core.Row{
		ligne("Total", total, true),
		ligne("Payé", paye, false),
		ligne("Solde", solde, true),
		ligne("Caution", contrat.Caution, false),
	}
}

func montant(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}
