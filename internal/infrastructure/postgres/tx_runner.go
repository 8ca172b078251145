package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appstock "github.com/atelier-ceremonie/location-api/internal/application/stock"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
)

var _ appstock.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run ouvre une transaction, exécute fn avec des repos liés à la tx, puis
// Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	articleRepo repository.ArticleRepository,
	mouvementRepo repository.MouvementRepository,
	alerteRepo repository.AlerteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	articleRepo := NewArticleRepository(tx)
	mouvementRepo := NewMouvementRepository(tx)
	alerteRepo := NewAlerteRepository(tx)

	if err := fn(articleRepo, mouvementRepo, alerteRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
