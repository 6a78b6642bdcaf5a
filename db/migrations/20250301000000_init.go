package migrations

import (
	"context"

	"github.com/openfactor/factorhub/db/models"
	"github.com/uptrace/bun"
)

/* Since this init will reflect the latest model fields when run on fresh db
make sure that when you add/remove columns in subsequent migrations IfNotExists/IfExists is used
otherwise it's going to result in errors.
*/
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if _, err := db.NewCreateTable().Model((*models.User)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.LedgerEntry)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.AccountStatus)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.CurrentAccountTransaction)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().Model((*models.LedgerEntry)(nil)).Index("ledger_entries_login_idx").Column("login").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().Model((*models.CurrentAccountTransaction)(nil)).Index("current_account_transactions_login_idx").Column("login").Exec(ctx); err != nil {
			return err
		}

		return nil
	}, nil)
}
