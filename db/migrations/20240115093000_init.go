package migrations

import (
	"context"

	"github.com/acmedash/invoicehub.go/db/models"
	"github.com/uptrace/bun"
)

/* This init reflects the latest model fields when run on a fresh db.
When adding/removing columns in subsequent migrations use
IfNotExists/IfExists, otherwise reruns will error. */
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if _, err := db.NewCreateTable().Model((*models.Customer)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().
			Model((*models.Invoice)(nil)).
			ForeignKey(`("customer_id") REFERENCES "customers" ("id")`).
			Exec(ctx); err != nil {
			return err
		}

		return nil
	}, nil)
}
