package migration

import (
	"context"

	"github.com/clawdcat/mintboard/internal/entity"
	"github.com/clawdcat/mintboard/pkg/xcontext"
)

func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.MintTransaction{},
	)
}
