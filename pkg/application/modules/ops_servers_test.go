package modules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"deal_service/pkg/application/modules"
)

func TestOpsServersDisabled(t *testing.T) {
	rq := require.New(t)

	g, ctx := errgroup.WithContext(context.Background())

	modules.ProbeServer{Name: "deal-service"}.Run(ctx, g)
	modules.MetricServer{}.Run(ctx, g)

	// ни один модуль не запустил горутину
	rq.NoError(g.Wait())
}
