/*
Package app links together all the various components
to construct the xswap state machine.
*/
package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/app"
	"github.com/iov-one/xswap/store/leveldb"
	"github.com/iov-one/xswap/swap"
	"github.com/iov-one/xswap/x"
	"github.com/iov-one/xswap/x/admin"
	"github.com/iov-one/xswap/x/cash"
	"github.com/iov-one/xswap/x/locked"
	"github.com/iov-one/xswap/x/pool"
	"github.com/iov-one/xswap/x/posted"
	"github.com/iov-one/xswap/x/utils"
)

// Authenticator returns the authentication of the node: the host verifies
// the signatures and records the signers in the context.
func Authenticator() x.Authenticator {
	return x.HostAuth{}
}

// Chain returns a chain of decorators, to handle recovery, logging,
// metrics and savepoints.
func Chain(metrics *utils.Metrics) app.Decorators {
	return app.ChainDecorators(
		utils.NewRecovery(),
		utils.NewActionTagger(),
		utils.NewLogging(),
		metrics,
		// on deliver, a failed instruction leaves no trace
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns the router dispatching all opcodes.
func Router(auth x.Authenticator) *app.Router {
	r := app.NewRouter()

	ctrl := admin.NewController()
	dir := pool.NewDirectory()
	ledger := pool.NewLedger()
	bank := cash.NewController()

	admin.RegisterRoutes(r, auth, ctrl, dir)
	pool.RegisterRoutes(r, auth, dir, ledger, ctrl, bank)
	posted.RegisterRoutes(r, auth, posted.NewRegistry(), dir, ctrl, bank)
	locked.RegisterRoutes(r, auth, locked.NewRegistry(), dir, ledger, ctrl, bank)
	return r
}

// Stack wires up the router with the standard decorator chain. The router
// is returned too as it decodes the raw instructions.
func Stack(metrics *utils.Metrics) (xswap.Handler, *app.Router) {
	r := Router(Authenticator())
	return Chain(metrics).WithHandler(r), r
}

// Initializers returns the genesis initializers of all extensions.
func Initializers() xswap.Initializer {
	return app.ChainInitializers(
		swap.Initializer{},
		admin.Initializer{},
		cash.Initializer{},
	)
}

// CommitKVStore returns a leveldb store persisting to the directory, or an
// in-memory one if dir is empty.
func CommitKVStore(dir string) (xswap.CommitKVStore, error) {
	if dir == "" {
		return leveldb.OpenInMemory()
	}
	return leveldb.Open(dir)
}

// Application opens the store and returns a processor executing
// instructions against it, and the function closing the store. Metrics are
// registered with reg if not nil.
func Application(dir string, logger log.Logger, reg prometheus.Registerer, opts ...app.ProcessorOption) (*app.Processor, func() error, error) {
	db, err := CommitKVStore(dir)
	if err != nil {
		return nil, nil, err
	}
	var metrics *utils.Metrics
	if reg != nil {
		metrics = utils.NewMetrics(reg)
	}
	h, r := Stack(metrics)
	opts = append([]app.ProcessorOption{app.WithLogger(logger)}, opts...)
	return app.NewProcessor(db, r, h, opts...), db.Close, nil
}
