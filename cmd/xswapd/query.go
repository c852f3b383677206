package main

import (
	"github.com/urfave/cli"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/app"
	"github.com/iov-one/xswap/crypto"
	"github.com/iov-one/xswap/swap"
	"github.com/iov-one/xswap/x/admin"
	"github.com/iov-one/xswap/x/cash"
	"github.com/iov-one/xswap/x/locked"
	"github.com/iov-one/xswap/x/pool"
	"github.com/iov-one/xswap/x/posted"
)

// query runs fn against the committed state and prints its result.
func query(ctx *cli.Context, fn func(db xswap.ReadOnlyKVStore) (interface{}, error)) error {
	p, closeDB, err := openProcessor(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	var out interface{}
	err = p.Query(func(db xswap.ReadOnlyKVStore) error {
		var err error
		out, err = fn(db)
		return err
	})
	if err != nil {
		return err
	}
	return printJSON(out)
}

var queryCommand = cli.Command{
	Name:  "query",
	Usage: "read the state",
	Subcommands: []cli.Command{
		{
			Name:  "chain",
			Usage: "print the chain id and the swap configuration",
			Action: func(ctx *cli.Context) error {
				return query(ctx, func(db xswap.ReadOnlyKVStore) (interface{}, error) {
					chainID, err := app.ChainID(db)
					if err != nil {
						return nil, err
					}
					conf, err := swap.CurrentConfiguration(db)
					if err != nil {
						return nil, err
					}
					return struct {
						ChainID string             `json:"chain_id"`
						Conf    swap.Configuration `json:"conf"`
					}{chainID, conf}, nil
				})
			},
		},
		{
			Name:      "posted",
			Usage:     "print a posted swap",
			ArgsUsage: "encoded",
			Action: func(ctx *cli.Context) error {
				e, err := swap.ParseEncodedHex(ctx.Args().First())
				if err != nil {
					return err
				}
				return query(ctx, func(db xswap.ReadOnlyKVStore) (interface{}, error) {
					return posted.NewRegistry().Get(db, e)
				})
			},
		},
		{
			Name:      "locked",
			Usage:     "print a locked swap",
			ArgsUsage: "encoded initiator",
			Action: func(ctx *cli.Context) error {
				e, err := swap.ParseEncodedHex(ctx.Args().Get(0))
				if err != nil {
					return err
				}
				initiator, err := crypto.ParseAddress(ctx.Args().Get(1))
				if err != nil {
					return err
				}
				return query(ctx, func(db xswap.ReadOnlyKVStore) (interface{}, error) {
					return locked.NewRegistry().Get(db, swap.SwapID(e, initiator))
				})
			},
		},
		{
			Name:      "balance",
			Usage:     "print the wallet balance of a holder",
			ArgsUsage: "token holder",
			Action: func(ctx *cli.Context) error {
				token, err := xswap.ParseHolder(ctx.Args().Get(0))
				if err != nil {
					return err
				}
				holder, err := xswap.ParseHolder(ctx.Args().Get(1))
				if err != nil {
					return err
				}
				return query(ctx, func(db xswap.ReadOnlyKVStore) (interface{}, error) {
					return cash.NewController().Balance(db, token, holder)
				})
			},
		},
		{
			Name:      "pool-balance",
			Usage:     "print the liquidity of a pool in a coin",
			ArgsUsage: "pool coin",
			Action: func(ctx *cli.Context) error {
				index, err := parseUint(ctx.Args().Get(0), 64)
				if err != nil {
					return err
				}
				coin, err := parseUint(ctx.Args().Get(1), 8)
				if err != nil {
					return err
				}
				return query(ctx, func(db xswap.ReadOnlyKVStore) (interface{}, error) {
					return pool.NewLedger().Balance(db, index, uint8(coin))
				})
			},
		},
		{
			Name:  "pools",
			Usage: "print the owners of all pools",
			Action: func(ctx *cli.Context) error {
				return query(ctx, func(db xswap.ReadOnlyKVStore) (interface{}, error) {
					return pool.NewDirectory().Pools(db)
				})
			},
		},
		{
			Name:  "coins",
			Usage: "print the whitelisted coins",
			Action: func(ctx *cli.Context) error {
				return query(ctx, func(db xswap.ReadOnlyKVStore) (interface{}, error) {
					return admin.NewController().Coins(db)
				})
			},
		},
	},
}
