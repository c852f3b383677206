package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/app"
	xapp "github.com/iov-one/xswap/cmd/xswapd/app"
	"github.com/iov-one/xswap/crypto"
	"github.com/iov-one/xswap/swap"
)

func printJSON(v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

var initCommand = cli.Command{
	Name:      "init",
	Usage:     "initialize the state from a genesis file",
	ArgsUsage: "genesis.json",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.ShowCommandHelp(ctx, "init")
		}
		gen, err := app.LoadGenesis(ctx.Args().First())
		if err != nil {
			return err
		}
		p, closeDB, err := openProcessor(ctx)
		if err != nil {
			return err
		}
		defer closeDB()
		return p.InitChain(gen, xapp.Initializers())
	},
}

var submitCommand = cli.Command{
	Name:      "submit",
	Usage:     "execute a hex encoded instruction",
	ArgsUsage: "instruction",
	Flags: []cli.Flag{
		cli.StringSliceFlag{
			Name:  "signer",
			Usage: "base58 identity that signed the instruction, repeatable",
		},
		cli.BoolFlag{
			Name:  "check",
			Usage: "only validate, do not modify the state",
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.ShowCommandHelp(ctx, "submit")
		}
		raw, err := decodeHex(ctx.Args().First())
		if err != nil {
			return err
		}
		var signers []xswap.Holder
		for _, s := range ctx.StringSlice("signer") {
			h, err := xswap.ParseHolder(s)
			if err != nil {
				return err
			}
			signers = append(signers, h)
		}

		p, closeDB, err := openProcessor(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		var res app.Result
		if ctx.Bool("check") {
			res = p.Check(context.Background(), raw, signers...)
		} else {
			res = p.Deliver(context.Background(), raw, signers...)
		}
		if err := printJSON(res); err != nil {
			return err
		}
		if !res.IsOK() {
			return cli.NewExitError(fmt.Sprintf("instruction failed with code %d", res.Code), 1)
		}
		return nil
	},
}

type decodedSwap struct {
	swap.Fields
	Hex           string `json:"hex"`
	RequestDigest string `json:"request_digest"`
	ReleaseDigest string `json:"release_digest,omitempty"`
}

var decodeCommand = cli.Command{
	Name:      "decode",
	Usage:     "print the fields and signing digests of an encoded swap",
	ArgsUsage: "encoded",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "testnet",
			Usage: "use the testnet type strings",
		},
		cli.StringFlag{
			Name:  "recipient",
			Usage: "hex address the release digest is computed for",
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.ShowCommandHelp(ctx, "decode")
		}
		e, err := swap.ParseEncodedHex(ctx.Args().First())
		if err != nil {
			return err
		}
		scheme := swap.Scheme{Testnet: ctx.Bool("testnet")}
		out := decodedSwap{
			Fields:        e.Decode(),
			Hex:           e.Hex(),
			RequestDigest: hex.EncodeToString(scheme.RequestDigest(e)),
		}
		if r := ctx.String("recipient"); r != "" {
			recipient, err := crypto.ParseAddress(r)
			if err != nil {
				return err
			}
			out.ReleaseDigest = hex.EncodeToString(scheme.ReleaseDigest(e, recipient))
		}
		return printJSON(out)
	},
}

var swapIDCommand = cli.Command{
	Name:      "swapid",
	Usage:     "print the id of a locked swap",
	ArgsUsage: "encoded initiator",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			return cli.ShowCommandHelp(ctx, "swapid")
		}
		e, err := swap.ParseEncodedHex(ctx.Args().Get(0))
		if err != nil {
			return err
		}
		initiator, err := crypto.ParseAddress(ctx.Args().Get(1))
		if err != nil {
			return err
		}
		fmt.Println(swap.SwapID(e, initiator))
		return nil
	},
}

var recoverCommand = cli.Command{
	Name:      "recover",
	Usage:     "print the signer address of a compact signature",
	ArgsUsage: "digest signature",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			return cli.ShowCommandHelp(ctx, "recover")
		}
		digest, err := decodeHex(ctx.Args().Get(0))
		if err != nil {
			return err
		}
		sig, err := decodeHex(ctx.Args().Get(1))
		if err != nil {
			return err
		}
		addr := crypto.RecoverAddress(digest, sig)
		if addr == crypto.ZeroAddress {
			return fmt.Errorf("cannot recover the signer")
		}
		fmt.Println(strings.ToLower(addr.Hex()))
		return nil
	},
}

func parseUint(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %s", s, err)
	}
	return v, nil
}
