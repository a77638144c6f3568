// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/polkadotters/SubAuction/genesis"
	"github.com/polkadotters/SubAuction/kv"
	"github.com/polkadotters/SubAuction/lvldb"
	"github.com/polkadotters/SubAuction/script"
	"github.com/polkadotters/SubAuction/state"
)

var (
	version   string
	gitCommit string
	log       = slog.Default().With("pkg", "main")
)

func fullVersion() string {
	if gitCommit == "" {
		return version + "-dev"
	}
	return fmt.Sprintf("%s-%s", version, gitCommit)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".subauction"
	}
	return filepath.Join(home, ".subauction")
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "SubAuction",
		Usage:     "NFT auction chain runtime",
		Copyright: "2026 SubAuction developers",
		Flags: []cli.Flag{
			dataDirFlag,
			genesisFlag,
			verbosityFlag,
			memDBFlag,
			metricsAddrFlag,
		},
		Action: defaultAction,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger(ctx *cli.Context) {
	lvl := slog.LevelInfo
	switch ctx.Int(verbosityFlag.Name) {
	case 0:
		lvl = slog.LevelError
	case 1, 2:
		lvl = slog.LevelWarn
	case 3:
		lvl = slog.LevelInfo
	default:
		lvl = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      lvl,
		TimeFormat: time.TimeOnly,
	})))
	log = slog.Default().With("pkg", "main")
}

func openDB(ctx *cli.Context) (kv.GetPutter, error) {
	if ctx.Bool(memDBFlag.Name) {
		return lvldb.NewMem()
	}
	dir := ctx.String(dataDirFlag.Name)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return lvldb.New(filepath.Join(dir, "state.db"), lvldb.Options{
		CacheSize:              128,
		OpenFilesCacheCapacity: 64,
	})
}

func loadAlloc(ctx *cli.Context) (*genesis.Alloc, error) {
	if path := ctx.String(genesisFlag.Name); path != "" {
		return genesis.LoadAlloc(path)
	}
	return genesis.DevAlloc(), nil
}

func defaultAction(ctx *cli.Context) error {
	initLogger(ctx)

	if addr := ctx.String(metricsAddrFlag.Name); addr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(addr, nil); err != nil {
				log.Error("metrics service stopped", "error", err)
			}
		}()
		log.Info("metrics service started", "addr", addr)
	}

	db, err := openDB(ctx)
	if err != nil {
		return err
	}

	stateCreator := state.NewCreator(db)
	se := script.NewScriptEngine(stateCreator)

	alloc, err := loadAlloc(ctx)
	if err != nil {
		return err
	}
	root, err := genesis.Build(stateCreator, alloc)
	if err != nil {
		return err
	}
	log.Info("genesis built", "name", alloc.Name, "root", root.AbbrevString())

	return runSolo(se, stateCreator)
}
