// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/vechain/projecttoken/boltdb"
	"github.com/vechain/projecttoken/builtin/token"
	"github.com/vechain/projecttoken/kv"
	"github.com/vechain/projecttoken/log"
	"github.com/vechain/projecttoken/lvldb"
	"github.com/vechain/projecttoken/thor"
)

func initLogger(ctx *cli.Context) {
	if ctx.GlobalBool(jsonLogsFlag.Name) {
		log.SetHandler(log.JSONHandler(os.Stderr))
		return
	}
	useColor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
	log.SetHandler(log.NewTerminalHandler(os.Stderr, ctx.GlobalInt(verbosityFlag.Name), useColor))
}

// homeDir returns home dir of current user if have, or current working dir
func homeDir() (string, error) {
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	if u.HomeDir != "" {
		return u.HomeDir, nil
	}
	return os.Getwd()
}

func defaultDataDir() string {
	if home, err := homeDir(); err == nil {
		return filepath.Join(home, ".tokenledger")
	}
	return ""
}

func makeDataDir(ctx *cli.Context) (string, error) {
	dataDir := ctx.GlobalString(dataDirFlag.Name)
	if dataDir == "" {
		return "", fmt.Errorf("unable to infer default data dir, use -%s to specify", dataDirFlag.Name)
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", errors.Wrapf(err, "create data dir [%v]", dataDir)
	}
	return dataDir, nil
}

func openStore(ctx *cli.Context) (kv.Store, error) {
	dataDir, err := makeDataDir(ctx)
	if err != nil {
		return nil, err
	}
	switch engine := ctx.GlobalString(dbEngineFlag.Name); engine {
	case "leveldb", "":
		dir := filepath.Join(dataDir, "ledger.db")
		db, err := lvldb.New(dir, lvldb.Options{CacheSize: 128, OpenFilesCacheCapacity: 64})
		if err != nil {
			return nil, errors.Wrapf(err, "open ledger database [%v]", dir)
		}
		return db, nil
	case "bolt":
		path := filepath.Join(dataDir, "ledger.bolt")
		db, err := boltdb.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open ledger database [%v]", path)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported db engine %q", engine)
	}
}

// loadConfig returns the default config merged with the config file, if any.
func loadConfig(ctx *cli.Context) (thor.Config, error) {
	cfg := thor.DefaultConfig()
	path := ctx.GlobalString(configFlag.Name)
	if path == "" {
		return cfg, nil
	}
	var file thor.Config
	if err := readYAML(path, &file); err != nil {
		return thor.Config{}, errors.WithMessage(err, "config")
	}
	cfg.Merge(file)
	return cfg, cfg.Validate()
}

// withLedger opens the ledger for the duration of fn.
func withLedger(ctx *cli.Context, fn func(l *token.Ledger) error) error {
	initLogger(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		logger.Debug("closing ledger database...")
		if err := db.Close(); err != nil {
			logger.Warn("failed to close ledger database", "err", err)
		}
	}()

	l, err := token.New(db, cfg, ctx.GlobalInt(cacheFlag.Name))
	if err != nil {
		return err
	}
	return fn(l)
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

// writeOut writes data to the file named by --out, or to stdout.
func writeOut(ctx *cli.Context, data []byte) error {
	if path := ctx.String(outFlag.Name); path != "" {
		return os.WriteFile(path, data, 0600)
	}
	_, err := os.Stdout.Write(data)
	return err
}

func now(ctx *cli.Context) uint32 {
	return uint32(ctx.GlobalUint(blockFlag.Name))
}

func tokenID(ctx *cli.Context) token.TokenID {
	return token.TokenID(ctx.Uint64(tokenFlag.Name))
}

func requireAddress(ctx *cli.Context, flag cli.StringFlag) (thor.Address, error) {
	s := ctx.String(flag.Name)
	if s == "" {
		return thor.Address{}, fmt.Errorf("missing --%s", flag.Name)
	}
	addr, err := thor.ParseAddress(s)
	if err != nil {
		return thor.Address{}, errors.WithMessagef(err, "--%s", flag.Name)
	}
	return addr, nil
}

// optionalBlock parses a block flag, returning nil if it is not set.
func optionalBlock(ctx *cli.Context, flag cli.StringFlag) (*uint32, error) {
	s := ctx.String(flag.Name)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return nil, errors.WithMessagef(err, "--%s", flag.Name)
	}
	b := uint32(n)
	return &b, nil
}

// readAddresses reads one address per line. Blank lines and lines starting with # are skipped.
func readAddresses(r io.Reader) ([]thor.Address, error) {
	var addrs []thor.Address
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		addr, err := thor.ParseAddress(s)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", line)
		}
		addrs = append(addrs, addr)
	}
	return addrs, scanner.Err()
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		logger.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}
