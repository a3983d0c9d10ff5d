// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/projecttoken/kv"
	"github.com/vechain/projecttoken/thor"
)

const (
	snapshotVersion = 1
	importBatchSize = 4096
)

// A snapshot is a snappy framed stream of rlp items: a header followed by Count entries in key order.
type snapshotHeader struct {
	Version uint
	Count   uint64
}

type snapshotEntry struct {
	Key   []byte
	Value []byte
}

func countEntries(store kv.Store) (uint64, error) {
	iter := store.Iterate(kv.Range{})
	defer iter.Release()

	var n uint64
	for iter.Next() {
		n++
	}
	return n, iter.Error()
}

// exportSnapshot writes every entry of store to w. onStart receives the entry count, onEntry is
// called after each written entry.
func exportSnapshot(store kv.Store, w io.Writer, onStart func(uint64), onEntry func()) error {
	count, err := countEntries(store)
	if err != nil {
		return errors.Wrap(err, "count entries")
	}
	if onStart != nil {
		onStart(count)
	}

	sw := snappy.NewBufferedWriter(w)
	if err := rlp.Encode(sw, &snapshotHeader{snapshotVersion, count}); err != nil {
		return err
	}

	iter := store.Iterate(kv.Range{})
	defer iter.Release()

	var written uint64
	for iter.Next() {
		if written == count {
			return errors.New("store modified during export")
		}
		if err := rlp.Encode(sw, &snapshotEntry{iter.Key(), iter.Value()}); err != nil {
			return err
		}
		written++
		if onEntry != nil {
			onEntry()
		}
	}
	if err := iter.Error(); err != nil {
		return err
	}
	if written != count {
		return errors.New("store modified during export")
	}
	return sw.Close()
}

// importSnapshot loads a snapshot into an empty store.
func importSnapshot(store kv.Store, r io.Reader, onStart func(uint64), onEntry func()) error {
	empty, err := isEmpty(store)
	if err != nil {
		return err
	}
	if !empty {
		return errors.New("target database is not empty")
	}

	stream := rlp.NewStream(snappy.NewReader(r), 0)
	var header snapshotHeader
	if err := stream.Decode(&header); err != nil {
		return errors.Wrap(err, "decode snapshot header")
	}
	if header.Version != snapshotVersion {
		return errors.Errorf("unsupported snapshot version %d", header.Version)
	}
	if onStart != nil {
		onStart(header.Count)
	}

	bulk := store.Bulk()
	for i := uint64(0); i < header.Count; i++ {
		var entry snapshotEntry
		if err := stream.Decode(&entry); err != nil {
			return errors.Wrapf(err, "decode entry %d", i)
		}
		if err := bulk.Put(entry.Key, entry.Value); err != nil {
			return err
		}
		if bulk.Len() >= importBatchSize {
			if err := bulk.Write(); err != nil {
				return err
			}
		}
		if onEntry != nil {
			onEntry()
		}
	}
	if err := stream.Decode(&snapshotEntry{}); err != io.EOF {
		return errors.New("trailing data after snapshot entries")
	}
	return bulk.Write()
}

func isEmpty(store kv.Store) (bool, error) {
	iter := store.Iterate(kv.Range{})
	defer iter.Release()

	if iter.Next() {
		return false, nil
	}
	return true, iter.Error()
}

func newProgressBar(total uint64) *pb.ProgressBar {
	return pb.New64(int64(total)).
		SetMaxWidth(90).
		Start()
}

func exportAction(ctx *cli.Context) error {
	initLogger(ctx)

	path := ctx.String(outFlag.Name)
	if path == "" {
		return fmt.Errorf("missing --%s", outFlag.Name)
	}
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		bar   *pb.ProgressBar
		size  thor.StorageSize
		count uint64
	)
	if err := exportSnapshot(db, io.MultiWriter(f, &size),
		func(n uint64) { bar, count = newProgressBar(n), n },
		func() { bar.Increment() },
	); err != nil {
		return err
	}
	bar.Finish()
	if err := f.Sync(); err != nil {
		return err
	}
	logger.Info("snapshot exported", "path", path, "entries", count, "size", size)
	return nil
}

func importAction(ctx *cli.Context) error {
	initLogger(ctx)

	path := ctx.String(inFlag.Name)
	if path == "" {
		return fmt.Errorf("missing --%s", inFlag.Name)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	var bar *pb.ProgressBar
	if err := importSnapshot(db, f,
		func(n uint64) { bar = newProgressBar(n) },
		func() { bar.Increment() },
	); err != nil {
		return err
	}
	bar.Finish()
	return nil
}
