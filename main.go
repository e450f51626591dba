package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/go-faker/faker/v4"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/vchandela/ddia-btree/btree"
	"github.com/vchandela/ddia-btree/cli"
	"github.com/vchandela/ddia-btree/logger"
)

var shouldSeed *bool
var degree, seedNumRecords *int
var logBackend *string

// newLogger builds the btree.Logger named by backend. The returned func flushes it.
func newLogger(backend string) (btree.Logger, func(), error) {
	noop := func() {}
	switch backend {
	case "none":
		return btree.DiscardLogger{}, noop, nil
	case "slog":
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), noop, nil
	case "zap":
		z, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, err
		}
		return logger.NewZap(z), func() { _ = z.Sync() }, nil
	case "logrus":
		l := logrus.New()
		l.SetOutput(os.Stderr)
		return logger.NewLogrus(l), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

// seedTreeWithTestKeys inserts n distinct random keys drawn from [1, 10n].
func seedTreeWithTestKeys(tree *btree.BTree[int64], n int) error {
	if n <= 0 {
		return nil
	}
	keys, err := faker.RandomInt(1, n*10, n)
	if err != nil {
		return err
	}
	for _, k := range keys {
		tree.Insert(int64(k))
	}
	return nil
}

func main() {
	setupFlags()

	l, sync, err := newLogger(*logBackend)
	if err != nil {
		log.Fatal(err)
	}
	defer sync()

	tree, err := btree.New[int64](*degree, btree.WithLogger(l))
	if err != nil {
		log.Fatal(err)
	}

	if *shouldSeed {
		if err := seedTreeWithTestKeys(tree, *seedNumRecords); err != nil {
			log.Fatal(err)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, tree)
	demo.Start()
}

func setupFlags() {
	degree = flag.Int("degree", 3, "Minimum degree t of the B-Tree (at least 2).")
	shouldSeed = flag.Bool("seed", false, "Seed the B-Tree using keys created with go-faker.")
	seedNumRecords = flag.Int("records", 50, "Amount of keys to seed the B-Tree with upon startup.")
	logBackend = flag.String("log", "none", "Structural event logging: none, slog, zap or logrus.")
	flag.Usage = func() {
		fmt.Println("\nB-Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
