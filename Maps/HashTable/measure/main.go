// Command measure fills a HashTable with keys and reports how they spread over the buckets and how long sorted iteration takes.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Maps/HashTable"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})), nil
}

// readKeys from path, one per line, skipping blank lines.
func readKeys(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file: %w", err)
	}
	defer f.Close()
	var ks []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if k := strings.TrimSpace(sc.Text()); k != "" {
			ks = append(ks, k)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	return ks, nil
}

func randomKeys(n int, rg *rand.Rand) []string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	ks := make([]string, n)
	for i := range ks {
		b := make([]byte, 4+rg.Intn(12))
		for j := range b {
			b[j] = letters[rg.Intn(len(letters))]
		}
		ks[i] = string(b)
	}
	return ks
}

func run(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd.String("log-level"))
	if err != nil {
		return err
	}
	c := cmd.Int("capacity")
	if c <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", c)
	}
	capacity := uint(c)
	seed := cmd.Int("seed")

	var ks []string
	if path := cmd.String("file"); path != "" {
		if ks, err = readKeys(path); err != nil {
			return err
		}
	} else {
		n := int(cmd.Int("keys"))
		if n <= 0 {
			n = int(capacity)
		}
		ks = randomKeys(n, rand.New(rand.NewSource(int64(seed))))
	}

	M := HashTable.New[string, int](capacity, Go_Containers.Hasher(seed))
	var dup, full int
	for i, k := range ks {
		switch {
		case M.Add(k, i):
		case M.IsFull():
			full++
		default:
			dup++
		}
	}
	log.Info("filled table", "capacity", capacity, "keys", len(ks), "stored", M.Size(), "duplicates", dup, "rejected_full", full)

	s := M.Stats()
	log.Info("bucket distribution", "occupied", s.Occupied, "empty", s.Buckets-s.Occupied, "longest", s.Longest,
		"load", fmt.Sprintf("%.3f", float64(s.Entries)/float64(s.Buckets)))
	for n, c := range s.Lengths {
		if c > 0 {
			log.Debug("chain length", "length", n, "buckets", c)
		}
	}

	for r := cmd.Int("repeat"); r > 0; r-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		it := M.Keys()
		sorted := time.Since(start)
		var last string
		for it.HasNext() {
			k, _ := it.Next()
			if k < last {
				return fmt.Errorf("keys out of order: %q after %q", k, last)
			}
			last = k
		}
		log.Info("sorted iteration", "keys", it.Len(), "snapshot_and_sort", sorted, "total", time.Since(start))
	}
	return nil
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "measure",
		Usage: "measure bucket distribution and sorted iteration of a fixed capacity hash table",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "capacity", Aliases: []string{"c"}, Value: 1 << 16, Usage: "number of buckets, also the maximum number of entries"},
			&cli.IntFlag{Name: "keys", Aliases: []string{"n"}, Usage: "number of random keys to add, defaults to the capacity"},
			&cli.IntFlag{Name: "seed", Aliases: []string{"s"}, Usage: "seed of the hash function and of the random keys"},
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "read keys from a file, one per line, instead of generating them"},
			&cli.IntFlag{Name: "repeat", Aliases: []string{"r"}, Value: 3, Usage: "number of sorted iterations to time"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error"},
		},
		Action: run,
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
