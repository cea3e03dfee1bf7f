package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/eigerco/rice/internal/store"
	"github.com/eigerco/rice/pkg/db/pebble"
	"github.com/eigerco/rice/pkg/log"
	"github.com/eigerco/rice/pkg/serialization"
	"github.com/eigerco/rice/pkg/serialization/codec"
	"github.com/eigerco/rice/pkg/serialization/codec/rice"
)

type config struct {
	width  uint
	kmin   uint
	kmax   uint
	count  int
	spread uint
	seed   uint64
	dbPath string
}

func main() {
	var cfg config
	flag.UintVar(&cfg.width, "width", 32, "symbol width in bits: 8, 16, 32 or 64")
	flag.UintVar(&cfg.kmin, "kmin", 0, "smallest k to measure")
	flag.UintVar(&cfg.kmax, "kmax", 8, "largest k to measure")
	flag.IntVar(&cfg.count, "count", 100000, "symbols per measurement")
	flag.UintVar(&cfg.spread, "spread", 3, "symbols are drawn below 2^(k+spread)")
	flag.Uint64Var(&cfg.seed, "seed", 1, "random seed")
	flag.StringVar(&cfg.dbPath, "db", "", "directory to persist encoded blocks in")
	logLevel := flag.String("log-level", "info", "log level")
	logJSON := flag.Bool("log-json", false, "log as JSON")
	flag.Parse()

	level, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	opts := log.Options{LogLevel: level, Type: log.ConsoleLogger}
	if *logJSON {
		opts.Type = log.JSONLogger
	}
	log.Init(opts)

	if cfg.kmin > cfg.kmax {
		log.Root.Fatal().Uint("kmin", cfg.kmin).Uint("kmax", cfg.kmax).Msg("kmin must not exceed kmax")
	}
	if cfg.count < 0 {
		log.Root.Fatal().Int("count", cfg.count).Msg("count must not be negative")
	}

	switch cfg.width {
	case 8:
		err = run[uint8](cfg)
	case 16:
		err = run[uint16](cfg)
	case 32:
		err = run[uint32](cfg)
	case 64:
		err = run[uint64](cfg)
	default:
		err = fmt.Errorf("unsupported width %d", cfg.width)
	}
	if err != nil {
		log.Root.Fatal().Err(err).Msg("measurement failed")
	}
}

func run[T rice.Unsigned](cfg config) error {
	gains := make([]serialization.Gain, cfg.kmax-cfg.kmin+1)

	var g errgroup.Group
	for i := range gains {
		k := cfg.kmin + uint(i)
		g.Go(func() error {
			gain, err := measure(k, generate[T](cfg, k))
			if err != nil {
				return fmt.Errorf("k=%d: %w", k, err)
			}
			gains[i] = gain
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, gain := range gains {
		fmt.Printf("k = %d, ratio = %f\n", cfg.kmin+uint(i), gain.Ratio)
	}

	if cfg.dbPath == "" {
		return nil
	}
	return persist(cfg, gains)
}

func measure[T rice.Unsigned](k uint, symbols []T) (serialization.Gain, error) {
	c, err := codec.NewRiceCodec[T](k)
	if err != nil {
		return serialization.Gain{}, err
	}
	return serialization.NewSerializer[T](c).Measure(symbols)
}

// generate draws cfg.count symbols uniformly below 2^(k+spread), capped at
// the full width of T. Each k gets its own generator so the output does not
// depend on scheduling.
func generate[T rice.Unsigned](cfg config, k uint) []T {
	rng := rand.New(rand.NewPCG(cfg.seed, uint64(k)))
	bits := min(k+cfg.spread, rice.Width[T]())

	symbols := make([]T, cfg.count)
	for i := range symbols {
		if bits == 64 {
			symbols[i] = T(rng.Uint64())
		} else {
			symbols[i] = T(rng.Uint64N(1 << bits))
		}
	}
	return symbols
}

func persist(cfg config, gains []serialization.Gain) error {
	kv, err := pebble.Open(cfg.dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	blocks := store.NewBlocks(kv)
	defer func() {
		if err := blocks.Close(); err != nil {
			log.Root.Error().Err(err).Msg("closing block store")
		}
	}()

	for i, gain := range gains {
		k := cfg.kmin + uint(i)
		b := store.Block{Width: cfg.width, K: k, Count: gain.Symbols, Data: gain.Data}
		name := fmt.Sprintf("w%d-k%d-s%d", cfg.width, k, cfg.seed)
		hash, err := blocks.Put(name, b)
		if err != nil {
			return fmt.Errorf("store %s: %w", name, err)
		}
		fmt.Printf("%s %s\n", name, hash)
		log.Root.Debug().Str("name", name).Int("bytes", len(b.Data)).Msg("persisted")
	}
	return nil
}
