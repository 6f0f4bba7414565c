// bintree-bench measures insert/find/erase throughput of every tree
// variant in this module against Go's built-in map, recycling nodes
// through a mempool.Pool the way a latency-sensitive caller would.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/intrusivekit/bintree"
	"github.com/intrusivekit/bintree/aatree"
	"github.com/intrusivekit/bintree/avltree"
	"github.com/intrusivekit/bintree/mempool"
	"github.com/intrusivekit/bintree/rbtree"
	"github.com/intrusivekit/bintree/splaytree"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type benchFlags struct {
	items    int
	seed     int64
	variants []string
}

func newRootCmd() *cobra.Command {
	flags := &benchFlags{}
	cmd := &cobra.Command{
		Use:   "bintree-bench",
		Short: "Benchmark the intrusive tree variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
		SilenceUsage: true,
	}
	cmd.Flags().IntVarP(&flags.items, "items", "n", 100_000, "number of keys per phase")
	cmd.Flags().Int64Var(&flags.seed, "seed", 1, "seed for the key shuffle")
	cmd.Flags().StringSliceVar(&flags.variants, "variants",
		[]string{"bst", "aa", "avl", "rb", "splay", "map"},
		"variants to run (bst, aa, avl, rb, splay, map)")
	return cmd
}

// runner drives one container through the three phases over keys
// shuffled the same way for every variant.
type runner struct {
	insert func(key int)
	find   func(key int) bool
	erase  func(key int) bool
}

func run(flags *benchFlags) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	keys := make([]int, flags.items)
	for i := range keys {
		keys[i] = i
	}
	rnd := rand.New(rand.NewSource(flags.seed))

	for _, name := range flags.variants {
		r, err := newRunner(name)
		if err != nil {
			return err
		}
		rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

		start := time.Now()
		for _, k := range keys {
			r.insert(k)
		}
		report(log, name, "insert", flags.items, time.Since(start))

		rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		start = time.Now()
		for _, k := range keys {
			if !r.find(k) {
				return fmt.Errorf("%s: lost key %d", name, k)
			}
		}
		report(log, name, "find", flags.items, time.Since(start))

		rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		start = time.Now()
		for _, k := range keys {
			if !r.erase(k) {
				return fmt.Errorf("%s: failed to erase key %d", name, k)
			}
		}
		report(log, name, "erase", flags.items, time.Since(start))
	}
	return nil
}

func report(log zerolog.Logger, variant, op string, items int, elapsed time.Duration) {
	log.Info().
		Str("variant", variant).
		Str("op", op).
		Int("items", items).
		Dur("elapsed", elapsed).
		Float64("ns/op", float64(elapsed.Nanoseconds())/float64(items)).
		Msg("phase done")
}

type bstItem struct {
	bintree.Hook[bstItem]
	key int
}

func (a *bstItem) Compare(b *bstItem) int { return bintree.Compare(a.key, b.key) }

type aaItem struct {
	aatree.Hook[aaItem]
	key int
}

func (a *aaItem) Compare(b *aaItem) int { return bintree.Compare(a.key, b.key) }

type avlItem struct {
	avltree.Hook[avlItem]
	key int
}

func (a *avlItem) Compare(b *avlItem) int { return bintree.Compare(a.key, b.key) }

type rbItem struct {
	rbtree.Hook[rbItem]
	key int
}

func (a *rbItem) Compare(b *rbItem) int { return bintree.Compare(a.key, b.key) }

type splayItem struct {
	splaytree.Hook[splayItem]
	key int
}

func (a *splayItem) Compare(b *splayItem) int { return bintree.Compare(a.key, b.key) }

func newRunner(name string) (runner, error) {
	switch name {
	case "bst":
		pool := mempool.New[bstItem](nil)
		tree := bintree.New[bstItem]()
		var probe bstItem
		return runner{
			insert: func(key int) {
				e := pool.Create()
				e.key = key
				tree.Insert(e)
			},
			find: func(key int) bool {
				probe.key = key
				return tree.Find(&probe) != nil
			},
			erase: func(key int) bool {
				probe.key = key
				e := tree.EraseKey(&probe)
				if e == nil {
					return false
				}
				pool.Release(e)
				return true
			},
		}, nil
	case "aa":
		pool := mempool.New[aaItem](nil)
		tree := aatree.New[aaItem]()
		var probe aaItem
		return runner{
			insert: func(key int) {
				e := pool.Create()
				e.key = key
				tree.Insert(e)
			},
			find: func(key int) bool {
				probe.key = key
				return tree.Find(&probe) != nil
			},
			erase: func(key int) bool {
				probe.key = key
				e := tree.EraseKey(&probe)
				if e == nil {
					return false
				}
				pool.Release(e)
				return true
			},
		}, nil
	case "avl":
		pool := mempool.New[avlItem](nil)
		tree := avltree.New[avlItem]()
		var probe avlItem
		return runner{
			insert: func(key int) {
				e := pool.Create()
				e.key = key
				tree.Insert(e)
			},
			find: func(key int) bool {
				probe.key = key
				return tree.Find(&probe) != nil
			},
			erase: func(key int) bool {
				probe.key = key
				e := tree.EraseKey(&probe)
				if e == nil {
					return false
				}
				pool.Release(e)
				return true
			},
		}, nil
	case "rb":
		pool := mempool.New[rbItem](nil)
		tree := rbtree.New[rbItem]()
		var probe rbItem
		return runner{
			insert: func(key int) {
				e := pool.Create()
				e.key = key
				tree.Insert(e)
			},
			find: func(key int) bool {
				probe.key = key
				return tree.Find(&probe) != nil
			},
			erase: func(key int) bool {
				probe.key = key
				e := tree.EraseKey(&probe)
				if e == nil {
					return false
				}
				pool.Release(e)
				return true
			},
		}, nil
	case "splay":
		pool := mempool.New[splayItem](nil)
		tree := splaytree.New[splayItem]()
		var probe splayItem
		return runner{
			insert: func(key int) {
				e := pool.Create()
				e.key = key
				tree.Insert(e)
			},
			find: func(key int) bool {
				probe.key = key
				return tree.Find(&probe) != nil
			},
			erase: func(key int) bool {
				probe.key = key
				e := tree.EraseKey(&probe)
				if e == nil {
					return false
				}
				pool.Release(e)
				return true
			},
		}, nil
	case "map":
		m := make(map[int]struct{})
		return runner{
			insert: func(key int) { m[key] = struct{}{} },
			find: func(key int) bool {
				_, ok := m[key]
				return ok
			},
			erase: func(key int) bool {
				_, ok := m[key]
				delete(m, key)
				return ok
			},
		}, nil
	default:
		return runner{}, fmt.Errorf("unknown variant %q", name)
	}
}
