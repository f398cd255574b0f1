// treapbench exercises the treap engine through its public API and
// reports balance and locality behavior: how far the maximum depth strays
// from log2(n), and how usurping lookups drag hot keys toward the root.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pinkavat/treap"
)

func main() {
	app := &cli.App{
		Name:  "treapbench",
		Usage: "exercise the treap engine and report balance statistics",
		Commands: []*cli.Command{
			depthCmd,
			usurpCmd,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var depthCmd = &cli.Command{
	Name:  "depth",
	Usage: "measure max depth against log2(n) for ascending-order insertion",
	Flags: []cli.Flag{
		&cli.UintFlag{
			Name:  "max-keys",
			Usage: "largest key count to grow to (doubling from 2)",
			Value: 1 << 16,
		},
		&cli.UintFlag{
			Name:  "trials",
			Usage: "trials per key count",
			Value: 5,
		},
	},
	Action: runDepth,
}

func runDepth(cctx *cli.Context) error {
	maxKeys := cctx.Uint("max-keys")
	trials := cctx.Uint("trials")
	if maxKeys < 2 {
		return fmt.Errorf("max-keys must be at least 2, got %d", maxKeys)
	}
	if trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", trials)
	}

	w := cctx.App.Writer
	less := func(a, b uint) bool { return a < b }

	var sum float64
	var count int
	for n := uint(2); n <= maxKeys; n *= 2 {
		var nSum float64
		for trial := uint(0); trial < trials; trial++ {
			t := treap.New(less)
			for i := uint(0); i < n; i++ {
				t.Append(i)
			}

			factor := float64(t.MaxDepth()) / math.Log2(float64(n))
			nSum += factor
			sum += factor
			count++

			// Decouple the middle half and make sure the rest survives.
			for i := n / 4; i < (3*n)/4; i++ {
				node := t.Find(i)
				if node == nil {
					return fmt.Errorf("key %d vanished before decoupling", i)
				}
				t.Decouple(node)
				t.Release(node)
			}
			for i := uint(0); i < n; i++ {
				removed := i >= n/4 && i < (3*n)/4
				if found := t.Find(i) != nil; found == removed {
					return fmt.Errorf("key %d: found=%v after decoupling middle half", i, found)
				}
			}
		}
		fmt.Fprintf(w, "n=%8d  depth/log2(n) = %.3f\n", n, nSum/float64(trials))
	}

	fmt.Fprintf(w, "\naverage factor over %d runs: %.3f\n", count, sum/float64(count))
	return nil
}

var usurpCmd = &cli.Command{
	Name:  "usurp",
	Usage: "show usurping lookups promoting hot keys toward the root",
	Flags: []cli.Flag{
		&cli.UintFlag{
			Name:  "keys",
			Usage: "number of keys in the tree",
			Value: 10,
		},
		&cli.UintFlag{
			Name:  "rounds",
			Usage: "usurping lookups per hot key",
			Value: 20,
		},
	},
	Action: runUsurp,
}

func runUsurp(cctx *cli.Context) error {
	keys := cctx.Uint("keys")
	rounds := cctx.Uint("rounds")
	if keys < 2 {
		return fmt.Errorf("keys must be at least 2, got %d", keys)
	}

	w := cctx.App.Writer
	less := func(a, b uint) bool { return a < b }

	t := treap.New(less)
	for i := uint(0); i < keys; i++ {
		t.Append(i)
	}

	hotA, hotB := uint(1), keys-2

	fmt.Fprintf(w, "before (%d keys):\n%s\n", keys, t.Dump())
	for i := uint(0); i < rounds; i++ {
		t.UsurpingFind(hotA)
		t.UsurpingFind(hotB)
	}
	fmt.Fprintf(w, "after %d usurping lookups of %d and %d:\n%s", rounds, hotA, hotB, t.Dump())

	stats := t.Stats()
	fmt.Fprintf(w, "\nrotations=%d usurpations=%d\n", stats.Rotations, stats.Usurpations)
	return nil
}
