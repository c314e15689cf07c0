// Command numbench times the numkit primitives and prints a wall-clock
// report. It is measurement plumbing only: nothing here is part of the
// library contract.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/exascience/numkit/rand"
	"github.com/exascience/numkit/sort"
	"github.com/exascience/numkit/span"
)

var (
	size int
	seed uint64
	reps int
)

func main() {
	root := &cobra.Command{
		Use:           "numbench",
		Short:         "benchmark the numkit primitives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVarP(&size, "size", "n", 1_000_000, "number of elements per run")
	root.PersistentFlags().Uint64Var(&seed, "seed", 42, "seed for the input generator")
	root.PersistentFlags().IntVar(&reps, "reps", 5, "runs per benchmark; the median is reported")

	root.AddCommand(sortCmd(), randCmd(), spanCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "numbench:", err)
		os.Exit(1)
	}
}

func sortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "time the multi-slice introsort",
		RunE: func(cmd *cobra.Command, args []string) error {
			src := rand.NewXoshiro256(seed)
			keys := make([]float64, size)
			values := make([]int, size)
			weights := make([]float64, size)
			scratch := make([]float64, size)

			rows := [][2]string{
				{"sort/keys", median(func() {
					fill(src, scratch)
					sort.Sort(scratch)
				})},
				{"sort/pairs", median(func() {
					fill(src, keys)
					sort.SortPairs(keys, values)
				})},
				{"sort/triples", median(func() {
					fill(src, keys)
					sort.SortTriples(keys, values, weights)
				})},
				{"sort/presorted", median(func() {
					sort.Sort(scratch)
				})},
			}
			report(cmd, rows)
			return nil
		},
	}
}

func randCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rand",
		Short: "time the generators and samplers",
		RunE: func(cmd *cobra.Command, args []string) error {
			xs := rand.NewXorShift64(seed)
			xo := rand.NewXoshiro256(seed)
			normal := rand.NewNormal(xo, 0, 1)
			uniform := rand.NewUniform(xo, 0, 1)

			var sink float64
			rows := [][2]string{
				{"rand/xorshift64", median(func() {
					for i := 0; i < size; i++ {
						sink += float64(xs.Uint64() >> 32)
					}
				})},
				{"rand/xoshiro256", median(func() {
					for i := 0; i < size; i++ {
						sink += float64(xo.Uint64() >> 32)
					}
				})},
				{"rand/normal", median(func() {
					for i := 0; i < size; i++ {
						sink += normal.Sample()
					}
				})},
				{"rand/uniform", median(func() {
					for i := 0; i < size; i++ {
						sink += uniform.Sample()
					}
				})},
			}
			report(cmd, rows)
			_ = sink
			return nil
		},
	}
}

func spanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "span",
		Short: "time the span reductions",
		RunE: func(cmd *cobra.Command, args []string) error {
			src := rand.NewXoshiro256(seed)
			a := make([]float64, size)
			b := make([]float64, size)
			fill(src, a)
			fill(src, b)

			var sink float64
			rows := [][2]string{
				{"span/min", median(func() { sink += span.Min(a) })},
				{"span/max", median(func() { sink += span.Max(a) })},
				{"span/sum", median(func() { sink += span.Sum(a) })},
				{"span/sumsqdelta", median(func() { sink += span.SumSqDelta(a, b) })},
				{"span/clamp", median(func() { span.Clamp(a, 0.25, 0.75) })},
			}
			report(cmd, rows)
			_ = sink
			return nil
		},
	}
}

func fill(src rand.Source, s []float64) {
	for i := range s {
		s[i] = rand.Float64(src)
	}
}

// median runs f reps times and formats the median duration.
func median(f func()) string {
	times := make([]time.Duration, reps)
	for i := range times {
		start := time.Now()
		f()
		times[i] = time.Since(start)
	}
	sort.SortFunc(times, func(a, b time.Duration) bool { return a < b })
	return times[len(times)/2].String()
}

func report(cmd *cobra.Command, rows [][2]string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "benchmark\tmedian of %d\n", reps)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r[0], r[1])
	}
	w.Flush()
}
