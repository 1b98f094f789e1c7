// Command tuttengine computes the Tutte polynomial of a connected
// undirected multigraph via tree-decomposition transfer-matrix dynamic
// programming, per spec.md §6's CLI surface. Grounded on the pack's
// cobra + zerolog + pkg/errors convention (the teacher ships no cmd/ of
// its own): cobra for flag parsing and dispatch, zerolog for the
// structured stderr progress/diagnostic lines, pkg/errors for wrapping
// I/O failures with call-site context before they reach the top level.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tuttengine/tuttengine/bigint"
	"github.com/tuttengine/tuttengine/bigpoly"
	"github.com/tuttengine/tuttengine/crt"
	"github.com/tuttengine/tuttengine/decomp"
	"github.com/tuttengine/tuttengine/graph"
	"github.com/tuttengine/tuttengine/parsegraph"
	"github.com/tuttengine/tuttengine/transfer"
	"github.com/tuttengine/tuttengine/tutte"
	"github.com/tuttengine/tuttengine/zp"
)

// Sentinel errors for the CLI's own InvalidArgument conditions (spec.md
// §7); parsegraph and decomp contribute their own sentinels for
// ParseError and the elimination-order-not-a-permutation case.
var (
	ErrConflictingOrderFlags = errors.New("tuttengine: at most one elimination-order selector may be given")
	ErrMalformedOrder        = errors.New("tuttengine: --elimination-order must be whitespace-separated non-negative integers")
	ErrNotConnected          = errors.New("tuttengine: graph is not connected")
)

// options holds every flag value in one struct that newRootCmd binds to
// the command's flags; run still reads the *cobra.Command for
// Flags().Changed and for its input and output streams.
type options struct {
	inputFile        string
	degree           bool
	fillIn           bool
	localDegree      bool
	localFillIn      bool
	eliminationOrder string
	printTree        bool
	treeOnly         bool
	flow             bool
	chromatic        bool
	chineseRemainder bool
}

func newRootCmd() *cobra.Command {
	var opt options
	cmd := &cobra.Command{
		Use:           "tuttengine",
		Short:         "Compute the Tutte polynomial of a connected graph via tree-decomposition transfer matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opt)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opt.inputFile, "input-file", "", "read the graph token from PATH (default: stdin)")
	flags.BoolVar(&opt.degree, "degree", false, "eliminate by minimum degree (default heuristic)")
	flags.BoolVar(&opt.fillIn, "fill-in", false, "eliminate by minimum fill-in cost")
	flags.BoolVar(&opt.localDegree, "local-degree", false, "eliminate by local minimum degree")
	flags.BoolVar(&opt.localFillIn, "local-fill-in", false, "eliminate by local minimum fill-in cost")
	flags.StringVar(&opt.eliminationOrder, "elimination-order", "", `explicit whitespace-separated elimination order, e.g. "2 0 1"`)
	flags.BoolVar(&opt.printTree, "print-tree", false, "emit the bag tree and its width to stderr")
	flags.BoolVar(&opt.treeOnly, "tree-only", false, "print the bag tree only, skipping polynomial computation")
	flags.BoolVarP(&opt.flow, "flow", "f", false, "compute the flow polynomial (v <- -Q)")
	flags.BoolVarP(&opt.chromatic, "chromatic", "c", false, "compute the chromatic polynomial (v <- -1)")
	flags.BoolVar(&opt.chineseRemainder, "chinese-remainder", false, "use the Chinese-remainder modular lift instead of direct big-integer arithmetic")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opt *options) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true})

	heuristic, explicitOrder, err := resolveOrdering(cmd, opt)
	if err != nil {
		logger.Error().Err(err).Msg("invalid arguments")
		return err
	}

	token, err := readInput(cmd, opt.inputFile)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read input")
		return err
	}

	g, err := parsegraph.Parse(token)
	if err != nil {
		logger.Error().Err(err).Msg("failed to parse graph")
		return err
	}
	logger.Info().Int("vertices", g.N()).Int("edges", g.NumEdges()).Msg("parsed graph")

	if !g.IsConnected() {
		logger.Error().Msg("graph is not connected")
		return ErrNotConnected
	}

	order := explicitOrder
	if order == nil {
		order = heuristic(g)
	}

	root, err := decomp.NewFromOrder(g, order)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build tree decomposition")
		return err
	}

	if opt.printTree || opt.treeOnly {
		logger.Info().Int("treewidth", root.Treewidth()).Str("tree", root.String()).Msg("tree decomposition")
	}
	if opt.treeOnly {
		return nil
	}

	result, err := computePolynomial(root, opt, func(prime uint64, partial bigpoly.Poly[bigint.Int]) {
		logger.Debug().Uint64("prime", prime).Str("partial", partial.String()).Msg("chinese-remainder iteration")
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to compute polynomial")
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatPolynomial(result))
	return nil
}

// resolveOrdering validates that at most one ordering selector was given
// and returns either a Heuristic to run, or an explicit order parsed from
// --elimination-order (in which case the Heuristic return is nil).
func resolveOrdering(cmd *cobra.Command, opt *options) (graph.Heuristic, []int, error) {
	flags := cmd.Flags()
	selected := 0
	for _, name := range []string{"degree", "fill-in", "local-degree", "local-fill-in", "elimination-order"} {
		if flags.Changed(name) {
			selected++
		}
	}
	if selected > 1 {
		return nil, nil, ErrConflictingOrderFlags
	}

	switch {
	case flags.Changed("elimination-order"):
		order, err := parseOrder(opt.eliminationOrder)
		if err != nil {
			return nil, nil, err
		}
		return nil, order, nil
	case opt.fillIn:
		return graph.GreedyFillIn, nil, nil
	case opt.localDegree:
		return graph.GreedyLocalDegree, nil, nil
	case opt.localFillIn:
		return graph.GreedyLocalFillIn, nil, nil
	default:
		return graph.GreedyDegree, nil, nil
	}
}

// parseOrder tokenizes an --elimination-order argument on whitespace
// only, per spec.md §9's resolution of the tokenizer open question.
func parseOrder(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, ErrMalformedOrder
	}
	order := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return nil, errors.Wrapf(ErrMalformedOrder, "token %q", f)
		}
		order[i] = v
	}
	return order, nil
}

// readInput returns the graph token from path, or from cmd's stdin if
// path is empty.
func readInput(cmd *cobra.Command, path string) (string, error) {
	var r io.Reader
	if path == "" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", errors.Wrap(err, "open input file")
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return strings.TrimSpace(string(data)), nil
}

// computePolynomial runs either the direct big-integer transfer or the
// Chinese-remainder lift, applying the --flow / --chromatic substitution
// for v at the ring-value level (Q always stays the indeterminate).
func computePolynomial(root *decomp.Bag, opt *options, onIteration func(prime uint64, partial bigpoly.Poly[bigint.Int])) (bigpoly.Poly[bigint.Int], error) {
	if opt.chineseRemainder {
		var vValue func(one zp.Element) bigpoly.Poly[zp.Element]
		switch {
		case opt.flow:
			vValue = func(one zp.Element) bigpoly.Poly[zp.Element] { return bigpoly.Q(one).Neg() }
		case opt.chromatic:
			vValue = func(one zp.Element) bigpoly.Poly[zp.Element] { return bigpoly.FromConst(one.Neg()) }
		}
		return crt.Compute(root, vValue, onIteration)
	}

	one := bigint.FromInt64(1)
	v := bigpoly.V(one)
	switch {
	case opt.flow:
		v = bigpoly.Q(one).Neg()
	case opt.chromatic:
		v = bigpoly.FromConst(bigint.FromInt64(-1))
	}
	op := tutte.New(bigpoly.FromConst(one), bigpoly.Q(one), v)
	return transfer.Transfer(op, root), nil
}
