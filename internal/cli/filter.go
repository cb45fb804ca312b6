package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zerofoolcoder/collectionsjs/internal/config"
	"github.com/zerofoolcoder/collectionsjs/pipeline"
	"github.com/zerofoolcoder/collectionsjs/specification"
)

type filterFlags struct {
	file   string
	format string
	output string
	gt     float64
	gte    float64
	lt     float64
	lte    float64
	eq     float64
	ne     float64
	reject bool
	sort   bool
	take   int
	skip   int
}

func newFilterCmd(a *app) *cobra.Command {
	f := &filterFlags{}
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Keep the numbers matching every comparison flag",
		Example: "  echo '[1, 4, 8, 10, 20]' | collection filter --gte 5\n" +
			"  collection filter --file numbers.yaml --format yaml --lt 10 --reject",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFilter(cmd, a, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "read the list from a file instead of stdin")
	flags.StringVar(&f.format, "format", "", "input format: json or yaml")
	flags.StringVarP(&f.output, "output", "o", "", "output format: json or yaml")
	flags.Float64Var(&f.gt, "gt", 0, "keep numbers greater than N")
	flags.Float64Var(&f.gte, "gte", 0, "keep numbers greater than or equal to N")
	flags.Float64Var(&f.lt, "lt", 0, "keep numbers less than N")
	flags.Float64Var(&f.lte, "lte", 0, "keep numbers less than or equal to N")
	flags.Float64Var(&f.eq, "eq", 0, "keep numbers equal to N")
	flags.Float64Var(&f.ne, "ne", 0, "keep numbers not equal to N")
	flags.BoolVar(&f.reject, "reject", false, "drop the matching numbers instead of keeping them")
	flags.BoolVar(&f.sort, "sort", false, "sort the result in ascending order")
	flags.IntVar(&f.take, "take", 0, "keep at most N numbers")
	flags.IntVar(&f.skip, "skip", 0, "drop the first N numbers")
	return cmd
}

func runFilter(cmd *cobra.Command, a *app, f *filterFlags) error {
	log := a.log.With().Str("cmd", "filter").Logger()

	inFormat, outFormat := a.cfg.Input.Format, a.cfg.Output.Format
	if f.format != "" {
		inFormat = f.format
	}
	if f.output != "" {
		outFormat = f.output
	}
	if err := config.ValidateFormat(inFormat); err != nil {
		return err
	}
	if err := config.ValidateFormat(outFormat); err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if f.file != "" {
		file, err := os.Open(f.file)
		if err != nil {
			log.Error().Err(err).Str("file", f.file).Msg("open input")
			return err
		}
		defer file.Close()
		in = file
	}

	numbers, err := decodeNumbers(in, inFormat)
	if err != nil {
		log.Error().Err(err).Msg("read input")
		return err
	}

	spec := comparisons(cmd, f)
	stages := make([]pipeline.Stage[float64], 0, 4)
	if f.reject {
		stages = append(stages, pipeline.Reject[float64](specification.Predicate(cmd.Context(), spec)))
	} else {
		stages = append(stages, pipeline.Where(cmd.Context(), spec))
	}
	if f.sort {
		stages = append(stages, pipeline.SortBy(func(x, y float64) bool { return x < y }))
	}
	if cmd.Flags().Changed("skip") {
		stages = append(stages, pipeline.Skip[float64](f.skip))
	}
	if cmd.Flags().Changed("take") {
		stages = append(stages, pipeline.Take[float64](f.take))
	}

	result := pipeline.Run(numbers, stages...)
	log.Debug().Int("in", numbers.Len()).Int("out", result.Len()).Int("stages", len(stages)).Msg("filtered")

	return encodeNumbers(cmd.OutOrStdout(), outFormat, result)
}

// comparisons returns the conjunction of the comparison flags that were set.
func comparisons(cmd *cobra.Command, f *filterFlags) specification.Specification[float64] {
	specs := make([]specification.Specification[float64], 0, 6)
	flags := cmd.Flags()
	if flags.Changed("gt") {
		specs = append(specs, specification.GreaterThan(f.gt))
	}
	if flags.Changed("gte") {
		specs = append(specs, specification.GreaterThanOrEqual(f.gte))
	}
	if flags.Changed("lt") {
		specs = append(specs, specification.LessThan(f.lt))
	}
	if flags.Changed("lte") {
		specs = append(specs, specification.LessThanOrEqual(f.lte))
	}
	if flags.Changed("eq") {
		specs = append(specs, specification.EqualTo(f.eq))
	}
	if flags.Changed("ne") {
		specs = append(specs, specification.NotEqualTo(f.ne))
	}
	return specification.Conjunction(specs...)
}
