package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/osse101/GildedRose_Go/internal/aging"
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/stock"
)

const defaultDays = 2

type options struct {
	days        int
	stockFile   string
	battleCries bool
	seed        int64
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Print the day-by-day aging table for a stock of items.",
		Long: `Simulate ages a stock of items one day at a time and prints ` +
			`every item's sellIn and quality before each day's update. ` +
			`Without --stock the classic opening stock is used.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.days, "days", "d", defaultDays, "number of days to print")
	cmd.Flags().StringVarP(&opts.stockFile, "stock", "s", "", "YAML or JSON stock file")
	cmd.Flags().BoolVar(&opts.battleCries, "battle-cries", false, "log a battle cry whenever a legendary item is aged")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for battle cries (0 picks one)")

	return cmd
}

func run(out io.Writer, opts *options) error {
	if opts.days < 0 {
		return fmt.Errorf("--days must not be negative, got %d", opts.days)
	}

	entries := stock.DefaultEntries()
	if opts.stockFile != "" {
		loaded, err := stock.LoadFile(opts.stockFile)
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return fmt.Errorf("stock file %s has no items", opts.stockFile)
		}
		entries = loaded
	}

	var engineOpts []aging.Option
	if opts.battleCries {
		seed := opts.seed
		if seed == 0 {
			seed = rand.Int63()
		}
		engineOpts = append(engineOpts, aging.WithAnnouncer(aging.NewBattleCryAnnouncer(rand.New(rand.NewSource(seed)))))
	}

	shop := aging.NewShopWithEngine(aging.NewEngine(engineOpts...), stock.Items(entries)...)
	for day := 0; day < opts.days; day++ {
		if err := printDay(out, day, shop.Items()); err != nil {
			return err
		}
		shop.AdvanceOneDay()
	}
	return nil
}

func printDay(out io.Writer, day int, items []*domain.Item) error {
	if _, err := fmt.Fprintf(out, "-------- day %d --------\nname, sellIn, quality\n", day); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintf(out, "%s, %d, %d\n", item.Name, item.SellIn, item.Quality); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out)
	return err
}
