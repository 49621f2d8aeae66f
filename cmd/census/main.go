package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"pokerhandcensus/internal/config"
	"pokerhandcensus/internal/dataset"
	"pokerhandcensus/internal/util"
	"pokerhandcensus/pkg/census"
	"pokerhandcensus/pkg/deck"
	"pokerhandcensus/pkg/preflop"
)

// Version is the census version
var Version = "v0.0.0-dev"

func main() {
	flag.Parse()
	setupLogger()

	log := logrus.WithField("run", util.RunID())
	log.WithField("version", Version).Info("starting poker hand census")

	if err := run(config.Instance(), log); err != nil {
		log.WithError(err).Fatal("census failed; discard any partial output")
	}
}

func run(cfg config.Config, log *logrus.Entry) error {
	// pass 1: enumerate every hand, classify, persist placeholder records
	writer, err := dataset.NewHandsWriter(cfg.HandsPath())
	if err != nil {
		return err
	}

	enumerator := &census.Enumerator{
		ProgressEvery: cfg.ProgressInterval,
		Progress: func(hands int) {
			log.WithField("hands", hands).Info("enumerating")
		},
	}

	log.WithField("file", cfg.HandsPath()).Info("enumerating all five-card hands")
	tally, err := enumerator.Run(deck.New(), writer)
	if err != nil {
		_ = writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	if total := tally.Total(); total != census.TotalHands {
		return fmt.Errorf("expected %d hands, enumerated %d", census.TotalHands, total)
	}

	// barrier: counts are final, percentages can now be derived
	log.WithField("file", cfg.TotalsPath()).Info("writing category totals")
	if err := dataset.WriteTotals(cfg.TotalsPath(), tally.Totals()); err != nil {
		return err
	}

	// pass 2: replace every placeholder with the final percentage
	log.Info("reconciling hand percentages")
	if err := census.Reconcile(cfg.HandsPath(), tally); err != nil {
		return err
	}

	// the preflop grid is closed-form and independent of the passes
	log.WithField("file", cfg.PreflopPath()).Info("writing preflop grid")
	if err := dataset.WritePreflop(cfg.PreflopPath(), preflop.Grid()); err != nil {
		return err
	}

	renderSummary(tally)
	return nil
}

// renderSummary prints the category totals table, descending by count
func renderSummary(tally *census.Tally) {
	totals := tally.Totals()
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Count > totals[j].Count
	})

	rows := pterm.TableData{{"Category", "Count", "Percent"}}
	for _, row := range totals {
		rows = append(rows, []string{
			row.Category.String(),
			strconv.Itoa(row.Count),
			dataset.FormatPercent(row.Percent) + "%",
		})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	pterm.Success.Printfln("census complete: %d hands", tally.Total())
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
