package slcsp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"slcsp/decision/geo"
	"slcsp/decision/rating"
	"slcsp/ingestion"
	"slcsp/pkg/platform"
)

// Dataset holds the parsed and indexed inputs of one run
type Dataset struct {
	Queries []string
	Areas   geo.ZipAreaMap
	Index   rating.RateIndex
}

// Report is the outcome of a run
type Report struct {
	RunID   uuid.UUID
	Results []Result
	Counts  map[Reason]int
}

// Load reads all three inputs. The plan catalogue and the ZIP mapping are
// parsed and indexed concurrently; any failure aborts the whole load.
func Load(ctx context.Context, cfg platform.Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := zerolog.Ctx(ctx)

	ds := &Dataset{}
	var g errgroup.Group

	g.Go(func() error {
		cat, err := ingestion.LoadPlans(cfg.Plans)
		if err != nil {
			return err
		}
		ds.Index = rating.BuildRateIndex(cat.Silver)
		logger.Debug().
			Str("file", cfg.Plans).
			Int("rows", cat.RowsRead).
			Int("silver", len(cat.Silver)).
			Int("areas", len(ds.Index)).
			Msg("Rate index built")
		for _, area := range ds.Index.Areas() {
			rate, _ := ds.Index.Lookup(area)
			logger.Debug().
				Stringer("area", area).
				Str("second_lowest", FormatRate(rate)).
				Msg("Rate area indexed")
		}
		return nil
	})

	g.Go(func() error {
		rows, err := ingestion.LoadZipAreas(cfg.ZipAreas)
		if err != nil {
			return err
		}
		ds.Areas = geo.ResolveZipAreas(rows)
		logger.Debug().
			Str("file", cfg.ZipAreas).
			Int("rows", len(rows)).
			Int("zips", len(ds.Areas)).
			Int("ambiguous", ds.Areas.Ambiguous()).
			Msg("ZIP areas resolved")
		return nil
	})

	g.Go(func() error {
		queries, err := ingestion.LoadQueries(cfg.ZipsOfInterest)
		if err != nil {
			return err
		}
		ds.Queries = queries
		logger.Debug().
			Str("file", cfg.ZipsOfInterest).
			Int("queries", len(queries)).
			Msg("Queries loaded")
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Run loads the inputs named by cfg and answers every query
func Run(ctx context.Context, cfg platform.Config) (*Report, error) {
	runID := uuid.New()
	logger := zerolog.Ctx(ctx).With().Str("run_id", runID.String()).Logger()
	ctx = logger.WithContext(ctx)

	ds, err := Load(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load inputs: %w", err)
	}

	report := NewReport(runID, Calculate(ds.Queries, ds.Areas, ds.Index))

	event := logger.Debug().Int("results", len(report.Results))
	for _, reason := range Reasons {
		event = event.Int(string(reason), report.Counts[reason])
	}
	event.Msg("SLCSP calculated")

	return report, nil
}

// NewReport tallies results by Reason
func NewReport(runID uuid.UUID, results []Result) *Report {
	counts := make(map[Reason]int, len(Reasons))
	for _, r := range results {
		counts[r.Reason]++
	}
	return &Report{RunID: runID, Results: results, Counts: counts}
}
