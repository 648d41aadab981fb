package calculation

import (
	"context"
	"fmt"

	"github.com/swingpay/fifo-calculator/internal/domain"
	"golang.org/x/sync/errgroup"
)

// MaxComparedJobs is the number of jobs that can be compared side by side.
const MaxComparedJobs = 2

// CompareJobs projects one or two jobs and, for two, reports the difference of the
// second against the first. Projections run concurrently; results keep input order.
func (ce *CalculationEngine) CompareJobs(ctx context.Context, jobs ...domain.Job) (*domain.JobComparison, error) {
	if len(jobs) == 0 || len(jobs) > MaxComparedJobs {
		return nil, fmt.Errorf("compare expects 1 to %d jobs, got %d", MaxComparedJobs, len(jobs))
	}

	projections := make([]domain.JobProjection, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := ce.Project(job)
			if err != nil {
				return fmt.Errorf("%s: %w", job.Label(i), err)
			}
			projections[i] = domain.JobProjection{Name: job.Label(i), Job: job, Results: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	comparison := &domain.JobComparison{Jobs: projections, BetterJob: -1}
	if len(projections) == MaxComparedJobs {
		a, b := projections[0].Results, projections[1].Results
		comparison.Delta = &domain.ComparisonDelta{
			GrossYear:         b.GrossYear.Sub(a.GrossYear),
			NetSwing:          b.NetSwing.Sub(a.NetSwing),
			NetMonth:          b.NetMonth.Sub(a.NetMonth),
			NetYear:           b.NetYear.Sub(a.NetYear),
			RetirementPerYear: b.RetirementPerYear().Sub(a.RetirementPerYear()),
		}
		switch a.NetYear.Cmp(b.NetYear) {
		case 1:
			comparison.BetterJob = 0
		case -1:
			comparison.BetterJob = 1
		}
	}
	return comparison, nil
}
