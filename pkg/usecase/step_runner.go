package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/sitecloner/pkg/domain/model"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
	"github.com/m-mizutani/sitecloner/pkg/utils/metrics"
)

// stepRunner records the outcome of every step and applies the policy table
// to failures.
type stepRunner struct {
	policy  model.StepPolicy
	results []model.StepResult
}

func newStepRunner(policy model.StepPolicy) *stepRunner {
	return &stepRunner{policy: policy}
}

func (x *stepRunner) record(result model.StepResult) {
	x.results = append(x.results, result)
	metrics.StepTotal.WithLabelValues(string(result.Step), string(result.Status)).Inc()
}

// run executes fn as step. A failure of a best-effort step is logged and
// swallowed. A failure of a fatal step is returned as *model.StepError.
func (x *stepRunner) run(ctx context.Context, step model.Step, fn func(ctx context.Context) error) error {
	logger := logging.From(ctx).With(slog.String("step", string(step)))

	if err := fn(ctx); err != nil {
		x.record(model.Failed(step, err))

		if x.policy.Of(step) == model.PolicyBestEffort {
			logger.Warn("Best-effort step failed, continuing", slog.Any("error", err))
			return nil
		}

		logger.Error("Step failed", slog.Any("error", err))
		return &model.StepError{Step: step, Err: err}
	}

	x.record(model.Succeeded(step))
	logger.Debug("Step succeeded")
	return nil
}

func (x *stepRunner) skip(ctx context.Context, step model.Step) {
	x.record(model.Skipped(step))
	logging.From(ctx).Debug("Step skipped", slog.String("step", string(step)))
}

func (x *stepRunner) failed() []model.StepResult {
	var out []model.StepResult
	for _, r := range x.results {
		if r.Status == types.StepFailed {
			out = append(out, r)
		}
	}
	return out
}
