package main

import (
	"context"
	"fmt"
	"io"

	"exprnode/eval"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const (
	scenarioPlain   = "plain"
	scenarioLogging = "logging"
	scenarioChecked = "checked"
)

var scenarioNames = []string{scenarioPlain, scenarioLogging, scenarioChecked}

var scenarioFamilies = map[string]string{
	scenarioPlain:   eval.Plain{}.Name(),
	scenarioLogging: eval.Logging{}.Name(),
	scenarioChecked: eval.Safe{}.Name(),
}

type runner struct {
	cfg    *Config
	logger *zap.Logger

	evaluations *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

func newRunner(cfg *Config, logger *zap.Logger, reg prometheus.Registerer) *runner {
	return &runner{
		cfg:    cfg,
		logger: logger,

		evaluations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "exprnode_evaluations_total",
			Help: "Total number of tree evaluations assigned to an operand.",
		}, []string{"scenario"}),
		failures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "exprnode_evaluation_failures_total",
			Help: "Total number of tree evaluations that failed.",
		}, []string{"scenario", "reason"}),
	}
}

// run executes the selected scenarios in order and writes one result line
// per scenario to w.
func (r *runner) run(ctx context.Context, w io.Writer) error {
	logger := r.logger.With(zap.String("run_id", uuid.New().String()))

	for _, name := range r.cfg.selectedScenarios() {
		if err := ctx.Err(); err != nil {
			return err
		}

		logger.Debug("running scenario", zap.String("scenario", name), zap.String("family", scenarioFamilies[name]))

		var (
			result string
			err    error
		)
		switch name {
		case scenarioPlain:
			result, err = r.runPlain()
		case scenarioLogging:
			result, err = r.runLogging(logger)
		case scenarioChecked:
			result, err = r.runChecked(ctx, logger)
		default:
			err = errors.Errorf("scenario '%s' does not exist", name)
		}
		if err != nil {
			return errors.Wrapf(err, "scenario %s", name)
		}

		if _, err := fmt.Fprintf(w, "%s: %s\n", name, result); err != nil {
			return err
		}
	}

	return nil
}

// c = a + b - c * (a / b)
func (r *runner) runPlain() (string, error) {
	a := eval.NewOperand[eval.Plain](r.cfg.Plain.A)
	b := eval.NewOperand[eval.Plain](r.cfg.Plain.B)
	c := eval.NewOperand[eval.Plain](r.cfg.Plain.C)

	err := assign(r, scenarioPlain, c, eval.Subtract(eval.Add(a, b), eval.Multiply(c, eval.Divide(a, b))))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("c = %d", c.Value()), nil
}

// op = op + op2 / (op * op2), evaluated in float64 and stored back in int64.
func (r *runner) runLogging(logger *zap.Logger) (string, error) {
	op := eval.NewOperand[eval.Logging](r.cfg.Logging.Op, eval.WithLogger(logger))
	op2 := eval.NewOperand[eval.Logging](r.cfg.Logging.Op2)

	opf := eval.Convert[float64](op)
	err := assign(r, scenarioLogging, op, eval.Add(opf, eval.Divide(op2, eval.Multiply(opf, op2))))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("op = %d", op.Value()), nil
}

// x = x * factor until the product no longer fits int32.
func (r *runner) runChecked(ctx context.Context, logger *zap.Logger) (string, error) {
	x := eval.NewOperand[eval.Safe](r.cfg.Checked.X)
	next := eval.MultiplyValue(x, r.cfg.Checked.Factor)

	steps := 0
	for steps < r.cfg.Checked.MaxSteps {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		err := assign(r, scenarioChecked, x, next)
		if errors.Is(err, eval.ErrOverflow) {
			logger.Info("overflow detected", zap.Int("steps", steps), zap.Error(err))
			return fmt.Sprintf("x = %d after %d steps (overflow)", x.Value(), steps), nil
		}
		if err != nil {
			return "", err
		}
		steps++
	}

	return fmt.Sprintf("x = %d after %d steps", x.Value(), steps), nil
}

func assign[F eval.Family, T, S eval.Number](r *runner, scenario string, dst *eval.Operand[F, T], src eval.Node[F, S]) error {
	r.evaluations.WithLabelValues(scenario).Inc()

	err := eval.Assign(dst, src)
	if err != nil {
		r.failures.WithLabelValues(scenario, failureReason(err)).Inc()
	}
	return err
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, eval.ErrOverflow):
		return "overflow"
	case errors.Is(err, eval.ErrDivideByZero):
		return "divide_by_zero"
	default:
		return "other"
	}
}
