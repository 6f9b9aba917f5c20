package action

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/rob-foulkrod/verification/internal/common/config"
	apperrors "github.com/rob-foulkrod/verification/internal/common/errors"
	"github.com/rob-foulkrod/verification/internal/common/logger"
	"github.com/rob-foulkrod/verification/internal/common/metrics"
	"github.com/rob-foulkrod/verification/internal/common/observability"
	"github.com/rob-foulkrod/verification/internal/common/validation"
	"github.com/rob-foulkrod/verification/internal/textops"
)

// Runner owns the dispatch boundary: it validates the input contract,
// invokes the pure dispatcher exactly once, and assembles the ordered
// output record. It never touches the output sink itself.
type Runner struct {
	config *config.Config
	logger logger.Logger
	obs    *observability.Observability
}

func New(cfg *config.Config, log logger.Logger, obs *observability.Observability) *Runner {
	return &Runner{
		config: cfg,
		logger: log.WithFields(map[string]interface{}{"component": "runner"}),
		obs:    obs,
	}
}

// Run executes one invocation. The returned record always contains result
// and timestamp; operation, run-id and metadata follow when present.
func (r *Runner) Run(ctx context.Context, in Input) (*OutputRecord, error) {
	start := time.Now()

	if in.Text == "" {
		metrics.OperationsFailed.WithLabelValues(string(apperrors.ErrCodeMissingRequiredInput)).Inc()
		return nil, apperrors.NewMissingRequiredInputError("text")
	}

	requested := in.Operation
	if requested == "" {
		requested = r.config.Runner.DefaultOperation
	}

	op, known := textops.Normalize(requested)
	if !known {
		r.logger.Warn("unknown operation, falling back",
			map[string]interface{}{
				"requested": requested,
				"fallback":  textops.FallbackOperation,
			})
		metrics.OperationFallbacks.Inc()
		op = textops.FallbackOperation
	}

	if err := r.validateInput(in, op); err != nil {
		metrics.OperationsFailed.WithLabelValues(string(apperrors.ErrCodeInvalidInputSchema)).Inc()
		return nil, err
	}

	if r.config.Runner.MaxTextLength > 0 && len([]rune(in.Text)) > r.config.Runner.MaxTextLength {
		r.logger.Notice("text exceeds configured length, processing anyway",
			map[string]interface{}{
				"length": len([]rune(in.Text)),
				"max":    r.config.Runner.MaxTextLength,
			})
	}

	result := textops.Dispatch(in.Text, op)

	record := &OutputRecord{}
	record.Set("result", result.Summary())
	record.Set("operation", result.Operation())
	record.Set("timestamp", time.Now().UTC().Format(time.RFC3339))
	record.Set("run-id", uuid.New().String())

	if meta := result.Metadata(); meta != nil {
		metaJSON, err := json.Marshal(meta)
		if err == nil {
			record.Set("metadata", string(metaJSON))
		}
	}

	duration := time.Since(start)
	metrics.OperationsDispatched.WithLabelValues(op).Inc()
	metrics.OperationDuration.WithLabelValues(op).Observe(duration.Seconds())
	if r.obs != nil {
		r.obs.RecordInvocation(ctx, op, "ok")
		r.obs.RecordDuration(ctx, duration, op)
	}

	r.logger.Debug("operation dispatched", map[string]interface{}{
		"operation": op,
		"duration":  duration.String(),
	})

	return record, nil
}

// validateInput checks the resolved inputs against the operation's input
// schema from the registry metadata.
func (r *Runner) validateInput(in Input, op string) error {
	info, ok := textops.Info(op)
	if !ok {
		return nil
	}

	doc := map[string]interface{}{
		"text":      in.Text,
		"operation": op,
	}

	result, err := validation.ValidateInput(doc, info.InputSchema)
	if err != nil {
		return apperrors.NewInvalidInputSchemaError(err.Error())
	}
	if !result.Valid {
		return apperrors.NewInvalidInputSchemaError(validation.Describe(result))
	}
	return nil
}
