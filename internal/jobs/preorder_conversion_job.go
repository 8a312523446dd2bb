package jobs

import (
	"context"
	"log/slog"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PreorderConversionJob sweeps products with active preorders and converts
// the head of each queue while stock covers it. Runs every minute; the
// conversion itself is strictly position-ordered per product.
type PreorderConversionJob struct {
	handler   commands.ConvertAvailablePreordersCommandHandler
	preorders ports.PreorderRepository
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPreorderConversionJob creates the periodic preorder conversion sweep.
// The preorder repository is only used to enumerate products worth sweeping;
// all mutations go through the conversion handler's unit of work.
func NewPreorderConversionJob(
	handler commands.ConvertAvailablePreordersCommandHandler,
	preorders ports.PreorderRepository,
	logger *slog.Logger,
) *PreorderConversionJob {
	return &PreorderConversionJob{
		handler:   handler,
		preorders: preorders,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "preorder_conversion_job"),
	}
}

// Start schedules the sweep at the top of every minute.
func (j *PreorderConversionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.sweep(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Preorder conversion job started (running every minute)")
	return nil
}

// Stop stops the preorder conversion job.
func (j *PreorderConversionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Preorder conversion job stopped")
}

func (j *PreorderConversionJob) sweep(ctx context.Context) {
	products, err := j.preorders.GetProductsWithActive(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Preorder sweep failed to list products", "error", err)
		return
	}

	for _, productID := range products {
		cmd, err := commands.NewConvertAvailablePreordersCommand(productID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Preorder sweep skipped product",
				"product_id", productID.String(), "error", err)
			continue
		}

		converted, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Preorder conversion failed",
				"product_id", productID.String(), "error", err)
			continue
		}
		if converted > 0 {
			j.logger.InfoContext(ctx, "Preorders converted",
				"product_id", productID.String(), "count", converted)
		}
	}
}
