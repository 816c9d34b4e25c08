package jobs

import (
	"context"
	"errors"
	"log/slog"

	"autoparts/internal/core/application/usecases/commands"
	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/core/ports"
	"autoparts/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// PaymentStatusJob polls the payment provider for orders awaiting payment.
// It backs up the payment webhook: when a completion notification is lost,
// the poll settles the order on the next pass.
type PaymentStatusJob struct {
	uowFactory     commands.OrderUoWFactory
	gateway        ports.PaymentGateway
	confirmHandler commands.ConfirmPaymentCommandHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewPaymentStatusJob creates a job that polls payment sessions every 30 seconds.
func NewPaymentStatusJob(
	uowFactory commands.OrderUoWFactory,
	gateway ports.PaymentGateway,
	confirmHandler commands.ConfirmPaymentCommandHandler,
	logger *slog.Logger,
) *PaymentStatusJob {
	return &PaymentStatusJob{
		uowFactory:     uowFactory,
		gateway:        gateway,
		confirmHandler: confirmHandler,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "payment_status_job"),
	}
}

// Start begins polling every 30 seconds.
func (j *PaymentStatusJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment status job started (running every 30 seconds)")
	return nil
}

// Stop stops the payment status job.
func (j *PaymentStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment status job stopped")
}

func (j *PaymentStatusJob) run(ctx context.Context) {
	// Reads only, so no transaction is opened.
	uow := j.uowFactory.Create()
	awaiting, err := uow.OrderRepository().GetAllInStatus(ctx, order.AwaitingPayment)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load orders awaiting payment", "error", err)
		return
	}

	for _, aggregate := range awaiting {
		sessionID := aggregate.PaymentRef()
		if sessionID == "" {
			continue
		}

		status, checkErr := j.gateway.CheckStatus(ctx, sessionID)
		if checkErr != nil {
			if errors.Is(checkErr, errs.ErrObjectNotFound) {
				// Session unknown to the provider, nothing to settle.
				j.logger.DebugContext(ctx, "Payment session not found at provider",
					"session_id", sessionID)
				continue
			}
			j.logger.ErrorContext(ctx, "Payment status check failed",
				"session_id", sessionID, "error", checkErr)
			continue
		}

		if !status.Paid {
			continue
		}

		cmd, cmdErr := commands.NewConfirmPaymentCommand(sessionID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build confirm payment command",
				"session_id", sessionID, "error", cmdErr)
			continue
		}

		if handleErr := j.confirmHandler.Handle(ctx, cmd); handleErr != nil {
			// The webhook can win the race; the order is then already paid.
			if errors.Is(handleErr, errs.ErrInvalidTransition) {
				j.logger.DebugContext(ctx, "Order already confirmed",
					"session_id", sessionID)
				continue
			}
			j.logger.ErrorContext(ctx, "Payment confirmation failed",
				"session_id", sessionID, "error", handleErr)
			continue
		}

		j.logger.InfoContext(ctx, "Payment confirmed by polling",
			"session_id", sessionID, "order_id", aggregate.ID().String())
	}
}
