package jobs

import (
	"fmt"
	"log/slog"

	"autoparts/internal/core/application/usecases/commands"
	"autoparts/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentStatusJob *PaymentStatusJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	uowFactory commands.OrderUoWFactory,
	gateway ports.PaymentGateway,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentStatusJob: NewPaymentStatusJob(uowFactory, gateway, confirmPaymentHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentStatusJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment status job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentStatusJob.Stop()
}
