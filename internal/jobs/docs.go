// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the sales funnel.
//
// # Available Jobs
//
// 1. PaymentStatusJob - Runs every 30 seconds to poll the payment provider
// for orders awaiting payment and settle the ones whose sessions were paid.
// It is the safety net behind the payment webhook: a lost notification is
// picked up on the next poll.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(uowFactory, gateway, confirmPaymentHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - An already-confirmed order is an expected race with the webhook and is
//     logged at debug level only.
//   - Provider and store errors are logged and retried on the next pass.
package jobs
