package task

import (
	"context"
	"sync"
	"time"

	"github.com/TTJ-s/qr-annujoom/internal/config"
	"github.com/TTJ-s/qr-annujoom/internal/logger"
	"github.com/TTJ-s/qr-annujoom/internal/logic"
	"github.com/TTJ-s/qr-annujoom/internal/model"
	"github.com/TTJ-s/qr-annujoom/internal/payment"
	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"
)

// failAfter is how long an unpaid order may linger before it is closed.
const failAfter = 24 * time.Hour

// ReconcileJob settles donations whose gateway callback never arrived: the
// donor paid but closed the tab, or the widget failed after capture. It asks
// the provider for captured payments on stale orders.
type ReconcileJob struct {
	donations *logic.DonationLogic
	config    *config.Config
	razorpay  *payment.RazorpayGateway
}

// NewReconcileJob creates the reconcile job.
func NewReconcileJob(db *gorm.DB, cfg *config.Config, razorpay *payment.RazorpayGateway) *ReconcileJob {
	return &ReconcileJob{
		donations: logic.NewDonationLogic(db),
		config:    cfg,
		razorpay:  razorpay,
	}
}

// GetName returns the job name.
func (j *ReconcileJob) GetName() string {
	return "donation_reconciler"
}

// GetSchedule returns the job's schedule.
func (j *ReconcileJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.Interval) * time.Second)
}

// Execute runs one reconcile pass.
func (j *ReconcileJob) Execute() {
	logger.Info("Starting donation reconcile task")

	ctx := context.Background()
	cutoff := time.Now().Add(-time.Duration(j.config.Task.GraceMinutes) * time.Minute)

	pending, err := j.donations.PendingSince(ctx, cutoff, j.config.Task.BatchSize)
	if err != nil {
		logger.Error("Failed to fetch pending donations: %v", err)
		return
	}
	if len(pending) == 0 {
		logger.Debug("No pending donations to reconcile")
		return
	}

	// A temporary pool sized to the batch, released when the pass is done.
	pool, err := ants.NewPool(len(pending))
	if err != nil {
		logger.Error("Failed to create reconcile pool for %d donations: %v", len(pending), err)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range pending {
		donation := pending[i]
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			j.reconcile(ctx, donation)
		})
		if err != nil {
			wg.Done()
			logger.Error("Failed to submit reconcile task: %v", err)
		}
	}
	wg.Wait()

	logger.Info("Donation reconcile task completed, checked %d donations", len(pending))
}

func (j *ReconcileJob) reconcile(ctx context.Context, donation model.Donation) {
	if donation.Gateway != string(payment.MethodRazorpay) {
		// Redirect gateways settle through the backend; nothing to ask the
		// provider here.
		logger.Debug("Skipping %s donation %d", donation.Gateway, donation.ID)
		return
	}

	paymentID, captured, err := j.razorpay.CapturedPayment(donation.OrderID)
	if err != nil {
		logger.Error("Failed to check order %s with provider: %v", donation.OrderID, err)
		return
	}

	if captured {
		if _, err := j.donations.MarkVerified(ctx, donation.OrderID, paymentID, ""); err != nil {
			logger.Error("Failed to settle reconciled donation %d: %v", donation.ID, err)
			return
		}
		logger.Info("Reconciled captured payment %s for order %s", paymentID, donation.OrderID)
		return
	}

	if time.Since(donation.CreatedAt) > failAfter {
		if err := j.donations.MarkFailed(ctx, donation.OrderID); err != nil {
			logger.Error("Failed to close expired donation %d: %v", donation.ID, err)
			return
		}
		logger.Info("Closed unpaid order %s after %s", donation.OrderID, failAfter)
	}
}
