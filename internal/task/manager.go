package task

import (
	"github.com/TTJ-s/qr-annujoom/internal/config"
	"github.com/TTJ-s/qr-annujoom/internal/logger"
	"github.com/TTJ-s/qr-annujoom/internal/payment"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// Manager owns the background job scheduler.
type Manager struct {
	scheduler gocron.Scheduler
	db        *gorm.DB
	razorpay  *payment.RazorpayGateway
	config    *config.Config
}

// NewManager creates the job scheduler.
func NewManager(db *gorm.DB, razorpay *payment.RazorpayGateway, cfg *config.Config) *Manager {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	return &Manager{
		scheduler: s,
		db:        db,
		razorpay:  razorpay,
		config:    cfg,
	}
}

// Start registers every job and starts the scheduler.
func Start(db *gorm.DB, razorpay *payment.RazorpayGateway, cfg *config.Config) *Manager {
	manager := NewManager(db, razorpay, cfg)

	manager.RegisterJobs()
	manager.scheduler.Start()

	logger.Info("Task manager started successfully")
	return manager
}

// RegisterJobs registers all background jobs.
func (m *Manager) RegisterJobs() {
	m.RegisterReconcileJob()
}

// RegisterReconcileJob registers the pending-donation reconcile job.
func (m *Manager) RegisterReconcileJob() {
	job := NewReconcileJob(m.db, m.config, m.razorpay)

	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop shuts the scheduler down.
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Task manager stopped")
}
