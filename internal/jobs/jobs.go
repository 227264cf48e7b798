package jobs

import (
	"context"
	"fmt"
	"time"

	"resort/config"
	bookingService "resort/internal/domains/booking/service"
	"resort/shared/timezone"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Scheduler owns the background jobs of the API process. Currently a single
// job: keeping the pending-enquiry count warm in the cache so the admin badge
// endpoint never hits Postgres.
type Scheduler struct {
	booking bookingService.Booking
	cfg     *config.Config

	scheduler gocron.Scheduler
}

func New(booking bookingService.Booking, cfg *config.Config) *Scheduler {
	return &Scheduler{
		booking: booking,
		cfg:     cfg,
	}
}

// Start registers and launches the jobs. Returns an error when the scheduler
// cannot be built, never blocks.
func (s *Scheduler) Start() error {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(timezone.GetLocation()),
	)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	interval := s.cfg.Booking.EnquiryRefreshSec
	if interval <= 0 {
		interval = 60
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Duration(interval)*time.Second),
		gocron.NewTask(s.refreshPendingEnquiries),
	)
	if err != nil {
		return fmt.Errorf("failed to register pending enquiry job: %w", err)
	}

	s.scheduler = scheduler
	scheduler.Start()

	log.Info().Int("intervalSeconds", interval).Msg("Pending enquiry refresh job started")

	return nil
}

func (s *Scheduler) Stop() {
	if s.scheduler == nil {
		return
	}

	if err := s.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("failed to shut down scheduler")
	}
}

func (s *Scheduler) refreshPendingEnquiries() {
	count, err := s.booking.RefreshPendingEnquiries(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("failed to refresh pending enquiry count")

		return
	}

	log.Debug().Int("pendingEnquiries", count).Msg("Pending enquiry count refreshed")
}
