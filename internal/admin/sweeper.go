package admin

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper periodically retries credential deletions that failed during
// DeleteUserAndData.
type Sweeper struct {
	service  *Service
	schedule string
	cron     *cron.Cron
}

func NewSweeper(service *Service, schedule string) *Sweeper {
	return &Sweeper{service: service, schedule: schedule}
}

func (s *Sweeper) Start() {
	c := cron.New()

	_, err := c.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		s.service.SweepCredentialDeletions(ctx)
	})
	if err != nil {
		log.Printf("admin: failed to schedule deletion sweeper: %v", err)
		return
	}

	log.Printf("admin: deletion sweeper scheduled (%s)", s.schedule)
	c.Start()
	s.cron = c
}

func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
