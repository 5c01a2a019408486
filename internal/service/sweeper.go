package service

import (
	"context"
	"time"

	"smart_home_api/internal/logger"
	"smart_home_api/internal/repository"
)

// SweeperService periodically trims the reading history back to capacity.
// Append already evicts on insert, so the sweep is a safety net that keeps
// the bound honest even if the capacity is reconfigured downward.
type SweeperService struct {
	readings repository.ReadingRepo
	log      *logger.Logger
}

func NewSweeperService(readings repository.ReadingRepo, log *logger.Logger) *SweeperService {
	return &SweeperService{readings: readings, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SweeperService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			evicted, err := s.readings.Trim(ctx)
			if err != nil {
				if s.log != nil {
					s.log.Errorw("history_trim_failed", "err", err)
				}
				continue
			}
			if evicted > 0 && s.log != nil {
				s.log.Infow("history_trimmed", "evicted", evicted)
			}
		}
	}
}
