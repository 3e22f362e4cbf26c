package user

import (
	"context"
	"github.com/gofiber/fiber/v2/log"
	"time"
)

// RunTokenSweeper deletes expired refresh tokens every interval until ctx is
// done. A non-positive interval disables it.
func RunTokenSweeper(ctx context.Context, service UserService, interval time.Duration) {
	if interval <= 0 {
		log.Info("refresh token sweeper disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := service.SweepExpiredTokens(ctx)
			if err != nil {
				log.Errorf("sweep expired refresh tokens: %v", err)
				continue
			}
			if n > 0 {
				log.Infof("removed %d expired refresh tokens", n)
			}
		}
	}
}
