package user

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"recipehub/entities"
	"testing"
	"time"
)

func TestRunTokenSweeper_RemovesExpired(t *testing.T) {
	f := newServiceFixture()
	_ = f.refresh.Create(context.Background(), &entities.RefreshToken{
		Token:     "stale",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunTokenSweeper(ctx, f.service, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		_, err := f.refresh.FindByToken(context.Background(), "stale")
		return err != nil
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestRunTokenSweeper_Disabled(t *testing.T) {
	f := newServiceFixture()
	done := make(chan struct{})
	go func() {
		RunTokenSweeper(context.Background(), f.service, 0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled sweeper should return immediately")
	}
}
