package service_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"hostconnect/config"
	"hostconnect/internal/domains/booking/service"
)

func TestSweeper_RunStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newBookingService(ctrl)

	cfg := &config.Config{}
	cfg.Booking.SweepIntervalMinutes = 5

	sweeper := service.NewSweeper(svc, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})

	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}
