package service_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tradeops/backend/internal/service"
)

func TestAdmissionService_LimitWithinWindow(t *testing.T) {
	svc := service.NewAdmissionService(3, 5*time.Minute)

	for i := 1; i <= 3; i++ {
		quota, err := svc.Admit("10.0.0.1")
		require.NoError(t, err, "request %d should be admitted", i)
		require.Equal(t, i, quota.Used)
		require.Equal(t, 3-i, quota.Remaining)
		require.Equal(t, 3, quota.Used+quota.Remaining)
	}

	quota, err := svc.Admit("10.0.0.1")
	require.ErrorIs(t, err, service.ErrRateLimited)
	require.Equal(t, 3, quota.Used)
	require.Equal(t, 0, quota.Remaining)

	var rateLimited *service.RateLimitedError
	require.ErrorAs(t, err, &rateLimited)
	require.Greater(t, rateLimited.RetryAfter, time.Duration(0))
	require.LessOrEqual(t, rateLimited.RetryAfter, 5*time.Minute)
}

func TestAdmissionService_ClientsAreIndependent(t *testing.T) {
	svc := service.NewAdmissionService(1, time.Minute)

	_, err := svc.Admit("10.0.0.1")
	require.NoError(t, err)

	_, err = svc.Admit("10.0.0.2")
	require.NoError(t, err)

	_, err = svc.Admit("10.0.0.1")
	require.ErrorIs(t, err, service.ErrRateLimited)
}

func TestAdmissionService_WindowRollsForward(t *testing.T) {
	svc := service.NewAdmissionService(3, 5*time.Minute)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.SetAdmissionClock(svc, func() time.Time { return now })

	// Fill the window with requests spaced one minute apart.
	for i := 0; i < 3; i++ {
		_, err := svc.Admit("client")
		require.NoError(t, err)
		now = now.Add(time.Minute)
	}

	_, err := svc.Admit("client")
	require.ErrorIs(t, err, service.ErrRateLimited)

	// Once the earliest request leaves the window, exactly one slot opens;
	// the window rolls forward rather than resetting.
	now = now.Add(2*time.Minute + time.Second)
	quota, err := svc.Admit("client")
	require.NoError(t, err)
	require.Equal(t, 3, quota.Used)

	_, err = svc.Admit("client")
	require.ErrorIs(t, err, service.ErrRateLimited)
}

func TestAdmissionService_BoundaryFavorsCaller(t *testing.T) {
	svc := service.NewAdmissionService(1, time.Minute)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.SetAdmissionClock(svc, func() time.Time { return now })

	_, err := svc.Admit("client")
	require.NoError(t, err)

	// A request arriving exactly at the window boundary is outside the
	// window.
	now = now.Add(time.Minute)
	_, err = svc.Admit("client")
	require.NoError(t, err)
}

func TestAdmissionService_RetryAfterDerivedFromOldest(t *testing.T) {
	svc := service.NewAdmissionService(1, 5*time.Minute)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.SetAdmissionClock(svc, func() time.Time { return now })

	_, err := svc.Admit("client")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = svc.Admit("client")

	var rateLimited *service.RateLimitedError
	require.ErrorAs(t, err, &rateLimited)
	require.Equal(t, 3*time.Minute, rateLimited.RetryAfter)
}

func TestAdmissionService_ConcurrentLastSlot(t *testing.T) {
	svc := service.NewAdmissionService(3, 5*time.Minute)

	_, err := svc.Admit("client")
	require.NoError(t, err)
	_, err = svc.Admit("client")
	require.NoError(t, err)

	// Two concurrent requests race for the last slot; exactly one wins.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Admit("client")
		}(i)
	}
	wg.Wait()

	admitted := 0
	for _, err := range errs {
		if err == nil {
			admitted++
		} else {
			require.True(t, errors.Is(err, service.ErrRateLimited))
		}
	}
	require.Equal(t, 1, admitted)
}

func TestAdmissionService_Quota(t *testing.T) {
	svc := service.NewAdmissionService(3, 5*time.Minute)

	quota := svc.Quota("client")
	require.Equal(t, 0, quota.Used)
	require.Equal(t, 3, quota.Remaining)

	_, err := svc.Admit("client")
	require.NoError(t, err)

	quota = svc.Quota("client")
	require.Equal(t, 1, quota.Used)
	require.Equal(t, 2, quota.Remaining)

	// Reading quota does not consume a slot.
	quota = svc.Quota("client")
	require.Equal(t, 1, quota.Used)
}

func TestAdmissionService_Sweep(t *testing.T) {
	svc := service.NewAdmissionService(3, 5*time.Minute)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.SetAdmissionClock(svc, func() time.Time { return now })

	_, err := svc.Admit("stale")
	require.NoError(t, err)
	now = now.Add(time.Minute)
	_, err = svc.Admit("fresh")
	require.NoError(t, err)

	// Only the fully drained window is removed.
	now = now.Add(4*time.Minute + time.Second)
	require.Equal(t, 1, svc.Sweep())
	require.Equal(t, 0, svc.Sweep())
}
