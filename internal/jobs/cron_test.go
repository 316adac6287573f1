package jobs

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"hotel-frontdesk/config"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	calls       int
	retention   time.Duration
	hasDeadline bool
	purged      int
	err         error
}

func (p *fakePurger) PurgeExpired(ctx context.Context, retention time.Duration) (int, error) {
	p.calls++
	p.retention = retention
	_, p.hasDeadline = ctx.Deadline()
	return p.purged, p.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestPurgeRoomTypes(t *testing.T) {
	purger := &fakePurger{purged: 3}
	PurgeRoomTypes(purger, 720*time.Hour, quietLogger())()

	assert.Equal(t, 1, purger.calls)
	assert.Equal(t, 720*time.Hour, purger.retention)
	assert.True(t, purger.hasDeadline)
}

func TestPurgeRoomTypes_ErrorIsLoggedNotPanicked(t *testing.T) {
	purger := &fakePurger{purged: 1, err: errors.New("one entry failed")}
	assert.NotPanics(t, PurgeRoomTypes(purger, time.Hour, quietLogger()))
	assert.Equal(t, 1, purger.calls)
}

func TestInitCronJobs(t *testing.T) {
	t.Run("registers the purge", func(t *testing.T) {
		c := cron.New()
		defer c.Stop()

		err := InitCronJobs(c, config.JobsConfig{
			RoomTypePurgeCron:    "0 3 * * *",
			RoomTypeBinRetention: 30 * 24 * time.Hour,
		}, &fakePurger{}, quietLogger())
		require.NoError(t, err)
		assert.Len(t, c.Entries(), 1)
	})

	t.Run("zero retention disables the purge", func(t *testing.T) {
		c := cron.New()
		defer c.Stop()

		err := InitCronJobs(c, config.JobsConfig{RoomTypePurgeCron: "0 3 * * *"}, &fakePurger{}, quietLogger())
		require.NoError(t, err)
		assert.Empty(t, c.Entries())
	})

	t.Run("invalid schedule", func(t *testing.T) {
		c := cron.New()
		err := InitCronJobs(c, config.JobsConfig{
			RoomTypePurgeCron:    "not a schedule",
			RoomTypeBinRetention: time.Hour,
		}, &fakePurger{}, quietLogger())
		assert.Error(t, err)
	})
}
