package jobs

import (
	"context"
	"time"

	"hotel-frontdesk/config"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const purgeTimeout = 5 * time.Minute

// RoomTypePurger empties expired entries out of the room type recycle bin.
type RoomTypePurger interface {
	PurgeExpired(ctx context.Context, retention time.Duration) (int, error)
}

// InitCronJobs registers the scheduled jobs and starts the scheduler.
// A zero retention disables the recycle bin purge.
func InitCronJobs(c *cron.Cron, cfg config.JobsConfig, purger RoomTypePurger, log *logrus.Logger) error {
	if cfg.RoomTypeBinRetention <= 0 {
		log.Info("Room type recycle bin purge disabled")
		c.Start()
		return nil
	}

	_, err := c.AddFunc(cfg.RoomTypePurgeCron, PurgeRoomTypes(purger, cfg.RoomTypeBinRetention, log))
	if err != nil {
		return err
	}

	c.Start()
	log.WithField("schedule", cfg.RoomTypePurgeCron).Info("Cron jobs initialized successfully")
	return nil
}

// PurgeRoomTypes returns the job body that permanently deletes room types older than retention.
func PurgeRoomTypes(purger RoomTypePurger, retention time.Duration, log *logrus.Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
		defer cancel()

		purged, err := purger.PurgeExpired(ctx, retention)
		if err != nil {
			log.Errorf("Room type purge finished with errors (%d purged): %v", purged, err)
			return
		}
		log.WithField("purged", purged).Info("Room type recycle bin purged")
	}
}
