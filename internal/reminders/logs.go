package reminders

import (
	"time"

	"github.com/google/uuid"

	"github.com/akozyreva/medcab/internal/constants"
	"github.com/akozyreva/medcab/internal/models"
	"github.com/akozyreva/medcab/internal/notify"
	"github.com/akozyreva/medcab/internal/storage"
)

// LogRecorder subscribes to trigger deliveries and writes a history entry
// for each one.
type LogRecorder struct {
	store storage.Provider
}

func NewLogRecorder(store storage.Provider) *LogRecorder {
	return &LogRecorder{store: store}
}

var _ notify.DeliveryHandler = (*LogRecorder)(nil)

func (lr *LogRecorder) OnDelivered(t models.Trigger, firedAt time.Time) {
	logType := constants.LogTypeSystem
	switch t.OwnerType {
	case "reminder":
		logType = constants.LogTypeDose
	case "appointment":
		logType = constants.LogTypeAppointment
	}

	reminderID := ""
	if t.OwnerType == "reminder" {
		reminderID = t.OwnerID
	}

	_ = lr.store.AddNotificationLog(models.NotificationLog{
		ID:         uuid.NewString(),
		Title:      t.Title,
		Subtitle:   t.Body,
		Timestamp:  firedAt,
		Type:       logType,
		Read:       false,
		ReminderID: reminderID,
	})
}

// Bucket labels for the notification history view.
const (
	BucketToday     = "today"
	BucketYesterday = "yesterday"
	BucketEarlier   = "earlier"
)

// Bucket classifies a log timestamp relative to now using calendar days, not
// 24-hour windows: anything on the current date is today, anything on the
// previous date is yesterday, the rest is earlier.
func Bucket(ts, now time.Time) string {
	y, m, d := now.Date()
	todayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	switch {
	case !ts.Before(todayStart):
		return BucketToday
	case !ts.Before(yesterdayStart):
		return BucketYesterday
	default:
		return BucketEarlier
	}
}

// BucketLogs groups notification history into today/yesterday/earlier,
// preserving the input order inside each bucket.
func BucketLogs(logs []models.NotificationLog, now time.Time) map[string][]models.NotificationLog {
	buckets := map[string][]models.NotificationLog{
		BucketToday:     {},
		BucketYesterday: {},
		BucketEarlier:   {},
	}
	for _, l := range logs {
		b := Bucket(l.Timestamp, now)
		buckets[b] = append(buckets[b], l)
	}
	return buckets
}
