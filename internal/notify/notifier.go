package notify

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/nikolayk812/apnadairy/internal/domain"
)

// LogNotifier renders notifications as structured log entries. The real
// toast widget lives in the UI; server-side this channel is observational.
type LogNotifier struct {
	logger *log.Entry
}

func NewLogNotifier(logger *log.Entry) *LogNotifier {
	if logger == nil {
		logger = log.WithField("component", "notify")
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(notification domain.Notification) {
	entry := n.logger.WithFields(log.Fields{
		"title":    notification.Title,
		"severity": notification.Severity,
	})

	if notification.Severity == domain.SeverityDestructive {
		entry.Warn(notification.Description)
		return
	}
	entry.Info(notification.Description)
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(notification domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, notification)
}

func (r *Recorder) Notifications() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]domain.Notification, len(r.notifications))
	copy(snapshot, r.notifications)
	return snapshot
}
