package domain

// Severity tags a user-facing notification.
type Severity string

const (
	SeverityInfo        Severity = "info"
	SeverityDestructive Severity = "destructive"
)

// Notification is a fire-and-forget toast shown to the shopper.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}
