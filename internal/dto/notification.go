package dto

// Severity classifies a notification for transient display.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification is a (message, severity) pair emitted alongside responses for
// the presentation layer to show as a toast.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Notice is a small constructor to keep handler code terse.
func Notice(message string, severity Severity) *Notification {
	return &Notification{Message: message, Severity: severity}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}
