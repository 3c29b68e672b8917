package editor

// Status is the message shown in the footer. It is one of StatusIdle,
// StatusInfo or StatusError.
type Status interface {
	isStatus()
}

// StatusIdle means there is nothing to report.
type StatusIdle struct{}

// StatusInfo carries an informational message.
type StatusInfo struct {
	Message string
}

// StatusError carries an error message.
type StatusError struct {
	Message string
}

func (StatusIdle) isStatus()  {}
func (StatusInfo) isStatus()  {}
func (StatusError) isStatus() {}
