package domain

import "time"

type MonitorType string

const (
	MonitorHTTP MonitorType = "http"
	MonitorPing MonitorType = "ping"
	MonitorDNS  MonitorType = "dns"
	MonitorPort MonitorType = "port"
)

// MonitorTypes is the closed set of supported monitor types.
var MonitorTypes = []MonitorType{MonitorHTTP, MonitorPing, MonitorDNS, MonitorPort}

func (t MonitorType) Valid() bool {
	for _, k := range MonitorTypes {
		if t == k {
			return true
		}
	}
	return false
}

type MonitorID string

type StatusEntry struct {
	Status       string    `json:"status"`
	ResponseTime int       `json:"responseTime"`
	Timestamp    time.Time `json:"timestamp"`
}

// Monitor is the record handed to the monitor-creation workflow.
// Durations are milliseconds, matching the form input.
type Monitor struct {
	ID            MonitorID     `json:"id,omitempty"`
	Type          MonitorType   `json:"type"`
	URL           string        `json:"url,omitempty"`
	Host          string        `json:"host,omitempty"`
	Port          int           `json:"port,omitempty"`
	RecordType    string        `json:"recordType,omitempty"`
	CheckInterval int           `json:"checkInterval,omitempty"`
	History       []StatusEntry `json:"history"`
	Monitoring    bool          `json:"monitoring"`
	ResponseTime  int           `json:"responseTime"`
	RetryAttempts int           `json:"retryAttempts"`
	Status        string        `json:"status"`
	Timeout       int           `json:"timeout"`
}
