package domain

// MonitorForm is the typed form input for one monitor type. Each variant
// carries exactly the fields its type uses.
type MonitorForm interface {
	MonitorType() MonitorType
	// Fields flattens the form into the loose wire representation,
	// omitting fields that were left empty.
	Fields() map[string]any
}

// CommonFields are optional on every monitor type. Values are milliseconds
// except RetryAttempts.
type CommonFields struct {
	Timeout       *int `json:"timeout,omitempty"`
	RetryAttempts *int `json:"retryAttempts,omitempty"`
	CheckInterval *int `json:"checkInterval,omitempty"`
}

func (c CommonFields) fill(m map[string]any) map[string]any {
	if c.Timeout != nil {
		m["timeout"] = *c.Timeout
	}
	if c.RetryAttempts != nil {
		m["retryAttempts"] = *c.RetryAttempts
	}
	if c.CheckInterval != nil {
		m["checkInterval"] = *c.CheckInterval
	}
	return m
}

type HTTPForm struct {
	URL string `json:"url"`
	CommonFields
}

func (HTTPForm) MonitorType() MonitorType { return MonitorHTTP }

func (f HTTPForm) Fields() map[string]any {
	m := map[string]any{}
	if f.URL != "" {
		m["url"] = f.URL
	}
	return f.CommonFields.fill(m)
}

type PingForm struct {
	Host string `json:"host"`
	CommonFields
}

func (PingForm) MonitorType() MonitorType { return MonitorPing }

func (f PingForm) Fields() map[string]any {
	m := map[string]any{}
	if f.Host != "" {
		m["host"] = f.Host
	}
	return f.CommonFields.fill(m)
}

type DNSForm struct {
	Host       string `json:"host"`
	RecordType string `json:"recordType,omitempty"`
	CommonFields
}

func (DNSForm) MonitorType() MonitorType { return MonitorDNS }

func (f DNSForm) Fields() map[string]any {
	m := map[string]any{}
	if f.Host != "" {
		m["host"] = f.Host
	}
	if f.RecordType != "" {
		m["recordType"] = f.RecordType
	}
	return f.CommonFields.fill(m)
}

type PortForm struct {
	Host string `json:"host"`
	Port int    `json:"port"`
	CommonFields
}

func (PortForm) MonitorType() MonitorType { return MonitorPort }

func (f PortForm) Fields() map[string]any {
	m := map[string]any{}
	if f.Host != "" {
		m["host"] = f.Host
	}
	if f.Port != 0 {
		m["port"] = f.Port
	}
	return f.CommonFields.fill(m)
}
