package config

// Model is the unified, format-agnostic representation of the settings
// files. Empty fields mean "not set".
type Model struct {
	ExportPath string
	LogLevel   string
	LogFormat  string
	// Sources lists the files the model was read from, in load order.
	Sources []string
}

// Merge copies every field set in other over m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	if other.ExportPath != "" {
		m.ExportPath = other.ExportPath
	}
	if other.LogLevel != "" {
		m.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		m.LogFormat = other.LogFormat
	}
	m.Sources = append(m.Sources, other.Sources...)
}
