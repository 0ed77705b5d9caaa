package hcl

import (
	"strings"

	"github.com/vk/schoolregistry/internal/config"
)

// translateSettings converts the HCL-specific schema into the agnostic model.
func translateSettings(s *settingsFile, source string) *config.Model {
	m := &config.Model{Sources: []string{source}}
	if s.ExportPath != nil {
		m.ExportPath = strings.TrimSpace(*s.ExportPath)
	}
	if s.Log != nil {
		if s.Log.Level != nil {
			m.LogLevel = strings.ToLower(strings.TrimSpace(*s.Log.Level))
		}
		if s.Log.Format != nil {
			m.LogFormat = strings.ToLower(strings.TrimSpace(*s.Log.Format))
		}
	}
	return m
}
