package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"db_path": "~/.remindd/remindd.db",
		"desktop": map[string]interface{}{
			"notifications": true,
		},
		"scheduler": map[string]interface{}{
			"event_buffer": 16,
		},
		"backup": map[string]interface{}{
			"timeout_seconds": 30,
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.remindd/config.yaml"
}
