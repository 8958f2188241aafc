package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigure(t *testing.T) {
	defer Configure(&bytes.Buffer{}, "info", "text")

	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{"default", "", logrus.InfoLevel},
		{"debug", "debug", logrus.DebugLevel},
		{"unknown falls back", "chatty", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Configure(&bytes.Buffer{}, tt.level, "text")
			if Log.GetLevel() != tt.want {
				t.Errorf("expected level %v, got %v", tt.want, Log.GetLevel())
			}
		})
	}
}

func TestConfigureJSON(t *testing.T) {
	defer Configure(&bytes.Buffer{}, "info", "text")

	var buf bytes.Buffer
	Configure(&buf, "info", "JSON")
	Log.WithFields(logrus.Fields{"actor": 3}).Info("died")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "died" {
		t.Errorf("expected msg %q, got %v", "died", entry["msg"])
	}
	if entry["actor"] != float64(3) {
		t.Errorf("expected actor field 3, got %v", entry["actor"])
	}
}
