package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetup(t *testing.T) {
	Setup(zerolog.InfoLevel, false)

	if log.Logger.GetLevel() != zerolog.InfoLevel {
		t.Errorf("expected info level, got %s", log.Logger.GetLevel())
	}
}

func TestSetup_Debug(t *testing.T) {
	Setup(zerolog.DebugLevel, false)

	if log.Logger.GetLevel() != zerolog.DebugLevel {
		t.Errorf("expected debug level, got %s", log.Logger.GetLevel())
	}
}

func TestSetup_QuietOverridesLevel(t *testing.T) {
	Setup(zerolog.DebugLevel, true)

	if log.Logger.GetLevel() != zerolog.WarnLevel {
		t.Errorf("expected warn level, got %s", log.Logger.GetLevel())
	}
}
