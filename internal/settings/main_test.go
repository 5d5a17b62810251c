package settings_test

import (
	"leadgen/pkg/logger"
	"testing"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}
