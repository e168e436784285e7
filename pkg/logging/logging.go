package logging

import (
	"go.uber.org/zap"
)

// Setup builds the application logger. With debug enabled it uses the
// development config (console encoding, debug level), otherwise the
// production config. The logger is also installed as zap's global.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewExample(), err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
