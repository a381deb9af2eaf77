// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/revenue-forecast/pkg/constants"
)

// SupportedOutputFormats lists every output format the CLI can render.
var SupportedOutputFormats = []string{
	constants.OutputFormatPretty,
	constants.OutputFormatCSV,
	constants.OutputFormatJSON,
	constants.OutputFormatYAML,
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	for _, supported := range SupportedOutputFormats {
		if format == supported {
			return nil
		}
	}
	return fmt.Errorf("expected output format of %s, %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV,
		constants.OutputFormatJSON, constants.OutputFormatYAML, format)
}

// ValidateLogLevel checks a log level name. An empty level is allowed and
// means the default.
func ValidateLogLevel(level string) error {
	switch level {
	case "", constants.LogLevelDebug, constants.LogLevelInfo, "warning",
		constants.LogLevelWarn, constants.LogLevelError:
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}

// ValidateLogFormat checks a log encoder name. An empty format is allowed
// and means the default.
func ValidateLogFormat(format string) error {
	switch format {
	case "", constants.LogFormatJSON, constants.LogFormatConsole:
		return nil
	}
	return fmt.Errorf("invalid log format: %s", format)
}
