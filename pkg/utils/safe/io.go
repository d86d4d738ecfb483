package safe

import (
	"errors"
	"io"
	"log/slog"

	"github.com/m-mizutani/appveyor-status/pkg/utils/logging"
)

// Close closes the resource and logs the error if any
func Close(closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.Default().Warn("Fail to close resource", slog.Any("error", err))
	}
}
