package orion

import (
	"fmt"
	"log/slog"
	"os"
)

// Handle stops the process if err is set. It is meant for startup errors
// in main, before any resource needs to be released.
func Handle(err error, desc string, args ...any) {
	if err == nil {
		return
	}

	slog.Error(fmt.Sprintf(desc, args...), slog.Any("err", err))
	os.Exit(1)
}
