// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
)

// ErrUsage marks malformed invocations: bad part choices and forbidden
// flag combinations. main maps it to exit code 2; every other error
// exits 1. Usage errors are raised before any config is loaded or any
// file is touched.
var ErrUsage = errors.New("invalid usage")

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
