// SPDX-License-Identifier: EPL-2.0

package audframe

import "errors"

// ErrUnsupportedFormat is returned when no decoder is registered for a
// format key or file extension.
var ErrUnsupportedFormat = errors.New("unsupported audio format")
