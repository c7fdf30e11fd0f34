// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrStreamAlignment is returned when the underlying source could not be
	// reconciled into whole frames.
	ErrStreamAlignment = errors.New("could not skip an integral number of frames")

	// ErrFrameSizeNotOne rejects single byte reads on multi-byte frames.
	ErrFrameSizeNotOne = errors.New("cannot read a single byte if frame size is not 1")

	ErrMarkNotSupported    = errors.New("mark/reset not supported")
	ErrResetWithoutMark    = errors.New("reset without a valid mark")
	ErrUnsupportedEncoding = errors.New("unsupported sample encoding")
)
