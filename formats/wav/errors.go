// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrNoPCMData            = errors.New("WAV file has no data chunk")
	ErrUnsupportedEncoding  = errors.New("only integer PCM can be encoded as WAV")
)
