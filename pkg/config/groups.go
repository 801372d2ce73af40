// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

type loggerConfiguration struct {
	Level  string
	Output string
	Format string
}

// pkg/crypto/base58 consumer configs.
type codecConfiguration struct {
	// MaxEncodeLength caps the payload size accepted by the encode command,
	// in bytes. Values of 0 or above the codec hard cap fall back to the cap.
	MaxEncodeLength uint
}
