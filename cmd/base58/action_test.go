package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-network/base58/pkg/config"
	"github.com/dusk-network/base58/pkg/crypto/base58"
)

func TestRunEncodeDecodeRoundTrip(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"Base58 encoding example",
		"1234567890",
		"Special chars: !@#$%^&*()",
		"你好世界",
	}

	for _, in := range inputs {
		enc, err := runEncode(in)
		require.NoError(t, err)
		assert.True(t, base58.IsValid(enc))

		dec, err := runDecode(enc)
		require.NoError(t, err)
		assert.Equal(t, in, dec)
	}
}

func TestRunDecodeKnownVectors(t *testing.T) {
	vectors := map[string]string{
		"JxF12TrwUP45BMd": "Hello World",
		"As9UGqq":         "World",
	}

	for in, expected := range vectors {
		out, err := runDecode(in)
		require.NoError(t, err)
		assert.Equal(t, expected, out)
	}
}

func TestRunEncodeLengthBoundary(t *testing.T) {
	enc, err := runEncode(strings.Repeat("a", 2048))
	require.NoError(t, err)

	dec, err := runDecode(enc)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 2048), dec)

	_, err = runEncode(strings.Repeat("a", 2049))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum of 2048")
}

func TestRunDecodeLengthBoundary(t *testing.T) {
	over := strings.Repeat("1", base58.MaxDecodeLength()+1)

	_, err := runDecode(over)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestRunDecodeInvalidCharacter(t *testing.T) {
	_, err := runDecode("invalid!@#")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid base58 character")
}

func TestRunDecodeNonUTF8(t *testing.T) {
	enc, err := base58.Encoding([]byte{0xff, 0xfe, 0xfd})
	require.NoError(t, err)

	_, err = runDecode(enc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestEncodeLimitClamping(t *testing.T) {
	defer func() {
		require.NoError(t, config.Load(""))
	}()

	m := new(config.Registry)
	m.Codec.MaxEncodeLength = 16
	config.Mock(m)
	assert.Equal(t, 16, encodeLimit())

	_, err := runEncode(strings.Repeat("a", 17))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum of 16")

	// values above the codec cap clamp down to it
	m = new(config.Registry)
	m.Codec.MaxEncodeLength = 1 << 20
	config.Mock(m)
	assert.Equal(t, base58.MaxEncodeLength, encodeLimit())

	// the zero value falls back to the cap as well
	config.Mock(new(config.Registry))
	assert.Equal(t, base58.MaxEncodeLength, encodeLimit())
}
