package qrcode_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/startuphub-br/startuphub-api/pkg/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURL(t *testing.T) {
	dataURL, err := qrcode.DataURL("evento:demo:abc123")
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(dataURL, prefix), "data URL sem prefixo PNG: %s", dataURL[:30])

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// Assinatura PNG
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestDataURL_EmptyText(t *testing.T) {
	_, err := qrcode.DataURL("")
	assert.Error(t, err)
}
