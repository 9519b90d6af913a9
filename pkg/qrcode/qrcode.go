// Package qrcode renderiza texto como QR code em formato data URL,
// pronto para ser exibido diretamente pelo aplicativo móvel.
package qrcode

import (
	"encoding/base64"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

const defaultSize = 256

// DataURL codifica o texto como um PNG de QR code embutido em data URL
func DataURL(text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("texto do QR code vazio")
	}

	png, err := qr.Encode(text, qr.Medium, defaultSize)
	if err != nil {
		return "", fmt.Errorf("falha ao gerar QR code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
