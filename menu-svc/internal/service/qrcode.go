package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type TableQRGenerator interface {
	Generate(restaurantID int, tableNumber string) ([]byte, error)
}

type DefaultTableQRGenerator struct {
	BaseURL string
}

func (g DefaultTableQRGenerator) Generate(restaurantID int, tableNumber string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/menu.html?restaurant_id=%d&table=%s", g.BaseURL, restaurantID, tableNumber)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
