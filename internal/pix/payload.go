// Package pix builds merchant-presented PIX payloads in the EMV
// tag-length-value layout expected by banking apps.
package pix

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	tagPayloadFormat    = "00"
	tagMerchantAccount  = "26"
	tagMerchantCategory = "52"
	tagCurrency         = "53"
	tagAmount           = "54"
	tagCountryCode      = "58"
	tagDescription      = "59"
	tagTransactionID    = "60"
	tagCRC              = "63"
)

const (
	accountGUI = "BR.GOV.BCB.PIX"
	// currency 986 = BRL per ISO 4217
	currencyBRL       = "986"
	maxDescriptionLen = 140
)

const qrImageEndpoint = "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data="

// Payload is one generated copy-and-paste PIX code.
type Payload struct {
	Code string
	TxID string
}

// BuildPayload assembles the full code for a payment of amount to key.
// Every length prefix is derived from its value and the payload ends
// with a CRC16/CCITT checksum over everything before it, including the
// CRC tag and length themselves.
func BuildPayload(key string, amount float64, description string) Payload {
	value := decimal.NewFromFloat(amount).StringFixed(2)
	if r := []rune(description); len(r) > maxDescriptionLen {
		description = string(r[:maxDescriptionLen])
	}
	txid := NewTxID()

	account := emv("00", accountGUI) + emv("01", key)

	var b strings.Builder
	b.WriteString(emv(tagPayloadFormat, "01"))
	b.WriteString(emv(tagMerchantAccount, account))
	b.WriteString(emv(tagMerchantCategory, "0000"))
	b.WriteString(emv(tagCurrency, currencyBRL))
	b.WriteString(emv(tagAmount, value))
	b.WriteString(emv(tagCountryCode, "BR"))
	b.WriteString(emv(tagDescription, description))
	b.WriteString(emv(tagTransactionID, txid))
	b.WriteString(tagCRC + "04")

	code := b.String()
	code += fmt.Sprintf("%04X", crc16([]byte(code)))

	return Payload{Code: code, TxID: txid}
}

// QRImageURL returns the rendering URL for a code; the image itself is
// produced by the external QR service.
func QRImageURL(code string) string {
	return qrImageEndpoint + url.QueryEscape(code)
}

func emv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// crc16 is CRC16/CCITT-FALSE: polynomial 0x1021, initial value 0xFFFF,
// no reflection, no final xor.
func crc16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
