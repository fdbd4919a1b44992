package utils

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText interprets raw file bytes as text. Valid UTF-8 passes through
// unchanged; anything else is decoded as ISO 8859-1. The returned latin1 flag
// reports which path was taken so callers can tag the record.
func DecodeText(data []byte) (decodedText string, latin1 bool, decodeError error) {
	if utf8.Valid(data) {
		return string(data), false, nil
	}
	decoded, fallbackError := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if fallbackError != nil {
		return "", false, fallbackError
	}
	return string(decoded), true, nil
}
