package pix

import "math/rand"

const (
	txidPrefix   = "YV"
	txidAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	txidRandLen  = 8
)

// NewTxID returns a short transaction id: a fixed prefix plus eight
// pseudo-random lowercase alphanumerics.
func NewTxID() string {
	b := make([]byte, txidRandLen)
	for i := range b {
		b[i] = txidAlphabet[rand.Intn(len(txidAlphabet))]
	}
	return txidPrefix + string(b)
}
