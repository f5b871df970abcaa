package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

// ErrBadSignature dikembalikan jika cookie sudah dimodifikasi.
var ErrBadSignature = errors.New("crypto: invalid signature")

// Sign menandatangani value dengan HMAC-SHA256 sehingga cookie
// tidak bisa dipalsukan oleh client. Format: "<value>.<signature>".
func Sign(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	return value + "." + sig
}

// Unsign memverifikasi cookie yang sudah ditandatangani dan
// mengembalikan value aslinya.
func Unsign(signed, secret string) (string, error) {
	i := strings.LastIndex(signed, ".")
	if i < 0 {
		return "", ErrBadSignature
	}
	value := signed[:i]
	if !hmac.Equal([]byte(Sign(value, secret)), []byte(signed)) {
		return "", ErrBadSignature
	}
	return value, nil
}
