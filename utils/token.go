package utils

import "crypto/rand"

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken returns a short alphanumeric code for MFA and
// password-reset flows.
func GenerateRandomToken(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand is unavailable, nothing sensible to do
	}
	token := make([]byte, length)
	for i, b := range buf {
		token[i] = tokenCharset[int(b)%len(tokenCharset)]
	}
	return string(token)
}
