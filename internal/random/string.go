package random

import "crypto/rand"

// CharsetAlphanumeric contains characters a-zA-Z0-9
var CharsetAlphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// String generates a cryptographically secure random string with a specific length,
// only using characters out of the given charset
func String(length int, charset string) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	buf := make([]byte, length)
	for i, b := range bytes {
		buf[i] = charset[int(b)%len(charset)]
	}
	return string(buf)
}
