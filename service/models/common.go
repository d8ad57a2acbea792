package models

import "strconv"

// isSuccessCode reports whether a gateway response code means success. The
// API is inconsistent about the sentinel, most endpoints answer "0", the QR
// endpoint answers "00".
func isSuccessCode(code string) bool {
	n, err := strconv.Atoi(code)
	return err == nil && n == 0
}
