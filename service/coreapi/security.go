package coreapi

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"
	"time"
)

// GenerateSecurityCredential encrypts the initiator password, suffixed with a
// YYYYMMDDHHMMSS timestamp, using the gateway's public certificate. The
// result goes into the SecurityCredential field of B2B, B2C, reversal,
// balance and transaction status requests.
func GenerateSecurityCredential(initiatorPassword, certPath string) (string, error) {
	certBytes, err := os.ReadFile(certPath)
	if err != nil {
		return "", fmt.Errorf("failed to read certificate: %w", err)
	}

	block, _ := pem.Decode(certBytes)
	if block == nil {
		return "", fmt.Errorf("failed to decode certificate PEM")
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return "", fmt.Errorf("failed to parse certificate: %w", err)
	}

	publicKey, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return "", fmt.Errorf("certificate does not carry an RSA public key")
	}

	payload := initiatorPassword + time.Now().Format("20060102150405")
	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, []byte(payload))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt credential: %w", err)
	}

	return base64.StdEncoding.EncodeToString(encrypted), nil
}
