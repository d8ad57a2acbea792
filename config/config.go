package config

import "github.com/pitabwire/frame"

type MpesaConfig struct {
	ConsumerKey    string `envDefault:"" env:"MPESA_CONSUMER_KEY"`
	ConsumerSecret string `envDefault:"" env:"MPESA_CONSUMER_SECRET"`
	Environment    string `envDefault:"sandbox" env:"MPESA_ENVIRONMENT"`

	InitiatorName     string `envDefault:"" env:"MPESA_INITIATOR_NAME"`
	InitiatorPassword string `envDefault:"" env:"MPESA_INITIATOR_PASSWORD"`
	CertificatePath   string `envDefault:"/app/keys/mpesa_cert.pem" env:"MPESA_CERTIFICATE_PATH"`

	ShortCode   string `envDefault:"" env:"MPESA_SHORT_CODE"`
	Passkey     string `envDefault:"" env:"MPESA_PASSKEY"`
	CallbackURL string `envDefault:"" env:"MPESA_CALLBACK_URL"`

	frame.ConfigurationDefault

	SecurelyRunService bool `envDefault:"false" env:"SECURELY_RUN_SERVICE"`

	PaymentServiceURI string `envDefault:"127.0.0.1:7010" env:"PAYMENT_SERVICE_URI"`

	RedisHost string `envDefault:"localhost" env:"REDIS_HOST"`
	RedisPort string `envDefault:"6379" env:"REDIS_PORT"`
}
