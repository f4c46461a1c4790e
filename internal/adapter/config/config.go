package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Payment  *Payment
	Carrier  *Carrier
	Mail     *Mail
	Auth     *Auth
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Payment struct {
	HostString    string `env:"PAYMENT_API_ADDRESS"`
	APIKey        string `env:"PAYMENT_API_KEY"`
	WebhookSecret string `env:"PAYMENT_WEBHOOK_SECRET"`
}

type Carrier struct {
	HostString string `env:"CARRIER_API_ADDRESS"`
	AppID      string `env:"CARRIER_APP_ID"`
	Secret     string `env:"CARRIER_SECRET"`
}

type Mail struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

type Auth struct {
	// TokenKey is the hex-encoded symmetric key shared with the auth
	// service that mints admin tokens.
	TokenKey string `env:"ADMIN_TOKEN_KEY"`
}

// Sanitize strips whitespace and stray quoting that environment injection
// tends to add around credentials.
func Sanitize(value string) string {
	return strings.Trim(strings.TrimSpace(value), `"'`)
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var payment Payment
	var carrier Carrier
	var mail Mail
	var auth Auth
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&payment.HostString, "p", "", "Payment provider API address")
	flag.StringVar(&carrier.HostString, "c", "", "Carrier API address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&payment)
	if err != nil {
		return nil, fmt.Errorf("error parsing payment config: %w", err)
	}
	err = env.Parse(&carrier)
	if err != nil {
		return nil, fmt.Errorf("error parsing carrier config: %w", err)
	}
	err = env.Parse(&mail)
	if err != nil {
		return nil, fmt.Errorf("error parsing mail config: %w", err)
	}
	err = env.Parse(&auth)
	if err != nil {
		return nil, fmt.Errorf("error parsing auth config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Payment:  &payment,
		Carrier:  &carrier,
		Mail:     &mail,
		Auth:     &auth,
		App:      &app,
	}

	return &config, nil
}
