package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

const AppName = "kondo-server"

// Legacy passphrase: data written by earlier deployments of the sheet
// is encrypted under this value, so it stays the default.
const defaultFieldEncryptionKey = "kondo-manager-secure-key-2025"

type Config struct {
	AppName string
	AppPort string
	AppUrl  string

	// Storage. A configured sheet endpoint selects the remote backend
	// for the whole process lifetime; otherwise the local store is used.
	SheetEndpointURL     string
	LocalDBPath          string
	FieldEncryptionKey   []byte
	ExtraSensitiveFields []string

	// Auth
	AdminEmail    string
	AdminPassword string
	AdminName     string
	RSAPrivateKey *rsa.PrivateKey
	RSAPublicKey  *rsa.PublicKey
	TokenExpiry   time.Duration

	// External services
	OpenAIAPIKey      string
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridSandbox   bool

	SeedDemoData bool
}

func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	cfg := &Config{
		AppName:          AppName,
		AppPort:          envOr("APP_PORT", "8080"),
		AppUrl:           envOr("APP_URL", "http://localhost:5173"),
		SheetEndpointURL: os.Getenv("SHEET_ENDPOINT_URL"),
		LocalDBPath:      envOr("LOCAL_DB_PATH", "kondo.db"),

		AdminEmail:    envOr("ADMIN_EMAIL", "admin@kondo.it"),
		AdminPassword: envOr("ADMIN_PASSWORD", "password"),
		AdminName:     envOr("ADMIN_NAME", "Amministratore"),

		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail: envOr("SENDGRID_FROM_EMAIL", "noreply@kondo.it"),
		SendGridSandbox:   envBool("SENDGRID_SANDBOX"),

		SeedDemoData: envBool("SEED_DEMO_DATA"),
	}

	cfg.FieldEncryptionKey = []byte(envOr("FIELD_ENCRYPTION_KEY", defaultFieldEncryptionKey))
	if extra := os.Getenv("EXTRA_SENSITIVE_FIELDS"); extra != "" {
		for _, f := range strings.Split(extra, ",") {
			if f = strings.TrimSpace(f); f != "" {
				cfg.ExtraSensitiveFields = append(cfg.ExtraSensitiveFields, f)
			}
		}
	}

	expiryMin, err := strconv.Atoi(envOr("TOKEN_EXPIRY_MINUTES", "60"))
	if err != nil || expiryMin <= 0 {
		utils.Logger.Fatal("TOKEN_EXPIRY_MINUTES must be a positive integer")
	}
	cfg.TokenExpiry = time.Duration(expiryMin) * time.Minute

	privB64 := os.Getenv("RSA_PRIVATE_KEY_BASE64")
	if privB64 == "" {
		utils.Logger.Fatal("RSA_PRIVATE_KEY_BASE64 env var is missing")
	}
	privPEM, err := base64.StdEncoding.DecodeString(privB64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("RSA_PRIVATE_KEY_BASE64 is not valid base64")
	}
	privKey, err := jwt.ParseRSAPrivateKeyFromPEM(privPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA private key")
	}
	cfg.RSAPrivateKey = privKey
	cfg.RSAPublicKey = &privKey.PublicKey

	if cfg.AdminPassword == "password" {
		utils.Logger.Warn("ADMIN_PASSWORD is the default; change it outside local development")
	}
	if cfg.SheetEndpointURL == "" {
		utils.Logger.Info("No SHEET_ENDPOINT_URL configured, using local store at ", cfg.LocalDBPath)
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "true" || v == "1" || v == "yes"
}
