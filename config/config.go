package config

import (
    "log"
    "os"

    "github.com/joho/godotenv"
)

type Config struct {
    Port          string
    DatabaseURL   string
    SessionSecret string

    GeminiAPIKey string
    GeminiModel  string

    SMSProviderURL        string
    SMSFrom               string
    SMSDefaultCountryCode string
    EmailProviderURL      string
    EmailFrom             string

    // Optional path to the reference workbook overriding the built-in
    // tax/HEM tables.
    TablesXLSX string

    // Whether values re-extracted from the generated reply may overwrite
    // user-provided values.
    AICorrectionsWin bool
}

func Load() Config {
    _ = godotenv.Load()
    cfg := Config{
        Port:                  get("PORT", "8080"),
        DatabaseURL:           must("DATABASE_URL"),
        SessionSecret:         must("SESSION_SECRET"),
        GeminiAPIKey:          get("GEMINI_API_KEY", ""),
        GeminiModel:           get("GEMINI_MODEL", "gemini-2.5-pro"),
        SMSProviderURL:        get("SMS_PROVIDER_URL", ""),
        SMSFrom:               get("SMS_FROM", ""),
        SMSDefaultCountryCode: get("SMS_DEFAULT_COUNTRY_CODE", "+1"),
        EmailProviderURL:      get("EMAIL_PROVIDER_URL", ""),
        EmailFrom:             get("EMAIL_FROM", "noreply@mortgage-app.com"),
        TablesXLSX:            get("TABLES_XLSX", ""),
        AICorrectionsWin:      get("AI_CORRECTIONS_WIN", "") == "true",
    }
    return cfg
}

func get(k, def string) string {
    if v := os.Getenv(k); v != "" {
        return v
    }
    return def
}

func must(k string) string {
    v := os.Getenv(k)
    if v == "" {
        log.Fatalf("missing required env: %s", k)
    }
    return v
}
