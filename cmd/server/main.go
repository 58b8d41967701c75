package main

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"log"
	"net/http"

	_ "modernc.org/sqlite"

	"smartevents/internal/adapters/api"
	emailPkg "smartevents/internal/adapters/email"
	web "smartevents/internal/adapters/http"
	"smartevents/internal/adapters/http/middleware"
	sessionStore "smartevents/internal/adapters/storage/session"
	"smartevents/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize session database with WAL mode and busy timeout
	dsn := cfg.SessionDBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open session database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("session database unreachable: %v", err)
	}
	if err := sessionStore.Migrate(db); err != nil {
		log.Fatalf("failed to migrate session database: %v", err)
	}

	sessions, err := sessionStore.NewSQLiteStore(db, cfg.SessionSealKey)
	if err != nil {
		log.Fatalf("failed to create session store: %v", err)
	}
	if cfg.SessionSealKey == "" {
		log.Println("SMARTEVENTS_SESSION_KEY is not set — sessions will not survive a restart")
	}

	client := api.New(cfg.APIBaseURL)

	// Configure email sender for the contact form
	var sender emailPkg.Sender
	if cfg.ResendKey != "" {
		sender = emailPkg.NewResendSender(cfg.ResendKey, cfg.ContactFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewNoopSender()
		if cfg.IsProduction() {
			log.Println("WARNING: SMARTEVENTS_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set SMARTEVENTS_RESEND_KEY for real delivery)")
		}
	}

	csrfKey, err := loadCSRFKey(cfg)
	if err != nil {
		log.Fatalf("failed to load CSRF key: %v", err)
	}

	middleware.SecureCookies = cfg.IsProduction()

	mux := web.NewMux(cfg.StaticDir, &web.Deps{
		API:         client,
		Sessions:    sessions,
		Sender:      sender,
		ContactTo:   cfg.ContactTo,
		ContactFrom: cfg.ContactFrom,
		CSRFKey:     csrfKey,
	})

	log.Printf("SmartEvents %s starting on %s (env=%s, api=%s)", version, cfg.Addr, cfg.Env, cfg.APIBaseURL)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// loadCSRFKey decodes the configured key or, outside production, generates
// a throwaway one.
func loadCSRFKey(cfg config.Config) ([]byte, error) {
	if cfg.CSRFKey != "" {
		key, err := hex.DecodeString(cfg.CSRFKey)
		if err != nil {
			return nil, err
		}
		return key, nil
	}
	if cfg.IsProduction() {
		log.Fatal("SMARTEVENTS_CSRF_KEY is required in production")
	}
	log.Println("SMARTEVENTS_CSRF_KEY is not set — using a throwaway key")
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}
