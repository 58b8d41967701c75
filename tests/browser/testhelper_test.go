package browser_test

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	_ "modernc.org/sqlite"

	"smartevents/internal/adapters/api"
	emailPkg "smartevents/internal/adapters/email"
	web "smartevents/internal/adapters/http"
	sessionStore "smartevents/internal/adapters/storage/session"
	"smartevents/internal/domain/event"
)

// fakeBackend is an in-memory SmartEvents REST API for browser tests. It
// accepts one organizer account and stores events.
type fakeBackend struct {
	mu     sync.Mutex
	events []event.Event
	nextID int
	srv    *httptest.Server
}

const (
	testEmail    = "olivia@test.com"
	testPassword = "TestPass123!"
	testToken    = "test-bearer-token"
)

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{}
	mux := http.NewServeMux()

	mux.HandleFunc("/users/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != testEmail || body["password"] != testPassword {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"_id":   "org-001",
			"name":  "Olivia Organizer",
			"email": testEmail,
			"role":  "organizer",
			"token": testToken,
		})
	})
	mux.HandleFunc("/events/myevents", func(w http.ResponseWriter, r *http.Request) {
		if !b.authed(w, r) {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		json.NewEncoder(w).Encode(b.events)
	})
	mux.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if !b.authed(w, r) {
				return
			}
			var ev event.Event
			json.NewDecoder(r.Body).Decode(&ev)
			b.mu.Lock()
			defer b.mu.Unlock()
			b.nextID++
			ev.ID = fmt.Sprintf("ev-%03d", b.nextID)
			ev.IsApproved = false
			b.events = append(b.events, ev)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(ev)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		json.NewEncoder(w).Encode(b.events)
	})
	mux.HandleFunc("/events/", func(w http.ResponseWriter, r *http.Request) {
		if !b.authed(w, r) {
			return
		}
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/events/")
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, ev := range b.events {
			if ev.ID == id {
				b.events = append(b.events[:i], b.events[i+1:]...)
				break
			}
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Event removed"})
	})
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]string{{"_id": "cat-001", "name": "Technology"}})
	})

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) authed(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer "+testToken {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Not authorized, token failed"})
		return false
	}
	return true
}

// testApp holds the running web client and Playwright handles.
type testApp struct {
	BaseURL string
	Backend *fakeBackend
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// newTestApp wires the web client against a fake backend, with a temp
// SQLite session DB, and starts it on a free port.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	backend := newFakeBackend(t)

	dbPath := filepath.Join(t.TempDir(), "sessions.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open session DB: %v", err)
	}
	if err := sessionStore.Migrate(db); err != nil {
		t.Fatalf("failed to migrate session DB: %v", err)
	}
	sessions, err := sessionStore.NewSQLiteStore(db, "")
	if err != nil {
		t.Fatalf("failed to create session store: %v", err)
	}

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Browser page loads burst well past the production limit
	web.RateLimitPerSecond = 1000

	csrfKey := []byte("0123456789abcdef0123456789abcdef")
	mux := web.NewMux("../../static", &web.Deps{
		API:         api.New(backend.srv.URL),
		Sessions:    sessions,
		Sender:      emailPkg.NewNoopSender(),
		ContactTo:   "info@smartevents.campus",
		ContactFrom: "noreply@smartevents.campus",
		CSRFKey:     csrfKey,
		TrustedOrigins: []string{
			fmt.Sprintf("127.0.0.1:%d", port),
			fmt.Sprintf("localhost:%d", port),
		},
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for the server to come up
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/login")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		Backend: backend,
		PW:      pw,
		Browser: browser,
	}
	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		db.Close()
	})
	return app
}

// seedEvent builds a backend event fixture.
func seedEvent(id, title string) event.Event {
	return event.Event{
		ID:        id,
		Title:     title,
		Date:      "2026-09-12",
		StartTime: "19:00",
		EndTime:   "22:00",
		Location:  "Student Union",
		Category:  "Technology",
	}
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login logs in as the seeded organizer and waits for the shell.
func (a *testApp) login(t *testing.T, page playwright.Page) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/login"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=Email]").Fill(testEmail); err != nil {
		t.Fatalf("failed to fill email: %v", err)
	}
	if err := page.Locator("input[name=Password]").Fill(testPassword); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+"/organizer", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not redirect to the organizer shell: %v", err)
	}
}
