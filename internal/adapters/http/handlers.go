package web

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"smartevents/internal/adapters/api"
	"smartevents/internal/adapters/http/middleware"
	"smartevents/internal/application/listutil"
	"smartevents/internal/application/orchestrators"
	"smartevents/internal/domain/nav"
	"smartevents/internal/domain/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// panelLabels maps panel IDs to sidebar text.
var panelLabels = map[string]string{
	nav.PanelDashboard:  "Dashboard",
	nav.PanelEvents:     "Events",
	nav.PanelMyTickets:  "My Tickets",
	nav.PanelCategories: "Categories",
	nav.PanelUsers:      "Users",
	nav.PanelAnalytics:  "Analytics",
	nav.PanelProfile:    "Profile",
	nav.PanelSettings:   "Settings",
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// handleAPIError is the single place 401s become logouts. It returns true
// when it consumed the error: the session row is gone, the cookie is
// cleared, and the browser is on its way to /login. Any other error is
// left for the caller to surface inline.
func handleAPIError(w http.ResponseWriter, r *http.Request, err error) bool {
	if !api.IsAuthError(err) {
		return false
	}
	if id := middleware.SessionCookieID(r); id != "" {
		if delErr := deps.Sessions.Delete(r.Context(), id); delErr != nil {
			slog.Error("session_teardown_failed", "error", delErr.Error())
		}
	}
	middleware.ClearSessionCookie(w)
	slog.Info("auth_event", "event", "forced_logout", "path", r.URL.Path)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	sess, loggedIn := middleware.GetSessionFromContext(r.Context())

	funcMap := template.FuncMap{
		"isLoggedIn":  func() bool { return loggedIn },
		"currentRole": func() string { return sess.Role },
		"currentName": func() string { return sess.Name },
		"shellPath":   nav.ShellPath,
		"csrfToken":   func() string { return csrf.Token(r) },
		"panelLabel": func(panel string) string {
			if label, ok := panelLabels[panel]; ok {
				return label
			}
			return panel
		},
		"add": func(a, b int) int { return a + b },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templateFS,
		"templates/layout.html", "templates/partials.html", "templates/"+templateName)
	if err != nil {
		internalError(w, err)
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		slog.Error("render_error", "template", templateName, "error", err.Error())
	}
}

// registerRoutes attaches all application routes to the mux.
func registerRoutes(mux *http.ServeMux) {
	// Public pages
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/about", handleAbout)
	mux.HandleFunc("/contact", handleContact)
	mux.HandleFunc("/healthz", handleHealthz)

	// Auth
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/register", handleRegister)
	mux.HandleFunc("/logout", handleLogout)
	mux.HandleFunc("/forgot-password", handleForgotPassword)
	mux.HandleFunc("/reset-password", handleResetPassword)

	// Role dashboard shells: one URL per role, panel chosen by ?page=
	mux.Handle("/student", middleware.RequireRole(session.RoleStudent)(http.HandlerFunc(handleStudentDashboard)))
	mux.Handle("/organizer", middleware.RequireRole(session.RoleOrganizer)(http.HandlerFunc(handleOrganizerDashboard)))
	mux.Handle("/admin", middleware.RequireRole(session.RoleAdmin)(http.HandlerFunc(handleAdminDashboard)))

	// Student actions
	mux.Handle("/student/events/register", middleware.RequireRole(session.RoleStudent)(http.HandlerFunc(handleStudentRegisterForEvent)))

	// Organizer event CRUD
	mux.Handle("/organizer/events/new", middleware.RequireRole(session.RoleOrganizer)(http.HandlerFunc(handleOrganizerEventNew)))
	mux.Handle("/organizer/events/edit", middleware.RequireRole(session.RoleOrganizer)(http.HandlerFunc(handleOrganizerEventEdit)))
	mux.Handle("/organizer/events/delete", middleware.RequireRole(session.RoleOrganizer)(http.HandlerFunc(handleOrganizerEventDelete)))

	// Admin moderation
	mux.Handle("/admin/events/approve", middleware.RequireRole(session.RoleAdmin)(http.HandlerFunc(handleAdminEventApprove)))
	mux.Handle("/admin/categories/new", middleware.RequireRole(session.RoleAdmin)(http.HandlerFunc(handleAdminCategoryNew)))
	mux.Handle("/admin/categories/edit", middleware.RequireRole(session.RoleAdmin)(http.HandlerFunc(handleAdminCategoryEdit)))
	mux.Handle("/admin/categories/delete", middleware.RequireRole(session.RoleAdmin)(http.HandlerFunc(handleAdminCategoryDelete)))
	mux.Handle("/admin/users/edit", middleware.RequireRole(session.RoleAdmin)(http.HandlerFunc(handleAdminUserEdit)))
	mux.Handle("/admin/users/delete", middleware.RequireRole(session.RoleAdmin)(http.HandlerFunc(handleAdminUserDelete)))

	// Shared profile update (all roles)
	mux.Handle("/profile", middleware.RequireAuth(http.HandlerFunc(handleProfileUpdate)))
}

// handleHome renders the landing page with featured (approved) events.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	data := map[string]any{}
	events, err := deps.API.ListEvents(r.Context(), "", "")
	if err != nil {
		data["Error"] = err.Error()
	} else {
		featured, _ := listutil.Paginate(events, listutil.PageParams{Page: 1, PerPage: 6})
		data["Featured"] = featured
		data["Total"] = len(events)
	}
	renderTemplate(w, r, "home.html", data)
}

func handleAbout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderTemplate(w, r, "about.html", nil)
}

// handleContact renders the contact form and delivers submissions via the
// configured email sender.
func handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "contact.html", map[string]any{"CSRFToken": csrf.Token(r)})
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	input := orchestrators.ContactInput{
		Name:    r.FormValue("Name"),
		Email:   r.FormValue("Email"),
		Subject: r.FormValue("Subject"),
		Message: r.FormValue("Message"),
	}
	cdeps := orchestrators.ContactDeps{Sender: deps.Sender, To: deps.ContactTo, From: deps.ContactFrom}
	if err := orchestrators.ExecuteContact(r.Context(), input, cdeps); err != nil {
		renderTemplate(w, r, "contact.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Error":     err.Error(),
			"Name":      input.Name,
			"Email":     input.Email,
			"Subject":   input.Subject,
			"Message":   input.Message,
		})
		return
	}
	renderTemplate(w, r, "contact.html", map[string]any{
		"CSRFToken": csrf.Token(r),
		"Success":   "Thanks! Your message has been sent.",
	})
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
