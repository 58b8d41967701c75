package web

import (
	"net/http"

	"github.com/gorilla/csrf"

	"smartevents/internal/adapters/http/middleware"
	"smartevents/internal/application/orchestrators"
	"smartevents/internal/domain/nav"
	"smartevents/internal/domain/session"
)

// handleLogin handles GET (form) and POST (authenticate) for /login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// Already logged in: straight to the role's shell
		if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, nav.ShellPath(sess.Role), http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Email:    r.FormValue("Email"),
			Password: r.FormValue("Password"),
		}
		ldeps := orchestrators.LoginDeps{API: deps.API, Sessions: deps.Sessions}

		result, err := orchestrators.ExecuteLogin(r.Context(), input, ldeps)
		if err != nil {
			renderTemplate(w, r, "login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
				"Email":     input.Email,
			})
			return
		}

		// Rotate the cookie: a previous role's session must not linger
		if old := middleware.SessionCookieID(r); old != "" {
			deps.Sessions.Delete(r.Context(), old)
		}
		middleware.SetSessionCookie(w, result.SessionID)
		http.Redirect(w, r, nav.ShellPath(result.Session.Role), http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleRegister handles GET (form) and POST (create account) for /register
func handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "register.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Roles":     []string{session.RoleStudent, session.RoleOrganizer},
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.RegisterInput{
			Name:            r.FormValue("Name"),
			Email:           r.FormValue("Email"),
			Password:        r.FormValue("Password"),
			ConfirmPassword: r.FormValue("ConfirmPassword"),
			Role:            r.FormValue("Role"),
		}
		ldeps := orchestrators.LoginDeps{API: deps.API, Sessions: deps.Sessions}

		result, err := orchestrators.ExecuteRegister(r.Context(), input, ldeps)
		if err != nil {
			renderTemplate(w, r, "register.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Roles":     []string{session.RoleStudent, session.RoleOrganizer},
				"Error":     err.Error(),
				"Name":      input.Name,
				"Email":     input.Email,
				"Role":      input.Role,
			})
			return
		}

		middleware.SetSessionCookie(w, result.SessionID)
		http.Redirect(w, r, nav.ShellPath(result.Session.Role), http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles POST /logout. Idempotent: logging out twice, or
// with no session at all, still lands on /login unauthenticated.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if id := middleware.SessionCookieID(r); id != "" {
		if err := deps.Sessions.Delete(r.Context(), id); err != nil {
			internalError(w, err)
			return
		}
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleForgotPassword handles GET (form) and POST (request reset link).
func handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "forgot_password.html", map[string]any{"CSRFToken": csrf.Token(r)})
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
	email := r.FormValue("Email")
	pdeps := orchestrators.PasswordDeps{API: deps.API}
	if err := orchestrators.ExecuteForgotPassword(r.Context(), email, pdeps); err != nil {
		renderTemplate(w, r, "forgot_password.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Error":     err.Error(),
			"Email":     email,
		})
		return
	}
	renderTemplate(w, r, "forgot_password.html", map[string]any{
		"CSRFToken": csrf.Token(r),
		"Success":   "If that address has an account, a reset link is on its way.",
	})
}

// handleResetPassword handles GET (form, token in query) and POST
// (complete reset) for /reset-password.
func handleResetPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "reset_password.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Token":     r.URL.Query().Get("token"),
		})
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
	token := r.FormValue("Token")
	pdeps := orchestrators.PasswordDeps{API: deps.API}
	err := orchestrators.ExecuteResetPassword(r.Context(), token, r.FormValue("Password"), r.FormValue("ConfirmPassword"), pdeps)
	if err != nil {
		renderTemplate(w, r, "reset_password.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Token":     token,
			"Error":     err.Error(),
		})
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
