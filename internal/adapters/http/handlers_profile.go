package web

import (
	"net/http"

	"smartevents/internal/adapters/http/middleware"
	"smartevents/internal/application/orchestrators"
	"smartevents/internal/domain/nav"
)

// handleProfileUpdate handles POST /profile for every role. On success
// the browser is redirected back to the role shell's profile panel, whose
// GET renders from the freshly stored session.
func handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	sess, _ := middleware.GetSessionFromContext(r.Context())
	input := orchestrators.UpdateProfileInput{
		SessionID:    middleware.SessionCookieID(r),
		Name:         r.FormValue("Name"),
		Email:        r.FormValue("Email"),
		ImageDataURL: r.FormValue("ImageData"),
	}
	pdeps := orchestrators.UpdateProfileDeps{API: deps.API, Upload: deps.API, Sessions: deps.Sessions}

	if _, err := orchestrators.ExecuteUpdateProfile(r.Context(), sess, input, pdeps); err != nil {
		if handleAPIError(w, r, err) {
			return
		}
		renderTemplate(w, r, profileShellTemplate(sess.Role), map[string]any{
			"Panel":   nav.PanelProfile,
			"Panels":  nav.Panels(sess.Role),
			"Session": sess,
			"Error":   err.Error(),
			"Name":    input.Name,
			"Email":   input.Email,
		})
		return
	}

	http.Redirect(w, r, nav.ShellPath(sess.Role)+"?page=profile", http.StatusSeeOther)
}

func profileShellTemplate(role string) string {
	switch nav.ShellPath(role) {
	case "/organizer":
		return "organizer_dashboard.html"
	case "/admin":
		return "admin_dashboard.html"
	default:
		return "student_dashboard.html"
	}
}
