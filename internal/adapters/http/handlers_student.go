package web

import (
	"net/http"

	"github.com/gorilla/csrf"

	"smartevents/internal/adapters/http/middleware"
	"smartevents/internal/application/listutil"
	"smartevents/internal/application/orchestrators"
	"smartevents/internal/domain/nav"
)

// handleStudentDashboard renders the student shell. The active panel is
// derived from the `page` query parameter on every request; nothing about
// the current panel is kept in memory.
func handleStudentDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, _ := middleware.GetSessionFromContext(r.Context())
	panel := nav.Resolve(sess.Role, r.URL.Query().Get("page"))

	data := map[string]any{
		"Panel":     panel,
		"Panels":    nav.Panels(sess.Role),
		"CSRFToken": csrf.Token(r),
		"Session":   sess,
	}

	switch panel {
	case nav.PanelDashboard:
		events, err := deps.API.ListEvents(r.Context(), "", "")
		if err != nil {
			if handleAPIError(w, r, err) {
				return
			}
			data["Error"] = err.Error()
			break
		}
		upcoming, _ := listutil.Paginate(events, listutil.PageParams{Page: 1, PerPage: 6})
		data["Upcoming"] = upcoming
		data["EventCount"] = len(events)

	case nav.PanelEvents:
		bp := listutil.ParseBrowseParams(r.URL.Query())
		events, err := deps.API.ListEvents(r.Context(), bp.Search, bp.Category)
		if err != nil {
			if handleAPIError(w, r, err) {
				return
			}
			data["Error"] = err.Error()
			break
		}
		pageEvents, pageInfo := listutil.Paginate(events, bp.PageParams)
		data["Events"] = pageEvents
		data["PageInfo"] = pageInfo
		data["Search"] = bp.Search
		data["Category"] = bp.Category
		// Category selector is best-effort: a failed lookup hides the
		// filter but must not blank the event list
		if cats, err := deps.API.ListCategories(r.Context(), sess.Token); err == nil {
			data["Categories"] = cats
		}

	case nav.PanelMyTickets:
		events, err := deps.API.RegisteredEvents(r.Context(), sess.Token)
		if err != nil {
			if handleAPIError(w, r, err) {
				return
			}
			data["Error"] = err.Error()
			break
		}
		data["Tickets"] = events
	}

	renderTemplate(w, r, "student_dashboard.html", data)
}

// handleStudentRegisterForEvent handles POST /student/events/register.
func handleStudentRegisterForEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	id := r.FormValue("ID")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	sess, _ := middleware.GetSessionFromContext(r.Context())
	edeps := orchestrators.EventDeps{API: deps.API, Upload: deps.API}
	if err := orchestrators.ExecuteRegisterForEvent(r.Context(), sess.Token, id, edeps); err != nil {
		if handleAPIError(w, r, err) {
			return
		}
		renderTemplate(w, r, "student_dashboard.html", map[string]any{
			"Panel":     nav.PanelEvents,
			"Panels":    nav.Panels(sess.Role),
			"CSRFToken": csrf.Token(r),
			"Session":   sess,
			"Error":     err.Error(),
		})
		return
	}

	// Refetch-after-mutation: land on the tickets panel, which re-fetches
	http.Redirect(w, r, "/student?page=mytickets", http.StatusSeeOther)
}
