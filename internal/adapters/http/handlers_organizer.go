package web

import (
	"net/http"

	"github.com/gorilla/csrf"

	"smartevents/internal/adapters/http/middleware"
	"smartevents/internal/application/orchestrators"
	"smartevents/internal/domain/event"
	"smartevents/internal/domain/nav"
)

// handleOrganizerDashboard renders the organizer shell.
func handleOrganizerDashboard(w http.ResponseWriter, r *http.Request) {
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
	case nav.PanelDashboard, nav.PanelEvents, nav.PanelAnalytics:
		// All three panels present views over the organizer's own events,
		// fetched fresh on every render
		events, err := deps.API.MyEvents(r.Context(), sess.Token)
		if err != nil {
			if handleAPIError(w, r, err) {
				return
			}
			data["Error"] = err.Error()
			break
		}
		data["Events"] = events
		approved := 0
		for _, ev := range events {
			if ev.IsApproved {
				approved++
			}
		}
		data["Total"] = len(events)
		data["Approved"] = approved
		data["Pending"] = len(events) - approved
	}

	renderTemplate(w, r, "organizer_dashboard.html", data)
}

// eventFromForm reads the editable event fields from a submitted form.
func eventFromForm(r *http.Request) event.Event {
	return event.Event{
		ID:          r.FormValue("ID"),
		Title:       r.FormValue("Title"),
		Description: r.FormValue("Description"),
		Date:        r.FormValue("Date"),
		StartTime:   r.FormValue("StartTime"),
		EndTime:     r.FormValue("EndTime"),
		Location:    r.FormValue("Location"),
		Category:    r.FormValue("Category"),
		EventImage:  r.FormValue("EventImage"),
	}
}

// eventFormData assembles the template data for the create/edit form.
func eventFormData(r *http.Request, ev event.Event, errMsg string) map[string]any {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	data := map[string]any{
		"CSRFToken": csrf.Token(r),
		"Session":   sess,
		"Event":     ev,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	if cats, err := deps.API.ListCategories(r.Context(), sess.Token); err == nil {
		data["Categories"] = cats
	} else {
		data["CategoriesError"] = err.Error()
	}
	return data
}

// handleOrganizerEventNew handles GET (form) and POST (create) for new
// events. On failure the form re-renders with the submitted values; the
// event list is only ever updated by the redirect target's fresh fetch.
func handleOrganizerEventNew(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "event_form.html", eventFormData(r, event.Event{}, ""))
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
	sess, _ := middleware.GetSessionFromContext(r.Context())
	ev := eventFromForm(r)
	ev.ID = ""

	edeps := orchestrators.EventDeps{API: deps.API, Upload: deps.API}
	if err := orchestrators.ExecuteCreateEvent(r.Context(), sess.Token, ev, r.FormValue("ImageData"), edeps); err != nil {
		if handleAPIError(w, r, err) {
			return
		}
		renderTemplate(w, r, "event_form.html", eventFormData(r, ev, err.Error()))
		return
	}

	http.Redirect(w, r, "/organizer?page=events", http.StatusSeeOther)
}

// handleOrganizerEventEdit handles GET (prefilled form) and POST (update).
func handleOrganizerEventEdit(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	if r.Method == "GET" {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		ev, err := deps.API.GetEvent(r.Context(), sess.Token, id)
		if err != nil {
			if handleAPIError(w, r, err) {
				return
			}
			renderTemplate(w, r, "event_form.html", eventFormData(r, event.Event{ID: id}, err.Error()))
			return
		}
		renderTemplate(w, r, "event_form.html", eventFormData(r, ev, ""))
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
	ev := eventFromForm(r)
	if ev.ID == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	edeps := orchestrators.EventDeps{API: deps.API, Upload: deps.API}
	if err := orchestrators.ExecuteUpdateEvent(r.Context(), sess.Token, ev, r.FormValue("ImageData"), edeps); err != nil {
		if handleAPIError(w, r, err) {
			return
		}
		renderTemplate(w, r, "event_form.html", eventFormData(r, ev, err.Error()))
		return
	}

	http.Redirect(w, r, "/organizer?page=events", http.StatusSeeOther)
}

// handleOrganizerEventDelete is the two-stage delete: GET renders the
// confirmation page without touching the backend; only the confirmed POST
// issues the delete call, followed by the redirect whose GET re-fetches
// the list.
func handleOrganizerEventDelete(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	if r.Method == "GET" {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		renderTemplate(w, r, "event_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Session":   sess,
			"ID":        id,
			"Title":     r.URL.Query().Get("title"),
			"CancelURL": "/organizer?page=events",
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
	id := r.FormValue("ID")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	edeps := orchestrators.EventDeps{API: deps.API, Upload: deps.API}
	if err := orchestrators.ExecuteDeleteEvent(r.Context(), sess.Token, id, edeps); err != nil {
		if handleAPIError(w, r, err) {
			return
		}
		renderTemplate(w, r, "event_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Session":   sess,
			"ID":        id,
			"Error":     err.Error(),
			"CancelURL": "/organizer?page=events",
		})
		return
	}

	http.Redirect(w, r, "/organizer?page=events", http.StatusSeeOther)
}
