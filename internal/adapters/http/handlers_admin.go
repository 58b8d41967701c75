package web

import (
	"net/http"

	"github.com/gorilla/csrf"

	"smartevents/internal/adapters/http/middleware"
	"smartevents/internal/application/orchestrators"
	"smartevents/internal/domain/nav"
	"smartevents/internal/domain/session"
	"smartevents/internal/domain/user"
)

// handleAdminDashboard renders the admin shell.
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
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
		events, err := deps.API.AllEvents(r.Context(), sess.Token)
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

	case nav.PanelCategories:
		cats, err := deps.API.ListCategories(r.Context(), sess.Token)
		if err != nil {
			if handleAPIError(w, r, err) {
				return
			}
			data["Error"] = err.Error()
			break
		}
		data["Categories"] = cats

	case nav.PanelUsers:
		users, err := deps.API.ListUsers(r.Context(), sess.Token)
		if err != nil {
			if handleAPIError(w, r, err) {
				return
			}
			data["Error"] = err.Error()
			break
		}
		data["Users"] = users
	}

	renderTemplate(w, r, "admin_dashboard.html", data)
}

// handleAdminEventApprove handles POST /admin/events/approve.
func handleAdminEventApprove(w http.ResponseWriter, r *http.Request) {
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
	approved := r.FormValue("Approved") == "true"

	sess, _ := middleware.GetSessionFromContext(r.Context())
	edeps := orchestrators.EventDeps{API: deps.API, Upload: deps.API}
	if err := orchestrators.ExecuteApproveEvent(r.Context(), sess.Token, id, approved, edeps); err != nil {
		if handleAPIError(w, r, err) {
			return
		}
		renderTemplate(w, r, "admin_dashboard.html", map[string]any{
			"Panel":     nav.PanelEvents,
			"Panels":    nav.Panels(sess.Role),
			"CSRFToken": csrf.Token(r),
			"Session":   sess,
			"Error":     err.Error(),
		})
		return
	}

	http.Redirect(w, r, "/admin?page=events", http.StatusSeeOther)
}

// handleAdminCategoryNew handles POST of the inline create form on the
// categories panel.
func handleAdminCategoryNew(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	sess, _ := middleware.GetSessionFromContext(r.Context())
	cdeps := orchestrators.CategoryDeps{API: deps.API}
	if err := orchestrators.ExecuteCreateCategory(r.Context(), sess.Token, r.FormValue("Name"), cdeps); err != nil {
		if handleAPIError(w, r, err) {
			return
		}
		renderAdminCategoriesError(w, r, sess, err.Error(), r.FormValue("Name"))
		return
	}

	http.Redirect(w, r, "/admin?page=categories", http.StatusSeeOther)
}

// handleAdminCategoryEdit handles GET (rename form) and POST (rename).
func handleAdminCategoryEdit(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	if r.Method == "GET" {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		renderTemplate(w, r, "category_form.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Session":   sess,
			"ID":        id,
			"Name":      r.URL.Query().Get("name"),
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
	name := r.FormValue("Name")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	cdeps := orchestrators.CategoryDeps{API: deps.API}
	if err := orchestrators.ExecuteUpdateCategory(r.Context(), sess.Token, id, name, cdeps); err != nil {
		if handleAPIError(w, r, err) {
			return
		}
		renderTemplate(w, r, "category_form.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Session":   sess,
			"ID":        id,
			"Name":      name,
			"Error":     err.Error(),
		})
		return
	}

	http.Redirect(w, r, "/admin?page=categories", http.StatusSeeOther)
}

// handleAdminCategoryDelete is the two-stage category delete.
func handleAdminCategoryDelete(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	if r.Method == "GET" {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		renderTemplate(w, r, "category_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Session":   sess,
			"ID":        id,
			"Name":      r.URL.Query().Get("name"),
			"CancelURL": "/admin?page=categories",
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

	cdeps := orchestrators.CategoryDeps{API: deps.API}
	if err := orchestrators.ExecuteDeleteCategory(r.Context(), sess.Token, id, cdeps); err != nil {
		if handleAPIError(w, r, err) {
			return
		}
		renderTemplate(w, r, "category_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Session":   sess,
			"ID":        id,
			"Error":     err.Error(),
			"CancelURL": "/admin?page=categories",
		})
		return
	}

	http.Redirect(w, r, "/admin?page=categories", http.StatusSeeOther)
}

// handleAdminUserEdit handles GET (role form) and POST (update user).
func handleAdminUserEdit(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	if r.Method == "GET" {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		u, err := findUser(r, sess.Token, id)
		if err != nil {
			if handleAPIError(w, r, err) {
				return
			}
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		renderTemplate(w, r, "user_form.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Session":   sess,
			"User":      u,
			"Roles":     session.ValidRoles,
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
	u := user.User{
		ID:    r.FormValue("ID"),
		Name:  r.FormValue("Name"),
		Email: r.FormValue("Email"),
		Role:  r.FormValue("Role"),
	}
	if u.ID == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	udeps := orchestrators.UserDeps{API: deps.API}
	if err := orchestrators.ExecuteUpdateUser(r.Context(), sess.Token, u, udeps); err != nil {
		if handleAPIError(w, r, err) {
			return
		}
		renderTemplate(w, r, "user_form.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Session":   sess,
			"User":      u,
			"Roles":     session.ValidRoles,
			"Error":     err.Error(),
		})
		return
	}

	http.Redirect(w, r, "/admin?page=users", http.StatusSeeOther)
}

// handleAdminUserDelete is the two-stage user delete.
func handleAdminUserDelete(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	if r.Method == "GET" {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		renderTemplate(w, r, "user_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Session":   sess,
			"ID":        id,
			"Name":      r.URL.Query().Get("name"),
			"CancelURL": "/admin?page=users",
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

	udeps := orchestrators.UserDeps{API: deps.API}
	if err := orchestrators.ExecuteDeleteUser(r.Context(), sess.Token, id, udeps); err != nil {
		if handleAPIError(w, r, err) {
			return
		}
		renderTemplate(w, r, "user_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Session":   sess,
			"ID":        id,
			"Error":     err.Error(),
			"CancelURL": "/admin?page=users",
		})
		return
	}

	http.Redirect(w, r, "/admin?page=users", http.StatusSeeOther)
}

// findUser locates a user in the admin list; the backend has no
// single-user read for admins.
func findUser(r *http.Request, token, id string) (user.User, error) {
	users, err := deps.API.ListUsers(r.Context(), token)
	if err != nil {
		return user.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{ID: id}, nil
}

// renderAdminCategoriesError re-renders the categories panel with the
// inline error and the attempted name, keeping the fetched list intact.
func renderAdminCategoriesError(w http.ResponseWriter, r *http.Request, sess session.Session, errMsg, attempted string) {
	data := map[string]any{
		"Panel":     nav.PanelCategories,
		"Panels":    nav.Panels(sess.Role),
		"CSRFToken": csrf.Token(r),
		"Session":   sess,
		"Error":     errMsg,
		"Attempted": attempted,
	}
	if cats, err := deps.API.ListCategories(r.Context(), sess.Token); err == nil {
		data["Categories"] = cats
	}
	renderTemplate(w, r, "admin_dashboard.html", data)
}
