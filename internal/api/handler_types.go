package api

import (
	"html/template"
	"time"

	"github.com/frabiasco/assenze/internal/db"
	"github.com/frabiasco/assenze/internal/services"
)

// AdminIdentity is the single configured administrator; it is checked per
// request, there are no sessions anywhere in the app.
type AdminIdentity struct {
	Email    string
	Password string
}

type Handler struct {
	store     db.DocumentStore
	readiness *services.Readiness
	location  *time.Location
	admin     AdminIdentity
	staticDir string
	templates map[string]*template.Template
}

func NewHandler(store db.DocumentStore, readiness *services.Readiness, templatesDir string, staticDir string, location *time.Location, admin AdminIdentity) (*Handler, error) {
	if location == nil {
		location = time.UTC
	}

	templates, err := parsePageTemplates(templatesDir, templateFuncMap(), []string{
		"login",
		"register",
		"parent_dashboard",
		"admin_dashboard",
	})
	if err != nil {
		return nil, err
	}

	return &Handler{
		store:     store,
		readiness: readiness,
		location:  location,
		admin:     admin,
		staticDir: staticDir,
		templates: templates,
	}, nil
}

func (handler *Handler) today() time.Time {
	return services.DateAtLocation(time.Now(), handler.location)
}
