package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/frabiasco/assenze/internal/db"
	"github.com/frabiasco/assenze/internal/models"
)

func TestRegisterPersistsUserAndRedirectsToLogin(t *testing.T) {
	t.Parallel()

	app, store := newTestApp(t)

	response := postForm(t, app, "/register", url.Values{
		"name":      {"Anna Rossi"},
		"email":     {"anna@example.com"},
		"password":  {"segreta"},
		"childName": {"Sofia"},
		"category":  {"Pulcini"},
	})
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/login" {
		t.Fatalf("expected redirect to /login, got %q", location)
	}

	document, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(document.Users) != 1 || document.Users[0].ChildName != "Sofia" {
		t.Fatalf("user not persisted: %+v", document.Users)
	}
}

func TestRegisterDuplicateNormalizedEmailReRendersWithError(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	form := url.Values{
		"name":      {"Anna"},
		"email":     {"anna@example.com"},
		"password":  {"segreta"},
		"childName": {"Sofia"},
		"category":  {"Pulcini"},
	}
	postForm(t, app, "/register", form)

	form.Set("email", " ANNA@Example.com ")
	response := postForm(t, app, "/register", form)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected re-rendered form, got %d", response.StatusCode)
	}
	if body := readBody(t, response); !strings.Contains(body, "Utente già registrato!") {
		t.Fatalf("expected duplicate-user error in body:\n%s", body)
	}
}

func TestLoginAdminCredentialsRedirectToAdmin(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := postForm(t, app, "/login", url.Values{
		"email":    {strings.ToUpper(testAdminEmail)},
		"password": {testAdminPassword + " "},
	})
	if response.StatusCode != http.StatusSeeOther || response.Header.Get("Location") != "/admin" {
		t.Fatalf("expected 303 to /admin, got %d %q", response.StatusCode, response.Header.Get("Location"))
	}
}

func TestLoginParentCredentialsRedirectToParentDashboard(t *testing.T) {
	t.Parallel()

	app, store := newTestApp(t)
	seedParent(t, store)

	response := postForm(t, app, "/login", url.Values{
		"email":    {"ANNA@example.com "},
		"password": {"segreta"},
	})
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); !strings.HasPrefix(location, "/parent/") {
		t.Fatalf("expected parent redirect, got %q", location)
	}
}

func TestLoginWrongCredentialsReRenderWithError(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := postForm(t, app, "/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"sbagliata"},
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected re-rendered login, got %d", response.StatusCode)
	}
	if body := readBody(t, response); !strings.Contains(body, "Email o password errate") {
		t.Fatalf("expected credentials error in body:\n%s", body)
	}
}

func seedParent(t *testing.T, store db.DocumentStore) {
	t.Helper()

	err := store.Update(context.Background(), func(document *models.Document) error {
		document.Categories = append(document.Categories, models.Category{
			Name: "Pulcini", Days: []string{"lunedi", "mercoledi"},
		})
		document.Users = append(document.Users, models.User{
			Name: "Anna Rossi", Email: "anna@example.com", Password: "segreta", ChildName: "Sofia", Category: "Pulcini",
		})
		return nil
	})
	if err != nil {
		t.Fatalf("seed parent: %v", err)
	}
}
