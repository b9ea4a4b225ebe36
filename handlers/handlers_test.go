package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/piggypal/piggypal-api/handlers"
	"github.com/piggypal/piggypal-api/middleware"
	"github.com/piggypal/piggypal-api/routes"
	"github.com/piggypal/piggypal-api/services"
	"github.com/piggypal/piggypal-api/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.DomainStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := services.NewDomainStore(storage.NewMemoryStore())
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init store: %v", err)
	}

	vault := services.NewVaultService(store)
	ws := handlers.NewWSHandler()

	router := gin.New()
	v1 := router.Group("/api/v1")
	routes.SetupAuthRoutes(v1, vault)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(vault))
	routes.SetupTOTPRoutes(protected, vault)
	routes.SetupExpenseRoutes(protected, store, ws)
	routes.SetupBudgetRoutes(protected, store, ws)
	routes.SetupGoalRoutes(protected, store, ws)
	routes.SetupTipRoutes(protected, store, ws)
	routes.SetupSettingsRoutes(protected, store, ws)
	routes.SetupDashboardRoutes(protected, store)

	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateExpenseValidationMapsTo400(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/expenses", map[string]interface{}{
		"description": "Lunch",
		"amount":      0,
		"date":        "2026-08-20",
		"category":    "Food",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["field"] != "amount" {
		t.Errorf("field = %q, want %q", resp["field"], "amount")
	}
}

func TestUpdateMissingExpenseMapsTo404(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/v1/expenses/nope", map[string]interface{}{
		"description": "Lunch",
		"amount":      12,
		"date":        "2026-08-20",
		"category":    "Food",
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDuplicateCategoryMapsTo409(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/budget/categories", map[string]interface{}{
		"name":  "food", // collides with the seeded "Food"
		"limit": 100,
	})

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestDeleteCategoryRequiresConfirmation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/budget/categories/Food", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unconfirmed delete: status = %d, want 400", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/budget/categories/Food?confirm=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("confirmed delete: status = %d, want 200", w.Code)
	}
}

func TestExpenseFlowUpdatesBudgetResponse(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/expenses", map[string]interface{}{
		"description": "Cinema",
		"amount":      15,
		"date":        "2026-08-20",
		"category":    "Entertainment",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create expense: status = %d, want 201, body %s", w.Code, w.Body)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/budget", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get budget: status = %d, want 200", w.Code)
	}

	var resp struct {
		Overview struct {
			TotalSpent float64 `json:"total_spent"`
		} `json:"overview"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Overview.TotalSpent != 15 {
		t.Errorf("total spent = %v, want 15", resp.Overview.TotalSpent)
	}
}

func TestVaultLockGuardsRoutes(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router, _ := newTestRouter(t)

	// Open vault: requests pass through.
	w := doJSON(t, router, http.MethodGet, "/api/v1/settings", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("open vault: status = %d, want 200", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/setup", map[string]string{
		"passphrase": "correct horse battery",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("setup: status = %d, want 201, body %s", w.Code, w.Body)
	}

	// Locked now.
	w = doJSON(t, router, http.MethodGet, "/api/v1/settings", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("locked vault without token: status = %d, want 401", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"passphrase": "correct horse battery",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status = %d, want 200, body %s", w.Code, w.Body)
	}
	var auth struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &auth); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	req.Header.Set("Authorization", "Bearer "+auth.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("locked vault with token: status = %d, want 200", rec.Code)
	}
}
