package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/obradorhq/obrador/internal/domain/ledger"
	"github.com/obradorhq/obrador/internal/domain/models"
	"github.com/obradorhq/obrador/internal/repository/mongodb"
	"github.com/obradorhq/obrador/internal/server/handlers"
	bookssvc "github.com/obradorhq/obrador/internal/service/books"
	reportingsvc "github.com/obradorhq/obrador/internal/service/reporting"
	"github.com/obradorhq/obrador/pkg/clients/identity"
)

type fakeIdentity struct{}

func (fakeIdentity) SignIn(_ context.Context, username, password string) (*identity.Session, error) {
	if username == "Ana" && password == "secret" {
		return &identity.Session{Token: "tok-ana", UserID: "ana", Email: "ana@obrador.app"}, nil
	}
	return nil, identity.ErrInvalidCredentials
}

func (fakeIdentity) Verify(_ context.Context, token string) (*identity.Identity, error) {
	if token == "tok-ana" {
		return &identity.Identity{UserID: "ana", Email: "ana@obrador.app"}, nil
	}
	return nil, identity.ErrInvalidSession
}

type fakeRepo struct {
	books map[string]*models.Book
}

func (f *fakeRepo) Load(_ context.Context, userID string) (*models.Book, error) {
	book, ok := f.books[userID]
	if !ok {
		return nil, mongodb.ErrBookNotFound
	}
	return book.Clone(), nil
}

func (f *fakeRepo) Create(_ context.Context, book *models.Book) error {
	f.books[book.UserID] = book.Clone()
	return nil
}

func (f *fakeRepo) Patch(_ context.Context, _ string, _ models.Patch) error {
	return nil
}

func (f *fakeRepo) List(_ context.Context) ([]models.Book, error) {
	return nil, nil
}

func testEngine(t *testing.T) *gin.Engine {
	t.Helper()
	svc := bookssvc.NewService(&fakeRepo{books: make(map[string]*models.Book)}, nil)
	rep := reportingsvc.NewService(svc, nil)
	led := ledger.New(0.3)
	auth := handlers.NewAuthHandler(fakeIdentity{}, nil)
	book := handlers.NewBookHandler(svc, led, rep, nil)
	return New(auth, book, fakeIdentity{}, nil)
}

func do(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	engine := testEngine(t)

	w := do(t, engine, http.MethodPost, "/api/login", "", map[string]string{"username": "Ana", "password": "secret"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = do(t, engine, http.MethodPost, "/api/login", "", map[string]string{"username": "Ana", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	engine := testEngine(t)

	if w := do(t, engine, http.MethodGet, "/api/book", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if w := do(t, engine, http.MethodGet, "/api/book", "bogus", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", w.Code)
	}
}

func TestMaterialPurchaseFlow(t *testing.T) {
	engine := testEngine(t)

	w := do(t, engine, http.MethodPost, "/api/materials", "tok-ana", map[string]any{
		"name": "Flour", "consumptionUnit": "kg", "minStock": 5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create material: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var book models.Book
	if err := json.Unmarshal(w.Body.Bytes(), &book); err != nil {
		t.Fatalf("decode book: %v", err)
	}
	if len(book.RawMaterials) != 1 {
		t.Fatalf("expected one material, got %+v", book.RawMaterials)
	}
	id := book.RawMaterials[0].ID

	w = do(t, engine, http.MethodPost, fmt.Sprintf("/api/materials/%s/purchases", id), "tok-ana", map[string]any{
		"quantity": 10, "totalCost": 50, "supplier": "Molinos SA",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("purchase: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &book); err != nil {
		t.Fatalf("decode book: %v", err)
	}
	if book.RawMaterials[0].Stock != 10 || book.RawMaterials[0].PurchasePrice != 5 {
		t.Fatalf("unexpected material state %+v", book.RawMaterials[0])
	}
	if len(book.Suppliers) != 1 {
		t.Fatalf("expected supplier registered, got %v", book.Suppliers)
	}

	// Validation failures map to 400, domain conflicts to 409.
	w = do(t, engine, http.MethodPost, fmt.Sprintf("/api/materials/%s/purchases", id), "tok-ana", map[string]any{
		"quantity": 0, "totalCost": 5,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity, got %d", w.Code)
	}

	w = do(t, engine, http.MethodPost, "/api/waste", "tok-ana", map[string]any{
		"itemId": id, "itemType": "RAW_MATERIAL", "quantity": 999, "reason": "spill",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for insufficient stock, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	engine := testEngine(t)
	if w := do(t, engine, http.MethodGet, "/healthz", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
