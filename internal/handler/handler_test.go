package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"backend/internal/database"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("underlying db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// setupRouter wires the full stack against an in-memory database, mirroring
// the wiring in cmd/api/main.go minus the websocket hub.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)

	txManager := repository.NewTransactionManager(db)
	userService := service.NewUserService(repository.NewUserRepository(db))
	requestService := service.NewRequestService(repository.NewRequestRepository(db), txManager, nil)

	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		c.String(200, "API is running")
	})
	NewHealthHandler(db).RegisterRoutes(router.Group(""))
	NewUserHandler(userService).RegisterRoutes(router.Group(""))
	NewRequestHandler(requestService).RegisterRoutes(router.Group(""))
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad json %q: %v", rec.Body.String(), err)
	}
	return out
}

func signupUser(t *testing.T, router *gin.Engine, email string) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/signup", map[string]any{
		"name": "Alice", "email": email, "password": "s3cret", "role": "employee",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRootRoute(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "API is running" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "healthy" || body["database"] != "connected" {
		t.Fatalf("body = %v", body)
	}
	if _, ok := body["timestamp"]; !ok {
		t.Fatal("missing timestamp")
	}
}

func TestSignup(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/signup", map[string]any{
		"name": "Alice", "email": "alice@example.com", "password": "s3cret", "role": "approver",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["message"] != "User created" {
		t.Fatalf("body = %v", body)
	}
}

func TestSignupDuplicateEmailIs400(t *testing.T) {
	router, _ := setupRouter(t)
	signupUser(t, router, "dup@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/signup", map[string]any{
		"name": "Mallory", "email": "dup@example.com", "password": "other", "role": "employee",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] == "" {
		t.Fatalf("body = %v, want error message", body)
	}
}

func TestLoginSuccess(t *testing.T) {
	router, _ := setupRouter(t)
	signupUser(t, router, "alice@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/login", map[string]any{
		"email": "alice@example.com", "password": "s3cret",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["message"] != "Login successful" {
		t.Fatalf("body = %v", body)
	}
	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("user = %v", body["user"])
	}
	if user["name"] != "Alice" || user["role"] != "employee" {
		t.Fatalf("user = %v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatal("password leaked in login response")
	}
}

func TestLoginWrongPasswordIs403(t *testing.T) {
	router, _ := setupRouter(t)
	signupUser(t, router, "alice@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/login", map[string]any{
		"email": "alice@example.com", "password": "wrong",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Invalid credentials" {
		t.Fatalf("body = %v", body)
	}
}

func TestLoginUnknownEmailIs404(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/login", map[string]any{
		"email": "nobody@example.com", "password": "x",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "User not found" {
		t.Fatalf("body = %v", body)
	}
}

func createUserRow(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{Name: "Alice", Email: "alice@example.com", Password: "x", Role: "employee"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestCreateRequest(t *testing.T) {
	router, db := setupRouter(t)
	owner := createUserRow(t, db)

	rec := doJSON(t, router, http.MethodPost, "/api/requests", map[string]any{
		"name":       "Laptops",
		"purchase":   "Hardware",
		"vendor":     "Acme",
		"tax_amount": 50.0,
		"items": []map[string]any{
			{"item_no": "A1", "legal_entity": "US"},
		},
		"user_id": owner.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["message"] != "Request created" {
		t.Fatalf("body = %v", body)
	}
	requestID, ok := body["requestId"].(float64)
	if !ok || requestID <= 0 {
		t.Fatalf("requestId = %v, want positive number", body["requestId"])
	}

	// The subsequent listing includes the created items
	rec = doJSON(t, router, http.MethodGet, "/api/requests", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var listed []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("bad list json: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("list len = %d, want 1", len(listed))
	}
	entry := listed[0]
	if entry["user_name"] != "Alice" {
		t.Fatalf("user_name = %v", entry["user_name"])
	}
	items, ok := entry["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v", entry["items"])
	}
	item := items[0].(map[string]any)
	if item["item_no"] != "A1" || item["legal_entity"] != "US" {
		t.Fatalf("item = %v", item)
	}
}

func TestListRequestsNewestFirst(t *testing.T) {
	router, db := setupRouter(t)
	owner := createUserRow(t, db)

	for _, name := range []string{"first", "second", "third"} {
		rec := doJSON(t, router, http.MethodPost, "/api/requests", map[string]any{
			"name": name, "items": []map[string]any{}, "user_id": owner.ID,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %s: %d", name, rec.Code)
		}
	}

	rec := doJSON(t, router, http.MethodGet, "/api/requests", nil)
	var listed []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("bad list json: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("list len = %d, want 3", len(listed))
	}
	if listed[0]["name"] != "third" || listed[2]["name"] != "first" {
		t.Fatalf("order = %v, %v, %v", listed[0]["name"], listed[1]["name"], listed[2]["name"])
	}
}

func TestListRequestsEmptyItemsRendersEmptyArray(t *testing.T) {
	router, db := setupRouter(t)
	owner := createUserRow(t, db)

	rec := doJSON(t, router, http.MethodPost, "/api/requests", map[string]any{
		"name": "no items", "items": []map[string]any{}, "user_id": owner.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/requests", nil)
	var listed []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("bad list json: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("list len = %d, want 1", len(listed))
	}
	items, ok := listed[0]["items"].([]any)
	if !ok {
		t.Fatalf("items = %v (%T), want JSON array", listed[0]["items"], listed[0]["items"])
	}
	if len(items) != 0 {
		t.Fatalf("items = %v, want empty array", items)
	}
}

func TestApproveAndReject(t *testing.T) {
	router, db := setupRouter(t)
	owner := createUserRow(t, db)

	rec := doJSON(t, router, http.MethodPost, "/api/requests", map[string]any{
		"name": "toggle", "items": []map[string]any{}, "user_id": owner.ID,
	})
	id := int(decodeBody(t, rec)["requestId"].(float64))

	rec = doJSON(t, router, http.MethodPut, "/api/requests/"+strconv.Itoa(id)+"/approve", map[string]any{"approved": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("approve status = %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Request approved" {
		t.Fatalf("body = %v", body)
	}

	rec = doJSON(t, router, http.MethodPut, "/api/requests/"+strconv.Itoa(id)+"/approve", map[string]any{"approved": false})
	if body := decodeBody(t, rec); body["message"] != "Request rejected" {
		t.Fatalf("body = %v", body)
	}

	var got model.PurchaseRequest
	if err := db.First(&got, id).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Approved {
		t.Fatal("approved flag should be false after reject")
	}
}

func TestApproveUnknownIDStillSucceeds(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/requests/424242/approve", map[string]any{"approved": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Request approved" {
		t.Fatalf("body = %v", body)
	}
}

