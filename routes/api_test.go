package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"garment-flow/config"
	"garment-flow/database"
	"garment-flow/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.MAIN_ROUTES = "/api"
	config.APP_ENV = "development"
	config.JWTSecret = "test-secret"
	config.JWTExpiration = 3600

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	SetupAuthRoutes(app, db)
	SetupDashboardRoutes(app, db)
	SetupYarnRoutes(app, db)
	SetupKnittingRoutes(app, db)
	SetupDyeingRoutes(app, db)
	SetupCuttingRoutes(app, db)
	SetupStitchingRoutes(app, db)
	SetupPressingRoutes(app, db)
	SetupPackingRoutes(app, db)
	SetupContainerRoutes(app, db)
	SetupCostRoutes(app, db)
	SetupUserRoutes(app, db)
	SetupReportRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestYarnEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	// Create
	resp := doJSON(t, app, http.MethodPost, "/api/yarn",
		`{"batchCode":"YRN-1","color":"Blue","weightKg":500,"supplier":"Textile Co"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d", resp.StatusCode)
	}
	var created models.YarnBatch
	decodeBody(t, resp, &created)
	if created.ID == 0 || created.BatchCode != "YRN-1" {
		t.Fatalf("unexpected create response: %+v", created)
	}

	// List is a plain array
	resp = doJSON(t, app, http.MethodGet, "/api/yarn", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: expected 200 got %d", resp.StatusCode)
	}
	var batches []models.YarnBatch
	decodeBody(t, resp, &batches)
	if len(batches) != 1 {
		t.Fatalf("expected 1 batch got %d", len(batches))
	}

	// Fetch by id
	resp = doJSON(t, app, http.MethodGet, "/api/yarn/"+strconv.Itoa(int(created.ID)), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200 got %d", resp.StatusCode)
	}

	// Missing id is 404 with a message body
	resp = doJSON(t, app, http.MethodGet, "/api/yarn/999", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.StatusCode)
	}
	var errBody map[string]string
	decodeBody(t, resp, &errBody)
	if errBody["message"] != "Yarn batch not found" {
		t.Fatalf("unexpected message: %q", errBody["message"])
	}

	// Malformed id is 400
	resp = doJSON(t, app, http.MethodGet, "/api/yarn/abc", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Delete answers 204 and repeats are fine
	resp = doJSON(t, app, http.MethodDelete, "/api/yarn/"+strconv.Itoa(int(created.ID)), "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: expected 204 got %d", resp.StatusCode)
	}
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodDelete, "/api/yarn/"+strconv.Itoa(int(created.ID)), "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("repeat delete: expected 204 got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestDuplicateBatchCodeIsConflict(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"batchCode":"YRN-1","color":"Blue","weightKg":100}`
	resp := doJSON(t, app, http.MethodPost, "/api/yarn", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first create: expected 201 got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/yarn", body)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.StatusCode)
	}
	var errBody map[string]string
	decodeBody(t, resp, &errBody)
	if !strings.Contains(errBody["message"], "already exists") {
		t.Fatalf("unexpected message: %q", errBody["message"])
	}
}

func TestFractionalQuantityIsRejectedAtTheBoundary(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/yarn",
		`{"batchCode":"YRN-1","color":"Blue","weightKg":100}`)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/knitting",
		`{"yarnBatchId":1,"fabricType":"Jersey","weightUsed":50,"fabricProduced":48}`)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/dyeing",
		`{"knittingJobId":1,"weightKgDyed":45,"rollsPerBatch":3,"dyeColor":"Navy"}`)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/cutting",
		`{"dyeingJobId":1,"styleCode":"TS-01","size":"M","quantityPieces":2.5}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.StatusCode)
	}
	var errBody map[string]string
	decodeBody(t, resp, &errBody)
	if errBody["message"] != "Quantity Pieces must be a whole number" {
		t.Fatalf("unexpected message: %q", errBody["message"])
	}
}

func TestDanglingParentIsBadRequest(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/knitting",
		`{"yarnBatchId":999,"fabricType":"Jersey","weightUsed":50,"fabricProduced":48}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.StatusCode)
	}
	var errBody map[string]string
	decodeBody(t, resp, &errBody)
	if !strings.Contains(errBody["message"], "non-existent") {
		t.Fatalf("unexpected message: %q", errBody["message"])
	}
}

func TestDashboardStatsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/stats", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
	var stats map[string]float64
	decodeBody(t, resp, &stats)
	for _, key := range []string{
		"totalYarnKg", "totalFabricKg", "totalDyedKg", "totalCutPieces",
		"totalStitchedPieces", "totalPackedPieces", "totalBalesShipped",
	} {
		if v, ok := stats[key]; !ok || v != 0 {
			t.Errorf("expected %s present and 0, got %v (present=%v)", key, v, ok)
		}
	}

	resp = doJSON(t, app, http.MethodPost, "/api/yarn",
		`{"batchCode":"YRN-1","color":"Blue","weightKg":500}`)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/dashboard/stats", "")
	decodeBody(t, resp, &stats)
	if stats["totalYarnKg"] != 500 {
		t.Fatalf("expected totalYarnKg 500 got %v", stats["totalYarnKg"])
	}
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"operator1","password":"secret123"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201 got %d", resp.StatusCode)
	}
	var registered struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, resp, &registered)
	if registered.Token == "" || registered.User.Username != "operator1" {
		t.Fatalf("unexpected register response: %+v", registered)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"username":"operator1","password":"secret123"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200 got %d", resp.StatusCode)
	}
	var loggedIn struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, resp, &loggedIn)
	if loggedIn.Token == "" {
		t.Fatal("expected a token")
	}
	if loggedIn.User.LastLogin == nil {
		t.Fatal("expected last login stamped")
	}

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"username":"operator1","password":"wrong"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad password: expected 400 got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestAuthShortPasswordRejected(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"operator1","password":"ab"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestProductionAuthRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	config.APP_ENV = "production"
	defer func() { config.APP_ENV = "development" }()

	resp := doJSON(t, app, http.MethodGet, "/api/yarn", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// A freshly issued token opens the door.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"operator1","password":"secret123"}`)
	var registered struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &registered)

	req := httptest.NewRequest(http.MethodGet, "/api/yarn", nil)
	req.Header.Set("Authorization", "Bearer "+registered.Token)
	authed, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("authed request: %v", err)
	}
	if authed.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with token got %d", authed.StatusCode)
	}
	authed.Body.Close()
}

func TestRawMaterialEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/raw-materials",
		`{"vendor":"Dye Works","materialType":"Reactive Dye","quantity":25,"unit":"kg","costPerUnit":12,"totalCost":300}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d", resp.StatusCode)
	}
	var created models.RawMaterialPurchase
	decodeBody(t, resp, &created)
	if created.PaymentStatus != "pending" {
		t.Fatalf("expected default pending got %q", created.PaymentStatus)
	}

	resp = doJSON(t, app, http.MethodDelete, "/api/raw-materials/"+strconv.Itoa(int(created.ID)), "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: expected 204 got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestReportExportIsAnAttachment(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/yarn",
		`{"batchCode":"YRN-1","color":"Blue","weightKg":500}`)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/reports/production", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
	disposition := resp.Header.Get("Content-Disposition")
	if !strings.Contains(disposition, "attachment") || !strings.Contains(disposition, ".xlsx") {
		t.Fatalf("unexpected disposition: %q", disposition)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(body) == 0 {
		t.Fatal("expected a workbook body")
	}
}
