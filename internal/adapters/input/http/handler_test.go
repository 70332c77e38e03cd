package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"jewelshop/internal/domain"

	"github.com/gofiber/fiber/v2"
	_ "github.com/stoolap/stoolap/pkg/driver"
)

type fakeCatalogService struct {
	products    []domain.ProductResponse
	listErr     error
	checkoutErr error
	lastRequest *domain.CheckoutRequest
}

func (f *fakeCatalogService) ListProducts() ([]domain.ProductResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeCatalogService) Checkout(request domain.CheckoutRequest) error {
	f.lastRequest = &request
	return f.checkoutErr
}

func newTestApp(srv *fakeCatalogService, db *sql.DB) *fiber.App {
	hdl := New(srv, db)
	app := fiber.New()
	app.Get("/health", hdl.HealthCheck)
	app.Get("/api/products", hdl.ListProducts)
	app.Post("/api/checkout", hdl.Checkout)
	return app
}

// TestListProductsReturnsCatalogAsJSONArray tests that the endpoint serves
// the catalog as a bare JSON array.
func TestListProductsReturnsCatalogAsJSONArray(t *testing.T) {
	srv := &fakeCatalogService{products: []domain.ProductResponse{
		{ID: 1, Name: "Gold Ring", Price: 500, Image: "/rijng.webp", Weight: 300},
	}}
	app := newTestApp(srv, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	var products []domain.ProductResponse
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		t.Fatalf("expected a JSON array body, got %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].Name != "Gold Ring" || products[0].Image != "/rijng.webp" {
		t.Errorf("unexpected product: %+v", products[0])
	}
}

// TestListProductsEmptyCatalogSerializesAsEmptyArray tests that an empty
// catalog comes back as [] rather than null.
func TestListProductsEmptyCatalogSerializesAsEmptyArray(t *testing.T) {
	srv := &fakeCatalogService{products: []domain.ProductResponse{}}
	app := newTestApp(srv, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("expected no error reading body, got %v", err)
	}
	if strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("expected body [], got %q", body)
	}
}

// TestListProductsServiceFailure tests the 500 shape on a service error.
func TestListProductsServiceFailure(t *testing.T) {
	srv := &fakeCatalogService{listErr: errors.New("store unavailable")}
	app := newTestApp(srv, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("expected a JSON error body, got %v", err)
	}
	if body.Error != "store unavailable" {
		t.Errorf("expected the error message in the body, got %q", body.Error)
	}
}

// TestCheckoutForwardsOrderToService tests the happy checkout path.
func TestCheckoutForwardsOrderToService(t *testing.T) {
	srv := &fakeCatalogService{}
	app := newTestApp(srv, nil)

	payload := `{"items":[{"name":"Gold Ring","price":500,"quantity":2}],"total":1000}`
	req := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if srv.lastRequest == nil {
		t.Fatal("expected the order to reach the service")
	}
	if len(srv.lastRequest.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(srv.lastRequest.Items))
	}
	item := srv.lastRequest.Items[0]
	if item.Name != "Gold Ring" || item.Price != 500 || item.Quantity != 2 {
		t.Errorf("unexpected item: %+v", item)
	}
	if srv.lastRequest.Total != 1000 {
		t.Errorf("expected total 1000, got %v", srv.lastRequest.Total)
	}
}

// TestCheckoutRejectsEmptyOrder tests that validation blocks an order with no
// items before it reaches the service.
func TestCheckoutRejectsEmptyOrder(t *testing.T) {
	srv := &fakeCatalogService{}
	app := newTestApp(srv, nil)

	req := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(`{"items":[],"total":0}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
	if srv.lastRequest != nil {
		t.Error("expected the order never to reach the service")
	}
}

// TestCheckoutRejectsMalformedBody tests the 400 path for non-JSON input.
func TestCheckoutRejectsMalformedBody(t *testing.T) {
	srv := &fakeCatalogService{}
	app := newTestApp(srv, nil)

	req := httptest.NewRequest("POST", "/api/checkout", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
}

// TestCheckoutServiceFailure tests that a failed push surfaces as 500.
func TestCheckoutServiceFailure(t *testing.T) {
	srv := &fakeCatalogService{checkoutErr: errors.New("telegram unreachable")}
	app := newTestApp(srv, nil)

	payload := `{"items":[{"name":"Gold Ring","price":500,"quantity":1}],"total":500}`
	req := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", resp.StatusCode)
	}
}

// TestHealthCheckReportsDatabaseStatus tests the health endpoint against a
// live in-memory database.
func TestHealthCheckReportsDatabaseStatus(t *testing.T) {
	db, err := sql.Open("stoolap", "memory://")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	defer db.Close()

	app := newTestApp(&fakeCatalogService{}, db)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
}
