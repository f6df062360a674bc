package handler

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"pix-recovery/internal/model"
	"pix-recovery/internal/repository"
	"pix-recovery/internal/service"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newWebhookFixture(t *testing.T) (*WebhookHandler, *gorm.DB) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.AbandonedCart{}, &model.PixTransaction{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	svc := service.NewWebhookService(repository.NewCartRepository(db), "")
	return NewWebhookHandler(svc), db
}

func postWebhook(t *testing.T, h *WebhookHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/yever-webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.HandleYeverWebhook(e.NewContext(req, rec)); err != nil {
		e.HTTPErrorHandler(err, e.NewContext(req, rec))
	}
	return rec
}

func TestWebhookMissingToken(t *testing.T) {
	h, db := newWebhookFixture(t)

	rec := postWebhook(t, h, `{"reference":"R1","last_step":"payment"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := rec.Body.String(); got != "Token inválido" {
		t.Errorf("body = %q, want %q", got, "Token inválido")
	}

	var count int64
	if err := db.Model(&model.AbandonedCart{}).Count(&count).Error; err != nil {
		t.Fatalf("count carts: %v", err)
	}
	if count != 0 {
		t.Errorf("got %d rows, want none", count)
	}
}

func TestWebhookQualifyingEvent(t *testing.T) {
	h, db := newWebhookFixture(t)

	body := `{
		"token": "t1",
		"reference": "R1",
		"customer": {"email": "a@b.com", "name": "A", "phone": "123"},
		"products": [{"sku": "X", "qty": 1}],
		"price_total": 49.9,
		"checkout_url": "https://x/ck/1",
		"created_at": "2024-01-01",
		"updated_at": "2024-01-02",
		"last_step": "payment",
		"order_status": null
	}`
	rec := postWebhook(t, h, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "Webhook recebido" {
		t.Errorf("body = %q, want %q", got, "Webhook recebido")
	}

	var cart model.AbandonedCart
	if err := db.Where("reference = ?", "R1").First(&cart).Error; err != nil {
		t.Fatalf("load cart: %v", err)
	}
	if cart.Status != "abandoned" {
		t.Errorf("status = %s, want abandoned", cart.Status)
	}
	if cart.PriceTotal != 49.9 {
		t.Errorf("price total = %v, want 49.9", cart.PriceTotal)
	}
}

func TestWebhookNonQualifyingEventStillAccepted(t *testing.T) {
	h, db := newWebhookFixture(t)

	rec := postWebhook(t, h, `{"token":"t1","reference":"R1","last_step":"payment","order_status":"paid"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (sender must not retry)", rec.Code)
	}

	var count int64
	if err := db.Model(&model.AbandonedCart{}).Count(&count).Error; err != nil {
		t.Fatalf("count carts: %v", err)
	}
	if count != 0 {
		t.Errorf("got %d rows, want none", count)
	}
}
