package service

import (
	"context"
	"errors"
	"pix-recovery/internal/model"
	"pix-recovery/internal/repository"
	"strings"
	"testing"
)

func TestGenerateUnknownCart(t *testing.T) {
	db := newTestDB(t)
	transactionRepo := repository.NewPixTransactionRepository(db)
	svc := NewPixService(repository.NewCartRepository(db), transactionRepo, "chave@pix.com")

	_, err := svc.Generate(context.Background(), 42, "pay now")
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("err = %v, want ErrCartNotFound", err)
	}

	var count int64
	if err := db.Model(&model.PixTransaction{}).Count(&count).Error; err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	if count != 0 {
		t.Errorf("got %d transaction rows, want none", count)
	}
}

func TestGenerateFromStoredCart(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	ctx := context.Background()

	// ingest the cart the way production does: through the reconciler
	webhookSvc := NewWebhookService(cartRepo, "")
	if err := webhookSvc.HandleEvent(ctx, checkoutEvent("R1", "payment", "")); err != nil {
		t.Fatalf("ingest webhook: %v", err)
	}

	var cart model.AbandonedCart
	if err := db.Where("reference = ?", "R1").First(&cart).Error; err != nil {
		t.Fatalf("load cart: %v", err)
	}

	svc := NewPixService(cartRepo, repository.NewPixTransactionRepository(db), "chave@pix.com")

	resp, err := svc.Generate(ctx, cart.ID, "pay now")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.Contains(resp.PixCode, "540549.90") {
		t.Errorf("code %q missing amount segment 540549.90", resp.PixCode)
	}
	if !strings.Contains(resp.PixCode, "pay now") {
		t.Errorf("code %q missing description", resp.PixCode)
	}
	if !strings.HasPrefix(resp.PixURL, "https://api.qrserver.com/") {
		t.Errorf("pix url = %q, want qrserver rendering URL", resp.PixURL)
	}
	if resp.TransactionID == 0 {
		t.Error("transaction id not assigned")
	}

	var transactions []model.PixTransaction
	if err := db.Find(&transactions).Error; err != nil {
		t.Fatalf("load transactions: %v", err)
	}
	if len(transactions) != 1 {
		t.Fatalf("got %d transaction rows, want 1", len(transactions))
	}

	tx := transactions[0]
	if tx.OrderReference != "R1" {
		t.Errorf("order reference = %s, want R1", tx.OrderReference)
	}
	if tx.CustomerEmail != "a@b.com" || tx.Value != 49.9 || tx.Description != "pay now" {
		t.Errorf("snapshot fields wrong: %+v", tx)
	}
	if tx.Status != "pending" {
		t.Errorf("status = %s, want pending", tx.Status)
	}
	if tx.PixCode != resp.PixCode {
		t.Errorf("stored code differs from returned code")
	}
}

func TestGenerateDefaultDescription(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	ctx := context.Background()

	webhookSvc := NewWebhookService(cartRepo, "")
	if err := webhookSvc.HandleEvent(ctx, checkoutEvent("R7", "payment", "")); err != nil {
		t.Fatalf("ingest webhook: %v", err)
	}

	var cart model.AbandonedCart
	if err := db.Where("reference = ?", "R7").First(&cart).Error; err != nil {
		t.Fatalf("load cart: %v", err)
	}

	svc := NewPixService(cartRepo, repository.NewPixTransactionRepository(db), "chave@pix.com")

	resp, err := svc.Generate(ctx, cart.ID, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.Contains(resp.PixCode, "Pagamento carrinho R7") {
		t.Errorf("code %q missing templated default description", resp.PixCode)
	}
}
