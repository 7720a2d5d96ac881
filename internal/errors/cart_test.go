package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestStorageUnavailable(t *testing.T) {
	cause := errors.New("permission denied")
	err := StorageUnavailable("file", "/ro/storage.json", cause)

	if !errors.Is(err, ErrStorage) {
		t.Error("StorageUnavailable should return ErrStorage")
	}
	if !errors.Is(err, cause) {
		t.Error("Should wrap the cause")
	}
	if err.Details["driver"] != "file" || err.Details["path"] != "/ro/storage.json" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestCartCorrupt(t *testing.T) {
	err := CartCorrupt("sweet-cakes-cart", errors.New("invalid character"))

	if !errors.Is(err, ErrStorage) {
		t.Error("CartCorrupt should return ErrStorage")
	}
	if !strings.Contains(err.Error(), "sweet-cakes-cart") {
		t.Errorf("Error() should name the key, got %q", err.Error())
	}
}

func TestProductNotFound(t *testing.T) {
	err := ProductNotFound("99")

	if !errors.Is(err, ErrNotFound) {
		t.Error("ProductNotFound should return ErrNotFound")
	}
	if err.Details["product_id"] != "99" {
		t.Error("Should include product id in details")
	}
}

func TestCatalogInvalid(t *testing.T) {
	err := CatalogInvalid("cakes.yaml", "duplicate product id \"1\"")

	if !errors.Is(err, ErrCatalog) {
		t.Error("CatalogInvalid should return ErrCatalog")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Error() = %q, want message included", err.Error())
	}
}

func TestInvalidQuantity(t *testing.T) {
	err := InvalidQuantity("two")

	if !errors.Is(err, ErrCart) {
		t.Error("InvalidQuantity should return ErrCart")
	}
	if !strings.Contains(err.Error(), `"two"`) {
		t.Errorf("Error() = %q, want quoted value", err.Error())
	}
}

func TestInvalidItem(t *testing.T) {
	err := InvalidItem("neg", "negative price")

	if !errors.Is(err, ErrCart) {
		t.Error("InvalidItem should return ErrCart")
	}
	if err.Details["product_id"] != "neg" {
		t.Errorf("Details[product_id] = %q, want neg", err.Details["product_id"])
	}
	if !strings.Contains(err.Error(), "negative price") {
		t.Errorf("Error() = %q, want reason", err.Error())
	}
}
