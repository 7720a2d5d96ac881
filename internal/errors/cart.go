package errors

import "fmt"

// Storage, catalog and cart error constructors.

// StorageUnavailable creates an error for a storage backend that could not
// be opened, read or written.
func StorageUnavailable(driver, path string, cause error) *Error {
	return &Error{
		Kind:    ErrStorage,
		Message: fmt.Sprintf("%s storage unavailable", driver),
		Cause:   cause,
		Details: map[string]string{
			"driver": driver,
			"path":   path,
		},
		Suggestion: `Check that the storage path is writable, or switch drivers:

  SWEETCAKES_STORAGE_DRIVER=memory sweetcakes cart`,
	}
}

// CartCorrupt creates an error for a stored cart value that cannot be
// decoded. The cart store logs it and starts from an empty cart.
func CartCorrupt(key string, cause error) *Error {
	return &Error{
		Kind:    ErrStorage,
		Message: fmt.Sprintf("stored cart %q is unreadable", key),
		Cause:   cause,
		Details: map[string]string{
			"key": key,
		},
		Suggestion: "The next cart change overwrites the stored value. Run 'sweetcakes cart reset' to delete it now.",
	}
}

// ProductNotFound creates an error when a product ID is not in the catalog.
func ProductNotFound(productID string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("product not found: %s", productID),
		Details: map[string]string{
			"product_id": productID,
		},
		Suggestion: "List available products with: sweetcakes products",
	}
}

// CatalogInvalid creates an error for a catalog file that fails validation.
func CatalogInvalid(path, message string) *Error {
	return &Error{
		Kind:    ErrCatalog,
		Message: fmt.Sprintf("invalid catalog: %s", message),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Each product needs a unique id, a name, a nonnegative price and a rating between 0 and 5.",
	}
}

// InvalidQuantity creates an error for a quantity argument that is not an
// integer.
func InvalidQuantity(value string) *Error {
	return &Error{
		Kind:       ErrCart,
		Message:    fmt.Sprintf("invalid quantity: %q", value),
		Suggestion: "Quantity must be a whole number; 0 or less removes the item.",
	}
}

// InvalidItem creates an error for an item the cart cannot store.
func InvalidItem(productID, reason string) *Error {
	return &Error{
		Kind:    ErrCart,
		Message: fmt.Sprintf("invalid cart item %q: %s", productID, reason),
		Details: map[string]string{
			"product_id": productID,
		},
		Suggestion: "Cart items need a product id and a nonnegative price.",
	}
}
