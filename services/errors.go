package services

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// DomainError is a failure the caller can act on. Code is stable and
// machine-readable; Status is the HTTP status it maps to.
type DomainError struct {
	Code    string
	Status  int
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches on Code so that errors carrying a custom message still compare
// equal to their sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// WithMessage returns a copy of e with a more specific message.
func (e *DomainError) WithMessage(msg string) *DomainError {
	return &DomainError{Code: e.Code, Status: e.Status, Message: msg}
}

var (
	ErrNotFound                = &DomainError{"NOT_FOUND", http.StatusNotFound, "resource not found"}
	ErrCategoryInUse           = &DomainError{"CATEGORY_IN_USE", http.StatusConflict, "category has products and cannot be deleted"}
	ErrSubcategoryInUse        = &DomainError{"SUBCATEGORY_IN_USE", http.StatusConflict, "subcategory has products and cannot be deleted"}
	ErrAttributeInUse          = &DomainError{"ATTRIBUTE_IN_USE", http.StatusConflict, "attribute is assigned to products and cannot be deleted"}
	ErrLocationInUse           = &DomainError{"LOCATION_IN_USE", http.StatusConflict, "location is referenced by shops and cannot be deleted"}
	ErrDuplicateAttributeValue = &DomainError{"DUPLICATE_ATTRIBUTE_VALUE", http.StatusConflict, "attribute already has this value"}
	ErrDuplicate               = &DomainError{"DUPLICATE", http.StatusConflict, "resource already exists"}
	ErrEmailTaken              = &DomainError{"EMAIL_TAKEN", http.StatusConflict, "email is already registered"}
	ErrLocationAccessDenied    = &DomainError{"LOCATION_ACCESS_DENIED", http.StatusForbidden, "you cannot change the location of this shop"}
	ErrShopAccessDenied        = &DomainError{"SHOP_ACCESS_DENIED", http.StatusForbidden, "you do not own this shop"}
	ErrProductAccessDenied     = &DomainError{"PRODUCT_ACCESS_DENIED", http.StatusForbidden, "you do not own this product"}
	ErrInsufficientStock       = &DomainError{"INSUFFICIENT_STOCK", http.StatusUnprocessableEntity, "not enough stock"}
	ErrInvalidReference        = &DomainError{"INVALID_REFERENCE", http.StatusUnprocessableEntity, "referenced resource does not exist"}
	ErrInvalidCredentials      = &DomainError{"INVALID_CREDENTIALS", http.StatusUnauthorized, "invalid email or password"}
)

// AsDomainError unwraps err to a *DomainError.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// translateStoreError maps GORM errors onto domain errors. Anything else is
// returned unchanged.
func translateStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInvalidReference
	}
	return err
}
