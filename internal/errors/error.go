// Package errors provides custom error types for storefront operations.
package errors

import "errors"

var ErrEmptyCart = errors.New("checkout requires at least one line item")
