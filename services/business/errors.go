package business

import "errors"

var (
	// ErrPathTaken means another business already uses the path
	ErrPathTaken = errors.New("business with this path already exists")
	// ErrBusinessNotFound covers unknown paths and pages of other owners
	ErrBusinessNotFound = errors.New("business not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
)
