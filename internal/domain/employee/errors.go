package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrEmailExists        = errors.New("email already registered")
	ErrEmployeeNotPending = errors.New("employee registration has already been decided")
	ErrInvalidPhotoType   = errors.New("photo must be a jpeg or png image")
)
