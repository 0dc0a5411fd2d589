package application

import (
	"fmt"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
)

var (
	ErrUserNotFound = fmt.Errorf("user %w", repository.ErrNotFound)
	ErrPostNotFound = fmt.Errorf("post %w", repository.ErrNotFound)
)
