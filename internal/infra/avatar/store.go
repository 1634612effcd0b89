package avatar

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Store keeps avatar objects and returns their public URL.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

func NewKey(userID uint) string {
	return fmt.Sprintf("avatars/%d/%s.webp", userID, uuid.NewString())
}
