package wardrobe

import "context"

// Repository encapsulates wardrobe storage. An empty user id addresses the
// shared default wardrobe used for anonymous requests.
type Repository interface {
	ListItems(ctx context.Context, userID string) ([]Item, error)
	InsertItem(ctx context.Context, userID string, item Item) (Item, error)
}
