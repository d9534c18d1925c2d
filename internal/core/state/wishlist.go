package state

import (
	"context"
	"log/slog"
	"slices"
)

// wishlistState is purely local: toggles apply immediately and are
// persisted through the local store, never synced with the backend.
type wishlistState struct {
	ids map[int]struct{}
}

func (s *Store) WishlistIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlistIDsLocked()
}

func (s *Store) wishlistIDsLocked() []int {
	ids := make([]int, 0, len(s.wishlist.ids))
	for id := range s.wishlist.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *Store) InWishlist(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.wishlist.ids[productID]
	return ok
}

// ToggleWishlist flips membership immediately; the persistence write is
// best-effort and a failure does not undo the toggle.
func (s *Store) ToggleWishlist(ctx context.Context, productID int) {
	const op = "state.Store.ToggleWishlist"
	log := slog.With("op", op)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wishlist.ids[productID]; ok {
		delete(s.wishlist.ids, productID)
	} else {
		s.wishlist.ids[productID] = struct{}{}
	}

	if err := s.sessions.SaveWishlist(ctx, s.wishlistIDsLocked()); err != nil {
		log.Warn("failed to persist wishlist", "err", err)
	}
}

func (s *Store) ClearWishlist(ctx context.Context) {
	const op = "state.Store.ClearWishlist"
	log := slog.With("op", op)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlist.ids = make(map[int]struct{})
	if err := s.sessions.SaveWishlist(ctx, nil); err != nil {
		log.Warn("failed to persist wishlist", "err", err)
	}
}

// RestoreWishlist loads the persisted wishlist at startup.
func (s *Store) RestoreWishlist(ctx context.Context) error {
	ids, err := s.sessions.LoadWishlist(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist.ids = make(map[int]struct{}, len(ids))
	for _, id := range ids {
		s.wishlist.ids[id] = struct{}{}
	}
	return nil
}
