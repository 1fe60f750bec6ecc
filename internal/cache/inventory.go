package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	profileKeyPrefix = "profile:user:%d"
	postKeyPrefix    = "post:%d"
)

const (
	ProfileTTL = 5 * time.Minute
	PostTTL    = 10 * time.Minute
)

// ProfileKey returns the cache key for a profile looked up by its owning user.
func ProfileKey(userID uint) string {
	return fmt.Sprintf(profileKeyPrefix, userID)
}

// PostKey returns the cache key for a post by id.
func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

// Invalidate removes a key; a nil client makes it a no-op.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateProfile drops the cached profile for the owning user.
func InvalidateProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfileKey(userID))
}

// InvalidatePost drops the cached post.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}
