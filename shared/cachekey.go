package shared

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"jaruri/shared/cache"
	"jaruri/shared/constant"
	"jaruri/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key for a list query from its pagination and filter
// set, so that distinct queries never collide on one cache entry.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	hasher := fnv.New64a()
	fmt.Fprintf(hasher, "%d|%d|%s|%s|%s|%v", params.Page, params.Limit, params.SortBy, params.SortDir, where, args)

	return fmt.Sprintf("%s%s%x", prefix, cacheKeySeparator, hasher.Sum64())
}

// InvalidateCaches drops every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
