package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "github.com/Souvikgooooo/ThrivePro/database/repository/user"
	"github.com/Souvikgooooo/ThrivePro/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Context keys set by JWTAuthMiddleware for downstream handlers.
const (
	CtxActorID   = "actorID"
	CtxActorRole = "actorRole"
)

const (
	authCachePrefix = "auth:"
	authCacheTTL    = 15 * time.Minute
)

// JWTAuthMiddleware validates the bearer token against the stored token hash,
// with a Redis authorization cache (sliding TTL) in front of the user lookup.
// On success it sets the actor's id and role in the request context.
func JWTAuthMiddleware(users userRepo.UserRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Extract the actor ID from the token.
		actorID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || actorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Invalid token"})
			return
		}

		// Compute the token hash.
		computedHash := utils.HashToken(tokenString)
		cacheKey := authCachePrefix + computedHash

		// Check the authorization cache.
		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			// Refresh TTL (sliding expiration) and proceed.
			if err := authCache.Expire(ctx, cacheKey, authCacheTTL).Err(); err != nil {
				logger.Error("Failed to refresh auth cache TTL", zap.Error(err))
			}
			c.Set(CtxActorID, actorID)
			c.Set(CtxActorRole, cached)
			c.Next()
			return
		} else if err != nil && err != redis.Nil {
			logger.Error("Error checking auth cache", zap.Error(err))
		}

		// Cache miss: query the user repository.
		proj := bson.M{"id": 1, "role": 1, "token_hash": 1}
		account, err := users.GetByIDWithProjection(actorID, proj)
		if err != nil || account == nil {
			logger.Error("Account not found when validating token", zap.String("actorID", actorID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Account not found"})
			return
		}

		// Validate the token hash.
		if computedHash != account.TokenHash {
			logger.Error("Token hash mismatch", zap.String("actorID", actorID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Token mismatch"})
			return
		}

		// Successful validation: cache the role under the token hash.
		if err := authCache.Set(ctx, cacheKey, account.Role, authCacheTTL).Err(); err != nil {
			logger.Error("Failed to set auth cache", zap.Error(err))
		}

		c.Set(CtxActorID, actorID)
		c.Set(CtxActorRole, account.Role)
		c.Next()
	}
}
