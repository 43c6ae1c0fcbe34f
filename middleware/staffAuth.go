package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	staffRepo "shelterhub/database/repository/staff"
	"shelterhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthStaffMiddleware authenticates portal requests. Tokens are issued by
// the identity service with the staff account id as subject; this middleware
// resolves the account's organization and scopes every downstream handler to
// it. Lookups are cached in Redis so steady traffic does not hit Mongo.
func JWTAuthStaffMiddleware(staff staffRepo.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		ctx := context.Background()

		// Retrieve token from header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		// Signature and expiry are checked here; the subject is the staff id.
		staffID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || staffID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		cacheKey := utils.AuthCachePrefix + staffID

		// Get the dedicated auth cache client.
		authCache := utils.GetAuthCacheClient()
		cacheEnabled := true
		if authCache == nil {
			// Instead of aborting, log and treat it as a cache miss.
			log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
			cacheEnabled = false
		}

		// Attempt to resolve the organization from Redis if cache is enabled.
		if cacheEnabled {
			orgID, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && orgID != "" {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set("staffID", staffID)
				c.Set("orgID", orgID)
				c.Next()
				return
			} else if err != nil && err != redis.Nil {
				// Log any other error and proceed to DB lookup.
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
			}
		}

		// Cache miss: Query the database.
		account, err := staff.GetByID(ctx, staffID)
		if err != nil || account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
			})
			return
		}
		if !account.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Account disabled",
			})
			return
		}
		if account.OrganizationID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Account is not linked to an organization",
			})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, account.OrganizationID, utils.AuthCacheTTL).Err()
		}

		c.Set("staffID", staffID)
		c.Set("orgID", account.OrganizationID)
		c.Next()
	}
}
