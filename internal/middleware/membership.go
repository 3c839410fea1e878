package middleware

import (
	"errors"
	"net/http"

	"issavie_backend/internal/auth"
	"issavie_backend/internal/models"
	"issavie_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	TripMemberKey = "tripMember"
	TripKey       = "trip"
)

// MembershipMiddleware resolves the caller's active membership for the
// :tripId route param once per request and hangs member and trip on
// the context. A missing or inactive membership is a 404, never a 403:
// non-members must not learn that a trip exists.
func MembershipMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tripID := c.Param("tripId")
		userID := GetUserID(c)
		if tripID == "" || userID == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Trip not found or you are not a member"})
			return
		}

		db, ok := c.Get(string(contextkeys.DBContextKey))
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		var member models.TripMember
		err := db.(*gorm.DB).
			Preload("Trip").
			Where("trip_id = ? AND user_id = ? AND status = ?", tripID, userID, models.MemberStatusActive).
			First(&member).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Trip not found or you are not a member"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(TripMemberKey, &member)
		c.Set(TripKey, member.Trip)
		c.Next()
	}
}

// RequireTripRoles gates a route on the resolved member's role via the
// injected policy. MembershipMiddleware must run earlier in the chain.
func RequireTripRoles(policy auth.AccessPolicy, roles ...models.MemberRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		member := GetTripMember(c)
		if member == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not a trip member"})
			return
		}
		if !policy.Allows(member.Role, roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}

// GetTripMember returns the membership resolved by
// MembershipMiddleware, nil when absent.
func GetTripMember(c *gin.Context) *models.TripMember {
	val, exists := c.Get(TripMemberKey)
	if !exists {
		return nil
	}
	member, ok := val.(*models.TripMember)
	if !ok {
		return nil
	}
	return member
}

// GetTrip returns the trip resolved by MembershipMiddleware.
func GetTrip(c *gin.Context) *models.Trip {
	val, exists := c.Get(TripKey)
	if !exists {
		return nil
	}
	trip, ok := val.(*models.Trip)
	if !ok {
		return nil
	}
	return trip
}
