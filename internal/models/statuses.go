package models

type MemberRole string
type MemberStatus string
type ChangeRequestStatus string
type CommentEntityType string

const (
	RoleOrganizer   MemberRole = "organizer"
	RoleCoOrganizer MemberRole = "co_organizer"
	RoleMember      MemberRole = "member"

	MemberStatusActive  MemberStatus = "active"
	MemberStatusRemoved MemberStatus = "removed"

	ChangeRequestPending  ChangeRequestStatus = "pending"
	ChangeRequestApproved ChangeRequestStatus = "approved"
	ChangeRequestDenied   ChangeRequestStatus = "denied"

	CommentOnItineraryItem CommentEntityType = "itinerary_item"
	CommentOnAnnouncement  CommentEntityType = "announcement"
)

// ValidRole reports whether s is one of the three member roles.
func ValidRole(s string) bool {
	switch MemberRole(s) {
	case RoleOrganizer, RoleCoOrganizer, RoleMember:
		return true
	}
	return false
}

// ValidCommentEntityType reports whether s names a commentable entity.
func ValidCommentEntityType(s string) bool {
	switch CommentEntityType(s) {
	case CommentOnItineraryItem, CommentOnAnnouncement:
		return true
	}
	return false
}
