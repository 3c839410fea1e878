package apperrors

import "net/http"

// Domain error factories. Grouped by the resource they belong to so
// services do not hand-assemble codes and HTTP statuses.

// --- auth ---

func ErrInvalidMagicLink() *AppError {
	return New(CodeInvalidToken, "auth", "Invalid or expired link", http.StatusBadRequest)
}

func ErrInvalidCredentialsToken() *AppError {
	return New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
}

// --- trip / membership ---

// ErrTripNotVisible is returned both when the trip does not exist and
// when the caller is not an active member. The two cases are
// deliberately indistinguishable so trip existence does not leak.
func ErrTripNotVisible() *AppError {
	return New(CodeNotFound, "trip", "Trip not found or you are not a member", http.StatusNotFound)
}

func ErrMemberNotFound() *AppError {
	return New(CodeNotFound, "member", "Member not found", http.StatusNotFound)
}

func ErrOnlyOrganizerCanPromote() *AppError {
	return New(CodeForbidden, "member", "Only organizer can promote to organizer", http.StatusBadRequest)
}

func ErrOnlyOrganizerCanDemote() *AppError {
	return New(CodeForbidden, "member", "Only organizer can demote organizer", http.StatusBadRequest)
}

func ErrOnlyOrganizerCanRemove() *AppError {
	return New(CodeForbidden, "member", "Only organizer can remove organizer", http.StatusBadRequest)
}

func ErrMembersCannotRemoveOthers() *AppError {
	return New(CodeForbidden, "member", "Members cannot remove others", http.StatusBadRequest)
}

// --- invites ---

func ErrInvalidInvite() *AppError {
	return New(CodeInvalidToken, "invite", "Invalid or expired invite link", http.StatusBadRequest)
}

// --- itinerary ---

func ErrDayNotFound() *AppError {
	return New(CodeNotFound, "itinerary", "Day not found", http.StatusNotFound)
}

func ErrItemNotFound() *AppError {
	return New(CodeNotFound, "itinerary", "Item not found", http.StatusNotFound)
}

func ErrDayOrDateRequired() *AppError {
	return New(CodeValidationFailed, "itinerary", "day_id or date required", http.StatusBadRequest)
}

// --- change requests ---

func ErrChangeRequestNotFound() *AppError {
	return New(CodeNotFound, "change_request", "Change request not found", http.StatusNotFound)
}

// ErrRequestAlreadyDecided reports the losing side of a decide race or
// a repeated decision. The original surfaces this as a 400, not 409.
func ErrRequestAlreadyDecided() *AppError {
	return New(CodeInvalidStatus, "change_request", "Request already decided", http.StatusBadRequest)
}

func ErrInvalidPatchKeys(keys []string) *AppError {
	return New(CodeValidationFailed, "change_request", "Invalid keys in proposed_patch", http.StatusBadRequest).
		WithDetails(map[string]interface{}{"invalid_keys": keys})
}

// --- announcements / comments ---

func ErrAnnouncementNotFound() *AppError {
	return New(CodeNotFound, "announcement", "Announcement not found", http.StatusNotFound)
}

func ErrCommentNotFound() *AppError {
	return New(CodeNotFound, "comment", "Comment not found", http.StatusNotFound)
}

func ErrNotCommentOwner() *AppError {
	return New(CodeForbidden, "comment", "You can only delete your own comments", http.StatusBadRequest)
}

// --- notifications ---

func ErrNotificationNotFound() *AppError {
	return New(CodeNotFound, "notification", "Not found", http.StatusNotFound)
}
