// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password too weak")
	ErrUnauthorized       = errors.New("unauthorized")

	// Team-space errors
	ErrTeamSpaceNotFound  = errors.New("team space not found")
	ErrTeamSpaceNameTaken = errors.New("team space with this name already exists")
	ErrMemberNotFound     = errors.New("member not found in team space")
	ErrAlreadyMember      = errors.New("user is already a member of this team space")
	ErrOwnerProtected     = errors.New("the team space owner cannot be removed or reassigned")
	ErrNotMember          = errors.New("only team space members can perform this action")
	ErrNotAdmin           = errors.New("only team space admins can perform this action")
	ErrNotOwner           = errors.New("only the team space owner can perform this action")
	ErrInvalidRole        = errors.New("invalid team space role")

	// Folder and document errors
	ErrFolderNotFound       = errors.New("folder not found")
	ErrFolderNotInTeamSpace = errors.New("folder does not belong to the given team space")
	ErrDocumentNotFound     = errors.New("document not found")

	// Should-be-impossible post-condition failure, surfaced as an internal defect.
	ErrMemberVanished = errors.New("member not found after update")
)
