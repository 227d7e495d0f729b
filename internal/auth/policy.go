package auth

import "github.com/reyesrichjames/blogappAPI/internal/model"

// Authorization policy: pure decision functions over a verified identity and
// the target resource's ownership field. Handlers resolve resource existence
// first (a missing resource is Not Found, never Forbidden), then consult the
// relevant predicate before mutating.

// CanModifyPost reports whether the identity may update or delete the post:
// the post's author, or any admin.
func CanModifyPost(claims *Claims, post *model.Post) bool {
	if claims == nil {
		return false
	}
	return claims.UserID == post.AuthorID.String() || claims.IsAdmin
}

// CanModifyComment reports whether the identity may delete a comment.
// Comment deletion is admin-only regardless of authorship, deliberately
// asymmetric with the post policy.
func CanModifyComment(claims *Claims) bool {
	return claims != nil && claims.IsAdmin
}

// CanRead always permits: every read surface (posts, comments, popularity
// ranking) is public and carries no identity.
func CanRead() bool {
	return true
}
