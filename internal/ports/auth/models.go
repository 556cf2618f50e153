package auth

// Claims identifica al dueño que hace el request.
type Claims struct {
	UserID string
	Email  string
}
