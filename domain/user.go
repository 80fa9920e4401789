package domain

// User is the account record as stored under /users/{id}. Records are
// created by the registration flow, which lives outside this service; this
// codebase only reads them.
type User struct {
	ID            string
	Username      string
	ProfilePicURL string
}

// HasProfilePhoto reports whether a blob reference is set. An empty
// reference means "no photo", not a broken one.
func (u User) HasProfilePhoto() bool {
	return u.ProfilePicURL != ""
}

// Photo is a fetched and validated profile picture, ready to serve.
type Photo struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}
