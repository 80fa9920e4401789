package errors

import "fmt"

var (
	ErrNodeNotFound    = fmt.Errorf("node does not exist")
	ErrUserNotFound    = fmt.Errorf("user not found")
	ErrChatNotFound    = fmt.Errorf("no chat matches the requested members")
	ErrNoProfilePhoto  = fmt.Errorf("user has no profile photo")
	ErrBlobTooLarge    = fmt.Errorf("blob exceeds the fetch size cap")
	ErrInvalidToken    = fmt.Errorf("invalid session token")
	ErrSamePair        = fmt.Errorf("a private chat needs two distinct users")
	ErrEmptyMemberList = fmt.Errorf("a chat needs at least two members")
)

// DecodeError reports a stored node whose shape does not match the record
// type it was decoded into. The path identifies the offending node.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding node %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
