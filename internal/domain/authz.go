package domain

// Operation classifies what a requester wants to do with a resource.
type Operation int

const (
	OpRead Operation = iota
	OpUpdate
	OpDelete
)

// Owned is implemented by resources whose mutation is restricted to a single
// owning user. A user profile owns itself; a post is owned by its author.
type Owned interface {
	OwnerID() int64
}

// Authorize decides whether the requester may perform op on the resource.
// Reads are open to any authenticated identity. Updates and deletes require
// the requester to be the owner and fail with ErrForbidden otherwise, which
// callers must keep distinct from not-found and unauthenticated signals.
func Authorize(requesterID int64, resource Owned, op Operation) error {
	if op == OpRead {
		return nil
	}
	if resource.OwnerID() != requesterID {
		return ErrForbidden
	}
	return nil
}
