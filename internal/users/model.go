package users

import "errors"

const (
	RoleAgent = "agent"
	RoleAdmin = "admin"

	StatusActive   = "active"
	StatusPending  = "pending"
	StatusInactive = "inactive"

	// Monthly goal every new agent starts with.
	DefaultSalesGoal = 26
)

var ErrNotFound = errors.New("user not found")

// User is a sales-team member profile stored in the users collection.
// New profiles are created with role=agent and status=pending; an admin
// approval moves them to active.
type User struct {
	UID       string `json:"uid" firestore:"uid"`
	Email     string `json:"email" firestore:"email"`
	Name      string `json:"name" firestore:"name"`
	TH        string `json:"th" firestore:"th"` // employee code
	Role      string `json:"role" firestore:"role"`
	SalesGoal int    `json:"salesGoal" firestore:"salesGoal"`
	Status    string `json:"status" firestore:"status"`
}

// ProfileUpdate carries the fields an admin may change on an existing
// profile. Nil fields are left untouched; role is fixed at creation and
// is deliberately not part of this struct.
type ProfileUpdate struct {
	Name      *string `json:"name"`
	TH        *string `json:"th"`
	Status    *string `json:"status"`
	SalesGoal *int    `json:"salesGoal"`
}

// NameByUID builds a uid -> display-name map used by the reporting engine.
func NameByUID(list []User) map[string]string {
	m := make(map[string]string, len(list))
	for _, u := range list {
		m[u.UID] = u.Name
	}
	return m
}
