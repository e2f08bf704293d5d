package users

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collection = "users"

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

// CreateProfile writes the profile document for a freshly signed-up user.
// The document id is the Firebase Auth UID.
func (r *Repo) CreateProfile(ctx context.Context, uid, email, name, th string) (*User, error) {
	if uid == "" {
		return nil, fmt.Errorf("uid required")
	}

	u := User{
		UID:       uid,
		Email:     email,
		Name:      name,
		TH:        th,
		Role:      RoleAgent,
		SalesGoal: DefaultSalesGoal,
		Status:    StatusPending,
	}

	if _, err := r.fs.Collection(collection).Doc(uid).Set(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) Get(ctx context.Context, uid string) (*User, error) {
	doc, err := r.fs.Collection(collection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var u User
	if err := doc.DataTo(&u); err != nil {
		return nil, err
	}
	u.UID = doc.Ref.ID
	return &u, nil
}

// Agents returns every user with the agent role.
func (r *Repo) Agents(ctx context.Context) ([]User, error) {
	return r.query(ctx, r.fs.Collection(collection).Where("role", "==", RoleAgent))
}

// Pending returns every user awaiting admin approval.
func (r *Repo) Pending(ctx context.Context) ([]User, error) {
	return r.query(ctx, r.fs.Collection(collection).Where("status", "==", StatusPending))
}

func (r *Repo) All(ctx context.Context) ([]User, error) {
	return r.query(ctx, r.fs.Collection(collection).Query)
}

func (r *Repo) query(ctx context.Context, q firestore.Query) ([]User, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	out := []User{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var u User
		if err := doc.DataTo(&u); err != nil {
			return nil, err
		}
		// The document id is authoritative even when the uid field is absent.
		u.UID = doc.Ref.ID
		out = append(out, u)
	}
	return out, nil
}

// UpdateProfile applies the non-nil fields of upd to the user document.
func (r *Repo) UpdateProfile(ctx context.Context, uid string, upd ProfileUpdate) error {
	updates := []firestore.Update{}
	if upd.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *upd.Name})
	}
	if upd.TH != nil {
		updates = append(updates, firestore.Update{Path: "th", Value: *upd.TH})
	}
	if upd.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: *upd.Status})
	}
	if upd.SalesGoal != nil {
		updates = append(updates, firestore.Update{Path: "salesGoal", Value: *upd.SalesGoal})
	}
	if len(updates) == 0 {
		return nil
	}

	_, err := r.fs.Collection(collection).Doc(uid).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func (r *Repo) SetSalesGoal(ctx context.Context, uid string, goal int) error {
	_, err := r.fs.Collection(collection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "salesGoal", Value: goal},
	})
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

// Approve moves a pending user to active.
func (r *Repo) Approve(ctx context.Context, uid string) error {
	_, err := r.fs.Collection(collection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "status", Value: StatusActive},
	})
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}
