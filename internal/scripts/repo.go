package scripts

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection = "users"
	scriptsSub      = "scripts"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) col(uid string) *firestore.CollectionRef {
	return r.fs.Collection(usersCollection).Doc(uid).Collection(scriptsSub)
}

// ForUser returns the user's scripts ordered by their display position.
func (r *Repo) ForUser(ctx context.Context, uid string) ([]Script, error) {
	iter := r.col(uid).OrderBy("order", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	out := []Script{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var s Script
		if err := doc.DataTo(&s); err != nil {
			return nil, err
		}
		s.ID = doc.Ref.ID
		out = append(out, s)
	}
	return out, nil
}

func (r *Repo) Add(ctx context.Context, uid string, s Script) (*Script, error) {
	ref, _, err := r.col(uid).Add(ctx, s)
	if err != nil {
		return nil, err
	}
	s.ID = ref.ID
	return &s, nil
}

func (r *Repo) Update(ctx context.Context, uid, scriptID string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	_, err := r.col(uid).Doc(scriptID).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func (r *Repo) Delete(ctx context.Context, uid, scriptID string) error {
	_, err := r.col(uid).Doc(scriptID).Delete(ctx)
	return err
}

// SeedDefaults writes the starter set in one batch, but only when the user
// has no scripts yet. Reports whether seeding happened.
func (r *Repo) SeedDefaults(ctx context.Context, uid string) (bool, error) {
	iter := r.col(uid).Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == nil {
		return false, nil
	}
	if err != iterator.Done {
		return false, err
	}

	batch := r.fs.Batch()
	for _, s := range DefaultScripts() {
		batch.Set(r.col(uid).NewDoc(), s)
	}
	if _, err := batch.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
