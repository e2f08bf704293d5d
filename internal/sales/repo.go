package sales

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collection = "sales"

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

// Add persists a new sale, stamping createdAt/updatedAt.
func (r *Repo) Add(ctx context.Context, s Sale) (*Sale, error) {
	if s.AgentUID == "" {
		return nil, fmt.Errorf("agentUid required")
	}

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	ref, _, err := r.fs.Collection(collection).Add(ctx, s)
	if err != nil {
		return nil, err
	}
	s.ID = ref.ID
	return &s, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Sale, error) {
	doc, err := r.fs.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return decode(doc)
}

// Update overwrites the given fields and refreshes updatedAt.
func (r *Repo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})

	_, err := r.fs.Collection(collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.fs.Collection(collection).Doc(id).Delete(ctx)
	return err
}

// All returns every sale, most recent saleDate first.
func (r *Repo) All(ctx context.Context) ([]Sale, error) {
	q := r.fs.Collection(collection).OrderBy("saleDate", firestore.Desc)
	return r.query(ctx, q)
}

// ForDate returns the whole team's sales for one day.
func (r *Repo) ForDate(ctx context.Context, day time.Time) ([]Sale, error) {
	start, end := DayBounds(day)
	q := r.fs.Collection(collection).
		Where("saleDate", ">=", start).
		Where("saleDate", "<=", end).
		OrderBy("saleDate", firestore.Desc)
	return r.query(ctx, q)
}

// ForAgentMonth returns one agent's sales inside the given month.
func (r *Repo) ForAgentMonth(ctx context.Context, agentUID string, year int, month time.Month) ([]Sale, error) {
	start, end := MonthBounds(year, month)
	q := r.fs.Collection(collection).
		Where("agentUid", "==", agentUID).
		Where("saleDate", ">=", start).
		Where("saleDate", "<=", end).
		OrderBy("saleDate", firestore.Desc)
	return r.query(ctx, q)
}

// ForMonth returns every agent's sales inside the given month.
func (r *Repo) ForMonth(ctx context.Context, year int, month time.Month) ([]Sale, error) {
	start, end := MonthBounds(year, month)
	q := r.fs.Collection(collection).
		Where("saleDate", ">=", start).
		Where("saleDate", "<=", end)
	return r.query(ctx, q)
}

// Recent returns the latest n sales by creation time, for the activity feed.
func (r *Repo) Recent(ctx context.Context, n int) ([]Sale, error) {
	if n <= 0 {
		n = 30
	}
	q := r.fs.Collection(collection).OrderBy("createdAt", firestore.Desc).Limit(n)
	return r.query(ctx, q)
}

// RefsByAgent lists the document refs of every sale authored by the agent,
// for the privileged full-deletion flow to batch together with the profile.
func (r *Repo) RefsByAgent(ctx context.Context, agentUID string) ([]*firestore.DocumentRef, error) {
	iter := r.fs.Collection(collection).Where("agentUid", "==", agentUID).Documents(ctx)
	defer iter.Stop()

	refs := []*firestore.DocumentRef{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		refs = append(refs, doc.Ref)
	}
	return refs, nil
}

func (r *Repo) query(ctx context.Context, q firestore.Query) ([]Sale, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	out := []Sale{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		s, err := decode(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

func decode(doc *firestore.DocumentSnapshot) (*Sale, error) {
	var s Sale
	if err := doc.DataTo(&s); err != nil {
		return nil, err
	}
	s.ID = doc.Ref.ID
	return &s, nil
}
