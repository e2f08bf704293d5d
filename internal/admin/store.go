package admin

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/nio-salesdesk/salesdesk-backend/internal/chat"
	"github.com/nio-salesdesk/salesdesk-backend/internal/sales"
	"github.com/nio-salesdesk/salesdesk-backend/internal/users"
)

const deletionQueueCollection = "deletion-queue"

// FirestoreStore implements Store over the live collections.
type FirestoreStore struct {
	fs    *firestore.Client
	users *users.Repo
	sales *sales.Repo
	chat  *chat.Repo
}

func NewFirestoreStore(fs *firestore.Client, userRepo *users.Repo, saleRepo *sales.Repo, chatRepo *chat.Repo) *FirestoreStore {
	return &FirestoreStore{fs: fs, users: userRepo, sales: saleRepo, chat: chatRepo}
}

func (s *FirestoreStore) Role(ctx context.Context, uid string) (string, error) {
	u, err := s.users.Get(ctx, uid)
	if errors.Is(err, users.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

// DeleteUserData removes the target's sales and profile in one atomic
// batch, so a crash mid-deletion cannot leave orphaned sales or a profile
// without its data. Only the credential step may fail independently.
func (s *FirestoreStore) DeleteUserData(ctx context.Context, uid string) (int, error) {
	refs, err := s.sales.RefsByAgent(ctx, uid)
	if err != nil {
		return 0, err
	}

	batch := s.fs.Batch()
	for _, ref := range refs {
		batch.Delete(ref)
	}
	batch.Delete(s.fs.Collection("users").Doc(uid))

	if _, err := batch.Commit(ctx); err != nil {
		return 0, err
	}
	return len(refs), nil
}

func (s *FirestoreStore) GroupChatSnapshot(ctx context.Context) ([]string, int, error) {
	messages, err := s.chat.AllGroupMessages(ctx)
	if err != nil {
		return nil, 0, err
	}
	paths := []string{}
	for _, m := range messages {
		if m.FilePath != "" {
			paths = append(paths, m.FilePath)
		}
	}
	return paths, len(messages), nil
}

func (s *FirestoreStore) DeleteGroupMessages(ctx context.Context) (int, error) {
	return s.chat.DeleteAllGroup(ctx)
}

func (s *FirestoreStore) EnqueueCredentialDeletion(ctx context.Context, uid string) error {
	_, err := s.fs.Collection(deletionQueueCollection).Doc(uid).Set(ctx, map[string]interface{}{
		"uid":      uid,
		"queuedAt": time.Now(),
	})
	return err
}

func (s *FirestoreStore) QueuedCredentialDeletions(ctx context.Context) ([]string, error) {
	iter := s.fs.Collection(deletionQueueCollection).Documents(ctx)
	defer iter.Stop()

	out := []string{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, doc.Ref.ID)
	}
	return out, nil
}

func (s *FirestoreStore) DequeueCredentialDeletion(ctx context.Context, uid string) error {
	_, err := s.fs.Collection(deletionQueueCollection).Doc(uid).Delete(ctx)
	return err
}
