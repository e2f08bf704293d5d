package chat

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	groupCollection = "group-chat"
	roomsCollection = "direct-messages"
	messagesSub     = "messages"

	// Listings cap at the most recent window; older history is not paged.
	defaultLimit = 100
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

// SendGroup appends a message to the shared team room. The server stamps
// the timestamp.
func (r *Repo) SendGroup(ctx context.Context, m Message) (*Message, error) {
	m.normalize()
	ref, _, err := r.fs.Collection(groupCollection).Add(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = ref.ID
	return &m, nil
}

// GroupMessages returns the group room's latest window, oldest first.
func (r *Repo) GroupMessages(ctx context.Context) ([]Message, error) {
	q := r.fs.Collection(groupCollection).
		OrderBy("timestamp", firestore.Desc).
		Limit(defaultLimit)
	out, err := r.query(ctx, q)
	if err != nil {
		return nil, err
	}
	reverse(out)
	return out, nil
}

// PinnedMessage returns the currently pinned group message, or ErrNotFound
// when nothing is pinned.
func (r *Repo) PinnedMessage(ctx context.Context) (*Message, error) {
	iter := r.fs.Collection(groupCollection).
		Where("isPinned", "==", true).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(doc)
}

// Pin makes the given group message the single pinned one. The transaction
// unpins whatever is currently pinned before pinning the target, so two
// concurrent pins cannot leave the room with more than one.
func (r *Repo) Pin(ctx context.Context, messageID string) error {
	col := r.fs.Collection(groupCollection)
	return r.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		target, err := tx.Get(col.Doc(messageID))
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		pinned, err := tx.Documents(col.Where("isPinned", "==", true)).GetAll()
		if err != nil {
			return err
		}
		for _, doc := range pinned {
			if doc.Ref.ID == target.Ref.ID {
				continue
			}
			if err := tx.Update(doc.Ref, []firestore.Update{{Path: "isPinned", Value: false}}); err != nil {
				return err
			}
		}
		return tx.Update(target.Ref, []firestore.Update{{Path: "isPinned", Value: true}})
	})
}

// Unpin clears the pin flag on the given group message.
func (r *Repo) Unpin(ctx context.Context, messageID string) error {
	_, err := r.fs.Collection(groupCollection).Doc(messageID).
		Update(ctx, []firestore.Update{{Path: "isPinned", Value: false}})
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

// EnsureRoom creates or refreshes the DM room document with its member
// pair. The merge never touches lastMessage or lastRead, so opening a
// conversation cannot clobber its summary.
func (r *Repo) EnsureRoom(ctx context.Context, roomID string, members []string) error {
	_, err := r.fs.Collection(roomsCollection).Doc(roomID).
		Set(ctx, map[string]interface{}{"members": members}, firestore.MergeAll)
	return err
}

// SendDirect writes the message and the room summary in one atomic batch:
// the message insert, the lastMessage preview, and the sender's lastRead
// (sending implies having read the room).
func (r *Repo) SendDirect(ctx context.Context, roomID string, m Message) (*Message, error) {
	m.normalize()

	roomRef := r.fs.Collection(roomsCollection).Doc(roomID)
	msgRef := roomRef.Collection(messagesSub).NewDoc()

	batch := r.fs.Batch()
	batch.Set(msgRef, m)
	batch.Set(roomRef, map[string]interface{}{
		"lastMessage": map[string]interface{}{
			"text":      m.Preview(),
			"senderUid": m.SenderUID,
			"timestamp": firestore.ServerTimestamp,
		},
		"lastRead": map[string]interface{}{
			m.SenderUID: firestore.ServerTimestamp,
		},
	}, firestore.MergeAll)

	if _, err := batch.Commit(ctx); err != nil {
		return nil, err
	}
	m.ID = msgRef.ID
	return &m, nil
}

// DirectMessages returns a DM room's latest window, oldest first.
func (r *Repo) DirectMessages(ctx context.Context, roomID string) ([]Message, error) {
	q := r.fs.Collection(roomsCollection).Doc(roomID).Collection(messagesSub).
		OrderBy("timestamp", firestore.Desc).
		Limit(defaultLimit)
	out, err := r.query(ctx, q)
	if err != nil {
		return nil, err
	}
	reverse(out)
	return out, nil
}

// MarkRead stamps the caller's lastRead for the room with server time.
func (r *Repo) MarkRead(ctx context.Context, roomID, uid string) error {
	_, err := r.fs.Collection(roomsCollection).Doc(roomID).
		Set(ctx, map[string]interface{}{
			"lastRead": map[string]interface{}{uid: firestore.ServerTimestamp},
		}, firestore.MergeAll)
	return err
}

// Room loads one DM room document.
func (r *Repo) Room(ctx context.Context, roomID string) (*Room, error) {
	doc, err := r.fs.Collection(roomsCollection).Doc(roomID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return decodeRoom(doc)
}

// Conversations lists every DM room the user belongs to.
func (r *Repo) Conversations(ctx context.Context, uid string) ([]Room, error) {
	iter := r.fs.Collection(roomsCollection).
		Where("members", "array-contains", uid).
		Documents(ctx)
	defer iter.Stop()

	out := []Room{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		room, err := decodeRoom(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *room)
	}
	return out, nil
}

// AllGroupMessages returns every message in the group room, for the
// privileged clear-chat flow.
func (r *Repo) AllGroupMessages(ctx context.Context) ([]Message, error) {
	return r.query(ctx, r.fs.Collection(groupCollection).Query)
}

// DeleteAllGroup removes every group message document. Each delete's result
// is checked after the writer flushes; the count covers confirmed deletes
// only and the first failure is returned.
func (r *Repo) DeleteAllGroup(ctx context.Context) (int, error) {
	iter := r.fs.Collection(groupCollection).Documents(ctx)
	defer iter.Stop()

	bw := r.fs.BulkWriter(ctx)
	jobs := []*firestore.BulkWriterJob{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			bw.End()
			return 0, err
		}
		job, err := bw.Delete(doc.Ref)
		if err != nil {
			bw.End()
			return 0, err
		}
		jobs = append(jobs, job)
	}
	bw.End()

	deleted := 0
	var firstErr error
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		deleted++
	}
	return deleted, firstErr
}

func (r *Repo) query(ctx context.Context, q firestore.Query) ([]Message, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	out := []Message{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		m, err := decode(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, nil
}

func reverse(list []Message) {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
}

func decode(doc *firestore.DocumentSnapshot) (*Message, error) {
	var m Message
	if err := doc.DataTo(&m); err != nil {
		return nil, err
	}
	m.ID = doc.Ref.ID
	return &m, nil
}

func decodeRoom(doc *firestore.DocumentSnapshot) (*Room, error) {
	var room Room
	if err := doc.DataTo(&room); err != nil {
		return nil, err
	}
	room.ID = doc.Ref.ID
	return &room, nil
}
