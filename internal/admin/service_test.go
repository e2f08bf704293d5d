package admin

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nio-salesdesk/salesdesk-backend/internal/files"
)

type fakeStore struct {
	roles        map[string]string
	roleErr      error
	deletedSales int
	deleteErr    error

	paths      []string
	msgCount   int
	deletedMsg int

	queue      map[string]bool
	enqueueErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		roles: map[string]string{"admin1": "admin", "agent1": "agent"},
		queue: map[string]bool{},
	}
}

func (f *fakeStore) Role(ctx context.Context, uid string) (string, error) {
	if f.roleErr != nil {
		return "", f.roleErr
	}
	return f.roles[uid], nil
}

func (f *fakeStore) DeleteUserData(ctx context.Context, uid string) (int, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	return f.deletedSales, nil
}

func (f *fakeStore) GroupChatSnapshot(ctx context.Context) ([]string, int, error) {
	return f.paths, f.msgCount, nil
}

func (f *fakeStore) DeleteGroupMessages(ctx context.Context) (int, error) {
	f.deletedMsg = f.msgCount
	return f.msgCount, nil
}

func (f *fakeStore) EnqueueCredentialDeletion(ctx context.Context, uid string) error {
	if f.enqueueErr != nil {
		return f.enqueueErr
	}
	f.queue[uid] = true
	return nil
}

func (f *fakeStore) QueuedCredentialDeletions(ctx context.Context) ([]string, error) {
	out := []string{}
	for uid := range f.queue {
		out = append(out, uid)
	}
	return out, nil
}

func (f *fakeStore) DequeueCredentialDeletion(ctx context.Context, uid string) error {
	delete(f.queue, uid)
	return nil
}

type fakeAuth struct {
	resetLink string
	resetErr  error
	deleteErr error
	deleted   []string
}

func (f *fakeAuth) PasswordResetLink(ctx context.Context, email string) (string, error) {
	return f.resetLink, f.resetErr
}

func (f *fakeAuth) DeleteUser(ctx context.Context, uid string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, uid)
	return nil
}

type fakeFiles struct {
	deleted []string
	errFor  map[string]error
}

func (f *fakeFiles) Delete(ctx context.Context, path string) error {
	if err := f.errFor[path]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, path)
	return nil
}

func newTestService() (*Service, *fakeStore, *fakeAuth, *fakeFiles) {
	store := newFakeStore()
	authFake := &fakeAuth{resetLink: "https://reset.example/link"}
	filesFake := &fakeFiles{errFor: map[string]error{}}
	return NewService(store, authFake, filesFake), store, authFake, filesFake
}

func code(t *testing.T, err error) string {
	t.Helper()
	var ge *Error
	require.ErrorAs(t, err, &ge)
	return ge.Code
}

func TestPreconditionChain(t *testing.T) {
	svc, store, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SendPasswordReset(ctx, "", "x@y.com")
	assert.Equal(t, CodeUnauthenticated, code(t, err))

	_, err = svc.SendPasswordReset(ctx, "agent1", "x@y.com")
	assert.Equal(t, CodePermissionDenied, code(t, err))

	// No profile at all is also denied, not an internal error.
	_, err = svc.SendPasswordReset(ctx, "stranger", "x@y.com")
	assert.Equal(t, CodePermissionDenied, code(t, err))

	store.roleErr = errors.New("firestore down")
	_, err = svc.SendPasswordReset(ctx, "admin1", "x@y.com")
	assert.Equal(t, CodeInternal, code(t, err))
}

func TestArgumentsCheckedBeforeRole(t *testing.T) {
	svc, store, _, _ := newTestService()
	ctx := context.Background()

	// A non-admin with a bad argument gets invalid-argument, not
	// permission-denied: arguments are validated before the role lookup.
	_, err := svc.SendPasswordReset(ctx, "agent1", "")
	assert.Equal(t, CodeInvalidArgument, code(t, err))

	_, err = svc.DeleteUserAndData(ctx, "agent1", "")
	assert.Equal(t, CodeInvalidArgument, code(t, err))

	// The bad-argument path must not touch the store at all.
	store.roleErr = errors.New("firestore down")
	_, err = svc.SendPasswordReset(ctx, "admin1", "not-an-email")
	assert.Equal(t, CodeInvalidArgument, code(t, err))
}

func TestSendPasswordReset(t *testing.T) {
	svc, _, authFake, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SendPasswordReset(ctx, "admin1", "  ")
	assert.Equal(t, CodeInvalidArgument, code(t, err))

	_, err = svc.SendPasswordReset(ctx, "admin1", "not-an-email")
	assert.Equal(t, CodeInvalidArgument, code(t, err))

	res, err := svc.SendPasswordReset(ctx, "admin1", "agent@nio.com")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "https://reset.example/link", res.Link)

	authFake.resetErr = errors.New("auth unavailable")
	_, err = svc.SendPasswordReset(ctx, "admin1", "agent@nio.com")
	assert.Equal(t, CodeInternal, code(t, err))
}

func TestDeleteUserAndData(t *testing.T) {
	svc, store, authFake, _ := newTestService()
	ctx := context.Background()
	store.deletedSales = 12

	_, err := svc.DeleteUserAndData(ctx, "admin1", "")
	assert.Equal(t, CodeInvalidArgument, code(t, err))

	_, err = svc.DeleteUserAndData(ctx, "admin1", "admin1")
	assert.Equal(t, CodeInvalidArgument, code(t, err))

	res, err := svc.DeleteUserAndData(ctx, "admin1", "agent1")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"agent1"}, authFake.deleted)
	assert.Empty(t, store.queue)
}

func TestDeleteUserQueuesCredentialOnAuthFailure(t *testing.T) {
	svc, store, authFake, _ := newTestService()
	ctx := context.Background()
	authFake.deleteErr = errors.New("auth unavailable")

	res, err := svc.DeleteUserAndData(ctx, "admin1", "agent1")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, store.queue["agent1"])
}

func TestDeleteUserDataFailure(t *testing.T) {
	svc, store, _, _ := newTestService()
	store.deleteErr = errors.New("firestore down")

	_, err := svc.DeleteUserAndData(context.Background(), "admin1", "agent1")
	assert.Equal(t, CodeInternal, code(t, err))
}

func TestClearGroupChatEmpty(t *testing.T) {
	svc, store, _, filesFake := newTestService()

	res, err := svc.ClearGroupChat(context.Background(), "admin1")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Zero(t, store.deletedMsg)
	assert.Empty(t, filesFake.deleted)
}

func TestClearGroupChat(t *testing.T) {
	svc, store, _, filesFake := newTestService()
	store.msgCount = 5
	store.paths = []string{"uploads/group-chat/1_a.png", "uploads/group-chat/2_b.pdf"}
	// One attachment fails; the wipe must still finish.
	filesFake.errFor["uploads/group-chat/1_a.png"] = errors.New("storage glitch")

	res, err := svc.ClearGroupChat(context.Background(), "admin1")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"uploads/group-chat/2_b.pdf"}, filesFake.deleted)
	assert.Equal(t, 5, store.deletedMsg)
}

func TestClearGroupChatMissingAttachmentIsQuiet(t *testing.T) {
	svc, store, _, filesFake := newTestService()
	store.msgCount = 2
	store.paths = []string{"uploads/group-chat/1_gone.png", "uploads/group-chat/2_broken.pdf"}
	filesFake.errFor["uploads/group-chat/1_gone.png"] = files.ErrNotFound
	filesFake.errFor["uploads/group-chat/2_broken.pdf"] = errors.New("storage glitch")

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	res, err := svc.ClearGroupChat(context.Background(), "admin1")
	require.NoError(t, err)
	assert.True(t, res.Success)

	// Already-gone attachments are expected, only real failures get logged.
	assert.NotContains(t, buf.String(), "1_gone.png")
	assert.Contains(t, buf.String(), "2_broken.pdf")
}

func TestSweepCredentialDeletions(t *testing.T) {
	svc, store, authFake, _ := newTestService()
	ctx := context.Background()
	store.queue["gone1"] = true
	store.queue["gone2"] = true

	svc.SweepCredentialDeletions(ctx)
	assert.Empty(t, store.queue)
	assert.Len(t, authFake.deleted, 2)

	// Still-failing deletions stay queued for the next run.
	store.queue["stuck"] = true
	authFake.deleteErr = errors.New("auth unavailable")
	svc.SweepCredentialDeletions(ctx)
	assert.True(t, store.queue["stuck"])
}

func TestWrapAndHTTPStatus(t *testing.T) {
	tagged := E(CodeNotFound, "não encontrado")
	assert.Same(t, tagged, Wrap(tagged, "ignored").(*Error))
	assert.Nil(t, Wrap(nil, "ignored"))

	wrapped := Wrap(errors.New("boom"), "algo deu errado")
	assert.Equal(t, CodeInternal, code(t, wrapped))

	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(E(CodeUnauthenticated, "")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(E(CodeInvalidArgument, "")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(E(CodePermissionDenied, "")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(E(CodeNotFound, "")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(E(CodeInternal, "")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("untagged")))
}
