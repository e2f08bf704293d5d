package admin

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// FirebaseAuthAdmin adapts the Firebase Admin client to the AuthAdmin
// interface the gateway depends on.
type FirebaseAuthAdmin struct {
	client *auth.Client
}

func NewFirebaseAuthAdmin(client *auth.Client) *FirebaseAuthAdmin {
	return &FirebaseAuthAdmin{client: client}
}

func (a *FirebaseAuthAdmin) PasswordResetLink(ctx context.Context, email string) (string, error) {
	return a.client.PasswordResetLink(ctx, email)
}

func (a *FirebaseAuthAdmin) DeleteUser(ctx context.Context, uid string) error {
	err := a.client.DeleteUser(ctx, uid)
	if auth.IsUserNotFound(err) {
		// Already gone counts as deleted.
		return nil
	}
	return err
}
