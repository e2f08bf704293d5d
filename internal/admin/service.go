// Package admin is the gateway for privileged operations. Every entry point
// runs the same precondition chain (authenticated caller, valid arguments,
// admin role) before touching anything, and every failure carries one of
// the gateway error codes.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nio-salesdesk/salesdesk-backend/internal/files"
	"github.com/nio-salesdesk/salesdesk-backend/internal/users"
)

// Store is the persistence the gateway needs, kept narrow so tests can
// fake it.
type Store interface {
	// Role returns the caller's profile role, or "" when no profile exists.
	Role(ctx context.Context, uid string) (string, error)
	// DeleteUserData removes the user's sales and profile, returning how
	// many sales went.
	DeleteUserData(ctx context.Context, uid string) (int, error)
	// GroupChatSnapshot lists the attachment paths in the group chat and
	// how many messages it holds.
	GroupChatSnapshot(ctx context.Context) (paths []string, count int, err error)
	DeleteGroupMessages(ctx context.Context) (int, error)
	// Credential deletions that failed are queued for the sweeper.
	EnqueueCredentialDeletion(ctx context.Context, uid string) error
	QueuedCredentialDeletions(ctx context.Context) ([]string, error)
	DequeueCredentialDeletion(ctx context.Context, uid string) error
}

// AuthAdmin is the slice of the identity provider the gateway uses.
type AuthAdmin interface {
	PasswordResetLink(ctx context.Context, email string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
}

// FileDeleter removes a stored attachment by path.
type FileDeleter interface {
	Delete(ctx context.Context, path string) error
}

// Result is the success envelope of every privileged operation.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Link    string `json:"link,omitempty"`
}

type Service struct {
	store Store
	auth  AuthAdmin
	files FileDeleter
}

func NewService(store Store, auth AuthAdmin, files FileDeleter) *Service {
	return &Service{store: store, auth: auth, files: files}
}

// The precondition chain runs in a fixed order on every operation:
// authenticated caller, then argument validation, then the admin-role
// lookup. Arguments are checked before the role so a bad request never
// costs a profile read.

func (s *Service) requireAuthenticated(callerUID string) error {
	if callerUID == "" {
		return E(CodeUnauthenticated, "Você precisa estar autenticado.")
	}
	return nil
}

func (s *Service) requireAdmin(ctx context.Context, callerUID string) error {
	role, err := s.store.Role(ctx, callerUID)
	if err != nil {
		return Wrap(err, "Não foi possível verificar suas permissões.")
	}
	if role != users.RoleAdmin {
		return E(CodePermissionDenied, "Apenas administradores podem executar esta ação.")
	}
	return nil
}

// SendPasswordReset generates a password-reset link for the given account.
func (s *Service) SendPasswordReset(ctx context.Context, callerUID, email string) (*Result, error) {
	if err := s.requireAuthenticated(callerUID); err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, E(CodeInvalidArgument, "Informe um e-mail válido.")
	}
	if err := s.requireAdmin(ctx, callerUID); err != nil {
		return nil, err
	}

	link, err := s.auth.PasswordResetLink(ctx, email)
	if err != nil {
		return nil, Wrap(err, "Não foi possível gerar o link de redefinição de senha.")
	}
	return &Result{
		Success: true,
		Message: "Link de redefinição de senha gerado com sucesso.",
		Link:    link,
	}, nil
}

// DeleteUserAndData removes the target's sales and profile, then their
// credential. If the credential deletion fails the uid is queued and the
// sweeper retries it; the data deletion still counts as done.
func (s *Service) DeleteUserAndData(ctx context.Context, callerUID, targetUID string) (*Result, error) {
	if err := s.requireAuthenticated(callerUID); err != nil {
		return nil, err
	}
	targetUID = strings.TrimSpace(targetUID)
	if targetUID == "" {
		return nil, E(CodeInvalidArgument, "Informe o usuário a excluir.")
	}
	if targetUID == callerUID {
		return nil, E(CodeInvalidArgument, "Você não pode excluir a própria conta.")
	}
	if err := s.requireAdmin(ctx, callerUID); err != nil {
		return nil, err
	}

	deleted, err := s.store.DeleteUserData(ctx, targetUID)
	if err != nil {
		return nil, Wrap(err, "Não foi possível excluir os dados do usuário.")
	}

	if err := s.auth.DeleteUser(ctx, targetUID); err != nil {
		log.Printf("admin: credential deletion for %s failed, queueing retry: %v", targetUID, err)
		if qErr := s.store.EnqueueCredentialDeletion(ctx, targetUID); qErr != nil {
			return nil, Wrap(qErr, "Os dados foram excluídos, mas a credencial não pôde ser removida.")
		}
		return &Result{
			Success: true,
			Message: fmt.Sprintf("Dados excluídos (%d vendas). A credencial será removida em breve.", deleted),
		}, nil
	}

	return &Result{
		Success: true,
		Message: fmt.Sprintf("Usuário e todos os seus dados foram excluídos (%d vendas).", deleted),
	}, nil
}

// ClearGroupChat wipes the team room: every attachment, then every message.
// A missing attachment is fine, any other file error is logged and the wipe
// continues. An already-empty chat short-circuits successfully.
func (s *Service) ClearGroupChat(ctx context.Context, callerUID string) (*Result, error) {
	if err := s.requireAuthenticated(callerUID); err != nil {
		return nil, err
	}
	if err := s.requireAdmin(ctx, callerUID); err != nil {
		return nil, err
	}

	paths, count, err := s.store.GroupChatSnapshot(ctx)
	if err != nil {
		return nil, Wrap(err, "Não foi possível ler o chat da equipe.")
	}
	if count == 0 {
		return &Result{Success: true, Message: "O chat já está vazio."}, nil
	}

	for _, p := range paths {
		// An already-gone attachment is fine; anything else is logged and
		// the wipe continues.
		if err := s.files.Delete(ctx, p); err != nil && !errors.Is(err, files.ErrNotFound) {
			log.Printf("admin: deleting attachment %s failed: %v", p, err)
		}
	}

	removed, err := s.store.DeleteGroupMessages(ctx)
	if err != nil {
		return nil, Wrap(err, "Não foi possível limpar o chat da equipe.")
	}
	return &Result{
		Success: true,
		Message: fmt.Sprintf("Chat da equipe limpo com sucesso (%d mensagens).", removed),
	}, nil
}

// SweepCredentialDeletions retries every queued credential deletion once.
// Called periodically by the scheduler.
func (s *Service) SweepCredentialDeletions(ctx context.Context) {
	uids, err := s.store.QueuedCredentialDeletions(ctx)
	if err != nil {
		log.Printf("admin: reading deletion queue failed: %v", err)
		return
	}
	for _, uid := range uids {
		if err := s.auth.DeleteUser(ctx, uid); err != nil {
			log.Printf("admin: queued credential deletion for %s still failing: %v", uid, err)
			continue
		}
		if err := s.store.DequeueCredentialDeletion(ctx, uid); err != nil {
			log.Printf("admin: dequeueing %s failed: %v", uid, err)
		}
	}
}
