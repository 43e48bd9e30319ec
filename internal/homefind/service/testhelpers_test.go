package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/internal/homefind/store"
	"github.com/lagoshomes/homefind/internal/homefind/store/drivers/sqlite"
	"github.com/lagoshomes/homefind/internal/homefind/token"
	"github.com/lagoshomes/homefind/pkg/cryptox"
	"github.com/lagoshomes/homefind/pkg/jwtx"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "homefind-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

const testBaseURL = "https://homefind.test"

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// capturingMailer records sent messages and can be told to fail.
type capturingMailer struct {
	mu   sync.Mutex
	sent []capturedMail
	fail bool
}

type capturedMail struct {
	To      string
	Subject string
	Body    string
}

var errMailDown = errors.New("mail server unreachable")

func (m *capturingMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errMailDown
	}
	m.sent = append(m.sent, capturedMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *capturingMailer) last(t *testing.T) capturedMail {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent)
	return m.sent[len(m.sent)-1]
}

func (m *capturingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func newAccountService(t *testing.T, st store.Store, mail *capturingMailer) *AccountService {
	t.Helper()
	return &AccountService{
		Store:   st,
		Codec:   token.NewCodec([]byte("test-secret")),
		Mailer:  mail,
		BaseURL: testBaseURL,
	}
}

func newResetService(t *testing.T, st store.Store, mail *capturingMailer) *PasswordResetService {
	t.Helper()
	return &PasswordResetService{
		Store:   st,
		Codec:   token.NewCodec([]byte("test-secret")),
		Mailer:  mail,
		BaseURL: testBaseURL,
	}
}

func newSessionService(t *testing.T, st store.Store) *SessionService {
	t.Helper()
	return &SessionService{
		Store:  st,
		Signer: jwtx.NewSigner([]byte("test-jwt-secret"), "homefind-test", 0),
	}
}

// extractLink pulls the uid and token path segments out of the first link
// in an email body whose path contains marker.
func extractLink(t *testing.T, body, marker string) (uid, tok string) {
	t.Helper()

	i := strings.Index(body, marker)
	require.GreaterOrEqual(t, i, 0, "no %q link in email body", marker)

	parts := strings.SplitN(body[i+len(marker):], "/", 3)
	require.Len(t, parts, 3)
	return parts[0], parts[1]
}

// registerActiveUser registers and activates a user, returning it fresh
// from the store.
func registerActiveUser(t *testing.T, svc *AccountService, mail *capturingMailer, email, username, password string, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterParams{
		Email:    email,
		Username: username,
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	require.NoError(t, reg.DeliveryErr)

	uid, tok := extractLink(t, mail.last(t).Body, "/activate/")
	require.NoError(t, svc.Activate(ctx, uid, tok))

	user, err := svc.Store.Users().GetUserByID(ctx, reg.User.ID)
	require.NoError(t, err)
	return user
}
