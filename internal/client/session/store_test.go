package session

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenfit/zenfit/internal/client/api"
	"github.com/zenfit/zenfit/internal/client/models"
	"github.com/zenfit/zenfit/internal/client/repositories/credentials"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func persistedToken(t *testing.T, db *sql.DB) string {
	t.Helper()
	var v string
	err := db.QueryRow(`SELECT value FROM credentials WHERE key='token'`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return ""
	}
	require.NoError(t, err)
	return v
}

func authResp(token string, userID int64, email string) *models.AuthResponse {
	return &models.AuthResponse{
		Token: token,
		User:  &models.User{ID: userID, Email: email},
	}
}

// ---- fake client ----

// fakeClient implements api.Client for Store unit tests. Only the auth
// operations matter here; the resource operations are never reached.
type fakeClient struct {
	RegisterResp *models.AuthResponse
	RegisterErr  error

	LoginResp *models.AuthResponse
	LoginErr  error

	// LoginFn, when set, overrides LoginResp/LoginErr. Used to control
	// resolution order in concurrency tests.
	LoginFn func(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)

	mu              sync.Mutex
	LastLoginReq    models.LoginRequest
	LastRegisterReq models.RegisterRequest
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.mu.Lock()
	f.LastRegisterReq = req
	f.mu.Unlock()
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.mu.Lock()
	f.LastLoginReq = req
	f.mu.Unlock()
	if f.LoginFn != nil {
		return f.LoginFn(ctx, req)
	}
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) ListWorkouts(ctx context.Context) ([]models.Workout, error) { return nil, nil }
func (f *fakeClient) GetWorkout(ctx context.Context, id int64) (*models.Workout, error) {
	return nil, nil
}
func (f *fakeClient) CreateWorkout(ctx context.Context, req models.CreateWorkoutRequest) (*models.Workout, error) {
	return nil, nil
}
func (f *fakeClient) DeleteWorkout(ctx context.Context, id int64) error { return nil }
func (f *fakeClient) ListMeals(ctx context.Context, date string) ([]models.Meal, error) {
	return nil, nil
}
func (f *fakeClient) GetMeal(ctx context.Context, id int64) (*models.Meal, error) { return nil, nil }
func (f *fakeClient) CreateMeal(ctx context.Context, req models.CreateMealRequest) (*models.Meal, error) {
	return nil, nil
}
func (f *fakeClient) DeleteMeal(ctx context.Context, id int64) error { return nil }
func (f *fakeClient) DailySummary(ctx context.Context, date string) (*models.DailySummary, error) {
	return nil, nil
}
func (f *fakeClient) Health(ctx context.Context) (*models.HealthStatus, error) { return nil, nil }

func newStore(t *testing.T, fc *fakeClient) (*Store, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	st, err := NewStore(context.Background(), fc, credentials.NewSQLiteRepository(db))
	require.NoError(t, err)
	return st, db
}

// ---- tests ----

func TestLogin_Success(t *testing.T) {
	fc := &fakeClient{LoginResp: authResp("T1", 1, "a@b.com")}
	st, db := newStore(t, fc)
	ctx := context.Background()

	assert.False(t, st.Loading())
	assert.False(t, st.IsAuthenticated())

	err := st.Login(ctx, models.LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	assert.True(t, st.IsAuthenticated())
	assert.Equal(t, "T1", st.Token())
	require.NotNil(t, st.CurrentUser())
	assert.Equal(t, "a@b.com", st.CurrentUser().Email)
	assert.Equal(t, "T1", persistedToken(t, db), "credential must be persisted on change")
	assert.False(t, st.Loading())
}

func TestLogin_FailureKeepsPriorSession(t *testing.T) {
	fc := &fakeClient{LoginResp: authResp("T1", 1, "a@b.com")}
	st, db := newStore(t, fc)
	ctx := context.Background()

	require.NoError(t, st.Login(ctx, models.LoginRequest{Email: "a@b.com", Password: "x"}))

	// Second attempt fails with 401. The store does not intercept 401s in
	// any special way (no auto-logout): prior credential and profile stay.
	fc.LoginResp = nil
	fc.LoginErr = &api.Error{Status: 401, Message: "Invalid credentials"}

	err := st.Login(ctx, models.LoginRequest{Email: "a@b.com", Password: "bad"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())

	assert.True(t, st.IsAuthenticated())
	assert.Equal(t, "T1", st.Token())
	assert.Equal(t, "T1", persistedToken(t, db))
	assert.False(t, st.Loading())
}

func TestLogin_FallbackMessageOnTransportFailure(t *testing.T) {
	fc := &fakeClient{LoginErr: api.ErrUnavailable}
	st, _ := newStore(t, fc)

	err := st.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, "login failed", err.Error())
	assert.ErrorIs(t, err, api.ErrUnavailable, "cause must stay reachable through Unwrap")
	assert.False(t, st.IsAuthenticated())
}

func TestRegister_Success(t *testing.T) {
	fc := &fakeClient{RegisterResp: authResp("T2", 2, "new@b.com")}
	st, db := newStore(t, fc)

	err := st.Register(context.Background(), models.RegisterRequest{
		FirstName: "Jane", Email: "new@b.com", Password: "x",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane", fc.LastRegisterReq.FirstName)
	assert.True(t, st.IsAuthenticated())
	assert.Equal(t, "T2", persistedToken(t, db))
}

func TestRegister_FailureUsesServerMessage(t *testing.T) {
	fc := &fakeClient{RegisterErr: &api.Error{Status: 409, Message: "Cet email est déjà utilisé"}}
	st, _ := newStore(t, fc)

	err := st.Register(context.Background(), models.RegisterRequest{Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, "Cet email est déjà utilisé", err.Error())

	var apiErr *api.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.False(t, st.IsAuthenticated())
	assert.False(t, st.Loading())
}

func TestRegister_FallbackMessage(t *testing.T) {
	fc := &fakeClient{RegisterErr: &api.Error{Status: 500}}
	st, _ := newStore(t, fc)

	err := st.Register(context.Background(), models.RegisterRequest{Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, "registration failed", err.Error())
}

func TestLogout_IsIdempotent(t *testing.T) {
	fc := &fakeClient{LoginResp: authResp("T1", 1, "a@b.com")}
	st, db := newStore(t, fc)
	ctx := context.Background()

	require.NoError(t, st.Login(ctx, models.LoginRequest{Email: "a@b.com", Password: "x"}))
	require.NoError(t, st.Logout(ctx))

	assert.False(t, st.IsAuthenticated())
	assert.Nil(t, st.CurrentUser())
	assert.Empty(t, persistedToken(t, db), "persisted entry must be removed on logout")

	// Logging out again ends in the same state without error.
	require.NoError(t, st.Logout(ctx))
	assert.False(t, st.IsAuthenticated())
	assert.Nil(t, st.CurrentUser())
	assert.Empty(t, persistedToken(t, db))
}

func TestNewStore_RestoresPersistedCredential(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO credentials (key, value) VALUES ('token', 'T9')`)
	require.NoError(t, err)

	st, err := NewStore(context.Background(), &fakeClient{}, credentials.NewSQLiteRepository(db))
	require.NoError(t, err)

	assert.True(t, st.IsAuthenticated())
	assert.Equal(t, "T9", st.Token())
	// The profile is not persisted; it stays empty until the next login.
	assert.Nil(t, st.CurrentUser())
}

func TestLoading_TrueWhileCallInFlight(t *testing.T) {
	fc := &fakeClient{}
	st, _ := newStore(t, fc)

	fc.LoginFn = func(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
		assert.True(t, st.Loading(), "loading must be set for the duration of the call")
		return authResp("T1", 1, req.Email), nil
	}

	require.NoError(t, st.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "x"}))
	assert.False(t, st.Loading())
}

// Overlapping logins are not serialized: no cancellation, and the last
// response to resolve wins the credential and profile.
func TestLogin_ConcurrentLastResolutionWins(t *testing.T) {
	fc := &fakeClient{}
	st, db := newStore(t, fc)

	gateA := make(chan struct{})
	gateB := make(chan struct{})
	fc.LoginFn = func(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
		switch req.Email {
		case "a@b.com":
			<-gateA
			return authResp("TA", 1, req.Email), nil
		default:
			<-gateB
			return authResp("TB", 2, req.Email), nil
		}
	}

	done := make(chan error, 2)
	// B is issued first but resolves first here; A resolves last.
	go func() {
		done <- st.Login(context.Background(), models.LoginRequest{Email: "b@b.com", Password: "x"})
	}()
	go func() {
		done <- st.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "x"})
	}()

	close(gateB)
	require.Eventually(t, func() bool { return st.Token() == "TB" },
		2*time.Second, 10*time.Millisecond)

	close(gateA)
	require.NoError(t, <-done)
	require.NoError(t, <-done)

	assert.Equal(t, "TA", st.Token(), "last resolution wins")
	require.NotNil(t, st.CurrentUser())
	assert.Equal(t, "a@b.com", st.CurrentUser().Email)
	assert.Equal(t, "TA", persistedToken(t, db))
	assert.False(t, st.Loading())
}
