package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/adilbek-m/saudalink/internal/client/api"
	"github.com/adilbek-m/saudalink/internal/client/models"
	"github.com/adilbek-m/saudalink/internal/client/session"
	"github.com/adilbek-m/saudalink/internal/client/storage"
	"github.com/adilbek-m/saudalink/internal/logging"
)

// ---- helpers ----

// stubInputs queues answers for the sequential text prompts and fixes the
// password. Returns a restore func.
func stubInputs(t *testing.T, answers []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

type fakeAuthSvc struct {
	regReq    api.RegisterRequest
	regUser   *models.User
	regErr    error
	loginUser string
	loginPass string
	loginErr  error
	logoutN   int
	logoutErr error
	current   *models.User
	currErr   error
	loggedIn  bool
}

func (f *fakeAuthSvc) Register(_ context.Context, req api.RegisterRequest) (*models.User, error) {
	f.regReq = req
	if f.regErr != nil {
		return nil, f.regErr
	}
	if f.regUser == nil {
		f.regUser = &models.User{Email: req.Email}
	}
	return f.regUser, nil
}

func (f *fakeAuthSvc) Login(_ context.Context, email, password string) error {
	f.loginUser, f.loginPass = email, password
	if f.loginErr == nil {
		f.loggedIn = true
	}
	return f.loginErr
}

func (f *fakeAuthSvc) Logout(context.Context) error {
	f.logoutN++
	if f.logoutErr == nil {
		f.loggedIn = false
	}
	return f.logoutErr
}

func (f *fakeAuthSvc) CurrentUser(context.Context) (*models.User, error) {
	return f.current, f.currErr
}

func (f *fakeAuthSvc) IsAuthenticated() bool { return f.loggedIn }

// ---- tests ----

func TestRegister_Success(t *testing.T) {
	muteOutput(t)
	f := &fakeAuthSvc{}
	a := &App{auth: f, log: logging.Nop()}

	restore := stubInputs(t, []string{"alice@example.kz", "Alice", "Satpayeva", "TOO Alma"}, []byte("secret"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regReq.Email != "alice@example.kz" {
		t.Fatalf("Register email mismatch: %q", f.regReq.Email)
	}
	if f.regReq.Password != "secret" {
		t.Fatalf("Register password mismatch: %q", f.regReq.Password)
	}
	if f.regReq.CompanyName != "TOO Alma" {
		t.Fatalf("Register company mismatch: %q", f.regReq.CompanyName)
	}
}

func TestLogin_Success(t *testing.T) {
	muteOutput(t)
	f := &fakeAuthSvc{}
	a := &App{auth: f, log: logging.Nop()}

	restore := stubInputs(t, []string{"bob@example.kz"}, []byte("hunter2"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginUser != "bob@example.kz" || f.loginPass != "hunter2" {
		t.Fatalf("Login credentials mismatch: %q / %q", f.loginUser, f.loginPass)
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected logged-in state after Login")
	}
}

func TestLogin_ErrorPropagates(t *testing.T) {
	muteOutput(t)
	f := &fakeAuthSvc{loginErr: errors.New("bad credentials")}
	a := &App{auth: f, log: logging.Nop()}

	restore := stubInputs(t, []string{"bob@example.kz"}, []byte("wrong"))
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatalf("want error from Login")
	}
	if a.isLoggedIn() {
		t.Fatalf("must not be logged in after failed Login")
	}
}

func TestLogout(t *testing.T) {
	muteOutput(t)
	f := &fakeAuthSvc{loggedIn: true}
	a := &App{auth: f, log: logging.Nop()}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if f.logoutN != 1 {
		t.Fatalf("Logout not delegated")
	}
	if a.isLoggedIn() {
		t.Fatalf("still logged in after Logout")
	}
}

func TestWhoAmI_NotLoggedIn(t *testing.T) {
	muteOutput(t)
	f := &fakeAuthSvc{currErr: errors.New("must not be called")}
	a := &App{auth: f, log: logging.Nop()}

	if err := a.WhoAmI(context.Background()); err != nil {
		t.Fatalf("WhoAmI err: %v", err)
	}
}

func TestWhoAmI_ShowsProfile(t *testing.T) {
	muteOutput(t)
	f := &fakeAuthSvc{
		loggedIn: true,
		current:  &models.User{Email: "alice@example.kz", FirstName: "Alice", CompanyName: "TOO Alma"},
	}
	a := &App{auth: f, session: session.New(storage.NewMemoryKV(), nil), log: logging.Nop()}

	if err := a.WhoAmI(context.Background()); err != nil {
		t.Fatalf("WhoAmI err: %v", err)
	}
}
