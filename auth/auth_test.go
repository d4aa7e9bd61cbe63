package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func credentials(t *testing.T, tokenURL string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "credentials.json")
	json := fmt.Sprintf(`{
	  "installed": {
	    "client_id":     "qwerty.apps.googleusercontent.com",
	    "client_secret": "uiop",
	    "auth_uri":      "https://accounts.google.com/o/oauth2/auth",
	    "token_uri":     "%s",
	    "redirect_uris": ["http://localhost"]
	  }
	}`, tokenURL)

	if err := os.WriteFile(file, []byte(json), 0600); err != nil {
		t.Fatalf("Error creating credentials file (%v)", err)
	}

	return file
}

func TestTokenFile(t *testing.T) {
	file := TokenFile(filepath.Join("etc", ".google", "credentials.json"), "workdir")
	expected := filepath.Join("workdir", ".google", "credentials.sheets")

	if file != expected {
		t.Errorf("Incorrect tokens file - expected:%v, got:%v", expected, file)
	}
}

func TestSaveToken(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", ".google", "credentials.sheets")
	token := oauth2.Token{
		AccessToken:  "access",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
		Expiry:       time.Date(2030, time.January, 1, 12, 0, 0, 0, time.UTC),
	}

	if err := saveToken(file, &token); err != nil {
		t.Fatalf("Unexpected error saving token (%v)", err)
	}

	info, err := os.Stat(file)
	if err != nil {
		t.Fatalf("Tokens file not created (%v)", err)
	} else if info.Mode().Perm() != 0600 {
		t.Errorf("Incorrect tokens file permissions - expected:%v, got:%v", os.FileMode(0600), info.Mode().Perm())
	}

	loaded, err := tokenFromFile(file)
	if err != nil {
		t.Fatalf("Unexpected error loading token (%v)", err)
	}

	if loaded.AccessToken != token.AccessToken || loaded.RefreshToken != token.RefreshToken || !loaded.Expiry.Equal(token.Expiry) {
		t.Errorf("Incorrect token\n   expected: %+v\n   got:      %+v", token, *loaded)
	}
}

func TestAuthorizeWithoutCredentials(t *testing.T) {
	dir := t.TempDir()

	_, err := Authorize(context.Background(), filepath.Join(dir, "missing.json"), filepath.Join(dir, "tokens"), SHEETS)
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("Expected ErrNoCredentials, got %v", err)
	}
}

func TestAuthorizeWithoutTokens(t *testing.T) {
	credentials := credentials(t, "https://oauth2.googleapis.com/token")
	tokens := filepath.Join(t.TempDir(), "credentials.sheets")

	if _, err := Authorize(context.Background(), credentials, tokens, SHEETS); !errors.Is(err, ErrNotAuthorised) {
		t.Errorf("Expected ErrNotAuthorised, got %v", err)
	}
}

func TestAuthorize(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, r.Header.Get("Authorization"))
	}))
	defer api.Close()

	credentials := credentials(t, "https://oauth2.googleapis.com/token")
	tokens := filepath.Join(t.TempDir(), "credentials.sheets")
	token := oauth2.Token{
		AccessToken:  "qwerty",
		TokenType:    "Bearer",
		RefreshToken: "uiop",
		Expiry:       time.Now().Add(time.Hour),
	}

	if err := saveToken(tokens, &token); err != nil {
		t.Fatalf("Error saving token (%v)", err)
	}

	client, err := Authorize(context.Background(), credentials, tokens, SHEETS)
	if err != nil {
		t.Fatalf("Unexpected error authorizing (%v)", err)
	}

	response, err := client.Get(api.URL)
	if err != nil {
		t.Fatalf("Unexpected error making request (%v)", err)
	}
	defer response.Body.Close()

	header, _ := io.ReadAll(response.Body)
	if string(header) != "Bearer qwerty" {
		t.Errorf("Incorrect Authorization header - expected:%v, got:%v", "Bearer qwerty", string(header))
	}
}

func TestRefreshedTokensArePersisted(t *testing.T) {
	tokens := filepath.Join(t.TempDir(), "credentials.sheets")
	source := persistent{
		file:   tokens,
		source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "refreshed", RefreshToken: "uiop"}),
		last:   &oauth2.Token{AccessToken: "expired", RefreshToken: "uiop"},
	}

	if _, err := source.Token(); err != nil {
		t.Fatalf("Unexpected error retrieving token (%v)", err)
	}

	token, err := tokenFromFile(tokens)
	if err != nil {
		t.Fatalf("Refreshed token not saved (%v)", err)
	}

	if token.AccessToken != "refreshed" {
		t.Errorf("Incorrect saved token - expected:%v, got:%v", "refreshed", token.AccessToken)
	}
}

func TestUnchangedTokensAreNotRewritten(t *testing.T) {
	tokens := filepath.Join(t.TempDir(), "credentials.sheets")
	token := oauth2.Token{AccessToken: "qwerty"}
	source := persistent{
		file:   tokens,
		source: oauth2.StaticTokenSource(&token),
		last:   &token,
	}

	if _, err := source.Token(); err != nil {
		t.Fatalf("Unexpected error retrieving token (%v)", err)
	}

	if _, err := os.Stat(tokens); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected tokens file not to be written, got %v", err)
	}
}

func TestAuthorise(t *testing.T) {
	var code string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		code = r.FormValue("code")

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"access_token":"qwerty","token_type":"Bearer","refresh_token":"uiop","expires_in":3600}`)
	}))
	defer srv.Close()

	credentials := credentials(t, srv.URL)
	tokens := filepath.Join(t.TempDir(), ".google", "credentials.sheets")

	var out strings.Builder
	if err := Authorise(context.Background(), credentials, tokens, SHEETS, strings.NewReader("4/abcdef\n"), &out); err != nil {
		t.Fatalf("Unexpected error authorising (%v)", err)
	}

	if code != "4/abcdef" {
		t.Errorf("Incorrect authorisation code exchanged - expected:%v, got:%v", "4/abcdef", code)
	}

	if !strings.Contains(out.String(), "access_type=offline") {
		t.Errorf("Expected offline access in consent URL, got:\n%s", out.String())
	}

	token, err := tokenFromFile(tokens)
	if err != nil {
		t.Fatalf("Tokens file not created (%v)", err)
	}

	if token.AccessToken != "qwerty" || token.RefreshToken != "uiop" {
		t.Errorf("Incorrect saved token %+v", *token)
	}
}
