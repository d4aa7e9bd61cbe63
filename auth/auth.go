// Package auth loads and persists the OAuth2 tokens used to access the Google Sheets API.
//
// The OAuth2 protocol itself (code exchange, refresh) is delegated to golang.org/x/oauth2;
// this package only keeps the token file in step with the tokens that library issues.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	SHEETS          = "https://www.googleapis.com/auth/spreadsheets"
	SHEETS_READONLY = "https://www.googleapis.com/auth/spreadsheets.readonly"
)

var (
	ErrNoCredentials = errors.New("no credentials file")
	ErrNotAuthorised = errors.New("not authorised - run 'authorise' to create a tokens file")
)

// TokenFile returns the default tokens file for a credentials file, i.e.
// <workdir>/.google/<credentials>.sheets
func TokenFile(credentials, workdir string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(workdir, ".google", fmt.Sprintf("%s.sheets", name))
}

// Authorize returns an HTTP client that authenticates with the tokens stored in the
// tokens file. Tokens refreshed by the client are written back to the file.
func Authorize(ctx context.Context, credentials, tokens, scope string) (*http.Client, error) {
	config, err := configFromFile(credentials, scope)
	if err != nil {
		return nil, err
	}

	token, err := tokenFromFile(tokens)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w (%s)", ErrNotAuthorised, tokens)
	} else if err != nil {
		return nil, fmt.Errorf("invalid tokens file %s (%w)", tokens, err)
	}

	source := persistent{
		file:   tokens,
		source: config.TokenSource(ctx, token),
		last:   token,
	}

	return oauth2.NewClient(ctx, oauth2.ReuseTokenSource(token, &source)), nil
}

// Authorise runs the first time authorisation: the user opens the consent URL written to
// out and pastes the authorisation code into in. The issued tokens are saved to the
// tokens file.
func Authorise(ctx context.Context, credentials, tokens, scope string, in io.Reader, out io.Writer) error {
	config, err := configFromFile(credentials, scope)
	if err != nil {
		return err
	}

	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)

	fmt.Fprintf(out, "Open the following link in your browser:\n%v\n\n", url)
	fmt.Fprintf(out, "Enter verification code: ")

	var code string
	if _, err := fmt.Fscan(in, &code); err != nil {
		return fmt.Errorf("unable to read authorisation code (%w)", err)
	}

	token, err := config.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return fmt.Errorf("unable to retrieve token from web (%w)", err)
	}

	if err := saveToken(tokens, token); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nTokens saved to %s\n", tokens)

	return nil
}

func configFromFile(credentials, scope string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentials)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w (%s)", ErrNoCredentials, credentials)
	} else if err != nil {
		return nil, err
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials file %s (%w)", credentials, err)
	}

	return config, nil
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

// Saves a token to a file path, creating the directory if necessary.
func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth token (%w)", err)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}

// persistent wraps a token source and writes every newly issued token to file.
type persistent struct {
	sync.Mutex
	file   string
	source oauth2.TokenSource
	last   *oauth2.Token
}

func (p *persistent) Token() (*oauth2.Token, error) {
	token, err := p.source.Token()
	if err != nil {
		return nil, err
	}

	p.Lock()
	defer p.Unlock()

	if p.last == nil || token.AccessToken != p.last.AccessToken {
		if err := saveToken(p.file, token); err != nil {
			return nil, err
		}

		p.last = token
	}

	return token, nil
}
