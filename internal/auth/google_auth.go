package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

const (
	// OAuth client secret, downloaded from the Google Cloud console.
	credentialFile = "credential.json"
	// Cached login session.
	tokenFile = "token.json"
)

// Token returns a raw access token for the current identity, for use as a
// bearer token against the store API. The first call walks the browser
// consent flow and caches the result in token.json; later calls refresh
// silently. The tracker only ever asks for the user's email; everything it
// gates on is "is this the allowed identity".
func Token() (string, error) {
	b, err := os.ReadFile(credentialFile)
	if err != nil {
		return "", fmt.Errorf("read client secret file: %w", err)
	}
	config, err := google.ConfigFromJSON(b, oauth2api.UserinfoEmailScope)
	if err != nil {
		return "", fmt.Errorf("parse client secret file: %w", err)
	}
	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		tok = getTokenFromWeb(config)
		saveToken(tokenFile, tok)
	}
	fresh, err := config.TokenSource(context.Background(), tok).Token()
	if err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	return fresh.AccessToken, nil
}

// VerifyToken resolves an access token to the email it belongs to, using the
// public tokeninfo endpoint. The caller decides whether that identity is
// allowed.
func VerifyToken(ctx context.Context, accessToken string) (string, error) {
	svc, err := oauth2api.NewService(ctx, option.WithoutAuthentication())
	if err != nil {
		return "", fmt.Errorf("create oauth2 service: %w", err)
	}
	info, err := svc.Tokeninfo().AccessToken(accessToken).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("tokeninfo: %w", err)
	}
	return info.Email, nil
}

// Request a token from the web, then return the retrieved token.
func getTokenFromWeb(config *oauth2.Config) *oauth2.Token {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("\n---------------------------------------------------------\n")
	fmt.Printf("OPEN THIS LINK TO AUTHORIZE ACCESS:\n%v\n", authURL)
	fmt.Printf("---------------------------------------------------------\n")
	fmt.Printf("Paste the code here: ")

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		log.Fatalf("Unable to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), authCode)
	if err != nil {
		log.Fatalf("Unable to retrieve token from web: %v", err)
	}
	return tok
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) {
	fmt.Printf("Saving credential file to: %s\n", path)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Unable to cache oauth token: %v", err)
	}
	defer f.Close()
	json.NewEncoder(f).Encode(token)
}
