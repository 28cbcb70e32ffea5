package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"

	"github.com/spf13/cobra"
)

const sessionFileMode = 0o600

// storedSession is the on-disk form of a signed-in principal.
type storedSession struct {
	UserID string        `json:"user_id"`
	Name   string        `json:"name"`
	Role   entities.Role `json:"role"`
	Token  string        `json:"token"`
}

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", os.Getenv("DEPANNEL_PASSWORD"), "Account password (defaults to DEPANNEL_PASSWORD)")
	_ = loginCmd.MarkFlagRequired("email")
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if loginPassword == "" {
		return errors.New("password is required (--password or DEPANNEL_PASSWORD)")
	}
	a, err := newCLIApp()
	if err != nil {
		return err
	}
	p, err := a.client.Login(cmd.Context(), loginEmail, loginPassword)
	if err != nil {
		return err
	}
	if err := saveSession(p); err != nil {
		return err
	}
	fmt.Printf("Signed in as %s (%s, id %s)\n", displayName(p), p.Role, p.UserID)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	p, err := loadSession()
	if err != nil {
		return err
	}
	a, err := newCLIApp()
	if err != nil {
		return err
	}
	if err := a.client.Logout(cmd.Context(), p); err != nil && !errors.Is(err, lifecycle.ErrSessionExpired) {
		return err
	}
	if err := os.Remove(sessionFile()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	fmt.Println("Signed out")
	return nil
}

func sessionFile() string {
	if sessionPath != "" {
		return sessionPath
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "depannel", "session.json")
}

func saveSession(p entities.Principal) error {
	path := sessionFile()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.Marshal(storedSession{UserID: p.UserID, Name: p.Name, Role: p.Role, Token: p.Token})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, sessionFileMode)
}

func loadSession() (entities.Principal, error) {
	data, err := os.ReadFile(sessionFile())
	if errors.Is(err, os.ErrNotExist) {
		return entities.Principal{}, errors.New("not signed in, run depannelctl login")
	}
	if err != nil {
		return entities.Principal{}, err
	}
	var s storedSession
	if err := json.Unmarshal(data, &s); err != nil {
		return entities.Principal{}, fmt.Errorf("corrupt session file %s: %w", sessionFile(), err)
	}
	if s.Token == "" {
		return entities.Principal{}, errors.New("not signed in, run depannelctl login")
	}
	return entities.Principal{UserID: s.UserID, Name: s.Name, Role: s.Role, Token: s.Token}, nil
}

func displayName(p entities.Principal) string {
	if p.Name != "" {
		return p.Name
	}
	return p.UserID
}
