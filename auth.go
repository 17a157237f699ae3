package main

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// AuthService owns the users and currentUser documents. The credential
// check is a plain lookup-and-compare over locally stored records; no
// tokens, no sessions beyond the persisted current user.
type AuthService struct {
	store Store
}

func NewAuthService(store Store) *AuthService {
	return &AuthService{store: store}
}

// Register adds a user; emails are unique.
func (a *AuthService) Register(username, email, password string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return User{}, fmt.Errorf("%w: username, email and password are required", ErrValidation)
	}

	var users []User
	a.store.Load(keyUsers, &users)
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return User{}, ErrDuplicateEmail
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	user := User{Username: username, Email: email, Password: hash}
	users = append(users, user)
	if err := a.store.Save(keyUsers, users); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login verifies credentials and persists the current user.
func (a *AuthService) Login(email, password string) (User, error) {
	var users []User
	a.store.Load(keyUsers, &users)
	for _, u := range users {
		if !strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			continue
		}
		if !CheckPassword(password, u.Password) {
			return User{}, ErrWrongPassword
		}
		if err := a.store.Save(keyCurrentUser, u); err != nil {
			return User{}, err
		}
		return u, nil
	}
	return User{}, fmt.Errorf("%w: user", ErrNotFound)
}

// CurrentUser returns the persisted logged-in user, if any.
func (a *AuthService) CurrentUser() (User, bool) {
	var u User
	if !a.store.Load(keyCurrentUser, &u) || u.Email == "" {
		return User{}, false
	}
	return u, true
}

func (a *AuthService) Logout() error {
	return a.store.Delete(keyCurrentUser)
}

// HashPassword hashes a plain password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares plain password with hashed password.
func CheckPassword(plain, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
