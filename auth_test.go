package main

import (
	"errors"
	"testing"
)

func TestAuthRegisterLoginLogout(t *testing.T) {
	auth := NewAuthService(NewMemStore())

	if _, err := auth.Register("", "a@b.c", "pw"); !errors.Is(err, ErrValidation) {
		t.Fatalf("register without username = %v, want ErrValidation", err)
	}

	user, err := auth.Register("dana", "dana@example.com", "hunter2")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Password == "hunter2" {
		t.Fatal("password stored in plain text")
	}

	if _, err := auth.Register("other", "DANA@example.com", "pw"); !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("duplicate email = %v, want ErrDuplicateEmail", err)
	}

	if _, err := auth.Login("dana@example.com", "wrong"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("wrong password = %v, want ErrWrongPassword", err)
	}
	if _, err := auth.Login("nobody@example.com", "pw"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown email = %v, want ErrNotFound", err)
	}

	logged, err := auth.Login("Dana@Example.com", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.Username != "dana" {
		t.Errorf("logged in as %q", logged.Username)
	}

	current, ok := auth.CurrentUser()
	if !ok || current.Email != "dana@example.com" {
		t.Fatalf("CurrentUser() = %+v, %v", current, ok)
	}

	if err := auth.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := auth.CurrentUser(); ok {
		t.Error("still logged in after logout")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword("s3cret", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("other", hash) {
		t.Error("wrong password accepted")
	}
}
