package entity

import (
	"strings"
	"testing"
)

func TestUser_BeforeSave(t *testing.T) {
	user := &User{Email: "test@example.com", Password: "Secret123!"}

	if err := user.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave returned error: %v", err)
	}

	if !strings.HasPrefix(user.Password, "$2") {
		t.Fatalf("Expected password to be bcrypt-hashed, got %q", user.Password)
	}

	hashed := user.Password

	// Повторный вызов не должен перехешировать уже захешированный пароль
	if err := user.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave returned error on second call: %v", err)
	}
	if user.Password != hashed {
		t.Error("Expected hashed password to remain unchanged on second save")
	}

	if !user.CheckPassword("Secret123!") {
		t.Error("Expected CheckPassword to accept the original password")
	}
	if user.CheckPassword("wrong-password") {
		t.Error("Expected CheckPassword to reject a wrong password")
	}
}

func TestUser_IsAdmin(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	if !admin.IsAdmin() {
		t.Error("Expected admin role to be recognized")
	}

	user := &User{Role: RoleUser}
	if user.IsAdmin() {
		t.Error("Expected ordinary user not to be admin")
	}
}
