package services

import (
	"context"
	"testing"
)

func TestValidatePasswordWithDefault(t *testing.T) {
	access := NewAccessService(testDB(t), "letmein")
	ctx := context.Background()

	ok, err := access.ValidatePassword(ctx, "letmein")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !ok {
		t.Fatal("default password should validate when no row is stored")
	}

	ok, err = access.ValidatePassword(ctx, "wrong")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if ok {
		t.Fatal("wrong password accepted")
	}
}

func TestValidatePasswordNoDefault(t *testing.T) {
	access := NewAccessService(testDB(t), "")
	ctx := context.Background()

	// With no stored row and no default, nothing validates — not even
	// the empty string.
	for _, candidate := range []string{"", "anything"} {
		ok, err := access.ValidatePassword(ctx, candidate)
		if err != nil {
			t.Fatalf("validate: %v", err)
		}
		if ok {
			t.Fatalf("candidate %q should not validate", candidate)
		}
	}
}

func TestSetAdminPasswordOverridesDefault(t *testing.T) {
	access := NewAccessService(testDB(t), "default-pass")
	ctx := context.Background()

	if err := access.SetAdminPassword(ctx, "new-secret"); err != nil {
		t.Fatalf("set: %v", err)
	}

	ok, err := access.ValidatePassword(ctx, "new-secret")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !ok {
		t.Fatal("stored password should validate")
	}

	// The env default stops working once a row exists.
	ok, err = access.ValidatePassword(ctx, "default-pass")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if ok {
		t.Fatal("default should not validate after a stored value exists")
	}

	// Upsert overwrites unconditionally.
	if err := access.SetAdminPassword(ctx, "rotated"); err != nil {
		t.Fatalf("set again: %v", err)
	}
	ok, err = access.ValidatePassword(ctx, "rotated")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !ok {
		t.Fatal("rotated password should validate")
	}
}
