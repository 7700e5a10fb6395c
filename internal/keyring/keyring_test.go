package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	testConnStr := "postgres://planner@localhost:5432/gantt?sslmode=disable"

	if err := SetConnectionString("", testConnStr); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	retrieved, err := GetConnectionString("")
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if retrieved != testConnStr {
		t.Errorf("GetConnectionString() = %q, want %q", retrieved, testConnStr)
	}
}

func TestProfilesAreIndependent(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("work", "postgres://a@db1/gantt"); err != nil {
		t.Fatal(err)
	}
	if err := SetConnectionString("home", "postgres://b@db2/gantt"); err != nil {
		t.Fatal(err)
	}

	work, _ := GetConnectionString("work")
	home, _ := GetConnectionString("home")
	if work == home {
		t.Errorf("profiles share a value: %q", work)
	}
	if _, err := GetConnectionString(""); err != ErrNotFound {
		t.Errorf("default profile error = %v, want %v", err, ErrNotFound)
	}
}

func TestSetConnectionStringEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("", ""); err == nil {
		t.Error("SetConnectionString with empty value should return an error")
	}
}

func TestDeleteConnectionString(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("", "postgres://planner@localhost/gantt"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}
	if err := DeleteConnectionString(""); err != nil {
		t.Fatalf("DeleteConnectionString() failed: %v", err)
	}
	if _, err := GetConnectionString(""); err != ErrNotFound {
		t.Errorf("after delete, error = %v, want %v", err, ErrNotFound)
	}
	if err := DeleteConnectionString(""); err != ErrNotFound {
		t.Errorf("second delete error = %v, want %v", err, ErrNotFound)
	}
}

func TestResolve(t *testing.T) {
	gokeyring.MockInit()
	if err := SetConnectionString("work", "postgres://a@db1/gantt"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"literal path", "/tmp/gantt.db", "/tmp/gantt.db", nil},
		{"literal url", "postgres://x@y/z", "postgres://x@y/z", nil},
		{"profile", "keyring:work", "postgres://a@db1/gantt", nil},
		{"missing profile", "keyring:nope", "", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()
	if !IsAvailable() {
		t.Error("IsAvailable() = false with the mock keyring")
	}
}
