package auth

import "testing"

func TestIsAuthorized(t *testing.T) {
	tests := []struct {
		name       string
		authorized []int64
		userID     int64
		want       bool
	}{
		{"empty allowlist admits everyone", nil, 42, true},
		{"listed user", []int64{1, 2, 3}, 2, true},
		{"unlisted user", []int64{1, 2, 3}, 42, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := NewAuthenticator(test.authorized)
			if got := a.IsAuthorized(test.userID); got != test.want {
				t.Errorf("IsAuthorized(%d) = %v, want %v", test.userID, got, test.want)
			}
		})
	}
}
