package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyHTTPError(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorCategory
	}{
		{400, Irrecoverable},
		{401, Irrecoverable},
		{403, Irrecoverable},
		{404, Irrecoverable},
		{408, Recoverable},
		{429, Recoverable},
		{500, Recoverable},
		{502, Recoverable},
		{503, Recoverable},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("status_%d", tc.status), func(t *testing.T) {
			err := ClassifyHTTPError(tc.status, "", errors.New("boom"))
			if err.Category != tc.want {
				t.Fatalf("status %d classified %s, want %s", tc.status, err.Category, tc.want)
			}
		})
	}
}

func TestIsIrrecoverable(t *testing.T) {
	if !IsIrrecoverable(NewHTTPError(403, "", "view call")) {
		t.Fatal("403 should be irrecoverable")
	}
	if IsIrrecoverable(NewHTTPError(503, "", "view call")) {
		t.Fatal("503 should be recoverable")
	}
	if IsIrrecoverable(NewNetworkError("submit", errors.New("reset"))) {
		t.Fatal("network errors should be recoverable")
	}
	if IsIrrecoverable(errors.New("unclassified")) {
		t.Fatal("plain errors are not irrecoverable")
	}
}

func TestClassifiedErrorUnwrap(t *testing.T) {
	inner := errors.New("timeout")
	err := NewNetworkError("poll", inner)
	if !errors.Is(err, inner) {
		t.Fatal("Unwrap lost the underlying error")
	}
}
