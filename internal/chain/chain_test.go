package chain

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/niklabh/AptosAgora/internal/types"
)

func testPayload() types.EntryFunctionPayload {
	return types.EntryFunctionPayload{
		Type:          "entry_function_payload",
		Function:      "0x1::content_registry::create_content",
		TypeArguments: []string{},
		Arguments:     []any{"c1", "h1", "article", "d", []string{}},
	}
}

func TestSubmit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/transactions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		var req types.SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode submit body: %v", err)
		}
		if req.Sender != "0xsender" {
			t.Errorf("sender = %q", req.Sender)
		}
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]string{"hash": "0xhash1"})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	pending, err := c.Submit(context.Background(), types.SubmitRequest{Sender: "0xsender", Payload: testPayload()})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if pending.Hash != "0xhash1" {
		t.Fatalf("hash = %q, want 0xhash1", pending.Hash)
	}
}

func TestSubmit_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid payload","error_code":"invalid_input"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_, err := c.Submit(context.Background(), types.SubmitRequest{Sender: "0xsender", Payload: testPayload()})
	var se *SubmissionError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SubmissionError, got %T: %v", err, err)
	}
	if se.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", se.StatusCode)
	}
}

func TestSubmit_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Submit(context.Background(), types.SubmitRequest{Sender: "0xsender", Payload: testPayload()})
	var se *SubmissionError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SubmissionError, got %T: %v", err, err)
	}
}

func TestWaitForTransaction_PendingThenCommitted(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions/by_hash/0xh" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		switch calls.Add(1) {
		case 1:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"not found","error_code":"transaction_not_found"}`))
		case 2:
			_ = json.NewEncoder(w).Encode(map[string]any{"type": "pending_transaction", "hash": "0xh"})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"type": "user_transaction", "hash": "0xh", "success": true, "vm_status": "Executed successfully", "version": "42",
			})
		}
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	txn, err := c.WaitForTransaction(context.Background(), "0xh")
	if err != nil {
		t.Fatalf("WaitForTransaction: %v", err)
	}
	if !txn.Success || txn.Version != "42" {
		t.Fatalf("unexpected transaction %+v", txn)
	}
	if calls.Load() < 3 {
		t.Fatalf("expected at least 3 lookups, got %d", calls.Load())
	}
}

func TestWaitForTransaction_Revert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type": "user_transaction", "hash": "0xh", "success": false,
			"vm_status": "Move abort in 0x1::reputation_system: E_ALREADY_RATED(0x3)",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_, err := c.WaitForTransaction(context.Background(), "0xh")
	var re *RevertError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RevertError, got %T: %v", err, err)
	}
	if re.VMStatus == "" {
		t.Fatal("revert error lost vm_status")
	}
}

func TestWaitForTransaction_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"type": "pending_transaction", "hash": "0xh"})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	c.SetFinalityTimeout(time.Millisecond)
	_, err := c.WaitForTransaction(context.Background(), "0xh")
	if !errors.Is(err, ErrFinalityTimeout) {
		t.Fatalf("expected ErrFinalityTimeout, got %v", err)
	}
}

func TestWaitForTransaction_ContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"type": "pending_transaction", "hash": "0xh"})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	c := New(srv.URL, srv.Client())
	_, err := c.WaitForTransaction(ctx, "0xh")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestView(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/view" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req types.ViewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode view body: %v", err)
		}
		if req.Function != "0x1::content_registry::get_content" {
			t.Errorf("function = %q", req.Function)
		}
		_, _ = w.Write([]byte(`[{"id":"c1"},"5"]`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	resp, err := c.View(context.Background(), types.ViewRequest{
		Function:      "0x1::content_registry::get_content",
		TypeArguments: []string{},
		Arguments:     []any{"c1"},
	})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 values, got %d", len(resp))
	}
}

func TestView_NotFoundMapping(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		body      string
		wantFound bool
	}{
		{"resource_not_found", http.StatusNotFound, `{"message":"resource absent","error_code":"resource_not_found"}`, false},
		{"table_item_not_found", http.StatusBadRequest, `{"message":"no item","error_code":"table_item_not_found"}`, false},
		{"bare_404", http.StatusNotFound, `not found`, false},
		{"invalid_input", http.StatusBadRequest, `{"message":"bad arg shape","error_code":"invalid_input"}`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := New(srv.URL, srv.Client())
			_, err := c.View(context.Background(), types.ViewRequest{Function: "0x1::m::f"})
			if tc.wantFound {
				var qe *QueryError
				if !errors.As(err, &qe) {
					t.Fatalf("expected *QueryError, got %T: %v", err, err)
				}
				if errors.Is(err, types.ErrNotFound) {
					t.Fatal("query error must not match ErrNotFound")
				}
			} else if !errors.Is(err, types.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}
