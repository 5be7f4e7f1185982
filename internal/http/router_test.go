package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"railbook/internal/catalog"
	"railbook/internal/config"
	"railbook/internal/http/handlers"
	"railbook/internal/services"
	"railbook/internal/storage"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	env := config.Env{
		AppAddr:     ":0",
		DataDir:     dir,
		StoreDriver: "file",
		JWTSecret:   "test-secret",
		LockTimeout: time.Second,
	}
	return NewRouter(env, &handlers.API{
		Env:     env,
		Catalog: catalog.NewTrainCatalog(storage.NewFileTrainStore(dir)),
		Users:   &services.UserService{Store: storage.NewFileUserStore(dir)},
		Tickets: &services.TicketService{Store: storage.NewFileTicketStore(dir)},
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{"username": "alice", "password": "s3cret"})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d body %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"username": "alice", "password": "s3cret"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d body %s", w.Code, w.Body.String())
	}
	token, _ := decodeBody(t, w)["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}

func TestBookingFlowOverHTTP(t *testing.T) {
	r := newTestServer(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/trains", token, gin.H{
		"trainId":  "T1",
		"trainNo":  "12301",
		"rows":     2,
		"cols":     2,
		"stations": []string{"delhi", "agra"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create train: status %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/bookings", token, gin.H{
		"train_id": "T1", "row": 0, "col": 0,
		"source": "delhi", "destination": "agra", "date": "2026-09-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("book: status %d body %s", w.Code, w.Body.String())
	}
	ticket, _ := decodeBody(t, w)["ticket"].(map[string]any)
	ticketID, _ := ticket["ticketId"].(string)
	if ticketID == "" {
		t.Fatal("booking did not issue a ticket")
	}

	w = doJSON(t, r, http.MethodPost, "/api/bookings", token, gin.H{"train_id": "T1", "row": 0, "col": 0})
	if w.Code != http.StatusConflict {
		t.Fatalf("double book: expected 409, got %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/trains/T1/seats", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("seats: status %d", w.Code)
	}
	if avail, _ := decodeBody(t, w)["available"].(float64); avail != 3 {
		t.Fatalf("expected 3 available seats, got %v", avail)
	}

	w = doJSON(t, r, http.MethodPost, "/api/bookings/cancel", token, gin.H{
		"train_id": "T1", "row": 0, "col": 0, "ticket_id": ticketID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: status %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/trains/T1/seats", "", nil)
	if avail, _ := decodeBody(t, w)["available"].(float64); avail != 4 {
		t.Fatalf("expected 4 available seats after cancel, got %v", avail)
	}

	w = doJSON(t, r, http.MethodPost, "/api/bookings", token, gin.H{"train_id": "T1", "row": 5, "col": 5})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out of bounds: expected 400, got %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/bookings", token, gin.H{"train_id": "unknown-train", "row": 0, "col": 0})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown train: expected 404, got %d body %s", w.Code, w.Body.String())
	}
}

func TestBookingRequiresAuth(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", "", gin.H{"train_id": "T1", "row": 0, "col": 0})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/bookings", "not-a-token", gin.H{"train_id": "T1", "row": 0, "col": 0})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", w.Code)
	}
}

func TestTicketEndpoints(t *testing.T) {
	r := newTestServer(t)
	token := loginToken(t, r)

	doJSON(t, r, http.MethodPost, "/api/trains", token, gin.H{"trainId": "T1", "trainNo": "12301", "rows": 1, "cols": 1})
	w := doJSON(t, r, http.MethodPost, "/api/bookings", token, gin.H{"train_id": "T1", "row": 0, "col": 0, "source": "delhi", "destination": "agra"})
	if w.Code != http.StatusCreated {
		t.Fatalf("book: status %d body %s", w.Code, w.Body.String())
	}
	ticket, _ := decodeBody(t, w)["ticket"].(map[string]any)
	ticketID, _ := ticket["ticketId"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/tickets/"+ticketID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get ticket: status %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/my/tickets", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("my tickets: status %d", w.Code)
	}
	tickets, _ := decodeBody(t, w)["tickets"].([]any)
	if len(tickets) != 1 {
		t.Fatalf("expected one ticket, got %d", len(tickets))
	}

	w = doJSON(t, r, http.MethodGet, "/api/tickets/"+ticketID+"/e-ticket", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("e-ticket: status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected PDF content type, got %q", ct)
	}
}
