package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, clientID, secret, label string, scopes []string) (*domain.Applicatie, error)
	tokenFn    func(ctx context.Context, clientID, secret string) (string, *domain.Applicatie, error)
}

func (s *stubAuthService) Register(ctx context.Context, clientID, secret, label string, scopes []string) (*domain.Applicatie, error) {
	return s.registerFn(ctx, clientID, secret, label, scopes)
}

func (s *stubAuthService) Token(ctx context.Context, clientID, secret string) (string, *domain.Applicatie, error) {
	return s.tokenFn(ctx, clientID, secret)
}

func (s *stubAuthService) EnsureApplicatie(context.Context, string, string) error { return nil }

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, clientID, secret, label string, scopes []string) (*domain.Applicatie, error) {
			if clientID != "zaken-portaal" || secret != "geheim" || len(scopes) != 1 || scopes[0] != domain.ScopeKlantenLezen {
				t.Fatalf("unexpected args: %s %s %v", clientID, secret, scopes)
			}
			return &domain.Applicatie{ClientID: clientID, Label: label, Scopes: scopes}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/auth/applicaties",
		`{"clientId":"zaken-portaal","secret":"geheim","label":"Portaal","scopes":["klanten.lezen"]}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["clientId"] != "zaken-portaal" || resp["label"] != "Portaal" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp["secretHash"]; ok {
		t.Fatalf("secret hash must not be rendered")
	}
}

func TestAuthHandler_Register_Exists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string, []string) (*domain.Applicatie, error) {
			return nil, domain.ErrApplicatieExists
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/auth/applicaties",
		`{"clientId":"a","secret":"b","scopes":["klanten.lezen"]}`)

	if err := handler.Register(c); !errors.Is(err, domain.ErrApplicatieExists) {
		t.Fatalf("expected ErrApplicatieExists, got %v", err)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string, []string) (*domain.Applicatie, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/auth/applicaties", `{"clientId":"a"}`)

	err := handler.Register(c)
	if !domain.HasCode(err, domain.CodeRequired) {
		t.Fatalf("expected required errors, got %v", err)
	}
}

func TestAuthHandler_Token_Success(t *testing.T) {
	stub := &stubAuthService{
		tokenFn: func(ctx context.Context, clientID, secret string) (string, *domain.Applicatie, error) {
			if clientID != "portaal" || secret != "geheim" {
				t.Fatalf("unexpected args: %s %s", clientID, secret)
			}
			return "token123", &domain.Applicatie{ClientID: clientID}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/auth/token", `{"clientId":"portaal","secret":"geheim"}`)

	if err := handler.Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Token_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		tokenFn: func(context.Context, string, string) (string, *domain.Applicatie, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/auth/token", `{"clientId":"portaal","secret":"fout"}`)

	if err := handler.Token(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Token_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		tokenFn: func(context.Context, string, string) (string, *domain.Applicatie, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/auth/token", "{")

	if err := handler.Token(c); !domain.HasCode(err, "parse_error") {
		t.Fatalf("expected parse error, got %v", err)
	}
}
