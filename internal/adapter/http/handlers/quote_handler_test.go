package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"rental_quotes/internal/adapter/http/handlers/mocks"
	"rental_quotes/internal/adapter/http/middleware"
	"rental_quotes/internal/domain/entities"
	"rental_quotes/internal/usecase"
	"rental_quotes/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var adminCaller = entities.Caller{UserID: "u-1", Email: "desk@rental.test", IsAdmin: true}

func withCaller(caller entities.Caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyCaller, caller)
		c.Next()
	}
}

func sentQuote() entities.Quote {
	price := 12500.0
	quoted := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return entities.Quote{
		ID:                 "q-1",
		ConfirmationNumber: "TFS-260310-ABCD",
		AccessToken:        "tok-1",
		Language:           "en",
		ClientName:         "Ada Lovelace",
		ClientEmail:        "ada@example.com",
		ItemsJSON:          `[{"productId":"cam-1","name":"Alexa Mini","slug":"alexa-mini","quantity":1}]`,
		Status:             entities.QuoteStatusQuoted,
		IsLocked:           true,
		EstimatedPrice:     &price,
		PDFFileName:        "quote.pdf",
		DocumentKey:        "quotes/q-1/quote-1.pdf",
		QuotedAt:           &quoted,
		InternalNotes:      "[desk - 2026-03-10T12:00:00Z]:\ncall back",
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if fileField != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="`+fileName+`"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = part.Write(content)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)
		uc.EXPECT().CreateQuote(gomock.Any(), entities.Anonymous, gomock.Any()).
			Return(usecase.CreatedQuote{}, errors.Join(usecase.ErrInvalidQuoteInput, errors.New("rental end date is before the start date")))

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		payload := `{"firstName":"Ada","email":"ada@example.com","phone":"+212600000000","items":[{"productId":"cam-1","quantity":1}],"rentalStartDate":"2026-04-03","rentalEndDate":"2026-04-01"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_REQUEST" || body["success"] != false {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success with signed in client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)
		client := entities.Caller{UserID: "u-9", Email: "ada@example.com"}

		uc.EXPECT().CreateQuote(gomock.Any(), client, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Caller, in usecase.CreateQuoteInput) (usecase.CreatedQuote, error) {
				if len(in.Items) != 1 || in.Items[0].ProductID != "cam-1" || in.Language != "fr" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return usecase.CreatedQuote{QuoteID: "q-1", ConfirmationNumber: "TFS-260310-ABCD", AccessToken: "tok-1"}, nil
			})

		r := gin.New()
		r.POST("/v1/quotes", withCaller(client), h.CreateQuote)

		payload := `{"firstName":"Ada","email":"ada@example.com","phone":"+212600000000","items":[{"productId":"cam-1","quantity":1}],"rentalStartDate":"2026-04-01","rentalEndDate":"2026-04-03","language":"fr"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		data := decodeBody(t, w)["data"].(map[string]any)
		if data["quoteId"] != "q-1" || data["accessToken"] != "tok-1" {
			t.Fatalf("unexpected data: %v", data)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("wrong token is a plain 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)
		uc.EXPECT().GetQuoteByToken(gomock.Any(), "q-1", "nope").Return(entities.Quote{}, entities.ErrQuoteNotFound)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1?token=nope", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "Quote not found" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("client safe projection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)
		q := sentQuote()
		uc.EXPECT().GetQuoteByToken(gomock.Any(), "q-1", "tok-1").Return(q, nil)
		uc.EXPECT().DocumentLinks(gomock.Any(), q).Return(usecase.QuoteDocumentLinks{QuotePDFURL: "https://files.test/q-1.pdf"})

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1?token=tok-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		raw := w.Body.String()
		if strings.Contains(raw, "tok-1") || strings.Contains(raw, "call back") {
			t.Fatalf("token or internal notes leaked: %s", raw)
		}
		data := decodeBody(t, w)["data"].(map[string]any)
		if data["quotePdfUrl"] != "https://files.test/q-1.pdf" || data["canRespond"] != true || data["estimatedPrice"] != 12500.0 {
			t.Fatalf("unexpected data: %v", data)
		}
	})
}

func TestQuoteHandler_AcceptQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)
		uc.EXPECT().AcceptQuote(gomock.Any(), "q-1", "tok-1", (*interfaces.Document)(nil)).
			Return(entities.Quote{}, entities.ErrQuoteSignatureMissing)

		r := gin.New()
		r.POST("/v1/quotes/:id/accept", h.AcceptQuote)

		body, ct := multipartBody(t, map[string]string{"token": "tok-1"}, "", "", "", nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("signature must be an image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/quotes/:id/accept", h.AcceptQuote)

		body, ct := multipartBody(t, map[string]string{"token": "tok-1"}, "signature", "sig.exe", "application/octet-stream", []byte("MZ"))
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)
		uc.EXPECT().AcceptQuote(gomock.Any(), "q-1", "tok-1", gomock.Any()).
			DoAndReturn(func(_ any, _, _ string, sig *interfaces.Document) (entities.Quote, error) {
				content, _ := io.ReadAll(sig.Body)
				if string(content) != "png-bytes" || sig.FileName != "sig.png" || sig.ContentType != "image/png" {
					t.Fatalf("unexpected signature: %+v %q", sig, content)
				}
				return entities.Quote{}, entities.ErrQuoteAlreadyAccepted
			})

		r := gin.New()
		r.POST("/v1/quotes/:id/accept", h.AcceptQuote)

		body, ct := multipartBody(t, map[string]string{"token": "tok-1"}, "signature", "sig.png", "image/png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != entities.ErrQuoteAlreadyAccepted.Error() {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestQuoteHandler_RejectQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token is a plain 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/quotes/:id/reject", h.RejectQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/reject", bytes.NewBufferString(`{"reason":"too expensive"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("second rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)
		uc.EXPECT().RejectQuote(gomock.Any(), "q-1", "tok-1", "too expensive").Return(entities.Quote{}, entities.ErrQuoteAlreadyRejected)

		r := gin.New()
		r.POST("/v1/quotes/:id/reject", h.RejectQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/reject", bytes.NewBufferString(`{"token":"tok-1","reason":"too expensive"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "QUOTE_ALREADY_REJECTED" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestQuoteHandler_ListMine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc, nil)

	pending := sentQuote()
	pending.Status = entities.QuoteStatusReviewing
	uc.EXPECT().ListMine(gomock.Any(), entities.Anonymous).Return(nil, usecase.ErrUnauthenticated)
	uc.EXPECT().ListMine(gomock.Any(), adminCaller).Return([]entities.Quote{pending}, nil)

	r := gin.New()
	r.GET("/anon", h.ListMine)
	r.GET("/mine", withCaller(adminCaller), h.ListMine)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anon", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mine", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	items := decodeBody(t, w)["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected one quote, got %v", items)
	}
	if _, ok := items[0].(map[string]any)["estimatedPrice"]; ok {
		t.Fatalf("price of an unsent quote must not be shown")
	}
}
