package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental_quotes/internal/adapter/http/handlers/mocks"
	"rental_quotes/internal/domain/entities"
	"rental_quotes/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAdminRouter(h *AdminQuoteHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/admin/quotes", withCaller(adminCaller))
	g.GET("", h.ListQuotes)
	g.GET("/:id", h.GetQuote)
	g.POST("/:id/finalize", h.FinalizeQuote)
	g.POST("/:id/lock", h.LockQuote)
	g.POST("/:id/unlock", h.UnlockQuote)
	g.POST("/:id/confirm", h.ConfirmQuote)
	g.POST("/:id/reject", h.RejectQuote)
	return r
}

func TestAdminQuoteHandler_ListQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newAdminRouter(NewAdminQuoteHandler(uc, nil))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/quotes?status=archived", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filter and cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newAdminRouter(NewAdminQuoteHandler(uc, nil))

		status := entities.QuoteStatusQuoted
		uc.EXPECT().List(gomock.Any(), adminCaller, entities.QuoteFilter{Status: &status, Limit: 10, Cursor: "abc"}).
			Return(entities.QuotePage{Items: []entities.Quote{sentQuote()}, NextCursor: "def"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/quotes?status=quoted&limit=10&cursor=abc", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		data := decodeBody(t, w)["data"].(map[string]any)
		if data["nextCursor"] != "def" || len(data["items"].([]any)) != 1 {
			t.Fatalf("unexpected data: %v", data)
		}
	})

	t.Run("bad cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newAdminRouter(NewAdminQuoteHandler(uc, nil))
		uc.EXPECT().List(gomock.Any(), adminCaller, gomock.Any()).Return(entities.QuotePage{}, entities.ErrInvalidCursor)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/quotes?cursor=zzz", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAdminQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewAdminQuoteHandler(uc, nil)
	q := sentQuote()
	h.now = func() time.Time { return q.QuotedAt.Add(5 * time.Minute) }
	r := newAdminRouter(h)

	uc.EXPECT().GetByID(gomock.Any(), adminCaller, "q-1").Return(q, nil)
	uc.EXPECT().DocumentLinks(gomock.Any(), q).Return(usecase.QuoteDocumentLinks{})
	uc.EXPECT().GetByID(gomock.Any(), adminCaller, "missing").Return(entities.Quote{}, entities.ErrQuoteNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/quotes/q-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := decodeBody(t, w)["data"].(map[string]any)
	if data["editable"] != true || data["graceMinutesRemaining"] != 10.0 {
		t.Fatalf("unexpected grace fields: %v", data)
	}
	if data["internalNotes"] == "" || len(data["items"].([]any)) != 1 {
		t.Fatalf("admin view must carry notes and items: %v", data)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/quotes/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAdminQuoteHandler_FinalizeQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("price is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newAdminRouter(NewAdminQuoteHandler(uc, nil))

		body, ct := multipartBody(t, map[string]string{"lock": "true"}, "", "", "", nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/quotes/q-1/finalize", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("only pdf documents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newAdminRouter(NewAdminQuoteHandler(uc, nil))

		body, ct := multipartBody(t, map[string]string{"price": "100"}, "file", "quote.docx", "application/msword", []byte("doc"))
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/quotes/q-1/finalize", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lock and send with a pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newAdminRouter(NewAdminQuoteHandler(uc, nil))
		q := sentQuote()

		uc.EXPECT().FinalizeQuote(gomock.Any(), adminCaller, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Caller, in usecase.FinalizeQuoteInput) (entities.Quote, error) {
				if in.ID != "q-1" || in.Price != 12500 || !in.Lock || !in.Notify {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.Document == nil || in.Document.FileName != "quote.pdf" {
					t.Fatalf("expected the uploaded pdf, got %+v", in.Document)
				}
				content, _ := io.ReadAll(in.Document.Body)
				if string(content) != "%PDF-1.7" {
					t.Fatalf("unexpected content %q", content)
				}
				return q, nil
			})
		uc.EXPECT().DocumentLinks(gomock.Any(), q).Return(usecase.QuoteDocumentLinks{})

		body, ct := multipartBody(t, map[string]string{"price": "12500", "lock": "true"}, "file", "quote.pdf", "application/pdf", []byte("%PDF-1.7"))
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/quotes/q-1/finalize", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("draft without email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newAdminRouter(NewAdminQuoteHandler(uc, nil))

		uc.EXPECT().FinalizeQuote(gomock.Any(), adminCaller, usecase.FinalizeQuoteInput{ID: "q-1", Price: 99.5, Notify: false}).
			Return(entities.Quote{}, entities.ErrQuoteReadOnly)

		body, ct := multipartBody(t, map[string]string{"price": "99.5", "sendEmail": "false"}, "", "", "", nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/quotes/q-1/finalize", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "QUOTE_READ_ONLY" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestAdminQuoteHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		path   string
		body   string
		expect func(uc *mocks.MockIQuoteUseCase)
		status int
		code   string
	}{
		{
			name: "lock without price",
			path: "/v1/admin/quotes/q-1/lock",
			expect: func(uc *mocks.MockIQuoteUseCase) {
				uc.EXPECT().LockQuote(gomock.Any(), adminCaller, "q-1").Return(entities.Quote{}, entities.ErrQuoteMissingPrice)
			},
			status: http.StatusUnprocessableEntity,
			code:   "QUOTE_MISSING_PRICE",
		},
		{
			name: "unlock a decided quote",
			path: "/v1/admin/quotes/q-1/unlock",
			expect: func(uc *mocks.MockIQuoteUseCase) {
				uc.EXPECT().UnlockQuote(gomock.Any(), adminCaller, "q-1").
					Return(entities.Quote{}, entities.QuoteStatusConfirmed.CanUnlock())
			},
			status: http.StatusConflict,
			code:   "QUOTE_DECIDED",
		},
		{
			name: "confirm with a note",
			path: "/v1/admin/quotes/q-1/confirm",
			body: `{"note":"signed on paper"}`,
			expect: func(uc *mocks.MockIQuoteUseCase) {
				q := sentQuote()
				q.Status = entities.QuoteStatusConfirmed
				uc.EXPECT().AdminConfirmQuote(gomock.Any(), adminCaller, "q-1", "signed on paper").Return(q, nil)
				uc.EXPECT().DocumentLinks(gomock.Any(), q).Return(usecase.QuoteDocumentLinks{})
			},
			status: http.StatusOK,
		},
		{
			name: "confirm before sending",
			path: "/v1/admin/quotes/q-1/confirm",
			expect: func(uc *mocks.MockIQuoteUseCase) {
				uc.EXPECT().AdminConfirmQuote(gomock.Any(), adminCaller, "q-1", "").
					Return(entities.Quote{}, entities.QuoteStatusPending.CanAdminConfirm())
			},
			status: http.StatusConflict,
			code:   "QUOTE_NOT_READY",
		},
		{
			name: "reject without a body",
			path: "/v1/admin/quotes/q-1/reject",
			expect: func(uc *mocks.MockIQuoteUseCase) {
				uc.EXPECT().AdminRejectQuote(gomock.Any(), adminCaller, "q-1", "").Return(entities.Quote{}, entities.ErrQuoteAlreadyAccepted)
			},
			status: http.StatusConflict,
			code:   "QUOTE_ALREADY_ACCEPTED",
		},
		{
			name:   "malformed json",
			path:   "/v1/admin/quotes/q-1/reject",
			body:   `{"reason":`,
			expect: func(uc *mocks.MockIQuoteUseCase) {},
			status: http.StatusBadRequest,
		},
		{
			name: "store failure is hidden",
			path: "/v1/admin/quotes/q-1/lock",
			expect: func(uc *mocks.MockIQuoteUseCase) {
				uc.EXPECT().LockQuote(gomock.Any(), adminCaller, "q-1").Return(entities.Quote{}, errors.New("ProvisionedThroughputExceeded"))
			},
			status: http.StatusInternalServerError,
			code:   "INTERNAL_ERROR",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIQuoteUseCase(ctrl)
			tc.expect(uc)
			r := newAdminRouter(NewAdminQuoteHandler(uc, nil))

			req := httptest.NewRequest(http.MethodPost, tc.path, bytes.NewBufferString(tc.body))
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			if tc.code != "" {
				body := decodeBody(t, w)
				if body["code"] != tc.code {
					t.Fatalf("expected code %s, got %v", tc.code, body)
				}
				if tc.code == "INTERNAL_ERROR" && body["error"] != "An internal error occurred" {
					t.Fatalf("internal details leaked: %v", body)
				}
			}
		})
	}
}
