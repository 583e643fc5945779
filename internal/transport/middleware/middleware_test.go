package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/matteocalo/photodesk/internal/transport"
	"github.com/matteocalo/photodesk/internal/transport/middleware"
	"github.com/matteocalo/photodesk/pkg/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RequestID", func() {
	var seen string

	handler := middleware.RequestID(slog.New(slog.NewTextHandler(io.Discard, nil)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.TraceID(r.Context())
	}))

	BeforeEach(func() { seen = "" })

	It("keeps an incoming trace id", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.TraceHeader, "abc-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		Expect(seen).To(Equal("abc-123"))
		Expect(rec.Header().Get(middleware.TraceHeader)).To(Equal("abc-123"))
	})

	It("assigns one when missing", func() {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(seen).NotTo(BeEmpty())
		Expect(rec.Header().Get(middleware.TraceHeader)).To(Equal(seen))
	})
})

var _ = Describe("request logger", func() {
	It("tags a handler's 500 with the trace and user ids", func() {
		logs := &bytes.Buffer{}
		lg := slog.New(slog.NewJSONHandler(logs, nil))
		base := transport.NewBaseHandler(lg)

		withUser := func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(logger.With(r.Context(), "user_id", int64(7))))
			})
		}
		handler := middleware.RequestID(lg)(withUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			base.HandleServiceError(w, r, errors.New("disk full"))
		})))

		req := httptest.NewRequest(http.MethodGet, "/api/photo-jobs", nil)
		req.Header.Set(middleware.TraceHeader, "trace-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Body.String()).NotTo(ContainSubstring("disk full"))

		var line map[string]any
		Expect(json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &line)).To(Succeed(), logs.String())
		Expect(line).To(HaveKeyWithValue("msg", "unhandled service error"))
		Expect(line).To(HaveKeyWithValue("trace_id", "trace-42"))
		Expect(line).To(HaveKeyWithValue("user_id", BeNumerically("==", 7)))
	})

	It("falls back to the handler logger outside the chain", func() {
		logs := &bytes.Buffer{}
		base := transport.NewBaseHandler(slog.New(slog.NewTextHandler(logs, nil)))

		rec := httptest.NewRecorder()
		base.HandleServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"))

		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(logs.String()).To(ContainSubstring("unhandled service error"))
	})
})

var _ = Describe("RecoveryMiddleware", func() {
	var logs *bytes.Buffer

	BeforeEach(func() {
		logs = &bytes.Buffer{}
	})

	It("answers 500 without exposing the panic", func() {
		logger := slog.New(slog.NewTextHandler(logs, nil))
		handler := middleware.RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("db password leaked")
		}))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Body.String()).NotTo(ContainSubstring("leaked"))
		Expect(logs.String()).To(ContainSubstring("panic recovered"))
	})

	It("lets ErrAbortHandler through", func() {
		logger := slog.New(slog.NewTextHandler(logs, nil))
		handler := middleware.RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		Expect(func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		}).To(PanicWith(http.ErrAbortHandler))
	})
})

var _ = Describe("LoggingMiddleware", func() {
	It("masks passwords in bodies and headers", func() {
		logs := &bytes.Buffer{}
		logger := slog.New(slog.NewJSONHandler(logs, nil))
		var body string
		handler := middleware.LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			body = string(raw)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":1}`))
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/client-portal/1/comments",
			strings.NewReader(`{"content":"hi","password":"hunter2"}`))
		req.Header.Set("X-Portal-Password", "hunter2")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusCreated))
		Expect(body).To(ContainSubstring("hunter2"))
		Expect(logs.String()).NotTo(ContainSubstring("hunter2"))
		Expect(logs.String()).To(ContainSubstring(`"status_code":201`))
	})

	It("logs through the request logger and keeps ordinary fields", func() {
		logs := &bytes.Buffer{}
		lg := slog.New(slog.NewJSONHandler(logs, nil))
		handler := middleware.RequestID(lg)(middleware.LoggingMiddleware(lg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})))

		req := httptest.NewRequest(http.MethodPost, "/api/events",
			strings.NewReader(`{"title":"Keynote","author":"Ada"}`))
		req.Header.Set(middleware.TraceHeader, "trace-7")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
		Expect(lines).To(HaveLen(2))
		for _, l := range lines {
			Expect(l).To(ContainSubstring(`"trace_id":"trace-7"`))
		}
		Expect(lines[0]).To(ContainSubstring("Keynote"))
		Expect(lines[0]).To(ContainSubstring("author"))
		Expect(lines[0]).NotTo(ContainSubstring("FILTERED"))
	})
})
