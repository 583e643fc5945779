package access_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi"
	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/access"
	"github.com/matteocalo/photodesk/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Handler", func() {
	var (
		f      *fixture
		router *chi.Mux
	)

	BeforeEach(func() {
		f = newFixture()
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		h := access.NewHandler(transport.NewBaseHandler(logger), f.service)

		router = chi.NewRouter()
		router.Post("/photo-jobs/{id}/verify-password", h.VerifyPassword)
		router.Get("/client-portal/{jobId}", h.GetPortalView)
		router.Get("/client-portal/{jobId}/comments", h.ListPortalComments)
		router.Post("/client-portal/{jobId}/comments", h.PostClientComment)
		router.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					next.ServeHTTP(w, req.WithContext(internal.ContextWithUserID(req.Context(), ownerID)))
				})
			})
			r.Post("/photo-jobs/{id}/comments", h.PostOwnerComment)
			r.Patch("/comments/{id}", h.UpdateComment)
		})
	})

	do := func(method, path, body string, header http.Header) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		for k, v := range header {
			req.Header[k] = v
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	jobPath := func(format string, id int64) string {
		return strings.Replace(format, "{id}", strconv.FormatInt(id, 10), 1)
	}

	decode := func(rec *httptest.ResponseRecorder) map[string]interface{} {
		GinkgoHelper()
		var out map[string]interface{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(Succeed())
		return out
	}

	It("verifies a portal password", func() {
		rec := do(http.MethodPost, jobPath("/photo-jobs/{id}/verify-password", f.guarded.ID), `{"password":"secret"}`, nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(decode(rec)).To(HaveKeyWithValue("valid", true))

		rec = do(http.MethodPost, jobPath("/photo-jobs/{id}/verify-password", f.guarded.ID), `{"password":"nope"}`, nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(decode(rec)).To(HaveKeyWithValue("valid", false))
	})

	It("returns 404 when verifying a missing job", func() {
		rec := do(http.MethodPost, "/photo-jobs/999/verify-password", `{"password":"secret"}`, nil)
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("serves the portal view without any password key", func() {
		rec := do(http.MethodGet, jobPath("/client-portal/{id}", f.guarded.ID), "", http.Header{access.PasswordHeader: {"secret"}})
		Expect(rec.Code).To(Equal(http.StatusOK))

		body := decode(rec)
		Expect(body).NotTo(HaveKey("password"))
		Expect(body).To(HaveKeyWithValue("locked", false))
		Expect(body).To(HaveKeyWithValue("download_link", "https://example.com/guarded"))
	})

	It("serves a locked view without the header", func() {
		rec := do(http.MethodGet, jobPath("/client-portal/{id}", f.guarded.ID), "", nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
		body := decode(rec)
		Expect(body).To(HaveKeyWithValue("locked", true))
		Expect(body).To(HaveKeyWithValue("download_link", BeNil()))
	})

	It("rejects a non-numeric job id", func() {
		rec := do(http.MethodGet, "/client-portal/abc", "", nil)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("gates client comments on the body or header password", func() {
		path := jobPath("/client-portal/{id}/comments", f.guarded.ID)

		rec := do(http.MethodPost, path, `{"content":"hello"}`, nil)
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))

		rec = do(http.MethodPost, path, `{"content":"hello","password":"wrong"}`, nil)
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))

		rec = do(http.MethodPost, path, `{"content":"hello","password":"secret"}`, nil)
		Expect(rec.Code).To(Equal(http.StatusCreated))
		Expect(decode(rec)).To(HaveKeyWithValue("is_from_client", true))

		rec = do(http.MethodPost, path, `{"content":"again"}`, http.Header{access.PasswordHeader: {"secret"}})
		Expect(rec.Code).To(Equal(http.StatusCreated))

		rec = do(http.MethodGet, path, "", http.Header{access.PasswordHeader: {"secret"}})
		Expect(rec.Code).To(Equal(http.StatusOK))
		var list []map[string]interface{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &list)).To(Succeed())
		Expect(list).To(HaveLen(2))
		Expect(list[0]).To(HaveKeyWithValue("content", "again"))
	})

	It("returns 400 for an empty comment", func() {
		rec := do(http.MethodPost, jobPath("/client-portal/{id}/comments", f.open.ID), `{"content":"   "}`, nil)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 400 for a malformed body", func() {
		rec := do(http.MethodPost, jobPath("/client-portal/{id}/comments", f.open.ID), `{"content":`, nil)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("lets the owner comment and edit", func() {
		rec := do(http.MethodPost, jobPath("/photo-jobs/{id}/comments", f.guarded.ID), `{"content":"Editing"}`, nil)
		Expect(rec.Code).To(Equal(http.StatusCreated))
		created := decode(rec)
		Expect(created).To(HaveKeyWithValue("is_from_client", false))

		id := int64(created["id"].(float64))
		rec = do(http.MethodPatch, jobPath("/comments/{id}", id), `{"content":"Done editing"}`, nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(decode(rec)).To(HaveKeyWithValue("content", "Done editing"))
	})
})
