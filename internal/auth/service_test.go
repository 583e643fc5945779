package auth_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/auth"
	"github.com/matteocalo/photodesk/internal/core/password"
	"github.com/matteocalo/photodesk/internal/storage/memstore"
	"github.com/matteocalo/photodesk/internal/transport"
	"github.com/matteocalo/photodesk/internal/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func expectCode(err error, code internal.ErrorCode) {
	GinkgoHelper()
	appErr, ok := internal.IsAppError(err)
	Expect(ok).To(BeTrue(), "expected AppError, got %v", err)
	Expect(appErr.Type).To(Equal(internal.ErrorTypeUnauthorized))
	Expect(appErr.Code).To(Equal(code))
}

var _ = Describe("Service", func() {
	var (
		logger   *slog.Logger
		store    *memstore.MemStorage
		tokenGen *auth.JWTTokenGenerator
		service  *auth.Service
		ada      *user.User
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		store = memstore.New()
		hasher := password.NewHasher(bcrypt.MinCost)
		tokenGen = auth.NewJWTTokenGenerator(testSecret, time.Hour, 0)
		service = auth.NewService(store.Users(), tokenGen, hasher, logger)

		var err error
		ada, err = user.NewService(store.Users(), hasher, logger).Register(user.RegisterDTO{
			Username: "ada",
			Email:    "Ada@Example.com",
			Password: "correct-horse",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Authenticate", func() {
		It("logs in by username", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Login: "ada", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())
			Expect(tokens.RefreshToken).NotTo(BeEmpty())
			Expect(tokens.ExpiresAt).To(BeTemporally("~", time.Now().Add(time.Hour), time.Minute))

			claims, err := service.ValidateAccessToken(tokens.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(ada.ID))
		})

		It("logs in by email regardless of case", func() {
			_, err := service.Authenticate(auth.LoginDTO{Login: "ADA@example.com", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("gives the same error for a wrong password and an unknown user", func() {
			_, err := service.Authenticate(auth.LoginDTO{Login: "ada", Password: "wrong"})
			expectCode(err, internal.ErrCodeInvalidCredentials)

			_, err = service.Authenticate(auth.LoginDTO{Login: "nobody", Password: "correct-horse"})
			expectCode(err, internal.ErrCodeInvalidCredentials)
		})

		It("validates the request", func() {
			_, err := service.Authenticate(auth.LoginDTO{})
			Expect(internal.IsErrorType(err, internal.ErrorTypeValidation)).To(BeTrue())
		})
	})

	Describe("tokens", func() {
		It("does not accept a refresh token as an access token", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Login: "ada", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(tokens.RefreshToken)
			expectCode(err, internal.ErrCodeInvalidToken)
		})

		It("rotates a refresh token into a fresh pair", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Login: "ada", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())

			rotated, err := service.RefreshTokens(tokens.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			_, err = service.ValidateAccessToken(rotated.AccessToken)
			Expect(err).NotTo(HaveOccurred())
		})

		It("reports an expired token", func() {
			expired := auth.NewJWTTokenGenerator(testSecret, -time.Minute, 0)
			token, _, err := expired.GenerateAccessToken(ada.ID, ada.Username)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			expectCode(err, internal.ErrCodeTokenExpired)
		})

		It("rejects a token signed with another secret", func() {
			other := auth.NewJWTTokenGenerator("ffffffffffffffffffffffffffffffff", time.Hour, 0)
			token, _, err := other.GenerateAccessToken(ada.ID, ada.Username)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			expectCode(err, internal.ErrCodeInvalidToken)
		})
	})

	Describe("AuthMiddleware", func() {
		var handler http.Handler

		BeforeEach(func() {
			h := auth.NewHandler(transport.NewBaseHandler(logger), service)
			handler = h.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := internal.UserIDFromContext(r.Context())
				Expect(ok).To(BeTrue())
				Expect(id).To(Equal(ada.ID))
				w.WriteHeader(http.StatusNoContent)
			}))
		})

		It("rejects a request without a bearer token", func() {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("passes the user id through the context", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Login: "ada", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusNoContent))
		})
	})
})
