package user_test

import (
	"log/slog"
	"os"

	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/core/password"
	"github.com/matteocalo/photodesk/internal/storage/memstore"
	"github.com/matteocalo/photodesk/internal/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Service", func() {
	var (
		hasher  *password.Hasher
		service *user.Service
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		hasher = password.NewHasher(bcrypt.MinCost)
		service = user.NewService(memstore.New().Users(), hasher, logger)
	})

	Describe("Register", func() {
		It("defaults the role and hashes the password", func() {
			u, err := service.Register(user.RegisterDTO{
				Username: "  mario ",
				Email:    "Mario@Example.com",
				Password: "s3cretpass",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(u.ID).To(Equal(int64(1)))
			Expect(u.Username).To(Equal("mario"))
			Expect(u.Email).To(Equal("mario@example.com"))
			Expect(u.Role).To(Equal(user.RolePhotographer))
			Expect(u.PasswordHash).NotTo(Equal("s3cretpass"))
			Expect(hasher.Matches(u.PasswordHash, "s3cretpass")).To(BeTrue())
		})

		It("rejects a duplicate username", func() {
			_, err := service.Register(user.RegisterDTO{Username: "mario", Email: "a@example.com", Password: "s3cretpass"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Register(user.RegisterDTO{Username: "mario", Email: "b@example.com", Password: "s3cretpass"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeConflict))
			Expect(appErr.Code).To(Equal(internal.ErrCodeDuplicateUser))
		})

		DescribeTable("rejects invalid input",
			func(dto user.RegisterDTO) {
				_, err := service.Register(dto)
				Expect(internal.IsErrorType(err, internal.ErrorTypeValidation)).To(BeTrue())
			},
			Entry("short username", user.RegisterDTO{Username: "ab", Email: "a@example.com", Password: "s3cretpass"}),
			Entry("bad email", user.RegisterDTO{Username: "mario", Email: "nope", Password: "s3cretpass"}),
			Entry("short password", user.RegisterDTO{Username: "mario", Email: "a@example.com", Password: "short"}),
			Entry("unknown role", user.RegisterDTO{Username: "mario", Email: "a@example.com", Password: "s3cretpass", Role: "owner"}),
		)
	})

	It("reports a missing user", func() {
		_, err := service.GetByID(42)
		Expect(internal.IsErrorType(err, internal.ErrorTypeNotFound)).To(BeTrue())
	})
})
