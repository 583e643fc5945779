package equipment_test

import (
	"log/slog"
	"os"

	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/equipment"
	"github.com/matteocalo/photodesk/internal/storage/memstore"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Service", func() {
	var service *equipment.Service

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		service = equipment.NewService(memstore.New().Equipment(), logger)
	})

	It("defaults the status to available", func() {
		e, err := service.CreateEquipment(1, equipment.CreateEquipmentDTO{Name: "X-T5", Type: "camera"})
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Status).To(Equal(equipment.StatusAvailable))
	})

	It("rejects an unknown status", func() {
		_, err := service.CreateEquipment(1, equipment.CreateEquipmentDTO{Name: "X-T5", Type: "camera", Status: "lost"})
		Expect(internal.IsErrorType(err, internal.ErrorTypeValidation)).To(BeTrue())

		e, err := service.CreateEquipment(1, equipment.CreateEquipmentDTO{Name: "X-T5", Type: "camera"})
		Expect(err).NotTo(HaveOccurred())
		lost := "lost"
		_, err = service.UpdateEquipment(e.ID, 1, equipment.Patch{Status: &lost})
		Expect(internal.IsErrorType(err, internal.ErrorTypeValidation)).To(BeTrue())
	})

	It("moves equipment into maintenance", func() {
		e, err := service.CreateEquipment(1, equipment.CreateEquipmentDTO{Name: "X-T5", Type: "camera"})
		Expect(err).NotTo(HaveOccurred())

		status := equipment.StatusMaintenance
		updated, err := service.UpdateEquipment(e.ID, 1, equipment.Patch{Status: &status})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Status).To(Equal(equipment.StatusMaintenance))
		Expect(updated.Name).To(Equal("X-T5"))
	})

	It("is scoped to its owner", func() {
		e, err := service.CreateEquipment(1, equipment.CreateEquipmentDTO{Name: "X-T5", Type: "camera"})
		Expect(err).NotTo(HaveOccurred())

		Expect(internal.IsErrorType(service.DeleteEquipment(e.ID, 2), internal.ErrorTypeForbidden)).To(BeTrue())
		Expect(service.DeleteEquipment(e.ID, 1)).To(Succeed())

		_, err = service.GetOwned(e.ID, 1)
		Expect(internal.IsErrorType(err, internal.ErrorTypeNotFound)).To(BeTrue())
	})
})
