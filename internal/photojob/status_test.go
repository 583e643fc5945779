package photojob_test

import (
	"github.com/matteocalo/photodesk/internal/photojob"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Status", func() {
	It("has eight statuses starting at TBC and ending at COMPLETED", func() {
		Expect(photojob.Statuses).To(HaveLen(8))
		Expect(photojob.Statuses[0]).To(Equal(photojob.StatusTBC))
		Expect(photojob.Statuses[7]).To(Equal(photojob.StatusCompleted))
	})

	It("increases progress strictly along the lifecycle", func() {
		prev := -1.0
		for _, s := range photojob.Statuses {
			p := photojob.Progress(s)
			Expect(p).To(BeNumerically(">", prev), string(s))
			prev = p
		}
		Expect(photojob.Progress(photojob.StatusTBC)).To(Equal(12.5))
		Expect(photojob.Progress(photojob.StatusCompleted)).To(Equal(100.0))
	})

	It("reports zero progress for an unknown code", func() {
		Expect(photojob.Progress(photojob.Status("ARCHIVED"))).To(Equal(0.0))
	})

	DescribeTable("ParseStatus",
		func(raw string, want photojob.Status, ok bool) {
			got, err := photojob.ParseStatus(raw)
			if !ok {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("exact code", "IN_PROGRESS", photojob.StatusInProgress, true),
		Entry("surrounding spaces", "  COMPLETED ", photojob.StatusCompleted, true),
		Entry("lower case", "completed", photojob.Status(""), false),
		Entry("unknown", "SHIPPED", photojob.Status(""), false),
		Entry("empty", "", photojob.Status(""), false),
	)

	It("labels known codes and echoes unknown ones", func() {
		Expect(photojob.Label(photojob.StatusReadyForReview)).To(Equal("Ready for review"))
		Expect(photojob.Label(photojob.Status("X"))).To(Equal("X"))
	})

	It("allows client actions only while the job is ready for review", func() {
		for _, s := range photojob.Statuses {
			actions := photojob.AllowedClientActions(s)
			if s == photojob.StatusReadyForReview {
				Expect(actions).To(Equal(photojob.ClientActions{CanComment: true, CanApprove: true}))
			} else {
				Expect(actions).To(Equal(photojob.ClientActions{}), string(s))
			}
		}
	})
})
