package sortable_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/tableaux-project/sortable"
)

var _ = Describe("Sort descriptors", func() {
	Context("when constructed", func() {
		It("should mark unsortable fields with a nil descriptor", func() {
			Expect(sortable.Unsortable()).To(BeNil())
		})

		It("should carry the initial direction", func() {
			Expect(sortable.Increasing().Direction()).To(Equal(sortable.DirectionAsc))
			Expect(sortable.Decreasing().Direction()).To(Equal(sortable.DirectionDesc))
			Expect(sortable.IncreasingOrDecreasing().Direction()).To(Equal(sortable.DirectionAsc))
			Expect(sortable.DecreasingOrIncreasing().Direction()).To(Equal(sortable.DirectionDesc))
		})

		It("should distinguish fixed from reversible descriptors", func() {
			Expect(sortable.Increasing().Reversible()).To(BeFalse())
			Expect(sortable.Decreasing().Reversible()).To(BeFalse())
			Expect(sortable.IncreasingOrDecreasing().Reversible()).To(BeTrue())
			Expect(sortable.DecreasingOrIncreasing().Reversible()).To(BeTrue())
		})
	})

	Context("when ensuring a requested direction", func() {
		It("should pass requests through on reversible descriptors", func() {
			sortBy := sortable.DecreasingOrIncreasing()

			Expect(sortBy.EnsureDirection(sortable.DirectionAsc)).To(Equal(sortable.DirectionAsc))
			Expect(sortBy.EnsureDirection(sortable.DirectionDesc)).To(Equal(sortable.DirectionDesc))
		})

		It("should clamp requests to the one legal direction on fixed descriptors", func() {
			sortBy := sortable.Decreasing()

			Expect(sortBy.EnsureDirection(sortable.DirectionAsc)).To(Equal(sortable.DirectionDesc))
			Expect(sortBy.EnsureDirection(sortable.DirectionDesc)).To(Equal(sortable.DirectionDesc))
		})
	})
})

var _ = Describe("Directions and orderings", func() {
	It("should reverse directions", func() {
		Expect(sortable.DirectionAsc.Reverse()).To(Equal(sortable.DirectionDesc))
		Expect(sortable.DirectionDesc.Reverse()).To(Equal(sortable.DirectionAsc))
	})

	It("should reverse orderings", func() {
		Expect(sortable.OrderingLess.Reverse()).To(Equal(sortable.OrderingGreater))
		Expect(sortable.OrderingGreater.Reverse()).To(Equal(sortable.OrderingLess))
		Expect(sortable.OrderingEqual.Reverse()).To(Equal(sortable.OrderingEqual))
	})
})
