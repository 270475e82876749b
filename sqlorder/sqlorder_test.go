package sqlorder_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/tableaux-project/sortable"
	"github.com/tableaux-project/sortable/sqlorder"
)

var _ = Describe("Order builders", func() {
	Context("for dialects with native null placement", func() {
		It("should suffix NULLS LAST", func() {
			term := sqlorder.Postgres{}.OrderColumn("person_rating", sortable.DirectionAsc, sortable.NullsLast)
			Expect(term).To(Equal("person_rating ASC NULLS LAST"))
		})

		It("should suffix NULLS FIRST independently of the direction", func() {
			ascending := sqlorder.SQLite{}.OrderColumn("person_rating", sortable.DirectionAsc, sortable.NullsFirst)
			descending := sqlorder.ClickHouse{}.OrderColumn("person_rating", sortable.DirectionDesc, sortable.NullsFirst)

			Expect(ascending).To(Equal("person_rating ASC NULLS FIRST"))
			Expect(descending).To(Equal("person_rating DESC NULLS FIRST"))
		})
	})

	Context("for MySQL", func() {
		It("should emulate NULLS LAST with an IS NULL sort key", func() {
			term := sqlorder.MySQL{}.OrderColumn("person_rating", sortable.DirectionAsc, sortable.NullsLast)
			Expect(term).To(Equal("(person_rating IS NULL), person_rating ASC"))
		})

		It("should emulate NULLS FIRST with an IS NOT NULL sort key", func() {
			term := sqlorder.MySQL{}.OrderColumn("person_rating", sortable.DirectionDesc, sortable.NullsFirst)
			Expect(term).To(Equal("(person_rating IS NOT NULL), person_rating DESC"))
		})
	})

	Context("when rendering full clauses", func() {
		It("should prefix ORDER BY", func() {
			clause := sqlorder.Clause(sqlorder.Postgres{}, "person_name", sortable.DirectionDesc, sortable.NullsLast)
			Expect(clause).To(Equal("ORDER BY person_name DESC NULLS LAST"))
		})
	})

	Context("when rendering from a sorter", func() {
		It("should use the active direction and the field's null handling", func() {
			sorter := sortable.NewSorter[float64, valueField]()
			sorter.ToggleField(0)

			term := sqlorder.ForState(sqlorder.Postgres{}, sorter, "t_value")
			Expect(term).To(Equal("t_value DESC NULLS FIRST"))
		})
	})
})

// valueField is a minimal reversible field over bare floats, nulls first.
type valueField int

func (valueField) SortBy() *sortable.SortBy {
	return sortable.IncreasingOrDecreasing()
}

func (valueField) NullHandling() sortable.NullHandling {
	return sortable.NullsFirst
}

func (valueField) PartialCompareBy(a, b float64) (sortable.Ordering, bool) {
	return sortable.CompareFloats(a, b)
}
