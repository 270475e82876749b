package config

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sort mapper internals", func() {
	Context("when trying to load a non existing file", func() {
		var (
			err error
		)

		BeforeEach(func() {
			_, err = loadSortSchemaFile("does-not-exist.json")
		})

		It("should error", func() {
			Expect(err).To(HaveOccurred())
		})
	})
})
