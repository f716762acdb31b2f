package importer_test

import (
	"time"

	"github.com/frahmantamala/expense-tracker/internal/importer"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseDateCell", func() {
	expectDate := func(result *time.Time, year int, month time.Month, day int) {
		Expect(result).NotTo(BeNil())
		Expect(result.Year()).To(Equal(year))
		Expect(result.Month()).To(Equal(month))
		Expect(result.Day()).To(Equal(day))
	}

	Context("with nil or unparseable input", func() {
		It("should return nil for nil", func() {
			Expect(importer.ParseDateCell(nil)).To(BeNil())
		})

		It("should return nil for garbage text", func() {
			Expect(importer.ParseDateCell("not a date")).To(BeNil())
		})

		It("should return nil for blank strings", func() {
			Expect(importer.ParseDateCell("   ")).To(BeNil())
		})

		It("should return nil for a zero time value", func() {
			Expect(importer.ParseDateCell(time.Time{})).To(BeNil())
		})

		It("should return nil for negative serial numbers", func() {
			Expect(importer.ParseDateCell(-5.0)).To(BeNil())
		})
	})

	Context("with date values", func() {
		It("should pass a time value through unchanged", func() {
			now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
			result := importer.ParseDateCell(now)
			Expect(result).NotTo(BeNil())
			Expect(result.Equal(now)).To(BeTrue())
		})
	})

	Context("with spreadsheet serial numbers", func() {
		It("should anchor serial 0 at the 1899-12-30 epoch", func() {
			expectDate(importer.ParseDateCell(0.0), 1899, time.December, 30)
		})

		It("should convert a modern serial number", func() {
			// 45292 days after the epoch
			expectDate(importer.ParseDateCell(45292.0), 2024, time.January, 1)
		})

		It("should accept integer serials", func() {
			expectDate(importer.ParseDateCell(45292), 2024, time.January, 1)
		})

		It("should treat a numeric string as a serial number", func() {
			expectDate(importer.ParseDateCell("45292"), 2024, time.January, 1)
		})
	})

	Context("with date strings", func() {
		It("should parse strict ISO dates", func() {
			expectDate(importer.ParseDateCell("2024-03-10"), 2024, time.March, 10)
		})

		It("should parse RFC3339 timestamps", func() {
			expectDate(importer.ParseDateCell("2024-03-10T15:04:05Z"), 2024, time.March, 10)
		})

		It("should resolve ambiguous slash dates US-style", func() {
			// 03/04/2024 is March 4, not April 3
			expectDate(importer.ParseDateCell("03/04/2024"), 2024, time.March, 4)
		})

		It("should fall through to dd/MM/yyyy when the month is impossible", func() {
			// 25/03/2024 cannot be MM/dd
			expectDate(importer.ParseDateCell("25/03/2024"), 2024, time.March, 25)
		})

		It("should parse dd-MM-yyyy", func() {
			expectDate(importer.ParseDateCell("25-03-2024"), 2024, time.March, 25)
		})

		It("should parse the display format", func() {
			expectDate(importer.ParseDateCell("Mar 10, 2024"), 2024, time.March, 10)
		})

		It("should parse long month names", func() {
			expectDate(importer.ParseDateCell("March 5, 2024"), 2024, time.March, 5)
		})

		It("should parse permissive fallback layouts", func() {
			expectDate(importer.ParseDateCell("2024/03/10"), 2024, time.March, 10)
		})
	})
})
