package importer_test

import (
	"github.com/frahmantamala/expense-tracker/internal/importer"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NormalizeHeaders", func() {
	fieldByIndex := func(mapping importer.HeaderMap, index int) *importer.Column {
		for i := range mapping.Columns {
			if mapping.Columns[i].Index == index {
				return &mapping.Columns[i]
			}
		}
		return nil
	}

	It("should lowercase and trim header cells", func() {
		mapping := importer.NormalizeHeaders([]string{"  Amount ", "DESCRIPTION"})
		Expect(mapping.Columns).To(HaveLen(2))
		Expect(mapping.Columns[0].Field).To(Equal(importer.FieldAmount))
		Expect(mapping.Columns[1].Field).To(Equal(importer.FieldDescription))
	})

	It("should fold paid-by variants onto one field", func() {
		for _, variant := range []string{"Paid By", "paid by", "PAIDBY", "PaidBy"} {
			mapping := importer.NormalizeHeaders([]string{variant})
			Expect(mapping.Columns[0].Field).To(Equal(importer.FieldPaidBy), "variant %q", variant)
		}
	})

	It("should fold sub category onto subcategory", func() {
		mapping := importer.NormalizeHeaders([]string{"Sub Category"})
		Expect(mapping.Columns[0].Field).To(Equal(importer.FieldSubcategory))
	})

	It("should flag any header containing date for date parsing", func() {
		mapping := importer.NormalizeHeaders([]string{"Date", "Transaction Date", "Amount"})
		Expect(fieldByIndex(mapping, 0).IsDate).To(BeTrue())
		Expect(fieldByIndex(mapping, 1).IsDate).To(BeTrue())
		Expect(fieldByIndex(mapping, 2).IsDate).To(BeFalse())
	})

	It("should preserve unrecognized headers verbatim", func() {
		mapping := importer.NormalizeHeaders([]string{"Merchant"})
		Expect(mapping.Columns[0].Field).To(Equal("merchant"))
	})

	It("should skip blank header cells", func() {
		mapping := importer.NormalizeHeaders([]string{"Amount", "", "  ", "Category"})
		Expect(mapping.Columns).To(HaveLen(2))
		Expect(fieldByIndex(mapping, 1)).To(BeNil())
	})

	It("should report an all-blank header row as empty", func() {
		mapping := importer.NormalizeHeaders([]string{"", "   "})
		Expect(mapping.Empty()).To(BeTrue())
	})
})

var _ = Describe("BuildRecord", func() {
	var headers importer.HeaderMap

	BeforeEach(func() {
		headers = importer.NormalizeHeaders([]string{
			"Date", "Amount", "Description", "Paid By", "Category", "Sub Category", "Tags", "Type", "Merchant",
		})
	})

	It("should populate every canonical field", func() {
		record := importer.BuildRecord(headers, []string{
			"2024-03-10", "1,250.75", "Flight tickets", "Credit Card", "Travel", "Flights", "work, trip", "Need", "Acme Air",
		})

		Expect(record.Date).NotTo(BeNil())
		Expect(record.Date.Format("2006-01-02")).To(Equal("2024-03-10"))
		Expect(record.Amount).NotTo(BeNil())
		Expect(*record.Amount).To(Equal(1250.75))
		Expect(record.Description).To(Equal("Flight tickets"))
		Expect(record.PaidBy).To(Equal("Credit Card"))
		Expect(record.Category).To(Equal("Travel"))
		Expect(record.Subcategory).To(Equal("Flights"))
		Expect(record.Tags).To(Equal([]string{"work", "trip"}))
		Expect(record.Type).To(Equal("need"))
		Expect(record.Extra).To(HaveKeyWithValue("merchant", "Acme Air"))
	})

	It("should keep extra date-flagged columns under their own header", func() {
		mapping := importer.NormalizeHeaders([]string{"Date", "Amount", "Payment Date"})
		record := importer.BuildRecord(mapping, []string{"2024-03-15", "50", "2024-04-01"})

		Expect(record.Date).NotTo(BeNil())
		Expect(record.Date.Format("2006-01-02")).To(Equal("2024-03-15"))
		Expect(record.Extra).To(HaveKeyWithValue("payment date", "2024-04-01"))
	})

	It("should keep an unparseable extra date column verbatim", func() {
		mapping := importer.NormalizeHeaders([]string{"Date", "Due Date"})
		record := importer.BuildRecord(mapping, []string{"2024-03-15", "whenever"})

		Expect(record.Date.Format("2006-01-02")).To(Equal("2024-03-15"))
		Expect(record.Extra).To(HaveKeyWithValue("due date", "whenever"))
	})

	It("should keep the row when a date cell is unparseable", func() {
		record := importer.BuildRecord(headers, []string{
			"someday", "10.00", "Coffee", "Cash", "Food", "", "", "want",
		})
		Expect(record.Date).To(BeNil())
		Expect(record.Amount).NotTo(BeNil())
		Expect(record.Description).To(Equal("Coffee"))
	})

	It("should keep the row when an amount cell is unparseable", func() {
		record := importer.BuildRecord(headers, []string{
			"2024-03-10", "free", "Coffee", "Cash", "Food",
		})
		Expect(record.Amount).To(BeNil())
		Expect(record.Category).To(Equal("Food"))
	})

	It("should normalize multi-word types onto stored keys", func() {
		record := importer.BuildRecord(headers, []string{
			"2024-03-10", "10", "x", "Cash", "Food", "", "", "Not Sure",
		})
		Expect(record.Type).To(Equal("not_sure"))
	})

	It("should tolerate rows shorter than the header", func() {
		record := importer.BuildRecord(headers, []string{"2024-03-10", "10"})
		Expect(record.Date).NotTo(BeNil())
		Expect(record.Amount).NotTo(BeNil())
		Expect(record.Category).To(BeEmpty())
	})
})

var _ = Describe("IsEmptyRow", func() {
	It("should report all-blank rows as empty", func() {
		Expect(importer.IsEmptyRow([]string{"", "  ", "\t"})).To(BeTrue())
	})

	It("should report rows with any content as non-empty", func() {
		Expect(importer.IsEmptyRow([]string{"", "x", ""})).To(BeFalse())
	})

	It("should report a zero-length row as empty", func() {
		Expect(importer.IsEmptyRow(nil)).To(BeTrue())
	})
})

var _ = Describe("SplitTags", func() {
	It("should split on commas and trim whitespace", func() {
		Expect(importer.SplitTags(" work , trip ,urgent")).To(Equal([]string{"work", "trip", "urgent"}))
	})

	It("should drop empty segments", func() {
		Expect(importer.SplitTags("a,,b,")).To(Equal([]string{"a", "b"}))
	})
})
