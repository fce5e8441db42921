//go:build integration

package integration

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/garage-ops/internal/model"
	aptmongo "github.com/you-humble/garage-ops/internal/repository/appointment/mongo"
	partrepo "github.com/you-humble/garage-ops/internal/repository/part"
	porepo "github.com/you-humble/garage-ops/internal/repository/purchaseorder"
	quorepo "github.com/you-humble/garage-ops/internal/repository/quotation"
	suprepo "github.com/you-humble/garage-ops/internal/repository/supplier"
)

func collection(name string) *mongo.Collection {
	coll := mongoC.Database().Collection(name + "_" + gofakeit.LetterN(6))
	DeferCleanup(func() {
		Expect(coll.Drop(ctx)).To(Succeed())
	})
	return coll
}

func newPart() *model.Part {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &model.Part{
		ID:           gofakeit.UUID(),
		PartID:       gofakeit.UUID(),
		PartNumber:   gofakeit.Numerify("PN-######"),
		Name:         gofakeit.ProductName(),
		CategoryID:   "brakes",
		Quantity:     10,
		MinimumStock: 2,
		UnitPrice:    12.5,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newSupplier() *model.Supplier {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &model.Supplier{
		ID:           gofakeit.UUID(),
		SupplierID:   gofakeit.UUID(),
		Name:         gofakeit.Company(),
		ContactEmail: gofakeit.Email(),
		ContactPhone: "0123456789",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

var _ = Describe("Part repository", func() {
	var coll *mongo.Collection

	BeforeEach(func() {
		coll = collection("parts")
		Expect(partrepo.EnsureIndexes(ctx, coll)).To(Succeed())
	})

	It("rejects a duplicate part number", func() {
		repo := partrepo.NewPartRepository(coll)

		first := newPart()
		Expect(repo.Create(ctx, first)).To(Succeed())

		dup := newPart()
		dup.PartNumber = first.PartNumber
		err := repo.Create(ctx, dup)
		Expect(err).To(MatchError(model.ErrConflict))

		list, err := repo.List(ctx, model.PartsFilter{})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
	})

	It("filters low stock and applies partial updates", func() {
		repo := partrepo.NewPartRepository(coll)

		p := newPart()
		Expect(repo.Create(ctx, p)).To(Succeed())

		low, err := repo.List(ctx, model.PartsFilter{LowStockOnly: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(low).To(BeEmpty())

		updated, err := repo.Update(ctx, p.ID, model.UpdatePartParams{Quantity: lo.ToPtr(int64(2))})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Quantity).To(Equal(int64(2)))
		Expect(updated.Name).To(Equal(p.Name))
		Expect(updated.IsLowStock()).To(BeTrue())

		low, err = repo.List(ctx, model.PartsFilter{LowStockOnly: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(low).To(HaveLen(1))
	})

	It("reports a missing part", func() {
		repo := partrepo.NewPartRepository(coll)

		_, err := repo.PartByID(ctx, gofakeit.UUID())
		Expect(err).To(MatchError(model.ErrPartNotFound))
		Expect(repo.Delete(ctx, gofakeit.UUID())).To(MatchError(model.ErrPartNotFound))
	})
})

var _ = Describe("Supplier repository", func() {
	It("keeps contact emails unique regardless of case", func() {
		coll := collection("suppliers")
		Expect(suprepo.EnsureIndexes(ctx, coll)).To(Succeed())
		repo := suprepo.NewSupplierRepository(coll)

		first := newSupplier()
		first.ContactEmail = "sales@example.com"
		Expect(repo.Create(ctx, first)).To(Succeed())

		second := newSupplier()
		second.ContactEmail = "Sales@Example.com"
		Expect(repo.Create(ctx, second)).To(MatchError(model.ErrConflict))

		found, err := repo.SuppliersByIDs(ctx, []string{first.ID, gofakeit.UUID()})
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(HaveLen(1))
		Expect(found[0].ID).To(Equal(first.ID))
	})
})

var _ = Describe("Purchase order repository", func() {
	It("stores items and filters by status", func() {
		coll := collection("purchase_orders")
		Expect(porepo.EnsureIndexes(ctx, coll)).To(Succeed())
		repo := porepo.NewPurchaseOrderRepository(coll)

		now := time.Now().UTC().Truncate(time.Millisecond)
		po := &model.PurchaseOrder{
			ID:         gofakeit.UUID(),
			SupplierID: gofakeit.UUID(),
			Items: []model.OrderItem{
				{Name: "Pad", Quantity: 2, UnitPrice: 10.1, TotalPrice: 20.2},
			},
			TotalAmount: 20.2,
			Status:      model.PurchaseOrderPending,
			OrderDate:   now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		Expect(repo.Create(ctx, po)).To(Succeed())

		po.Status = model.PurchaseOrderReceived
		Expect(repo.Replace(ctx, po)).To(Succeed())

		pending, err := repo.List(ctx, model.PurchaseOrdersFilter{Status: model.PurchaseOrderPending})
		Expect(err).NotTo(HaveOccurred())
		Expect(pending).To(BeEmpty())

		got, err := repo.PurchaseOrderByID(ctx, po.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Status).To(Equal(model.PurchaseOrderReceived))
		Expect(got.Items).To(Equal(po.Items))
	})
})

var _ = Describe("Quotation repository", func() {
	It("lists newest first and resolves by either identifier", func() {
		coll := collection("quotations")
		Expect(quorepo.EnsureIndexes(ctx, coll)).To(Succeed())
		repo := quorepo.NewQuotationRepository(coll)

		base := time.Now().UTC().Truncate(time.Millisecond)
		older := &model.Quotation{
			ID:          gofakeit.UUID(),
			QuotationID: model.NewQuotationID(base),
			Quantity:    1,
			Status:      model.QuotationDraft,
			CreatedAt:   base,
			UpdatedAt:   base,
		}
		newer := &model.Quotation{
			ID:          gofakeit.UUID(),
			QuotationID: model.NewQuotationID(base.Add(time.Second)),
			Quantity:    2,
			Status:      model.QuotationDraft,
			Suppliers: []model.QuoteSupplier{
				{SupplierID: "S1", Name: gofakeit.Company(), Status: model.QuotePending},
			},
			CreatedAt: base.Add(time.Second),
			UpdatedAt: base.Add(time.Second),
		}
		Expect(repo.Create(ctx, older)).To(Succeed())
		Expect(repo.Create(ctx, newer)).To(Succeed())

		list, err := repo.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(2))
		Expect(list[0].ID).To(Equal(newer.ID))

		byCode, err := repo.QuotationByID(ctx, newer.QuotationID)
		Expect(err).NotTo(HaveOccurred())
		Expect(byCode.ID).To(Equal(newer.ID))
		Expect(byCode.Suppliers).To(HaveLen(1))

		dup := *older
		dup.ID = gofakeit.UUID()
		Expect(repo.Create(ctx, &dup)).To(MatchError(model.ErrConflict))
	})
})

var _ = Describe("Appointment repository (mongo)", func() {
	It("frees a slot once the appointment is cancelled", func() {
		coll := collection("appointments")
		Expect(aptmongo.EnsureIndexes(ctx, coll)).To(Succeed())
		repo := aptmongo.NewAppointmentRepository(coll)

		a := newAppointment("2024-06-10", "10:00")
		Expect(repo.Create(ctx, a)).To(Succeed())

		booked, err := repo.BookedSlots(ctx, "2024-06-10")
		Expect(err).NotTo(HaveOccurred())
		Expect(booked).To(ConsistOf("10:00"))

		a.Status = model.AppointmentCancelled
		Expect(repo.Replace(ctx, a)).To(Succeed())

		booked, err = repo.BookedSlots(ctx, "2024-06-10")
		Expect(err).NotTo(HaveOccurred())
		Expect(booked).To(BeEmpty())
	})

	It("searches service types and vehicle fields case-insensitively", func() {
		coll := collection("appointments")
		repo := aptmongo.NewAppointmentRepository(coll)

		a := newAppointment("2024-06-11", "09:00")
		a.VehicleModel = "Golf"
		a.ServiceTypes = []string{"Brake Service"}
		Expect(repo.Create(ctx, a)).To(Succeed())
		Expect(repo.Create(ctx, newAppointment("2024-06-11", "11:00"))).To(Succeed())

		for _, q := range []string{"golf", "brake", "BRAKE SERV"} {
			list, err := repo.List(ctx, model.AppointmentsFilter{Query: q})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1), q)
			Expect(list[0].ID).To(Equal(a.ID))
		}
	})
})
