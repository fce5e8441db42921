//go:build integration

package integration

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/you-humble/garage-ops/internal/model"
	aptpostgres "github.com/you-humble/garage-ops/internal/repository/appointment/postgres"
)

func newAppointment(date, slot string) *model.Appointment {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &model.Appointment{
		ID:            gofakeit.UUID(),
		CustomerName:  gofakeit.Name(),
		CustomerEmail: "customer@example.com",
		VehicleMake:   "Toyota",
		VehicleModel:  "Corolla",
		VehicleYear:   2018,
		LicensePlate:  "XY987ZT",
		ServiceTypes:  []string{"oil change"},
		Date:          date,
		TimeSlot:      slot,
		Status:        model.AppointmentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

var _ = Describe("Appointment repository (postgres)", Ordered, func() {
	BeforeEach(func() {
		_, err := postgresC.Pool().Exec(ctx, "TRUNCATE appointments")
		Expect(err).NotTo(HaveOccurred())
	})

	It("round-trips an appointment", func() {
		repo := aptpostgres.NewAppointmentRepository(postgresC.Pool())

		a := newAppointment("2024-07-01", "13:00")
		Expect(repo.Create(ctx, a)).To(Succeed())

		got, err := repo.AppointmentByID(ctx, a.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.ServiceTypes).To(Equal(a.ServiceTypes))
		Expect(got.TimeSlot).To(Equal("13:00"))
		Expect(got.CreatedAt).To(BeTemporally("~", a.CreatedAt, time.Millisecond))
	})

	It("does not hold cancelled slots", func() {
		repo := aptpostgres.NewAppointmentRepository(postgresC.Pool())

		kept := newAppointment("2024-07-01", "09:00")
		cancelled := newAppointment("2024-07-01", "10:00")
		cancelled.Status = model.AppointmentCancelled
		other := newAppointment("2024-07-02", "11:00")

		for _, a := range []*model.Appointment{kept, cancelled, other} {
			Expect(repo.Create(ctx, a)).To(Succeed())
		}

		booked, err := repo.BookedSlots(ctx, "2024-07-01")
		Expect(err).NotTo(HaveOccurred())
		Expect(booked).To(ConsistOf("09:00"))
	})

	It("allows two rows in one slot at the storage level", func() {
		repo := aptpostgres.NewAppointmentRepository(postgresC.Pool())

		Expect(repo.Create(ctx, newAppointment("2024-07-03", "15:00"))).To(Succeed())
		Expect(repo.Create(ctx, newAppointment("2024-07-03", "15:00"))).To(Succeed())

		list, err := repo.List(ctx, model.AppointmentsFilter{Date: "2024-07-03"})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(2))
	})

	It("searches with literal wildcards", func() {
		repo := aptpostgres.NewAppointmentRepository(postgresC.Pool())

		a := newAppointment("2024-07-04", "12:00")
		a.ServiceTypes = []string{"100% synthetic oil"}
		Expect(repo.Create(ctx, a)).To(Succeed())
		Expect(repo.Create(ctx, newAppointment("2024-07-04", "14:00"))).To(Succeed())

		list, err := repo.List(ctx, model.AppointmentsFilter{Query: "100%"})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].ID).To(Equal(a.ID))

		list, err = repo.List(ctx, model.AppointmentsFilter{Query: "corolla"})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(2))
	})

	It("replaces and deletes", func() {
		repo := aptpostgres.NewAppointmentRepository(postgresC.Pool())

		a := newAppointment("2024-07-05", "16:00")
		Expect(repo.Create(ctx, a)).To(Succeed())

		a.Status = model.AppointmentConfirmed
		a.Notes = "bring the spare key"
		Expect(repo.Replace(ctx, a)).To(Succeed())

		got, err := repo.AppointmentByID(ctx, a.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Status).To(Equal(model.AppointmentConfirmed))
		Expect(got.Notes).To(Equal("bring the spare key"))

		Expect(repo.Delete(ctx, a.ID)).To(Succeed())
		Expect(repo.Delete(ctx, a.ID)).To(MatchError(model.ErrAppointmentNotFound))

		missing := newAppointment("2024-07-05", "16:00")
		Expect(repo.Replace(ctx, missing)).To(MatchError(model.ErrAppointmentNotFound))
	})
})
