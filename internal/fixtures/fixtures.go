// Package fixtures holds the static placeholder records the seed endpoint
// writes into the database. IDs are fixed so reruns hit the same primary
// keys and conflict-skip instead of duplicating rows.
package fixtures

import (
	"time"

	"github.com/google/uuid"

	"dashboard-seed-backend/internal/models"
)

// Users carry their demo password in plaintext here; the seeder hashes it
// before anything reaches the database.
func Users() []models.User {
	return []models.User{
		{
			ID:       uuid.MustParse("410544b2-4001-4271-9855-fec4b6a6442a"),
			Name:     "Demo Admin",
			Email:    "admin@demo.dev",
			Password: "123456",
		},
	}
}

var customerIDs = struct {
	delacroix, barnes, osei, tanaka, petrov, mwangi, larsen, quinn uuid.UUID
}{
	delacroix: uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"),
	barnes:    uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a"),
	osei:      uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a"),
	tanaka:    uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2"),
	petrov:    uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9"),
	mwangi:    uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb"),
	larsen:    uuid.MustParse("126eed9c-c90c-4ef6-a4a8-fcf7408d3c66"),
	quinn:     uuid.MustParse("3958dc9e-787f-4377-85e9-fec4b6a6442a"),
}

func Customers() []models.Customer {
	return []models.Customer{
		{ID: customerIDs.delacroix, Name: "Marie Delacroix", Email: "marie@delacroix.dev", ImageURL: "/customers/marie-delacroix.png"},
		{ID: customerIDs.barnes, Name: "Victor Barnes", Email: "victor@barnes.dev", ImageURL: "/customers/victor-barnes.png"},
		{ID: customerIDs.osei, Name: "Ama Osei", Email: "ama@osei.dev", ImageURL: "/customers/ama-osei.png"},
		{ID: customerIDs.tanaka, Name: "Kenji Tanaka", Email: "kenji@tanaka.dev", ImageURL: "/customers/kenji-tanaka.png"},
		{ID: customerIDs.petrov, Name: "Elena Petrov", Email: "elena@petrov.dev", ImageURL: "/customers/elena-petrov.png"},
		{ID: customerIDs.mwangi, Name: "Grace Mwangi", Email: "grace@mwangi.dev", ImageURL: "/customers/grace-mwangi.png"},
		{ID: customerIDs.larsen, Name: "Nils Larsen", Email: "nils@larsen.dev", ImageURL: "/customers/nils-larsen.png"},
		{ID: customerIDs.quinn, Name: "Aoife Quinn", Email: "aoife@quinn.dev", ImageURL: "/customers/aoife-quinn.png"},
	}
}

func Invoices() []models.Invoice {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []models.Invoice{
		{ID: uuid.MustParse("9a0f1f66-20a3-4a1c-8f1f-0a4f0e2d4b01"), CustomerID: customerIDs.delacroix, Amount: 15795, Status: models.InvoiceStatusPending, Date: day(2022, time.December, 6)},
		{ID: uuid.MustParse("9a0f1f66-20a3-4a1c-8f1f-0a4f0e2d4b02"), CustomerID: customerIDs.barnes, Amount: 20348, Status: models.InvoiceStatusPending, Date: day(2022, time.November, 14)},
		{ID: uuid.MustParse("9a0f1f66-20a3-4a1c-8f1f-0a4f0e2d4b03"), CustomerID: customerIDs.petrov, Amount: 3040, Status: models.InvoiceStatusPaid, Date: day(2022, time.October, 29)},
		{ID: uuid.MustParse("9a0f1f66-20a3-4a1c-8f1f-0a4f0e2d4b04"), CustomerID: customerIDs.tanaka, Amount: 44800, Status: models.InvoiceStatusPaid, Date: day(2023, time.September, 10)},
		{ID: uuid.MustParse("9a0f1f66-20a3-4a1c-8f1f-0a4f0e2d4b05"), CustomerID: customerIDs.mwangi, Amount: 34577, Status: models.InvoiceStatusPending, Date: day(2023, time.August, 5)},
		{ID: uuid.MustParse("9a0f1f66-20a3-4a1c-8f1f-0a4f0e2d4b06"), CustomerID: customerIDs.larsen, Amount: 54246, Status: models.InvoiceStatusPending, Date: day(2023, time.July, 16)},
		{ID: uuid.MustParse("9a0f1f66-20a3-4a1c-8f1f-0a4f0e2d4b07"), CustomerID: customerIDs.osei, Amount: 666, Status: models.InvoiceStatusPending, Date: day(2023, time.June, 27)},
		{ID: uuid.MustParse("9a0f1f66-20a3-4a1c-8f1f-0a4f0e2d4b08"), CustomerID: customerIDs.quinn, Amount: 32545, Status: models.InvoiceStatusPaid, Date: day(2023, time.June, 9)},
		{ID: uuid.MustParse("9a0f1f66-20a3-4a1c-8f1f-0a4f0e2d4b09"), CustomerID: customerIDs.petrov, Amount: 1250, Status: models.InvoiceStatusPaid, Date: day(2023, time.June, 17)},
		{ID: uuid.MustParse("9a0f1f66-20a3-4a1c-8f1f-0a4f0e2d4b10"), CustomerID: customerIDs.barnes, Amount: 8546, Status: models.InvoiceStatusPaid, Date: day(2023, time.June, 7)},
		{ID: uuid.MustParse("9a0f1f66-20a3-4a1c-8f1f-0a4f0e2d4b11"), CustomerID: customerIDs.delacroix, Amount: 500, Status: models.InvoiceStatusPaid, Date: day(2023, time.August, 19)},
		{ID: uuid.MustParse("9a0f1f66-20a3-4a1c-8f1f-0a4f0e2d4b12"), CustomerID: customerIDs.mwangi, Amount: 8945, Status: models.InvoiceStatusPaid, Date: day(2023, time.June, 3)},
		{ID: uuid.MustParse("9a0f1f66-20a3-4a1c-8f1f-0a4f0e2d4b13"), CustomerID: customerIDs.tanaka, Amount: 1000, Status: models.InvoiceStatusPaid, Date: day(2022, time.June, 5)},
	}
}

// MonthOrder is the canonical ordering of revenue month labels.
var MonthOrder = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func RevenueRows() []models.Revenue {
	amounts := []int64{200000, 180000, 220000, 250000, 230000, 320000, 350000, 370000, 250000, 280000, 300000, 480000}
	rows := make([]models.Revenue, 0, len(MonthOrder))
	for i, m := range MonthOrder {
		rows = append(rows, models.Revenue{Month: m, Revenue: amounts[i]})
	}
	return rows
}
