package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vin-online-shopping/internal/domain"
	"vin-online-shopping/internal/schema"
)

func TestDefault_SeedsEveryCollection(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	f := Default(now)

	assert.Len(t, f.Customers, 2)
	assert.Len(t, f.Products, 2)
	assert.Len(t, f.Categories, 4)
	assert.Len(t, f.Orders, 1)
	assert.Len(t, f.OrderedItems, 1)
	assert.Len(t, f.Payments, 1)
	assert.Equal(t, now, f.Orders[0].OrderDate)
	assert.Equal(t, now, f.Payments[0].PaymentDate)
	assert.NoError(t, f.validate())
}

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeSeed(t, `
categories:
  - id: 1
    categoryName: Books
orders:
  - id: 3
    customerId: 7
    orderDate: 2024-02-01T09:30:00Z
    totalCost: 12.5
`)

	f, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []domain.Category{{ID: 1, CategoryName: "Books"}}, f.Categories)
	require.Len(t, f.Orders, 1)
	assert.Equal(t, 7, f.Orders[0].CustomerID)
	assert.True(t, f.Orders[0].OrderDate.Equal(time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)))
	assert.Empty(t, f.Customers)
}

func TestLoadFile_RejectsDuplicateIDs(t *testing.T) {
	path := writeSeed(t, `
products:
  - id: 1
    productName: A
  - id: 1
    productName: B
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products: duplicate id 1")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_RejectsRecordsCreateWouldReject(t *testing.T) {
	cases := map[string]struct {
		body string
		want string
	}{
		"empty category name": {
			body: `
categories:
  - id: 1
    categoryName: ""
`,
			want: `categories: id 1: "categoryName" is not allowed to be empty`,
		},
		"missing category name": {
			body: `
categories:
  - id: 2
`,
			want: `categories: id 2: "categoryName" is not allowed to be empty`,
		},
		"bad email": {
			body: `
customers:
  - id: 5
    firstName: Ann
    lastName: Lee
    email: not-an-email
    password: secret
    address: 1 Road
    city: Durban
    province: KZN
    postalCode: 4001
    country: South Africa
`,
			want: `customers: id 5: "email" must be a valid email`,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFile(writeSeed(t, tc.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)

			var verr *schema.ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}
