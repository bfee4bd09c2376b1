package payments

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saas-sim/internal/simerr"
)

func TestCreateCustomer(t *testing.T) {
	svc, _ := newTestService(t)

	c, err := svc.CreateCustomer(CreateCustomerParams{Name: "Ada Lovelace", Email: strPtr("ada@example.com")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.ID, "cus_"))
	assert.Equal(t, "customer", c.Object)
	assert.Equal(t, "Ada Lovelace", c.Name)
	require.NotNil(t, c.Email)
	assert.Equal(t, "ada@example.com", *c.Email)
	assert.NotZero(t, c.Created)
}

func TestCreateCustomerWithoutEmail(t *testing.T) {
	svc, _ := newTestService(t)

	c, err := svc.CreateCustomer(CreateCustomerParams{Name: "No Email"})
	require.NoError(t, err)
	assert.Nil(t, c.Email)
}

func TestCreateCustomerValidation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name    string
		params  CreateCustomerParams
		wantMsg string
	}{
		{"empty name", CreateCustomerParams{Name: ""}, "Customer name cannot be empty."},
		{"whitespace name", CreateCustomerParams{Name: "   "}, "Customer name cannot be empty."},
		{"name too long", CreateCustomerParams{Name: strings.Repeat("a", 2049)},
			"Customer name cannot be longer than 2048 characters."},
		{"email too long", CreateCustomerParams{Name: "x", Email: strPtr(strings.Repeat("a", 513))},
			"Customer email cannot be longer than 512 characters."},
		{"malformed email", CreateCustomerParams{Name: "x", Email: strPtr("not-an-email")},
			"Invalid email address: 'not-an-email'."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCustomer(tt.params)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.True(t, simerr.IsKind(err, simerr.KindInvalidRequest))
		})
	}
}

func TestListCustomersFiltersByEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateCustomer(CreateCustomerParams{Name: "A", Email: strPtr("a@example.com")})
	require.NoError(t, err)
	_, err = svc.CreateCustomer(CreateCustomerParams{Name: "B", Email: strPtr("b@example.com")})
	require.NoError(t, err)
	_, err = svc.CreateCustomer(CreateCustomerParams{Name: "C"})
	require.NoError(t, err)

	list, err := svc.ListCustomers(ListCustomersParams{Email: strPtr("b@example.com")})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "B", list.Data[0].Name)
	assert.False(t, list.HasMore)
}

func TestListCustomersDefaultLimit(t *testing.T) {
	svc, st := newTestService(t)

	for i := 0; i < 12; i++ {
		c, err := svc.CreateCustomer(CreateCustomerParams{Name: "Bulk"})
		require.NoError(t, err)
		st.Customers[c.ID].Created = int64(1000 + i)
	}

	list, err := svc.ListCustomers(ListCustomersParams{})
	require.NoError(t, err)
	assert.Len(t, list.Data, 10)
	assert.True(t, list.HasMore)
	assert.Equal(t, "list", list.Object)
}

func TestListCustomersNewestFirst(t *testing.T) {
	svc, st := newTestService(t)

	old, err := svc.CreateCustomer(CreateCustomerParams{Name: "old"})
	require.NoError(t, err)
	st.Customers[old.ID].Created = 100
	recent, err := svc.CreateCustomer(CreateCustomerParams{Name: "recent"})
	require.NoError(t, err)
	st.Customers[recent.ID].Created = 200

	list, err := svc.ListCustomers(ListCustomersParams{})
	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "recent", list.Data[0].Name)
	assert.Equal(t, "old", list.Data[1].Name)
}

func TestListCustomersLimitBounds(t *testing.T) {
	svc, _ := newTestService(t)

	for _, limit := range []int{0, -1, 101} {
		_, err := svc.ListCustomers(ListCustomersParams{Limit: intPtr(limit)})
		require.Error(t, err)
		assert.Equal(t, "Limit must be an integer between 1 and 100.", err.Error())
	}
}
