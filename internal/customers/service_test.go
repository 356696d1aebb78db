package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"api_drugstore/internal/apperrors"
	"api_drugstore/internal/database/databasetest"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db := databasetest.New(t, &Customer{})
	return NewService(NewGormStorage(db), zaptest.NewLogger(t))
}

func TestAddAndFindCustomer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddCustomer(ctx, AddCustomerRequest{FirstName: "Ana", LastName: "Souza", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.FindCustomerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	_, err = svc.FindCustomerByID(ctx, 999)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Customer not found.", err.Error())
}

func TestAddCustomer_DuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddCustomer(ctx, AddCustomerRequest{FirstName: "Ana", LastName: "Souza", Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = svc.AddCustomer(ctx, AddCustomerRequest{FirstName: "Other", LastName: "Person", Email: "ana@example.com"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "There already is a customer with this email in the database.", err.Error())
}

func TestAddCustomer_FieldRules(t *testing.T) {
	svc := newTestService(t)
	cases := []struct {
		req AddCustomerRequest
		msg string
	}{
		{AddCustomerRequest{LastName: "S", Email: "a@b.com"}, "Customer first name cannot be empty."},
		{AddCustomerRequest{FirstName: "A", Email: "a@b.com"}, "Customer last name cannot be empty."},
		{AddCustomerRequest{FirstName: "A", LastName: "S"}, "Customer email cannot be empty."},
		{AddCustomerRequest{FirstName: "A", LastName: "S", Email: "not-an-email"}, "Customer email is invalid."},
	}
	for _, tc := range cases {
		_, err := svc.AddCustomer(context.Background(), tc.req)
		require.Error(t, err)
		assert.Equal(t, tc.msg, err.Error())
	}
}

func TestUpdateCustomer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddCustomer(ctx, AddCustomerRequest{FirstName: "Ana", LastName: "Souza", Email: "ana@example.com"})
	require.NoError(t, err)

	updated, err := svc.UpdateCustomer(ctx, CustomerDTO{ID: created.ID, FirstName: "Ana", LastName: "Lima", Email: "ana@lima.com"})
	require.NoError(t, err)
	assert.Equal(t, "Lima", updated.LastName)

	got, err := svc.FindCustomerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@lima.com", got.Email)

	_, err = svc.UpdateCustomer(ctx, CustomerDTO{ID: 0})
	assert.Equal(t, "Customer ID must be greater than zero.", err.Error())

	_, err = svc.UpdateCustomer(ctx, CustomerDTO{ID: 42, FirstName: "x", LastName: "y", Email: "x@y.com"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateCustomer_EmailTakenByAnother(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.AddCustomer(ctx, AddCustomerRequest{FirstName: "Ana", LastName: "Souza", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = svc.AddCustomer(ctx, AddCustomerRequest{FirstName: "Bruno", LastName: "Lima", Email: "b@example.com"})
	require.NoError(t, err)

	_, err = svc.UpdateCustomer(ctx, CustomerDTO{ID: a.ID, FirstName: "Ana", LastName: "Souza", Email: "b@example.com"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "There already is a customer with this email in the database.", err.Error())

	got, err := svc.FindCustomerByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)

	// keeping one's own email is not a conflict
	_, err = svc.UpdateCustomer(ctx, CustomerDTO{ID: a.ID, FirstName: "Ana", LastName: "Lima", Email: "a@example.com"})
	require.NoError(t, err)
}

func TestGormStorage_DuplicateEmailIsConflict(t *testing.T) {
	db := databasetest.New(t, &Customer{})
	storage := NewGormStorage(db)
	ctx := context.Background()

	a := &Customer{FirstName: "Ana", LastName: "Souza", Email: "a@example.com"}
	require.NoError(t, storage.Create(ctx, a))
	b := &Customer{FirstName: "Bruno", LastName: "Lima", Email: "b@example.com"}
	require.NoError(t, storage.Create(ctx, b))

	err := storage.Create(ctx, &Customer{FirstName: "Other", LastName: "Person", Email: "a@example.com"})
	assert.True(t, apperrors.IsConflict(err), "got %v", err)

	err = storage.Update(ctx, &Customer{ID: a.ID, FirstName: "Ana", LastName: "Souza", Email: "b@example.com"})
	assert.True(t, apperrors.IsConflict(err), "got %v", err)

	owner, err := storage.EmailOwner(ctx, "b@example.com")
	require.NoError(t, err)
	assert.Equal(t, b.ID, owner)
	owner, err = storage.EmailOwner(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Zero(t, owner)
}

func TestFindCustomersByName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, r := range []AddCustomerRequest{
		{FirstName: "Ana", LastName: "Souza", Email: "ana@example.com"},
		{FirstName: "Bruno", LastName: "Anaya", Email: "bruno@example.com"},
		{FirstName: "Carla", LastName: "Lima", Email: "carla@example.com"},
	} {
		_, err := svc.AddCustomer(ctx, r)
		require.NoError(t, err)
	}

	found, err := svc.FindCustomersByName(ctx, "ana")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	all, err := svc.FindAllCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeleteCustomer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddCustomer(ctx, AddCustomerRequest{FirstName: "Ana", LastName: "Souza", Email: "ana@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCustomer(ctx, created.ID))
	assert.True(t, apperrors.IsNotFound(svc.DeleteCustomer(ctx, created.ID)))
}
