package postgresql_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/regularization"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRequest(t *testing.T, ctx context.Context, employeeID string, day time.Time) *regularization.Request {
	repo := postgresql.NewRegularizationRepository(testDB)

	req := &regularization.Request{
		EmployeeID:        employeeID,
		Date:              day,
		RequestedClockIn:  time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, time.UTC),
		RequestedClockOut: time.Date(day.Year(), day.Month(), day.Day(), 18, 0, 0, 0, time.UTC),
		Reason:            "forgot badge",
		Status:            regularization.StatusPending,
		SubmittedBy:       employeeID,
	}
	require.NoError(t, repo.Create(ctx, req))
	return req
}

func TestRegularizationRepository_Create(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, "Asha Rao", "asha@example.com")
	repo := postgresql.NewRegularizationRepository(testDB)

	req := createTestRequest(t, ctx, employeeID, workDay(2024, time.January, 10))
	assert.NotEmpty(t, req.ID)

	got, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, regularization.StatusPending, got.Status)
	assert.Nil(t, got.DecidedBy)
	assert.Nil(t, got.DecidedAt)
	assert.Equal(t, "forgot badge", got.Reason)
	require.NotNil(t, got.EmployeeName)
	assert.Equal(t, "Asha Rao", *got.EmployeeName)
}

func TestRegularizationRepository_GetByID_NotFound(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	repo := postgresql.NewRegularizationRepository(testDB)
	_, err := repo.GetByID(context.Background(), "00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, regularization.ErrRequestNotFound)
}

func TestRegularizationRepository_Decide(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, "Asha Rao", "asha@example.com")
	manager := createTestEmployee(t, ctx, "Mina Park", "mina@example.com")
	repo := postgresql.NewRegularizationRepository(testDB)

	req := createTestRequest(t, ctx, employeeID, workDay(2024, time.January, 10))
	now := time.Now().UTC()

	decided, err := repo.Decide(ctx, req.ID, regularization.StatusApproved, manager, now)
	require.NoError(t, err)
	assert.Equal(t, regularization.StatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, manager, *decided.DecidedBy)
	require.NotNil(t, decided.DecidedAt)

	// A decided request never flips again.
	_, err = repo.Decide(ctx, req.ID, regularization.StatusRejected, manager, now)
	assert.ErrorIs(t, err, regularization.ErrAlreadyDecided)

	got, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, regularization.StatusApproved, got.Status)
}

func TestRegularizationRepository_Decide_NotFound(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	manager := createTestEmployee(t, ctx, "Mina Park", "mina@example.com")
	repo := postgresql.NewRegularizationRepository(testDB)

	_, err := repo.Decide(ctx, "00000000-0000-4000-8000-000000000000",
		regularization.StatusApproved, manager, time.Now().UTC())
	assert.ErrorIs(t, err, regularization.ErrRequestNotFound)
}

func TestRegularizationRepository_Decide_ConcurrentSingleWinner(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, "Asha Rao", "asha@example.com")
	manager := createTestEmployee(t, ctx, "Mina Park", "mina@example.com")
	repo := postgresql.NewRegularizationRepository(testDB)

	req := createTestRequest(t, ctx, employeeID, workDay(2024, time.January, 10))

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	statuses := []regularization.RequestStatus{regularization.StatusApproved, regularization.StatusRejected}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Decide(ctx, req.ID, statuses[i%2], manager, time.Now().UTC())
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, regularization.ErrAlreadyDecided)
		}
	}
	assert.Equal(t, 1, winners)
}

func TestRegularizationRepository_List(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	asha := createTestEmployee(t, ctx, "Asha Rao", "asha@example.com")
	ben := createTestEmployee(t, ctx, "Ben Okafor", "ben@example.com")
	manager := createTestEmployee(t, ctx, "Mina Park", "mina@example.com")
	repo := postgresql.NewRegularizationRepository(testDB)

	for day := 1; day <= 3; day++ {
		createTestRequest(t, ctx, asha, workDay(2024, time.January, day))
		createTestRequest(t, ctx, ben, workDay(2024, time.January, day))
	}

	decidedReq := createTestRequest(t, ctx, asha, workDay(2024, time.January, 4))
	_, err := repo.Decide(ctx, decidedReq.ID, regularization.StatusRejected, manager, time.Now().UTC())
	require.NoError(t, err)

	// Filter by employee
	filter := &regularization.RequestFilter{EmployeeID: &asha}
	require.NoError(t, filter.Validate())
	rows, total, err := repo.List(ctx, filter)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, rows, 4)

	// Filter by status
	pending := string(regularization.StatusPending)
	filter = &regularization.RequestFilter{Status: &pending}
	require.NoError(t, filter.Validate())
	_, total, err = repo.List(ctx, filter)
	require.NoError(t, err)
	assert.EqualValues(t, 6, total)

	// Date range
	start, end := "2024-01-02", "2024-01-03"
	filter = &regularization.RequestFilter{StartDate: &start, EndDate: &end}
	require.NoError(t, filter.Validate())
	_, total, err = repo.List(ctx, filter)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)

	// Pagination
	filter = &regularization.RequestFilter{Page: 2, Limit: 5}
	require.NoError(t, filter.Validate())
	rows, total, err = repo.List(ctx, filter)
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)
	assert.Len(t, rows, 2)
}
