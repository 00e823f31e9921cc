package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"employee-admin/internal/models"
	"employee-admin/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deptStub is a scripted store.Client for departments.
type deptStub struct {
	listAll func(ctx context.Context) ([]models.Department, error)
	getByID func(ctx context.Context, id int64) (models.Department, error)
	create  func(ctx context.Context, p models.DepartmentPayload) (models.Department, error)
	update  func(ctx context.Context, id int64, p models.DepartmentPayload) (models.Department, error)
	del     func(ctx context.Context, id int64) error
}

func (s *deptStub) ListAll(ctx context.Context) ([]models.Department, error) {
	return s.listAll(ctx)
}

func (s *deptStub) GetByID(ctx context.Context, id int64) (models.Department, error) {
	return s.getByID(ctx, id)
}

func (s *deptStub) Create(ctx context.Context, p models.DepartmentPayload) (models.Department, error) {
	return s.create(ctx, p)
}

func (s *deptStub) Update(ctx context.Context, id int64, p models.DepartmentPayload) (models.Department, error) {
	return s.update(ctx, id, p)
}

func (s *deptStub) Delete(ctx context.Context, id int64) error {
	return s.del(ctx, id)
}

func newDeptStore(stub *deptStub) *store.DepartmentStore {
	return store.New[models.Department, models.DepartmentPayload](stub)
}

func dept(id int64, name string) models.Department {
	return models.Department{ID: id, DepartmentName: name}
}

func TestFetchAllReplacesItems(t *testing.T) {
	s := newDeptStore(&deptStub{
		listAll: func(context.Context) ([]models.Department, error) {
			return []models.Department{{ID: 1, DepartmentName: "Engineering", DepartmentDescription: ""}}, nil
		},
	})
	s.FetchAll(context.Background())

	assert.Equal(t, []models.Department{{ID: 1, DepartmentName: "Engineering"}}, s.Items())
	assert.False(t, s.Loading())
	assert.Empty(t, s.Err())
}

func TestFetchAllNilResponseYieldsEmptyItems(t *testing.T) {
	stub := &deptStub{
		listAll: func(context.Context) ([]models.Department, error) {
			return []models.Department{dept(1, "HR"), dept(2, "IT")}, nil
		},
	}
	s := newDeptStore(stub)
	s.FetchAll(context.Background())
	require.Len(t, s.Items(), 2)

	stub.listAll = func(context.Context) ([]models.Department, error) { return nil, nil }
	s.FetchAll(context.Background())

	assert.NotNil(t, s.Items())
	assert.Empty(t, s.Items(), "an empty server response clears the previous list")
}

func TestFetchAllSwallowsFailure(t *testing.T) {
	stub := &deptStub{
		listAll: func(context.Context) ([]models.Department, error) {
			return []models.Department{dept(1, "HR")}, nil
		},
	}
	s := newDeptStore(stub)
	s.FetchAll(context.Background())

	stub.listAll = func(context.Context) ([]models.Department, error) {
		return nil, errors.New("network connection error, please check your connectivity")
	}
	s.FetchAll(context.Background())

	assert.Equal(t, "network connection error, please check your connectivity", s.Err())
	assert.False(t, s.Loading())
	assert.Equal(t, []models.Department{dept(1, "HR")}, s.Items(), "items survive a failed refresh")

	s.ClearError()
	assert.Empty(t, s.Err())
}

func TestFetchOneSetsCurrentAndReturns(t *testing.T) {
	s := newDeptStore(&deptStub{
		getByID: func(_ context.Context, id int64) (models.Department, error) {
			return dept(id, "Engineering"), nil
		},
	})
	got, err := s.FetchOne(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, dept(42, "Engineering"), got)

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, got, cur)
}

func TestFetchOneFailureKeepsCurrentAndReraises(t *testing.T) {
	stub := &deptStub{
		getByID: func(_ context.Context, id int64) (models.Department, error) {
			return dept(id, "Engineering"), nil
		},
	}
	s := newDeptStore(stub)
	_, err := s.FetchOne(context.Background(), 1)
	require.NoError(t, err)

	stub.getByID = func(context.Context, int64) (models.Department, error) {
		return models.Department{}, errors.New("department not found")
	}
	_, err = s.FetchOne(context.Background(), 42)
	require.EqualError(t, err, "department not found")
	assert.Equal(t, "department not found", s.Err())
	assert.False(t, s.Loading())

	cur, ok := s.Current()
	require.True(t, ok, "current is not clobbered by a failed fetch")
	assert.Equal(t, int64(1), cur.ID)
}

func TestCreateOneAppendsAtEnd(t *testing.T) {
	stub := &deptStub{
		listAll: func(context.Context) ([]models.Department, error) {
			return []models.Department{dept(1, "HR")}, nil
		},
		create: func(_ context.Context, p models.DepartmentPayload) (models.Department, error) {
			return models.Department{ID: 9, DepartmentName: p.DepartmentName}, nil
		},
	}
	s := newDeptStore(stub)
	s.FetchAll(context.Background())

	got, err := s.CreateOne(context.Background(), models.DepartmentPayload{DepartmentName: "Engineering"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, got, items[len(items)-1], "new record is appended at the end")

	count := 0
	for _, it := range items {
		if it.ID == 9 {
			count++
		}
	}
	assert.Equal(t, 1, count, "new record appears exactly once")
}

func TestCreateOneFailureLeavesItemsAndReraises(t *testing.T) {
	stub := &deptStub{
		listAll: func(context.Context) ([]models.Department, error) {
			return []models.Department{dept(1, "HR")}, nil
		},
		create: func(context.Context, models.DepartmentPayload) (models.Department, error) {
			return models.Department{}, errors.New("department name already exists")
		},
	}
	s := newDeptStore(stub)
	s.FetchAll(context.Background())

	_, err := s.CreateOne(context.Background(), models.DepartmentPayload{DepartmentName: "HR"})
	require.EqualError(t, err, "department name already exists")
	assert.Equal(t, "department name already exists", s.Err())
	assert.Equal(t, []models.Department{dept(1, "HR")}, s.Items())
}

func TestUpdateOneReplacesOnlyMatchingEntry(t *testing.T) {
	stub := &deptStub{
		listAll: func(context.Context) ([]models.Department, error) {
			return []models.Department{dept(1, "HR"), dept(2, "IT"), dept(3, "Sales")}, nil
		},
		update: func(_ context.Context, id int64, p models.DepartmentPayload) (models.Department, error) {
			return models.Department{ID: id, DepartmentName: p.DepartmentName}, nil
		},
	}
	s := newDeptStore(stub)
	s.FetchAll(context.Background())

	got, err := s.UpdateOne(context.Background(), 2, models.DepartmentPayload{DepartmentName: "Engineering"})
	require.NoError(t, err)

	items := s.Items()
	assert.Equal(t, []models.Department{dept(1, "HR"), dept(2, "Engineering"), dept(3, "Sales")}, items)

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, got, cur, "current is replaced alongside the list entry")
}

func TestDeleteOneRemovesMatchingEntry(t *testing.T) {
	stub := &deptStub{
		listAll: func(context.Context) ([]models.Department, error) {
			return []models.Department{dept(1, "HR"), dept(2, "IT")}, nil
		},
		del: func(context.Context, int64) error { return nil },
	}
	s := newDeptStore(stub)
	s.FetchAll(context.Background())

	require.NoError(t, s.DeleteOne(context.Background(), 1))
	assert.Equal(t, []models.Department{dept(2, "IT")}, s.Items())
}

func TestDeleteAbsentIDLeavesItemsUnchanged(t *testing.T) {
	stub := &deptStub{
		listAll: func(context.Context) ([]models.Department, error) {
			return []models.Department{dept(1, "HR"), dept(2, "IT")}, nil
		},
		del: func(context.Context, int64) error { return nil },
	}
	s := newDeptStore(stub)
	s.FetchAll(context.Background())

	require.NoError(t, s.DeleteOne(context.Background(), 99))
	assert.Equal(t, []models.Department{dept(1, "HR"), dept(2, "IT")}, s.Items())
}

func TestDeleteOneFailureLeavesItemsAndReraises(t *testing.T) {
	stub := &deptStub{
		listAll: func(context.Context) ([]models.Department, error) {
			return []models.Department{dept(1, "HR")}, nil
		},
		del: func(context.Context, int64) error { return errors.New("access forbidden") },
	}
	s := newDeptStore(stub)
	s.FetchAll(context.Background())

	err := s.DeleteOne(context.Background(), 1)
	require.EqualError(t, err, "access forbidden")
	assert.Equal(t, []models.Department{dept(1, "HR")}, s.Items())
}

func TestClearCurrent(t *testing.T) {
	s := newDeptStore(&deptStub{
		getByID: func(_ context.Context, id int64) (models.Department, error) {
			return dept(id, "HR"), nil
		},
	})
	_, err := s.FetchOne(context.Background(), 1)
	require.NoError(t, err)
	_, ok := s.Current()
	require.True(t, ok)

	s.ClearCurrent()
	_, ok = s.Current()
	assert.False(t, ok)

	// Idempotent.
	s.ClearCurrent()
	_, ok = s.Current()
	assert.False(t, ok)
}

// Overlapping fetches are not ordered: whichever response resolves last
// wins. Here the first call is held until the second has completed, so
// the first call's (stale) list ends up in the store. Documented
// limitation, not a bug.
func TestFetchAllLastResolveWins(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	var mu sync.Mutex
	calls := 0
	stub := &deptStub{
		listAll: func(context.Context) ([]models.Department, error) {
			mu.Lock()
			calls++
			first := calls == 1
			mu.Unlock()
			if first {
				close(firstStarted)
				<-releaseFirst
				return []models.Department{dept(1, "stale")}, nil
			}
			return []models.Department{dept(2, "fresh")}, nil
		},
	}
	s := newDeptStore(stub)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.FetchAll(context.Background())
	}()

	<-firstStarted
	s.FetchAll(context.Background())
	assert.Equal(t, []models.Department{dept(2, "fresh")}, s.Items())

	close(releaseFirst)
	wg.Wait()
	assert.Equal(t, []models.Department{dept(1, "stale")}, s.Items(), "the later-resolving response overwrote the earlier one")
}
