// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package shipments_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerichotransport/freightdesk/internal/platform/apperr"
	"github.com/jerichotransport/freightdesk/internal/platform/dberr"
	"github.com/jerichotransport/freightdesk/internal/shipments"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	records     map[int]*shipments.Shipment
	nextID      int
	suggestHits int // counts SuggestValues calls for cache assertions
	failCreates int // remaining Create calls to fail with Conflict
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{records: map[int]*shipments.Shipment{}, nextID: 1}
}

func (f *fakeRepository) Create(_ context.Context, shipment *shipments.Shipment) error {
	if f.failCreates > 0 {
		f.failCreates--
		return apperr.Conflict("shipment_create: resource already exists")
	}
	for _, existing := range f.records {
		if existing.ReferenceNumber == shipment.ReferenceNumber {
			return apperr.Conflict("shipment_create: resource already exists")
		}
	}
	shipment.ID = f.nextID
	shipment.CreatedAt = time.Now()
	shipment.UpdatedAt = shipment.CreatedAt
	f.nextID++
	stored := *shipment
	f.records[shipment.ID] = &stored
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id int) (*shipments.Shipment, error) {
	if record, ok := f.records[id]; ok {
		copied := *record
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) List(_ context.Context) ([]shipments.Shipment, error) {
	collection := []shipments.Shipment{}
	for _, record := range f.records {
		collection = append(collection, *record)
	}
	return collection, nil
}

func (f *fakeRepository) ListFiltered(_ context.Context, filter shipments.Filter) ([]shipments.Shipment, error) {
	collection := []shipments.Shipment{}
	for _, record := range f.records {
		if filter.MovementType != "" && record.ProcessType != filter.MovementType {
			continue
		}
		collection = append(collection, *record)
	}
	return collection, nil
}

func (f *fakeRepository) Update(_ context.Context, shipment *shipments.Shipment) error {
	record, ok := f.records[shipment.ID]
	if !ok {
		return dberr.ErrNotFound
	}
	shipment.UpdatedAt = time.Now()
	*record = *shipment
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id int) error {
	if _, ok := f.records[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeRepository) ListReferencesByPrefix(_ context.Context, prefix string) ([]string, error) {
	references := []string{}
	for _, record := range f.records {
		if strings.HasPrefix(record.ReferenceNumber, prefix) {
			references = append(references, record.ReferenceNumber)
		}
	}
	return references, nil
}

func (f *fakeRepository) SuggestValues(_ context.Context, column string, query string, limit int) ([]string, error) {
	f.suggestHits++
	return []string{"Al Madar Trading", "Al Noor Imports"}, nil
}

// fakeCache is an in-memory SuggestionCache.
type fakeCache struct {
	entries map[string][]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]string{}}
}

func (f *fakeCache) Get(_ context.Context, field, query string) ([]string, bool) {
	values, ok := f.entries[field+":"+query]
	return values, ok
}

func (f *fakeCache) Set(_ context.Context, field, query string, values []string) {
	f.entries[field+":"+query] = values
}

// fixedClock pins the reference year.
func fixedClock() time.Time {
	return time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) (*shipments.Service, *fakeRepository, *fakeCache) {
	t.Helper()
	repo := newFakeRepository()
	cache := newFakeCache()
	return shipments.NewService(repo, cache, fixedClock), repo, cache
}

func createShipment(t *testing.T, service *shipments.Service, input shipments.RecordInput) *shipments.Shipment {
	t.Helper()
	shipment, err := service.Create(context.Background(), 1, input)
	require.NoError(t, err)
	return shipment
}

/*
TestService_Create_ReferenceNumbers tests sequential uniqueness within a lane
and independence across lanes.
*/
func TestService_Create_ReferenceNumbers(t *testing.T) {
	t.Run("sequences_increment_within_a_lane", func(t *testing.T) {
		service, _, _ := newTestService(t)

		first := createShipment(t, service, shipments.RecordInput{FreightType: "trk", ProcessType: "import"})
		second := createShipment(t, service, shipments.RecordInput{FreightType: "trk", ProcessType: "import"})
		third := createShipment(t, service, shipments.RecordInput{FreightType: "trk", ProcessType: "import"})

		assert.Equal(t, "TRK-IMP-2026-0001", first.ReferenceNumber)
		assert.Equal(t, "TRK-IMP-2026-0002", second.ReferenceNumber)
		assert.Equal(t, "TRK-IMP-2026-0003", third.ReferenceNumber)
	})

	t.Run("lanes_are_independent", func(t *testing.T) {
		service, _, _ := newTestService(t)

		importSide := createShipment(t, service, shipments.RecordInput{ProcessType: "import"})
		exportSide := createShipment(t, service, shipments.RecordInput{ProcessType: "export"})
		seaSide := createShipment(t, service, shipments.RecordInput{FreightType: "sea", ProcessType: "import"})

		assert.Equal(t, "TRK-IMP-2026-0001", importSide.ReferenceNumber)
		assert.Equal(t, "TRK-EXP-2026-0001", exportSide.ReferenceNumber)
		assert.Equal(t, "SEA-IMP-2026-0001", seaSide.ReferenceNumber)
	})

	t.Run("legacy_movement_type_resolves_export", func(t *testing.T) {
		service, _, _ := newTestService(t)

		shipment := createShipment(t, service, shipments.RecordInput{MovementType: "تصدير"})

		assert.Equal(t, shipments.ProcessExport, shipment.ProcessType)
		assert.Equal(t, "TRK-EXP-2026-0001", shipment.ReferenceNumber)
	})

	t.Run("new_shipment_opens_the_workflow", func(t *testing.T) {
		service, _, _ := newTestService(t)

		shipment := createShipment(t, service, shipments.RecordInput{})

		assert.Equal(t, shipments.StatusOpen, shipment.Status)
		assert.Equal(t, 1, shipment.UserID)
	})

	t.Run("retries_through_transient_conflicts", func(t *testing.T) {
		service, repo, _ := newTestService(t)
		repo.failCreates = 2

		shipment, err := service.Create(context.Background(), 1, shipments.RecordInput{})

		require.NoError(t, err)
		assert.NotEmpty(t, shipment.ReferenceNumber)
	})

	t.Run("surfaces_conflict_after_exhausted_retries", func(t *testing.T) {
		service, repo, _ := newTestService(t)
		repo.failCreates = 3

		_, err := service.Create(context.Background(), 1, shipments.RecordInput{})

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 409, ae.HTTPStatus)
	})
}

/*
TestService_Update tests the guarded fields of the full-record replace.
*/
func TestService_Update(t *testing.T) {
	t.Run("process_type_is_immutable", func(t *testing.T) {
		service, _, _ := newTestService(t)
		shipment := createShipment(t, service, shipments.RecordInput{ProcessType: "import"})

		_, err := service.Update(context.Background(), shipment.ID, shipments.RecordInput{
			ProcessType: "export",
		})

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 400, ae.HTTPStatus)
	})

	t.Run("reference_number_is_never_recomputed", func(t *testing.T) {
		service, _, _ := newTestService(t)
		shipment := createShipment(t, service, shipments.RecordInput{FreightType: "trk", ProcessType: "import"})

		updated, err := service.Update(context.Background(), shipment.ID, shipments.RecordInput{
			FreightType: "sea",
			ProcessType: "import",
			ClientName:  "Changed Client",
		})

		require.NoError(t, err)
		assert.Equal(t, shipment.ReferenceNumber, updated.ReferenceNumber)
		assert.Equal(t, "SEA", updated.FreightType)
	})

	t.Run("status_moves_forward", func(t *testing.T) {
		service, _, _ := newTestService(t)
		shipment := createShipment(t, service, shipments.RecordInput{})

		updated, err := service.Update(context.Background(), shipment.ID, shipments.RecordInput{
			Status: string(shipments.StatusInProgress),
		})

		require.NoError(t, err)
		assert.Equal(t, shipments.StatusInProgress, updated.Status)
	})

	t.Run("status_cannot_move_backwards", func(t *testing.T) {
		service, _, _ := newTestService(t)
		shipment := createShipment(t, service, shipments.RecordInput{})
		_, err := service.Update(context.Background(), shipment.ID, shipments.RecordInput{
			Status: string(shipments.StatusReadyForAccountant),
		})
		require.NoError(t, err)

		_, err = service.Update(context.Background(), shipment.ID, shipments.RecordInput{
			Status: string(shipments.StatusOpen),
		})

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 400, ae.HTTPStatus)
	})

	t.Run("missing_shipment_is_not_found", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Update(context.Background(), 9999, shipments.RecordInput{})

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 404, ae.HTTPStatus)
	})
}

/*
TestService_Get tests that reads have no side effects on the record.
*/
func TestService_Get(t *testing.T) {
	t.Run("repeated_reads_return_the_same_record", func(t *testing.T) {
		service, _, _ := newTestService(t)
		shipment := createShipment(t, service, shipments.RecordInput{
			ClientName:  "Al Madar Trading",
			FreightType: "trk",
			ProcessType: "import",
		})

		first, err := service.Get(context.Background(), shipment.ID)
		require.NoError(t, err)
		second, err := service.Get(context.Background(), shipment.ID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, shipment.ReferenceNumber, first.ReferenceNumber)
	})

	t.Run("missing_shipment_is_not_found", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Get(context.Background(), 9999)

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 404, ae.HTTPStatus)
	})
}

/*
TestService_Delete tests that deletion returns the record as it stood.
*/
func TestService_Delete(t *testing.T) {
	t.Run("returns_prior_record", func(t *testing.T) {
		service, repo, _ := newTestService(t)
		shipment := createShipment(t, service, shipments.RecordInput{ClientName: "Al Madar Trading"})

		deleted, err := service.Delete(context.Background(), shipment.ID)

		require.NoError(t, err)
		assert.Equal(t, "Al Madar Trading", deleted.ClientName)
		assert.Empty(t, repo.records)
	})

	t.Run("missing_shipment_is_not_found", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Delete(context.Background(), 9999)

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 404, ae.HTTPStatus)
	})
}

/*
TestService_Suggest tests the allow-list gate and the cache path.
*/
func TestService_Suggest(t *testing.T) {
	t.Run("unknown_field_rejected_before_the_store", func(t *testing.T) {
		service, repo, _ := newTestService(t)

		_, err := service.Suggest(context.Background(), "password_hash", "x")

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 400, ae.HTTPStatus)
		assert.Zero(t, repo.suggestHits)
	})

	t.Run("rejection_names_the_allowed_fields", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Suggest(context.Background(), "password_hash", "x")

		require.Error(t, err)
		for _, field := range shipments.SuggestionFields() {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("allowed_field_queries_the_store", func(t *testing.T) {
		service, repo, _ := newTestService(t)

		values, err := service.Suggest(context.Background(), "client_name", "al")

		require.NoError(t, err)
		assert.Equal(t, []string{"Al Madar Trading", "Al Noor Imports"}, values)
		assert.Equal(t, 1, repo.suggestHits)
	})

	t.Run("repeat_lookup_is_served_from_cache", func(t *testing.T) {
		service, repo, _ := newTestService(t)

		_, err := service.Suggest(context.Background(), "client_name", "al")
		require.NoError(t, err)
		_, err = service.Suggest(context.Background(), "client_name", "al")
		require.NoError(t, err)

		assert.Equal(t, 1, repo.suggestHits)
	})

	t.Run("every_allow_listed_field_resolves", func(t *testing.T) {
		for _, field := range []string{
			"client_name", "container_number", "bill_of_lading_number",
			"goods_description", "driver_name", "permit_number",
		} {
			_, ok := shipments.SuggestionColumn(field)
			assert.True(t, ok, field)
		}
	})
}
