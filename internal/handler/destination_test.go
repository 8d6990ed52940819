package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler"
)

func detailFixture() domain.DestinationDetail {
	return domain.DestinationDetail{
		Destination: domain.Destination{ID: uuid.New(), Name: "Lyon", Country: "France", Keywords: []string{"food", "wine"}},
		Activities:  []domain.Activity{{Label: "Bouchon dinner"}},
		Region:      "Western Europe",
	}
}

func TestListDestinations_passesFiltersAndPagination(t *testing.T) {
	var (
		gotFilter domain.DestinationFilter
		gotPage   domain.PaginationParams
	)
	c := &mockCatalog{list: func(_ context.Context, f domain.DestinationFilter, p domain.PaginationParams) ([]domain.DestinationDetail, int, error) {
		gotFilter, gotPage = f, p
		return []domain.DestinationDetail{detailFixture()}, 7, nil
	}}

	rec := serve(t, newHTTPHandler(nil, c), http.MethodGet, "/destinations?country=France&keyword=food&page=2&limit=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DestinationFilter{Country: "France", Keyword: "food"}, gotFilter)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 5}, gotPage)

	var body handler.DestinationList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, handler.Pagination{Page: 2, Limit: 5, Total: 7}, body.Pagination)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Lyon", body.Data[0].Name)
	assert.Equal(t, "Western Europe", body.Data[0].Region)
	assert.Equal(t, []string{"Bouchon dinner"}, body.Data[0].Activities)
}

func TestListDestinations_defaults(t *testing.T) {
	var gotPage domain.PaginationParams
	c := &mockCatalog{list: func(_ context.Context, _ domain.DestinationFilter, p domain.PaginationParams) ([]domain.DestinationDetail, int, error) {
		gotPage = p
		return []domain.DestinationDetail{}, 0, nil
	}}

	rec := serve(t, newHTTPHandler(nil, c), http.MethodGet, "/destinations", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, gotPage)
	assert.JSONEq(t, `{"data":[],"pagination":{"page":1,"limit":20,"total":0}}`, rec.Body.String())
}

func TestListDestinations_invalidPage_returns400(t *testing.T) {
	rec := serve(t, newHTTPHandler(nil, &mockCatalog{}), http.MethodGet, "/destinations?page=abc", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec).Code)
}

func TestGetDestination_returns200(t *testing.T) {
	want := detailFixture()
	c := &mockCatalog{get: func(_ context.Context, id uuid.UUID) (domain.DestinationDetail, error) {
		require.Equal(t, want.ID, id)
		return want, nil
	}}

	rec := serve(t, newHTTPHandler(nil, c), http.MethodGet, "/destinations/"+want.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.Destination
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, want.ID, body.ID)
	assert.Equal(t, []string{"food", "wine"}, body.Keywords)
}

func TestGetDestination_notFound_returns404(t *testing.T) {
	c := &mockCatalog{get: func(context.Context, uuid.UUID) (domain.DestinationDetail, error) {
		return domain.DestinationDetail{}, fmt.Errorf("service.CatalogService.Get: %w", domain.ErrNotFound)
	}}

	rec := serve(t, newHTTPHandler(nil, c), http.MethodGet, "/destinations/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "not_found", detail.Code)
	assert.Equal(t, "destination not found", detail.Message)
}

func TestGetDestination_invalidID_returns400(t *testing.T) {
	rec := serve(t, newHTTPHandler(nil, &mockCatalog{}), http.MethodGet, "/destinations/not-a-uuid", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
