package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePackageRequest_Occasions(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{name: "neither key", body: `{"name":"x"}`, expected: []string{}},
		{name: "occasion_ids", body: `{"occasion_ids":["a","b"]}`, expected: []string{"a", "b"}},
		{name: "legacy key", body: `{"occassion":["c"]}`, expected: []string{"c"}},
		{name: "both keys", body: `{"occasion_ids":["a"],"occassion":["c"]}`, expected: []string{"a", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreatePackageRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.expected, req.Occasions())
		})
	}
}

func TestUpdatePackageRequest_KeyPresence(t *testing.T) {
	t.Run("absent keys stay nil", func(t *testing.T) {
		var req UpdatePackageRequest
		require.NoError(t, json.Unmarshal([]byte(`{"name":"n"}`), &req))

		assert.Nil(t, req.PackageItemIDs)
		assert.Nil(t, req.CategorySelections)
		assert.Nil(t, req.Occasions())
	})

	t.Run("empty lists are kept", func(t *testing.T) {
		var req UpdatePackageRequest
		require.NoError(t, json.Unmarshal([]byte(`{"package_item_ids":[],"category_selections":[],"occassion":[]}`), &req))

		require.NotNil(t, req.PackageItemIDs)
		assert.Empty(t, *req.PackageItemIDs)
		require.NotNil(t, req.CategorySelections)
		assert.Empty(t, *req.CategorySelections)
		require.NotNil(t, req.Occasions())
		assert.Empty(t, *req.Occasions())
	})

	t.Run("decimal price and revision", func(t *testing.T) {
		var req UpdatePackageRequest
		require.NoError(t, json.Unmarshal([]byte(`{"total_price":"250.005","revision":4}`), &req))

		require.NotNil(t, req.TotalPrice)
		assert.Equal(t, "250.005", req.TotalPrice.String())
		require.NotNil(t, req.Revision)
		assert.Equal(t, int64(4), *req.Revision)
	})
}

func TestUpdatePackageItemRequest_PackageID(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		set     bool
		cleared bool
		value   string
	}{
		{name: "absent", body: `{"quantity":2}`},
		{name: "null", body: `{"package_id":null}`, set: true, cleared: true},
		{name: "empty", body: `{"package_id":""}`, set: true, cleared: true, value: ""},
		{name: "id", body: `{"package_id":"65a1f0c2e4b0a1b2c3d4e5f6"}`, set: true, value: "65a1f0c2e4b0a1b2c3d4e5f6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdatePackageItemRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.set, req.PackageID.Set)
			assert.Equal(t, tt.cleared, req.PackageID.Cleared())
			if tt.set && tt.name != "null" {
				require.NotNil(t, req.PackageID.Value)
				assert.Equal(t, tt.value, *req.PackageID.Value)
			}
		})
	}

	t.Run("wrong type", func(t *testing.T) {
		var req UpdatePackageItemRequest
		assert.Error(t, json.Unmarshal([]byte(`{"package_id":42}`), &req))
	})
}

func TestValidationError_Error(t *testing.T) {
	err := InvalidID("package_id")

	assert.Equal(t, "package_id: must be a valid id", err.Error())
}
