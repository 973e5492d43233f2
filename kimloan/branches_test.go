package kimloan

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBranch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/branches/", r.URL.Path)

		var req CreateBranchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Nakuru", req.Name)
		assert.Equal(t, "NKR", req.Code)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":3,"name":"Nakuru","code":"NKR","is_active":true}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	branch, err := c.CreateBranch(context.Background(), CreateBranchRequest{
		Name: "Nakuru",
		Code: "NKR",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), branch.ID)
	assert.Equal(t, "NKR", branch.Code)
}

func TestCreateBranch_DuplicateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Branch with this code or name already exists"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.CreateBranch(context.Background(), CreateBranchRequest{Name: "Nakuru", Code: "NKR"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Branch with this code or name already exists", apiErr.Detail)
}

func TestUpdateBranch_SendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/branches/3", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Nakuru Town","is_active":false}`, string(body))

		w.Write([]byte(`{"id":3,"name":"Nakuru Town","code":"NKR","is_active":false}`))
	}))
	defer srv.Close()

	name := "Nakuru Town"
	active := false

	c := newTestClient(srv)
	branch, err := c.UpdateBranch(context.Background(), 3, UpdateBranchRequest{
		Name:     &name,
		IsActive: &active,
	})
	require.NoError(t, err)
	assert.Equal(t, "Nakuru Town", branch.Name)
	assert.False(t, branch.IsActive)
}
