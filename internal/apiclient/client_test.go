package apiclient_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"employee-admin/internal/apiclient"
	"employee-admin/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) *apiclient.Client {
	return apiclient.New(apiclient.Config{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Logger:  zerolog.Nop(),
	})
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantStatus int
	}{
		{"400 with server message", 400, `{"message":"name is taken"}`, "name is taken", 400},
		{"400 without message", 400, `{}`, "invalid request data", 400},
		{"401", 401, ``, "authentication required", 401},
		{"403", 403, ``, "access forbidden", 403},
		{"404 uses entity noun", 404, ``, "department not found", 404},
		{"409 prefers server message", 409, `{"message":"duplicate name"}`, "duplicate name", 409},
		{"409 default", 409, ``, "department name already exists", 409},
		{"500", 500, `{"message":"stack trace"}`, "server error occurred, please try again later", 500},
		{"unknown status", 503, ``, "server error: 503", 503},
		{"unknown status with message", 418, `{"message":"teapot"}`, "teapot", 418},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			dc := apiclient.NewDepartmentClient(newClient(srv.URL))
			_, err := dc.GetByID(context.Background(), 1)
			require.Error(t, err)

			var rerr *apiclient.RequestError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.wantStatus, rerr.Status)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestNetworkErrorWhenServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	dc := apiclient.NewDepartmentClient(newClient(srv.URL))
	_, err := dc.ListAll(context.Background())
	require.Error(t, err)

	var nerr *apiclient.NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "network connection error, please check your connectivity", err.Error())
}

func TestParseErrorOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	}))
	defer srv.Close()

	dc := apiclient.NewDepartmentClient(newClient(srv.URL))
	_, err := dc.ListAll(context.Background())
	require.Error(t, err)

	var perr *apiclient.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestRequestHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		fmt.Fprint(w, `{"id":1,"departmentName":"IT","departmentDescription":""}`)
	}))
	defer srv.Close()

	dc := apiclient.NewDepartmentClient(newClient(srv.URL))
	_, err := dc.Create(context.Background(), models.DepartmentPayload{DepartmentName: "IT"})
	require.NoError(t, err)
}

func TestRequestTimeoutIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := apiclient.New(apiclient.Config{
		BaseURL: srv.URL,
		Timeout: 50 * time.Millisecond,
		Logger:  zerolog.Nop(),
	})
	_, err := apiclient.NewDepartmentClient(c).ListAll(context.Background())
	require.Error(t, err)

	var nerr *apiclient.NetworkError
	require.ErrorAs(t, err, &nerr)
}
