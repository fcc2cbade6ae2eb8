package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

func TestValidate_Accepts(t *testing.T) {
	mounts := []Mount{
		{Prefix: "/api/food", Handler: okHandler},
		{Prefix: "/api/foods", Handler: okHandler},
		{Prefix: "/images", Handler: okHandler},
		{Prefix: "/api/user", Handler: okHandler},
		{Prefix: "/healthz", Handler: okHandler},
	}
	assert.NoError(t, Validate(mounts))
}

func TestValidate_Rejects(t *testing.T) {
	testCases := []struct {
		name   string
		mounts []Mount
		err    error
	}{
		{"duplicate", []Mount{{"/api/food", okHandler}, {"/api/food", okHandler}}, ErrOverlappingPrefix},
		{"nested", []Mount{{"/api", okHandler}, {"/api/food", okHandler}}, ErrOverlappingPrefix},
		{"nested reversed", []Mount{{"/api/food/admin", okHandler}, {"/api/food", okHandler}}, ErrOverlappingPrefix},
		{"shadows health", []Mount{{"/health", okHandler}}, ErrOverlappingPrefix},
		{"root", []Mount{{"/", okHandler}}, ErrInvalidPrefix},
		{"empty", []Mount{{"", okHandler}}, ErrInvalidPrefix},
		{"relative", []Mount{{"api/food", okHandler}}, ErrInvalidPrefix},
		{"trailing slash", []Mount{{"/api/food/", okHandler}}, ErrInvalidPrefix},
		{"wildcard", []Mount{{"/api/{name}", okHandler}}, ErrInvalidPrefix},
		{"nil handler", []Mount{{"/api/food", nil}}, ErrInvalidPrefix},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tc.mounts), tc.err)
		})
	}
}

func TestNewRouter_RejectsInvalidTable(t *testing.T) {
	_, err := NewRouter([]Mount{{"/api", okHandler}, {"/api/cart", okHandler}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverlappingPrefix)
}

func TestNewRouter_StripsPrefix(t *testing.T) {
	var seen string
	mux, err := NewRouter([]Mount{{Prefix: "/api/cart", Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Path
	})}})
	require.NoError(t, err)

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/cart/add", nil))

	assert.Equal(t, "/add", seen)
}
