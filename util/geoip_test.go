package util

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitGeoIP_EmptyPath(t *testing.T) {
	assert.NoError(t, InitGeoIP(""))
}

func TestInitGeoIP_NonExistentFile(t *testing.T) {
	assert.Error(t, InitGeoIP("/nonexistent/path/to/geoip.mmdb"))
	assert.Error(t, ValidateGeoIP("/nonexistent/path/to/geoip.mmdb"))
}

func TestGetIPLocation_LocalAndInvalid(t *testing.T) {
	geoipDB = nil
	geoipCache = nil

	for _, ip := range []string{"", "not-an-ip", "127.0.0.1", "::1", "10.0.0.1", "192.168.1.1", "172.16.4.2", "::"} {
		assert.Equal(t, IPLocation{}, GetIPLocation(ip), ip)
	}
}

func TestGetIPLocation_NoDB(t *testing.T) {
	geoipDB = nil
	geoipCache = nil

	assert.Equal(t, IPLocation{}, GetIPLocation("8.8.8.8"))
	_, _, size := GetGeoIPCacheMetrics()
	assert.Equal(t, 0, size)
}

func TestIPLocationString(t *testing.T) {
	assert.Equal(t, "Kathmandu/Nepal", IPLocation{City: "Kathmandu", Country: "Nepal"}.String())
	assert.Equal(t, "Nepal", IPLocation{Country: "Nepal"}.String())
	assert.Equal(t, "Pokhara", IPLocation{City: "Pokhara"}.String())
	assert.Equal(t, "", IPLocation{}.String())
}

func TestCloseGeoIP_NilIsSafe(t *testing.T) {
	geoipDB = nil
	CloseGeoIP()
	assert.Nil(t, geoipDB)
}

func TestDownloadGeoIP_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "geoip.mmdb")
	_, err := DownloadGeoIPWithRequest(context.Background(), DownloadRequest{URL: server.URL, DestPath: dest})
	assert.Error(t, err)
}

func TestDownloadGeoIP_Success(t *testing.T) {
	payload := []byte("mock geoip database content")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "geoip.mmdb")
	got, err := DownloadGeoIPWithRequest(context.Background(), DownloadRequest{URL: server.URL, DestPath: dest})
	require.NoError(t, err)
	assert.Equal(t, dest, got)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestDownloadGeoIP_Gzip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte("compressed db"))
		_ = gz.Close()
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "geoip.mmdb")
	_, err := DownloadGeoIPWithRequest(context.Background(), DownloadRequest{URL: server.URL + "/GeoLite2-City.mmdb.gz", DestPath: dest})
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "compressed db", string(data))
}

func TestDownloadGeoIP_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	dir := t.TempDir()
	_, err := DownloadGeoIPWithRequest(ctx, DownloadRequest{URL: server.URL, DestPath: filepath.Join(dir, "geoip.mmdb")})
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
