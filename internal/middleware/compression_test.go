// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const compressiblePayload = `{"movies":[{"id":1,"primaryTitle":"The Shawshank Redemption"},{"id":2,"primaryTitle":"The Godfather"}]}`

func TestCompression_GzipsWhenAccepted(t *testing.T) {
	t.Parallel()

	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(compressiblePayload)); err != nil {
			t.Errorf("write response: %v", err)
		}
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
	r.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	handler(w, r)

	if got := w.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want %q", got, "gzip")
	}

	gz, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("response is not valid gzip: %v", err)
	}
	defer gz.Close()

	decoded, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("decompress response: %v", err)
	}
	if string(decoded) != compressiblePayload {
		t.Errorf("decompressed body = %q, want %q", decoded, compressiblePayload)
	}
}

func TestCompression_SkipsWithoutAcceptEncoding(t *testing.T) {
	t.Parallel()

	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(compressiblePayload)); err != nil {
			t.Errorf("write response: %v", err)
		}
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil))

	if got := w.Header().Get("Content-Encoding"); got != "" {
		t.Errorf("Content-Encoding = %q, want empty", got)
	}
	if got := w.Body.String(); got != compressiblePayload {
		t.Errorf("body = %q, want uncompressed payload", got)
	}
}

func TestCompression_PreservesStatusCode(t *testing.T) {
	t.Parallel()

	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		if _, err := w.Write([]byte(`{"status":"error"}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/movies/999", nil)
	r.Header.Set("Accept-Encoding", "gzip, deflate")
	w := httptest.NewRecorder()
	handler(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	gz, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("response is not valid gzip: %v", err)
	}
	defer gz.Close()

	decoded, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("decompress response: %v", err)
	}
	if !strings.Contains(string(decoded), "error") {
		t.Errorf("decompressed body = %q, want error payload", decoded)
	}
}
