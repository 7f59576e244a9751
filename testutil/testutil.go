// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tjhirt/cue-designer/cliparse"
	"github.com/tjhirt/cue-designer/db"
	"github.com/tjhirt/cue-designer/models"
)

// SetupTestDB creates a fresh SQLite database with the full schema. The
// file lives under t.TempDir(), so each test gets its own database and
// cleanup is automatic.
func SetupTestDB(t *testing.T) *db.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cue-designer-test.db")
	raw, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { raw.Close() })

	conn := db.Wrap(raw, true)
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3418,
		DatabaseURL:  "file::memory:",
		DatabaseType: "sqlite",
	}
}

// CreateTestDesign creates a design in the database and returns its ID
func CreateTestDesign(t *testing.T, conn *db.DB, cueID string, overallLengthIn float64) string {
	t.Helper()

	designID := uuid.NewString()
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO cue_design (id, cue_id, design_style, overall_length_in, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, designID, cueID, models.StyleTraditionalClassic, overallLengthIn, "test design", now, now)
	if err != nil {
		t.Fatalf("Failed to create test design: %v", err)
	}

	return designID
}

// AddTestSection adds a section to a design and returns the section ID
func AddTestSection(t *testing.T, conn *db.DB, designID string, in models.SectionInput) string {
	t.Helper()

	sectionID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO cue_section (id, design_id, section_type, start_position_in, end_position_in,
			outer_diameter_start_mm, outer_diameter_end_mm, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, sectionID, designID, in.SectionType, in.StartPositionIn, in.EndPositionIn,
		in.OuterDiameterStartMM, in.OuterDiameterEndMM, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test section: %v", err)
	}

	return sectionID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
