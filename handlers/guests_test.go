// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/ranked-pick/models"
	"github.com/danielhkuo/ranked-pick/testutil"
)

func TestRegisterGuest(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	handler := NewGuestHandler(conn, testutil.GetTestConfig())

	adminHeaders := map[string]string{"X-Admin-Token": testutil.TestAdminToken}

	t.Run("successful registration", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/admin/guests", models.RegisterGuestRequest{
			Name:    "Alice",
			Costume: "Vampire",
		}, adminHeaders)
		w := httptest.NewRecorder()
		handler.Register(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.RegisterGuestResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.GuestID == 0 {
			t.Error("Expected a non-zero guest id")
		}
	})

	t.Run("missing admin token", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/admin/guests", models.RegisterGuestRequest{
			Name: "Bob",
		}, nil)
		w := httptest.NewRecorder()
		handler.Register(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("wrong admin token", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/admin/guests", models.RegisterGuestRequest{
			Name: "Bob",
		}, map[string]string{"X-Admin-Token": "wrong-token"})
		w := httptest.NewRecorder()
		handler.Register(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("empty name", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/admin/guests", models.RegisterGuestRequest{}, adminHeaders)
		w := httptest.NewRecorder()
		handler.Register(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("name too long", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/admin/guests", models.RegisterGuestRequest{
			Name: strings.Repeat("x", 51),
		}, adminHeaders)
		w := httptest.NewRecorder()
		handler.Register(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("duplicate name", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/admin/guests", models.RegisterGuestRequest{
			Name: "Alice",
		}, adminHeaders)
		w := httptest.NewRecorder()
		handler.Register(w, req)

		testutil.AssertStatus(t, w, http.StatusConflict)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	testutil.CreateTestGuest(t, conn, "Alice")

	_, err := conn.Exec(`
		INSERT INTO guest (name, costume, is_active, registered_at)
		VALUES ($1, NULL, 1, $2)
	`, "Alice", time.Now())
	if err == nil {
		t.Fatal("Expected a unique-constraint failure")
	}
	if !isUniqueViolation(err) {
		t.Errorf("Driver error not recognized as a unique violation: %v", err)
	}

	if isUniqueViolation(nil) {
		t.Error("nil is not a unique violation")
	}
	if isUniqueViolation(sql.ErrNoRows) {
		t.Error("sql.ErrNoRows is not a unique violation")
	}
}

func TestListGuests(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	handler := NewGuestHandler(conn, testutil.GetTestConfig())

	t.Run("empty roster", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/guests", nil, nil)
		w := httptest.NewRecorder()
		handler.List(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var guests []models.GuestSummary
		testutil.AssertJSON(t, w, &guests)
		if len(guests) != 0 {
			t.Errorf("Expected empty roster, got %d guests", len(guests))
		}
	})

	t.Run("active guests sorted by name", func(t *testing.T) {
		testutil.CreateTestGuest(t, conn, "Carol")
		testutil.CreateTestGuest(t, conn, "Alice")
		ghost := testutil.CreateTestGuest(t, conn, "Ghost")
		testutil.DeactivateTestGuest(t, conn, ghost)

		req := testutil.MakeRequest("GET", "/guests", nil, nil)
		w := httptest.NewRecorder()
		handler.List(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var guests []models.GuestSummary
		testutil.AssertJSON(t, w, &guests)
		if len(guests) != 2 {
			t.Fatalf("Expected 2 active guests, got %d", len(guests))
		}
		if guests[0].Name != "Alice" || guests[1].Name != "Carol" {
			t.Errorf("Expected name-sorted roster, got %q then %q", guests[0].Name, guests[1].Name)
		}
		if guests[0].Registered == "" {
			t.Error("Expected a humanized registration age")
		}
	})
}
