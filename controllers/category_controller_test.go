package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCategoryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/categories", ListCategories)
	r.GET("/api/categories/:category/specs", GetCategorySpecs)
	return r
}

func TestListCategories(t *testing.T) {
	r := newCategoryRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []struct {
			Value             string `json:"value"`
			Label             string `json:"label"`
			HasSpecifications bool   `json:"has_specifications"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 11 {
		t.Fatalf("got %d categories, want 11", len(resp.Data))
	}
	if resp.Data[0].Value != "computer" || !resp.Data[0].HasSpecifications {
		t.Errorf("first category = %+v", resp.Data[0])
	}
}

func TestGetCategorySpecs(t *testing.T) {
	r := newCategoryRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories/network/specs", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Category      string            `json:"category"`
		RequiredSpecs []string          `json:"required_specs"`
		AllowedSpecs  []string          `json:"allowed_specs"`
		SpecLabels    map[string]string `json:"spec_labels"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Category != "network" {
		t.Errorf("category = %q", resp.Category)
	}
	if len(resp.RequiredSpecs) != 1 || resp.RequiredSpecs[0] != "type" {
		t.Errorf("required = %v", resp.RequiredSpecs)
	}
	if resp.SpecLabels["wifi_standard"] == "" {
		t.Error("missing label for wifi_standard")
	}
}

func TestGetCategorySpecsUnknown(t *testing.T) {
	r := newCategoryRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories/fridge/specs", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
