package estimate

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"calorie-estimator/internal/core/estimate/cache"
	"calorie-estimator/internal/infrastructure/config"
	"calorie-estimator/internal/pkg/common"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	common.Logger = zap.NewNop()
	m.Run()
}

func newTestStore(t *testing.T) cache.Store {
	t.Helper()
	cfg := &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         100,
			TTL:             time.Hour,
			CleanupInterval: time.Hour,
		},
	}
	store, err := cache.NewStore(cfg)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHandleEstimate(t *testing.T) {
	router := gin.New()
	router.POST("/estimate", HandleEstimate(newTestStore(t)))

	w := postJSON(router, "/estimate", `{"meal_text": "2 tbsp peanut butter"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.EstimateID == "" {
		t.Errorf("estimate_id is empty")
	}
	if resp.Cached {
		t.Errorf("first request reported as cached")
	}
	if resp.Result == nil {
		t.Fatalf("result is nil")
	}
	if resp.Result.TotalCalories != 190 {
		t.Errorf("total_calories = %d, want 190", resp.Result.TotalCalories)
	}
	if len(resp.Result.Items) != 1 {
		t.Errorf("items = %d, want 1", len(resp.Result.Items))
	}
}

func TestHandleEstimateCacheHit(t *testing.T) {
	router := gin.New()
	router.POST("/estimate", HandleEstimate(newTestStore(t)))

	body := `{"meal_text": "3 eggs"}`
	first := postJSON(router, "/estimate", body)
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d", first.Code)
	}

	second := postJSON(router, "/estimate", body)
	if second.Code != http.StatusOK {
		t.Fatalf("second request status = %d", second.Code)
	}

	var firstResp, secondResp EstimateResponse
	if err := json.Unmarshal(first.Body.Bytes(), &firstResp); err != nil {
		t.Fatalf("unmarshal first: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &secondResp); err != nil {
		t.Fatalf("unmarshal second: %v", err)
	}

	if firstResp.Cached {
		t.Errorf("first request reported as cached")
	}
	if !secondResp.Cached {
		t.Errorf("second request not served from cache")
	}
	if firstResp.Result.TotalCalories != secondResp.Result.TotalCalories {
		t.Errorf("cached total %d differs from fresh total %d",
			secondResp.Result.TotalCalories, firstResp.Result.TotalCalories)
	}
}

func TestHandleEstimateNilStore(t *testing.T) {
	router := gin.New()
	router.POST("/estimate", HandleEstimate(nil))

	w := postJSON(router, "/estimate", `{"meal_text": "an apple"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Cached {
		t.Errorf("request reported as cached with no cache configured")
	}
}

func TestHandleEstimateBadRequest(t *testing.T) {
	router := gin.New()
	router.POST("/estimate", HandleEstimate(nil))

	cases := []struct {
		name string
		body string
	}{
		{"missing meal_text", `{}`},
		{"malformed json", `{"meal_text": `},
		{"whitespace only", `{"meal_text": "   "}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(router, "/estimate", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandleClarify(t *testing.T) {
	router := gin.New()
	router.POST("/clarify", HandleClarify())

	t.Run("vague", func(t *testing.T) {
		w := postJSON(router, "/clarify", `{"meal_text": "a handful of almonds"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		var resp ClarifyResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if !resp.NeedsClarification {
			t.Fatalf("vague phrase not detected")
		}
		if resp.Clarification == nil || len(resp.Clarification.Options) == 0 {
			t.Errorf("clarification payload missing options")
		}
	})

	t.Run("precise", func(t *testing.T) {
		w := postJSON(router, "/clarify", `{"meal_text": "2 tbsp peanut butter"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		var resp ClarifyResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.NeedsClarification {
			t.Errorf("precise quantity flagged as vague")
		}
		if resp.Clarification != nil {
			t.Errorf("unexpected clarification payload: %+v", resp.Clarification)
		}
	})
}
