package validator

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type query struct {
	Kind  string `form:"kind" validate:"required,oneof=a b"`
	Size  int64  `form:"page_size" validate:"gte=0,lte=100"`
	Inner string `json:"inner" validate:"max=3"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(&query{Kind: "c", Size: -1, Inner: "long"})
	want := map[string]string{
		"kind":      "The field 'kind' must be one of a b.",
		"page_size": "The field 'page_size' must be greater than or equal to 0.",
		"inner":     "The field 'inner' must be no longer than 3 characters.",
	}
	if len(errs) != len(want) {
		t.Fatalf("errs = %v", errs)
	}
	for k, v := range want {
		if errs[k] != v {
			t.Errorf("errs[%q] = %q, want %q", k, errs[k], v)
		}
	}

	if errs := ValidateStruct(&query{Kind: "a", Size: 10}); len(errs) != 0 {
		t.Errorf("valid struct reported %v", errs)
	}
}

func TestShouldBindQueryAndValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(target string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, target, nil)
		return c
	}

	var q query
	errs, err := ShouldBindQueryAndValidate(newCtx("/?kind=b&page_size=500"), &q)
	if err != nil {
		t.Fatalf("bind error = %v", err)
	}
	if _, ok := errs["page_size"]; !ok || len(errs) != 1 {
		t.Errorf("errs = %v", errs)
	}

	if _, err := ShouldBindQueryAndValidate(newCtx("/?page_size=abc"), &q); err == nil {
		t.Error("expected bind error for non-numeric page_size")
	}
}
