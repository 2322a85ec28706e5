package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildProductFilterEmpty(t *testing.T) {
	filter := buildProductFilter("", "")
	if len(filter) != 0 {
		t.Fatalf("expected empty filter, got %v", filter)
	}
}

func TestBuildProductFilterQueryIsCaseInsensitive(t *testing.T) {
	filter := buildProductFilter("SONY", "")

	title, ok := filter["title"].(bson.M)
	if !ok {
		t.Fatalf("expected title clause, got %v", filter)
	}
	re, ok := title["$regex"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex clause, got %v", title)
	}
	if re.Pattern != "SONY" || re.Options != "i" {
		t.Fatalf("expected case-insensitive SONY pattern, got %+v", re)
	}
}

func TestBuildProductFilterQuotesRegexMetacharacters(t *testing.T) {
	filter := buildProductFilter("wh-1000.*", "")

	re := filter["title"].(bson.M)["$regex"].(primitive.Regex)
	if re.Pattern != `wh-1000\.\*` {
		t.Fatalf("expected quoted pattern, got %q", re.Pattern)
	}
}

func TestBuildProductFilterCategoryExactMatch(t *testing.T) {
	filter := buildProductFilter("", "mobiles")

	if filter["category"] != "mobiles" {
		t.Fatalf("expected exact category match, got %v", filter["category"])
	}
}

func TestBuildProductFilterCombinesWithAnd(t *testing.T) {
	filter := buildProductFilter("pixel", "mobiles")

	if len(filter) != 2 {
		t.Fatalf("expected both clauses, got %v", filter)
	}
}

func TestParseProductLimit(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"", 24, false},
		{"1", 1, false},
		{"500", 500, false}, // no enforced maximum
		{"0", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := parseProductLimit(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("limit %q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("limit %q: unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("limit %q: expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

// A malformed id is rejected before the store is touched.
func TestGetProductRejectsMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/products/not-a-valid-id", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-valid-id"}}

	GetProduct(nil)(c)

	if w.Code != 400 {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
