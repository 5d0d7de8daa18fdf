package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/shopmesh/core"
)

func validProduct(id string) core.Product {
	return core.Product{ID: id, Name: "Product " + id, Category: "Laptops", Price: 999, Rating: 4.5, Reviews: 120, InStock: true}
}

func TestNew_PreservesOrder(t *testing.T) {
	s, err := New([]core.Product{validProduct("a"), validProduct("b"), validProduct("c")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	products := s.Products()
	for i, want := range []string{"a", "b", "c"} {
		if products[i].ID != want {
			t.Fatalf("order[%d] = %s, want %s", i, products[i].ID, want)
		}
	}
	if _, ok := s.Get("b"); !ok {
		t.Fatal("Get(b) missed")
	}
	if _, ok := s.Get("zzz"); ok {
		t.Fatal("Get(zzz) should miss")
	}
}

func TestNew_RejectsInvalidSchema(t *testing.T) {
	bad := validProduct("a")
	bad.Name = ""
	if _, err := New([]core.Product{bad}); err == nil {
		t.Fatal("missing name accepted")
	}

	bad = validProduct("a")
	bad.Rating = 9
	if _, err := New([]core.Product{bad}); err == nil {
		t.Fatal("rating above 5 accepted")
	}
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	if _, err := New([]core.Product{validProduct("a"), validProduct("a")}); err == nil {
		t.Fatal("duplicate id accepted")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	products := []core.Product{validProduct("a"), validProduct("b")}
	data, err := json.Marshal(products)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
}

func TestProducts_IsDefensiveCopy(t *testing.T) {
	s, err := New([]core.Product{validProduct("a")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	products := s.Products()
	products[0].Name = "mutated"
	if got, _ := s.Get("a"); got.Name == "mutated" {
		t.Fatal("snapshot mutated through Products copy")
	}
}
