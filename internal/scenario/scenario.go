package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dwikikusuma/shoping-checkout/pkg/apperror"
	"gopkg.in/yaml.v3"
)

// Scenario is one customer, the catalog they shop from and what they put in
// their cart.
type Scenario struct {
	Customer Customer  `yaml:"customer"`
	Products []Product `yaml:"products"`
	Cart     []Line    `yaml:"cart"`
}

type Customer struct {
	Name    string `yaml:"name"`
	Balance string `yaml:"balance"`
}

// Product amounts are decimal strings. A grocery needs either ExpiresOn
// (2006-01-02) or ExpiresInDays, counted from the build time.
type Product struct {
	Kind          string `yaml:"kind"`
	Name          string `yaml:"name"`
	Price         string `yaml:"price"`
	Quantity      int    `yaml:"quantity"`
	Weight        string `yaml:"weight,omitempty"`
	ExpiresOn     string `yaml:"expires_on,omitempty"`
	ExpiresInDays *int   `yaml:"expires_in_days,omitempty"`
}

// Line refers to a product by name.
type Line struct {
	Product  string `yaml:"product"`
	Quantity int    `yaml:"quantity"`
}

func Parse(r io.Reader) (Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Scenario{}, apperror.InvalidArgument("scenario is empty")
		}
		return Scenario{}, fmt.Errorf("%w: decode scenario: %v", apperror.ErrInvalidArgument, err)
	}
	if err := s.validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func Load(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s Scenario) validate() error {
	if strings.TrimSpace(s.Customer.Name) == "" {
		return apperror.InvalidArgument("customer name is required")
	}

	seen := make(map[string]struct{}, len(s.Products))
	for i, p := range s.Products {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return apperror.InvalidArgument("product %d: name is required", i)
		}
		if _, dup := seen[name]; dup {
			return apperror.InvalidArgument("product %q listed twice", name)
		}
		seen[name] = struct{}{}
	}

	for i, l := range s.Cart {
		if _, ok := seen[strings.TrimSpace(l.Product)]; !ok {
			return apperror.InvalidArgument("cart line %d: unknown product %q", i, l.Product)
		}
	}
	return nil
}

func days(n int) *int { return &n }

// Default is the demo order: two groceries, a TV and a scratch card.
func Default() Scenario {
	return Scenario{
		Customer: Customer{Name: "John Doe", Balance: "2000"},
		Products: []Product{
			{Kind: "grocery", Name: "Cheese 400g", Price: "100", Quantity: 10, Weight: "0.4", ExpiresInDays: days(30)},
			{Kind: "grocery", Name: "Biscuits 700g", Price: "150", Quantity: 15, Weight: "0.7", ExpiresInDays: days(60)},
			{Kind: "electronics", Name: "Smart TV", Price: "1200", Quantity: 5, Weight: "15"},
			{Kind: "digital", Name: "Mobile Scratch Card", Price: "50", Quantity: 100},
		},
		Cart: []Line{
			{Product: "Cheese 400g", Quantity: 2},
			{Product: "Biscuits 700g", Quantity: 1},
			{Product: "Smart TV", Quantity: 1},
			{Product: "Mobile Scratch Card", Quantity: 1},
		},
	}
}
