package meal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mealcycle/pkg/errors"
)

// Demo returns the built-in demonstration catalog.
// Each call returns a fresh slice.
func Demo() []Meal {
	return []Meal{
		{Name: "Beef Stroganoff", Tolerance: 3},
		{Name: "PB&J", Tolerance: 1},
		{Name: "Ham Sandwich", Tolerance: 2},
		{Name: "Hamburger", Tolerance: 2},
		{Name: "Bacon, Eggs, Toast", Tolerance: 3},
		{Name: "Arroz con Pollo", Tolerance: 4},
		{Name: "Scrambled Eggs", Tolerance: 1},
	}
}

// catalogFile is the on-disk TOML layout.
type catalogFile struct {
	Meals []Meal `toml:"meal"`
}

// ReadCatalog decodes a TOML catalog from r.
// Unknown keys, invalid names and non-positive tolerances are rejected.
func ReadCatalog(r io.Reader) ([]Meal, error) {
	var f catalogFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode catalog")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if len(f.Meals) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySource, "catalog has no [[meal]] entries")
	}
	for i, m := range f.Meals {
		if err := errors.ValidateMealName(m.Name); err != nil {
			return nil, fmt.Errorf("meal %d: %w", i, err)
		}
	}
	if err := Validate(f.Meals); err != nil {
		return nil, err
	}
	return f.Meals, nil
}

// LoadCatalog reads a TOML catalog from path.
func LoadCatalog(path string) ([]Meal, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCatalog(f)
}
