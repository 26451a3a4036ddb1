// Package bentity parses the two text grammars found in BSP files: the entity
// lump and the key-value blocks trailing each physics model.
package bentity

type (
	Pair struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	// Entity keeps its pairs in file order. Keys may repeat.
	Entity struct {
		Pairs []Pair `json:"pairs"`
	}
	KeyValueObject struct {
		Name  string `json:"name"`
		Pairs []Pair `json:"pairs"`
	}
)

const (
	KeyClassName = "classname"
)

// Get returns the first value stored under key.
func (r Entity) Get(key string) (string, bool) {
	for _, pair := range r.Pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}

// Values returns every value stored under key, in file order.
func (r Entity) Values(key string) []string {
	values := make([]string, 0)
	for _, pair := range r.Pairs {
		if pair.Key == key {
			values = append(values, pair.Value)
		}
	}
	return values
}

func (r Entity) ClassName() string {
	value, _ := r.Get(KeyClassName)
	return value
}
