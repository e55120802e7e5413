package schema_test

import (
	"errors"
	"fmt"

	"github.com/zero-day-ai/foundation/schema"
)

type Window struct {
	Start int64  `json:"start" validate:"required"`
	End   int64  `json:"end" validate:"required"`
	Owner string `json:"owner" validate:"identifier"`
}

var windowSchema = schema.MustNew[Window](
	schema.WithRule("self.end >= self.start", []string{"end"}, "must not precede start"),
)

func Example() {
	r := windowSchema.Validate(map[string]any{"start": 10, "end": 20, "owner": "ops"})
	fmt.Println(r.Must().End - r.Must().Start)

	r = windowSchema.Validate(map[string]any{"start": 10, "end": 5, "owner": "ops"})
	var verr *schema.Error
	if errors.As(r.Err(), &verr) {
		fmt.Println(verr.Issues[0].Path, verr.Issues[0].Message)
	}
	// Output:
	// 10
	// [end] must not precede start
}

func ExampleSchema_Parse() {
	_, err := windowSchema.Parse([]byte(`{"end": 5, "owner": ""}`))
	fmt.Println(err)
	// Output: start: is required, owner: must not be blank
}
