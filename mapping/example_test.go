package mapping_test

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"csv-mapper/conv"
	"csv-mapper/csvio"
	"csv-mapper/mapping"
)

func Example() {
	const data = "customer_id,Customer Name,qty\n" +
		"17,Ann,3\n" +
		"18,Bob,\n"

	qty := conv.Must(conv.Int[int](conv.WithDefault(1)))

	m, err := mapping.NewBuilder().
		Add(mapping.NewColumnNameProperty[int]("ID", []string{"id", "*_id"}, conv.Must(conv.Int[int]()))).
		Add(mapping.NewColumnNameProperty[string]("Name", []string{"name", "* name"}, conv.Must(conv.String()))).
		Add(mapping.NewColumnNameProperty[int]("Qty", []string{"quantity", "qty"}, qty)).
		Build()
	if err != nil {
		panic(err)
	}

	r := csvio.NewReader(strings.NewReader(data), csvio.WithIgnoreCase(true))

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			panic(err)
		}

		m.SetRecord(rec)

		var fields []string

		for e, err := range m.Entries() {
			if err != nil {
				panic(err)
			}

			fields = append(fields, fmt.Sprintf("%s=%v", e.Name, e.Value))
		}

		fmt.Println(strings.Join(fields, " "))
	}

	// Output:
	// ID=17 Name=Ann Qty=3
	// ID=18 Name=Bob Qty=1
}
