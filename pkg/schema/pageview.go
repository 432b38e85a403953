package schema

import "github.com/hamba/avro/v2"

const PageViewSchemaTextV1 = `{
	"type": "record",
	"namespace": "sportshop",
	"name": "page_view",
	"fields" : [
		{"name": "section", "type": "string"},
		{"name": "category", "type": "string"},
		{"name": "items", "type": "int"},
		{"name": "viewed_at", "type": "long"}
	]
}`

type PageViewV1 struct {
	Section  string `avro:"section"`
	Category string `avro:"category"`
	Items    int    `avro:"items"`
	ViewedAt int64  `avro:"viewed_at"`
}

func PageViewV1Avro() avro.Schema {
	return avro.MustParse(PageViewSchemaTextV1)
}
