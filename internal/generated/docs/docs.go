// Package docs registers the OpenAPI document with swag so that echo-swagger can
// serve it under /swagger/doc.json.
package docs

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/swaggo/swag"

	"icecream/api"
)

// Document renders api/openapi.yml as JSON on first read.
type Document struct {
	once sync.Once
	doc  string
}

// SwaggerInfo is the registered instance.
var SwaggerInfo = &Document{}

// ReadDoc implements swag.Swagger.
func (d *Document) ReadDoc() string {
	d.once.Do(func() {
		d.doc = render()
	})
	return d.doc
}

func render() string {
	doc, err := api.Load()
	if err != nil {
		return errorDoc(err)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return errorDoc(err)
	}
	return string(data)
}

func errorDoc(err error) string {
	data, _ := json.Marshal(map[string]string{"error": fmt.Sprintf("openapi document unavailable: %v", err)})
	return string(data)
}

func init() {
	swag.Register(swag.Name, SwaggerInfo)
}
