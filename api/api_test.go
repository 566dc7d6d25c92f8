package api_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"icecream/api"
	"icecream/internal/generated/servers"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load()

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/orders/{id}/status"))
	assert.NotNil(t, doc.Components.Schemas["Order"])
}

func TestServerInterfaceMatchesDocument(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)

	var operations []string
	for _, item := range doc.Paths.Map() {
		for _, op := range item.Operations() {
			operations = append(operations, op.OperationID)
		}
	}
	sort.Strings(operations)

	iface := reflect.TypeFor[servers.ServerInterface]()
	methods := make([]string, 0, iface.NumMethod())
	for i := range iface.NumMethod() {
		methods = append(methods, iface.Method(i).Name)
	}

	assert.Equal(t, operations, methods)
}
