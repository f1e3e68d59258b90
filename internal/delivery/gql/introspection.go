package gql

import (
	"context"
	"encoding/json"
	"fmt"
)

const IntrospectionQuery = `
query IntrospectionQuery {
  __schema {
    queryType { name }
    mutationType { name }
    subscriptionType { name }
    types { ...FullType }
    directives {
      name
      description
      locations
      args { ...InputValue }
    }
  }
}

fragment FullType on __Type {
  kind
  name
  description
  fields(includeDeprecated: true) {
    name
    description
    args { ...InputValue }
    type { ...TypeRef }
    isDeprecated
    deprecationReason
  }
  inputFields { ...InputValue }
  interfaces { ...TypeRef }
  enumValues(includeDeprecated: true) {
    name
    description
    isDeprecated
    deprecationReason
  }
  possibleTypes { ...TypeRef }
}

fragment InputValue on __InputValue {
  name
  description
  type { ...TypeRef }
  defaultValue
}

fragment TypeRef on __Type {
  kind
  name
  ofType {
    kind
    name
    ofType {
      kind
      name
      ofType {
        kind
        name
        ofType { kind name }
      }
    }
  }
}
`

// Introspect returns the schema's introspection result as indented JSON.
func (e *Executor) Introspect(ctx context.Context) ([]byte, error) {
	res := e.Execute(ctx, Request{Query: IntrospectionQuery, OperationName: "IntrospectionQuery"})
	if res.HasErrors() {
		return nil, fmt.Errorf("introspection: %v", res.Errors)
	}
	return json.MarshalIndent(res, "", "  ")
}
