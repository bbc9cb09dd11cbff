// Package graphql provides the GraphQL transport layer for the knowledge-base
// backend. It defines the schema, resolvers, and error handling for versioned
// tools, workflows, spaces, widgets, and collections. The executable schema
// is generated via gqlgen from the schema files and is not committed.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
