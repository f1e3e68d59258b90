package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

const queryCachePrefix = "directory:"

type queryCacheKeyInput struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operation_name"`
	Variables     map[string]any `json:"variables"`
}

// QueryCacheKey derives the cache key of one read request. query is hashed
// as given apart from surrounding space; callers canonicalize it first when
// layout-only differences should share a key. namespace isolates processes,
// since each process owns its own in-memory directory.
func QueryCacheKey(namespace, query, operationName string, variables map[string]any) string {
	in := queryCacheKeyInput{
		Query:         strings.TrimSpace(query),
		OperationName: strings.TrimSpace(operationName),
		Variables:     variables,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	h := hex.EncodeToString(sum[:])
	return QueryCacheNamespace(namespace) + h
}

// QueryCacheNamespace is the key prefix shared by every cached read of one process.
func QueryCacheNamespace(namespace string) string {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		namespace = "default"
	}
	return queryCachePrefix + namespace + ":query:"
}
