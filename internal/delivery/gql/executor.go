package gql

import (
	"context"
	"log"
	"strings"

	"freelance-directory/internal/usecase"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/printer"
)

const (
	OutcomeOK     = "ok"
	OutcomeError  = "error"
	OutcomeCached = "cached"
)

type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Observer is told about every executed operation.
type Observer interface {
	ObserveOperation(operation, outcome string)
}

type Executor struct {
	schema    graphql.Schema
	dir       *usecase.Directory
	cache     usecase.QueryCache
	namespace string
	observer  Observer
	logger    *log.Logger
}

type ExecutorOption func(*Executor)

// WithQueryCache caches successful query results under namespace. Every
// mutation drops the whole namespace.
func WithQueryCache(cache usecase.QueryCache, namespace string) ExecutorOption {
	return func(e *Executor) {
		e.cache = cache
		e.namespace = namespace
	}
}

func WithObserver(o Observer) ExecutorOption {
	return func(e *Executor) { e.observer = o }
}

func WithLogger(l *log.Logger) ExecutorOption {
	return func(e *Executor) { e.logger = l }
}

func NewExecutor(dir *usecase.Directory, opts ...ExecutorOption) (*Executor, error) {
	schema, err := NewSchema(dir)
	if err != nil {
		return nil, err
	}
	e := &Executor{schema: schema, dir: dir}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// OperationType returns the type ("query", "mutation" or "subscription") of
// the operation a request would execute, or "" when the document does not
// parse or names no such operation.
func OperationType(query, operationName string) string {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return ""
	}

	var ops []*ast.OperationDefinition
	for _, def := range doc.Definitions {
		if op, ok := def.(*ast.OperationDefinition); ok {
			ops = append(ops, op)
		}
	}

	if operationName == "" {
		if len(ops) != 1 {
			return ""
		}
		return ops[0].Operation
	}
	for _, op := range ops {
		if op.Name != nil && op.Name.Value == operationName {
			return op.Operation
		}
	}
	return ""
}

// Execute runs one request as a single logical operation: mutations under the
// directory write lock, everything else under the read lock.
func (e *Executor) Execute(ctx context.Context, req Request) *graphql.Result {
	operation := OperationType(req.Query, req.OperationName)

	var res *graphql.Result
	if operation == ast.OperationTypeMutation {
		_ = e.dir.Update(func() error {
			res = e.do(ctx, req)
			e.invalidate(ctx)
			return nil
		})
		e.observe(operation, outcomeOf(res))
		return res
	}

	cached := false
	_ = e.dir.View(func() error {
		res, cached = e.cachedQuery(ctx, req)
		return nil
	})

	if operation == "" {
		operation = "unknown"
	}
	outcome := outcomeOf(res)
	if cached {
		outcome = OutcomeCached
	}
	e.observe(operation, outcome)
	return res
}

func (e *Executor) Schema() graphql.Schema {
	return e.schema
}

type rawVariablesKey struct{}

func (e *Executor) do(ctx context.Context, req Request) *graphql.Result {
	if ctx == nil {
		ctx = context.Background()
	}
	return graphql.Do(graphql.Params{
		Schema:         e.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        context.WithValue(ctx, rawVariablesKey{}, req.Variables),
	})
}

// rawVariables returns the variables exactly as the caller sent them.
// Coercion drops null input fields, so resolvers that must tell an explicit
// null from an omitted field read them here.
func rawVariables(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	vars, _ := ctx.Value(rawVariablesKey{}).(map[string]any)
	return vars
}

// cachedQuery must run under the read lock so a stored result can never
// outlive the mutation that invalidates it.
func (e *Executor) cachedQuery(ctx context.Context, req Request) (*graphql.Result, bool) {
	if e.cache == nil {
		return e.do(ctx, req), false
	}

	key := usecase.QueryCacheKey(e.namespace, canonicalQuery(req.Query), req.OperationName, req.Variables)
	var data map[string]any
	if hit, err := e.cache.GetJSON(ctx, key, &data); err == nil && hit {
		return &graphql.Result{Data: data}, true
	}

	res := e.do(ctx, req)
	if !res.HasErrors() {
		if err := e.cache.SetJSON(ctx, key, res.Data, 0); err != nil {
			e.logf("GraphQL cache store failed | key=%s err=%v", key, err)
		}
	}
	return res, false
}

// canonicalQuery reprints a parsed document so that layout differences
// collapse while string values keep every character. Unparseable text is
// returned unchanged.
func canonicalQuery(query string) string {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return query
	}
	if s, ok := printer.Print(doc).(string); ok {
		return s
	}
	return query
}

func (e *Executor) invalidate(ctx context.Context) {
	if e.cache == nil {
		return
	}
	pattern := usecase.QueryCacheNamespace(e.namespace) + "*"
	if err := e.cache.DeleteByPattern(ctx, pattern); err != nil {
		e.logf("GraphQL cache invalidation failed | pattern=%s err=%v", pattern, err)
	}
}

func (e *Executor) observe(operation, outcome string) {
	if e.observer == nil {
		return
	}
	e.observer.ObserveOperation(strings.ToLower(operation), outcome)
}

func (e *Executor) logf(format string, args ...any) {
	if e.logger == nil {
		return
	}
	e.logger.Printf(format, args...)
}

func outcomeOf(res *graphql.Result) string {
	if res == nil || res.HasErrors() {
		return OutcomeError
	}
	return OutcomeOK
}
