package handler

import (
	"encoding/json"
	"strings"

	"freelance-directory/internal/delivery/gql"
	"freelance-directory/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/graphql-go/graphql/language/ast"
	gqlhandler "github.com/graphql-go/handler"
)

type GraphQLHandler struct {
	exec       *gql.Executor
	path       string
	playground fiber.Handler
}

// NewGraphQLHandler serves exec on path. With playground set, a browser GET
// without a query receives the GraphQL Playground page.
func NewGraphQLHandler(exec *gql.Executor, path string, playground bool) *GraphQLHandler {
	if path == "" {
		path = "/graphql"
	}
	h := &GraphQLHandler{exec: exec, path: path}
	if playground {
		schema := exec.Schema()
		h.playground = adaptor.HTTPHandler(gqlhandler.New(&gqlhandler.Config{
			Schema:     &schema,
			Playground: true,
		}))
	}
	return h
}

func (h *GraphQLHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get(h.path, h.Get)
	r.Post(h.path, h.Post)
}

// Post executes a JSON-encoded request body.
func (h *GraphQLHandler) Post(c fiber.Ctx) error {
	var req gql.Request
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid GraphQL request body", nil, err)
	}
	return h.execute(c, req)
}

// Get executes a request carried in the query string. Only queries are
// accepted over GET.
func (h *GraphQLHandler) Get(c fiber.Ctx) error {
	if h.playground != nil && c.Query("query") == "" && wantsHTML(c.Get(fiber.HeaderAccept)) {
		return h.playground(c)
	}

	req := gql.Request{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}
	if raw := strings.TrimSpace(c.Query("variables")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "variables must be a JSON object", nil, err)
		}
	}

	if gql.OperationType(req.Query, req.OperationName) == ast.OperationTypeMutation {
		c.Set(fiber.HeaderAllow, fiber.MethodPost)
		return middleware.NewAppError(fiber.StatusMethodNotAllowed, "mutations must be sent with POST", nil, nil)
	}
	return h.execute(c, req)
}

func (h *GraphQLHandler) execute(c fiber.Ctx, req gql.Request) error {
	if strings.TrimSpace(req.Query) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "query is required", nil, nil)
	}

	res := h.exec.Execute(c.Context(), req)
	return c.Status(fiber.StatusOK).JSON(res)
}

func wantsHTML(accept string) bool {
	return strings.Contains(accept, fiber.MIMETextHTML) && !strings.Contains(accept, fiber.MIMEApplicationJSON)
}
