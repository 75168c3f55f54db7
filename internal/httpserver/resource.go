package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"vin-online-shopping/internal/domain"
	"vin-online-shopping/internal/schema"
)

// ResourceService is the store behind one route family.
type ResourceService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, payload map[string]any) (*T, error)
	Update(ctx context.Context, id int, payload map[string]any) (*T, error)
	Delete(ctx context.Context, id int) (*T, error)
}

type resourceMeta struct {
	path  string // URL segment
	label string // name used in response messages
	field string // key wrapping the record in update/delete responses
}

type resourceCounter struct {
	path  string
	count func(ctx context.Context) (int, error)
}

var (
	errMalformedBody = errors.New("Invalid JSON body")
	errNotObject     = errors.New(`"value" must be of type object`)
)

type resourceHandler[T any] struct {
	meta   resourceMeta
	svc    ResourceService[T]
	logger *log.Logger
}

func registerResource[T any](r gin.IRouter, meta resourceMeta, svc ResourceService[T], logger *log.Logger) resourceCounter {
	h := &resourceHandler[T]{meta: meta, svc: svc, logger: logger}
	base := "/" + meta.path
	r.GET(base, h.list)
	r.GET(base+"/:id", h.get)
	r.POST(base, h.create)
	r.PUT(base+"/:id", h.update)
	r.DELETE(base+"/:id", h.delete)
	return resourceCounter{path: meta.path, count: h.count}
}

func (h *resourceHandler[T]) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "list", err)
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *resourceHandler[T]) get(c *gin.Context) {
	rec, err := h.svc.Get(c.Request.Context(), parseID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.String(http.StatusNotFound, h.meta.label+" not found")
			return
		}
		h.internalError(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *resourceHandler[T]) create(c *gin.Context) {
	payload, err := decodePayload(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.svc.Create(c.Request.Context(), payload)
	if err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			c.String(http.StatusBadRequest, verr.Message)
			return
		}
		h.internalError(c, "create", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *resourceHandler[T]) update(c *gin.Context) {
	payload, err := decodePayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), parseID(c), payload)
	if err != nil {
		var verr *schema.ValidationError
		switch {
		case errors.Is(err, domain.ErrEmptyBody):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request body is empty"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": h.meta.label + " ID not found"})
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		default:
			h.internalError(c, "update", err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    h.meta.label + " updated successfully",
		h.meta.field: rec,
	})
}

func (h *resourceHandler[T]) delete(c *gin.Context) {
	rec, err := h.svc.Delete(c.Request.Context(), parseID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.meta.label + " ID not found"})
			return
		}
		h.internalError(c, "delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    h.meta.label + " deleted successfully",
		h.meta.field: rec,
	})
}

func (h *resourceHandler[T]) count(ctx context.Context) (int, error) {
	items, err := h.svc.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (h *resourceHandler[T]) internalError(c *gin.Context, op string, err error) {
	h.logger.Printf("%s handler: %s error=%v", h.meta.path, op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// parseID reads the leading decimal digits of the :id parameter, so "7abc"
// names record 7. It returns 0 (never a stored id) when there are no leading
// digits or the value is not positive.
func parseID(c *gin.Context) int {
	raw := strings.TrimPrefix(strings.TrimLeft(c.Param("id"), " \t\n\r"), "+")
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	id, err := strconv.Atoi(raw[:end])
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// decodePayload reads the body as a JSON object. An absent body decodes to an
// empty object. Numbers are kept as json.Number for the schema to classify.
func decodePayload(c *gin.Context) (map[string]any, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, errMalformedBody
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errMalformedBody
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errMalformedBody
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return obj, nil
}
