package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnloop/academy/internal/export"
	"github.com/learnloop/academy/internal/services"
	"github.com/learnloop/academy/pkg/listquery"
)

type contentService[M any] interface {
	List(ctx context.Context, d listquery.Descriptor) (*services.ListResult[M], error)
	Get(ctx context.Context, id int64) (M, error)
	Create(ctx context.Context, item M) (M, error)
	Update(ctx context.Context, id int64, item M) (M, error)
	Delete(ctx context.Context, id int64) (M, error)
}

type modelRequest[M any] interface {
	ToModel() M
}

// resource serves the admin CRUD endpoints of one entity collection. M is
// the model, A the API representation and R the create/update body.
type resource[M any, A export.Row, R modelRequest[M]] struct {
	entity string
	svc    contentService[M]
	toAPI  func(M) A
	parser *listquery.Parser
}

func newResource[M any, A export.Row, R modelRequest[M]](
	entity string,
	svc contentService[M],
	toAPI func(M) A,
	parser *listquery.Parser,
) *resource[M, A, R] {
	return &resource[M, A, R]{entity: entity, svc: svc, toAPI: toAPI, parser: parser}
}

func (r *resource[M, A, R]) register(g *gin.RouterGroup) {
	g.GET("/"+r.entity, wrap(r.list))
	g.GET("/"+r.entity+"/export", wrap(r.export))
	g.GET("/"+r.entity+"/:id", wrap(r.get))
	g.POST("/"+r.entity, wrap(r.create))
	g.PUT("/"+r.entity+"/:id", wrap(r.update))
	g.DELETE("/"+r.entity+"/:id", wrap(r.delete))
}

// list answers GET /<entity> through the list-query protocol.
func (r *resource[M, A, R]) list(c *gin.Context) error {
	d := r.parser.ParseValues(c.Request.URL.Query())

	result, err := r.svc.List(c.Request.Context(), d)
	if err != nil {
		return err
	}

	listquery.Respond(c, r.entity, mapSlice(result.Items, r.toAPI), result.Total, d)
	return nil
}

// export answers GET /<entity>/export with the rows of the same list query
// as an XLSX attachment.
func (r *resource[M, A, R]) export(c *gin.Context) error {
	d := r.parser.ParseValues(c.Request.URL.Query())

	result, err := r.svc.List(c.Request.Context(), d)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, r.entity, mapSlice(result.Items, r.toAPI)); err != nil {
		return fmt.Errorf("failed to export %s: %w", r.entity, err)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(r.entity)))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
	return nil
}

func (r *resource[M, A, R]) get(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := r.svc.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, r.toAPI(item))
	return nil
}

func (r *resource[M, A, R]) create(c *gin.Context) error {
	var req R
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	created, err := r.svc.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, r.toAPI(created))
	return nil
}

func (r *resource[M, A, R]) update(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req R
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	updated, err := r.svc.Update(c.Request.Context(), id, req.ToModel())
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, r.toAPI(updated))
	return nil
}

// delete returns the removed row, which admin list views expect.
func (r *resource[M, A, R]) delete(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := r.svc.Delete(c.Request.Context(), id)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, r.toAPI(deleted))
	return nil
}

func mapSlice[M, A any](items []M, fn func(M) A) []A {
	out := make([]A, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
