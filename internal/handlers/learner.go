package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/learnloop/academy/api/v1"
	"github.com/learnloop/academy/internal/auth"
	srvErrors "github.com/learnloop/academy/pkg/errors"
)

// ListCatalogue returns the public course catalogue
// (GET /courses)
func (h *Handler) ListCatalogue(c *gin.Context) error {
	return h.courses.list(c)
}

// GetProgress returns the caller score, active course and completed lessons
// (GET /me/progress)
func (h *Handler) GetProgress(c *gin.Context) error {
	learner, err := auth.MustFromContext(c)
	if err != nil {
		return err
	}

	overview, err := h.progressSrv.Get(c.Request.Context(), learner.UserID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, v1.NewUserProgressFromOverview(*overview))
	return nil
}

// SelectCourse sets the active course of the caller
// (PUT /me/progress/course)
func (h *Handler) SelectCourse(c *gin.Context) error {
	learner, err := auth.MustFromContext(c)
	if err != nil {
		return err
	}

	var req v1.SelectCourseRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	p, err := h.progressSrv.SelectCourse(c.Request.Context(), learner, req.CourseId)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, v1.NewUserProgressFromModel(*p))
	return nil
}

// CompleteLesson records a lesson completion
// (POST /me/lessons/{id}/complete)
func (h *Handler) CompleteLesson(c *gin.Context) error {
	learner, err := auth.MustFromContext(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	p, err := h.progressSrv.CompleteLesson(c.Request.Context(), learner.UserID, id)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, v1.NewUserProgressFromModel(*p))
	return nil
}

// RecordMistake takes a heart for a wrong answer
// (POST /me/lessons/{id}/mistake)
func (h *Handler) RecordMistake(c *gin.Context) error {
	learner, err := auth.MustFromContext(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	p, err := h.progressSrv.ReduceHearts(c.Request.Context(), learner.UserID, id)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, v1.NewUserProgressFromModel(*p))
	return nil
}

// RefillHearts trades points for hearts
// (POST /me/hearts/refill)
func (h *Handler) RefillHearts(c *gin.Context) error {
	learner, err := auth.MustFromContext(c)
	if err != nil {
		return err
	}

	p, err := h.progressSrv.RefillHearts(c.Request.Context(), learner.UserID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, v1.NewUserProgressFromModel(*p))
	return nil
}

// GetSubscription returns the caller billing status
// (GET /me/subscription)
func (h *Handler) GetSubscription(c *gin.Context) error {
	learner, err := auth.MustFromContext(c)
	if err != nil {
		return err
	}

	status := v1.SubscriptionStatus{}

	sub, err := h.billingSrv.Get(c.Request.Context(), learner.UserID)
	switch {
	case srvErrors.IsResourceNotFoundError(err):
	case err != nil:
		return err
	default:
		api := v1.NewSubscriptionFromModel(*sub)
		status.Subscription = &api
		status.Active, err = h.billingSrv.IsActive(c.Request.Context(), learner.UserID)
		if err != nil {
			return err
		}
	}

	c.JSON(http.StatusOK, status)
	return nil
}

// Health reports whether the database answers
// (GET /health)
func (h *Handler) Health(c *gin.Context) error {
	if h.ping != nil {
		if err := h.ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, v1.Health{Status: "unavailable"})
			return nil
		}
	}
	c.JSON(http.StatusOK, v1.Health{Status: "ok"})
	return nil
}
