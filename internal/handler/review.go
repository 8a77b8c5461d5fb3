package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"main/internal/database"
	"main/internal/model"
)

const anonymousName = "Anonymous User"

type reviewRequest struct {
	Name    string  `json:"name"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment string  `json:"comment" binding:"required"`
	Avatar  *string `json:"avatar"`
	UserID  *string `json:"user_id"`
}

func (h *Handler) ListReviews(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		abortDetail(c, http.StatusBadRequest, "page must be an integer >= 1")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		abortDetail(c, http.StatusBadRequest, "limit must be an integer between 1 and 100")
		return
	}

	reviews, total, err := h.reviews.List(c.Request.Context(), page, limit)
	if err != nil {
		abortError(c, err, "Failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (h *Handler) ReviewStats(c *gin.Context) {
	avg, total, err := h.reviews.Stats(c.Request.Context())
	if err != nil {
		abortError(c, err, "Failed to fetch review stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"averageRating": avg,
		"totalReviews":  total,
	})
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortDetail(c, http.StatusBadRequest, "rating must be between 1 and 5 and comment must not be empty")
		return
	}

	name := req.Name
	if name == "" {
		name = anonymousName
	}

	created, err := h.reviews.Create(c.Request.Context(), &model.Review{
		Name:    name,
		Rating:  req.Rating,
		Comment: req.Comment,
		Avatar:  req.Avatar,
		UserID:  req.UserID,
	})
	if err != nil {
		abortError(c, err, msgDBUnavailable)
		return
	}

	c.JSON(http.StatusOK, created)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	err := h.reviews.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, database.ErrInvalidID):
			abortError(c, err, "Invalid review ID")
		case errors.Is(err, database.ErrNotFound):
			abortError(c, err, "Review not found")
		default:
			abortError(c, err, msgDBUnavailable)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

func (h *Handler) UpdateUserReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortDetail(c, http.StatusBadRequest, "rating must be between 1 and 5 and comment must not be empty")
		return
	}

	name := req.Name
	if name == "" {
		name = anonymousName
	}

	updated, err := h.reviews.UpdateByUser(c.Request.Context(), c.Param("user_id"), database.ReviewUpdate{
		Name:    name,
		Rating:  req.Rating,
		Comment: req.Comment,
		Avatar:  req.Avatar,
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			abortError(c, err, "Review not found for this user")
		} else {
			abortError(c, err, msgDBUnavailable)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
