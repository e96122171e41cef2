package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duetly/backend/internal/models"
	"github.com/duetly/backend/internal/service"
	"github.com/duetly/backend/internal/types"
)

// ContentHandler serves the per-couple content CRUD: memories, notes, poems,
// and the bucket list. Every route requires an authenticated partner with a
// linked couple.
type ContentHandler struct {
	contentService *service.ContentService
}

func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) RegisterRoutes(router *gin.RouterGroup, authRequired, coupleRequired gin.HandlerFunc) {
	memories := router.Group("/memories", authRequired, coupleRequired)
	{
		memories.GET("", h.ListMemories)
		memories.POST("", h.CreateMemory)
		memories.GET("/:id", h.GetMemory)
		memories.PUT("/:id", h.UpdateMemory)
		memories.DELETE("/:id", h.DeleteMemory)
	}

	notes := router.Group("/notes", authRequired, coupleRequired)
	{
		notes.GET("", h.ListNotes)
		notes.POST("", h.CreateNote)
		notes.GET("/:id", h.GetNote)
		notes.PUT("/:id", h.UpdateNote)
		notes.DELETE("/:id", h.DeleteNote)
	}

	poems := router.Group("/poems", authRequired, coupleRequired)
	{
		poems.GET("", h.ListPoems)
		poems.POST("", h.CreatePoem)
		poems.GET("/:id", h.GetPoem)
		poems.PUT("/:id", h.UpdatePoem)
		poems.DELETE("/:id", h.DeletePoem)
	}

	bucket := router.Group("/bucket-list", authRequired, coupleRequired)
	{
		bucket.GET("", h.ListBucketListItems)
		bucket.POST("", h.CreateBucketListItem)
		bucket.PUT("/:id", h.UpdateBucketListItem)
		bucket.DELETE("/:id", h.DeleteBucketListItem)
	}

	router.GET("/meta/moods", h.GetMoods)
}

func replyNotFound(c *gin.Context, err error, action string) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": action})
}

// --- Memories ---

func (h *ContentHandler) ListMemories(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	memories, err := h.contentService.ListMemories(c.Request.Context(), coupleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list memories"})
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: memories})
}

func (h *ContentHandler) CreateMemory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}

	var req types.CreateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	memory, err := h.contentService.CreateMemory(c.Request.Context(), coupleID, userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create memory"})
		return
	}
	c.JSON(http.StatusCreated, types.DataEnvelope{Data: memory})
}

func (h *ContentHandler) GetMemory(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	memory, err := h.contentService.GetMemory(c.Request.Context(), coupleID, id)
	if err != nil {
		replyNotFound(c, err, "failed to get memory")
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: memory})
}

func (h *ContentHandler) UpdateMemory(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.UpdateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	memory, err := h.contentService.UpdateMemory(c.Request.Context(), coupleID, id, &req)
	if err != nil {
		replyNotFound(c, err, "failed to update memory")
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: memory})
}

func (h *ContentHandler) DeleteMemory(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteMemory(c.Request.Context(), coupleID, id); err != nil {
		replyNotFound(c, err, "failed to delete memory")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "memory deleted"})
}

// --- Notes ---

func (h *ContentHandler) ListNotes(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	notes, err := h.contentService.ListNotes(c.Request.Context(), coupleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notes"})
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: notes})
}

func (h *ContentHandler) CreateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}

	var req types.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.contentService.CreateNote(c.Request.Context(), coupleID, userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create note"})
		return
	}
	c.JSON(http.StatusCreated, types.DataEnvelope{Data: note})
}

func (h *ContentHandler) GetNote(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	note, err := h.contentService.GetNote(c.Request.Context(), coupleID, id)
	if err != nil {
		replyNotFound(c, err, "failed to get note")
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: note})
}

func (h *ContentHandler) UpdateNote(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.contentService.UpdateNote(c.Request.Context(), coupleID, id, &req)
	if err != nil {
		replyNotFound(c, err, "failed to update note")
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: note})
}

func (h *ContentHandler) DeleteNote(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteNote(c.Request.Context(), coupleID, id); err != nil {
		replyNotFound(c, err, "failed to delete note")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
}

// --- Poems ---

func (h *ContentHandler) ListPoems(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	poems, err := h.contentService.ListPoems(c.Request.Context(), coupleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list poems"})
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: poems})
}

func (h *ContentHandler) CreatePoem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}

	var req types.CreatePoemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	poem, err := h.contentService.CreatePoem(c.Request.Context(), coupleID, userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create poem"})
		return
	}
	c.JSON(http.StatusCreated, types.DataEnvelope{Data: poem})
}

func (h *ContentHandler) GetPoem(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	poem, err := h.contentService.GetPoem(c.Request.Context(), coupleID, id)
	if err != nil {
		replyNotFound(c, err, "failed to get poem")
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: poem})
}

func (h *ContentHandler) UpdatePoem(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.UpdatePoemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	poem, err := h.contentService.UpdatePoem(c.Request.Context(), coupleID, id, &req)
	if err != nil {
		replyNotFound(c, err, "failed to update poem")
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: poem})
}

func (h *ContentHandler) DeletePoem(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeletePoem(c.Request.Context(), coupleID, id); err != nil {
		replyNotFound(c, err, "failed to delete poem")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "poem deleted"})
}

// --- Bucket list ---

func (h *ContentHandler) ListBucketListItems(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	items, err := h.contentService.ListBucketListItems(c.Request.Context(), coupleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bucket list"})
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: items})
}

func (h *ContentHandler) CreateBucketListItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}

	var req types.CreateBucketListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.contentService.CreateBucketListItem(c.Request.Context(), coupleID, userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create bucket list item"})
		return
	}
	c.JSON(http.StatusCreated, types.DataEnvelope{Data: item})
}

func (h *ContentHandler) UpdateBucketListItem(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.UpdateBucketListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.contentService.UpdateBucketListItem(c.Request.Context(), coupleID, id, &req)
	if err != nil {
		replyNotFound(c, err, "failed to update bucket list item")
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: item})
}

func (h *ContentHandler) DeleteBucketListItem(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteBucketListItem(c.Request.Context(), coupleID, id); err != nil {
		replyNotFound(c, err, "failed to delete bucket list item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bucket list item deleted"})
}

// GetMoods exposes the mood and poem-category presentation tables so the
// frontends render badges from one source of truth.
func (h *ContentHandler) GetMoods(c *gin.Context) {
	moods := map[string]models.MoodDescriptor{}
	for _, m := range models.Moods() {
		moods[m] = models.MoodFor(m)
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: moods})
}
