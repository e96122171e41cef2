package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duetly/backend/internal/service"
	"github.com/duetly/backend/internal/types"
)

// maxPhotoSize caps multipart photo uploads at 10 MiB.
const maxPhotoSize = 10 << 20

// GalleryHandler serves albums and photo uploads.
type GalleryHandler struct {
	contentService *service.ContentService
	imageService   service.IImageService
}

func NewGalleryHandler(contentService *service.ContentService, imageService service.IImageService) *GalleryHandler {
	return &GalleryHandler{
		contentService: contentService,
		imageService:   imageService,
	}
}

func (h *GalleryHandler) RegisterRoutes(router *gin.RouterGroup, authRequired, coupleRequired gin.HandlerFunc) {
	albums := router.Group("/albums", authRequired, coupleRequired)
	{
		albums.GET("", h.ListAlbums)
		albums.POST("", h.CreateAlbum)
		albums.GET("/:id", h.GetAlbum)
		albums.DELETE("/:id", h.DeleteAlbum)
		albums.POST("/:id/photos", h.UploadPhoto)
	}
	router.DELETE("/photos/:id", authRequired, coupleRequired, h.DeletePhoto)
}

func (h *GalleryHandler) ListAlbums(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	albums, err := h.contentService.ListAlbums(c.Request.Context(), coupleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list albums"})
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: albums})
}

func (h *GalleryHandler) CreateAlbum(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}

	var req types.CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	album, err := h.contentService.CreateAlbum(c.Request.Context(), coupleID, userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create album"})
		return
	}
	c.JSON(http.StatusCreated, types.DataEnvelope{Data: album})
}

func (h *GalleryHandler) GetAlbum(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	album, err := h.contentService.GetAlbum(c.Request.Context(), coupleID, id)
	if err != nil {
		replyNotFound(c, err, "failed to get album")
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: album})
}

func (h *GalleryHandler) DeleteAlbum(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteAlbum(c.Request.Context(), coupleID, id); err != nil {
		replyNotFound(c, err, "failed to delete album")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "album deleted"})
}

// UploadPhoto stores a multipart photo in S3 and records it in the album.
func (h *GalleryHandler) UploadPhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	albumID, ok := pathID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	if fileHeader.Size > maxPhotoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo exceeds the 10MB limit"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "image/webp", "image/gif":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read photo"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoSize))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read photo"})
		return
	}

	url, err := h.imageService.UploadPhoto(c.Request.Context(), data, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store photo"})
		return
	}

	photo, err := h.contentService.AddPhoto(c.Request.Context(), coupleID, userID, albumID, url, c.PostForm("caption"))
	if err != nil {
		replyNotFound(c, err, "failed to add photo")
		return
	}
	c.JSON(http.StatusCreated, types.DataEnvelope{Data: photo})
}

func (h *GalleryHandler) DeletePhoto(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeletePhoto(c.Request.Context(), coupleID, id); err != nil {
		replyNotFound(c, err, "failed to delete photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "photo deleted"})
}
