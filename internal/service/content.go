package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/duetly/backend/internal/models"
	"github.com/duetly/backend/internal/types"
)

// ErrNotFound covers lookups of content that does not exist or belongs to
// another couple; callers cannot tell those cases apart.
var ErrNotFound = errors.New("not found")

// ContentService implements the per-couple content CRUD: memories, notes,
// poems, albums with photos, and the bucket list. Every operation is scoped
// to the caller's couple.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// scoped returns a query limited to the given couple.
func (s *ContentService) scoped(ctx context.Context, coupleID uuid.UUID) *gorm.DB {
	return s.db.WithContext(ctx).Where("couple_id = ?", coupleID)
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --- Memories ---

func (s *ContentService) CreateMemory(ctx context.Context, coupleID, authorID uuid.UUID, req *types.CreateMemoryRequest) (*models.Memory, error) {
	memory := &models.Memory{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Mood:        req.Mood,
		PhotoURL:    req.PhotoURL,
	}
	memory.CoupleID = coupleID
	memory.AuthorID = authorID
	if err := s.db.WithContext(ctx).Create(memory).Error; err != nil {
		return nil, fmt.Errorf("failed to create memory: %w", err)
	}
	return memory, nil
}

func (s *ContentService) ListMemories(ctx context.Context, coupleID uuid.UUID) ([]models.Memory, error) {
	var memories []models.Memory
	if err := s.scoped(ctx, coupleID).Order("date DESC").Find(&memories).Error; err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}
	return memories, nil
}

func (s *ContentService) GetMemory(ctx context.Context, coupleID, id uuid.UUID) (*models.Memory, error) {
	var memory models.Memory
	if err := s.scoped(ctx, coupleID).First(&memory, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &memory, nil
}

func (s *ContentService) UpdateMemory(ctx context.Context, coupleID, id uuid.UUID, req *types.UpdateMemoryRequest) (*models.Memory, error) {
	memory, err := s.GetMemory(ctx, coupleID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		memory.Title = req.Title
	}
	if req.Description != "" {
		memory.Description = req.Description
	}
	if req.Date != nil {
		memory.Date = *req.Date
	}
	if req.Mood != "" {
		memory.Mood = req.Mood
	}
	if req.PhotoURL != "" {
		memory.PhotoURL = req.PhotoURL
	}

	if err := s.db.WithContext(ctx).Save(memory).Error; err != nil {
		return nil, fmt.Errorf("failed to update memory: %w", err)
	}
	return memory, nil
}

func (s *ContentService) DeleteMemory(ctx context.Context, coupleID, id uuid.UUID) error {
	result := s.scoped(ctx, coupleID).Delete(&models.Memory{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete memory: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Notes ---

func (s *ContentService) CreateNote(ctx context.Context, coupleID, authorID uuid.UUID, req *types.CreateNoteRequest) (*models.Note, error) {
	note := &models.Note{
		Title: req.Title,
		Body:  req.Body,
		Mood:  req.Mood,
	}
	note.CoupleID = coupleID
	note.AuthorID = authorID
	if err := s.db.WithContext(ctx).Create(note).Error; err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

func (s *ContentService) ListNotes(ctx context.Context, coupleID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	if err := s.scoped(ctx, coupleID).Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (s *ContentService) GetNote(ctx context.Context, coupleID, id uuid.UUID) (*models.Note, error) {
	var note models.Note
	if err := s.scoped(ctx, coupleID).First(&note, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &note, nil
}

func (s *ContentService) UpdateNote(ctx context.Context, coupleID, id uuid.UUID, req *types.UpdateNoteRequest) (*models.Note, error) {
	note, err := s.GetNote(ctx, coupleID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		note.Title = req.Title
	}
	if req.Body != "" {
		note.Body = req.Body
	}
	if req.Mood != "" {
		note.Mood = req.Mood
	}

	if err := s.db.WithContext(ctx).Save(note).Error; err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return note, nil
}

func (s *ContentService) DeleteNote(ctx context.Context, coupleID, id uuid.UUID) error {
	result := s.scoped(ctx, coupleID).Delete(&models.Note{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Poems ---

func (s *ContentService) CreatePoem(ctx context.Context, coupleID, authorID uuid.UUID, req *types.CreatePoemRequest) (*models.Poem, error) {
	poem := &models.Poem{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	}
	poem.CoupleID = coupleID
	poem.AuthorID = authorID
	if err := s.db.WithContext(ctx).Create(poem).Error; err != nil {
		return nil, fmt.Errorf("failed to create poem: %w", err)
	}
	return poem, nil
}

func (s *ContentService) ListPoems(ctx context.Context, coupleID uuid.UUID) ([]models.Poem, error) {
	var poems []models.Poem
	if err := s.scoped(ctx, coupleID).Order("created_at DESC").Find(&poems).Error; err != nil {
		return nil, fmt.Errorf("failed to list poems: %w", err)
	}
	return poems, nil
}

func (s *ContentService) GetPoem(ctx context.Context, coupleID, id uuid.UUID) (*models.Poem, error) {
	var poem models.Poem
	if err := s.scoped(ctx, coupleID).First(&poem, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &poem, nil
}

func (s *ContentService) UpdatePoem(ctx context.Context, coupleID, id uuid.UUID, req *types.UpdatePoemRequest) (*models.Poem, error) {
	poem, err := s.GetPoem(ctx, coupleID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		poem.Title = req.Title
	}
	if req.Body != "" {
		poem.Body = req.Body
	}
	if req.Category != "" {
		poem.Category = req.Category
	}

	if err := s.db.WithContext(ctx).Save(poem).Error; err != nil {
		return nil, fmt.Errorf("failed to update poem: %w", err)
	}
	return poem, nil
}

func (s *ContentService) DeletePoem(ctx context.Context, coupleID, id uuid.UUID) error {
	result := s.scoped(ctx, coupleID).Delete(&models.Poem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete poem: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Albums and photos ---

func (s *ContentService) CreateAlbum(ctx context.Context, coupleID, authorID uuid.UUID, req *types.CreateAlbumRequest) (*models.Album, error) {
	album := &models.Album{
		Name:        req.Name,
		Description: req.Description,
	}
	album.CoupleID = coupleID
	album.AuthorID = authorID
	if err := s.db.WithContext(ctx).Create(album).Error; err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}
	return album, nil
}

func (s *ContentService) ListAlbums(ctx context.Context, coupleID uuid.UUID) ([]models.Album, error) {
	var albums []models.Album
	if err := s.scoped(ctx, coupleID).Preload("Photos").Order("created_at DESC").Find(&albums).Error; err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	return albums, nil
}

func (s *ContentService) GetAlbum(ctx context.Context, coupleID, id uuid.UUID) (*models.Album, error) {
	var album models.Album
	if err := s.scoped(ctx, coupleID).Preload("Photos").First(&album, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &album, nil
}

func (s *ContentService) DeleteAlbum(ctx context.Context, coupleID, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("couple_id = ?", coupleID).Delete(&models.Album{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("couple_id = ? AND album_id = ?", coupleID, id).Delete(&models.Photo{}).Error
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to delete album: %w", err)
	}
	return err
}

// AddPhoto records an uploaded photo inside an album the couple owns.
func (s *ContentService) AddPhoto(ctx context.Context, coupleID, authorID, albumID uuid.UUID, url, caption string) (*models.Photo, error) {
	if _, err := s.GetAlbum(ctx, coupleID, albumID); err != nil {
		return nil, err
	}

	photo := &models.Photo{
		AlbumID: albumID,
		URL:     url,
		Caption: caption,
	}
	photo.CoupleID = coupleID
	photo.AuthorID = authorID
	if err := s.db.WithContext(ctx).Create(photo).Error; err != nil {
		return nil, fmt.Errorf("failed to add photo: %w", err)
	}
	return photo, nil
}

func (s *ContentService) DeletePhoto(ctx context.Context, coupleID, id uuid.UUID) error {
	result := s.scoped(ctx, coupleID).Delete(&models.Photo{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete photo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Bucket list ---

func (s *ContentService) CreateBucketListItem(ctx context.Context, coupleID, authorID uuid.UUID, req *types.CreateBucketListItemRequest) (*models.BucketListItem, error) {
	item := &models.BucketListItem{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	item.CoupleID = coupleID
	item.AuthorID = authorID
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create bucket list item: %w", err)
	}
	return item, nil
}

func (s *ContentService) ListBucketListItems(ctx context.Context, coupleID uuid.UUID) ([]models.BucketListItem, error) {
	var items []models.BucketListItem
	if err := s.scoped(ctx, coupleID).Order("created_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list bucket list items: %w", err)
	}
	return items, nil
}

func (s *ContentService) UpdateBucketListItem(ctx context.Context, coupleID, id uuid.UUID, req *types.UpdateBucketListItemRequest) (*models.BucketListItem, error) {
	var item models.BucketListItem
	if err := s.scoped(ctx, coupleID).First(&item, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Completed != nil && *req.Completed != item.Completed {
		item.Completed = *req.Completed
		if item.Completed {
			now := time.Now()
			item.CompletedAt = &now
		} else {
			item.CompletedAt = nil
		}
	}

	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update bucket list item: %w", err)
	}
	return &item, nil
}

func (s *ContentService) DeleteBucketListItem(ctx context.Context, coupleID, id uuid.UUID) error {
	result := s.scoped(ctx, coupleID).Delete(&models.BucketListItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete bucket list item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats counts the couple's content per feature for the dashboard.
func (s *ContentService) Stats(ctx context.Context, coupleID uuid.UUID) (*types.ContentStats, error) {
	stats := &types.ContentStats{}
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Memory{}, &stats.Memories},
		{&models.Note{}, &stats.Notes},
		{&models.Poem{}, &stats.Poems},
		{&models.Album{}, &stats.Albums},
		{&models.Photo{}, &stats.Photos},
		{&models.BucketListItem{}, &stats.BucketList},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Where("couple_id = ?", coupleID).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count content: %w", err)
		}
	}
	return stats, nil
}
