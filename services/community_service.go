// services/community_service.go - Community feed
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

// ListPosts returns the feed, newest first.
func (s *Service) ListPosts(limit int) ([]models.CommunityPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var posts []models.CommunityPost
	err := s.db.Preload("User").Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// GetPost loads one post with its comments.
func (s *Service) GetPost(postID uint) (*models.CommunityPost, error) {
	var post models.CommunityPost
	err := s.db.Preload("User").Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).Preload("Comments.User").First(&post, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost stores a feed entry.
func (s *Service) CreatePost(userID uint, title, content string) (*models.CommunityPost, error) {
	post := models.CommunityPost{UserID: userID, Title: title, Content: content}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost edits an owned post.
func (s *Service) UpdatePost(userID, postID uint, title, content string) (*models.CommunityPost, error) {
	var post models.CommunityPost
	err := s.db.Where("id = ? AND user_id = ?", postID, userID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	post.Title = title
	post.Content = content
	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// AddComment appends a comment to a post.
func (s *Service) AddComment(userID, postID uint, content string) (*models.Comment, error) {
	var post models.CommunityPost
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	comment := models.Comment{PostID: postID, UserID: userID, Content: content}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}
