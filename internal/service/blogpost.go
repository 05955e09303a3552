package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/sujalbistaa/blogapi/internal/models"
	"github.com/sujalbistaa/blogapi/internal/result"
	"github.com/sujalbistaa/blogapi/internal/store"
)

// BlogPostService implements the blog post operations. Every failure is
// returned as a result.Result; storage errors are logged here and replaced
// with a generic message.
type BlogPostService struct {
	store store.Store
}

// NewBlogPostService creates a BlogPostService on top of s.
func NewBlogPostService(s store.Store) *BlogPostService {
	return &BlogPostService{store: s}
}

const duplicateCommentMessage = "A comment with the same content already exists for this blog post."

func notFoundMessage(id uint) string {
	return fmt.Sprintf("Blog post with ID %d not found.", id)
}

// ListPosts returns every post with its comments.
func (s *BlogPostService) ListPosts(ctx context.Context) result.Result[[]models.Post] {
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		log.Printf("Error retrieving blog posts: %v", err)
		return result.Failure[[]models.Post](result.Persistence, "Failed to retrieve blog posts.")
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return result.Success(posts)
}

// GetPostByID returns the post with the given id and its comments.
func (s *BlogPostService) GetPostByID(ctx context.Context, id uint) result.Result[*models.Post] {
	post, err := s.store.GetPost(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return result.Failure[*models.Post](result.NotFound, notFoundMessage(id))
	case err != nil:
		log.Printf("Error retrieving blog post with ID %d: %v", id, err)
		return result.Failure[*models.Post](result.Persistence, fmt.Sprintf("Failed to retrieve blog post with ID %d.", id))
	}
	return result.Success(post)
}

// CreatePost stores post unless a post with the same title and content
// already exists or two of its comments share content. Any ids set by the
// caller are discarded.
func (s *BlogPostService) CreatePost(ctx context.Context, post *models.Post) result.Result[*models.Post] {
	const failed = "Failed to create blog post."

	seen := make(map[string]bool, len(post.Comments))
	for _, c := range post.Comments {
		if seen[c.Content] {
			return result.Failure[*models.Post](result.Duplicate, duplicateCommentMessage)
		}
		seen[c.Content] = true
	}

	existing, err := s.store.FindPostByTitleAndContent(ctx, post.Title, post.Content)
	switch {
	case err == nil && existing != nil:
		return result.Failure[*models.Post](result.Duplicate, "A blog post with the same title and content already exists.")
	case err != nil && !errors.Is(err, store.ErrNotFound):
		log.Printf("Error checking for duplicate blog post: %v", err)
		return result.Failure[*models.Post](result.Persistence, failed)
	}

	post.ID = 0
	for i := range post.Comments {
		post.Comments[i].ID = 0
		post.Comments[i].PostID = 0
	}
	if err := s.store.CreatePost(ctx, post); err != nil {
		log.Printf("Error creating blog post: %v", err)
		return result.Failure[*models.Post](result.Persistence, failed)
	}
	return result.Success(post)
}

// AddComment attaches comment to the post identified by postID. postID wins
// over any PostID carried by the comment.
func (s *BlogPostService) AddComment(ctx context.Context, postID uint, comment *models.Comment) result.Result[*models.Comment] {
	const failed = "Failed to add comment to blog post."

	exists, err := s.store.PostExists(ctx, postID)
	if err != nil {
		log.Printf("Error adding comment to blog post with ID %d: %v", postID, err)
		return result.Failure[*models.Comment](result.Persistence, failed)
	}
	if !exists {
		return result.Failure[*models.Comment](result.NotFound, notFoundMessage(postID))
	}

	existing, err := s.store.FindComment(ctx, postID, comment.Content)
	switch {
	case err == nil && existing != nil:
		return result.Failure[*models.Comment](result.Duplicate, duplicateCommentMessage)
	case err != nil && !errors.Is(err, store.ErrNotFound):
		log.Printf("Error checking for duplicate comment on blog post with ID %d: %v", postID, err)
		return result.Failure[*models.Comment](result.Persistence, failed)
	}

	comment.ID = 0
	comment.PostID = postID
	if err := s.store.CreateComment(ctx, comment); err != nil {
		log.Printf("Error adding comment to blog post with ID %d: %v", postID, err)
		return result.Failure[*models.Comment](result.Persistence, failed)
	}
	return result.Success(comment)
}
