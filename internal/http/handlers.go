package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sujalbistaa/blogapi/internal/models"
	"github.com/sujalbistaa/blogapi/internal/service"
	"github.com/sujalbistaa/blogapi/internal/ws"
)

// Response bodies. 404 responses carry the service's own message instead.
const (
	msgPostCreated   = "Blog post created successfully."
	msgCommentAdded  = "Comment added successfully."
	errListPosts     = "An error occurred while retrieving blog posts."
	errCreatePost    = "An error occurred while creating the blog post."
	errGetPost       = "An error occurred while retrieving the blog post."
	errAddComment    = "An error occurred while adding the comment."
	errInvalidPostID = "Invalid post ID"
)

// --- Handlers ---
type Env struct {
	Posts *service.BlogPostService
	Hub   *ws.Hub
}

func (e *Env) GetBlogPosts(c *gin.Context) {
	res := e.Posts.ListPosts(c.Request.Context())
	if !res.IsSuccess {
		log.Printf("[%s] Error retrieving blog posts: %s", requestID(c), res.Error)
		c.JSON(http.StatusInternalServerError, errListPosts)
		return
	}
	c.JSON(http.StatusOK, res.Value)
}

func (e *Env) CreateBlogPost(c *gin.Context) {
	var post models.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	res := e.Posts.CreatePost(c.Request.Context(), &post)
	if !res.IsSuccess {
		log.Printf("[%s] Error creating blog post (%s): %s", requestID(c), res.Kind, res.Error)
		c.JSON(http.StatusInternalServerError, errCreatePost)
		return
	}

	e.Hub.Publish(ws.TypePostCreated, res.Value)
	c.JSON(http.StatusOK, msgPostCreated)
}

func (e *Env) GetBlogPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	res := e.Posts.GetPostByID(c.Request.Context(), id)
	switch {
	case res.IsSuccess:
		c.JSON(http.StatusOK, res.Value)
	case res.NotFound():
		c.JSON(http.StatusNotFound, res.Error)
	default:
		log.Printf("[%s] Error retrieving blog post with ID %d: %s", requestID(c), id, res.Error)
		c.JSON(http.StatusInternalServerError, errGetPost)
	}
}

func (e *Env) AddComment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	var comment models.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	res := e.Posts.AddComment(c.Request.Context(), id, &comment)
	switch {
	case res.IsSuccess:
		e.Hub.Publish(ws.TypeCommentAdded, res.Value)
		c.JSON(http.StatusOK, msgCommentAdded)
	case res.NotFound():
		c.JSON(http.StatusNotFound, res.Error)
	default:
		// Duplicates land here too.
		log.Printf("[%s] Error adding comment to blog post with ID %d (%s): %s", requestID(c), id, res.Kind, res.Error)
		c.JSON(http.StatusInternalServerError, errAddComment)
	}
}

func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidPostID})
		return 0, false
	}
	return uint(id), true
}
